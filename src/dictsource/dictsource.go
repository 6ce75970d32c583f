// Package dictsource resolves a dictionary source argument — a file
// path, "-" for stdin, or a shell command string — into an io.Reader a
// WordFilter can consume.
package dictsource

import (
	"os"
	"os/exec"

	"github.com/mattn/go-isatty"
	"github.com/mattn/go-shellwords"
	"github.com/pkg/errors"
)

// DefaultCommandEnv names the environment variable holding a shell
// command to run when no explicit source is given and stdin is a
// terminal.
const DefaultCommandEnv = "LETRBOXD_DICT_COMMAND"

// ErrNoSource is returned when stdin is a terminal, no source argument
// was given, and DefaultCommandEnv is unset.
var ErrNoSource = errors.New("no dictionary source: pass a path, '-', or set " + DefaultCommandEnv)

// Open resolves source into a ready-to-read io.ReadCloser:
//
//   - "-" reads from stdin directly.
//   - a non-empty source is tried as a file path first; if opening it
//     fails, it is parsed as a shell command and executed.
//   - an empty source falls back to stdin if stdin is piped, or to the
//     DefaultCommandEnv command if stdin is an interactive terminal.
func Open(source string) (_ ReadCloser, err error) {
	switch {
	case source == "-":
		return nopCloser{os.Stdin}, nil
	case source != "":
		if f, ferr := os.Open(source); ferr == nil {
			return f, nil
		}
		return runCommand(source)
	case !isatty.IsTerminal(os.Stdin.Fd()):
		return nopCloser{os.Stdin}, nil
	default:
		if cmd := os.Getenv(DefaultCommandEnv); cmd != "" {
			return runCommand(cmd)
		}
		return nil, ErrNoSource
	}
}

// ReadCloser is the interface Open returns: a readable, closeable
// dictionary source. Closing a command source waits for the child
// process to exit.
type ReadCloser interface {
	Read(p []byte) (int, error)
	Close() error
}

type nopCloser struct{ *os.File }

func (nopCloser) Close() error { return nil }

// cmdSource wires a subprocess's stdout pipe as the dictionary source,
// waiting for the process to exit on Close.
type cmdSource struct {
	cmd *exec.Cmd
	out interface {
		Read([]byte) (int, error)
		Close() error
	}
}

func (c *cmdSource) Read(p []byte) (int, error) { return c.out.Read(p) }
func (c *cmdSource) Close() error {
	c.out.Close()
	return c.cmd.Wait()
}

func runCommand(line string) (ReadCloser, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing dictionary command %q", line)
	}
	if len(args) == 0 {
		return nil, errors.Errorf("empty dictionary command %q", line)
	}
	cmd := exec.Command(args[0], args[1:]...)
	out, err := cmd.StdoutPipe()
	if err != nil {
		return nil, errors.Wrap(err, "opening stdout pipe for dictionary command")
	}
	if err := cmd.Start(); err != nil {
		return nil, errors.Wrapf(err, "starting dictionary command %q", line)
	}
	return &cmdSource{cmd: cmd, out: out}, nil
}
