// Command letrboxd solves a Letter Boxed puzzle: given the board's
// twelve letters and a dictionary, it prints every chain of words
// (up to five) that covers all twelve letters, grouped by word count.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	lbox "github.com/nordzilla/letrboxd/src"
	"github.com/nordzilla/letrboxd/src/assets"
	"github.com/nordzilla/letrboxd/src/dictsource"
	"github.com/nordzilla/letrboxd/src/logging"
	"github.com/nordzilla/letrboxd/src/util"
)

const usage = `letrboxd solves a Letter Boxed puzzle.

Usage: letrboxd -board LETTERS [options]

  -board LETTERS   twelve board letters, three per side, in top/right/
                    bottom/left order (required)
  -dict SOURCE      a file path, "-" for stdin, or a shell command; if
                    omitted: piped stdin, else $LETRBOXD_DICT_COMMAND,
                    else the embedded default wordlist
  -workers N        worker goroutines (default: min(16, NumCPU))
`

func main() {
	var board, dict string
	var workers int
	flag.StringVar(&board, "board", "", "twelve board letters")
	flag.StringVar(&dict, "dict", "", "dictionary source")
	flag.IntVar(&workers, "workers", 0, "worker count")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	puzzle, err := lbox.NewPuzzleBoard(board)
	if err != nil {
		logging.Fatal(err, "parsing board")
	}

	words, err := loadCandidates(puzzle, dict)
	if err != nil {
		logging.Fatal(err, "loading dictionary")
	}

	out := bufio.NewWriter(os.Stdout)
	util.AtExit(func() { out.Flush() })

	core := lbox.NewCore()
	final := core.Solve(puzzle, words, workers, printProgress)
	printBuckets(out, final)
	util.Exit(0)
}

func loadCandidates(board *lbox.PuzzleBoard, dict string) ([]lbox.CandidateWord, error) {
	filter := lbox.NewWordFilter(board)

	src, err := dictsource.Open(dict)
	if err == dictsource.ErrNoSource {
		return filter.FilterReader(strings.NewReader(assets.DefaultWordlist))
	}
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return filter.FilterReader(bufio.NewReader(src))
}

func printProgress(snap lbox.Snapshot) {
	if !snap.IsFinalOverall {
		fmt.Fprintf(os.Stderr, "request %d: %d worker(s) still running\n", snap.RequestID, snap.PendingWorkers)
	}
}

func printBuckets(w *bufio.Writer, snap lbox.Snapshot) {
	for n, bucket := range snap.Buckets {
		if len(bucket) == 0 {
			continue
		}
		fmt.Fprintf(w, "%d word(s):\n", n+1)
		for _, solution := range bucket {
			fmt.Fprintf(w, "  %s\n", solution)
		}
	}
}
