// Command letrboxd-browse is a terminal browser over a solved puzzle's
// five word-count buckets: arrow keys move the selection, q quits.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"strings"

	"github.com/gdamore/tcell"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	lbox "github.com/nordzilla/letrboxd/src"
	"github.com/nordzilla/letrboxd/src/assets"
	"github.com/nordzilla/letrboxd/src/dictsource"
	"github.com/nordzilla/letrboxd/src/logging"
	"github.com/nordzilla/letrboxd/src/util"
)

func main() {
	var board, dict string
	var workers int
	flag.StringVar(&board, "board", "", "twelve board letters")
	flag.StringVar(&dict, "dict", "", "dictionary source")
	flag.IntVar(&workers, "workers", 0, "worker count")
	flag.Parse()

	puzzle, err := lbox.NewPuzzleBoard(board)
	if err != nil {
		logging.Fatal(err, "parsing board")
	}
	words, err := loadCandidates(puzzle, dict)
	if err != nil {
		logging.Fatal(err, "loading dictionary")
	}

	core := lbox.NewCore()
	final := core.Solve(puzzle, words, workers, func(lbox.Snapshot) {})

	if err := run(puzzle, final); err != nil {
		logging.Fatal(err, "running browser")
	}
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

// sideColors gives each of the four board sides a distinct, evenly
// spaced hue so letters read as belonging to their side at a glance.
func sideColors() [4]tcell.Color {
	var out [4]tcell.Color
	for i := range out {
		hue := float64(i) * 90.0
		c := colorful.Hsv(hue, 0.65, 0.95)
		out[i] = tcell.NewRGBColor(int32(c.R*255), int32(c.G*255), int32(c.B*255))
	}
	return out
}

type browser struct {
	screen  tcell.Screen
	buckets [5][]string
	bucket  int
	cursor  int
}

func run(board *lbox.PuzzleBoard, snap lbox.Snapshot) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	b := &browser{screen: screen, buckets: snap.Buckets}
	b.selectNonEmptyBucket()
	colors := sideColors()

	for {
		b.draw(board, colors)
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyRune:
				if ev.Rune() == 'q' {
					return nil
				}
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return nil
			case tcell.KeyLeft:
				b.prevBucket()
			case tcell.KeyRight:
				b.nextBucket()
			case tcell.KeyUp:
				b.moveCursor(-1)
			case tcell.KeyDown:
				b.moveCursor(1)
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

func (b *browser) selectNonEmptyBucket() {
	for i, bucket := range b.buckets {
		if len(bucket) > 0 {
			b.bucket = i
			return
		}
	}
}

func (b *browser) prevBucket() {
	for i := b.bucket - 1; i >= 0; i-- {
		if len(b.buckets[i]) > 0 {
			b.bucket, b.cursor = i, 0
			return
		}
	}
}

func (b *browser) nextBucket() {
	for i := b.bucket + 1; i < len(b.buckets); i++ {
		if len(b.buckets[i]) > 0 {
			b.bucket, b.cursor = i, 0
			return
		}
	}
}

func (b *browser) moveCursor(delta int) {
	n := len(b.buckets[b.bucket])
	if n == 0 {
		return
	}
	b.cursor = util.Constrain(b.cursor+delta, 0, n-1)
}

func (b *browser) draw(board *lbox.PuzzleBoard, colors [4]tcell.Color) {
	b.screen.Clear()
	header := fmt.Sprintf("Letter Boxed — %d word(s), %d solution(s) — ←/→ bucket, ↑/↓ select, q quit",
		b.bucket+1, len(b.buckets[b.bucket]))
	drawString(b.screen, 0, 0, header, tcell.StyleDefault.Bold(true))

	for side := 0; side < 4; side++ {
		letters := board.Side(side)
		style := tcell.StyleDefault.Foreground(colors[side])
		label := fmt.Sprintf("side %d: %c%c%c", side, 'A'+letters[0], 'A'+letters[1], 'A'+letters[2])
		drawString(b.screen, 0, 2+side, label, style)
	}

	for i, solution := range b.buckets[b.bucket] {
		style := tcell.StyleDefault
		if i == b.cursor {
			style = style.Reverse(true)
		}
		drawString(b.screen, 0, 8+i, solution, style)
	}

	b.screen.Show()
}

func drawString(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	col := x
	for _, r := range s {
		screen.SetContent(col, y, r, nil, style)
		col += runewidth.RuneWidth(r)
	}
}
