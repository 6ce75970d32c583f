package lbox

import (
	"github.com/pkg/errors"
)

// ErrMalformedPuzzle is returned when the board input is not twelve
// distinct ASCII A-Z letters.
var ErrMalformedPuzzle = errors.New("malformed puzzle: need 12 distinct A-Z letters")

// PuzzleBoard is the immutable 12-letter board: four sides of three
// letters each. Side 0 is top, 1 right, 2 bottom, 3 left, matching the
// input string's character order.
type PuzzleBoard struct {
	sides   [4][3]byte // letter codes 0..25, grouped by side
	sideOf  [26]int8   // side index of each board letter, -1 if absent
	fullMsk uint32     // 26-bit mask of all 12 board letters
}

// NewPuzzleBoard builds a PuzzleBoard from a 12-character string: three
// letters each for top, right, bottom, and left, in that order.
func NewPuzzleBoard(letters string) (*PuzzleBoard, error) {
	if len(letters) != 12 {
		return nil, errors.Wrapf(ErrMalformedPuzzle, "got %d characters, want 12", len(letters))
	}

	b := &PuzzleBoard{}
	for i := range b.sideOf {
		b.sideOf[i] = -1
	}

	for i := 0; i < 12; i++ {
		c := letters[i]
		switch {
		case c >= 'a' && c <= 'z':
			c = c - 'a' + 'A'
		case c >= 'A' && c <= 'Z':
		default:
			return nil, errors.Wrapf(ErrMalformedPuzzle, "byte %d (%q) is not A-Z", i, letters[i])
		}
		code := c - 'A'
		if b.sideOf[code] != -1 {
			return nil, errors.Wrapf(ErrMalformedPuzzle, "letter %q appears more than once", c)
		}
		side := i / 3
		b.sides[side][i%3] = code
		b.sideOf[code] = int8(side)
		b.fullMsk |= 1 << code
	}
	return b, nil
}

// Side returns the three letter codes making up side idx (0..3).
func (b *PuzzleBoard) Side(idx int) [3]byte {
	return b.sides[idx]
}

// SideOf returns the side index (0..3) of a board letter. The result is
// undefined for a letter not on the board; callers only ever query it
// for letters already confirmed present via FullMask.
func (b *PuzzleBoard) SideOf(letter byte) int {
	return int(b.sideOf[letter&letterMask])
}

// SameSide reports whether a and c sit on the same side of the board.
func (b *PuzzleBoard) SameSide(a, c byte) bool {
	return b.sideOf[a&letterMask] == b.sideOf[c&letterMask]
}

// FullMask is the 26-bit mask of all twelve board letters. A solution is
// complete iff the union of its words' masks equals FullMask.
func (b *PuzzleBoard) FullMask() uint32 {
	return b.fullMsk
}

// HasLetter reports whether letter is one of the twelve board letters.
func (b *PuzzleBoard) HasLetter(letter byte) bool {
	return b.sideOf[letter&letterMask] != -1
}
