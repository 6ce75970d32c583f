package lbox

import (
	"math/bits"
	"strings"

	"github.com/pkg/errors"
)

// maxLetters is the capacity of a LetterSequence: the twelve positions on
// a Letter Boxed board.
const maxLetters = 12

// letterBits is the width of a single packed letter slot.
const letterBits = 5

// letterMask masks out a single 5-bit letter slot.
const letterMask = (1 << letterBits) - 1

// ErrTooLong and ErrBadChar are returned by ParseSequence.
var (
	ErrTooLong = errors.New("letter sequence exceeds 12 letters")
	ErrBadChar = errors.New("letter sequence contains a non A-Z character")
)

// LetterSequence is an ordered sequence of 0..12 uppercase A-Z letters
// packed into a single 64-bit word.
//
// Layout, most significant bit to least:
//
//	[ 3 unused bits ][ 12 x 5-bit letter slots ][ 1 sentinel bit ]
//
// Exactly one sentinel bit is set, separating populated letter slots (to
// its right, most-recently-appended letter at the low end) from unused
// space (to its left). The empty sequence is the sentinel alone, set at
// bit 0.
type LetterSequence uint64

// Empty returns the zero-length LetterSequence.
func Empty() LetterSequence {
	return LetterSequence(1)
}

// sentinel returns the bit position of the sentinel bit: the highest set
// bit, since every populated letter slot lies below it.
func (s LetterSequence) sentinel() uint {
	return uint(bits.Len64(uint64(s)) - 1)
}

// Len returns the number of letters currently held, 0..12.
func (s LetterSequence) Len() int {
	return int(s.sentinel() / letterBits)
}

// IsFull reports whether the sequence holds the maximum 12 letters.
func (s LetterSequence) IsFull() bool {
	return s.Len() == maxLetters
}

// Push appends letter (a 0..25 code) and returns the extended sequence.
// The caller must ensure Len(s) < 12; Push on a full sequence would lose
// the top letter bits silently, which is why Solver and WordFilter never
// call it past capacity.
func (s LetterSequence) Push(letter byte) LetterSequence {
	return s<<letterBits | LetterSequence(letter&letterMask)
}

// At returns the letter at position i (0 = oldest appended).
func (s LetterSequence) At(i int) byte {
	n := s.Len()
	shift := uint(letterBits * (n - 1 - i))
	return byte(s>>shift) & letterMask
}

// First returns the first (oldest) letter. Precondition: Len(s) >= 1.
func (s LetterSequence) First() byte {
	return s.At(0)
}

// Last returns the last (most recently appended) letter.
// Precondition: Len(s) >= 1.
func (s LetterSequence) Last() byte {
	return s.At(s.Len() - 1)
}

// ToMask returns the 26-bit set of distinct letters present in s.
func (s LetterSequence) ToMask() uint32 {
	var mask uint32
	for i, n := 0, s.Len(); i < n; i++ {
		mask |= 1 << s.At(i)
	}
	return mask
}

// Contains reports whether letter appears anywhere in s.
func (s LetterSequence) Contains(letter byte) bool {
	return s.ToMask()&(1<<(letter&letterMask)) != 0
}

// ParseSequence builds a LetterSequence from an ASCII string of A-Z
// (case-insensitive) letters, up to 12 characters long.
func ParseSequence(str string) (LetterSequence, error) {
	if len(str) > maxLetters {
		return 0, ErrTooLong
	}
	seq := Empty()
	for i := 0; i < len(str); i++ {
		c := str[i]
		switch {
		case c >= 'a' && c <= 'z':
			c = c - 'a' + 'A'
		case c >= 'A' && c <= 'Z':
		default:
			return 0, errors.Wrapf(ErrBadChar, "byte %d (%q)", i, c)
		}
		seq = seq.Push(c - 'A')
	}
	return seq, nil
}

// String renders s as an uppercase A-Z string, oldest letter first.
func (s LetterSequence) String() string {
	var b strings.Builder
	b.Grow(s.Len())
	for i, n := 0, s.Len(); i < n; i++ {
		b.WriteByte('A' + s.At(i))
	}
	return b.String()
}
