package lbox

import (
	"bufio"
	"io"
	"math/bits"
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// upperFolder performs the ASCII-safe uppercase fold required before
// testing a dictionary word against the board. Reused across calls
// rather than rebuilt per word.
var upperFolder = cases.Upper(language.Und)

// CandidateWord is a LetterSequence that has passed every WordFilter
// rule for a given PuzzleBoard.
type CandidateWord = LetterSequence

// WordFilter turns a stream of dictionary words into the sorted,
// deduplicated list of CandidateWords for a board.
type WordFilter struct {
	board *PuzzleBoard
}

// NewWordFilter returns a WordFilter bound to board.
func NewWordFilter(board *PuzzleBoard) *WordFilter {
	return &WordFilter{board: board}
}

// FilterWords consumes an iterable of dictionary words (one per call to
// next, io.EOF to stop) and returns the ordered candidate list: sorted
// by 64-bit LetterSequence value, with duplicates removed. Malformed
// entries are silently skipped, never reported as errors.
func (f *WordFilter) FilterWords(words func() (string, error)) ([]CandidateWord, error) {
	seen := make(map[LetterSequence]struct{})
	var out []CandidateWord
	for {
		word, err := words()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if cand, ok := f.classify(word); ok {
			if _, dup := seen[cand]; !dup {
				seen[cand] = struct{}{}
				out = append(out, cand)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

// FilterReader is a convenience wrapper around FilterWords that reads
// one word per line from r.
func (f *WordFilter) FilterReader(r io.Reader) ([]CandidateWord, error) {
	scanner := bufio.NewScanner(r)
	return f.FilterWords(func() (string, error) {
		if scanner.Scan() {
			return scanner.Text(), nil
		}
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	})
}

// classify applies the four WordFilter rules to a single dictionary
// word, returning its LetterSequence and true iff it is a valid
// candidate.
func (f *WordFilter) classify(word string) (CandidateWord, bool) {
	folded := upperFolder.String(word)
	if len(folded) < 3 || len(folded) > maxLetters {
		return 0, false
	}

	seq := Empty()
	var mask uint32
	var prev byte
	for i := 0; i < len(folded); i++ {
		c := folded[i]
		if c < 'A' || c > 'Z' {
			return 0, false
		}
		code := c - 'A'
		if !f.board.HasLetter(code) {
			return 0, false
		}
		if i > 0 && f.board.SameSide(prev, code) {
			return 0, false
		}
		seq = seq.Push(code)
		mask |= 1 << code
		prev = code
	}
	if bits.OnesCount32(mask) != len(folded) {
		return 0, false // repeated letter
	}
	return seq, true
}
