package lbox

import (
	"math/bits"
	"strings"
	"testing"
)

func TestWordFilterBasicRules(t *testing.T) {
	b, _ := NewPuzzleBoard(sampleBoard)
	f := NewWordFilter(b)

	dict := []string{
		"dragons",  // valid
		"strip",    // valid
		"an",       // too short
		"zzzz",     // letters not on board
		"aa",       // repeated letter, too short anyway
		"aioaio",   // same-side consecutive (A,I both top) and repeats
		"dragons",  // duplicate of first
		"",         // empty, skipped
		"123",      // non-letters, skipped
	}

	cands, err := f.FilterReader(strings.NewReader(strings.Join(dict, "\n")))
	if err != nil {
		t.Fatalf("FilterReader: %v", err)
	}

	if len(cands) != 2 {
		t.Fatalf("got %d candidates, want 2: %v", len(cands), cands)
	}
	for i := 1; i < len(cands); i++ {
		if cands[i-1] >= cands[i] {
			t.Errorf("candidates not sorted ascending: %v", cands)
		}
	}

	seen := map[LetterSequence]bool{}
	for _, c := range cands {
		if seen[c] {
			t.Errorf("duplicate candidate %v", c)
		}
		seen[c] = true
	}
}

func TestWordFilterInvariants(t *testing.T) {
	b, _ := NewPuzzleBoard(sampleBoard)
	f := NewWordFilter(b)

	cands, err := f.FilterReader(strings.NewReader("pagodas\nsuntrip\ndragons\n"))
	if err != nil {
		t.Fatal(err)
	}

	for _, w := range cands {
		if w.Len() < 3 {
			t.Errorf("candidate %s shorter than 3", w)
		}
		mask := w.ToMask()
		if mask&^b.FullMask() != 0 {
			t.Errorf("candidate %s uses letters outside the board", w)
		}
		if bits.OnesCount32(mask) != w.Len() {
			t.Errorf("candidate %s repeats a letter", w)
		}
		for i := 1; i < w.Len(); i++ {
			if b.SameSide(w.At(i-1), w.At(i)) {
				t.Errorf("candidate %s has same-side consecutive letters", w)
			}
		}
	}
}
