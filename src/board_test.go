package lbox

import "testing"

const sampleBoard = "AIODGTESUNPR" // top=AIO right=DGT bottom=ESU left=NPR

func TestNewPuzzleBoard(t *testing.T) {
	b, err := NewPuzzleBoard(sampleBoard)
	if err != nil {
		t.Fatalf("NewPuzzleBoard: %v", err)
	}
	if b.Side(0) != [3]byte{'A' - 'A', 'I' - 'A', 'O' - 'A'} {
		t.Errorf("top side mismatch: %v", b.Side(0))
	}
	if b.Side(3) != [3]byte{'N' - 'A', 'P' - 'A', 'R' - 'A'} {
		t.Errorf("left side mismatch: %v", b.Side(3))
	}
	if b.SideOf('A'-'A') != 0 || b.SideOf('R'-'A') != 3 {
		t.Error("SideOf mismatch")
	}
	if !b.SameSide('A'-'A', 'I'-'A') {
		t.Error("A and I should share a side")
	}
	if b.SameSide('A'-'A', 'D'-'A') {
		t.Error("A and D should not share a side")
	}
	if !b.HasLetter('S' - 'A') {
		t.Error("S should be on the board")
	}
	if b.HasLetter('Z' - 'A') {
		t.Error("Z should not be on the board")
	}
}

func TestNewPuzzleBoardWrongLength(t *testing.T) {
	if _, err := NewPuzzleBoard("ABC"); err == nil {
		t.Error("expected error for short input")
	}
}

func TestNewPuzzleBoardDuplicateLetter(t *testing.T) {
	if _, err := NewPuzzleBoard("AIODGTESUNPA"); err == nil {
		t.Error("expected error for duplicate letter")
	}
}

func TestNewPuzzleBoardNonLetter(t *testing.T) {
	if _, err := NewPuzzleBoard("AIODGTESUNP1"); err == nil {
		t.Error("expected error for non-letter character")
	}
}

func TestFullMask(t *testing.T) {
	b, _ := NewPuzzleBoard(sampleBoard)
	for _, c := range sampleBoard {
		letter := byte(c) - 'A'
		if b.FullMask()&(1<<letter) == 0 {
			t.Errorf("FullMask missing letter %c", c)
		}
	}
}
