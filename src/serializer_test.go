package lbox

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func buildCandidates(t *testing.T) []LetterSequence {
	t.Helper()
	words := []string{"PAGODAS", "SUNTRIP", "DRAGONS", "A", "AB"}
	var out []LetterSequence
	for _, w := range words {
		seq, err := ParseSequence(w)
		if err != nil {
			t.Fatal(err)
		}
		out = append(out, seq)
	}
	return out
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	want := buildCandidates(t)
	got, err := Decode(Encode(want))
	assert.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeEmptyList(t *testing.T) {
	buf := Encode(nil)
	assert.Equal(t, 4, len(buf))
	got, err := Decode(buf)
	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestDecodeTruncated(t *testing.T) {
	buf := Encode(buildCandidates(t))
	_, err := Decode(buf[:len(buf)-1])
	assert.Error(t, err)
}

func TestDecodeOversizedCount(t *testing.T) {
	buf := []byte{0xff, 0xff, 0xff, 0xff}
	_, err := Decode(buf)
	assert.Error(t, err)
}

func TestDecodeBadSentinel(t *testing.T) {
	buf := Encode([]LetterSequence{Empty()})
	// Zero out the sentinel bit entirely: no bit set at all violates the
	// invariant that exactly one sentinel bit must be present.
	buf[4] = 0
	_, err := Decode(buf)
	assert.ErrorIs(t, err, ErrMalformedSerialization)
}

func TestFingerprintStable(t *testing.T) {
	list := buildCandidates(t)
	a := Fingerprint(list)
	b := Fingerprint(append([]LetterSequence{}, list...))
	assert.Equal(t, a, b)

	other := append(append([]LetterSequence{}, list...), Empty().Push(0))
	assert.NotEqual(t, a, Fingerprint(other))
}
