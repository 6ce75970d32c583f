package lbox

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"

	"github.com/pkg/errors"
)

// ErrMalformedSerialization is returned by Decode on truncated input, an
// oversized declared count, or a value whose sentinel bit is missing.
var ErrMalformedSerialization = errors.New("malformed serialized letter sequences")

// maxDecodeCount bounds the declared element count against obviously
// corrupt input before any allocation is attempted.
const maxDecodeCount = 1 << 24

// Encode writes list as a 4-byte little-endian count followed by
// 8 bytes per LetterSequence, also little-endian. This is the wire
// format shared between a coordinator and its workers.
func Encode(list []LetterSequence) []byte {
	buf := make([]byte, 4+8*len(list))
	binary.LittleEndian.PutUint32(buf, uint32(len(list)))
	for i, s := range list {
		binary.LittleEndian.PutUint64(buf[4+8*i:], uint64(s))
	}
	return buf
}

// Decode is the exact inverse of Encode: Decode(Encode(x)) == x for
// every valid x. It rejects truncated buffers, an oversized declared
// count, and any 8-byte value that fails the sentinel-bit invariant of
// exactly one sentinel bit set, letter slots below it only.
func Decode(buf []byte) ([]LetterSequence, error) {
	if len(buf) < 4 {
		return nil, errors.Wrap(ErrMalformedSerialization, "buffer shorter than the 4-byte count prefix")
	}
	count := binary.LittleEndian.Uint32(buf)
	if count > maxDecodeCount {
		return nil, errors.Wrapf(ErrMalformedSerialization, "declared count %d exceeds sanity bound", count)
	}
	want := 4 + 8*int(count)
	if len(buf) != want {
		return nil, errors.Wrapf(ErrMalformedSerialization, "buffer is %d bytes, want %d for count %d", len(buf), want, count)
	}

	out := make([]LetterSequence, count)
	for i := range out {
		v := binary.LittleEndian.Uint64(buf[4+8*i:])
		seq := LetterSequence(v)
		if !validSentinel(seq) {
			return nil, errors.Wrapf(ErrMalformedSerialization, "element %d violates the sentinel invariant", i)
		}
		out[i] = seq
	}
	return out, nil
}

// validSentinel reports whether seq has exactly one sentinel bit set and
// it sits at a valid letter-slot boundary (a multiple of 5 bits, at most
// the 12-letter capacity).
func validSentinel(seq LetterSequence) bool {
	if seq == 0 {
		return false
	}
	pos := seq.sentinel()
	if pos%letterBits != 0 || pos > letterBits*maxLetters {
		return false
	}
	// Nothing above pos is set, by construction of sentinel(), which
	// reports the highest set bit; the sentinel bit itself must be set.
	return uint64(seq)&(1<<pos) != 0
}

// Fingerprint returns a content hash of a candidate list, used as the
// SolutionAggregator's cache key (see aggregator.go and
// requestFingerprint in core.go). It is not part of the Encode wire
// format.
func Fingerprint(list []LetterSequence) [blake2b.Size256]byte {
	h, _ := blake2b.New256(nil)
	buf := Encode(list)
	h.Write(buf)
	var out [blake2b.Size256]byte
	copy(out[:], h.Sum(nil))
	return out
}
