package lbox

import (
	"github.com/jtolds/gls"
)

// maxWords is the depth bound on a solution: a solution is capped at
// five words.
const maxWords = 5

// candidateMgr is the goroutine-local context manager workers use to
// stash their decoded-once-per-request candidate facts: a worker
// goroutine decodes the serialized candidate list once and every
// sub-range chunk it processes afterwards reuses it without threading
// it back through call parameters.
var candidateMgr = gls.NewContextManager()

const glsFactsKey = "letrboxd-candidate-facts"

// candidateFacts is the per-request precomputation built once before
// the search begins: masks, first/last letters, and a by-first-letter
// bucket index.
type candidateFacts struct {
	words   []CandidateWord
	masks   []uint32
	firsts  []byte
	lasts   []byte
	byFirst [26][]int32
}

func buildCandidateFacts(words []CandidateWord) *candidateFacts {
	f := &candidateFacts{
		words:  words,
		masks:  make([]uint32, len(words)),
		firsts: make([]byte, len(words)),
		lasts:  make([]byte, len(words)),
	}
	for i, w := range words {
		f.masks[i] = w.ToMask()
		f.firsts[i] = w.First()
		f.lasts[i] = w.Last()
		f.byFirst[f.firsts[i]] = append(f.byFirst[f.firsts[i]], int32(i))
	}
	return f
}

// Solver runs the bounded-depth search over a board and its precomputed
// candidate facts.
type Solver struct {
	board *PuzzleBoard
	facts *candidateFacts
}

// NewSolver returns a Solver bound to board and the already-filtered
// candidate list words.
func NewSolver(board *PuzzleBoard, words []CandidateWord) *Solver {
	return &Solver{board: board, facts: buildCandidateFacts(words)}
}

// solutionSink receives each emitted solution as a slice of candidate
// indices into Solver.facts.words, in path order. The slice is only
// valid for the duration of the call; callers that retain it must copy.
type solutionSink func(path []int32)

// SearchRange enumerates every solution whose first word's index lies
// in [lo, hi). Splitting [0, n) into any set of disjoint ranges and
// unioning the solutions found for each range yields the same multiset
// as searching [0, n) once.
func (s *Solver) SearchRange(lo, hi int, sink solutionSink) {
	if lo >= hi {
		return
	}
	full := s.board.FullMask()
	path := make([]int32, 0, maxWords)
	var walk func(accMask uint32, need byte)
	walk = func(accMask uint32, need byte) {
		if accMask == full {
			sink(path)
		}
		if len(path) == maxWords {
			return
		}
		for _, j := range s.facts.byFirst[need] {
			m := s.facts.masks[j]
			overlap := m & accMask
			if overlap != 1<<need {
				continue // no-repeat rule: only the join letter may overlap
			}
			path = append(path, j)
			walk(accMask|m, s.facts.lasts[j])
			path = path[:len(path)-1]
		}
	}

	for i := lo; i < hi; i++ {
		path = append(path[:0], int32(i))
		walk(s.facts.masks[i], s.facts.lasts[i])
	}
}

// solutionString renders a path of candidate indices as "WORD WORD ...".
func (s *Solver) solutionString(path []int32) string {
	out := make([]byte, 0, maxLetters+maxWords)
	for i, idx := range path {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, s.facts.words[idx].String()...)
	}
	return string(out)
}

// bucketOf returns the 1..5 word-count bucket a path belongs in.
func bucketOf(path []int32) int {
	return len(path)
}

// runWithGLS registers facts under the goroutine-local context manager
// for the lifetime of fn, so nested helpers (and any future sub-range
// call on the same goroutine) can recover them via candidateFromContext
// without an explicit parameter. It is invoked once per worker; the
// worker's own sub-range loop runs entirely inside fn.
func runWithGLS(requestID int64, facts *candidateFacts, fn func()) {
	candidateMgr.SetValues(gls.Values{glsFactsKey: struct {
		requestID int64
		facts     *candidateFacts
	}{requestID, facts}}, fn)
}

// candidateFromContext recovers the facts stashed by runWithGLS for the
// calling goroutine, along with whether they belong to requestID.
func candidateFromContext(requestID int64) (*candidateFacts, bool) {
	v, ok := candidateMgr.GetValue(glsFactsKey)
	if !ok {
		return nil, false
	}
	entry := v.(struct {
		requestID int64
		facts     *candidateFacts
	})
	return entry.facts, entry.requestID == requestID
}
