package lbox

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/nordzilla/letrboxd/src/util"
)

// cacheCapacity bounds the SolutionAggregator's result cache: a
// size-capped LRU of completed bucket sets keyed by request fingerprint.
const cacheCapacity = 64

// Snapshot is the aggregator's published view of the active request:
// five word-count buckets and whether every worker has reported final.
type Snapshot struct {
	RequestID      int64
	Buckets        [maxWords][]string
	IsFinalOverall bool
	PendingWorkers int
}

// SolutionAggregator collects per-worker, per-chunk emissions into five
// word-count buckets for the currently active request, discarding
// emissions tagged with a superseded request id.
type SolutionAggregator struct {
	activeID int64
	buckets  [maxWords][]string
	pending  int
	seen     *util.ConcurrentSet[string] // defense-in-depth solution dedup

	cache *lru.Cache[[32]byte, [maxWords][]string]
}

// NewSolutionAggregator returns an aggregator with an empty active
// request (id 0, zero pending workers: Start must be called before any
// Submit is meaningful).
func NewSolutionAggregator() *SolutionAggregator {
	cache, err := lru.New[[32]byte, [maxWords][]string](cacheCapacity)
	if err != nil {
		// Only returns an error for a non-positive size, which
		// cacheCapacity never is.
		panic(err)
	}
	return &SolutionAggregator{cache: cache}
}

// Start begins a new request, superseding whatever was active: the
// active id is updated, the five buckets are cleared, and the pending
// count is set to workerCount. Any in-flight emissions tagged with the
// old id, including ones that arrive after this call, are discarded by
// Submit's id check.
func (a *SolutionAggregator) Start(requestID int64, workerCount int) {
	a.activeID = requestID
	a.buckets = [maxWords][]string{}
	a.pending = workerCount
	a.seen = util.NewConcurrentSet[string]()
}

// CachedResult returns a previously cached bucket set for fingerprint,
// if this exact (board, candidate list) combination has been solved
// before within the cache's capacity.
func (a *SolutionAggregator) CachedResult(fingerprint [32]byte) ([maxWords][]string, bool) {
	return a.cache.Get(fingerprint)
}

// StoreResult caches a completed bucket set under fingerprint for reuse
// by a future identical request.
func (a *SolutionAggregator) StoreResult(fingerprint [32]byte, buckets [maxWords][]string) {
	a.cache.Add(fingerprint, buckets)
}

// Submit applies one SolutionChunk to the active request. It returns the
// published Snapshot and false if chunk's request id does not match the
// active one (a superseded, discarded emission).
func (a *SolutionAggregator) Submit(chunk SolutionChunk) (Snapshot, bool) {
	if chunk.RequestID != a.activeID {
		return Snapshot{}, false
	}

	for n := 0; n < maxWords; n++ {
		for _, sol := range chunk.Buckets[n] {
			if a.seen.Contains(sol) {
				continue
			}
			a.seen.Add(sol)
			a.buckets[n] = append(a.buckets[n], sol)
		}
	}
	if chunk.IsFinal {
		a.pending--
	}

	snap := Snapshot{
		RequestID:      a.activeID,
		Buckets:        a.buckets,
		IsFinalOverall: a.pending <= 0,
		PendingWorkers: a.pending,
	}
	return snap, true
}
