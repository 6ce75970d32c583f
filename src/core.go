package lbox

import (
	"sync"

	"github.com/nordzilla/letrboxd/src/logging"
	"github.com/nordzilla/letrboxd/src/util"
)

/*
Request lifecycle:

	caller    -> Solve         -> Core      (new request, supersedes old)
	Core      -> StartRequest  -> worker    (per assigned range)
	worker    -> SolutionChunk -> Core      (per sub-range chunk)
	Core      -> Snapshot      -> onSnapshot (per accepted chunk)
*/

// Core owns the single active request and its SolutionAggregator.
// Workers hold no shared mutable state; they coordinate purely by the
// messages defined in message.go.
type Core struct {
	mu        sync.Mutex
	agg       *SolutionAggregator
	nextID    int64
	cancelBox *util.EventBox
}

// NewCore returns a ready-to-use Core.
func NewCore() *Core {
	return &Core{agg: NewSolutionAggregator()}
}

// Solve runs one request to completion: it takes a candidate list
// already produced by WordFilter, partitions it across workerCount
// workers, searches, aggregates, and calls onSnapshot once per accepted
// chunk. It returns the final snapshot. Starting a new Solve call
// supersedes any request still in flight.
func (c *Core) Solve(board *PuzzleBoard, words []CandidateWord, workerCount int, onSnapshot func(Snapshot)) Snapshot {
	if workerCount < 1 {
		workerCount = DefaultWorkerCount()
	}

	fp := requestFingerprint(board, words)

	c.mu.Lock()
	if c.cancelBox != nil {
		c.cancelBox.Set(evtCancel, true) // supersede whatever request was running
	}
	c.nextID++
	id := c.nextID
	cancelBox := util.NewEventBox()
	c.cancelBox = cancelBox

	if cached, ok := c.agg.CachedResult(fp); ok {
		c.agg.Start(id, 0)
		snap := Snapshot{RequestID: id, Buckets: cached, IsFinalOverall: true}
		c.mu.Unlock()
		onSnapshot(snap)
		return snap
	}
	c.agg.Start(id, workerCount)
	c.mu.Unlock()

	encoded := Encode(words)
	ranges := SplitWork(len(words), workerCount)
	results := make(chan SolutionChunk, workerCount*4)

	var wg sync.WaitGroup
	for _, r := range ranges {
		wg.Add(1)
		req := StartRequest{RequestID: id, Encoded: encoded, Lo: r.Lo, Hi: r.Hi}
		go func(req StartRequest) {
			defer wg.Done()
			c.runWorker(req, cancelBox, board, results)
		}(req)
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	var final Snapshot
	for chunk := range results {
		if chunk.DecodeErr != nil {
			logging.Error(chunk.DecodeErr, "worker failed to decode its candidate range")
		}
		snap, ok := c.agg.Submit(chunk)
		if !ok {
			continue // superseded request, silently discarded
		}
		onSnapshot(snap)
		final = snap
	}

	if final.IsFinalOverall {
		c.agg.StoreResult(fp, final.Buckets)
	}
	return final
}

// runWorker is the body of a single worker goroutine: decode the
// candidate list once, then walk its assigned range one sub-chunk at a
// time, checking for supersession at each yield point between chunks.
func (c *Core) runWorker(req StartRequest, cancelBox *util.EventBox, board *PuzzleBoard, out chan<- SolutionChunk) {
	words, err := Decode(req.Encoded)
	if err != nil {
		out <- SolutionChunk{RequestID: req.RequestID, IsFinal: true, DecodeErr: err}
		return
	}
	facts := buildCandidateFacts(words)

	runWithGLS(req.RequestID, facts, func() {
		subs := SubChunks(Range{Lo: req.Lo, Hi: req.Hi})
		for i, sub := range subs {
			if cancelBox.Peek(evtCancel) {
				return // lazily discover supersession, abandon the rest of our range
			}
			buckets := searchSubRangeViaContext(req.RequestID, board, sub)
			out <- SolutionChunk{
				RequestID: req.RequestID,
				IsFinal:   i == len(subs)-1,
				Buckets:   buckets,
				Progress:  float64(i+1) / float64(len(subs)),
			}
		}
	})
}

// searchSubRangeViaContext retrieves the goroutine-local candidate facts
// stashed by runWithGLS and runs one sub-range search against them,
// never receiving facts as an explicit parameter.
func searchSubRangeViaContext(requestID int64, board *PuzzleBoard, sub Range) [maxWords][]string {
	facts, ok := candidateFromContext(requestID)
	var buckets [maxWords][]string
	if !ok {
		return buckets
	}
	solver := &Solver{board: board, facts: facts}
	solver.SearchRange(sub.Lo, sub.Hi, func(path []int32) {
		n := bucketOf(path) - 1
		buckets[n] = append(buckets[n], solver.solutionString(path))
	})
	return buckets
}

// requestFingerprint keys the SolutionAggregator's result cache on both
// the board and the exact candidate list, so two different boards (or
// the same board with a different dictionary) never collide.
func requestFingerprint(board *PuzzleBoard, words []CandidateWord) [32]byte {
	boarded := make([]CandidateWord, 0, len(words)+4)
	for i := 0; i < 4; i++ {
		side := board.Side(i)
		seq := Empty()
		for _, l := range side {
			seq = seq.Push(l)
		}
		boarded = append(boarded, seq)
	}
	boarded = append(boarded, words...)
	return Fingerprint(boarded)
}
