package lbox

import "github.com/nordzilla/letrboxd/src/util"

// evtCancel is the event a Core sets on a request's cancelBox to signal
// that the request has been superseded, letting an in-flight worker
// discover at its own pace, between sub-chunks, that it should abandon
// the rest of its assigned range.
const evtCancel util.EventType = iota

// StartRequest is the "start request" message handed to a worker: a
// request id, the serialized candidate list, and the index range that
// worker owns.
type StartRequest struct {
	RequestID int64
	Encoded   []byte
	Lo, Hi    int
}

// SolutionChunk is the "solutions chunk" message a worker reports back:
// a partial (or final) emission, grouped into the five word-count
// buckets.
type SolutionChunk struct {
	RequestID int64
	IsFinal   bool
	Buckets   [maxWords]([]string)

	// Progress is the fraction of this worker's sub-chunks that have
	// completed, 0..1.
	Progress float64

	// DecodeErr is set when a worker's StartRequest.Encoded failed to
	// decode; the worker still emits a final chunk with whatever
	// solutions it already accumulated (here: none) instead of going
	// silent.
	DecodeErr error
}
