package lbox

import (
	"runtime"

	"github.com/nordzilla/letrboxd/src/util"
)

// DefaultWorkerCount returns min(16, hardware_parallelism()).
func DefaultWorkerCount() int {
	return util.Min(runtime.NumCPU(), 16)
}

// Range is a half-open, contiguous slice of the candidate index space
// assigned to one worker.
type Range struct {
	Lo, Hi int
}

// SplitWork always returns exactly k ranges partitioning [0, n), handing
// out index ranges for a caller to dispatch to its own workers. When k
// exceeds n, the first n ranges each cover one index and the remaining
// k-n ranges are empty (Lo == Hi == n): every worker still gets a range
// to acknowledge, even if there is nothing in it to search.
func SplitWork(n, k int) []Range {
	if k < 1 {
		k = 1
	}
	ranges := make([]Range, k)
	if n == 0 {
		return ranges // every worker acknowledges an empty range
	}

	workers := k
	if workers > n {
		workers = n
	}
	per := n / workers
	extra := n % workers
	lo := 0
	for i := 0; i < workers; i++ {
		size := per
		if i < extra {
			size++
		}
		ranges[i] = Range{Lo: lo, Hi: lo + size}
		lo += size
	}
	for i := workers; i < k; i++ {
		ranges[i] = Range{Lo: n, Hi: n}
	}
	return ranges
}

// SubChunks splits a worker's range into up to 4 equal-sized sub-ranges,
// so a worker can publish a partial result after each sub-range
// completes instead of only once at the end of its whole assignment.
func SubChunks(r Range) []Range {
	n := r.Hi - r.Lo
	if n <= 0 {
		return []Range{r}
	}
	k := n
	if k > 4 {
		k = 4
	}
	subs := make([]Range, 0, k)
	per := n / k
	extra := n % k
	lo := r.Lo
	for i := 0; i < k; i++ {
		size := per
		if i < extra {
			size++
		}
		subs = append(subs, Range{Lo: lo, Hi: lo + size})
		lo += size
	}
	return subs
}
