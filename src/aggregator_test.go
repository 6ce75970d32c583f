package lbox

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregatorBasicFlow(t *testing.T) {
	a := NewSolutionAggregator()
	a.Start(1, 2)

	snap, ok := a.Submit(SolutionChunk{RequestID: 1, Buckets: bucketsWith(2, "PAGODAS SUNTRIP")})
	assert.True(t, ok)
	assert.False(t, snap.IsFinalOverall)
	assert.Equal(t, []string{"PAGODAS SUNTRIP"}, snap.Buckets[1])

	snap, ok = a.Submit(SolutionChunk{RequestID: 1, IsFinal: true})
	assert.True(t, ok)
	assert.False(t, snap.IsFinalOverall)

	snap, ok = a.Submit(SolutionChunk{RequestID: 1, IsFinal: true})
	assert.True(t, ok)
	assert.True(t, snap.IsFinalOverall)
}

func TestAggregatorDiscardsSupersededRequest(t *testing.T) {
	a := NewSolutionAggregator()
	a.Start(1, 1)
	a.Start(2, 1) // supersedes request 1 before it reported anything

	_, ok := a.Submit(SolutionChunk{RequestID: 1, Buckets: bucketsWith(0, "STALE")})
	assert.False(t, ok, "a stale request-1 emission must be discarded")

	snap, ok := a.Submit(SolutionChunk{RequestID: 2, IsFinal: true, Buckets: bucketsWith(0, "FRESH")})
	assert.True(t, ok)
	assert.Equal(t, []string{"FRESH"}, snap.Buckets[0])
	assert.True(t, snap.IsFinalOverall)
}

func TestAggregatorDedupesOnInsert(t *testing.T) {
	a := NewSolutionAggregator()
	a.Start(1, 1)
	a.Submit(SolutionChunk{RequestID: 1, Buckets: bucketsWith(0, "SAME")})
	snap, _ := a.Submit(SolutionChunk{RequestID: 1, IsFinal: true, Buckets: bucketsWith(0, "SAME")})
	assert.Equal(t, []string{"SAME"}, snap.Buckets[0])
}

func TestAggregatorCache(t *testing.T) {
	a := NewSolutionAggregator()
	var fp [32]byte
	fp[0] = 7

	_, ok := a.CachedResult(fp)
	assert.False(t, ok)

	var buckets [maxWords][]string
	buckets[0] = []string{"CACHED"}
	a.StoreResult(fp, buckets)

	got, ok := a.CachedResult(fp)
	assert.True(t, ok)
	assert.Equal(t, buckets, got)
}

func bucketsWith(n int, sol string) [maxWords][]string {
	var b [maxWords][]string
	b[n] = []string{sol}
	return b
}
