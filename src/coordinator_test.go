package lbox

import "testing"

func TestSplitWorkCoversExactly(t *testing.T) {
	for _, tc := range []struct{ n, k int }{{100, 4}, {7, 3}, {1, 5}, {0, 4}, {10, 1}} {
		ranges := SplitWork(tc.n, tc.k)
		if len(ranges) != tc.k {
			t.Errorf("n=%d k=%d: len(ranges) = %d, want %d", tc.n, tc.k, len(ranges), tc.k)
		}
		covered := 0
		prevHi := 0
		for i, r := range ranges {
			if r.Lo != prevHi && !(tc.n == 0) {
				t.Errorf("n=%d k=%d: range %d not contiguous: %v after %d", tc.n, tc.k, i, r, prevHi)
			}
			if r.Hi < r.Lo {
				t.Errorf("n=%d k=%d: invalid range %v", tc.n, tc.k, r)
			}
			covered += r.Hi - r.Lo
			prevHi = r.Hi
		}
		if tc.n > 0 && covered != tc.n {
			t.Errorf("n=%d k=%d: covered %d, want %d", tc.n, tc.k, covered, tc.n)
		}
	}
}

func TestSplitWorkMoreWorkersThanItems(t *testing.T) {
	ranges := SplitWork(1, 5)
	if len(ranges) != 5 {
		t.Fatalf("len(ranges) = %d, want 5", len(ranges))
	}
	if ranges[0] != (Range{Lo: 0, Hi: 1}) {
		t.Errorf("ranges[0] = %v, want {0 1}", ranges[0])
	}
	for i := 1; i < 5; i++ {
		if ranges[i] != (Range{Lo: 1, Hi: 1}) {
			t.Errorf("ranges[%d] = %v, want empty range {1 1}", i, ranges[i])
		}
	}
}

func TestSplitWorkExtraGoesToFirstWorkers(t *testing.T) {
	ranges := SplitWork(10, 3) // 4,3,3
	sizes := []int{ranges[0].Hi - ranges[0].Lo, ranges[1].Hi - ranges[1].Lo, ranges[2].Hi - ranges[2].Lo}
	want := []int{4, 3, 3}
	for i := range want {
		if sizes[i] != want[i] {
			t.Errorf("sizes = %v, want %v", sizes, want)
		}
	}
}

func TestSubChunksBoundedAtFour(t *testing.T) {
	subs := SubChunks(Range{Lo: 0, Hi: 100})
	if len(subs) != 4 {
		t.Errorf("len(subs) = %d, want 4", len(subs))
	}
	covered := 0
	for _, s := range subs {
		covered += s.Hi - s.Lo
	}
	if covered != 100 {
		t.Errorf("covered = %d, want 100", covered)
	}
}

func TestSubChunksSmallRange(t *testing.T) {
	subs := SubChunks(Range{Lo: 5, Hi: 7})
	if len(subs) != 2 {
		t.Errorf("len(subs) = %d, want 2", len(subs))
	}
}

func TestSubChunksEmptyRange(t *testing.T) {
	subs := SubChunks(Range{Lo: 3, Hi: 3})
	if len(subs) != 1 || subs[0].Lo != 3 || subs[0].Hi != 3 {
		t.Errorf("expected a single empty sub-range, got %v", subs)
	}
}
