package contour

import "testing"

func TestSpanTilesRangeExactly(t *testing.T) {
	for workers := 1; workers <= 16; workers++ {
		for n := 0; n <= 129; n++ {
			prevEnd := 0
			for tid := 0; tid < workers; tid++ {
				start, end := span(tid, workers, n)
				if start != prevEnd {
					t.Fatalf("workers=%d n=%d tid=%d: start=%d, want %d (gap or overlap)", workers, n, tid, start, prevEnd)
				}
				if end < start {
					t.Fatalf("workers=%d n=%d tid=%d: end=%d < start=%d", workers, n, tid, end, start)
				}
				if end > n {
					t.Fatalf("workers=%d n=%d tid=%d: end=%d past range", workers, n, tid, end)
				}
				prevEnd = end
			}
			if prevEnd != n {
				t.Fatalf("workers=%d n=%d: union ends at %d, want %d", workers, n, prevEnd, n)
			}
		}
	}
}

func TestSpanBalanced(t *testing.T) {
	for workers := 1; workers <= 16; workers++ {
		for n := 0; n <= 129; n++ {
			minSize, maxSize := n, 0
			for tid := 0; tid < workers; tid++ {
				start, end := span(tid, workers, n)
				size := end - start
				if size < minSize {
					minSize = size
				}
				if size > maxSize {
					maxSize = size
				}
			}
			if maxSize-minSize > 1 {
				t.Fatalf("workers=%d n=%d: slice sizes span %d..%d, want gap <= 1", workers, n, minSize, maxSize)
			}
		}
	}
}
