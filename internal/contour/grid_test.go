package contour

import "testing"

// newStageContext wires up just enough shared state to run the parallel
// stages directly, without the load stage's file IO.
func newStageContext(img *Image, workers int) *Context {
	c := NewContext("", "", workers)
	c.src = img
	c.scaled = img
	c.grid = make([][]bool, img.W/Step+1)
	c.cmap = make([]*Image, GlyphConfigs)
	return c
}

func runGrid(t *testing.T, c *Context) {
	t.Helper()
	for tid := 0; tid < c.Workers; tid++ {
		if err := stageGrid(c, tid); err != nil {
			t.Fatalf("stageGrid(%d): %v", tid, err)
		}
	}
}

// A 16x16 all-black image with step 8 yields a 3x3 grid that is entirely
// true: every sample point is below the threshold, including the extra
// boundary row and column.
func TestStageGridSolidBlack(t *testing.T) {
	c := newStageContext(NewImage(16, 16), 1)
	runGrid(t, c)

	if len(c.grid) != 3 {
		t.Fatalf("grid has %d columns, want 3", len(c.grid))
	}
	for i, col := range c.grid {
		if len(col) != 3 {
			t.Fatalf("column %d has %d cells, want 3", i, len(col))
		}
		for j, cell := range col {
			if !cell {
				t.Fatalf("cell [%d][%d] = false, want true", i, j)
			}
		}
	}
}

func TestStageGridThreshold(t *testing.T) {
	// Left half black (below Sigma), right half white (above).
	img := NewImage(32, 16)
	for y := 0; y < img.H; y++ {
		for x := 16; x < img.W; x++ {
			img.Set(x, y, Pixel{255, 255, 255})
		}
	}

	c := newStageContext(img, 1)
	runGrid(t, c)

	p := img.W / Step
	for i := 0; i <= p; i++ {
		want := i*Step < 16 // columns sampled in the black half
		if i == p {
			want = false // boundary column samples x = width-1, white
		}
		for j, cell := range c.grid[i] {
			if cell != want {
				t.Fatalf("cell [%d][%d] = %v, want %v", i, j, cell, want)
			}
		}
	}
}

// The grid must not depend on how columns were split across workers, and the
// boundary column must be populated exactly once either way.
func TestStageGridWorkerCountInvariant(t *testing.T) {
	img := testPattern(48, 32)

	c1 := newStageContext(img, 1)
	runGrid(t, c1)

	c4 := newStageContext(img, 4)
	runGrid(t, c4)

	if len(c1.grid) != len(c4.grid) {
		t.Fatalf("column counts differ: %d vs %d", len(c1.grid), len(c4.grid))
	}
	for i := range c1.grid {
		if c1.grid[i] == nil || c4.grid[i] == nil {
			t.Fatalf("column %d missing (1 worker: %v, 4 workers: %v)", i, c1.grid[i] != nil, c4.grid[i] != nil)
		}
		for j := range c1.grid[i] {
			if c1.grid[i][j] != c4.grid[i][j] {
				t.Fatalf("cell [%d][%d] differs across worker counts", i, j)
			}
		}
	}
}
