package contour

// stageGrid thresholds this worker's columns of sample points into the
// binary grid. Each worker allocates the columns it owns, so the only shared
// structure is the backbone and its entries are disjoint. Cell [i][Q] is
// sampled from the last pixel row so the 2x2 lookups at the bottom edge stay
// inside the image.
//
// The extra boundary column P, sampled along x = width-1, is a duty reserved
// for one worker: it is O(Q) work done once, not worth distributing. The
// same worker fills the (width-1, height-1) corner into [P][Q], which the
// last interior cell's lookup reads.
func stageGrid(c *Context, tid int) error {
	img := c.scaled
	p := img.W / Step
	q := img.H / Step

	start, end := span(tid, c.Workers, p)
	for i := start; i < end; i++ {
		col := make([]bool, q+1)
		for j := 0; j < q; j++ {
			col[j] = img.Luminance(i*Step, j*Step) <= Sigma
		}
		col[q] = img.Luminance(i*Step, img.H-1) <= Sigma
		c.grid[i] = col
	}

	if tid == c.Workers-1 {
		col := make([]bool, q+1)
		for j := 0; j < q; j++ {
			col[j] = img.Luminance(img.W-1, j*Step) <= Sigma
		}
		col[q] = img.Luminance(img.W-1, img.H-1) <= Sigma
		c.grid[p] = col
	}
	return nil
}
