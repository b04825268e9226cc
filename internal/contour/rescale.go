package contour

// stageRescale fills this worker's slice of the working buffer by point
// sampling the source at normalized coordinates. When the working buffer
// aliases the source there is nothing to resample and every slice is empty.
func stageRescale(c *Context, tid int) error {
	if c.scaled == c.src {
		return nil
	}
	w, h := c.scaled.W, c.scaled.H
	start, end := span(tid, c.Workers, w*h)
	for i := start; i < end; i++ {
		x, y := i%w, i/w
		u := float64(x) / float64(w-1)
		v := float64(y) / float64(h-1)
		c.scaled.Pix[i] = c.Sample(c.src, u, v)
	}
	return nil
}
