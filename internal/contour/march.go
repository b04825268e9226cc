package contour

// configIndex packs the four corners of grid square (i, j) into the glyph
// table index, clockwise from the square's origin corner, most significant
// bit first.
func configIndex(grid [][]bool, i, j int) int {
	k := 0
	if grid[i][j] {
		k += 8
	}
	if grid[i][j+1] {
		k += 4
	}
	if grid[i+1][j+1] {
		k += 2
	}
	if grid[i+1][j] {
		k++
	}
	return k
}

// stamp overwrites the glyph's pixels into img at (x, y), clipped to the
// image bounds. Direct overwrite, no blending.
func stamp(img, glyph *Image, x, y int) {
	w := glyph.W
	if x+w > img.W {
		w = img.W - x
	}
	h := glyph.H
	if y+h > img.H {
		h = img.H - y
	}
	for gy := 0; gy < h; gy++ {
		copy(img.Pix[(y+gy)*img.W+x:][:w], glyph.Pix[gy*glyph.W:][:w])
	}
}

// stageMarch renders this worker's columns of grid squares: look up each
// square's corner configuration and stamp the matching glyph over the
// working image. Column slices are disjoint, so destination pixels never
// contend.
func stageMarch(c *Context, tid int) error {
	img := c.scaled
	p := img.W / Step
	q := img.H / Step

	start, end := span(tid, c.Workers, p)
	for i := start; i < end; i++ {
		for j := 0; j < q; j++ {
			k := configIndex(c.grid, i, j)
			stamp(img, c.cmap[k], i*Step, j*Step)
		}
	}
	return nil
}
