package contour

import (
	"fmt"
	"path/filepath"
)

// stagePrepare allocates the grid backbone (once) and decodes this worker's
// share of the contour glyphs. Table entries are disjoint across workers, so
// no locking beyond the backbone guard; the table is read-only once the
// stage barrier passes.
func stagePrepare(c *Context, tid int) error {
	if err := c.gridGuard.do(func() error {
		c.grid = make([][]bool, c.scaled.W/Step+1)
		return nil
	}); err != nil {
		return err
	}

	start, end := span(tid, c.Workers, GlyphConfigs)
	for k := start; k < end; k++ {
		g, err := ReadImage(filepath.Join(c.GlyphDir, fmt.Sprintf("%d.ppm", k)))
		if err != nil {
			return err
		}
		c.cmap[k] = g
	}
	return nil
}
