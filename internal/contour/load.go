package contour

import "time"

// stageLoad decodes the input image and prepares the working buffer, exactly
// once across the pool. When the source already fits the target resolution
// the working buffer aliases the source and the rescale stage has nothing to
// do. The glyph table backbone is allocated here too, under its own guard.
func stageLoad(c *Context, tid int) error {
	err := c.loadGuard.do(func() error {
		start := time.Now()
		img, err := ReadImage(c.In)
		if err != nil {
			return err
		}
		c.src = img
		if img.W <= RescaleWidth && img.H <= RescaleHeight {
			c.scaled = img
		} else {
			c.scaled = NewImage(RescaleWidth, RescaleHeight)
		}
		debugLog("worker %d decoded %s (%dx%d) in %s", tid, c.In, img.W, img.H, time.Since(start))
		return nil
	})
	if err != nil {
		return err
	}
	return c.cmapGuard.do(func() error {
		c.cmap = make([]*Image, GlyphConfigs)
		return nil
	})
}

// stageWrite persists the finished image, exactly once across the pool.
func stageWrite(c *Context, tid int) error {
	return c.writeGuard.do(func() error {
		start := time.Now()
		if err := WriteImage(c.scaled, c.Out); err != nil {
			return err
		}
		debugLog("worker %d wrote %s in %s", tid, c.Out, time.Since(start))
		return nil
	})
}
