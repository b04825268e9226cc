package contour

import "sync"

// Barrier ordinals, one per stage boundary in pipeline order.
const (
	barrierLoad = iota
	barrierRescale
	barrierPrepare
	barrierGrid
	barrierMarch
	numBarriers
)

// Context is the state shared by every worker for one run: the image
// buffers, the glyph table, the binary grid, the one-time-init guards and
// the stage barriers. Workers mutate it only through a guard or by writing
// the disjoint slice handed to them by span; everything else is read-only
// after construction. The context owns its buffers for the whole run, there
// is no explicit teardown.
type Context struct {
	In, Out  string
	Workers  int
	GlyphDir string

	// Sample resamples the source image during the rescale stage.
	Sample Resampler

	src    *Image   // decoded input, set once under loadGuard
	scaled *Image   // working image; aliases src when no rescale is needed
	cmap   []*Image // one glyph per corner configuration
	grid   [][]bool // (P+1) x (Q+1) threshold cells, grid[column][row]

	// Each lazily-initialized resource has its own guard so unrelated
	// one-time inits never serialize behind a common lock.
	loadGuard  onceGuard // input decode + working buffer allocation
	cmapGuard  onceGuard // glyph table backbone allocation
	gridGuard  onceGuard // grid backbone allocation
	writeGuard onceGuard // output encode

	barriers [numBarriers]*barrier

	failMu sync.Mutex
	err    error // first unrecoverable failure; ends the run for everyone
}

// NewContext prepares the shared state for one run with a fixed pool size.
// workers must be positive.
func NewContext(in, out string, workers int) *Context {
	if workers <= 0 {
		panic("worker count must be positive")
	}
	c := &Context{
		In:       in,
		Out:      out,
		Workers:  workers,
		GlyphDir: GlyphDir,
		Sample:   SampleBicubic,
	}
	for i := range c.barriers {
		c.barriers[i] = newBarrier(workers)
	}
	return c
}

// fail latches the first unrecoverable error of the run.
func (c *Context) fail(err error) {
	c.failMu.Lock()
	if c.err == nil {
		c.err = err
	}
	c.failMu.Unlock()
}

// failure returns the latched error, if any.
func (c *Context) failure() error {
	c.failMu.Lock()
	defer c.failMu.Unlock()
	return c.err
}
