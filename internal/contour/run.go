package contour

import "golang.org/x/sync/errgroup"

// Run renders contour lines over the image at in and writes the result to
// out, using a fixed pool of workers goroutines created once for the whole
// pipeline. workers must be positive.
func Run(in, out string, workers int) error {
	return NewContext(in, out, workers).Run()
}

// Run spawns the pool and blocks until every worker has finished all
// pipeline stages. No worker is created or torn down mid-pipeline. The
// run's first failure is returned.
func (c *Context) Run() error {
	debugLog("starting %d workers: %s -> %s", c.Workers, c.In, c.Out)
	var g errgroup.Group
	for tid := 0; tid < c.Workers; tid++ {
		tid := tid
		g.Go(func() error { return c.worker(tid) })
	}
	return g.Wait()
}
