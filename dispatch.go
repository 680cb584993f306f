package main

import "golang.org/x/sync/errgroup"

// countAll processes every source with a bounded pool of workers and
// returns results indexed by input position, so output order never
// depends on completion order. Each worker owns its source's scan state
// outright; the only shared structures are the pool's internal queue and
// the progress tracker.
func countAll(s strategy, sources []Source, threads int, track *tracker) []Result {
	if threads < 1 {
		threads = 1
	}
	results := make([]Result, len(sources))

	var g errgroup.Group
	g.SetLimit(threads)
	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			entry := track.start(src.Path)
			counts, err := countSource(s, src, entry)
			track.done(entry)
			results[i] = Result{Name: src.Path, Counts: counts, Err: err}
			return nil
		})
	}
	// Workers never return errors; per-source failures land in Result.Err.
	_ = g.Wait()
	return results
}
