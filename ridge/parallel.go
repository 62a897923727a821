// Package ridge: bounded goroutine fan-out for the embarrassingly parallel
// loops (per-fold fits, per-alpha grid sweeps). Each iteration owns its
// index's output slot exclusively, so no locking is needed beyond the
// semaphore that bounds concurrency.
package ridge

import "sync"

// forEach runs body(i) for i in [0, length) with at most limit concurrent
// goroutines. limit <= 1 degrades to a plain sequential loop, which keeps
// the sequential path allocation-free and trivially debuggable. Bodies must
// not share mutable state across indices.
func forEach(length, limit int, body func(i int)) {
	if length <= 0 {
		return
	}
	if limit <= 1 {
		for i := 0; i < length; i++ {
			body(i)
		}
		return
	}

	sem := make(chan struct{}, limit)
	var wg sync.WaitGroup
	wg.Add(length)
	for i := 0; i < length; i++ {
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			body(i)
		}(i)
	}
	wg.Wait()
}

// firstError returns the first non-nil error of a per-index error slice,
// giving parallel loops the same error surface as sequential ones.
func firstError(errs []error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
