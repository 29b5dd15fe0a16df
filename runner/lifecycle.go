package runner

import "sync"

// lifecycleCoordinator encapsulates the shutdown sequence for a Runner.
// It doesn't own the worker goroutines; it orchestrates waiting for them
// and closing the errors channel in a deterministic order, exactly once.
type lifecycleCoordinator struct {
	wait        func()
	closeErrors func()
	once        sync.Once
}

func newLifecycleCoordinator(wait func(), closeErrors func()) *lifecycleCoordinator {
	return &lifecycleCoordinator{wait: wait, closeErrors: closeErrors}
}

// Close waits for every outstanding worker goroutine to exit, then closes
// the errors channel. Safe for concurrent calls; the sequence runs once.
func (lc *lifecycleCoordinator) Close() {
	lc.once.Do(func() {
		if lc.wait != nil {
			lc.wait()
		}
		if lc.closeErrors != nil {
			lc.closeErrors()
		}
	})
}
