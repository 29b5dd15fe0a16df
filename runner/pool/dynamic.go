package pool

import "sync"

// NewDynamic builds a Pool with no concurrency ceiling: Get never blocks,
// creating a new slot via newFn whenever sync.Pool has none cached.
// Concurrency in this mode is bounded only by how many goroutines the
// caller chooses to spawn.
func NewDynamic(newFn func() interface{}) Pool {
	return &sync.Pool{New: newFn}
}
