// Package pool provides the two worker-slot shapes the runner package
// chooses between: a fixed-capacity pool that caps how many worker
// objects it ever builds, and a dynamic pool that builds them on demand.
// Neither limits how many callers hold a slot at once.
package pool

// Pool hands out and reclaims opaque worker slot objects. Get never
// blocks; a fixed pool caps how many distinct slots it ever constructs
// and recycles them, while a dynamic pool creates one whenever none is
// cached. Put never blocks.
type Pool interface {
	// Get returns a worker slot, creating one if the pool allows it.
	Get() interface{}

	// Put returns a worker slot to the pool for reuse.
	Put(interface{})
}
