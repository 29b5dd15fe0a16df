// Package runner drives a workplanner.Planner: a single dispatch loop
// pulls commands via Take and spawns one executor goroutine per command,
// each holding a slot from a worker-slot pool that either caps how many
// slot objects are built (fixed) or builds them on demand (dynamic), and
// reports completion back via Complete.
package runner

import (
	"context"
	"sync"

	"github.com/ekanter/workplanner"
	"github.com/ekanter/workplanner/runner/pool"
)

// Runner owns the worker goroutines that service a Planner. Construct
// one with New, start it with Run, and stop it with Close once the
// Planner has been drained (see workplanner.Planner.Drain).
type Runner struct {
	planner *workplanner.Planner
	cfg     config

	errs chan error

	inflight sync.WaitGroup // outstanding executor goroutines
	workers  sync.WaitGroup // the single dispatch loop goroutine
	slots    pool.Pool

	lifecycle *lifecycleCoordinator
}

// New constructs a Runner for planner. The default shape is dynamic,
// constructing a fresh slot object per command in flight; use
// WithFixedWorkers to recycle a bounded number of slot objects instead.
func New(planner *workplanner.Planner, opts ...Option) *Runner {
	cfg := applyOptions(opts)

	var slots pool.Pool
	if cfg.shape == shapeFixed {
		slots = pool.NewFixed(cfg.fixedSize, newSlot)
	} else {
		slots = pool.NewDynamic(newSlot)
	}

	r := &Runner{
		planner: planner,
		cfg:     cfg,
		errs:    make(chan error, cfg.errorsBuf),
		slots:   slots,
	}
	r.lifecycle = newLifecycleCoordinator(r.wait, r.closeErrs)
	return r
}

// Errors returns the channel the runner reports execution errors and
// recovered panics on. The caller should drain it while the runner is
// running; Close closes it once every worker has exited.
func (r *Runner) Errors() <-chan error { return r.errs }

// Run starts the dispatch loop and returns immediately; it does not
// block until the loop exits. Run must be called at most once.
//
// The loop pulls commands from the planner one at a time and, for each
// one, acquires a slot from the runner's pool before spawning a goroutine
// to execute it. Concurrency itself is bounded only by how fast the
// planner hands out work; WithFixedWorkers instead caps how many distinct
// slot objects the pool ever constructs, recycling them across commands.
func (r *Runner) Run(ctx context.Context) {
	r.workers.Add(1)
	go func() {
		defer r.workers.Done()
		for {
			cmd := r.planner.Take()
			if workplanner.IsTermination(cmd) {
				r.inflight.Wait()
				r.planner.Complete(cmd)
				return
			}

			s := r.slots.Get()
			r.inflight.Add(1)
			go func(cmd workplanner.Command) {
				defer r.inflight.Done()
				defer r.slots.Put(s)
				execute(ctx, cmd, r.errs)
				r.planner.Complete(cmd)
			}(cmd)
		}
	}()
}

// Close waits for all worker goroutines to exit and then closes the
// errors channel. Call it only after the planner has been drained and
// every dispatched command has a path to completion; otherwise Close
// blocks forever. Safe to call more than once.
func (r *Runner) Close() {
	r.lifecycle.Close()
}

func (r *Runner) wait() {
	r.workers.Wait()
}

func (r *Runner) closeErrs() {
	close(r.errs)
}
