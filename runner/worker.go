package runner

import (
	"context"
	"fmt"

	"github.com/ekanter/workplanner"
)

// slot is the object recycled through the worker pool. It carries no
// state of its own; it exists so fixed-capacity mode has something
// concrete to gate on.
type slot struct{}

func newSlot() interface{} { return &slot{} }

// execute runs cmd and reports any error or recovered panic on errs,
// tagged with the command's identity. It does not call Complete; the
// caller owns that so it can also stop the worker loop on termination.
func execute(ctx context.Context, cmd workplanner.Command, errs chan<- error) {
	exec, ok := cmd.(workplanner.Executable)
	if !ok {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			trySend(errs, newCommandTaggedError(fmt.Errorf("command execution panicked: %v", r), cmd))
		}
	}()

	if err := exec.Execute(ctx); err != nil {
		trySend(errs, newCommandTaggedError(err, cmd))
	}
}

// trySend forwards err to errs without blocking forever if nobody is
// reading: a full buffer drops the error rather than stalling a worker.
func trySend(errs chan<- error, err error) {
	if err == nil {
		return
	}
	select {
	case errs <- err:
	default:
	}
}
