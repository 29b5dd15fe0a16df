package runner

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ekanter/workplanner"
)

type countingCommand struct {
	*workplanner.BaseCommand
	ran *int32
	err error
}

func newCountingCommand(tag workplanner.Tag, ran *int32, err error) *countingCommand {
	return &countingCommand{BaseCommand: workplanner.NewBaseCommand(tag), ran: ran, err: err}
}

func (c *countingCommand) Execute(context.Context) error {
	atomic.AddInt32(c.ran, 1)
	return c.err
}

func TestRunner_FixedWorkers_ExecutesAndDrains(t *testing.T) {
	p := workplanner.New()
	var ran int32

	require.NoError(t, p.Submit(newCountingCommand(workplanner.TagDie, &ran, nil)))
	require.NoError(t, p.Submit(newCountingCommand(workplanner.TagDie, &ran, nil)))

	r := New(p, WithFixedWorkers(2))
	r.Run(context.Background())

	// Once drained, Take hands out termination commands whatever is still
	// queued, so wait for both commands to run before draining.
	require.Eventually(t, func() bool { return atomic.LoadInt32(&ran) == 2 }, time.Second, time.Millisecond)
	p.Drain()
	r.Close()

	require.Equal(t, int32(2), atomic.LoadInt32(&ran))

	for err := range r.Errors() {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunner_DynamicWorkers_ExecutesAndDrains(t *testing.T) {
	p := workplanner.New()
	var ran int32

	for i := 0; i < 5; i++ {
		require.NoError(t, p.Submit(newCountingCommand(workplanner.TagDie, &ran, nil)))
	}

	r := New(p) // default shape is dynamic
	r.Run(context.Background())

	require.Eventually(t, func() bool { return atomic.LoadInt32(&ran) == 5 }, time.Second, time.Millisecond)
	p.Drain()
	r.Close()

	require.Equal(t, int32(5), atomic.LoadInt32(&ran))
}

func TestRunner_ForwardsExecutionErrors(t *testing.T) {
	p := workplanner.New()
	var ran int32
	boom := errors.New("boom")
	require.NoError(t, p.Submit(newCountingCommand(workplanner.TagDie, &ran, boom)))

	r := New(p, WithFixedWorkers(1))
	r.Run(context.Background())

	select {
	case err := <-r.Errors():
		require.ErrorIs(t, err, boom)
		tag, ok := ExtractCommandTag(err)
		require.True(t, ok)
		require.Equal(t, workplanner.TagDie, tag)
	case <-time.After(time.Second):
		t.Fatal("expected an execution error")
	}

	p.Drain()
	r.Close()
}

func TestRunner_RecoversPanics(t *testing.T) {
	p := workplanner.New()
	cmd := workplanner.NewBaseCommand(workplanner.TagDie)
	require.NoError(t, p.Submit(panicCommand{cmd}))

	r := New(p, WithFixedWorkers(1))
	r.Run(context.Background())

	select {
	case err := <-r.Errors():
		require.Error(t, err)
	case <-time.After(time.Second):
		t.Fatal("expected a recovered panic to surface as an error")
	}

	p.Drain()
	r.Close()
}

type panicCommand struct {
	*workplanner.BaseCommand
}

func (panicCommand) Execute(context.Context) error {
	panic("kaboom")
}
