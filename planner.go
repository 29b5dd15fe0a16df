package workplanner

import (
	"sync"

	"github.com/ekanter/workplanner/metrics"
)

// Planner is a thread-safe coordinator that accepts commands from
// producers via Submit and dispenses them to workers via Take, enforcing
// group ordering, ASAP conflict rules, and an orderly shutdown drain. A
// single mutex and condition variable guard all state; see the package
// doc comment for the concurrency model.
type Planner struct {
	mu   sync.Mutex
	cond *sync.Cond

	state   *dispatcherState
	backlog *deque
	asap    *deque
	active  *activeSet

	cfg         config
	instruments metrics.Instruments
}

// New constructs a ready-to-use Planner. The returned Planner starts with
// an empty backlog and ASAP lane, group id 0 both current and forming,
// and is not draining.
func New(opts ...Option) *Planner {
	cfg := applyOptions(opts)
	p := &Planner{
		state:       newDispatcherState(),
		backlog:     newDeque(),
		asap:        newDeque(),
		active:      newActiveSet(),
		cfg:         cfg,
		instruments: metrics.NewInstruments(cfg.metrics),
	}
	p.cond = sync.NewCond(&p.mu)
	return p
}

// Submit hands cmd to the planner. ASAP-tagged commands are stamped with
// the currently active group and routed to the ASAP lane; every other
// command (including Die) is joined to the group currently being formed,
// per the Family C group-closing policy, and routed to the backlog.
//
// Submit never blocks on worker availability; it only briefly holds the
// planner's lock. It returns ErrNilCommand if cmd is nil.
func (p *Planner) Submit(cmd Command) error {
	if cmd == nil {
		return ErrNilCommand
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	tag := cmd.Tag()
	var lane string
	if isASAP(tag) {
		cmd.SetGroup(p.state.currentGroupID)
		p.asap.pushBack(cmd)
		lane = "asap"
	} else {
		p.state.joinNextGroup(cmd)
		p.backlog.pushBack(cmd)
		lane = "backlog"
	}

	p.instruments.Submitted.Add(1)
	if logger := p.cfg.logger; logger != nil {
		logger.Debug().Str("tag", string(tag)).Str("lane", lane).Log("command submitted")
	}

	p.cond.Broadcast()
	return nil
}

// Take blocks until a command is eligible for dispatch, then returns it.
// A worker must eventually call Complete on whatever Take returns.
//
// On each evaluation, Take tries, in order: a termination command if
// Drain has been called; the head of the ASAP lane, if it carries no
// conflict key or no currently active command shares its conflict key;
// the head of the backlog, if it belongs to the currently active group.
// A head that is examined but not eligible is put back at the front of
// its queue, preserving order, and the next candidate is tried. If
// nothing is eligible, Take suspends until Submit, Complete, or Drain
// wakes it, then re-evaluates from the top.
func (p *Planner) Take() Command {
	p.mu.Lock()
	defer p.mu.Unlock()

	for {
		if cmd := p.tryNext(); cmd != nil {
			p.instruments.Dispatched.Add(1)
			p.instruments.Active.Add(1)
			if logger := p.cfg.logger; logger != nil {
				logger.Trace().Str("tag", string(cmd.Tag())).Log("command dispatched")
			}
			return cmd
		}
		p.cond.Wait()
	}
}

// tryNext makes one dispatch attempt. Called with p.mu held. Returns nil
// if nothing is currently eligible.
func (p *Planner) tryNext() Command {
	if p.state.shuttingDown {
		cmd := newTerminationCommand(p.state.currentGroupID)
		p.active.add(cmd)
		return cmd
	}

	if cmd := p.asap.popFront(); cmd != nil {
		if p.asapEligible(cmd) {
			p.active.add(cmd)
			return cmd
		}
		p.asap.pushFront(cmd)
	}

	if cmd := p.backlog.popFront(); cmd != nil {
		if cmd.Group() == p.state.currentGroupID {
			p.active.add(cmd)
			return cmd
		}
		p.backlog.pushFront(cmd)
	}

	return nil
}

// asapEligible reports whether cmd, the head of the ASAP lane, may be
// dispatched right now: commands without a conflict key are always
// eligible, and commands with one are eligible only while no currently
// active command carries the same key.
func (p *Planner) asapEligible(cmd Command) bool {
	key, ok := cmd.ConflictKey()
	if !ok {
		return true
	}
	return !p.active.conflicts(key)
}

// Complete tells the planner that cmd, previously returned by Take, has
// finished executing. Completing a command the planner doesn't recognize
// (already completed, or never dispatched) is a silent no-op.
//
// When the active set drains to empty and no backlog command remains at
// the currently active group, Complete advances the active group and
// wakes any suspended Take calls.
func (p *Planner) Complete(cmd Command) {
	if cmd == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.active.remove(cmd) {
		// Unknown or already-completed command: silent no-op, no metrics,
		// no group-advance evaluation.
		return
	}
	p.instruments.Completed.Add(1)
	p.instruments.Active.Add(-1)
	if logger := p.cfg.logger; logger != nil {
		logger.Trace().Str("tag", string(cmd.Tag())).Log("command completed")
	}

	if p.active.len() > 0 {
		return
	}
	if p.backlog.any(func(c Command) bool { return c.Group() == p.state.currentGroupID }) {
		return
	}

	old := p.state.currentGroupID
	next := p.state.advanceActiveGroup()
	p.instruments.GroupRotations.Add(1)
	if logger := p.cfg.logger; logger != nil {
		logger.Debug().Int("from", int(old)).Int("to", int(next)).Log("active group advanced")
	}

	p.cond.Broadcast()
}

// Drain requests an orderly shutdown: from this point on, Take returns
// termination commands instead of suspending or dispatching real work.
// Commands already dispatched are unaffected and must still be completed
// by their workers. Drain is idempotent and never blocks.
func (p *Planner) Drain() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state.shuttingDown {
		return
	}
	p.state.shuttingDown = true
	if logger := p.cfg.logger; logger != nil {
		logger.Info().Log("planner draining")
	}
	p.cond.Broadcast()
}

// Empty reports whether the backlog is currently empty. It does not
// consider the ASAP lane or the active set; a Planner with in-flight or
// ASAP work can report Empty() true.
func (p *Planner) Empty() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.backlog.len() == 0
}
