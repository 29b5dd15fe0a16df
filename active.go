package workplanner

// activeMeta is the small per-command metadata the active set keeps for
// ASAP conflict checks.
type activeMeta struct {
	conflictKey string
	hasKey      bool
}

// activeSet tracks commands handed to workers but not yet completed.
// Lookups use Command's own identity: Go interface equality over a
// pointer-typed dynamic value is reference identity, so no separate
// handle allocation is needed.
//
// activeSet has no lock of its own: every method is called with
// Planner.mu already held.
type activeSet struct {
	entries map[Command]activeMeta
}

func newActiveSet() *activeSet {
	return &activeSet{entries: make(map[Command]activeMeta)}
}

func (a *activeSet) len() int { return len(a.entries) }

func (a *activeSet) add(cmd Command) {
	meta := activeMeta{}
	if key, ok := cmd.ConflictKey(); ok {
		meta.conflictKey, meta.hasKey = key, true
	}
	a.entries[cmd] = meta
}

// remove deletes cmd from the active set, reporting whether it was
// present. Removing a command that isn't present is a silent no-op:
// double-complete and complete-on-unknown must not fail, but callers
// that want to avoid double-counting metrics can check the result.
func (a *activeSet) remove(cmd Command) bool {
	if _, ok := a.entries[cmd]; !ok {
		return false
	}
	delete(a.entries, cmd)
	return true
}

// conflicts reports whether any currently active command carries the
// given conflict key.
func (a *activeSet) conflicts(key string) bool {
	for _, m := range a.entries {
		if m.hasKey && m.conflictKey == key {
			return true
		}
	}
	return false
}
