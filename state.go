package workplanner

// dispatcherState holds the group-assignment bookkeeping: which group is
// currently active, which group is being formed, the tags already
// admitted to the forming group, and whether a shutdown has been
// requested. It is manipulated only while Planner.mu is held.
type dispatcherState struct {
	currentGroupID    GroupID
	nextGroupID       GroupID
	nextGroupCommands map[Tag]struct{}
	shuttingDown      bool
}

func newDispatcherState() *dispatcherState {
	return &dispatcherState{
		nextGroupCommands: make(map[Tag]struct{}),
	}
}

// joinNextGroup applies the Family C group-closing policy to cmd: close
// the forming group first if the tag requires it, then stamp cmd with
// the forming group's id and record its tag as present in that group.
func (s *dispatcherState) joinNextGroup(cmd Command) {
	tag := cmd.Tag()
	if closesCurrentGroup(tag, s.nextGroupCommands) {
		s.nextGroupID = successor(s.nextGroupID)
		s.nextGroupCommands = make(map[Tag]struct{})
	}
	cmd.SetGroup(s.nextGroupID)
	s.nextGroupCommands[tag] = struct{}{}
}

// advanceActiveGroup moves the currently active group forward by one.
// Call only when the caller has confirmed the active set is empty and no
// backlog command remains at the current group. Returns the new current
// group id.
func (s *dispatcherState) advanceActiveGroup() GroupID {
	sameAsNext := s.nextGroupID == s.currentGroupID
	s.currentGroupID = successor(s.currentGroupID)
	if sameAsNext {
		s.nextGroupID = s.currentGroupID
		s.nextGroupCommands = make(map[Tag]struct{})
	}
	return s.currentGroupID
}
