package workplanner

import "context"

// Tag identifies a command's type for group-assignment and ASAP-routing
// purposes. It is intentionally an open string type rather than a closed
// enum: callers may introduce business-specific tags the planner has
// never seen and still get well-defined (Family C, no-close) behavior.
type Tag string

// Family A — ASAP lane. These bypass grouping entirely.
const (
	TagProcessEvent      Tag = "ProcessEvent"
	TagEntrypointRequest Tag = "EntrypointRequest"
	TagHaNvecGet         Tag = "HaNvecGet"
	TagHaNvecSet         Tag = "HaNvecSet"
)

// Family B — termination. Synthesized by Take during shutdown; may also
// be submitted directly (in practice, only by tests).
const TagDie Tag = "Die"

// Family C — grouped commands with an explicit close-current-group rule.
// Every tag not named in this file is also Family C, with no-close.
const (
	TagProcessHaEvent    Tag = "ProcessHaEvent"
	TagBroadcastHAStates Tag = "BroadcastHAStates"
	TagSnsOperation      Tag = "SnsOperation"
)

// Command is the unit of work the planner schedules. The planner treats a
// Command as opaque beyond Tag, Group/SetGroup (which it owns), and the
// optional ConflictKey. Commands are passed by reference; the planner
// never copies one.
type Command interface {
	// Tag returns the command's type tag, used for group-assignment and
	// ASAP-routing decisions.
	Tag() Tag

	// Group returns the group id assigned to this command. Valid only
	// after the command has been through Submit.
	Group() GroupID

	// SetGroup assigns the command's group id. Called by the planner
	// exactly once, from within Submit.
	SetGroup(GroupID)

	// ConflictKey returns an identifier used only for ASAP conflict
	// detection, and whether the command has one. Commands without a
	// conflict key are always ASAP-eligible.
	ConflictKey() (key string, ok bool)
}

// Executable is a Command a worker can run directly. The planner itself
// never calls Execute; it is a convenience contract for the runner
// package and for callers that want a uniform work loop.
type Executable interface {
	Command
	Execute(ctx context.Context) error
}

// isASAP reports whether cmd's tag belongs to Family A.
func isASAP(tag Tag) bool {
	switch tag {
	case TagProcessEvent, TagEntrypointRequest, TagHaNvecGet, TagHaNvecSet:
		return true
	default:
		return false
	}
}

// closesCurrentGroup reports whether a command with this tag should close
// the group currently being formed before being inserted into it.
// nextGroupCommands is the set of tags already admitted to the group
// being formed.
func closesCurrentGroup(tag Tag, nextGroupCommands map[Tag]struct{}) bool {
	if len(nextGroupCommands) == 0 {
		// An empty forming group is always joined freely, regardless of tag.
		return false
	}
	switch tag {
	case TagProcessHaEvent, TagBroadcastHAStates:
		return true
	case TagSnsOperation:
		_, already := nextGroupCommands[TagSnsOperation]
		return already
	default:
		// Unrecognized or otherwise-compatible grouped tag: Family C, no close.
		return false
	}
}

// BaseCommand is an embeddable Command implementation for callers that
// don't need a richer type. It is not used by the planner itself.
type BaseCommand struct {
	tag            Tag
	group          GroupID
	conflictKey    string
	hasConflictKey bool
}

// NewBaseCommand creates a BaseCommand with the given tag and no conflict key.
func NewBaseCommand(tag Tag) *BaseCommand {
	return &BaseCommand{tag: tag}
}

// NewBaseCommandWithConflictKey creates a BaseCommand carrying a conflict key.
func NewBaseCommandWithConflictKey(tag Tag, key string) *BaseCommand {
	return &BaseCommand{tag: tag, conflictKey: key, hasConflictKey: true}
}

func (c *BaseCommand) Tag() Tag { return c.tag }
func (c *BaseCommand) Group() GroupID { return c.group }
func (c *BaseCommand) SetGroup(g GroupID) { c.group = g }

func (c *BaseCommand) ConflictKey() (string, bool) {
	return c.conflictKey, c.hasConflictKey
}

// TerminationCommand is the poison pill Take synthesizes once the planner
// has been drained. A directly-submitted Die command is not converted into
// one; it keeps its own type. Workers observing one should exit their loop
// after calling Complete on it.
type TerminationCommand struct {
	group GroupID
}

func newTerminationCommand(group GroupID) *TerminationCommand {
	return &TerminationCommand{group: group}
}

func (c *TerminationCommand) Tag() Tag           { return TagDie }
func (c *TerminationCommand) Group() GroupID     { return c.group }
func (c *TerminationCommand) SetGroup(g GroupID) { c.group = g }
func (c *TerminationCommand) ConflictKey() (string, bool) {
	return "", false
}

// Execute satisfies Executable so runner loops can treat termination
// commands uniformly; it is a no-op.
func (c *TerminationCommand) Execute(context.Context) error { return nil }

// IsTermination reports whether cmd is the synthetic poison pill Take
// produces once the planner has been drained. A directly-submitted
// command tagged TagDie (Family B) is a real command a worker must
// execute like any other; only the planner's own synthesized value
// signals loop exit, so this checks concrete identity rather than tag.
func IsTermination(cmd Command) bool {
	_, ok := cmd.(*TerminationCommand)
	return ok
}
