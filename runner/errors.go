package runner

import (
	"errors"
	"fmt"

	"github.com/ekanter/workplanner"
)

// CommandError exposes correlation metadata for a failed or panicking
// command execution: its tag, and its conflict key if it had one.
type CommandError interface {
	error
	Unwrap() error
	CommandTag() workplanner.Tag
	ConflictKey() (string, bool)
}

type commandTaggedError struct {
	err         error
	tag         workplanner.Tag
	conflictKey string
	hasKey      bool
}

func newCommandTaggedError(err error, cmd workplanner.Command) error {
	if err == nil {
		return nil
	}
	e := &commandTaggedError{err: err, tag: cmd.Tag()}
	e.conflictKey, e.hasKey = cmd.ConflictKey()
	return e
}

func (e *commandTaggedError) Error() string { return e.err.Error() }
func (e *commandTaggedError) Unwrap() error { return e.err }

func (e *commandTaggedError) CommandTag() workplanner.Tag { return e.tag }

func (e *commandTaggedError) ConflictKey() (string, bool) {
	return e.conflictKey, e.hasKey
}

func (e *commandTaggedError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = fmt.Fprintf(s, "command(tag=%s): %+v", e.tag, e.err)
			return
		}
		fallthrough
	case 's':
		_, _ = fmt.Fprint(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	}
}

// ExtractCommandTag returns the tag of the command that produced err, if
// err (or something it wraps) is a CommandError.
func ExtractCommandTag(err error) (workplanner.Tag, bool) {
	var ce CommandError
	if errors.As(err, &ce) {
		return ce.CommandTag(), true
	}
	return "", false
}
