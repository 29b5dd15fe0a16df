package workplanner

import "errors"

const Namespace = "workplanner"

var (
	// ErrNilCommand is returned by Submit when given a nil Command.
	ErrNilCommand = errors.New(Namespace + ": cannot submit a nil command")

	// ErrNilOption is the panic value raised when New is given a nil Option.
	ErrNilOption = errors.New(Namespace + ": nil option")
)

// Note: completing a command that is not in the active set is not an
// error. Complete silently ignores it (see Planner.Complete), so there is
// deliberately no ErrUnknownCommand sentinel here.
