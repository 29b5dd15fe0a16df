package workplanner

import (
	"github.com/joeycumines/logiface"
	logifaceslog "github.com/joeycumines/logiface-slog"

	"github.com/ekanter/workplanner/metrics"
)

// Logger is the structured logger type the planner accepts. A nil Logger
// is a valid, fully disabled logger (logiface.Logger's methods are nil-safe
// and report LevelDisabled), so New works with no logging configured.
type Logger = *logiface.Logger[*logifaceslog.Event]

// config holds ambient (non-behavioral) planner configuration: the
// instrumentation and logging collaborators. There is deliberately no
// group-assignment or conflict tunable here — MaxGroupID is a
// compile-time constant.
type config struct {
	metrics metrics.Provider
	logger  Logger
}

// defaultConfig centralizes default ambient configuration: a no-op
// metrics provider and a disabled (nil) logger.
func defaultConfig() config {
	return config{
		metrics: metrics.NewNoopProvider(),
		logger:  nil,
	}
}
