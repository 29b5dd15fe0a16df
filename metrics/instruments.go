package metrics

// Instrument names the planner records against a Provider. Keeping them
// centralized here (rather than as string literals scattered through the
// planner package) keeps dashboards and alerts stable across refactors.
const (
	// InstrumentSubmitted counts every command Submit accepts, across both
	// lanes; it carries no per-lane breakdown.
	InstrumentSubmitted = "workplanner.commands.submitted"

	// InstrumentDispatched counts every command Take returns to a worker.
	InstrumentDispatched = "workplanner.commands.dispatched"

	// InstrumentCompleted counts every Complete call that removes a command
	// from the active set; completing an unknown or already-completed
	// command is not counted.
	InstrumentCompleted = "workplanner.commands.completed"

	// InstrumentActive tracks the current size of the active set.
	InstrumentActive = "workplanner.commands.active"

	// InstrumentGroupRotations counts every time current_group_id advances.
	InstrumentGroupRotations = "workplanner.group.rotations"
)

// Instruments bundles the handles the planner records against during its
// lifetime, resolved once from a Provider at construction time.
type Instruments struct {
	Submitted      Counter
	Dispatched     Counter
	Completed      Counter
	Active         UpDownCounter
	GroupRotations Counter
}

// NewInstruments resolves every named instrument the planner uses from p.
func NewInstruments(p Provider) Instruments {
	return Instruments{
		Submitted:      p.Counter(InstrumentSubmitted, WithUnit("1")),
		Dispatched:     p.Counter(InstrumentDispatched, WithUnit("1")),
		Completed:      p.Counter(InstrumentCompleted, WithUnit("1")),
		Active:         p.UpDownCounter(InstrumentActive, WithUnit("1")),
		GroupRotations: p.Counter(InstrumentGroupRotations, WithUnit("1")),
	}
}
