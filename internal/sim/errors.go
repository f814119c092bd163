package sim

import "errors"

// Construction-time errors. These surface directly to the driver; the
// coordinator never returns them once a simulation is running (see §7).
var (
	// ErrInvalidMap signals a malformed or empty tile matrix.
	ErrInvalidMap = errors.New("sim: invalid map")

	// ErrNoEntryPoint signals no EntryPoint tile and no traversable cell to
	// promote into one.
	ErrNoEntryPoint = errors.New("sim: no entry point available")

	// ErrAgentOutsideGrid signals an agent roster entry whose start position
	// is out of bounds.
	ErrAgentOutsideGrid = errors.New("sim: agent start position outside grid")
)

// Runtime events. PlanningDeadend and PeerStandoff are never returned as
// errors — they are recovered locally by the planner (§7) and recorded as
// structured warnings in the EventLog. They are typed here only so callers
// of the EventLog can filter by cause.
type runtimeEvent string

const (
	eventPlanningDeadend runtimeEvent = "planning_deadend"
	eventPeerStandoff    runtimeEvent = "peer_standoff"
	eventTimeout         runtimeEvent = "timeout"
)
