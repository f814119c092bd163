package sim

import "math/rand"

// TestSim is a headless harness used exclusively by tests: it builds a
// Simulation from a fixed-size hand-authored grid and a roster of
// SimOptions, the direct descendant of the teacher's TestSim/SimOption
// pattern (test_harness.go), generalized from soldiers/squads to
// drones/entry points.
type TestSim struct {
	rows    [][]int
	agents  []AgentSpec
	seed    int64
	maxWait int
	mode    PlannerMode

	sim *Simulation
}

// simOptionKind controls the pass an option is applied in: infra first
// (grid, seed, tuning), then agents — mirroring the teacher's
// simOptInfra/simOptSoldier ordering.
type simOptionKind int

const (
	simOptInfra simOptionKind = iota
	simOptAgent
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithRows sets the ground-truth tile matrix directly (row-major ints,
// using the §6 encoding).
func WithRows(rows [][]int) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) { ts.rows = rows }}
}

// WithSeed sets the RNG seed for a deterministic run.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) { ts.seed = seed }}
}

// WithMaxWait overrides MAX_WAIT from its default.
func WithMaxWait(w int) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) { ts.maxWait = w }}
}

// WithPlannerMode sets frontier (default) or random planning.
func WithPlannerMode(mode PlannerMode) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) { ts.mode = mode }}
}

// WithAgent adds one agent to the roster.
func WithAgent(id int, start Cell, fovRadius, entryTime int) SimOption {
	return SimOption{simOptAgent, func(ts *TestSim) {
		ts.agents = append(ts.agents, AgentSpec{ID: id, Start: start, FOVRadius: fovRadius, EntryTime: entryTime})
	}}
}

// NewTestSim constructs a TestSim from the given options in two ordered
// passes (infra, then agents) and builds the underlying Simulation.
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{maxWait: MaxWaitDefault, mode: PlannerFrontier}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(ts)
		}
	}
	for _, o := range opts {
		if o.kind == simOptAgent {
			o.fn(ts)
		}
	}

	grid, err := NewGrid(ts.rows)
	if err != nil {
		panic(err) // programmer error in a test fixture
	}
	cfg := Config{MaxWait: ts.maxWait, PlannerMode: plannerModeString(ts.mode)}
	rng := rand.New(rand.NewSource(ts.seed)) // #nosec G404 -- deterministic test harness
	s, err := NewSimulation(grid, ts.agents, cfg, rng)
	if err != nil {
		panic(err)
	}
	ts.sim = s
	return ts
}

func plannerModeString(m PlannerMode) string {
	if m == PlannerRandom {
		return "random"
	}
	return "frontier"
}

// Sim returns the underlying Simulation for direct inspection.
func (ts *TestSim) Sim() *Simulation { return ts.sim }

// RunTicks steps the simulation n times (or until it completes first) and
// returns the result.
func (ts *TestSim) RunTicks(n int) RunResult {
	return ts.sim.Run(n, 0)
}
