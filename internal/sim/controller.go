package sim

import (
	"math/rand"
	"time"
)

// AgentSpec describes one roster entry at construction time: id, start
// position (must be an entry cell per §6), FOV radius and activation tick.
type AgentSpec struct {
	ID        int
	Start     Cell
	FOVRadius int
	EntryTime int
}

// RunResult summarizes how a Run call ended.
type RunResult struct {
	Ticks    int
	Progress float64
	Solved   bool
}

// Simulation drives the tick-driven control loop (§4.7): it owns the
// environment, agent roster, shared map, planner and completion monitor,
// and is the only thing that mutates coordinator-owned state (§5). It is
// the generalization of the teacher's Game/simTick into the coordination
// domain.
type Simulation struct {
	env      *Environment
	agents   []*Agent
	shared   *SharedMap
	mask     *ReachableMask
	planner  *Planner
	monitor  *CompletionMonitor
	log      *EventLog
	rng      *rand.Rand
	tick     int
	lastFr   *FrontierSet
	timeoutT int // 0 = no tick timeout
}

// NewSimulation constructs a simulation from a grid, agent roster and
// config. rng is threaded explicitly throughout (design note 9): no
// process-wide RNG singleton, so scenarios replay deterministically from a
// seed.
func NewSimulation(grid *Grid, specs []AgentSpec, cfg Config, rng *rand.Rand) (*Simulation, error) {
	agents := make([]*Agent, len(specs))
	ids := make([]int, len(specs))
	for i, s := range specs {
		agents[i] = NewAgent(s.ID, s.Start, s.FOVRadius, s.EntryTime, grid.Width(), grid.Height())
		ids[i] = s.ID
	}

	env, err := NewEnvironment(grid, agents, rng)
	if err != nil {
		return nil, err
	}

	mask := ComputeReachableMask(env.Grid(), env.EntryPoints())
	shared := NewSharedMap(grid.Width(), grid.Height())
	log := NewEventLog()
	mode := PlannerFrontier
	if cfg.PlannerMode == "random" {
		mode = PlannerRandom
	}
	planner := NewPlanner(mode, cfg.MaxWait, ids, rng, log)

	return &Simulation{
		env:      env,
		agents:   agents,
		shared:   shared,
		mask:     mask,
		planner:  planner,
		monitor:  NewCompletionMonitor(mask),
		log:      log,
		rng:      rng,
		timeoutT: cfg.TimeoutTicks,
	}, nil
}

// CurrentTick returns the number of ticks executed so far.
func (s *Simulation) CurrentTick() int { return s.tick }

// Progress returns the completion monitor's current ratio.
func (s *Simulation) Progress() float64 { return s.monitor.Progress(s.shared) }

// Done reports whether every reachable cell has been observed.
func (s *Simulation) Done() bool { return s.monitor.Done(s.shared) }

// Agents returns the agent roster (read-only view; callers must not mutate
// agent state — only the Simulation does, via Step).
func (s *Simulation) Agents() []*Agent { return s.agents }

// SharedMap returns the coordinator's fused map, for observers (§6).
func (s *Simulation) SharedMap() *SharedMap { return s.shared }

// Frontier returns the frontier set as of the end of the most recent Step.
func (s *Simulation) Frontier() *FrontierSet { return s.lastFr }

// Log returns the structured event log.
func (s *Simulation) Log() *EventLog { return s.log }

// Goal returns the current planning target for the agent with the given ID,
// or nil if it has none assigned, for observers (§6).
func (s *Simulation) Goal(agentID int) *Cell { return s.planner.Goal(agentID) }

// Step runs exactly one tick (§4.7):
//  1. activation pass, sense-on-activation for newly active agents;
//  2. clear the intra-tick assigned-goals set;
//  3. for each active agent in ascending ID order: recompute the frontier
//     (so agent i sees agent 0..i-1's discoveries this tick), plan and
//     execute one action, fold its discoveries into SharedMap.
func (s *Simulation) Step() {
	for _, a := range s.agents {
		if !a.Active() {
			a.Activate(s.tick)
			if a.Active() {
				s.shared.Fold(a.Sense(s.env))
			}
		}
	}

	s.planner.BeginTick()
	for _, a := range s.agents {
		if !a.Active() {
			continue
		}
		frontier := s.shared.Recompute(s.mask)
		discoveries := s.planner.Plan(s.tick, a, s.env, s.shared, s.mask, frontier, s.agents)
		s.shared.Fold(discoveries)
	}
	s.lastFr = s.shared.Recompute(s.mask)

	s.tick++
}

// Run steps the simulation until completion, until maxTicks is reached (0 =
// use the config's TimeoutTicks, itself 0 = unbounded), or until wallclock
// elapses (0 = unbounded). Always returns; Solved is false if the loop
// exited for any reason other than progress reaching 1.0 (§7 Timeout).
func (s *Simulation) Run(maxTicks int, wallclock time.Duration) RunResult {
	if maxTicks <= 0 {
		maxTicks = s.timeoutT
	}
	start := time.Now()
	for {
		if s.Done() {
			return RunResult{Ticks: s.tick, Progress: s.Progress(), Solved: true}
		}
		if maxTicks > 0 && s.tick >= maxTicks {
			s.log.Add(s.tick, -1, "warn", string(eventTimeout), "max ticks reached")
			return RunResult{Ticks: s.tick, Progress: s.Progress(), Solved: false}
		}
		if wallclock > 0 && time.Since(start) >= wallclock {
			s.log.Add(s.tick, -1, "warn", string(eventTimeout), "wallclock budget exceeded")
			return RunResult{Ticks: s.tick, Progress: s.Progress(), Solved: false}
		}
		s.Step()
	}
}
