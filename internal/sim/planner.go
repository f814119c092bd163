package sim

import (
	"fmt"
	"math"
	"sort"
)

// MaxWaitDefault is the default peer-block tolerance before an agent drops
// its goal and falls back to a random walk (§4.6, §7 PeerStandoff).
const MaxWaitDefault = 3

// PlannerMode selects the per-tick policy dispatched for every active
// agent. Modeled as a tagged variant per design note 9, not polymorphic
// planner objects.
type PlannerMode int

const (
	PlannerFrontier PlannerMode = iota
	PlannerRandom
)

// Planner owns the per-tick coordination state: goals, paths and wait
// counters for every agent, plus the intra-tick assigned-goals set. Exactly
// one Planner exists per simulation and is mutated exclusively by the
// coordinator (§5) — it is the generalization of the teacher's
// MasterController.
type Planner struct {
	mode     PlannerMode
	maxWait  int
	goals    map[int]*Cell // nil entry = no goal
	paths    map[int][]Cell
	waits    map[int]int
	assigned map[Cell]struct{} // cleared at the start of every tick
	rng      randSource
	log      *EventLog
}

// randSource is the minimal interface Planner needs from *rand.Rand,
// threaded explicitly per design note 9 (no process-wide RNG singleton).
type randSource interface {
	Intn(n int) int
}

// NewPlanner constructs a planner for the given agent IDs.
func NewPlanner(mode PlannerMode, maxWait int, agentIDs []int, rng randSource, log *EventLog) *Planner {
	if maxWait <= 0 {
		maxWait = MaxWaitDefault
	}
	p := &Planner{
		mode:    mode,
		maxWait: maxWait,
		goals:   make(map[int]*Cell, len(agentIDs)),
		paths:   make(map[int][]Cell, len(agentIDs)),
		waits:   make(map[int]int, len(agentIDs)),
		rng:     rng,
		log:     log,
	}
	for _, id := range agentIDs {
		p.goals[id] = nil
		p.paths[id] = nil
		p.waits[id] = 0
	}
	return p
}

// BeginTick clears the intra-tick assigned-goals exclusion set. Called once
// per tick before any agent plans (§4.6).
func (p *Planner) BeginTick() {
	p.assigned = make(map[Cell]struct{})
}

// Goal returns the agent's current goal, or nil if it has none.
func (p *Planner) Goal(agentID int) *Cell { return p.goals[agentID] }

// Path returns the agent's current remaining path (read-only view).
func (p *Planner) Path(agentID int) []Cell { return p.paths[agentID] }

// Plan decides and issues one action for agent this tick: it mutates the
// planner's goal/path/wait state, calls a.Move or a random-walk move, and
// returns the discoveries that move produced. env, shared and mask give it
// everything it needs to (re)plan; other is the full roster (a itself is
// skipped by ID), used for the spread tie-break and peer-occupancy checks.
func (p *Planner) Plan(tick int, a *Agent, env *Environment, shared *SharedMap, mask *ReachableMask, frontier *FrontierSet, other []*Agent) []Discovery {
	if p.mode == PlannerRandom {
		return p.randomWalk(a, env)
	}
	return p.frontierPlan(tick, a, env, shared, mask, frontier, other)
}

func (p *Planner) frontierPlan(tick int, a *Agent, env *Environment, shared *SharedMap, mask *ReachableMask, frontier *FrontierSet, other []*Agent) []Discovery {
	id := a.ID()
	pos := a.Position()

	needsReassign := p.goals[id] == nil || shared.At(p.goals[id].X, p.goals[id].Y).known || len(p.paths[id]) == 0
	if needsReassign {
		goal, path := p.selectGoal(id, pos, frontier, shared, env.Grid(), other)
		if goal == nil {
			p.log.Add(tick, id, "warn", string(eventPlanningDeadend), "no reachable frontier candidate; random walk")
			return p.randomWalk(a, env)
		}
		p.goals[id] = goal
		p.paths[id] = path
		p.assigned[*goal] = struct{}{}
		p.log.Add(tick, id, "goal", "reassigned", cellString(*goal))
	}

	return p.executePath(tick, a, env, other)
}

// selectGoal implements the two-stage selection policy (§4.6): nearest
// Manhattan distance first, then widest spread from every other agent,
// trying candidates in that order until one yields an A* path. Only the
// candidates at the minimum distance are tried: when none of them yields a
// path, no goal is returned, even if a farther candidate has one.
func (p *Planner) selectGoal(selfID int, pos Cell, frontier *FrontierSet, shared *SharedMap, grid *Grid, other []*Agent) (*Cell, []Cell) {
	type candidate struct {
		cell Cell
		dist int
	}

	var candidates []candidate
	for _, c := range frontier.Sorted() {
		if _, taken := p.assigned[c]; taken {
			continue
		}
		candidates = append(candidates, candidate{cell: c, dist: pos.Manhattan(c)})
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	minDist := candidates[0].dist
	for _, c := range candidates {
		if c.dist < minDist {
			minDist = c.dist
		}
	}
	var closest []Cell
	for _, c := range candidates {
		if c.dist == minDist {
			closest = append(closest, c.cell)
		}
	}

	// Order closest by descending spread so the first one that yields a
	// valid path is the best available, matching the reference's
	// best-so-far scan but avoiding a second A* call once we've already
	// found the maximum.
	type spreadCandidate struct {
		cell   Cell
		spread float64
	}
	spreadOf := make([]spreadCandidate, len(closest))
	for i, c := range closest {
		spreadOf[i] = spreadCandidate{cell: c, spread: spreadSum(selfID, c, other)}
	}
	sort.SliceStable(spreadOf, func(i, j int) bool { return spreadOf[i].spread > spreadOf[j].spread })

	for _, sc := range spreadOf {
		if path := findPath(grid, shared, pos, sc.cell); path != nil {
			goal := sc.cell
			return &goal, path
		}
	}
	return nil, nil
}

func spreadSum(selfID int, c Cell, others []*Agent) float64 {
	sum := 0.0
	for _, o := range others {
		if o.ID() == selfID {
			continue
		}
		dx := float64(c.X - o.Position().X)
		dy := float64(c.Y - o.Position().Y)
		sum += math.Sqrt(dx*dx + dy*dy)
	}
	return sum
}

// executePath advances the agent one step along its current path, waiting
// or replanning on peer occupancy (§4.6, §7 PeerStandoff).
func (p *Planner) executePath(tick int, a *Agent, env *Environment, other []*Agent) []Discovery {
	id := a.ID()
	path := p.paths[id]
	if len(path) == 0 {
		return nil
	}
	next := path[0]

	for _, o := range other {
		if o.ID() != id && o.Active() && o.Position() == next {
			p.waits[id]++
			if p.waits[id] > p.maxWait {
				p.log.Add(tick, id, "warn", string(eventPeerStandoff), "wait exceeded MAX_WAIT; dropping goal")
				p.goals[id] = nil
				p.paths[id] = nil
				p.waits[id] = 0
				return p.randomWalk(a, env)
			}
			p.log.Add(tick, id, "move", "wait", cellString(next))
			return a.Move(Stay, env)
		}
	}

	p.waits[id] = 0
	p.paths[id] = path[1:]
	dx, dy := next.X-a.Position().X, next.Y-a.Position().Y
	return a.Move(directionTo(dx, dy), env)
}

// randomWalk shuffles the five directions and issues the first whose
// target passes IsBlocked; if all are blocked it issues Stay (§4.6).
func (p *Planner) randomWalk(a *Agent, env *Environment) []Discovery {
	dirs := allDirections
	for i := len(dirs) - 1; i > 0; i-- {
		j := p.rng.Intn(i + 1)
		dirs[i], dirs[j] = dirs[j], dirs[i]
	}
	for _, d := range dirs {
		dx, dy := d.delta()
		tx, ty := a.Position().X+dx, a.Position().Y+dy
		if !env.IsBlocked(tx, ty, a.ID()) {
			return a.Move(d, env)
		}
	}
	return a.Move(Stay, env)
}

func cellString(c Cell) string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
