package sim

import "testing"

// checkInvariants asserts the tick-boundary invariants from §8 against a
// live simulation.
func checkInvariants(t *testing.T, s *Simulation) {
	t.Helper()
	grid := s.env.Grid()

	// 1 & 2: SharedMap non-Unknown cells match ground truth and are backed
	// by at least one active agent's private map.
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			obs := s.SharedMap().At(x, y)
			if !obs.known {
				continue
			}
			if obs.tile != grid.Tile(x, y) {
				t.Fatalf("SharedMap[%d,%d]=%v does not match ground truth %v", x, y, obs.tile, grid.Tile(x, y))
			}
			backed := false
			for _, a := range s.Agents() {
				if a.Active() && a.ObservationAt(x, y).known {
					backed = true
					break
				}
			}
			if !backed {
				t.Fatalf("SharedMap[%d,%d] known but no active agent's private map backs it", x, y)
			}
		}
	}

	// 3: distinct active agents never share a position.
	seen := make(map[Cell]int)
	for _, a := range s.Agents() {
		if !a.Active() {
			continue
		}
		if owner, ok := seen[a.Position()]; ok {
			t.Fatalf("agents %d and %d share position %v", owner, a.ID(), a.Position())
		}
		seen[a.Position()] = a.ID()
	}

	// 4: distinct non-None goals are pairwise distinct.
	goalOwner := make(map[Cell]int)
	for _, a := range s.Agents() {
		g := s.planner.Goal(a.ID())
		if g == nil {
			continue
		}
		if owner, ok := goalOwner[*g]; ok {
			t.Fatalf("agents %d and %d share goal %v", owner, a.ID(), *g)
		}
		goalOwner[*g] = a.ID()
	}

	// 5: path adjacency and terminates at the goal.
	for _, a := range s.Agents() {
		path := s.planner.Path(a.ID())
		if len(path) == 0 {
			continue
		}
		if path[0].Manhattan(a.Position()) != 1 {
			t.Fatalf("agent %d path head %v not 4-adjacent to position %v", a.ID(), path[0], a.Position())
		}
		for i := 1; i < len(path); i++ {
			if path[i-1].Manhattan(path[i]) != 1 {
				t.Fatalf("agent %d path not 4-adjacent between %v and %v", a.ID(), path[i-1], path[i])
			}
		}
		goal := s.planner.Goal(a.ID())
		if goal != nil && path[len(path)-1] != *goal {
			t.Fatalf("agent %d path does not terminate at its goal", a.ID())
		}
	}
}

func TestInvariants_HoldAcrossTicks(t *testing.T) {
	rows := rect(10, 10, int(TileFree))
	rows[5][0] = int(TileEntryPoint)
	rows[5][9] = int(TileEntryPoint)

	ts := NewTestSim(
		WithRows(rows),
		WithSeed(7),
		WithAgent(0, Cell{0, 5}, 3, 0),
		WithAgent(1, Cell{9, 5}, 3, 2),
	)
	s := ts.Sim()
	for i := 0; i < 40 && !s.Done(); i++ {
		s.Step()
		checkInvariants(t, s)
	}
}

// TestMonotonicity_SharedMapNeverForgets asserts the monotonicity law (§8):
// SharedMap never transitions a cell from non-Unknown back to Unknown.
func TestMonotonicity_SharedMapNeverForgets(t *testing.T) {
	rows := rect(6, 6, int(TileFree))
	rows[3][0] = int(TileEntryPoint)

	ts := NewTestSim(
		WithRows(rows),
		WithSeed(3),
		WithAgent(0, Cell{0, 3}, 2, 0),
	)
	s := ts.Sim()
	grid := s.env.Grid()
	knownBefore := make(map[Cell]bool)

	for i := 0; i < 30 && !s.Done(); i++ {
		s.Step()
		for y := 0; y < grid.Height(); y++ {
			for x := 0; x < grid.Width(); x++ {
				c := Cell{x, y}
				known := s.SharedMap().At(x, y).known
				if knownBefore[c] && !known {
					t.Fatalf("cell %v regressed from known to unknown", c)
				}
				if known {
					knownBefore[c] = true
				}
			}
		}
	}
}
