package sim

import "testing"

// dumpLog prints the full EventLog to t.Log, matching the teacher's
// scenario_test.go dumpLog helper.
func dumpLog(t *testing.T, log *EventLog) {
	t.Helper()
	for _, e := range log.Entries() {
		t.Log(e.String())
	}
}

// TestScenario_TwoAgentSplit matches §8 scenario 3: two entries, two
// agents, fov=3 in a 10x10 open room. Goals must differ at tick 1;
// completion in under 25 ticks.
func TestScenario_TwoAgentSplit(t *testing.T) {
	rows := rect(10, 10, int(TileFree))
	rows[5][0] = int(TileEntryPoint)
	rows[5][9] = int(TileEntryPoint)

	ts := NewTestSim(
		WithRows(rows),
		WithSeed(0),
		WithAgent(0, Cell{0, 5}, 3, 0),
		WithAgent(1, Cell{9, 5}, 3, 0),
	)
	ts.Sim().Step() // tick 0
	ts.Sim().Step() // tick 1
	goal0, goal1 := ts.Sim().planner.Goal(0), ts.Sim().planner.Goal(1)
	if goal0 != nil && goal1 != nil && *goal0 == *goal1 {
		t.Fatalf("expected distinct goals at tick 1, both picked %v", *goal0)
	}

	res := ts.RunTicks(25)
	dumpLog(t, ts.Sim().Log())

	goal0, goal1 = ts.Sim().planner.Goal(0), ts.Sim().planner.Goal(1)
	if goal0 != nil && goal1 != nil && *goal0 == *goal1 {
		t.Fatalf("expected distinct goals, both picked %v", *goal0)
	}
	if !res.Solved {
		t.Fatalf("expected completion within 25 ticks, got progress=%.3f at tick %d", res.Progress, res.Ticks)
	}
}

// TestScenario_SoloCorridorCompletes matches §8 scenario 1.
func TestScenario_SoloCorridorCompletes(t *testing.T) {
	rows := rect(5, 3, int(TileWall))
	for x := 0; x < 5; x++ {
		rows[1][x] = int(TileFree)
	}
	rows[1][0] = int(TileEntryPoint)

	ts := NewTestSim(
		WithRows(rows),
		WithSeed(0),
		WithAgent(0, Cell{0, 1}, 1, 0),
	)
	res := ts.RunTicks(20)
	if !res.Solved {
		t.Fatalf("expected the solo corridor to complete, got progress=%.3f", res.Progress)
	}
	if res.Ticks > 10 {
		t.Fatalf("expected completion well within the corridor's length, took %d ticks", res.Ticks)
	}
}

// TestScenario_PeerStandoffRecovers matches §8 scenario 4: two agents
// approaching each other head-on in a one-wide corridor. One must wait,
// then after MAX_WAIT+1 ticks drop its goal and replan — no permanent
// deadlock.
func TestScenario_PeerStandoffRecovers(t *testing.T) {
	rows := rect(7, 1, int(TileFree))
	rows[0][0] = int(TileEntryPoint)
	rows[0][6] = int(TileEntryPoint)

	ts := NewTestSim(
		WithRows(rows),
		WithSeed(0),
		WithMaxWait(2),
		WithAgent(0, Cell{0, 0}, 1, 0),
		WithAgent(1, Cell{6, 0}, 1, 0),
	)
	res := ts.RunTicks(60)
	dumpLog(t, ts.Sim().Log())

	standoffs := ts.Sim().Log().Filter("warn", "peer_standoff")
	if len(standoffs) == 0 {
		t.Logf("no peer_standoff event fired; agents may not have met head-on this seed")
	}
	if !res.Solved {
		t.Fatalf("expected eventual completion without permanent deadlock, got progress=%.3f at tick %d", res.Progress, res.Ticks)
	}
}

// TestScenario_RandomPlannerNeverCrashesWhenBoxedIn matches §8 scenario 6
// (control): random planner mode must never crash, even when every
// direction happens to be blocked.
func TestScenario_RandomPlannerNeverCrashesWhenBoxedIn(t *testing.T) {
	rows := rect(5, 5, int(TileFree))
	rows[2][2] = int(TileEntryPoint)
	// Wall in every neighbour of the start cell so no move is possible.
	rows[1][2] = int(TileWall)
	rows[3][2] = int(TileWall)
	rows[2][1] = int(TileWall)
	rows[2][3] = int(TileWall)

	ts := NewTestSim(
		WithRows(rows),
		WithSeed(0),
		WithPlannerMode(PlannerRandom),
		WithAgent(0, Cell{2, 2}, 1, 0),
	)
	res := ts.RunTicks(50)
	if res.Ticks == 0 {
		t.Fatalf("expected at least one tick to run")
	}
}

// TestScenario_UnreachablePocketNeverObserved matches §8 scenario 5.
func TestScenario_UnreachablePocketNeverObserved(t *testing.T) {
	rows := rect(8, 8, int(TileFree))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if x == 0 || x == 7 || y == 0 || y == 7 {
				rows[y][x] = int(TileWall)
			}
		}
	}
	for y := 3; y <= 6; y++ {
		for x := 3; x <= 6; x++ {
			if y == 3 || y == 6 || x == 3 || x == 6 {
				rows[y][x] = int(TileWall)
			}
		}
	}
	rows[1][1] = int(TileEntryPoint)

	ts := NewTestSim(
		WithRows(rows),
		WithSeed(0),
		WithAgent(0, Cell{1, 1}, 2, 0),
	)
	res := ts.RunTicks(200)
	if !res.Solved {
		t.Fatalf("expected completion once every reachable cell is observed, got progress=%.3f", res.Progress)
	}
	for _, c := range []Cell{{4, 4}, {4, 5}, {5, 4}, {5, 5}} {
		if ts.Sim().SharedMap().At(c.X, c.Y).known {
			t.Fatalf("pocket interior %v should never be observed", c)
		}
	}
}
