package observer

import (
	"math/rand"
	"testing"

	"github.com/Garsondee/swarm-slam/internal/sim"
)

func TestBuild_ReflectsKnownAndUnknownCells(t *testing.T) {
	rows := [][]int{
		{2, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	}
	grid, err := sim.NewGrid(rows)
	if err != nil {
		t.Fatal(err)
	}
	cfg := sim.DefaultConfig()
	cfg.FOVRadius = 1
	s, err := sim.NewSimulation(grid, []sim.AgentSpec{{ID: 0, Start: sim.Cell{X: 0, Y: 0}, FOVRadius: 1}}, *cfg, rand.New(rand.NewSource(0)))
	if err != nil {
		t.Fatal(err)
	}
	s.Step()

	snap := Build(s)
	if snap.Tick != s.CurrentTick() {
		t.Fatalf("expected tick %d, got %d", s.CurrentTick(), snap.Tick)
	}
	if snap.KnownRows[0][0] == -1 {
		t.Fatalf("expected the agent's own cell to be known")
	}
	if snap.KnownRows[2][2] != -1 {
		t.Fatalf("expected a far cell to remain unknown this early")
	}
	if len(snap.Agents) != 1 || snap.Agents[0].ID != 0 {
		t.Fatalf("expected one agent snapshot with ID 0, got %+v", snap.Agents)
	}
}
