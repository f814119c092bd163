// Package observer streams per-tick Snapshot summaries of a running
// simulation to live websocket clients (the §6 core outputs), grounded in
// the teacher's fastview publisher pattern.
package observer

import "github.com/Garsondee/swarm-slam/internal/sim"

// AgentSnapshot is one agent's publicly visible state at a tick boundary.
type AgentSnapshot struct {
	ID     int       `json:"id"`
	X      int       `json:"x"`
	Y      int       `json:"y"`
	Active bool      `json:"active"`
	Goal   *sim.Cell `json:"goal,omitempty"`
}

// Snapshot is the wire format pushed to dashboard clients once per tick.
type Snapshot struct {
	Tick      int             `json:"tick"`
	Progress  float64         `json:"progress"`
	Done      bool            `json:"done"`
	Agents    []AgentSnapshot `json:"agents"`
	Frontier  []sim.Cell      `json:"frontier"`
	KnownRows [][]int         `json:"known_rows"`
}

// Build captures a Snapshot from a live simulation. -1 marks a cell whose
// SharedMap entry is still Unknown; otherwise the cell holds its observed
// TileKind's numeric encoding (§6).
func Build(s *sim.Simulation) Snapshot {
	shared := s.SharedMap()
	width, height := shared.Width(), shared.Height()
	rows := make([][]int, height)
	for y := 0; y < height; y++ {
		rows[y] = make([]int, width)
		for x := 0; x < width; x++ {
			obs := shared.At(x, y)
			if !obs.Known() {
				rows[y][x] = -1
				continue
			}
			rows[y][x] = int(obs.Tile())
		}
	}

	agents := make([]AgentSnapshot, 0, len(s.Agents()))
	for _, a := range s.Agents() {
		pos := a.Position()
		agents = append(agents, AgentSnapshot{
			ID:     a.ID(),
			X:      pos.X,
			Y:      pos.Y,
			Active: a.Active(),
			Goal:   s.Goal(a.ID()),
		})
	}

	var frontier []sim.Cell
	if fs := s.Frontier(); fs != nil {
		frontier = fs.Sorted()
	}

	return Snapshot{
		Tick:      s.CurrentTick(),
		Progress:  s.Progress(),
		Done:      s.Done(),
		Agents:    agents,
		Frontier:  frontier,
		KnownRows: rows,
	}
}
