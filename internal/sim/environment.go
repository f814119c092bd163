package sim

import "math/rand"

// Environment is the read-only tile oracle plus the live agent roster it
// needs to answer occupancy queries. Per SPEC_FULL design note 9, agents
// never hold a back-reference to it: it is passed explicitly into Sense and
// Move so there is no ownership cycle between coordinator, environment and
// agents.
type Environment struct {
	grid   *Grid
	agents []*Agent
}

// NewEnvironment wraps a Grid and its agent roster into an Environment.
// If the grid has no EntryPoint tile, one traversable cell is chosen
// uniformly at random (via rng) and promoted to EntryPoint. Returns
// ErrNoEntryPoint if the grid has no EntryPoint and no traversable cell to
// promote. Returns ErrAgentOutsideGrid if any agent's start position is out
// of bounds.
func NewEnvironment(grid *Grid, agents []*Agent, rng *rand.Rand) (*Environment, error) {
	if len(grid.EntryPoints()) == 0 {
		candidates := traversableCells(grid)
		if len(candidates) == 0 {
			return nil, ErrNoEntryPoint
		}
		pick := candidates[rng.Intn(len(candidates))]
		grid.setTile(pick.X, pick.Y, TileEntryPoint)
	}

	for _, a := range agents {
		if !grid.InBounds(a.position.X, a.position.Y) {
			return nil, ErrAgentOutsideGrid
		}
	}

	return &Environment{grid: grid, agents: agents}, nil
}

func traversableCells(g *Grid) []Cell {
	var out []Cell
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.tiles[y*g.width+x].Traversable() {
				out = append(out, Cell{x, y})
			}
		}
	}
	return out
}

// Grid exposes the underlying tile grid (read-only).
func (e *Environment) Grid() *Grid { return e.grid }

// Tile returns the ground-truth tile at (x, y); TileOutOfBounds outside the
// grid.
func (e *Environment) Tile(x, y int) TileKind {
	return e.grid.Tile(x, y)
}

// EntryPoints returns the grid's entry cells.
func (e *Environment) EntryPoints() []Cell {
	return e.grid.EntryPoints()
}

// IsBlocked reports whether (x, y) cannot be moved into: out of range, a
// blocking tile, or occupied by an active agent other than excludeID.
func (e *Environment) IsBlocked(x, y int, excludeID int) bool {
	if !e.grid.InBounds(x, y) {
		return true
	}
	if !e.grid.Tile(x, y).Traversable() {
		return true
	}
	for _, a := range e.agents {
		if a.id == excludeID || !a.active {
			continue
		}
		if a.position.X == x && a.position.Y == y {
			return true
		}
	}
	return false
}
