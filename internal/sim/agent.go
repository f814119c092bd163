package sim

// Direction is a single-tick movement command.
type Direction int

const (
	Stay Direction = iota
	Up
	Down
	Left
	Right
)

// allDirections lists every direction once, in a fixed order used as the
// base for the random-walk fallback's shuffle.
var allDirections = [5]Direction{Up, Down, Left, Right, Stay}

func (d Direction) delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

func directionTo(dx, dy int) Direction {
	switch {
	case dx == 0 && dy == -1:
		return Up
	case dx == 0 && dy == 1:
		return Down
	case dx == -1 && dy == 0:
		return Left
	case dx == 1 && dy == 0:
		return Right
	default:
		return Stay
	}
}

// Discovery is one newly-observed-or-changed cell, returned by Sense and
// Move for the coordinator to fold into SharedMap.
type Discovery struct {
	Cell Cell
	Tile TileKind
}

// Agent is one drone: its position, activation state, FOV sensor and
// private partial map. Only this agent's own methods mutate its fields; the
// coordinator reads position and active via exported accessors and never
// writes them directly (§5).
type Agent struct {
	id         int
	position   Cell
	fovRadius  int
	entryTime  int
	active     bool
	collided   bool
	privateMap []Observation // row-major, width*height
	mapWidth   int
	mapHeight  int
	pathHist   []Cell
}

// NewAgent constructs an inactive agent at its entry cell. gridW/gridH size
// its private map.
func NewAgent(id int, start Cell, fovRadius, entryTime, gridW, gridH int) *Agent {
	return &Agent{
		id:         id,
		position:   start,
		fovRadius:  fovRadius,
		entryTime:  entryTime,
		privateMap: make([]Observation, gridW*gridH),
		mapWidth:   gridW,
		mapHeight:  gridH,
		pathHist:   []Cell{start},
	}
}

// ID returns the agent's stable identifier; ascending ID order defines
// tie-breaks throughout the coordinator.
func (a *Agent) ID() int { return a.id }

// Position returns the agent's current cell.
func (a *Agent) Position() Cell { return a.position }

// Active reports whether the agent has entered the simulation.
func (a *Agent) Active() bool { return a.active }

// Collided reports whether the agent's most recent Move attempt failed.
func (a *Agent) Collided() bool { return a.collided }

// PathHistory returns the ordered sequence of cells the agent has occupied.
func (a *Agent) PathHistory() []Cell { return a.pathHist }

// ObservationAt returns this agent's private-map entry for (x, y).
func (a *Agent) ObservationAt(x, y int) Observation {
	if x < 0 || x >= a.mapWidth || y < 0 || y >= a.mapHeight {
		return Unknown
	}
	return a.privateMap[y*a.mapWidth+x]
}

// Activate flips the agent active at or after its entry_time. Once active,
// never reverts (§3 invariant).
func (a *Agent) Activate(tick int) {
	if !a.active && tick >= a.entryTime {
		a.active = true
	}
}

// Sense runs the occlusion-aware FOV scan and returns newly observed or
// changed cells. Inactive agents return nil. Ported from the reference
// drone's sense(): disk-bounded, symmetric-Bresenham ray per candidate cell,
// idempotent writes, ray stops after recording a blocking tile.
func (a *Agent) Sense(env *Environment) []Discovery {
	if !a.active {
		return nil
	}
	cx, cy := a.position.X, a.position.Y
	r := a.fovRadius
	r2 := r * r

	var out []Discovery
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy > r2 {
				continue
			}
			x, y := cx+dx, cy+dy
			if !env.grid.InBounds(x, y) {
				continue
			}
			for _, lc := range bresenhamLine(cx, cy, x, y) {
				if !env.grid.InBounds(lc.X, lc.Y) {
					break
				}
				tile := env.Tile(lc.X, lc.Y)
				idx := lc.Y*a.mapWidth + lc.X
				if !a.privateMap[idx].known || a.privateMap[idx].tile != tile {
					a.privateMap[idx] = Obs(tile)
					out = append(out, Discovery{Cell: lc, Tile: tile})
				}
				if tile.BlocksVision() {
					break
				}
			}
		}
	}
	return out
}

// Move attempts to step in direction; on success it updates position,
// appends to path history, clears Collided, and returns the sensor
// discoveries triggered by the new vantage point. On collision (including
// peer occupancy) it sets Collided and returns nil without moving. Inactive
// agents no-op.
func (a *Agent) Move(direction Direction, env *Environment) []Discovery {
	if !a.active {
		return nil
	}
	dx, dy := direction.delta()
	tx, ty := a.position.X+dx, a.position.Y+dy

	if env.IsBlocked(tx, ty, a.id) {
		a.collided = true
		return nil
	}

	a.position = Cell{tx, ty}
	a.pathHist = append(a.pathHist, a.position)
	a.collided = false
	return a.Sense(env)
}

// bresenhamLine yields the integer cells on the line from (x0,y0) to
// (x1,y1) using the standard symmetric Bresenham form, so tracing in either
// direction between two endpoints agrees on which cells lie on the line
// (SPEC_FULL design note 9).
func bresenhamLine(x0, y0, x1, y1 int) []Cell {
	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx, sy := 1, 1
	if x0 >= x1 {
		sx = -1
	}
	if y0 >= y1 {
		sy = -1
	}
	err := dx + dy

	var out []Cell
	x, y := x0, y0
	for {
		out = append(out, Cell{x, y})
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
	return out
}
