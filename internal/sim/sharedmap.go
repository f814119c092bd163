package sim

import "sort"

// SharedMap is the coordinator's fused view of every active agent's
// observations. Owned exclusively by the coordinator (§5); agents never
// write to it directly — their discoveries are folded in after each action.
type SharedMap struct {
	width, height int
	cells         []Observation
}

// NewSharedMap allocates an all-Unknown shared map sized to the grid.
func NewSharedMap(width, height int) *SharedMap {
	return &SharedMap{width: width, height: height, cells: make([]Observation, width*height)}
}

// Width returns the map's column count.
func (m *SharedMap) Width() int { return m.width }

// Height returns the map's row count.
func (m *SharedMap) Height() int { return m.height }

// At returns the shared observation for (x, y).
func (m *SharedMap) At(x, y int) Observation {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return Unknown
	}
	return m.cells[y*m.width+x]
}

// Fold merges a discovery list in: a cell is written only if currently
// Unknown. Because every agent observes the same ground truth, writing
// unconditionally would be equivalent, but the Unknown-guard makes the
// monotonicity law (§8) obviously true by construction.
func (m *SharedMap) Fold(discoveries []Discovery) {
	for _, d := range discoveries {
		idx := d.Cell.Y*m.width + d.Cell.X
		if !m.cells[idx].known {
			m.cells[idx] = Obs(d.Tile)
		}
	}
}

// KnownReachableCount returns count(SharedMap[c] != Unknown && mask[c]),
// the numerator of the completion monitor's progress ratio.
func (m *SharedMap) KnownReachableCount(mask *ReachableMask) int {
	n := 0
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if m.cells[y*m.width+x].known && mask.Reachable(x, y) {
				n++
			}
		}
	}
	return n
}

// FrontierSet is the live set of known, traversable cells with at least one
// reachable-but-unknown 4-neighbor: the candidate exploration targets.
type FrontierSet struct {
	cells map[Cell]struct{}
}

// Recompute performs the full O(W·H) scan specified in §4.5: simple and
// correct over micro-optimized, given the scale this engine targets. An
// incremental dirty-cell variant is an accepted alternative (§4.5) but isn't
// needed here.
func (m *SharedMap) Recompute(mask *ReachableMask) *FrontierSet {
	fs := &FrontierSet{cells: make(map[Cell]struct{})}
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			obs := m.cells[y*m.width+x]
			if !obs.known || !obs.tile.Traversable() {
				continue
			}
			c := Cell{x, y}
			for _, n := range c.neighbors4() {
				if m.At(n.X, n.Y).known {
					continue
				}
				if mask.Reachable(n.X, n.Y) {
					fs.cells[c] = struct{}{}
					break
				}
			}
		}
	}
	return fs
}

// Contains reports whether c is currently a frontier cell.
func (fs *FrontierSet) Contains(c Cell) bool {
	_, ok := fs.cells[c]
	return ok
}

// Len returns the number of frontier cells.
func (fs *FrontierSet) Len() int { return len(fs.cells) }

// Sorted returns every frontier cell in ascending (y, x) order, the
// deterministic iteration order design note 9 requires for reproducible
// tie-breaking.
func (fs *FrontierSet) Sorted() []Cell {
	out := make([]Cell, 0, len(fs.cells))
	for c := range fs.cells {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}
