package sim

// ReachableMask is the one-shot precomputed superset of cells the team can
// ever observe: every walkable cell reachable from an entry point, plus any
// blocking cell 4-adjacent to one (so its type is itself observable from the
// walkable side). Ported from the reference simulator's
// compute_reachable_mask; see SPEC_FULL §4.2.
type ReachableMask struct {
	width, height int
	reachable     []bool
}

// ComputeReachableMask runs the two-phase BFS once at simulation start.
func ComputeReachableMask(grid *Grid, entryPoints []Cell) *ReachableMask {
	w, h := grid.Width(), grid.Height()
	walkable := make([]bool, w*h)
	visited := make([]bool, w*h)

	queue := make([]Cell, 0, len(entryPoints))
	queue = append(queue, entryPoints...)

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		idx := c.Y*w + c.X
		if visited[idx] {
			continue
		}
		visited[idx] = true
		walkable[idx] = true

		for _, n := range c.neighbors4() {
			if !grid.InBounds(n.X, n.Y) {
				continue
			}
			ni := n.Y*w + n.X
			if visited[ni] {
				continue
			}
			if grid.Tile(n.X, n.Y).Traversable() {
				queue = append(queue, n)
			}
		}
	}

	final := make([]bool, w*h)
	copy(final, walkable)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if grid.Tile(x, y).Traversable() {
				continue
			}
			c := Cell{x, y}
			for _, n := range c.neighbors4() {
				if !grid.InBounds(n.X, n.Y) {
					continue
				}
				if walkable[n.Y*w+n.X] {
					final[y*w+x] = true
					break
				}
			}
		}
	}

	return &ReachableMask{width: w, height: h, reachable: final}
}

// Reachable reports whether (x, y) is in the mask.
func (m *ReachableMask) Reachable(x, y int) bool {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return false
	}
	return m.reachable[y*m.width+x]
}

// Count returns the total number of reachable cells.
func (m *ReachableMask) Count() int {
	n := 0
	for _, b := range m.reachable {
		if b {
			n++
		}
	}
	return n
}
