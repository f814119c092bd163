package sim

import "container/heap"

// astarNode is one entry in the A* open set. Structure and heap plumbing
// are ported directly from the teacher's NavGrid.FindPath (navmesh.go),
// generalized from pixel-space continuous cost to the 4-connected,
// uniform-cost grid this spec calls for.
type astarNode struct {
	cell   Cell
	g, h   float64
	parent *astarNode
	index  int
}

type openList []*astarNode

func (ol openList) Len() int          { return len(ol) }
func (ol openList) Less(i, j int) bool { return (ol[i].g + ol[i].h) < (ol[j].g + ol[j].h) }
func (ol openList) Swap(i, j int) {
	ol[i], ol[j] = ol[j], ol[i]
	ol[i].index = i
	ol[j].index = j
}
func (ol *openList) Push(x interface{}) {
	n := x.(*astarNode)
	n.index = len(*ol)
	*ol = append(*ol, n)
}
func (ol *openList) Pop() interface{} {
	old := *ol
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*ol = old[:len(old)-1]
	return n
}

// passable reports whether a cell is enterable by A*'s optimistic
// traversability rule (§4.6): Unknown is passable (may fail at execution
// and trigger a replan), and known cells must be traversable tiles. Out of
// grid bounds is never passable.
func passable(grid *Grid, shared *SharedMap, c Cell) bool {
	if !grid.InBounds(c.X, c.Y) {
		return false
	}
	obs := shared.At(c.X, c.Y)
	if !obs.known {
		return true
	}
	return obs.tile.Traversable()
}

// findPath runs 4-connected, uniform-cost A* from start to goal over the
// shared partial map, with Manhattan-distance heuristic. Returns nil if no
// path exists. The returned path excludes start and includes goal (§4.6).
func findPath(grid *Grid, shared *SharedMap, start, goal Cell) []Cell {
	if !passable(grid, shared, start) || !passable(grid, shared, goal) {
		return nil
	}
	heuristic := func(c Cell) float64 { return float64(c.Manhattan(goal)) }

	startNode := &astarNode{cell: start, g: 0, h: heuristic(start)}
	ol := &openList{startNode}
	heap.Init(ol)

	closed := make(map[Cell]bool)
	best := map[Cell]*astarNode{start: startNode}

	for ol.Len() > 0 {
		cur := heap.Pop(ol).(*astarNode)
		if cur.cell == goal {
			return reconstructPath(cur)
		}
		if closed[cur.cell] {
			continue
		}
		closed[cur.cell] = true

		for _, n := range cur.cell.neighbors4() {
			if closed[n] || !passable(grid, shared, n) {
				continue
			}
			tentativeG := cur.g + 1
			if prev, ok := best[n]; ok && tentativeG >= prev.g {
				continue
			}
			node := &astarNode{cell: n, g: tentativeG, h: heuristic(n), parent: cur}
			best[n] = node
			heap.Push(ol, node)
		}
	}
	return nil
}

func reconstructPath(end *astarNode) []Cell {
	var rev []Cell
	for n := end; n.parent != nil; n = n.parent {
		rev = append(rev, n.cell)
	}
	path := make([]Cell, len(rev))
	for i, c := range rev {
		path[len(rev)-1-i] = c
	}
	return path
}
