package sim

import "testing"

func TestSharedMap_FoldIsIdempotentAndMonotone(t *testing.T) {
	m := NewSharedMap(3, 3)
	m.Fold([]Discovery{{Cell{1, 1}, TileFree}})
	if !m.At(1, 1).known {
		t.Fatalf("expected (1,1) known after fold")
	}
	// A later fold with a different (impossible in practice, ground truth is
	// static) value must not overwrite — Unknown-guarded by construction.
	m.Fold([]Discovery{{Cell{1, 1}, TileWall}})
	if m.At(1, 1).tile != TileFree {
		t.Fatalf("expected first-write-wins, got %v", m.At(1, 1).tile)
	}
}

func TestFrontierSet_InvariantMembership(t *testing.T) {
	rows := rect(5, 5, int(TileFree))
	g, err := NewGrid(rows)
	if err != nil {
		t.Fatal(err)
	}
	mask := ComputeReachableMask(g, []Cell{{2, 2}})

	m := NewSharedMap(5, 5)
	m.Fold([]Discovery{{Cell{2, 2}, TileFree}})
	fs := m.Recompute(mask)

	if !fs.Contains(Cell{2, 2}) {
		t.Fatalf("expected (2,2) to be a frontier: known, traversable, has unknown reachable neighbors")
	}
	for _, c := range fs.Sorted() {
		obs := m.At(c.X, c.Y)
		if !obs.known || !obs.tile.Traversable() {
			t.Fatalf("frontier cell %v violates known+traversable invariant", c)
		}
		hasUnknownReachableNeighbor := false
		for _, n := range c.neighbors4() {
			if !m.At(n.X, n.Y).known && mask.Reachable(n.X, n.Y) {
				hasUnknownReachableNeighbor = true
			}
		}
		if !hasUnknownReachableNeighbor {
			t.Fatalf("frontier cell %v has no unknown reachable neighbor", c)
		}
	}
}

func TestFrontierSet_SortedIsDeterministicYXOrder(t *testing.T) {
	rows := rect(4, 4, int(TileFree))
	g, err := NewGrid(rows)
	if err != nil {
		t.Fatal(err)
	}
	mask := ComputeReachableMask(g, []Cell{{0, 0}})
	m := NewSharedMap(4, 4)
	m.Fold([]Discovery{{Cell{0, 0}, TileFree}, {Cell{1, 0}, TileFree}, {Cell{0, 1}, TileFree}})

	fs := m.Recompute(mask)
	sorted := fs.Sorted()
	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1], sorted[i]
		if cur.Y < prev.Y || (cur.Y == prev.Y && cur.X < prev.X) {
			t.Fatalf("expected ascending (y,x) order, got %v before %v", prev, cur)
		}
	}
}
