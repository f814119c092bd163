package mapfile

import (
	"math/rand"
	"testing"
)

func TestGenerateRandom_BorderIsWalled(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	rows := GenerateRandom(rng, 20, 15, 2)

	// Border cells are walls, except where an entry point was forced onto the
	// border; corners are never entry points.
	border := func(v int) bool { return v == tileWall || v == tileEntryPoint }
	for x := 0; x < 20; x++ {
		if !border(rows[0][x]) || !border(rows[14][x]) {
			t.Fatalf("expected top/bottom border walls at column %d", x)
		}
	}
	for y := 0; y < 15; y++ {
		if !border(rows[y][0]) || !border(rows[y][19]) {
			t.Fatalf("expected left/right border walls at row %d", y)
		}
	}
	for _, c := range [][2]int{{0, 0}, {19, 0}, {0, 14}, {19, 14}} {
		if rows[c[1]][c[0]] != tileWall {
			t.Fatalf("expected a wall at corner (%d,%d)", c[0], c[1])
		}
	}
}

func TestGenerateRandom_PlacesRequestedEntryPoints(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	rows := GenerateRandom(rng, 24, 24, 3)

	count := 0
	for _, row := range rows {
		for _, v := range row {
			if v == tileEntryPoint {
				count++
			}
		}
	}
	if count != 3 {
		t.Fatalf("expected exactly 3 entry points, got %d", count)
	}
}

func TestGenerateRandom_Deterministic(t *testing.T) {
	a := GenerateRandom(rand.New(rand.NewSource(42)), 16, 16, 2)
	b := GenerateRandom(rand.New(rand.NewSource(42)), 16, 16, 2)

	for y := range a {
		for x := range a[y] {
			if a[y][x] != b[y][x] {
				t.Fatalf("expected identical output for identical seed at (%d,%d)", x, y)
			}
		}
	}
}
