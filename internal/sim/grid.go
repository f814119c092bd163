package sim

// Grid is the read-only tile array: the ground-truth source the agent
// sensors and the reachability analyzer read from. Immutable after
// construction.
type Grid struct {
	width, height int
	tiles         []TileKind // row-major, index = y*width + x
}

// NewGrid builds a Grid from a row-major tile matrix (rows[y][x]). Returns
// ErrInvalidMap if the grid is empty, ragged, or contains an out-of-range
// tile value.
func NewGrid(rows [][]int) (*Grid, error) {
	height := len(rows)
	if height == 0 {
		return nil, ErrInvalidMap
	}
	width := len(rows[0])
	if width == 0 {
		return nil, ErrInvalidMap
	}

	tiles := make([]TileKind, width*height)
	for y, row := range rows {
		if len(row) != width {
			return nil, ErrInvalidMap
		}
		for x, v := range row {
			if !validTileKind(v) {
				return nil, ErrInvalidMap
			}
			tiles[y*width+x] = TileKind(v)
		}
	}
	return &Grid{width: width, height: height, tiles: tiles}, nil
}

// Width returns the grid's column count.
func (g *Grid) Width() int { return g.width }

// Height returns the grid's row count.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x, y) addresses a real cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Tile returns the ground-truth tile at (x, y), or TileOutOfBounds for
// coordinates outside the grid.
func (g *Grid) Tile(x, y int) TileKind {
	if !g.InBounds(x, y) {
		return TileOutOfBounds
	}
	return g.tiles[y*g.width+x]
}

// setTile mutates a tile in place. Only used during construction (promoting
// a traversable cell to EntryPoint when the map declares none); the grid is
// immutable to every other package.
func (g *Grid) setTile(x, y int, k TileKind) {
	g.tiles[y*g.width+x] = k
}

// EntryPoints returns every EntryPoint cell, in ascending (y, x) order.
func (g *Grid) EntryPoints() []Cell {
	var out []Cell
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.tiles[y*g.width+x] == TileEntryPoint {
				out = append(out, Cell{x, y})
			}
		}
	}
	return out
}
