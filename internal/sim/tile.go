package sim

// TileKind enumerates the fixed set of ground-truth tile values a grid cell
// can hold. Values match the external map-file encoding in §6 of the spec
// (0=Free ... 6=OutOfBounds) so loaders and the core agree on meaning.
type TileKind uint8

const (
	TileFree TileKind = iota
	TileWall
	TileEntryPoint
	TileDoorClosed
	TileDoorOpen
	TileWindow
	TileOutOfBounds
)

// String renders a TileKind for logs and debug overlays.
func (k TileKind) String() string {
	switch k {
	case TileFree:
		return "Free"
	case TileWall:
		return "Wall"
	case TileEntryPoint:
		return "EntryPoint"
	case TileDoorClosed:
		return "DoorClosed"
	case TileDoorOpen:
		return "DoorOpen"
	case TileWindow:
		return "Window"
	case TileOutOfBounds:
		return "OutOfBounds"
	default:
		return "Invalid"
	}
}

// Traversable reports whether an agent can occupy a cell of this kind.
func (k TileKind) Traversable() bool {
	switch k {
	case TileFree, TileEntryPoint, TileDoorOpen, TileWindow:
		return true
	default:
		return false
	}
}

// BlocksVision reports whether a cell of this kind stops a sensing ray past
// itself. Window tiles are transparent (open question decided in SPEC_FULL
// §13), and so are OutOfBounds tiles placed inside the grid; rays themselves
// stop at the grid edge.
func (k TileKind) BlocksVision() bool {
	switch k {
	case TileWall, TileDoorClosed:
		return true
	default:
		return false
	}
}

// validTileKind reports whether v is one of the seven defined kinds, used
// when parsing external map data.
func validTileKind(v int) bool {
	return v >= int(TileFree) && v <= int(TileOutOfBounds)
}

// Observation is a per-cell entry in a private or shared map: either Unknown
// or a concrete TileKind once observed.
type Observation struct {
	known bool
	tile  TileKind
}

// Unknown is the zero-value Observation — unseen.
var Unknown = Observation{}

// Obs wraps a TileKind as a known Observation.
func Obs(k TileKind) Observation { return Observation{known: true, tile: k} }

// Known reports whether this observation has been made.
func (o Observation) Known() bool { return o.known }

// Tile returns the observed tile kind; only meaningful when Known().
func (o Observation) Tile() TileKind { return o.tile }

// Cell is an integer grid coordinate.
type Cell struct {
	X, Y int
}

// Manhattan returns the L1 distance between two cells.
func (c Cell) Manhattan(o Cell) int {
	return absInt(c.X-o.X) + absInt(c.Y-o.Y)
}

// neighbors4 returns the 4-connected neighbors of c, in a fixed deterministic
// order (Up, Down, Left, Right) so iteration is reproducible across runs.
func (c Cell) neighbors4() [4]Cell {
	return [4]Cell{
		{c.X, c.Y - 1},
		{c.X, c.Y + 1},
		{c.X - 1, c.Y},
		{c.X + 1, c.Y},
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
