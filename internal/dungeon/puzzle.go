package dungeon

// Tile is a fixed board feature placed at authoring time. Cells without a
// tile are ordinary floor the player may wall off.
type Tile int8

const (
	Monster Tile = iota + 1
	TreasureChest
)

func (t Tile) String() string {
	switch t {
	case Monster:
		return "monster"
	case TreasureChest:
		return "treasure chest"
	default:
		return "?"
	}
}

// Rune returns the tile's character in the .ttc level format.
func (t Tile) Rune() rune {
	switch t {
	case Monster:
		return '@'
	case TreasureChest:
		return '$'
	default:
		return '?'
	}
}

// Puzzle is an immutable board: dimensions, a sparse tile map, and the
// wall-count hints shown along the top (one per column) and side (one per
// row). Hints are player feedback only; CheckSolution never reads them.
type Puzzle struct {
	Width, Height int
	Tiles         map[Coord]Tile
	TopHints      []uint8
	SideHints     []uint8
}

func (p *Puzzle) InBounds(c Coord) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < p.Width && c.Y < p.Height
}

// TileAt returns the fixed tile at c, if any.
func (p *Puzzle) TileAt(c Coord) (Tile, bool) {
	t, ok := p.Tiles[c]
	return t, ok
}

// Level is a named puzzle as read from a .ttc file.
type Level struct {
	Title  string
	Puzzle Puzzle
}
