package dungeon

import "fmt"

// Coord is a board position. Coordinates are signed so that border probes
// one step off the board are representable; in-bounds checks happen against
// a Puzzle.
type Coord struct {
	X, Y int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

func (c Coord) Translate(dx, dy int) Coord {
	return Coord{c.X + dx, c.Y + dy}
}

// deltas8 lists the 8 neighbor offsets clockwise from north. Every second
// entry is orthogonal, so an entry plus the next two form the "elbow" used
// by the oversized-area check.
var deltas8 = [8]Coord{
	{0, -1},  // N
	{1, -1},  // NE
	{1, 0},   // E
	{1, 1},   // SE
	{0, 1},   // S
	{-1, 1},  // SW
	{-1, 0},  // W
	{-1, -1}, // NW
}

var deltas4 = [4]Coord{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Neighbors4 returns the four orthogonal neighbors, including any that fall
// off the board.
func (c Coord) Neighbors4() [4]Coord {
	var out [4]Coord
	for i, d := range deltas4 {
		out[i] = c.Translate(d.X, d.Y)
	}
	return out
}

// CoordSet is a set of coordinates backed by a map.
type CoordSet map[Coord]struct{}

func NewCoordSet() CoordSet {
	return make(CoordSet)
}

func (s CoordSet) Add(c Coord) {
	s[c] = struct{}{}
}

func (s CoordSet) Contains(c Coord) bool {
	_, ok := s[c]
	return ok
}

func (s CoordSet) Size() int {
	return len(s)
}
