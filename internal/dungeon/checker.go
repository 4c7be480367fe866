package dungeon

import "fmt"

// Solution is a read-only view of a candidate wall layout. It is an
// interface so the checker can validate any representation (a live play
// grid, a generated candidate) without copying it. The checker only ever
// queries in-bounds coordinates.
type Solution interface {
	IsWall(c Coord) bool
}

type FailureReason int8

const (
	// EntirelyFilledWithWalls is declared for wire-format stability but is
	// not produced: a board with no openings can only be tile-free, and a
	// tile-free board filled with walls is vacuously solved.
	EntirelyFilledWithWalls FailureReason = iota
	WallOverlapsFilledTile
	DiscontiguousAreas
	DeadEndWithoutMonster
	MonsterWithoutDeadEnd
	NoTreasureRoom
	LargeAreaOutsideOfTreasureRoom
)

func (r FailureReason) String() string {
	switch r {
	case EntirelyFilledWithWalls:
		return "entirely filled with walls"
	case WallOverlapsFilledTile:
		return "wall overlaps a filled tile"
	case DiscontiguousAreas:
		return "discontiguous areas"
	case DeadEndWithoutMonster:
		return "dead end without a monster"
	case MonsterWithoutDeadEnd:
		return "monster without a dead end"
	case NoTreasureRoom:
		return "no treasure room"
	case LargeAreaOutsideOfTreasureRoom:
		return "large area outside of a treasure room"
	default:
		return "unknown failure"
	}
}

// Failure pinpoints the first rule violation found: the violated rule and
// the single most diagnostic coordinate. Tile is set only for
// WallOverlapsFilledTile and carries the covered tile.
type Failure struct {
	Reason FailureReason
	Pos    Coord
	Tile   Tile
}

// Failure implements [error].
func (f *Failure) Error() string {
	if f.Reason == WallOverlapsFilledTile {
		return fmt.Sprintf("%s (%s) at %s", f.Reason, f.Tile, f.Pos)
	}
	return fmt.Sprintf("%s at %s", f.Reason, f.Pos)
}

// CheckSolution decides whether the candidate layout solves the puzzle:
//   - no wall covers a fixed tile,
//   - all open floor forms one connected region,
//   - every dead end holds a monster and every monster sits in a dead end,
//   - every treasure chest sits in a 3x3 room with exactly one entrance,
//   - no 2x2 open block exists outside a treasure room.
//
// It returns nil on success or a *Failure describing the first violation.
// Hint counts are deliberately not checked; they are cosmetic feedback.
func CheckSolution(p *Puzzle, s Solution) *Failure {
	chests, bigOpens, fail := checkShape(p, s)
	if fail != nil {
		return fail
	}

	claimed := NewCoordSet()
	for _, chest := range chests {
		room, fail := checkChest(p, s, chest)
		if fail != nil {
			return fail
		}
		for _, c := range room {
			claimed.Add(c)
		}
	}

	// Oversized cells are legal only inside a claimed treasure room.
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			c := Coord{x, y}
			if bigOpens.Contains(c) && !claimed.Contains(c) {
				return &Failure{Reason: LargeAreaOutsideOfTreasureRoom, Pos: c}
			}
		}
	}

	return nil
}

// checkShape verifies tile overlap, connectivity, and the dead-end/monster
// correspondence in one board sweep. It returns the chest coordinates in
// row-major order and the set of openings that participate in a 2x2 open
// block.
func checkShape(p *Puzzle, s Solution) ([]Coord, CoordSet, *Failure) {
	openings := NewCoordSet()
	monsters := NewCoordSet()
	var chests []Coord
	var firstOpening Coord

	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			c := Coord{x, y}
			tile, hasTile := p.TileAt(c)
			if hasTile {
				switch tile {
				case Monster:
					monsters.Add(c)
				case TreasureChest:
					chests = append(chests, c)
				}
			}
			if s.IsWall(c) {
				if hasTile {
					return nil, nil, &Failure{
						Reason: WallOverlapsFilledTile,
						Pos:    c,
						Tile:   tile,
					}
				}
			} else {
				if openings.Size() == 0 {
					firstOpening = c
				}
				openings.Add(c)
			}
		}
	}

	// No openings means no tiles either (a tile cell is never a wall, per
	// the overlap check above), so a fully walled board is vacuously valid.
	if openings.Size() == 0 {
		return chests, NewCoordSet(), nil
	}

	reachable := floodFill(openings, firstOpening)

	open := func(c Coord) bool {
		return p.InBounds(c) && !s.IsWall(c)
	}

	bigOpens := NewCoordSet()
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			c := Coord{x, y}
			if !openings.Contains(c) {
				continue
			}
			if !reachable.Contains(c) {
				return nil, nil, &Failure{Reason: DiscontiguousAreas, Pos: c}
			}

			if hasOpenElbow(c, open) {
				bigOpens.Add(c)
			}

			// Dead ends have 3 or 4 blocked orthogonal neighbors;
			// off-board counts as blocked.
			blocked := 0
			for _, n := range c.Neighbors4() {
				if !openings.Contains(n) {
					blocked++
				}
			}
			switch blocked {
			case 0, 1, 2:
				if monsters.Contains(c) {
					return nil, nil, &Failure{Reason: MonsterWithoutDeadEnd, Pos: c}
				}
			case 3, 4:
				if !monsters.Contains(c) {
					return nil, nil, &Failure{Reason: DeadEndWithoutMonster, Pos: c}
				}
			}
		}
	}

	return chests, bigOpens, nil
}

// hasOpenElbow reports whether c participates in a fully open 2x2 block:
// three consecutive 8-neighbors starting at an orthogonal direction (the
// orthogonal cell, the diagonal beside it, and the next orthogonal cell)
// complete a square with c.
func hasOpenElbow(c Coord, open func(Coord) bool) bool {
	for d := 0; d < 8; d += 2 {
		elbow := true
		for i := 0; i < 3; i++ {
			n := c.Translate(deltas8[(d+i)%8].X, deltas8[(d+i)%8].Y)
			if !open(n) {
				elbow = false
				break
			}
		}
		if elbow {
			return true
		}
	}
	return false
}

// floodFill returns the openings reachable from start via 4-way adjacency
// within the openings set.
func floodFill(openings CoordSet, start Coord) CoordSet {
	reached := NewCoordSet()
	todo := []Coord{start}
	for len(todo) > 0 {
		here := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		if reached.Contains(here) {
			continue
		}
		reached.Add(here)
		for _, n := range here.Neighbors4() {
			if openings.Contains(n) && !reached.Contains(n) {
				todo = append(todo, n)
			}
		}
	}
	return reached
}

// checkChest finds a treasure room for the chest: a 3x3 all-open window
// containing it whose 12-cell border ring (the 5x5 perimeter minus its four
// corners) has exactly one open cell, the entrance. Off-board border
// positions count as walls. Windows are tried in row-major corner order and
// the first hit claims its 9 cells.
func checkChest(p *Puzzle, s Solution, chest Coord) ([]Coord, *Failure) {
	minX := max(chest.X-2, 0)
	maxX := min(chest.X, p.Width-3)
	minY := max(chest.Y-2, 0)
	maxY := min(chest.Y, p.Height-3)

	room := make([]Coord, 0, 9)

	for cy := minY; cy <= maxY; cy++ {
	corners:
		for cx := minX; cx <= maxX; cx++ {
			room = room[:0]
			for y := cy; y < cy+3; y++ {
				for x := cx; x < cx+3; x++ {
					here := Coord{x, y}
					if s.IsWall(here) {
						continue corners
					}
					room = append(room, here)
				}
			}

			entrances := 0
			for _, b := range borderRing(cx, cy) {
				if p.InBounds(b) && !s.IsWall(b) {
					entrances++
					if entrances > 1 {
						continue corners
					}
				}
			}
			if entrances == 1 {
				out := make([]Coord, len(room))
				copy(out, room)
				return out, nil
			}
		}
	}

	return nil, &Failure{Reason: NoTreasureRoom, Pos: chest}
}

// borderRing lists the 12 edge-adjacent perimeter cells of the 3x3 window
// with top-left corner (cx, cy): top and bottom rows, then left and right
// columns, never the diagonal corners of the enclosing 5x5 area.
func borderRing(cx, cy int) [12]Coord {
	var ring [12]Coord
	i := 0
	for x := cx; x < cx+3; x++ {
		ring[i] = Coord{x, cy - 1}
		ring[i+1] = Coord{x, cy + 3}
		i += 2
	}
	for y := cy; y < cy+3; y++ {
		ring[i] = Coord{cx - 1, y}
		ring[i+1] = Coord{cx + 3, y}
		i += 2
	}
	return ring
}
