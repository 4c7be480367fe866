package dungeon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testLevel = `Test level

---
 52125
5.....
2.....
2..$..
2.....
4.....
0@...@
`

// wallGrid is a Solution literal: '#' is a wall, anything else is open.
type wallGrid []string

func (w wallGrid) IsWall(c Coord) bool {
	return w[c.Y][c.X] == '#'
}

// solvedWalls solves testLevel: a 3x3 treasure room with a single entrance
// at the bottom, a corridor along the last row, and a monster dead end at
// each end of it.
var solvedWalls = wallGrid{
	"#####",
	"#...#",
	"#...#",
	"#...#",
	"##.##",
	".....",
}

func mustLevel(t *testing.T, text string) *Level {
	t.Helper()
	level, err := ParseLevel(text)
	require.NoError(t, err)
	return level
}

func TestCheckSolutionSolved(t *testing.T) {
	level := mustLevel(t, testLevel)
	fail := CheckSolution(&level.Puzzle, solvedWalls)
	assert.Nil(t, fail)
}

func TestCheckSolutionIsPure(t *testing.T) {
	level := mustLevel(t, testLevel)
	walls := wallGrid{
		"#####",
		"#...#",
		"#...#",
		"#...#",
		"##.##",
		"..#..", // corridor broken in two
	}
	first := CheckSolution(&level.Puzzle, walls)
	second := CheckSolution(&level.Puzzle, walls)
	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, *first, *second)
}

func TestWallOverlapsFilledTile(t *testing.T) {
	level := mustLevel(t, testLevel)
	walls := wallGrid{
		"#####",
		"#...#",
		"#...#",
		"#...#",
		"##.##",
		"#....", // wall on the left monster
	}
	fail := CheckSolution(&level.Puzzle, walls)
	require.NotNil(t, fail)
	assert.Equal(t, WallOverlapsFilledTile, fail.Reason)
	assert.Equal(t, Coord{0, 5}, fail.Pos)
	assert.Equal(t, Monster, fail.Tile)
}

func TestDiscontiguousAreas(t *testing.T) {
	level := mustLevel(t, testLevel)
	walls := wallGrid{
		"#####",
		"#...#",
		"#...#",
		"#...#",
		"#####", // entrance sealed: corridor unreachable from the room
		".....",
	}
	fail := CheckSolution(&level.Puzzle, walls)
	require.NotNil(t, fail)
	assert.Equal(t, DiscontiguousAreas, fail.Reason)
	// The fill starts in the room; the first unreached opening in scan
	// order is the corridor's left end.
	assert.Equal(t, Coord{0, 5}, fail.Pos)
}

func TestDeadEndWithoutMonster(t *testing.T) {
	level := mustLevel(t, `Hallway
---
 010
2...
`)
	fail := CheckSolution(&level.Puzzle, wallGrid{"#.#"})
	require.NotNil(t, fail)
	assert.Equal(t, DeadEndWithoutMonster, fail.Reason)
	assert.Equal(t, Coord{1, 0}, fail.Pos)
}

func TestMonsterWithoutDeadEnd(t *testing.T) {
	// Monster placed inside the treasure room: only two of its orthogonal
	// neighbors are blocked.
	level := mustLevel(t, `Misplaced monster
---
 52125
5.....
2.@...
2..$..
2.....
4.....
0@...@
`)
	fail := CheckSolution(&level.Puzzle, solvedWalls)
	require.NotNil(t, fail)
	assert.Equal(t, MonsterWithoutDeadEnd, fail.Reason)
	assert.Equal(t, Coord{1, 1}, fail.Pos)
}

func TestNoTreasureRoomSecondEntrance(t *testing.T) {
	level := mustLevel(t, testLevel)
	walls := wallGrid{
		"#####",
		"#...#",
		"#....", // second and third open border cells on the
		"#....", // room's right edge
		"##.##",
		".....",
	}
	fail := CheckSolution(&level.Puzzle, walls)
	require.NotNil(t, fail)
	assert.Equal(t, NoTreasureRoom, fail.Reason)
	assert.Equal(t, Coord{2, 2}, fail.Pos)
}

func TestTreasureRoomAfterRejectedCorner(t *testing.T) {
	// The winning window corner (1,1) is neither the first candidate nor
	// the chest's own cell: every corner in row 0 and the earlier corner
	// (0,1) in the same row hold a wall in their window and must be
	// skipped individually, not a whole row at a time.
	level := mustLevel(t, `Side vault
---
 52125
5.....
2.....
2..$..
2.....
4..@..
`)
	walls := wallGrid{
		"#####",
		"#...#",
		"#...#",
		"#...#",
		"##.##",
	}
	fail := CheckSolution(&level.Puzzle, walls)
	assert.Nil(t, fail)
}

func TestNoTreasureRoomBlockedWindow(t *testing.T) {
	// Every 3x3 window containing the chest holds a wall.
	level := mustLevel(t, `Cramped vault
---
 001
0$..
0...
1...
`)
	walls := wallGrid{
		"...",
		"...",
		"..#",
	}
	// (2,2) is walled so the only window is rejected; shape checks pass
	// since no open cell is a dead end.
	fail := CheckSolution(&level.Puzzle, walls)
	require.NotNil(t, fail)
	assert.Equal(t, NoTreasureRoom, fail.Reason)
	assert.Equal(t, Coord{0, 0}, fail.Pos)
}

func TestNoTreasureRoomBoardTooSmall(t *testing.T) {
	level := mustLevel(t, `Tiny
---
 00
0$.
0..
`)
	fail := CheckSolution(&level.Puzzle, wallGrid{"..", ".."})
	require.NotNil(t, fail)
	assert.Equal(t, NoTreasureRoom, fail.Reason)
	assert.Equal(t, Coord{0, 0}, fail.Pos)
}

func TestLargeAreaOutsideOfTreasureRoom(t *testing.T) {
	// Tile-free board with an open 2x2 block in the corner.
	level := mustLevel(t, `Open pocket
---
 0000
0....
0....
0....
`)
	walls := wallGrid{
		"##..",
		"##..",
		"####",
	}
	fail := CheckSolution(&level.Puzzle, walls)
	require.NotNil(t, fail)
	assert.Equal(t, LargeAreaOutsideOfTreasureRoom, fail.Reason)
	assert.Equal(t, Coord{2, 0}, fail.Pos)
}

func TestAllWallsNoTilesIsVacuouslyValid(t *testing.T) {
	level := mustLevel(t, `Filled in
---
 333
3...
3...
3...
`)
	fail := CheckSolution(&level.Puzzle, wallGrid{"###", "###", "###"})
	assert.Nil(t, fail)
}

func TestFailureError(t *testing.T) {
	tests := []struct {
		fail Failure
		want string
	}{
		{
			Failure{Reason: DiscontiguousAreas, Pos: Coord{1, 2}},
			"discontiguous areas at (1,2)",
		},
		{
			Failure{Reason: WallOverlapsFilledTile, Pos: Coord{0, 0}, Tile: TreasureChest},
			"wall overlaps a filled tile (treasure chest) at (0,0)",
		},
	}
	for _, test := range tests {
		assert.EqualError(t, &test.fail, test.want)
	}
}

// TestOversizedElbowMatchesSlidingWindow pins the equivalence between the
// four-direction elbow check and the ground truth it stands for: c is part
// of a fully open 2x2 block exactly when some quadrant (both orthogonal
// neighbors plus the diagonal between them) is fully open. All 256 local
// neighbor patterns are enumerated. Note that a naive sliding window over
// all eight cyclic run positions is NOT equivalent: a diagonal-anchored run
// (e.g. NE, E, SE) does not witness a 2x2 block.
func TestOversizedElbowMatchesSlidingWindow(t *testing.T) {
	center := Coord{0, 0}
	for pattern := 0; pattern < 256; pattern++ {
		open := func(c Coord) bool {
			if c == center {
				return true
			}
			for i, d := range deltas8 {
				if c == center.Translate(d.X, d.Y) {
					return pattern&(1<<i) != 0
				}
			}
			return false
		}

		want := false
		for _, q := range [][3]int{{0, 1, 2}, {2, 3, 4}, {4, 5, 6}, {6, 7, 0}} {
			quadrant := true
			for _, i := range q {
				d := deltas8[i]
				if !open(center.Translate(d.X, d.Y)) {
					quadrant = false
					break
				}
			}
			if quadrant {
				want = true
				break
			}
		}

		got := hasOpenElbow(center, open)
		assert.Equalf(t, want, got, "pattern %08b", pattern)
	}
}
