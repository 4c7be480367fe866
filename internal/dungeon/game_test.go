package dungeon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T) *GameState {
	t.Helper()
	return NewGameState(*mustLevel(t, testLevel))
}

func TestToggleWall(t *testing.T) {
	g := newTestGame(t)

	require.NoError(t, g.ToggleWall(1, 1))
	assert.Equal(t, Wall, g.MarkingAt(Coord{1, 1}))
	assert.True(t, g.IsWall(Coord{1, 1}))

	// Toggling again clears the wall.
	require.NoError(t, g.ToggleWall(1, 1))
	assert.Equal(t, Unmarked, g.MarkingAt(Coord{1, 1}))
	assert.False(t, g.IsWall(Coord{1, 1}))
}

func TestToggleFloorReplacesWall(t *testing.T) {
	g := newTestGame(t)

	require.NoError(t, g.ToggleWall(0, 0))
	require.NoError(t, g.ToggleFloor(0, 0))
	assert.Equal(t, Floor, g.MarkingAt(Coord{0, 0}))
	assert.False(t, g.IsWall(Coord{0, 0}))

	require.NoError(t, g.ToggleFloor(0, 0))
	assert.Equal(t, Unmarked, g.MarkingAt(Coord{0, 0}))
}

func TestClearCell(t *testing.T) {
	g := newTestGame(t)
	require.NoError(t, g.ToggleWall(3, 3))
	require.NoError(t, g.ClearCell(3, 3))
	assert.Equal(t, Unmarked, g.MarkingAt(Coord{3, 3}))
}

func TestMarkingFixedTileRejected(t *testing.T) {
	g := newTestGame(t)

	// (2,2) holds the chest, (0,5) a monster.
	assert.Error(t, g.ToggleWall(2, 2))
	assert.Error(t, g.ToggleFloor(0, 5))
	assert.Error(t, g.ClearCell(2, 2))
	assert.Equal(t, Unmarked, g.MarkingAt(Coord{2, 2}))
}

func TestMarkingOutOfBounds(t *testing.T) {
	g := newTestGame(t)
	assert.Error(t, g.ToggleWall(-1, 0))
	assert.Error(t, g.ToggleWall(5, 0))
	assert.Error(t, g.ClearCell(0, 6))
	assert.False(t, g.IsWall(Coord{-1, -1}))
}

func TestCheckTracksSolvedState(t *testing.T) {
	g := newTestGame(t)

	fail := g.Check()
	require.NotNil(t, fail)
	assert.False(t, g.Solved)

	for y, row := range solvedWalls {
		for x := range row {
			if solvedWalls.IsWall(Coord{x, y}) {
				require.NoError(t, g.ToggleWall(x, y))
			}
		}
	}

	assert.Nil(t, g.Check())
	assert.True(t, g.Solved)

	// Knock one wall out again.
	require.NoError(t, g.ToggleWall(0, 0))
	fail = g.Check()
	require.NotNil(t, fail)
	assert.False(t, g.Solved)
}

func TestWallCounts(t *testing.T) {
	g := newTestGame(t)
	require.NoError(t, g.ToggleWall(0, 0))
	require.NoError(t, g.ToggleWall(1, 0))
	require.NoError(t, g.ToggleWall(0, 1))
	require.NoError(t, g.ToggleFloor(2, 0)) // floor notes don't count

	cols, rows := g.WallCounts()
	assert.Equal(t, []int{2, 1, 0, 0, 0}, cols)
	assert.Equal(t, []int{2, 1, 0, 0, 0, 0}, rows)
}

func TestGameStateGobRoundTrip(t *testing.T) {
	g := newTestGame(t)
	require.NoError(t, g.ToggleWall(0, 0))
	require.NoError(t, g.ToggleFloor(1, 0))
	g.Check()

	b, err := g.Bytes()
	require.NoError(t, err)

	decoded, err := DecodeGameState(b)
	require.NoError(t, err)
	assert.Equal(t, g.Title, decoded.Title)
	assert.Equal(t, g.Puzzle, decoded.Puzzle)
	assert.Equal(t, g.Markings, decoded.Markings)
	assert.Equal(t, g.Solved, decoded.Solved)
}
