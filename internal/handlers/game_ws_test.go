package handlers

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tombcrawler/tombcrawler-server/internal/dungeon"
	"github.com/tombcrawler/tombcrawler-server/internal/repository"
)

func testGameState(t *testing.T) *dungeon.GameState {
	t.Helper()
	level, err := dungeon.ParseLevel(`Test level
---
 001
0$..
0...
1...
`)
	require.NoError(t, err)
	return dungeon.NewGameState(*level)
}

func TestExecuteCommands(t *testing.T) {
	game := gameExecutor{
		GameState: testGameState(t),
		session:   &repository.GameSession{},
	}

	require.NoError(t, game.execute("w 2 2"))
	assert.True(t, game.IsWall(dungeon.Coord{X: 2, Y: 2}))

	require.NoError(t, game.execute("e 1 1"))
	assert.Equal(t, dungeon.Floor, game.MarkingAt(dungeon.Coord{X: 1, Y: 1}))

	require.NoError(t, game.execute("c 1 1"))
	assert.Equal(t, dungeon.Unmarked, game.MarkingAt(dungeon.Coord{X: 1, Y: 1}))

	require.NoError(t, game.execute("g"))

	assert.Error(t, game.execute("q 0 0"))
	assert.Error(t, game.execute("w 0"))
	assert.Error(t, game.execute("w x y"))
}

func TestExecuteRejectsEndedSession(t *testing.T) {
	game := gameExecutor{
		GameState: testGameState(t),
		session: &repository.GameSession{
			EndedAt: pgtype.Timestamptz{Time: time.Now().UTC(), Valid: true},
		},
	}

	err := game.execute("w 2 2")
	assert.ErrorIs(t, err, errSessionEnded)
	assert.False(t, game.IsWall(dungeon.Coord{X: 2, Y: 2}))

	// The fetch command still works on an ended session.
	assert.NoError(t, game.execute("g"))
}
