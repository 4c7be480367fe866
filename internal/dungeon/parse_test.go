package dungeon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel(testLevel)
	require.NoError(t, err)

	assert.Equal(t, "Test level", level.Title)
	assert.Equal(t, 5, level.Puzzle.Width)
	assert.Equal(t, 6, level.Puzzle.Height)
	assert.Equal(t, []uint8{5, 2, 1, 2, 5}, level.Puzzle.TopHints)
	assert.Equal(t, []uint8{5, 2, 2, 2, 4, 0}, level.Puzzle.SideHints)
	assert.Equal(t, map[Coord]Tile{
		{2, 2}: TreasureChest,
		{0, 5}: Monster,
		{4, 5}: Monster,
	}, level.Puzzle.Tiles)
}

func TestParseLevelCommentBlock(t *testing.T) {
	level, err := ParseLevel(`Commented level
This line is a comment.
So is this one.
---
 11
1..
1..
`)
	require.NoError(t, err)
	assert.Equal(t, "Commented level", level.Title)
	assert.Equal(t, 2, level.Puzzle.Width)
	assert.Equal(t, 2, level.Puzzle.Height)
	assert.Empty(t, level.Puzzle.Tiles)
}

func TestParseLevelCRLF(t *testing.T) {
	level, err := ParseLevel("Windows level\r\n---\r\n 10\r\n1.@\r\n")
	require.NoError(t, err)
	assert.Equal(t, 2, level.Puzzle.Width)
	assert.Equal(t, 1, level.Puzzle.Height)
	assert.Equal(t, map[Coord]Tile{{1, 0}: Monster}, level.Puzzle.Tiles)
}

func TestParseLevelErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", "missing title"},
		{"no separator", "Title\n 12\n1..\n", "missing --- separator"},
		{"no hint row", "Title\n---\n", "missing top hint row"},
		{
			"hint row without corner space",
			"Title\n---\n12\n1..\n",
			"top hint row must start with a space",
		},
		{"bad hint digit", "Title\n---\n 1x\n1..\n", "bad top hint"},
		{"bad tile", "Title\n---\n 12\n1.#\n", "bad tile"},
		{"short row", "Title\n---\n 12\n1.\n", "row has 1 cells, want 2"},
		{"no board rows", "Title\n---\n 12\n", "level has no board rows"},
		{
			"row without hint digit",
			"Title\n---\n 12\n..x\n",
			"row must start with a hint digit",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParseLevel(test.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.want)
		})
	}
}
