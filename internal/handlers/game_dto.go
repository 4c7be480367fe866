package handlers

import (
	"strconv"

	"github.com/gorilla/schema"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/tombcrawler/tombcrawler-server/internal/dungeon"
)

type CreateNewGameDTO struct {
	PuzzleId int `schema:"puzzle_id,required"`
}

func ParseCreateNewGameDTO(src map[string][]string) (CreateNewGameDTO, error) {
	var dto CreateNewGameDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	return dto, err
}

type Position struct {
	X int `schema:"x,required"`
	Y int `schema:"y,required"`
}

func ParsePosition(src map[string][]string) (Position, error) {
	var pos Position
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&pos, src)
	return pos, err
}

type GameMove int

const (
	MarkWall GameMove = iota
	MarkFloor
	ClearCell
)

func ParseGameMove(s string) (GameMove, error) {
	switch s {
	case "wall":
		return MarkWall, nil
	case "floor":
		return MarkFloor, nil
	case "clear":
		return ClearCell, nil
	}
	return 0, strconv.ErrSyntax
}

type FailureDTO struct {
	Reason string `json:"reason"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
}

type GameSessionDTO struct {
	GameSessionId string      `json:"game_session_id"`
	PuzzleId      int         `json:"puzzle_id"`
	Title         string      `json:"title"`
	Width         int         `json:"width"`
	Height        int         `json:"height"`
	TopHints      []uint8     `json:"top_hints"`
	SideHints     []uint8     `json:"side_hints"`
	Grid          []string    `json:"grid"`
	ColCounts     []int       `json:"col_counts"`
	RowCounts     []int       `json:"row_counts"`
	Solved        bool        `json:"solved"`
	Failure       *FailureDTO `json:"failure,omitempty"`
	StartedAt     int64       `json:"started_at"`
	EndedAt       *int64      `json:"ended_at,omitempty"`
}

// renderGrid draws one row per board line: fixed tiles by their level
// runes, marked cells by their marking character.
func renderGrid(g *dungeon.GameState) []string {
	rows := make([]string, 0, g.Puzzle.Height)
	for y := 0; y < g.Puzzle.Height; y++ {
		row := make([]rune, 0, g.Puzzle.Width)
		for x := 0; x < g.Puzzle.Width; x++ {
			c := dungeon.Coord{X: x, Y: y}
			if tile, ok := g.Puzzle.TileAt(c); ok {
				row = append(row, tile.Rune())
			} else {
				row = append(row, []rune(g.MarkingAt(c).String())[0])
			}
		}
		rows = append(rows, string(row))
	}
	return rows
}

func NewGameSessionDTO(
	gameSessionId int,
	puzzleId int,
	startedAt pgtype.Timestamptz,
	endedAt pgtype.Timestamptz,
	game *dungeon.GameState,
	fail *dungeon.Failure,
) *GameSessionDTO {
	var endedAtMs *int64
	if endedAt.Valid {
		e := endedAt.Time.UnixMilli()
		endedAtMs = &e
	}
	var failDTO *FailureDTO
	if fail != nil {
		failDTO = &FailureDTO{
			Reason: fail.Reason.String(),
			X:      fail.Pos.X,
			Y:      fail.Pos.Y,
		}
	}
	cols, rows := game.WallCounts()
	return &GameSessionDTO{
		GameSessionId: strconv.Itoa(gameSessionId),
		PuzzleId:      puzzleId,
		Title:         game.Title,
		Width:         game.Puzzle.Width,
		Height:        game.Puzzle.Height,
		TopHints:      game.Puzzle.TopHints,
		SideHints:     game.Puzzle.SideHints,
		Grid:          renderGrid(game),
		ColCounts:     cols,
		RowCounts:     rows,
		Solved:        game.Solved,
		Failure:       failDTO,
		StartedAt:     startedAt.Time.UnixMilli(),
		EndedAt:       endedAtMs,
	}
}
