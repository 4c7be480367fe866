package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type Puzzle struct {
	PuzzleId   int
	Title      string
	Width      int
	Height     int
	Definition string
	CreatedAt  pgtype.Timestamptz
	UpdatedAt  pgtype.Timestamptz
}

type CreatePuzzleParams struct {
	Title      string
	Width      int
	Height     int
	Definition string
}

func (q *Queries) CreatePuzzle(ctx context.Context, params CreatePuzzleParams) (*Puzzle, error) {
	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO puzzle (title, width, height, definition)
		VALUES (@title, @width, @height, @definition)
		RETURNING *;`,
		pgx.NamedArgs{
			"title":      params.Title,
			"width":      params.Width,
			"height":     params.Height,
			"definition": params.Definition,
		},
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[Puzzle])
}

func (q *Queries) FetchPuzzle(ctx context.Context, puzzleId int) (*Puzzle, error) {
	rows, _ := q.db.Query(
		ctx, "SELECT * FROM puzzle WHERE puzzle_id = $1", puzzleId,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[Puzzle])
}

func (q *Queries) ListPuzzles(ctx context.Context) ([]Puzzle, error) {
	rows, err := q.db.Query(
		ctx, "SELECT * FROM puzzle ORDER BY puzzle_id",
	)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Puzzle])
}
