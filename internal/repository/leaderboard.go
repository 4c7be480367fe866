package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
)

type LeaderboardEntry struct {
	GameSessionId int     `json:"game_session_id"`
	Username      *string `json:"username"`
	PuzzleId      int     `json:"puzzle_id"`
	Title         string  `json:"title"`
	PlaytimeMs    float64 `json:"playtime_ms"`
}

type LeaderboardFilter struct {
	Username *string
	PuzzleId *int
}

func (f LeaderboardFilter) WhereClause() (string, pgx.NamedArgs) {
	clauses := make([]string, 0)
	args := pgx.NamedArgs{}
	if f.Username != nil {
		clauses = append(clauses, "username = @username")
		args["username"] = *f.Username
	}
	if f.PuzzleId != nil {
		clauses = append(clauses, "puzzle_id = @puzzleId")
		args["puzzleId"] = *f.PuzzleId
	}
	return strings.Join(clauses, " AND "), args
}

func (q *Queries) GetLeaderboard(
	ctx context.Context, filter LeaderboardFilter,
) ([]LeaderboardEntry, error) {
	query := `
	SELECT
		game_session_id,
		username,
		puzzle_id,
		title,
		(
			extract('epoch' from ended_at) -
			extract('epoch' from started_at)
		) * 1000 playtime_ms
	FROM game_session
		JOIN puzzle using (puzzle_id)
		LEFT OUTER JOIN player using (player_id)
	WHERE
		solved = true
		AND ended_at IS NOT NULL
	`

	whereClause, args := filter.WhereClause()
	if whereClause != "" {
		query += " AND " + whereClause
	}

	query += " ORDER BY playtime_ms;"

	rows, err := q.db.Query(ctx, query, args)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[LeaderboardEntry])
}
