package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
)

type GameRecord struct {
	GameSessionId int64   `json:"game_session_id,string"`
	Username      *string `json:"username"`
	PuzzleName    string  `json:"puzzle_name"`
	Rows          int     `json:"rows"`
	Cols          int     `json:"cols"`
	PlaytimeMs    float64 `json:"playtime_ms"`
}

type GameRecordFilter struct {
	Username   *string
	Rows, Cols *int
}

func (f GameRecordFilter) WhereClause() (string, pgx.NamedArgs) {
	clauses := make([]string, 0)
	args := pgx.NamedArgs{}
	if f.Username != nil {
		clauses = append(clauses, "username = @username")
		args["username"] = *f.Username
	}
	if f.Rows != nil {
		clauses = append(clauses, "rows = @rows")
		args["rows"] = *f.Rows
	}
	if f.Cols != nil {
		clauses = append(clauses, "cols = @cols")
		args["cols"] = *f.Cols
	}
	return strings.Join(clauses, " AND "), args
}

// GetGameRecords lists the fastest finished wins, optionally narrowed
// to one player or one board size.
func (q *Queries) GetGameRecords(
	ctx context.Context, filter GameRecordFilter,
) ([]GameRecord, error) {
	query := `
	SELECT
		game_session_id,
		username,
		puzzle_name,
		rows,
		cols,
		(
			extract('epoch' from ended_at) -
			extract('epoch' from started_at)
		) * 1000 playtime_ms
	FROM game_session
		LEFT OUTER JOIN player USING (player_id)
	WHERE
		won = true
		AND ended_at IS NOT NULL
	`

	whereClause, args := filter.WhereClause()
	if whereClause != "" {
		query += " AND " + whereClause
	}

	query += " ORDER BY playtime_ms"

	rows, err := q.db.Query(ctx, query, args)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[GameRecord])
}
