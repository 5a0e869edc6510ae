package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ndbell/nonogram-server/internal/nonogram"
)

type GameSession struct {
	GameSessionId int64
	PlayerId      *int64
	PuzzleName    string
	Color         string
	Rows          int
	Cols          int
	Won           bool
	Lost          bool
	LostReason    *string
	State         []byte
	StartedAt     time.Time
	EndedAt       *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Game decodes the session's gob state blob.
func (s GameSession) Game() (*nonogram.GameState, error) {
	return nonogram.DecodeGameState(s.State)
}

func lostReason(game *nonogram.GameState) *string {
	if game.LostReason == "" {
		return nil
	}
	reason := game.LostReason
	return &reason
}

// CreateGameSession stores a fresh game, optionally owned by a player.
func (q *Queries) CreateGameSession(
	ctx context.Context, game *nonogram.GameState, playerId *int64,
) (*GameSession, error) {
	state, err := game.Bytes()
	if err != nil {
		return nil, err
	}
	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO game_session (
			player_id, puzzle_name, color, rows, cols, won, lost, lost_reason, state
		)
		VALUES (
			@player_id, @puzzle_name, @color, @rows, @cols, @won, @lost, @lost_reason, @state
		)
		RETURNING *`,
		pgx.NamedArgs{
			"player_id":   playerId,
			"puzzle_name": game.Name,
			"color":       game.Color,
			"rows":        game.Rows,
			"cols":        game.Cols,
			"won":         game.Won,
			"lost":        game.Lost,
			"lost_reason": lostReason(game),
			"state":       state,
		},
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[GameSession])
}

func (q *Queries) FetchGameSession(
	ctx context.Context, gameSessionId int64,
) (*GameSession, error) {
	rows, _ := q.db.Query(
		ctx,
		"SELECT * FROM game_session WHERE game_session_id = $1",
		gameSessionId,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[GameSession])
}

// UpdateGameSession writes the game state back and stamps updated_at,
// which doubles as the reference point for lazy clock advancement.
func (q *Queries) UpdateGameSession(
	ctx context.Context, gameSessionId int64,
	game *nonogram.GameState, endedAt *time.Time,
) (*GameSession, error) {
	state, err := game.Bytes()
	if err != nil {
		return nil, err
	}
	rows, _ := q.db.Query(
		ctx,
		`UPDATE game_session SET
			state = @state,
			won = @won,
			lost = @lost,
			lost_reason = @lost_reason,
			ended_at = @ended_at,
			updated_at = now()
		WHERE game_session_id = @game_session_id
		RETURNING *`,
		pgx.NamedArgs{
			"game_session_id": gameSessionId,
			"state":           state,
			"won":             game.Won,
			"lost":            game.Lost,
			"lost_reason":     lostReason(game),
			"ended_at":        endedAt,
		},
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[GameSession])
}
