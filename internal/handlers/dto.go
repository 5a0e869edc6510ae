package handlers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gorilla/schema"

	"github.com/ndbell/nonogram-server/internal/nonogram"
	"github.com/ndbell/nonogram-server/internal/repository"
)

const (
	minBoardSide = 2
	maxBoardSide = 25
)

type NewGameDTO struct {
	Rows   int    `schema:"rows"`
	Cols   int    `schema:"cols"`
	Preset string `schema:"preset"`
}

func ParseNewGameDTO(src map[string][]string) (NewGameDTO, error) {
	var dto NewGameDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	if err := dec.Decode(&dto, src); err != nil {
		return dto, err
	}
	if err := dto.validate(); err != nil {
		return dto, err
	}
	return dto, nil
}

func (dto *NewGameDTO) validate() error {
	if dto.Preset != "" {
		return nil
	}
	if dto.Rows < minBoardSide || dto.Rows > maxBoardSide ||
		dto.Cols < minBoardSide || dto.Cols > maxBoardSide {
		return fmt.Errorf(
			"board size must be between %dx%d and %dx%d",
			minBoardSide, minBoardSide, maxBoardSide, maxBoardSide,
		)
	}
	return nil
}

type PosDTO struct {
	X int `schema:"x,required"`
	Y int `schema:"y,required"`
}

func ParsePosDTO(src map[string][]string) (PosDTO, error) {
	var dto PosDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	return dto, err
}

type GameSessionDTO struct {
	GameSessionId string               `json:"game_session_id"`
	Name          string               `json:"name"`
	Color         string               `json:"color"`
	Rows          int                  `json:"rows"`
	Cols          int                  `json:"cols"`
	Board         []nonogram.CellState `json:"board"`
	RowClues      []nonogram.Clue      `json:"row_clues"`
	ColClues      []nonogram.Clue      `json:"col_clues"`
	RowsDone      [][]bool             `json:"rows_done"`
	ColsDone      [][]bool             `json:"cols_done"`
	Remaining     int                  `json:"remaining"`
	TimeLimit     int                  `json:"time_limit"`
	ErrorCount    int                  `json:"error_count"`
	MaxErrors     int                  `json:"max_errors"`
	ErrorCells    []int                `json:"error_cells,omitempty"`
	ErrorOccurred bool                 `json:"error_occurred,omitempty"`
	Won           bool                 `json:"won"`
	Lost          bool                 `json:"lost"`
	LostReason    string               `json:"lost_reason,omitempty"`
	StartedAt     int64                `json:"started_at"`
	EndedAt       *int64               `json:"ended_at,omitempty"`
}

func NewGameSessionDTO(
	session *repository.GameSession, game *nonogram.GameState,
) *GameSessionDTO {
	var endedAt *int64
	if session.EndedAt != nil {
		e := session.EndedAt.UnixMilli()
		endedAt = &e
	}
	rowsDone, colsDone := game.Completion()
	return &GameSessionDTO{
		GameSessionId: strconv.FormatInt(session.GameSessionId, 10),
		Name:          game.Name,
		Color:         game.Color,
		Rows:          game.Rows,
		Cols:          game.Cols,
		Board:         game.Board.Cells,
		RowClues:      game.RowClues,
		ColClues:      game.ColClues,
		RowsDone:      rowsDone,
		ColsDone:      colsDone,
		Remaining:     game.Remaining,
		TimeLimit:     game.TimeLimit,
		ErrorCount:    game.ErrorCount,
		MaxErrors:     game.MaxErrors,
		ErrorCells:    game.ErrorCells,
		Won:           game.Won,
		Lost:          game.Lost,
		LostReason:    game.LostReason,
		StartedAt:     session.StartedAt.UnixMilli(),
		EndedAt:       endedAt,
	}
}

// endTime freezes the session end timestamp the first time a game goes
// terminal.
func endTime(session *repository.GameSession, game *nonogram.GameState) *time.Time {
	if session.EndedAt != nil {
		return session.EndedAt
	}
	if game.Terminal() {
		now := time.Now().UTC()
		return &now
	}
	return nil
}
