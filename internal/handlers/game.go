package handlers

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/ndbell/nonogram-server/internal/config"
	"github.com/ndbell/nonogram-server/internal/middleware"
	"github.com/ndbell/nonogram-server/internal/nonogram"
	"github.com/ndbell/nonogram-server/internal/repository"
)

type GameHandler struct {
	log     *logrus.Logger
	repo    *repository.Queries
	cookies *config.Cookies
	ws      *config.WebSocket
	rnd     *rand.Rand
}

func NewGameHandler(
	log *logrus.Logger,
	db *pgxpool.Pool,
	cookies *config.Cookies,
	ws *config.WebSocket,
	rnd *rand.Rand,
) *GameHandler {
	return &GameHandler{
		log:     log,
		repo:    repository.New(db),
		cookies: cookies,
		ws:      ws,
		rnd:     rnd,
	}
}

func (g *GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseNewGameDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.log, wrapError(err))
		return
	}

	var def *nonogram.PuzzleDef
	if dto.Preset != "" {
		var ok bool
		if def, ok = nonogram.Preset(dto.Preset); !ok {
			w.WriteHeader(http.StatusBadRequest)
			sendJSONOrLog(w, g.log, wrapError(
				fmt.Errorf("unknown preset %q", dto.Preset),
			))
			return
		}
	} else {
		def = nonogram.Generate(dto.Rows, dto.Cols, g.rnd)
	}

	game := nonogram.NewGame(def)

	var playerId *int64
	if claims, ok := middleware.PlayerClaims(r); ok {
		g.log.WithField("username", claims.Username).Debug("creating player session")
		playerId = &claims.PlayerId
	} else {
		g.log.Debug("creating anonymous session")
	}

	session, err := g.repo.CreateGameSession(r.Context(), game, playerId)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.WithError(err).Error("unable to create game session")
		return
	}

	sendJSONOrLog(w, g.log, NewGameSessionDTO(session, game))
}

func (g *GameHandler) Presets(w http.ResponseWriter, r *http.Request) {
	sendJSONOrLog(w, g.log, map[string][]string{
		"presets": nonogram.PresetKeys(),
	})
}

func (g *GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	session, game, ok := g.loadGame(w, r)
	if !ok {
		return
	}
	g.saveAndSend(w, r, session, game, false)
}

func (g *GameHandler) Fill(w http.ResponseWriter, r *http.Request) {
	g.move(w, r, func(game *nonogram.GameState, x, y int) bool {
		return game.Fill(x, y)
	})
}

func (g *GameHandler) Mark(w http.ResponseWriter, r *http.Request) {
	g.move(w, r, func(game *nonogram.GameState, x, y int) bool {
		return game.Mark(x, y)
	})
}

func (g *GameHandler) move(
	w http.ResponseWriter, r *http.Request,
	apply func(game *nonogram.GameState, x, y int) bool,
) {
	pos, err := ParsePosDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.log, wrapError(err))
		return
	}

	session, game, ok := g.loadGame(w, r)
	if !ok {
		return
	}

	if !game.ValidatePoint(pos.X, pos.Y) {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.log, wrapError(errors.New("invalid cell position")))
		return
	}

	wrong := apply(game, pos.X, pos.Y)
	g.saveAndSend(w, r, session, game, wrong)
}

func (g *GameHandler) Reset(w http.ResponseWriter, r *http.Request) {
	session, game, ok := g.loadGame(w, r)
	if !ok {
		return
	}
	game.Reset()
	session.EndedAt = nil
	g.saveAndSend(w, r, session, game, false)
}

// Batch accepts newline-separated commands in the request body:
//
//	f x y // fill a cell at x:y
//	m x y // mark a cell at x:y
//	r     // reset the board
//
// Commands run in order; once the game is over, the rest are skipped.
// A malformed command drops all changes and returns its line number.
// The countdown is advanced from the server wall clock on load, never
// by commands.
func (g *GameHandler) Batch(w http.ResponseWriter, r *http.Request) {
	session, game, ok := g.loadGame(w, r)
	if !ok {
		return
	}

	body, err := readBody(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.WithError(err).Error("unable to read request body")
		return
	}

	for i, c := range byPiece(body, "\n") {
		if err := executeCommand(game, c); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			sendJSONOrLog(w, g.log, map[string]any{
				"line":  i,
				"error": err.Error(),
			})
			return
		}
		if game.Terminal() {
			break
		}
	}

	g.saveAndSend(w, r, session, game, false)
}

// loadGame fetches the session, decodes its state and catches the
// countdown up with the wall clock since the last write.
func (g *GameHandler) loadGame(
	w http.ResponseWriter, r *http.Request,
) (*repository.GameSession, *nonogram.GameState, bool) {
	sessionId, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return nil, nil, false
	}

	session, err := g.repo.FetchGameSession(r.Context(), sessionId)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		return nil, nil, false
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.WithError(err).Error("unable to fetch game session")
		return nil, nil, false
	}

	game, err := session.Game()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.WithError(err).Error("db returned invalid game_session.state")
		return nil, nil, false
	}

	for range int(time.Since(session.UpdatedAt).Seconds()) {
		game.Tick()
	}

	return session, game, true
}

func (g *GameHandler) saveAndSend(
	w http.ResponseWriter, r *http.Request,
	session *repository.GameSession, game *nonogram.GameState,
	errorOccurred bool,
) {
	updated, err := g.repo.UpdateGameSession(
		r.Context(), session.GameSessionId, game, endTime(session, game),
	)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.WithError(err).Error("unable to update game session")
		return
	}

	dto := NewGameSessionDTO(updated, game)
	dto.ErrorOccurred = errorOccurred
	sendJSONOrLog(w, g.log, dto)
}
