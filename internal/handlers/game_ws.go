package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

// ConnectWS upgrades the session endpoint to a websocket carrying the
// same newline-separated commands as Batch. Every processed message is
// answered with a full session snapshot.
func (g *GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	session, game, ok := g.loadGame(w, r)
	if !ok {
		return
	}

	c, err := g.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.log.WithError(err).Error("unable to upgrade connection")
		return
	}
	defer c.Close()

	lastSync := time.Now()
	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				g.log.WithError(err).Warn("ws read")
			}
			break
		}
		if mt != websocket.TextMessage {
			break
		}

		// The socket owns the session while connected; catch the clock
		// up between messages instead of hitting the database clock.
		for range int(time.Since(lastSync).Seconds()) {
			game.Tick()
		}
		lastSync = time.Now()

		text := strings.TrimSpace(string(message))
		g.log.Debug("ws > ", text)
		badCommand := false
		for _, cmd := range byPiece(text, "\n") {
			if err := executeCommand(game, cmd); err != nil {
				g.log.WithError(err).Warn("ws command")
				badCommand = true
				break
			}
			if game.Terminal() {
				break
			}
		}
		if badCommand {
			break
		}

		updated, err := g.repo.UpdateGameSession(
			r.Context(), session.GameSessionId, game, endTime(session, game),
		)
		if err != nil {
			g.log.WithError(err).Error("unable to update game session")
			break
		}
		session = updated

		if err := c.WriteJSON(NewGameSessionDTO(session, game)); err != nil {
			g.log.WithError(err).Error("ws write")
			break
		}
	}
}
