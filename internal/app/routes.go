package app

import (
	"hash/maphash"
	"math/rand/v2"

	"github.com/ndbell/nonogram-server/internal/handlers"
)

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func (a *App) loadRoutes() {
	game := handlers.NewGameHandler(
		a.log, a.db, a.cookies, a.ws, createRand(),
	)
	auth := handlers.NewAuthHandler(a.log, a.db, a.cookies, a.jwt)
	records := handlers.NewRecordHandler(a.log, a.db)

	a.router.HandleFunc("GET /presets", game.Presets)
	a.router.HandleFunc("POST /game", game.NewGame)
	a.router.HandleFunc("GET /game/{id}", game.Fetch)
	a.router.HandleFunc("POST /game/{id}/fill", game.Fill)
	a.router.HandleFunc("POST /game/{id}/mark", game.Mark)
	a.router.HandleFunc("POST /game/{id}/reset", game.Reset)
	a.router.HandleFunc("POST /game/{id}/batch", game.Batch)
	a.router.HandleFunc("/game/{id}/connect", game.ConnectWS)

	a.router.HandleFunc("GET /status", auth.Status)
	a.router.HandleFunc("POST /register", auth.Register)
	a.router.HandleFunc("POST /login", auth.Login)
	a.router.HandleFunc("POST /logout", auth.Logout)

	a.router.HandleFunc("GET /records", records.GetRecords)
	a.router.HandleFunc("GET /myrecords", records.GetOwnRecords)
}
