package app

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/handlers"
)

func (a *App) loadRoutes() {
	game := handlers.NewGameHandler(
		a.logger, a.sessions, a.cookies, a.ws, a.defaults, a.palette,
	)

	base := config.BasePath()

	a.router.HandleFunc("POST "+base+"/game", game.NewGame)
	a.router.HandleFunc("GET "+base+"/game/{id}", game.Fetch)
	a.router.HandleFunc("POST "+base+"/game/{id}/move", game.MakeAMove)
	a.router.HandleFunc("POST "+base+"/game/{id}/click", game.Click)
	a.router.HandleFunc("GET "+base+"/game/{id}/connect", game.ConnectWS)
	a.router.HandleFunc("GET "+base+"/palette", game.Palette)

	a.router.Handle("GET "+base+"/metrics", promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{}))
	a.router.HandleFunc("GET "+base+"/healthz", func(w http.ResponseWriter, r *http.Request) {
		health := map[string]int{"sessions": a.sessions.Len()}
		if _, err := handlers.SendJSON(w, health); err != nil {
			a.logger.Error(
				"unable to send response",
				slog.Any("response", health),
				slog.Any("error", err),
			)
		}
	})
}
