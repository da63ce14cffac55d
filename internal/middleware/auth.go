package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/vancomm/minesweeper/internal/config"
)

type CtxKey int

const (
	CtxGameClaims CtxKey = iota
)

// Auth puts the game claims of a valid token into the request context.
// Requests without a valid token pass through untouched; handlers decide
// whether they need one.
func Auth(logger *slog.Logger, cookies *config.Cookies) Middleware {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := cookies.ParseGameClaims(r)
			if err != nil {
				if _, cookieErr := r.Cookie("sign"); cookieErr == nil {
					logger.Debug("dropping invalid game token", slog.Any("error", err))
					cookies.Clear(w)
				}
				h.ServeHTTP(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), CtxGameClaims, claims)
			h.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
