package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/middleware"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/render"
	"github.com/vancomm/minesweeper/internal/session"
)

var (
	ErrNoToken    = errors.New("game token required")
	ErrWrongToken = errors.New("token was issued for another game")
)

type GameHandler struct {
	logger   *slog.Logger
	sessions *session.Registry
	cookies  *config.Cookies
	ws       *config.WebSocket
	defaults mines.GameParams
	palette  render.Palette
}

func NewGameHandler(
	logger *slog.Logger,
	sessions *session.Registry,
	cookies *config.Cookies,
	ws *config.WebSocket,
	defaults mines.GameParams,
	palette render.Palette,
) *GameHandler {
	handler := &GameHandler{
		logger:   logger,
		sessions: sessions,
		cookies:  cookies,
		ws:       ws,
		defaults: defaults,
		palette:  palette,
	}
	return handler
}

// session looks up the session named in the path and checks that the
// request carries its token. On failure the response is already written.
func (g GameHandler) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id := r.PathValue("id")

	claims, ok := r.Context().Value(middleware.CtxGameClaims).(*config.GameClaims)
	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		sendJSONOrLog(w, g.logger, wrapError(ErrNoToken))
		return nil, false
	}
	if claims.GameID != id {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		sendJSONOrLog(w, g.logger, wrapError(ErrWrongToken))
		return nil, false
	}

	s, err := g.sessions.Get(id)
	if err != nil {
		sendError(w, g.logger, err)
		return nil, false
	}
	return s, true
}

func (g GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	params, err := ParseNewGameDTO(r.URL.Query(), g.defaults)
	if err != nil {
		sendError(w, g.logger, err)
		return
	}

	s, err := g.sessions.Create(params)
	if err != nil {
		sendError(w, g.logger, err)
		return
	}

	token, err := g.cookies.JWT().Sign(g.cookies.JWT().NewGameClaims(s.ID))
	if err != nil {
		g.sessions.Delete(s.ID)
		sendError(w, g.logger, err)
		return
	}
	if err := g.cookies.Refresh(w, token); err != nil {
		g.sessions.Delete(s.ID)
		sendError(w, g.logger, err)
		return
	}

	g.logger.Debug("game created", slog.String("id", s.ID), slog.String("params", params.Seed()))

	dto := NewGameSessionDTO(s, s.View())
	dto.Token = token
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	sendJSONOrLog(w, g.logger, dto)
}

func (g GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	s, ok := g.session(w, r)
	if !ok {
		return
	}
	sendJSONOrLog(w, g.logger, NewGameSessionDTO(s, s.View()))
}

func (g GameHandler) MakeAMove(w http.ResponseWriter, r *http.Request) {
	move, p, err := ParseMoveDTO(r.URL.Query())
	if err != nil {
		sendError(w, g.logger, err)
		return
	}

	s, ok := g.session(w, r)
	if !ok {
		return
	}

	v, err := s.Apply(move, p.X, p.Y)
	if err != nil {
		sendError(w, g.logger, err)
		return
	}
	sendJSONOrLog(w, g.logger, NewGameSessionDTO(s, v))
}

// Click applies a pointer click given in viewport pixels. Clicks that land
// outside the grid leave the game untouched.
func (g GameHandler) Click(w http.ResponseWriter, r *http.Request) {
	click, move, err := ParseClickDTO(r.URL.Query())
	if err != nil {
		sendError(w, g.logger, err)
		return
	}

	s, ok := g.session(w, r)
	if !ok {
		return
	}

	v, err := s.ApplyAt(move, click.PX, click.PY, click.ViewportWidth, click.ViewportHeight)
	if err != nil && !errors.Is(err, mines.ErrOutOfBounds) {
		sendError(w, g.logger, err)
		return
	}
	sendJSONOrLog(w, g.logger, NewGameSessionDTO(s, v))
}

func (g GameHandler) Palette(w http.ResponseWriter, r *http.Request) {
	sendJSONOrLog(w, g.logger, g.palette)
}
