package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/metrics"
	"github.com/vancomm/minesweeper/internal/middleware"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/render"
	"github.com/vancomm/minesweeper/internal/session"
)

type App struct {
	logger   *slog.Logger
	router   *http.ServeMux
	registry *prometheus.Registry
	sessions *session.Registry
	cookies  *config.Cookies
	ws       *config.WebSocket
	defaults mines.GameParams
	palette  render.Palette
	janitor  time.Duration
}

func New(logger *slog.Logger) *App {
	router := http.NewServeMux()

	app := &App{
		logger:   logger,
		router:   router,
		registry: prometheus.NewRegistry(),
	}

	return app
}

// Configure reads the environment and registers the routes. Start calls it;
// tests call it directly and serve Handler.
func (a *App) Configure() error {
	j, err := config.NewJWT()
	if err != nil {
		return err
	}

	cookies, err := config.NewCookies(j)
	if err != nil {
		return err
	}
	a.cookies = cookies

	ws, err := config.NewWebSocket()
	if err != nil {
		return err
	}
	a.ws = ws

	defaults, err := config.GameParams()
	if err != nil {
		return err
	}
	a.defaults = defaults

	palette, err := config.Palette()
	if err != nil {
		return err
	}
	a.palette = palette

	ttl, err := config.SessionTTL()
	if err != nil {
		return err
	}
	a.janitor, err = config.JanitorInterval()
	if err != nil {
		return err
	}

	if path := config.LogFile(); path != "" {
		if err := session.LogToFile(path); err != nil {
			return fmt.Errorf("unable to set up game log: %w", err)
		}
	}

	a.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	a.sessions = session.NewRegistry(
		mines.NewRand(), ttl, session.WithObserver(metrics.New(a.registry)),
	)

	a.loadRoutes()
	return nil
}

func (a *App) Handler() http.Handler {
	return middleware.Wrap(
		a.router,
		middleware.Logging(a.logger),
		middleware.Cors(config.CorsOrigins()),
		middleware.Auth(a.logger, a.cookies),
	)
}

func (a *App) Start(ctx context.Context) error {
	if err := a.Configure(); err != nil {
		return err
	}

	addr := config.Port()
	server := &http.Server{
		Addr:    addr,
		Handler: a.Handler(),
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info("server listening", slog.String("addr", addr))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("unable to listen and serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return a.sessions.Run(ctx, a.janitor)
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*30)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
