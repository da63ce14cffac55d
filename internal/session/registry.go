package session

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper/internal/mines"
)

var ErrNotFound = errors.New("game session not found")

// Observer receives session lifecycle events, e.g. for metrics.
type Observer interface {
	SessionStarted(params mines.GameParams)
	SessionEvicted()
	MoveApplied(move string)
	GameFinished(solved bool)
}

type nopObserver struct{}

func (nopObserver) SessionStarted(mines.GameParams) {}
func (nopObserver) SessionEvicted()                 {}
func (nopObserver) MoveApplied(string)              {}
func (nopObserver) GameFinished(bool)               {}

// Registry keeps live sessions in memory and drops the ones idle for longer
// than the TTL.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	rnd      *rand.Rand // guarded by mu
	ttl      time.Duration
	observer Observer
	now      func() time.Time
}

type Option func(*Registry)

func WithObserver(o Observer) Option {
	return func(r *Registry) {
		r.observer = o
	}
}

func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		r.now = now
	}
}

func NewRegistry(rnd *rand.Rand, ttl time.Duration, opts ...Option) *Registry {
	r := &Registry{
		sessions: make(map[string]*Session),
		rnd:      rnd,
		ttl:      ttl,
		observer: nopObserver{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Registry) Create(params mines.GameParams) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	board, err := mines.NewBoard(params, r.rnd)
	if err != nil {
		return nil, err
	}

	now := r.now()
	s := &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		board:     board,
		lastSeen:  now,
		registry:  r,
	}
	r.sessions[s.ID] = s

	Log.WithFields(logrus.Fields{
		"id":     s.ID,
		"params": params.Seed(),
	}).Info("game started")
	r.observer.SessionStarted(params)
	return s, nil
}

func (r *Registry) Get(id string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

func (r *Registry) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; ok {
		delete(r.sessions, id)
		r.observer.SessionEvicted()
	}
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Evict drops sessions idle since before now-ttl and returns how many went.
func (r *Registry) Evict(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for id, s := range r.sessions {
		if now.Sub(s.idleSince()) > r.ttl {
			delete(r.sessions, id)
			evicted++
			Log.WithField("id", id).Debug("session evicted")
			r.observer.SessionEvicted()
		}
	}
	return evicted
}

// Run evicts idle sessions every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := r.Evict(r.now()); n > 0 {
				Log.WithFields(logrus.Fields{
					"evicted": n,
					"live":    r.Len(),
				}).Info("evicted idle sessions")
			}
		}
	}
}
