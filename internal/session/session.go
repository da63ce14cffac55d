package session

import (
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper/internal/mines"
)

// Session is one player's game. All access to the board goes through the
// session lock.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu       sync.Mutex
	board    *mines.Board
	lastSeen time.Time
	registry *Registry
}

func (s *Session) Params() mines.GameParams {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Params()
}

func (s *Session) View() mines.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = s.registry.now()
	return s.board.View()
}

// Apply performs move at grid coordinate x:y and returns the resulting view.
// Out-of-bounds moves return the unchanged view along with
// [mines.ErrOutOfBounds].
func (s *Session) Apply(move Move, x, y int) (mines.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apply(move, x, y)
}

// ApplyAt performs move at the pixel position px:py of a viewport that shows
// the whole grid.
func (s *Session) ApplyAt(move Move, px, py, viewportWidth, viewportHeight int) (mines.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cw, ch := mines.CellSize(viewportWidth, viewportHeight, s.board.Params())
	p, err := s.board.CellAtPosition(px, py, cw, ch)
	if err != nil {
		return s.board.View(), err
	}
	return s.apply(move, p.X, p.Y)
}

func (s *Session) apply(move Move, x, y int) (mines.View, error) {
	s.lastSeen = s.registry.now()
	wasOver := s.board.GameOver()

	var err error
	switch move {
	case Reveal:
		err = s.board.Reveal(x, y)
	case Flag:
		err = s.board.ToggleFlag(x, y)
	case Chord:
		err = s.board.Chord(x, y)
	default:
		err = ErrBadMove
	}
	if err != nil {
		return s.board.View(), err
	}

	s.registry.observer.MoveApplied(move.String())
	if !wasOver && s.board.GameOver() {
		solved := s.board.Solved()
		Log.WithFields(logrus.Fields{
			"id":     s.ID,
			"params": s.board.Params().Seed(),
			"solved": solved,
		}).Info("game finished")
		s.registry.observer.GameFinished(solved)
	}
	return s.board.View(), nil
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// IsUserError reports whether err comes from player input rather than from
// the server.
func IsUserError(err error) bool {
	return errors.Is(err, mines.ErrOutOfBounds) ||
		errors.Is(err, mines.ErrInvalidConfiguration) ||
		errors.Is(err, ErrBadMove)
}
