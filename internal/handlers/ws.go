package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/vancomm/minesweeper/internal/session"
)

// wsCommand is one line of a websocket message: "g" to fetch the game, or a
// move letter followed by grid coordinates, e.g. "r 3 4".
type wsCommand struct {
	get  bool
	move session.Move
	x, y int
}

func parseXY(args []string) (x int, y int, err error) {
	if len(args) != 2 {
		err = fmt.Errorf("%w: want two coordinates", session.ErrBadMove)
		return
	}
	if x, err = strconv.Atoi(args[0]); err != nil {
		err = fmt.Errorf("%w: first argument must be an int", session.ErrBadMove)
		return
	}
	if y, err = strconv.Atoi(args[1]); err != nil {
		err = fmt.Errorf("%w: second argument must be an int", session.ErrBadMove)
		return
	}
	return
}

func parseCommand(line string) (wsCommand, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return wsCommand{}, fmt.Errorf("%w: empty command", session.ErrBadMove)
	}
	if tokens[0] == "g" && len(tokens) == 1 {
		return wsCommand{get: true}, nil
	}
	move, err := session.ParseMove(tokens[0])
	if err != nil {
		return wsCommand{}, err
	}
	x, y, err := parseXY(tokens[1:])
	if err != nil {
		return wsCommand{}, err
	}
	return wsCommand{move: move, x: x, y: y}, nil
}

func (g GameHandler) wsRunGameLoop(conn *websocket.Conn, s *session.Session) error {
	for {
		mt, buf, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		if mt != websocket.TextMessage {
			return nil
		}

		v := s.View()
		var moveErr error
	LINES:
		for _, line := range strings.Split(strings.TrimSpace(string(buf)), "\n") {
			cmd, err := parseCommand(line)
			if err != nil {
				moveErr = err
				break
			}
			if cmd.get {
				continue
			}
			v, err = s.Apply(cmd.move, cmd.x, cmd.y)
			if err != nil {
				moveErr = err
				break
			}
			if v.GameOver {
				break LINES
			}
		}

		if moveErr != nil {
			if !session.IsUserError(moveErr) {
				return moveErr
			}
			if err := conn.WriteJSON(wrapError(moveErr)); err != nil {
				return fmt.Errorf("unable to write json: %w", err)
			}
			continue
		}

		if err := conn.WriteJSON(NewGameSessionDTO(s, v)); err != nil {
			return fmt.Errorf("unable to write json: %w", err)
		}
	}
}

func (g GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	s, ok := g.session(w, r)
	if !ok {
		return
	}

	conn, err := g.ws.Upgrader.Upgrade(w, r, nil) // headers sent here
	if err != nil {
		g.logger.Error("unable to upgrade", slog.Any("error", err))
		return
	}
	defer conn.Close()

	g.logger.Debug("established WS connection", slog.String("id", s.ID))

	err = g.wsRunGameLoop(conn, s)
	if err != nil && !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
		var closeErr *websocket.CloseError
		if !errors.As(err, &closeErr) {
			g.logger.Warn("error in ws loop", slog.Any("error", err))
		}
	}
}
