package handlers

import (
	"fmt"

	"github.com/gorilla/schema"

	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/session"
)

var decoder = newDecoder()

func newDecoder() *schema.Decoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	return dec
}

type NewGameDTO struct {
	Preset    string `schema:"preset"`
	Width     int    `schema:"width"`
	Height    int    `schema:"height"`
	MineCount int    `schema:"mine_count"`
}

// ParseNewGameDTO resolves the board to create: a preset name, explicit
// dimensions, or fallback when the query names neither.
func ParseNewGameDTO(src map[string][]string, fallback mines.GameParams) (mines.GameParams, error) {
	var dto NewGameDTO
	if err := decoder.Decode(&dto, src); err != nil {
		return mines.GameParams{}, fmt.Errorf("%w: %w", mines.ErrInvalidConfiguration, err)
	}
	if dto.Preset != "" {
		p, ok := mines.Preset(dto.Preset)
		if !ok {
			return p, fmt.Errorf("%w: unknown preset %q", mines.ErrInvalidConfiguration, dto.Preset)
		}
		return p, nil
	}
	if dto.Width == 0 && dto.Height == 0 && dto.MineCount == 0 {
		return fallback, nil
	}
	p := mines.GameParams{Width: dto.Width, Height: dto.Height, MineCount: dto.MineCount}
	return p, p.Validate()
}

type MoveDTO struct {
	Move string `schema:"move,required"`
	X    int    `schema:"x,required"`
	Y    int    `schema:"y,required"`
}

func ParseMoveDTO(src map[string][]string) (session.Move, mines.Point, error) {
	var dto MoveDTO
	if err := decoder.Decode(&dto, src); err != nil {
		return 0, mines.Point{}, fmt.Errorf("%w: %w", session.ErrBadMove, err)
	}
	move, err := session.ParseMove(dto.Move)
	return move, mines.Point{X: dto.X, Y: dto.Y}, err
}

type ClickDTO struct {
	PX             int    `schema:"px,required"`
	PY             int    `schema:"py,required"`
	ViewportWidth  int    `schema:"viewport_w,required"`
	ViewportHeight int    `schema:"viewport_h,required"`
	Button         string `schema:"button"`
}

func ParseClickDTO(src map[string][]string) (ClickDTO, session.Move, error) {
	var dto ClickDTO
	if err := decoder.Decode(&dto, src); err != nil {
		return dto, 0, fmt.Errorf("%w: %w", session.ErrBadMove, err)
	}
	switch dto.Button {
	case "", "left":
		return dto, session.Reveal, nil
	case "right":
		return dto, session.Flag, nil
	case "middle":
		return dto, session.Chord, nil
	}
	return dto, 0, fmt.Errorf("%w: unknown button %q", session.ErrBadMove, dto.Button)
}

type GameSessionDTO struct {
	GameSessionId  string             `json:"game_session_id"`
	Grid           []mines.CellStatus `json:"grid"`
	Width          int                `json:"width"`
	Height         int                `json:"height"`
	MineCount      int                `json:"mine_count"`
	MinesRemaining int                `json:"mines_remaining"`
	GameOver       bool               `json:"game_over"`
	Solved         bool               `json:"solved"`
	StartedAt      int64              `json:"started_at"`
	Token          string             `json:"token,omitempty"`
}

func NewGameSessionDTO(s *session.Session, v mines.View) *GameSessionDTO {
	return &GameSessionDTO{
		GameSessionId:  s.ID,
		Grid:           v.Grid,
		Width:          v.Width,
		Height:         v.Height,
		MineCount:      s.Params().MineCount,
		MinesRemaining: v.MinesRemaining,
		GameOver:       v.GameOver,
		Solved:         v.Solved,
		StartedAt:      s.CreatedAt.UnixMilli(),
	}
}
