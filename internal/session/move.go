package session

import (
	"fmt"
	"strings"
)

type Move uint8

const (
	Reveal Move = iota + 1
	Flag
	Chord
	lastMove
)

var moveNames = map[Move]string{
	Reveal: "reveal",
	Flag:   "flag",
	Chord:  "chord",
}

func (m Move) String() string {
	if name, ok := moveNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Move(%d)", m)
}

var ErrBadMove error

func init() {
	var allowedMoves []string
	for i := Reveal; i < lastMove; i++ {
		allowedMoves = append(allowedMoves, "'"+i.String()+"'")
	}
	ErrBadMove = fmt.Errorf("move must be one of %s", strings.Join(allowedMoves, ", "))
}

// ParseMove accepts the move name or its one-letter shorthand. "open" is an
// alias of reveal.
func ParseMove(s string) (Move, error) {
	switch strings.ToLower(s) {
	case "reveal", "open", "r", "o":
		return Reveal, nil
	case "flag", "f":
		return Flag, nil
	case "chord", "c":
		return Chord, nil
	}
	return 0, ErrBadMove
}
