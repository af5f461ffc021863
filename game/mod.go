package game

import (
	"errors"
	"fmt"
)

var (
	// ErrTie is returned when both players draw cards of equal rank.
	ErrTie = errors.New("tied round")
	// ErrInvalidDeck is returned for non-positive or duplicated ranks.
	ErrInvalidDeck = errors.New("invalid deck")
	// ErrParse is returned for malformed deck input.
	ErrParse = errors.New("malformed deck input")
	// ErrTooManyRounds is returned when a game without cycle detection exceeds its round limit.
	ErrTooManyRounds = errors.New("too many rounds")
)

type Player int

const (
	PlayerA Player = iota + 1
	PlayerB
)

// String returns the identifier used in the input headers, e.g. "Player1".
func (p Player) String() string {
	return fmt.Sprintf("Player%d", int(p))
}

func (p Player) Opponent() Player {
	if p == PlayerA {
		return PlayerB
	}
	return PlayerA
}

func (p Player) index() int {
	return int(p) - 1
}

type StateHash uint64

// StateKey is a comparable encoding of both decks. Two states have equal keys
// iff their decks hold the same cards in the same order.
type StateKey string

// Result is the outcome of a finished game.
type Result struct {
	Winner  Player
	Deck    Deck // Winner's final deck
	Rounds  int
	ByCycle bool // Player A won because a state repeated
}

func (r Result) Score() int {
	return r.Deck.Score()
}
