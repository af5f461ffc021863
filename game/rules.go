package game

import "fmt"

// SubGame plays a fresh game on copies of the given decks and returns its winner.
type SubGame func(a, b Deck) (Player, error)

type Rules interface {
	Name() string
	// DetectsCycles reports whether a repeated state ends the game in player A's favour.
	DetectsCycles() bool
	// RoundWinner decides a round. state holds the decks after both cards were
	// drawn. recursed is true when the winner came from a sub-game.
	RoundWinner(state *GameState, drawn [2]int, sub SubGame) (winner Player, recursed bool, err error)
}

// higherCard returns the player who drew the higher rank.
func higherCard(drawn [2]int) (Player, error) {
	switch {
	case drawn[0] > drawn[1]:
		return PlayerA, nil
	case drawn[0] < drawn[1]:
		return PlayerB, nil
	default:
		return 0, fmt.Errorf("%w: both players drew %d", ErrTie, drawn[0])
	}
}
