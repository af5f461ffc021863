package game

// RecursiveRules is Recursive Combat. When both players hold at least as many
// cards as the rank they drew, the round goes to the winner of a sub-game
// played on copies of that many top cards; otherwise the higher card wins.
// A state seen before in the same game ends it in player A's favour.
type RecursiveRules struct {
	// ShortCircuit awards a sub-game to player A without playing it when A
	// holds its highest card. The highest rank is at least the sub-game's
	// card count, so that card never recurses and A never loses it.
	ShortCircuit bool
}

type RecursiveOption func(*RecursiveRules)

func WithShortCircuit(enabled bool) RecursiveOption {
	return func(rr *RecursiveRules) {
		rr.ShortCircuit = enabled
	}
}

func NewRecursiveRules(options ...RecursiveOption) *RecursiveRules {
	rr := &RecursiveRules{}
	for _, option := range options {
		option(rr)
	}
	return rr
}

func (rr *RecursiveRules) Name() string {
	if rr.ShortCircuit {
		return "recursive+short-circuit"
	}
	return "recursive"
}

func (rr *RecursiveRules) DetectsCycles() bool {
	return true
}

func (rr *RecursiveRules) RoundWinner(state *GameState, drawn [2]int, sub SubGame) (Player, bool, error) {
	a, b := state.Decks[0], state.Decks[1]
	if len(a) < drawn[0] || len(b) < drawn[1] {
		winner, err := higherCard(drawn)
		return winner, false, err
	}

	subA, subB := a.Take(drawn[0]), b.Take(drawn[1])
	if rr.ShortCircuit && subA.Max() > subB.Max() {
		return PlayerA, true, nil
	}
	winner, err := sub(subA, subB)
	return winner, true, err
}
