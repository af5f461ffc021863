package game

// StandardRules is plain Combat: the higher card takes the round.
type StandardRules struct{}

func NewStandardRules() *StandardRules {
	return &StandardRules{}
}

func (sr *StandardRules) Name() string {
	return "standard"
}

func (sr *StandardRules) DetectsCycles() bool {
	return false
}

func (sr *StandardRules) RoundWinner(state *GameState, drawn [2]int, sub SubGame) (Player, bool, error) {
	winner, err := higherCard(drawn)
	return winner, false, err
}
