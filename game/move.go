package game

// Round records the cards drawn in one round and who took them.
type Round struct {
	Number  int    // 1-based round number within its game
	Drawn   [2]int // Cards drawn by player A and player B
	Winner  Player
	SubGame bool // Winner was decided by a recursive sub-game
}

// Cards returns the drawn cards in the order they go to the bottom of the
// winner's deck.
func (r Round) Cards() (winnerCard, loserCard int) {
	return r.Drawn[r.Winner.index()], r.Drawn[r.Winner.Opponent().index()]
}
