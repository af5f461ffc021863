package game

import "crabsim/utils"

// Deck is an ordered pile of card ranks. Index 0 is the top card.
type Deck []int

func (d Deck) Copy() Deck {
	deckCopy := make(Deck, len(d))
	copy(deckCopy, d)
	return deckCopy
}

// Take returns a copy of the top n cards.
func (d Deck) Take(n int) Deck {
	return d[:n].Copy()
}

// Max returns the highest rank in the deck, or 0 for an empty deck.
func (d Deck) Max() int {
	return utils.Max(d)
}

func (d Deck) Len() int {
	return len(d)
}

// draw removes and returns the top card.
func (d *Deck) draw() int {
	card := (*d)[0]
	*d = (*d)[1:]
	return card
}

// collect puts the round's cards at the bottom, winner's card first.
func (d *Deck) collect(winnerCard, loserCard int) {
	*d = append(*d, winnerCard, loserCard)
}
