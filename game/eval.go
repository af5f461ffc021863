package game

// Score multiplies each card by its position counted from the bottom of the
// deck (bottom card x1, the one above it x2, ...) and sums the products.
func (d Deck) Score() int {
	score := 0
	for i, card := range d {
		score += card * (len(d) - i)
	}
	return score
}
