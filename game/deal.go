package game

import "golang.org/x/exp/rand"

// Deal shuffles ranks 1..2n with the given seed and splits them into two
// decks of n cards.
func Deal(n int, seed uint64) (Deck, Deck) {
	rng := rand.New(rand.NewSource(seed))
	cards := rng.Perm(2 * n)
	a, b := make(Deck, n), make(Deck, n)
	for i := 0; i < n; i++ {
		a[i] = cards[i] + 1
		b[i] = cards[n+i] + 1
	}
	return a, b
}
