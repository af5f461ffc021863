package automaton

import (
	"fmt"

	"crabsim/utils"
)

// Rule decides a cell's next state from its live neighbour count.
type Rule struct {
	Survive []int // Counts that keep a live cell alive
	Birth   []int // Counts that bring a dead cell to life
}

// Conway is the B3/S23 rule used by the cube automaton.
func Conway() Rule {
	return Rule{Survive: []int{2, 3}, Birth: []int{3}}
}

// HexTiles is the B2/S12 rule used by the hex tile floor.
func HexTiles() Rule {
	return Rule{Survive: []int{1, 2}, Birth: []int{2}}
}

func (r Rule) Next(active bool, neighbours int) bool {
	if active {
		return utils.Contains(r.Survive, neighbours)
	}
	return utils.Contains(r.Birth, neighbours)
}

// Validate rejects rules that would bring the unbounded empty space to life.
func (r Rule) Validate() error {
	if utils.Contains(r.Birth, 0) {
		return fmt.Errorf("birth on 0 neighbours activates infinitely many cells")
	}
	for _, counts := range [][]int{r.Survive, r.Birth} {
		for _, n := range counts {
			if n < 0 {
				return fmt.Errorf("negative neighbour count %d", n)
			}
		}
	}
	return nil
}

func (r Rule) String() string {
	return fmt.Sprintf("B%v/S%v", r.Birth, r.Survive)
}
