package automaton

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// Step advances the set by one tick. Counts come only from the current set,
// so no cell sees another cell's next state.
func Step(set ActiveSet, rule Rule, topo Topology) ActiveSet {
	counts := make(map[Coord]int, len(set)*4)
	for c := range set {
		for _, n := range topo.Neighbours(c) {
			counts[n]++
		}
	}

	next := make(ActiveSet, len(set))
	for c, n := range counts {
		if rule.Next(set.Has(c), n) {
			next.Add(c)
		}
	}
	// Isolated live cells have no tally entry.
	if rule.Next(true, 0) {
		for c := range set {
			if _, ok := counts[c]; !ok {
				next.Add(c)
			}
		}
	}
	return next
}

// Evolve runs ticks steps and returns the final set. The input is not modified.
// The rule must pass Validate.
func Evolve(set ActiveSet, ticks int, rule Rule, topo Topology) ActiveSet {
	return Run(set, ticks, rule, topo, nil)
}

// Run is Evolve with an observer called after every tick. It panics on a
// rule that fails Validate.
func Run(set ActiveSet, ticks int, rule Rule, topo Topology, observe func(tick int, set ActiveSet)) ActiveSet {
	if err := rule.Validate(); err != nil {
		panic(fmt.Sprintf("invalid rule %s: %v", rule, err))
	}
	current := set.Clone()
	for tick := 1; tick <= ticks; tick++ {
		current = Step(current, rule, topo)
		log.Debug().Int("tick", tick).Int("active", current.Len()).Msg("automaton tick")
		if observe != nil {
			observe(tick, current)
		}
	}
	return current
}
