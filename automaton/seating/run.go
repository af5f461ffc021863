package seating

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// Tick applies one simultaneous update and reports whether any cell changed.
// The input grid is not modified.
func Tick(g Grid, policy Policy) (Grid, bool) {
	next := g.Clone()
	changed := false
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			switch g.At(r, c) {
			case Empty:
				if policy.Count(g, r, c) == 0 {
					next.cells[r][c] = Occupied
					changed = true
				}
			case Occupied:
				if policy.Count(g, r, c) >= policy.Threshold() {
					next.cells[r][c] = Empty
					changed = true
				}
			}
		}
	}
	return next, changed
}

// Run ticks until the grid stops changing and returns the stable grid with
// the number of ticks that changed it. More than maxTicks changing ticks is
// reported as ErrNoFixedPoint.
func Run(g Grid, policy Policy, maxTicks int) (Grid, int, error) {
	current := g
	for ticks := 0; ticks <= maxTicks; ticks++ {
		next, changed := Tick(current, policy)
		if !changed {
			return current, ticks, nil
		}
		if ticks == maxTicks {
			break
		}
		log.Debug().Int("tick", ticks+1).Int("occupied", next.Occupied()).Msgf("%s seating tick", policy.Name())
		current = next
	}
	return current, maxTicks, fmt.Errorf("%w: %s seating still changing after %d ticks", ErrNoFixedPoint, policy.Name(), maxTicks)
}
