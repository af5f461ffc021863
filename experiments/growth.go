package experiments

import (
	"fmt"

	"crabsim/automaton"
	"crabsim/experiments/metrics"

	"github.com/rs/zerolog/log"
)

// RunGrowthExperiment evolves the same 2-D seed under the Conway rule in each
// dimension and records the active cell count after every tick.
func RunGrowthExperiment(root string, seed automaton.ActiveSet, ticks int, dims []int) (string, error) {
	records := []metrics.TickMetric{}

	log.Info().Msgf("starting growth experiment over dimensions %v...", dims)

	for _, dim := range dims {
		start := automaton.NewActiveSet()
		for _, c := range seed.Coords() {
			start.Add(c.Extend(dim))
		}
		records = append(records, metrics.TickMetric{Dimension: dim, Tick: 0, Active: start.Len()})

		final := automaton.Run(start, ticks, automaton.Conway(), automaton.Moore(dim), func(tick int, set automaton.ActiveSet) {
			records = append(records, metrics.TickMetric{Dimension: dim, Tick: tick, Active: set.Len()})
		})
		log.Info().Msgf("dimension %d: %d active after %d ticks", dim, final.Len(), ticks)
	}

	writer, err := metrics.NewWriter(root, "growth")
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteTickRecords(records); err != nil {
		return "", err
	}
	log.Info().Msgf("stored %d tick records in %s", len(records), writer.Dir())

	return writer.Dir(), nil
}
