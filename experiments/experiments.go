package experiments

import (
	"errors"
	"fmt"

	"crabsim/engine"
	"crabsim/experiments/metrics"
	"crabsim/game"

	"github.com/rs/zerolog/log"
)

const (
	NumGames = 30 // Per rules config
	NumCards = 10 // Per player
)

var rulesConfigs = []metrics.RulesConfig{
	{ID: 1, Name: "standard"},
	{ID: 2, Name: "recursive"},
	{ID: 3, Name: "recursive", ShortCircuit: true},
}

type RulesExperiment struct {
	Root      string
	Games     int
	Cards     int
	Seed      uint64
	MaxRounds int
}

// Run plays the same dealt decks under every rules config and writes rules
// configs, game records and round records below Root. Deals that exceed the
// round limit are logged and left out of the records.
func (x RulesExperiment) Run() (string, error) {
	if x.Games <= 0 {
		x.Games = NumGames
	}
	if x.Cards <= 0 {
		x.Cards = NumCards
	}

	count := 0
	gameRecords := []metrics.GameRecord{}
	roundRecords := []metrics.RoundRecord{}

	log.Info().Msgf("starting rules experiment with %d games of %d cards...", x.Games, x.Cards)

	for ci, config := range rulesConfigs {
		var e engine.Runner = engine.LocalEngine(createRules(config), engine.WithMetrics(), engine.WithMaxRounds(x.MaxRounds))

		log.Info().Msgf("starting config %d of %d: %+v...", ci+1, len(rulesConfigs), config)

		for i := 0; i < x.Games; i++ {
			// Every config sees the same deals
			a, b := game.Deal(x.Cards, x.Seed+uint64(i))
			_, gameMetric, roundMetrics, err := e.Run(a, b)
			if errors.Is(err, game.ErrTooManyRounds) {
				log.Warn().Msgf("config %d game %d skipped: %v", config.ID, i+1, err)
				continue
			}
			if err != nil {
				return "", fmt.Errorf("config %d game %d: %w", config.ID, i+1, err)
			}

			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				RulesID:    config.ID,
				GameMetric: gameMetric,
			})
			for _, rm := range roundMetrics {
				roundRecords = append(roundRecords, metrics.RoundRecord{
					Game:        count,
					RoundMetric: rm,
				})
			}
		}
		log.Info().Msgf("completed config %d of %d", ci+1, len(rulesConfigs))
	}

	log.Info().Msg("completed rules experiment")

	writer, err := metrics.NewWriter(x.Root, "rules")
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteRulesConfigs(rulesConfigs); err != nil {
		return "", err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", err
	}
	if err := writer.WriteRoundRecords(roundRecords); err != nil {
		return "", err
	}
	log.Info().Msgf("stored %d game records and %d round records in %s", len(gameRecords), len(roundRecords), writer.Dir())

	return writer.Dir(), nil
}

func createRules(config metrics.RulesConfig) game.Rules {
	if config.Name == "standard" {
		return game.NewStandardRules()
	}
	return game.NewRecursiveRules(game.WithShortCircuit(config.ShortCircuit))
}
