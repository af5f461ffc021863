package engine

import (
	"fmt"
	"time"

	"crabsim/experiments/metrics"
	"crabsim/game"

	"github.com/rs/zerolog/log"
)

type Engine struct {
	Rules     game.Rules
	collector metrics.Collector
	maxRounds int
}

type Option func(e *Engine)

func WithMetrics() Option {
	return func(e *Engine) {
		e.collector = metrics.NewCollector()
	}
}

func WithMaxRounds(rounds int) Option {
	return func(e *Engine) {
		if rounds > 0 {
			e.maxRounds = rounds
		}
	}
}

var _ Runner = (*Engine)(nil)

func LocalEngine(rules game.Rules, options ...Option) *Engine {
	if rules == nil {
		panic("rules must not be nil")
	}
	e := &Engine{
		Rules:     rules,
		collector: metrics.NewDummyCollector(),
		maxRounds: MaxRounds,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run plays the decks until a winner is found.
func (e *Engine) Run(a, b game.Deck) (game.Result, metrics.GameMetric, []metrics.RoundMetric, error) {
	name := e.Rules.Name()
	log.Info().Msgf("starting %s game with %d vs %d cards", name, len(a), len(b))

	var rounds []metrics.RoundMetric
	observe := func(gs game.GameState, r game.Round) {
		rounds = append(rounds, metrics.RoundMetric{
			Step:    r.Number,
			Winner:  r.Winner.String(),
			CardA:   r.Drawn[0],
			CardB:   r.Drawn[1],
			SubGame: r.SubGame,
			Hash:    uint64(gs.Hash()),
			CardsA:  gs.Decks[0].Len(),
			CardsB:  gs.Decks[1].Len(),
		})
		log.Debug().Int("round", r.Number).Ints("drawn", r.Drawn[:]).Stringer("winner", r.Winner).Bool("sub_game", r.SubGame).Msg("round complete")
	}

	startTime := time.Now()
	e.collector.Start(name)
	result, err := game.Play(e.Rules, a, b,
		game.WithCollector(e.collector),
		game.WithObserver(observe),
		game.WithMaxRounds(e.maxRounds),
	)
	if err != nil {
		log.Warn().Err(err).Msgf("%s game aborted", name)
		return game.Result{}, metrics.GameMetric{}, nil, fmt.Errorf("%s game: %w", name, err)
	}
	endTime := time.Now()

	gameMetric := metrics.GameMetric{
		Rules:      name,
		Winner:     result.Winner.String(),
		Score:      result.Score(),
		Rounds:     result.Rounds,
		ByCycle:    result.ByCycle,
		StartTime:  startTime,
		EndTime:    endTime,
		PlayMetric: e.collector.Complete(),
	}
	gameMetric.Duration = endTime.Sub(startTime)

	if result.ByCycle {
		log.Info().Msgf("%s game ended by a repeated state after %d rounds", name, result.Rounds)
	}
	log.Info().Msgf("completed %s game with winner: %s (score %d)", name, result.Winner, gameMetric.Score)

	return result, gameMetric, rounds, nil
}
