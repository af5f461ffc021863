package engine

import (
	"crabsim/experiments/metrics"
	"crabsim/game"
	"crabsim/meta"
)

// MaxRounds bounds games whose rules have no cycle detection.
const MaxRounds = meta.MAX_ROUNDS

type Runner interface {
	// Run plays a game to completion and returns the result with its metrics
	Run(a, b game.Deck) (game.Result, metrics.GameMetric, []metrics.RoundMetric, error)
}
