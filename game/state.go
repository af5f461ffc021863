package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"crabsim/experiments/metrics"
	"crabsim/meta"

	"github.com/rs/zerolog/log"
)

// GameState is the pair of decks at the start of a round, plus where the
// game sits in the recursion.
type GameState struct {
	Decks [2]Deck
	Depth int // 0 for the top-level game, n for a sub-game n levels down
	Round int // Rounds completed so far
}

// NewGameState copies both decks into a fresh state.
func NewGameState(a, b Deck, depth int) *GameState {
	return &GameState{
		Decks: [2]Deck{a.Copy(), b.Copy()},
		Depth: depth,
	}
}

func (gs GameState) Copy() *GameState {
	return &GameState{
		Decks: [2]Deck{gs.Decks[0].Copy(), gs.Decks[1].Copy()},
		Depth: gs.Depth,
		Round: gs.Round,
	}
}

// Key encodes both decks as uvarints with a zero byte between them. Ranks are
// positive so their encodings never contain a zero byte.
func (gs GameState) Key() StateKey {
	buf := make([]byte, 0, len(gs.Decks[0])+len(gs.Decks[1])+1)
	for _, card := range gs.Decks[0] {
		buf = binary.AppendUvarint(buf, uint64(card))
	}
	buf = append(buf, 0)
	for _, card := range gs.Decks[1] {
		buf = binary.AppendUvarint(buf, uint64(card))
	}
	return StateKey(buf)
}

func (gs GameState) Hash() StateHash {
	hasher := fnv.New64a()
	hasher.Write([]byte(gs.Key()))
	return StateHash(hasher.Sum64())
}

// Over reports whether either player has run out of cards.
func (gs GameState) Over() bool {
	return len(gs.Decks[0]) == 0 || len(gs.Decks[1]) == 0
}

// Winner returns the player still holding cards. Only meaningful once Over.
func (gs GameState) Winner() Player {
	if len(gs.Decks[0]) == 0 {
		return PlayerB
	}
	return PlayerA
}

type Option func(p *play)

// WithCollector counts rounds, sub-games and cycles across the whole game tree.
func WithCollector(collector metrics.Collector) Option {
	return func(p *play) {
		if collector != nil {
			p.collector = collector
		}
	}
}

// WithObserver is called after every top-level round with the resulting state.
func WithObserver(observe func(GameState, Round)) Option {
	return func(p *play) {
		p.observe = observe
	}
}

// WithMaxRounds bounds games whose rules do not detect cycles.
func WithMaxRounds(rounds int) Option {
	return func(p *play) {
		if rounds > 0 {
			p.maxRounds = rounds
		}
	}
}

type play struct {
	rules     Rules
	collector metrics.Collector
	observe   func(GameState, Round)
	maxRounds int
}

// Play validates both decks and plays a game with the given rules until one
// player holds every card, or, when the rules detect cycles, until a state
// repeats. The input decks are not modified.
func Play(rules Rules, a, b Deck, options ...Option) (Result, error) {
	if err := Validate(a, b); err != nil {
		return Result{}, err
	}
	p := &play{
		rules:     rules,
		collector: metrics.NewDummyCollector(),
		maxRounds: meta.MAX_ROUNDS,
	}
	for _, option := range options {
		option(p)
	}
	return p.game(NewGameState(a, b, 0))
}

func (p *play) game(gs *GameState) (Result, error) {
	// Each game, sub-games included, tracks its own states.
	seen := make(map[StateKey]struct{})

	for !gs.Over() {
		if p.rules.DetectsCycles() {
			key := gs.Key()
			if _, ok := seen[key]; ok {
				p.collector.AddCycle(gs.Depth)
				log.Debug().Int("depth", gs.Depth).Int("round", gs.Round).Msg("state repeated, player 1 wins")
				return Result{Winner: PlayerA, Deck: gs.Decks[0], Rounds: gs.Round, ByCycle: true}, nil
			}
			seen[key] = struct{}{}
		} else if gs.Round >= p.maxRounds {
			return Result{}, fmt.Errorf("%w: no winner after %d rounds", ErrTooManyRounds, gs.Round)
		}

		if err := p.round(gs); err != nil {
			return Result{}, err
		}
	}

	winner := gs.Winner()
	return Result{Winner: winner, Deck: gs.Decks[winner.index()], Rounds: gs.Round}, nil
}

func (p *play) round(gs *GameState) error {
	drawn := [2]int{gs.Decks[0].draw(), gs.Decks[1].draw()}

	winner, recursed, err := p.rules.RoundWinner(gs, drawn, p.subGame(gs.Depth+1))
	if err != nil {
		return fmt.Errorf("round %d at depth %d: %w", gs.Round+1, gs.Depth, err)
	}

	gs.Round++
	r := Round{Number: gs.Round, Drawn: drawn, Winner: winner, SubGame: recursed}
	winnerCard, loserCard := r.Cards()
	gs.Decks[winner.index()].collect(winnerCard, loserCard)

	p.collector.AddRound(gs.Depth)
	if gs.Depth == 0 && p.observe != nil {
		p.observe(*gs.Copy(), r)
	}
	return nil
}

func (p *play) subGame(depth int) SubGame {
	return func(a, b Deck) (Player, error) {
		p.collector.AddSubGame(depth)
		result, err := p.game(NewGameState(a, b, depth))
		if err != nil {
			return 0, err
		}
		return result.Winner, nil
	}
}
