package metrics

import (
	"sync/atomic"
	"time"
)

// RulesConfig identifies a rule set taking part in an experiment.
type RulesConfig struct {
	ID           int
	Name         string
	ShortCircuit bool
}

type PlayMetric struct {
	Duration    time.Duration
	TotalRounds int // Rounds played across the game and all of its sub-games
	SubGames    int
	Cycles      int // Games (top-level or sub-games) ended by a repeated state
	MaxDepth    int
}

type RoundMetric struct {
	Step    int
	Winner  string
	CardA   int
	CardB   int
	SubGame bool   // Round decided by a sub-game
	Hash    uint64 // Hash of the state after the round
	CardsA  int    // Cards held by player A after the round
	CardsB  int    // Cards held by player B after the round
}

type GameMetric struct {
	Rules     string
	Winner    string
	Score     int
	Rounds    int // Top-level rounds
	ByCycle   bool
	StartTime time.Time
	EndTime   time.Time
	PlayMetric
}

type TickMetric struct {
	Dimension int
	Tick      int
	Active    int
}

type Collector interface {
	Start(rules string)
	AddRound(depth int)
	AddSubGame(depth int)
	AddCycle(depth int)
	Complete() PlayMetric
}

type collector struct {
	rules     string
	startTime time.Time
	rounds    atomic.Int32
	subGames  atomic.Int32
	cycles    atomic.Int32
	maxDepth  atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(rules string) {
	m.rules = rules
	m.startTime = time.Now()
	m.rounds.Store(0)
	m.subGames.Store(0)
	m.cycles.Store(0)
	m.maxDepth.Store(0)
}

func (m *collector) AddRound(depth int) {
	m.rounds.Add(1)
	m.observeDepth(depth)
}

func (m *collector) AddSubGame(depth int) {
	m.subGames.Add(1)
	m.observeDepth(depth)
}

func (m *collector) AddCycle(depth int) {
	m.cycles.Add(1)
	m.observeDepth(depth)
}

func (m *collector) observeDepth(depth int) {
	for {
		current := m.maxDepth.Load()
		if int32(depth) <= current || m.maxDepth.CompareAndSwap(current, int32(depth)) {
			return
		}
	}
}

func (m *collector) Complete() PlayMetric {
	return PlayMetric{
		Duration:    time.Since(m.startTime),
		TotalRounds: int(m.rounds.Load()),
		SubGames:    int(m.subGames.Load()),
		Cycles:      int(m.cycles.Load()),
		MaxDepth:    int(m.maxDepth.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(rules string)   {}
func (m *dummyCollector) AddRound(depth int)   {}
func (m *dummyCollector) AddSubGame(depth int) {}
func (m *dummyCollector) AddCycle(depth int)   {}
func (m *dummyCollector) Complete() PlayMetric { return PlayMetric{} }
