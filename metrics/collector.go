package metrics

import (
	"sync/atomic"
	"time"

	"uckers/game"
)

type GameMetric struct {
	Game           string // session ID
	StartingPlayer string
	Winner         string // empty when the turn cap was hit
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	Turns          int // rolls taken, passes included
	Moves          int
	Passes         int
	Captures       int
	Finishes       int
	ExtraTurns     int
}

type Collector interface {
	Start(id string, starting game.PlayerID)
	AddTurn()
	AddMove(move *game.Move)
	AddPass()
	AddExtraTurn()
	Complete(winner game.PlayerID, ok bool) GameMetric
}

type collector struct {
	id         string
	starting   game.PlayerID
	startTime  time.Time
	turns      atomic.Int32
	moves      atomic.Int32
	passes     atomic.Int32
	captures   atomic.Int32
	finishes   atomic.Int32
	extraTurns atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(id string, starting game.PlayerID) {
	m.startTime = time.Now()
	m.id = id
	m.starting = starting
}

func (m *collector) AddTurn() {
	m.turns.Add(1)
}

func (m *collector) AddMove(move *game.Move) {
	m.moves.Add(1)
	m.captures.Add(int32(len(move.Captures)))
	if move.Final().Status == game.Finished {
		m.finishes.Add(1)
	}
}

func (m *collector) AddPass() {
	m.passes.Add(1)
}

func (m *collector) AddExtraTurn() {
	m.extraTurns.Add(1)
}

func (m *collector) Complete(winner game.PlayerID, ok bool) GameMetric {
	end := time.Now()
	metric := GameMetric{
		Game:           m.id,
		StartingPlayer: m.starting.String(),
		StartTime:      m.startTime,
		EndTime:        end,
		Duration:       end.Sub(m.startTime),
		Turns:          int(m.turns.Load()),
		Moves:          int(m.moves.Load()),
		Passes:         int(m.passes.Load()),
		Captures:       int(m.captures.Load()),
		Finishes:       int(m.finishes.Load()),
		ExtraTurns:     int(m.extraTurns.Load()),
	}
	if ok {
		metric.Winner = winner.String()
	}
	return metric
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(id string, starting game.PlayerID)           {}
func (m *dummyCollector) AddTurn()                                          {}
func (m *dummyCollector) AddMove(move *game.Move)                           {}
func (m *dummyCollector) AddPass()                                          {}
func (m *dummyCollector) AddExtraTurn()                                     {}
func (m *dummyCollector) Complete(winner game.PlayerID, ok bool) GameMetric { return GameMetric{} }
