package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Algorithm   string
	Depth       int
	Duration    time.Duration
	Nodes       int // max and min nodes
	ChanceNodes int
	Evaluations int
	Terminals   int
	Fallback    bool // search gave no recommendation and another policy moved
}

type MoveMetric struct {
	Step     int
	Player   int // seat
	Pass     bool
	Position uint64 // hash of the table after the move
	SearchMetric
}

type GameMetric struct {
	StartingPlayer int
	Winner         int // seat, -1 if the turn limit was hit
	Winners        []int
	PipSums        [4]int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Passes         int
}

type Collector interface {
	Start(algorithm string, depth int)
	AddNode()
	AddChanceNode()
	AddEvaluation()
	AddTerminal()
	Complete() SearchMetric
}

type collector struct {
	algorithm   string
	depth       int
	startTime   time.Time
	nodes       atomic.Int32
	chanceNodes atomic.Int32
	evaluations atomic.Int32
	terminals   atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new search.
func (m *collector) Start(algorithm string, depth int) {
	m.startTime = time.Now()
	m.algorithm = algorithm
	m.depth = depth
	m.nodes.Store(0)
	m.chanceNodes.Store(0)
	m.evaluations.Store(0)
	m.terminals.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddChanceNode() {
	m.chanceNodes.Add(1)
}

func (m *collector) AddEvaluation() {
	m.evaluations.Add(1)
}

func (m *collector) AddTerminal() {
	m.terminals.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Algorithm:   m.algorithm,
		Depth:       m.depth,
		Duration:    time.Since(m.startTime),
		Nodes:       int(m.nodes.Load()),
		ChanceNodes: int(m.chanceNodes.Load()),
		Evaluations: int(m.evaluations.Load()),
		Terminals:   int(m.terminals.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(algorithm string, depth int) {}
func (m *dummyCollector) AddNode()                          {}
func (m *dummyCollector) AddChanceNode()                    {}
func (m *dummyCollector) AddEvaluation()                    {}
func (m *dummyCollector) AddTerminal()                      {}
func (m *dummyCollector) Complete() SearchMetric            { return SearchMetric{} }
