package metrics

import (
	"sync/atomic"
	"time"
)

// Snapshot is the outcome of a single search or inference run.
type Snapshot struct {
	Goroutines        int
	Duration          time.Duration
	Episodes          int
	FullPlayouts      int
	Nodes             int
	Prunes            int
	ScenariosAccepted int
	ScenariosRejected int
	Evaluations       int
}

// Collector counts work done by the searchers and the inference engine.
// Implementations must be safe for concurrent use.
type Collector interface {
	Start(goroutines int)
	AddEpisode()
	AddFullPlayout()
	AddNode()
	AddPrune()
	AddScenario(accepted bool)
	AddEvaluation()
	Complete() Snapshot
}

type collector struct {
	goroutines   int
	startTime    time.Time
	episodes     atomic.Int64
	fullPlayouts atomic.Int64
	nodes        atomic.Int64
	prunes       atomic.Int64
	accepted     atomic.Int64
	rejected     atomic.Int64
	evaluations  atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters and the clock.
func (m *collector) Start(goroutines int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.episodes.Store(0)
	m.fullPlayouts.Store(0)
	m.nodes.Store(0)
	m.prunes.Store(0)
	m.accepted.Store(0)
	m.rejected.Store(0)
	m.evaluations.Store(0)
}

func (m *collector) AddEpisode() {
	m.episodes.Add(1)
}

func (m *collector) AddFullPlayout() {
	m.fullPlayouts.Add(1)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddPrune() {
	m.prunes.Add(1)
}

func (m *collector) AddScenario(accepted bool) {
	if accepted {
		m.accepted.Add(1)
	} else {
		m.rejected.Add(1)
	}
}

func (m *collector) AddEvaluation() {
	m.evaluations.Add(1)
}

func (m *collector) Complete() Snapshot {
	return Snapshot{
		Goroutines:        m.goroutines,
		Duration:          time.Since(m.startTime),
		Episodes:          int(m.episodes.Load()),
		FullPlayouts:      int(m.fullPlayouts.Load()),
		Nodes:             int(m.nodes.Load()),
		Prunes:            int(m.prunes.Load()),
		ScenariosAccepted: int(m.accepted.Load()),
		ScenariosRejected: int(m.rejected.Load()),
		Evaluations:       int(m.evaluations.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines int)      {}
func (m *dummyCollector) AddEpisode()               {}
func (m *dummyCollector) AddFullPlayout()           {}
func (m *dummyCollector) AddNode()                  {}
func (m *dummyCollector) AddPrune()                 {}
func (m *dummyCollector) AddScenario(accepted bool) {}
func (m *dummyCollector) AddEvaluation()            {}
func (m *dummyCollector) Complete() Snapshot        { return Snapshot{} }
