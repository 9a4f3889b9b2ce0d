package searcher

import (
	"sync/atomic"
	"time"
)

// SearchMetrics summarises one move decision.
type SearchMetrics struct {
	StartTime    time.Time
	Duration     time.Duration
	Nodes        int64 // Tree nodes created
	Evaluations  int64 // Leaf or cutoff evaluations
	Episodes     int64 // MCTS simulations
	FullPlayouts int64 // Simulations that reached the end of the game
}

type MetricsCollector interface {
	Start()
	AddNodes(n int)
	AddEvaluation()
	AddEpisode()
	AddFullPlayout()
	Complete() SearchMetrics
}

type metricsCollector struct {
	startTime    time.Time
	nodes        atomic.Int64
	evaluations  atomic.Int64
	episodes     atomic.Int64
	fullPlayouts atomic.Int64
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

// Start resets the counters and the clock.
func (m *metricsCollector) Start() {
	m.startTime = time.Now()
	m.nodes.Store(0)
	m.evaluations.Store(0)
	m.episodes.Store(0)
	m.fullPlayouts.Store(0)
}

func (m *metricsCollector) AddNodes(n int) {
	m.nodes.Add(int64(n))
}

func (m *metricsCollector) AddEvaluation() {
	m.evaluations.Add(1)
}

func (m *metricsCollector) AddEpisode() {
	m.episodes.Add(1)
}

func (m *metricsCollector) AddFullPlayout() {
	m.fullPlayouts.Add(1)
}

func (m *metricsCollector) Complete() SearchMetrics {
	return SearchMetrics{
		StartTime:    m.startTime,
		Duration:     time.Since(m.startTime),
		Nodes:        m.nodes.Load(),
		Evaluations:  m.evaluations.Load(),
		Episodes:     m.episodes.Load(),
		FullPlayouts: m.fullPlayouts.Load(),
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start()                  {}
func (m *noMetricsCollector) AddNodes(n int)          {}
func (m *noMetricsCollector) AddEvaluation()          {}
func (m *noMetricsCollector) AddEpisode()             {}
func (m *noMetricsCollector) AddFullPlayout()         {}
func (m *noMetricsCollector) Complete() SearchMetrics { return SearchMetrics{} }
