package solver

import (
	"time"
)

type SearchMetric struct {
	Pieces     int
	Candidates uint64 // splits evaluated before stopping
	Found      bool
	StartTime  time.Time
	Duration   time.Duration
}

type MetricsCollector interface {
	Start(pieces int)
	AddCandidate()
	Found()
	Complete() SearchMetric
}

type metricsCollector struct {
	pieces     int
	startTime  time.Time
	candidates uint64
	found      bool
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start(pieces int) {
	m.startTime = time.Now()
	m.pieces = pieces
}

func (m *metricsCollector) AddCandidate() {
	m.candidates++
}

func (m *metricsCollector) Found() {
	m.found = true
}

func (m *metricsCollector) Complete() SearchMetric {
	return SearchMetric{
		Pieces:     m.pieces,
		Candidates: m.candidates,
		Found:      m.found,
		StartTime:  m.startTime,
		Duration:   time.Since(m.startTime),
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start(pieces int)       {}
func (m *noMetricsCollector) AddCandidate()          {}
func (m *noMetricsCollector) Found()                 {}
func (m *noMetricsCollector) Complete() SearchMetric { return SearchMetric{} }
