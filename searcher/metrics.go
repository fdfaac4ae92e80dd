package searcher

import (
	"sync/atomic"
	"time"
)

// SearchMetric summarizes one search invocation.
type SearchMetric struct {
	Depth    int
	Nodes    int64 // interior nodes expanded
	Leaves   int64 // static evaluations at the frontier
	Cutoffs  int64 // subtrees pruned by an alpha-beta cutoff
	Duration time.Duration
}

type MetricsCollector interface {
	Start(depth int)
	AddNode()
	AddLeaf()
	AddCutoff()
	Complete() SearchMetric
}

type metricsCollector struct {
	depth     int
	startTime time.Time
	nodes     atomic.Int64
	leaves    atomic.Int64
	cutoffs   atomic.Int64
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start(depth int) {
	m.depth = depth
	m.startTime = time.Now()
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.cutoffs.Store(0)
}

func (m *metricsCollector) AddNode() {
	m.nodes.Add(1)
}

func (m *metricsCollector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *metricsCollector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *metricsCollector) Complete() SearchMetric {
	return SearchMetric{
		Depth:    m.depth,
		Nodes:    m.nodes.Load(),
		Leaves:   m.leaves.Load(),
		Cutoffs:  m.cutoffs.Load(),
		Duration: time.Since(m.startTime),
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start(depth int)         {}
func (m *noMetricsCollector) AddNode()                {}
func (m *noMetricsCollector) AddLeaf()                {}
func (m *noMetricsCollector) AddCutoff()              {}
func (m *noMetricsCollector) Complete() SearchMetric  { return SearchMetric{} }
