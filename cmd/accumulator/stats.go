// stats.go - in-process operation counters for the accumulator CLI
package main

import (
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/olekukonko/tablewriter"
)

// OpStats is a single operation's invocation count and latency samples,
// adapted from the teacher's Metric/MetricsCollector pair into a narrower
// counter+histogram suited to a one-shot CLI run rather than a long-lived
// service.
type OpStats struct {
	Count     int64
	Latencies []time.Duration
}

// StatsCollector tracks per-operation counts and latencies for a single CLI
// invocation.
type StatsCollector struct {
	mu  sync.Mutex
	ops map[string]*OpStats
}

// NewStatsCollector returns an empty collector.
func NewStatsCollector() *StatsCollector {
	return &StatsCollector{ops: make(map[string]*OpStats)}
}

// Record registers one invocation of op with the given latency.
func (s *StatsCollector) Record(op string, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.ops[op]
	if !ok {
		st = &OpStats{}
		s.ops[op] = st
	}
	st.Count++
	st.Latencies = append(st.Latencies, d)
}

// Timed runs fn, recording its latency under op, and returns fn's error.
func (s *StatsCollector) Timed(op string, fn func() error) error {
	start := time.Now()
	err := fn()
	s.Record(op, time.Since(start))
	return err
}

// RenderSummary prints a per-operation count/min/max/avg table, used by the
// demo subcommand after it has run more than one operation.
func (s *StatsCollector) RenderSummary() {
	s.mu.Lock()
	defer s.mu.Unlock()

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Operation", "Count", "Min", "Max", "Avg")
	for op, st := range s.ops {
		if len(st.Latencies) == 0 {
			continue
		}
		min, max := st.Latencies[0], st.Latencies[0]
		var sum time.Duration
		for _, l := range st.Latencies {
			if l < min {
				min = l
			}
			if l > max {
				max = l
			}
			sum += l
		}
		avg := sum / time.Duration(len(st.Latencies))
		table.Append([]string{op, strconv.FormatInt(st.Count, 10), min.String(), max.String(), avg.String()})
	}
	table.Render()
}
