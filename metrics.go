package qsim

import (
	"sort"
	"sync"
	"time"
)

type Metrics struct {
	mu           sync.RWMutex
	WorkerCount  int
	JobQueueSize int

	RunsCompleted   int64
	RunsFailed      int64
	StepsIntegrated int64
	TotalRunTime    time.Duration

	AverageRunLatency time.Duration
	P95RunLatency     time.Duration
	P99RunLatency     time.Duration

	// Sliding window for percentile calculation
	latencyWindow []time.Duration
	windowSize    int
}

func NewMetrics() *Metrics {
	return &Metrics{
		latencyWindow: make([]time.Duration, 0, 1000), // Store last 1000 measurements
		windowSize:    1000,
	}
}

// recordRun tracks one finished run. The latency clock starts at
// schedule time, so queue wait is part of the measured duration.
func (m *Metrics) recordRun(startTime time.Time, steps int, failed bool) {
	duration := time.Since(startTime)

	m.mu.Lock()
	defer m.mu.Unlock()

	if failed {
		m.RunsFailed++
	} else {
		m.RunsCompleted++
		m.StepsIntegrated += int64(steps)
	}
	m.TotalRunTime += duration
	m.updateLatencyPercentiles(duration)
}

func (m *Metrics) updateLatencyPercentiles(duration time.Duration) {
	runs := m.RunsCompleted + m.RunsFailed
	m.AverageRunLatency = (m.AverageRunLatency*time.Duration(runs-1) + duration) / time.Duration(runs)

	// Add new duration to sliding window
	m.latencyWindow = append(m.latencyWindow, duration)
	if len(m.latencyWindow) > m.windowSize {
		m.latencyWindow = m.latencyWindow[1:]
	}

	// Sort durations for percentile calculation
	sorted := make([]time.Duration, len(m.latencyWindow))
	copy(sorted, m.latencyWindow)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})

	if len(sorted) > 0 {
		p95Index := int(float64(len(sorted)) * 0.95)
		p99Index := int(float64(len(sorted)) * 0.99)

		if p95Index >= len(sorted) {
			p95Index = len(sorted) - 1
		}
		if p99Index >= len(sorted) {
			p99Index = len(sorted) - 1
		}

		m.P95RunLatency = sorted[p95Index]
		m.P99RunLatency = sorted[p99Index]
	}
}

// ExportMetrics returns a point-in-time snapshot of the counters.
func (m *Metrics) ExportMetrics() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"worker_count":     m.WorkerCount,
		"queue_size":       m.JobQueueSize,
		"runs_completed":   m.RunsCompleted,
		"runs_failed":      m.RunsFailed,
		"steps_integrated": m.StepsIntegrated,
		"avg_latency":      m.AverageRunLatency.Milliseconds(),
		"p95_latency":      m.P95RunLatency.Milliseconds(),
		"p99_latency":      m.P99RunLatency.Milliseconds(),
	}
}
