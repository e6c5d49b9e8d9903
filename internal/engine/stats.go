package engine

import (
	"sync/atomic"

	"multibase-hft/internal/model"
)

// PerformanceTracker counts optimize operations by number base.
// Counters are atomic so concurrent optimize calls may share one tracker.
// State lives for the process lifetime; only Reset clears it.
type PerformanceTracker struct {
	base2  atomic.Uint64
	base10 atomic.Uint64
	base12 atomic.Uint64
}

// NewPerformanceTracker creates a zeroed tracker.
func NewPerformanceTracker() *PerformanceTracker {
	return &PerformanceTracker{}
}

// Record increments the counter matching the given base.
func (t *PerformanceTracker) Record(base model.BaseSystem) {
	switch base {
	case model.BaseBinary:
		t.base2.Add(1)
	case model.BaseDecimal:
		t.base10.Add(1)
	case model.BaseDozenal:
		t.base12.Add(1)
	}
}

// Reset clears all counters.
func (t *PerformanceTracker) Reset() {
	t.base2.Store(0)
	t.base10.Store(0)
	t.base12.Store(0)
}

// Snapshot returns the current counts with percentage breakdowns.
// Percentages are zero when no operations have been recorded.
func (t *PerformanceTracker) Snapshot() model.PerformanceStats {
	stats := model.PerformanceStats{
		Base2Operations:  t.base2.Load(),
		Base10Operations: t.base10.Load(),
		Base12Operations: t.base12.Load(),
	}
	stats.TotalOperations = stats.Base2Operations + stats.Base10Operations + stats.Base12Operations

	if stats.TotalOperations == 0 {
		return stats
	}

	total := float64(stats.TotalOperations)
	stats.Base2Percentage = 100 * float64(stats.Base2Operations) / total
	stats.Base10Percentage = 100 * float64(stats.Base10Operations) / total
	stats.Base12Percentage = 100 * float64(stats.Base12Operations) / total
	return stats
}
