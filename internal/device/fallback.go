package device

import (
	"math"

	"go.uber.org/zap"

	"multibase-hft/internal/engine"
	"multibase-hft/internal/model"
)

// Placeholder counters reported by the software path. The accelerator
// fills these registers from real pipeline measurements; software has
// nothing to measure, so the values are fixed and deterministic.
const (
	softwareCyclesTaken     = 125
	softwareBase12Advantage = 15
	softwareCompPerSec      = 800000
	softwareConfidence      = 85.5
)

// SoftwareEngine computes optimize transactions in pure software. It is
// used whenever the register-mapped capability is unavailable and fills
// the exact same result record as the hardware driver.
type SoftwareEngine struct {
	clock   Clock
	tracker *engine.PerformanceTracker
	logger  *zap.Logger
}

// NewSoftwareEngine creates the software execution path.
func NewSoftwareEngine(tracker *engine.PerformanceTracker, logger *zap.Logger) *SoftwareEngine {
	return &SoftwareEngine{
		clock:   realClock{},
		tracker: tracker,
		logger:  logger,
	}
}

// SetClock replaces the engine's time source.
func (s *SoftwareEngine) SetClock(c Clock) {
	s.clock = c
}

// Mode reports the software execution path.
func (s *SoftwareEngine) Mode() model.ExecMode {
	return model.ModeSoftware
}

// Optimize computes a trade decision without hardware.
func (s *SoftwareEngine) Optimize(req model.OptimizeRequest) (model.TradeDecision, error) {
	start := s.clock.Now()

	mid := req.Market.Mid()
	spread := req.Market.Spread()

	entryPrice := mid + spread*0.1
	exitPrice := entryPrice + spread*0.5

	quantity := min(req.Market.BidSize, req.Market.AskSize) / 2
	expectedProfit := int64(math.Floor((exitPrice - entryPrice) * float64(quantity) * 1000))

	decision := model.TradeDecision{
		EntryPrice:         entryPrice,
		ExitPrice:          exitPrice,
		Quantity:           quantity,
		ExpectedProfit:     expectedProfit,
		Confidence:         softwareConfidence,
		BaseUsed:           model.BaseDozenal,
		CyclesTaken:        softwareCyclesTaken,
		Base12Advantage:    softwareBase12Advantage,
		ComputationsPerSec: softwareCompPerSec,
		TradeSignal:        expectedProfit > 0,
		MidPrice:           mid,
		Spread:             spread,
		Latency:            s.clock.Now().Sub(start),
		Mode:               model.ModeSoftware,
	}

	s.tracker.Record(decision.BaseUsed)
	return decision, nil
}

// Status reports a ready software engine.
func (s *SoftwareEngine) Status() model.DeviceStatus {
	return model.DeviceStatus{
		Mode:               model.ModeSoftware,
		Ready:              true,
		ComputationsPerSec: softwareCompPerSec,
	}
}

// Reset is a no-op on the software path.
func (s *SoftwareEngine) Reset() {}

// Close is a no-op on the software path.
func (s *SoftwareEngine) Close() error { return nil }
