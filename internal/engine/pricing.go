package engine

import (
	"go.uber.org/zap"

	"multibase-hft/internal/model"
)

// Cycles saved per base relative to the decimal baseline. This is a static
// cost model matching the accelerator's pipeline, not a measurement.
const (
	cyclesSavedDozenal = 15
	cyclesSavedBinary  = 20
	cyclesSavedDecimal = 0
)

// PricingEngine computes entry/exit price levels using the number base
// best suited to each mid price. Every call records its base with the
// injected tracker.
type PricingEngine struct {
	tracker *PerformanceTracker
	logger  *zap.Logger
}

// NewPricingEngine creates a pricing engine sharing the given tracker.
func NewPricingEngine(tracker *PerformanceTracker, logger *zap.Logger) *PricingEngine {
	return &PricingEngine{
		tracker: tracker,
		logger:  logger,
	}
}

// OptimizePriceLevels computes entry and exit levels for the given market
// prices and strategy. The offsets are fractions of the spread selected by
// (base, strategy); strategies without a specific rule for a base fall
// through to that base's default pair.
func (e *PricingEngine) OptimizePriceLevels(bid, ask, last float64, strategy model.Strategy) model.OptimizationResult {
	mid := (bid + ask) / 2
	spread := ask - bid

	base := OptimalBase(mid)

	var result model.OptimizationResult
	switch base {
	case model.BaseDozenal:
		result = optimizeDozenal(mid, spread, strategy)
	case model.BaseBinary:
		result = optimizeBinary(mid, spread, strategy)
	default:
		result = optimizeDecimal(mid, spread, strategy)
	}

	result.BaseUsed = base
	result.MidPrice = mid
	result.Spread = spread

	e.tracker.Record(base)

	e.logger.Debug("price_levels_optimized",
		zap.Float64("mid", mid),
		zap.Float64("spread", spread),
		zap.String("base", base.String()),
		zap.String("strategy", strategy.String()),
		zap.Float64("entry", result.EntryPrice),
		zap.Float64("exit", result.ExitPrice),
	)

	return result
}

// optimizeDozenal prices in base 12, where division by 2, 3, 4, 6 and 12
// is exact. The dozenal renderings of mid and spread ride along in the
// result for diagnostic consumers.
func optimizeDozenal(mid, spread float64, strategy model.Strategy) model.OptimizationResult {
	var entryOffset, exitOffset float64
	switch strategy {
	case model.StrategyMarketMaking:
		entryOffset = spread / 12
		exitOffset = spread * 11 / 12
	case model.StrategyMeanReversion:
		entryOffset = spread / 4
		exitOffset = spread / 2
	default:
		entryOffset = spread / 6
		exitOffset = spread / 3
	}

	return model.OptimizationResult{
		EntryPrice:    mid + entryOffset,
		ExitPrice:     mid + exitOffset,
		EntryOffset:   entryOffset,
		ExitOffset:    exitOffset,
		CyclesSaved:   cyclesSavedDozenal,
		DozenalMid:    ToDozenal(mid),
		DozenalSpread: ToDozenal(spread),
	}
}

// optimizeBinary prices with power-of-two fractions that reduce to shifts.
func optimizeBinary(mid, spread float64, strategy model.Strategy) model.OptimizationResult {
	var entryOffset, exitOffset float64
	switch strategy {
	case model.StrategyMarketMaking:
		entryOffset = spread / 8
		exitOffset = spread * 7 / 8
	case model.StrategyMomentum:
		entryOffset = spread / 16
		exitOffset = spread / 4
	default:
		entryOffset = spread / 4
		exitOffset = spread / 2
	}

	return model.OptimizationResult{
		EntryPrice:  mid + entryOffset,
		ExitPrice:   mid + exitOffset,
		EntryOffset: entryOffset,
		ExitOffset:  exitOffset,
		CyclesSaved: cyclesSavedBinary,
	}
}

// optimizeDecimal is the baseline decimal pricing path.
func optimizeDecimal(mid, spread float64, strategy model.Strategy) model.OptimizationResult {
	var entryOffset, exitOffset float64
	switch strategy {
	case model.StrategyMarketMaking:
		entryOffset = spread * 0.1
		exitOffset = spread * 0.9
	case model.StrategyArbitrage:
		entryOffset = spread * 0.05
		exitOffset = spread * 0.95
	default:
		entryOffset = spread * 0.2
		exitOffset = spread * 0.8
	}

	return model.OptimizationResult{
		EntryPrice:  mid + entryOffset,
		ExitPrice:   mid + exitOffset,
		EntryOffset: entryOffset,
		ExitOffset:  exitOffset,
		CyclesSaved: cyclesSavedDecimal,
	}
}
