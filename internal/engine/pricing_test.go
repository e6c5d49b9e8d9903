package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"multibase-hft/internal/model"
)

func newTestEngine() (*PricingEngine, *PerformanceTracker) {
	tracker := NewPerformanceTracker()
	return NewPricingEngine(tracker, zap.NewNop()), tracker
}

func TestOptimizeMarketMakingDozenal(t *testing.T) {
	e, tracker := newTestEngine()

	// Mid 100.265 has 10026 cents, divisible by 6: the dozenal path
	result := e.OptimizePriceLevels(100.25, 100.28, 100.26, model.StrategyMarketMaking)

	require.Equal(t, model.BaseDozenal, result.BaseUsed)
	require.InDelta(t, 100.265, result.MidPrice, 1e-9)
	require.InDelta(t, 0.03, result.Spread, 1e-9)

	// Market making in dozenal: 1/12 and 11/12 of the spread
	require.InDelta(t, result.Spread/12, result.EntryOffset, 1e-12)
	require.InDelta(t, result.Spread*11/12, result.ExitOffset, 1e-12)
	require.InDelta(t, 100.2675, result.EntryPrice, 1e-9)
	require.InDelta(t, 100.2925, result.ExitPrice, 1e-9)

	require.Equal(t, 15, result.CyclesSaved)
	require.NotEmpty(t, result.DozenalMid)
	require.NotEmpty(t, result.DozenalSpread)

	stats := tracker.Snapshot()
	require.Equal(t, uint64(1), stats.Base12Operations)
	require.Equal(t, uint64(1), stats.TotalOperations)
}

func TestOptimizeBinaryPath(t *testing.T) {
	e, tracker := newTestEngine()

	// Mid 2.56 has 256 cents, a power of two
	momentum := e.OptimizePriceLevels(2.54, 2.58, 2.56, model.StrategyMomentum)
	require.Equal(t, model.BaseBinary, momentum.BaseUsed)
	require.InDelta(t, momentum.Spread/16, momentum.EntryOffset, 1e-12)
	require.InDelta(t, momentum.Spread/4, momentum.ExitOffset, 1e-12)
	require.Equal(t, 20, momentum.CyclesSaved)
	require.Empty(t, momentum.DozenalMid)

	// Mean reversion has no binary rule and falls through to 1/4, 1/2
	reversion := e.OptimizePriceLevels(2.54, 2.58, 2.56, model.StrategyMeanReversion)
	require.InDelta(t, reversion.Spread/4, reversion.EntryOffset, 1e-12)
	require.InDelta(t, reversion.Spread/2, reversion.ExitOffset, 1e-12)

	require.Equal(t, uint64(2), tracker.Snapshot().Base2Operations)
}

func TestOptimizeDecimalPath(t *testing.T) {
	e, tracker := newTestEngine()

	// Mid 1.30 has 130 cents, only the divisible-by-10 rule matches
	arb := e.OptimizePriceLevels(1.29, 1.31, 1.30, model.StrategyArbitrage)
	require.Equal(t, model.BaseDecimal, arb.BaseUsed)
	require.InDelta(t, arb.Spread*0.05, arb.EntryOffset, 1e-12)
	require.InDelta(t, arb.Spread*0.95, arb.ExitOffset, 1e-12)
	require.Equal(t, 0, arb.CyclesSaved)

	// Momentum has no decimal rule and falls through to 0.2, 0.8
	mom := e.OptimizePriceLevels(1.29, 1.31, 1.30, model.StrategyMomentum)
	require.InDelta(t, mom.Spread*0.2, mom.EntryOffset, 1e-12)
	require.InDelta(t, mom.Spread*0.8, mom.ExitOffset, 1e-12)

	require.Equal(t, uint64(2), tracker.Snapshot().Base10Operations)
}

func TestOptimizeDozenalDefaultPair(t *testing.T) {
	e, _ := newTestEngine()

	// Mid 1.44 has 144 cents, divisible by 12; momentum and arbitrage
	// have no dozenal rule and fall through to 1/6, 1/3
	for _, strategy := range []model.Strategy{model.StrategyMomentum, model.StrategyArbitrage} {
		result := e.OptimizePriceLevels(1.43, 1.45, 1.44, strategy)
		require.Equal(t, model.BaseDozenal, result.BaseUsed)
		require.InDelta(t, result.Spread/6, result.EntryOffset, 1e-12)
		require.InDelta(t, result.Spread/3, result.ExitOffset, 1e-12)
	}
}
