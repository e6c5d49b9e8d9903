package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBaseRegisterRoundTrip(t *testing.T) {
	for _, base := range []BaseSystem{BaseBinary, BaseDecimal, BaseDozenal} {
		require.Equal(t, base, BaseFromRegister(base.RegisterCode()))
	}

	// Unknown codes decode as Binary, the accelerator's auto value
	require.Equal(t, BaseBinary, BaseFromRegister(7))
}

func TestParseStrategy(t *testing.T) {
	for _, strategy := range []Strategy{
		StrategyMarketMaking, StrategyMeanReversion, StrategyMomentum, StrategyArbitrage,
	} {
		parsed, ok := ParseStrategy(strategy.String())
		require.True(t, ok)
		require.Equal(t, strategy, parsed)
	}

	_, ok := ParseStrategy("scalping")
	require.False(t, ok)
}

func TestSnapshotDerived(t *testing.T) {
	m := MarketSnapshot{Bid: 100.25, Ask: 100.28}
	require.InDelta(t, 100.265, m.Mid(), 1e-9)
	require.InDelta(t, 0.03, m.Spread(), 1e-9)
}
