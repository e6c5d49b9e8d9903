// Package model defines shared data types used across all optimizer modules.
package model

import "time"

// BaseSystem identifies a number base used for a price calculation.
// The value is the radix itself.
type BaseSystem int

const (
	BaseBinary  BaseSystem = 2
	BaseDecimal BaseSystem = 10
	BaseDozenal BaseSystem = 12
)

// String returns the display name used in results and logs.
func (b BaseSystem) String() string {
	switch b {
	case BaseBinary:
		return "Binary"
	case BaseDecimal:
		return "Decimal"
	case BaseDozenal:
		return "Dozenal"
	default:
		return "Unknown"
	}
}

// RegisterCode returns the accelerator's encoding of this base
// (BASE_SELECT / BASE_USED register values).
func (b BaseSystem) RegisterCode() uint32 {
	switch b {
	case BaseDecimal:
		return 1
	case BaseDozenal:
		return 2
	default:
		return 0
	}
}

// BaseFromRegister maps a BASE_USED register value back to a BaseSystem.
func BaseFromRegister(code uint32) BaseSystem {
	switch code {
	case 1:
		return BaseDecimal
	case 2:
		return BaseDozenal
	default:
		return BaseBinary
	}
}

// Strategy identifies a trading strategy. Values match the accelerator's
// STRATEGY_ID register encoding.
type Strategy int

const (
	StrategyMarketMaking  Strategy = 0
	StrategyMeanReversion Strategy = 1
	StrategyMomentum      Strategy = 2
	StrategyArbitrage     Strategy = 3
)

// String returns the strategy name used in config files and logs.
func (s Strategy) String() string {
	switch s {
	case StrategyMarketMaking:
		return "market_making"
	case StrategyMeanReversion:
		return "mean_reversion"
	case StrategyMomentum:
		return "momentum"
	case StrategyArbitrage:
		return "arbitrage"
	default:
		return "unknown"
	}
}

// ParseStrategy converts a config-file strategy name to a Strategy.
// Unrecognized names report ok=false.
func ParseStrategy(name string) (Strategy, bool) {
	switch name {
	case "market_making":
		return StrategyMarketMaking, true
	case "mean_reversion":
		return StrategyMeanReversion, true
	case "momentum":
		return StrategyMomentum, true
	case "arbitrage":
		return StrategyArbitrage, true
	default:
		return StrategyMarketMaking, false
	}
}

// ExecMode records which execution path produced a TradeDecision.
type ExecMode string

const (
	ModeHardware ExecMode = "hardware"
	ModeSoftware ExecMode = "software"
)

// MarketSnapshot is one observation of the top of book.
// Spread validity (ask >= bid) is the caller's responsibility; a negative
// spread passes through unvalidated.
type MarketSnapshot struct {
	Bid     float64 `json:"bid"`
	Ask     float64 `json:"ask"`
	Last    float64 `json:"last"`
	BidSize uint32  `json:"bidSize"`
	AskSize uint32  `json:"askSize"`
}

// Mid returns the mid price (bid+ask)/2.
func (m MarketSnapshot) Mid() float64 {
	return (m.Bid + m.Ask) / 2
}

// Spread returns ask minus bid.
func (m MarketSnapshot) Spread() float64 {
	return m.Ask - m.Bid
}

// OptimizationResult is the software pricing engine's output for one call.
// It is constructed fresh per call and never mutated afterwards.
type OptimizationResult struct {
	EntryPrice    float64    `json:"entryPrice"`
	ExitPrice     float64    `json:"exitPrice"`
	EntryOffset   float64    `json:"entryOffset"`
	ExitOffset    float64    `json:"exitOffset"`
	MidPrice      float64    `json:"midPrice"`
	Spread        float64    `json:"spread"`
	BaseUsed      BaseSystem `json:"baseUsed"`
	CyclesSaved   int        `json:"cyclesSaved"`
	DozenalMid    string     `json:"dozenalMid,omitempty"`
	DozenalSpread string     `json:"dozenalSpread,omitempty"`
}

// OptimizeRequest carries the inputs of one optimize transaction.
type OptimizeRequest struct {
	Market        MarketSnapshot `json:"market"`
	BaseSelect    uint32         `json:"baseSelect"` // 0=auto/binary, 1=decimal, 2=dozenal
	RiskLimit     uint32         `json:"riskLimit"`
	LatencyBudget uint32         `json:"latencyBudgetNs"`
	Strategy      Strategy       `json:"strategy"`
}

// TradeDecision is the uniform result record of one optimize transaction.
// The hardware driver and the software fallback fill identical fields so
// callers are agnostic to which path executed; Mode records the path.
type TradeDecision struct {
	EntryPrice         float64       `json:"entryPrice"`
	ExitPrice          float64       `json:"exitPrice"`
	Quantity           uint32        `json:"quantity"`
	ExpectedProfit     int64         `json:"expectedProfit"`
	Confidence         float64       `json:"confidence"`
	BaseUsed           BaseSystem    `json:"baseUsed"`
	CyclesTaken        uint32        `json:"cyclesTaken"`
	Base12Advantage    uint32        `json:"base12Advantage"`
	ComputationsPerSec uint32        `json:"computationsPerSec"`
	TradeSignal        bool          `json:"tradeSignal"`
	MidPrice           float64       `json:"midPrice"`
	Spread             float64       `json:"spread"`
	Latency            time.Duration `json:"latency"`
	Mode               ExecMode      `json:"mode"`
}

// PerformanceStats is an aggregate view of optimizer base usage.
type PerformanceStats struct {
	Base2Operations  uint64  `json:"base2Operations"`
	Base10Operations uint64  `json:"base10Operations"`
	Base12Operations uint64  `json:"base12Operations"`
	TotalOperations  uint64  `json:"totalOperations"`
	Base2Percentage  float64 `json:"base2Percentage"`
	Base10Percentage float64 `json:"base10Percentage"`
	Base12Percentage float64 `json:"base12Percentage"`
}

// DeviceStatus is a decoded view of the accelerator status register.
type DeviceStatus struct {
	Mode               ExecMode `json:"mode"`
	Ready              bool     `json:"ready"`
	TradeSignalValid   bool     `json:"tradeSignalValid"`
	Busy               bool     `json:"busy"`
	ComputationsPerSec uint32   `json:"computationsPerSec"`
}
