// Package device drives the register-mapped multi-base optimizer core and
// provides a software execution path when no accelerator is reachable.
package device

// Register byte offsets within the accelerator's AXI window. Prices are
// 48-bit fixed-point values split across H/L word pairs.
const (
	regControl        = 0x000
	regStatus         = 0x004
	regBidPriceH      = 0x008
	regBidPriceL      = 0x00C
	regAskPriceH      = 0x010
	regAskPriceL      = 0x014
	regLastPriceH     = 0x018
	regLastPriceL     = 0x01C
	regBidSize        = 0x020
	regAskSize        = 0x024
	regBaseSelect     = 0x028
	regRiskLimit      = 0x02C
	regLatencyBudget  = 0x030
	regStrategyID     = 0x034
	regResultPriceH   = 0x038
	regResultPriceL   = 0x03C
	regExitPriceH     = 0x040
	regExitPriceL     = 0x044
	regQuantity       = 0x048
	regExpectedProfit = 0x04C
	regConfidence     = 0x050
	regBaseUsed       = 0x054
	regCyclesTaken    = 0x058
	regBase12Adv      = 0x05C
	regCompPerSec     = 0x060
)

// Control register bits.
const (
	ctrlStart  = 0x01
	ctrlEnable = 0x02
	ctrlRun    = ctrlEnable | ctrlStart
	ctrlReset  = 0x00
)

// Status register bits.
const (
	statusComplete    = 1 << 0
	statusSignalValid = 1 << 16
	statusBusy        = 1 << 17
)
