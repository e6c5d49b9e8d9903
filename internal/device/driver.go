package device

import (
	"sync"
	"time"

	"github.com/zeebo/errs"
	"go.uber.org/zap"

	"multibase-hft/internal/engine"
	"multibase-hft/internal/model"
)

// ErrTimeout reports that the accelerator did not signal completion
// within the caller's budget. No partial result accompanies it.
var ErrTimeout = errs.Class("optimize timeout")

// Clock abstracts time observation and suspension so the polling loop
// can be driven deterministically in tests.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type realClock struct{}

func (realClock) Now() time.Time        { return time.Now() }
func (realClock) Sleep(d time.Duration) { time.Sleep(d) }

// Driver runs optimize transactions against the register-mapped core.
// One transaction owns the whole register image from first input write
// to last result read; the mutex keeps transactions from interleaving.
type Driver struct {
	mu           sync.Mutex
	bus          Bus
	clock        Clock
	pollInterval time.Duration
	timeout      time.Duration
	tracker      *engine.PerformanceTracker
	logger       *zap.Logger
}

// NewDriver creates a driver over the given bus. The clock defaults to
// the real one; tests inject their own.
func NewDriver(bus Bus, pollInterval, timeout time.Duration, tracker *engine.PerformanceTracker, logger *zap.Logger) *Driver {
	return &Driver{
		bus:          bus,
		clock:        realClock{},
		pollInterval: pollInterval,
		timeout:      timeout,
		tracker:      tracker,
		logger:       logger,
	}
}

// SetClock replaces the driver's time source.
func (d *Driver) SetClock(c Clock) {
	d.clock = c
}

// Mode reports the hardware execution path.
func (d *Driver) Mode() model.ExecMode {
	return model.ModeHardware
}

// Optimize runs one optimize transaction: load inputs, start the core,
// poll for completion within the timeout, decode results. The deadline is
// measured from transaction start, not from each poll.
func (d *Driver) Optimize(req model.OptimizeRequest) (model.TradeDecision, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	start := d.clock.Now()

	// Idle -> InputsLoaded
	if err := d.writePrice(regBidPriceH, regBidPriceL, req.Market.Bid); err != nil {
		return model.TradeDecision{}, err
	}
	if err := d.writePrice(regAskPriceH, regAskPriceL, req.Market.Ask); err != nil {
		return model.TradeDecision{}, err
	}
	if err := d.writePrice(regLastPriceH, regLastPriceL, req.Market.Last); err != nil {
		return model.TradeDecision{}, err
	}
	d.bus.Write32(regBidSize, req.Market.BidSize)
	d.bus.Write32(regAskSize, req.Market.AskSize)
	d.bus.Write32(regBaseSelect, req.BaseSelect)
	d.bus.Write32(regRiskLimit, req.RiskLimit)
	d.bus.Write32(regLatencyBudget, req.LatencyBudget)
	d.bus.Write32(regStrategyID, uint32(req.Strategy))

	// InputsLoaded -> Running
	d.bus.Write32(regControl, ctrlRun)

	// Running -> Complete | TimedOut
	var status uint32
	complete := false
	for d.clock.Now().Sub(start) < d.timeout {
		status = d.bus.Read32(regStatus)
		if status&statusComplete != 0 {
			complete = true
			break
		}
		d.clock.Sleep(d.pollInterval)
	}
	if !complete {
		d.logger.Warn("optimize_timeout",
			zap.Duration("budget", d.timeout),
			zap.Uint32("status", status),
		)
		return model.TradeDecision{}, ErrTimeout.New("no completion within %s", d.timeout)
	}

	decision := model.TradeDecision{
		EntryPrice:         d.readPrice(regResultPriceH, regResultPriceL),
		ExitPrice:          d.readPrice(regExitPriceH, regExitPriceL),
		Quantity:           d.bus.Read32(regQuantity),
		ExpectedProfit:     int64(int32(d.bus.Read32(regExpectedProfit))),
		Confidence:         float64(d.bus.Read32(regConfidence)) / 100.0,
		BaseUsed:           model.BaseFromRegister(d.bus.Read32(regBaseUsed)),
		CyclesTaken:        d.bus.Read32(regCyclesTaken),
		Base12Advantage:    d.bus.Read32(regBase12Adv),
		ComputationsPerSec: d.bus.Read32(regCompPerSec),
		TradeSignal:        status&statusSignalValid != 0,
		MidPrice:           req.Market.Mid(),
		Spread:             req.Market.Spread(),
		Latency:            d.clock.Now().Sub(start),
		Mode:               model.ModeHardware,
	}

	d.tracker.Record(decision.BaseUsed)
	return decision, nil
}

// Reset drops the core to its idle enabled state.
func (d *Driver) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.bus.Write32(regControl, ctrlReset)
	d.clock.Sleep(time.Millisecond)
	d.bus.Write32(regControl, ctrlEnable)
}

// Status decodes the status register into a caller-facing view.
func (d *Driver) Status() model.DeviceStatus {
	d.mu.Lock()
	defer d.mu.Unlock()

	status := d.bus.Read32(regStatus)
	return model.DeviceStatus{
		Mode:               model.ModeHardware,
		Ready:              status&statusComplete != 0,
		TradeSignalValid:   status&statusSignalValid != 0,
		Busy:               status&statusBusy != 0,
		ComputationsPerSec: d.bus.Read32(regCompPerSec),
	}
}

// Close releases the underlying bus if it is closable.
func (d *Driver) Close() error {
	if closer, ok := d.bus.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}

// writePrice encodes a price into its H/L register pair.
func (d *Driver) writePrice(regH, regL uint32, price float64) error {
	hi, lo, err := engine.EncodePrice(price)
	if err != nil {
		return err
	}
	d.bus.Write32(regH, hi)
	d.bus.Write32(regL, lo)
	return nil
}

// readPrice decodes a price from its H/L register pair.
func (d *Driver) readPrice(regH, regL uint32) float64 {
	return engine.DecodePrice(d.bus.Read32(regH), d.bus.Read32(regL))
}
