package device

import (
	"time"

	"go.uber.org/zap"

	"multibase-hft/internal/config"
	"multibase-hft/internal/engine"
	"multibase-hft/internal/model"
)

// Optimizer is the single interface over both execution paths. The path
// is chosen once at setup; callers stay agnostic to which one runs.
type Optimizer interface {
	Optimize(req model.OptimizeRequest) (model.TradeDecision, error)
	Status() model.DeviceStatus
	Reset()
	Mode() model.ExecMode
	Close() error
}

// Open attempts to reach the accelerator's register window and returns a
// hardware driver on success. When the capability is unavailable it
// returns the software engine together with the wrapped reason, so the
// caller can log the substitution without failing.
func Open(cfg config.DeviceConfig, tracker *engine.PerformanceTracker, logger *zap.Logger) (Optimizer, error) {
	if cfg.MemPath == "" {
		return NewSoftwareEngine(tracker, logger), ErrUnavailable.New("no accelerator configured")
	}

	mmio, err := OpenMMIO(cfg.MemPath, cfg.BaseAddress, cfg.MapSize)
	if err != nil {
		return NewSoftwareEngine(tracker, logger), err
	}

	drv := NewDriver(
		mmio,
		time.Duration(cfg.PollIntervalUs)*time.Microsecond,
		time.Duration(cfg.TimeoutMs)*time.Millisecond,
		tracker,
		logger,
	)

	// Bring the core to its idle enabled state
	drv.Reset()

	return drv, nil
}
