package app

import (
	"context"
	"math"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"multibase-hft/internal/config"
	"multibase-hft/internal/device"
	"multibase-hft/internal/engine"
	"multibase-hft/internal/logging"
	"multibase-hft/internal/model"
)

// App is the application lifecycle manager.
type App struct {
	cfg *config.Config
}

// New creates a new App instance.
func New(cfg *config.Config) *App {
	return &App{cfg: cfg}
}

// Run starts the full application: device, optimizer loop, and signal handling.
func (a *App) Run() error {
	log, err := logging.Build(a.cfg.App.LogLevel)
	if err != nil {
		return err
	}
	defer log.Sync()

	log.Info("starting multi-base optimizer",
		zap.String("version", "0.1.0"),
		zap.String("log_level", a.cfg.App.LogLevel),
	)

	tracker := engine.NewPerformanceTracker()

	// Open device (hardware with software fallback)
	opt, devErr := device.Open(a.cfg.Device, tracker, log)
	if devErr != nil {
		log.Warn("device_fallback", zap.Error(devErr))
	}
	defer opt.Close()

	status := opt.Status()
	log.Info("device_opened",
		zap.String("mode", string(opt.Mode())),
		zap.Bool("ready", status.Ready),
		zap.Uint32("computations_per_sec", status.ComputationsPerSec),
	)

	pricing := engine.NewPricingEngine(tracker, log)

	strategy, ok := model.ParseStrategy(a.cfg.Optimizer.DefaultStrategy)
	if !ok {
		log.Warn("unknown_strategy", zap.String("name", a.cfg.Optimizer.DefaultStrategy))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go optimizeLoop(ctx, a.cfg, opt, pricing, tracker, strategy, log)

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	log.Info("shutdown_signal", zap.String("signal", sig.String()))

	cancel()
	logStats(tracker, log)
	log.Info("optimizer stopped")
	return nil
}

// optimizeLoop drives periodic optimize calls from a simulated tick
// stream, exercising both the device path and the software pricing
// engine, and logs aggregate base usage once in a while.
func optimizeLoop(ctx context.Context, cfg *config.Config, opt device.Optimizer,
	pricing *engine.PricingEngine, tracker *engine.PerformanceTracker,
	strategy model.Strategy, log *zap.Logger) {

	ticker := time.NewTicker(time.Duration(cfg.Optimizer.TickIntervalMs) * time.Millisecond)
	defer ticker.Stop()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	baseBid := 100.25
	spread := 0.03
	step := 0

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			step++
			delta := (rng.Float64() - 0.5) * spread * 3
			wave := math.Sin(float64(step)/20.0) * spread * 0.5
			baseBid += delta + wave

			bid := math.Round(baseBid*100) / 100
			ask := math.Round((baseBid+spread)*100) / 100
			last := (bid + ask) / 2

			req := model.OptimizeRequest{
				Market: model.MarketSnapshot{
					Bid:     bid,
					Ask:     ask,
					Last:    last,
					BidSize: 1000,
					AskSize: 1200,
				},
				RiskLimit:     cfg.Optimizer.RiskLimit,
				LatencyBudget: cfg.Optimizer.LatencyBudgetNs,
				Strategy:      strategy,
			}

			decision, err := opt.Optimize(req)
			if err != nil {
				log.Warn("optimize_failed", zap.Error(err))
				continue
			}

			levels := pricing.OptimizePriceLevels(bid, ask, last, strategy)
			kellyQty := engine.KellyQuantity(decision.EntryPrice, float64(cfg.Optimizer.RiskLimit), decision.Confidence, decision.Spread)
			slippage := engine.EstimateSlippage(kellyQty, decision.Spread, int(req.Market.BidSize))

			log.Debug("tick_optimized",
				zap.Float64("bid", bid),
				zap.Float64("ask", ask),
				zap.Float64("entry", decision.EntryPrice),
				zap.Float64("exit", decision.ExitPrice),
				zap.Uint32("quantity", decision.Quantity),
				zap.Int("kelly_quantity", kellyQty),
				zap.String("device_base", decision.BaseUsed.String()),
				zap.String("pricing_base", levels.BaseUsed.String()),
				zap.Float64("slippage", slippage),
				zap.Bool("trade_signal", decision.TradeSignal),
				zap.Duration("latency", decision.Latency),
			)

			if step%100 == 0 {
				logStats(tracker, log)
			}
		}
	}
}

// logStats emits the aggregate base usage breakdown.
func logStats(tracker *engine.PerformanceTracker, log *zap.Logger) {
	stats := tracker.Snapshot()
	log.Info("base_usage",
		zap.Uint64("total", stats.TotalOperations),
		zap.Uint64("base12_ops", stats.Base12Operations),
		zap.Uint64("base10_ops", stats.Base10Operations),
		zap.Uint64("base2_ops", stats.Base2Operations),
		zap.Float64("base12_pct", stats.Base12Percentage),
		zap.Float64("base10_pct", stats.Base10Percentage),
		zap.Float64("base2_pct", stats.Base2Percentage),
	)
}
