// regmap-test is a diagnostic tool that opens the optimizer device (or its
// software fallback), runs a single optimize transaction, and benchmarks
// sustained optimize throughput.
package main

import (
	"flag"
	"fmt"
	"time"

	"go.uber.org/zap"

	"multibase-hft/internal/config"
	"multibase-hft/internal/device"
	"multibase-hft/internal/engine"
	"multibase-hft/internal/model"
)

func main() {
	memPath := flag.String("mem", "/dev/mem", "memory device node (empty forces software mode)")
	baseAddr := flag.Uint64("base", 0x40000000, "register window base address")
	mapSize := flag.Uint("size", 0x10000, "register window size in bytes")
	timeoutMs := flag.Int("timeout", 100, "optimize timeout in milliseconds")
	iterations := flag.Int("n", 1000, "benchmark iterations")
	flag.Parse()

	cfg := config.DeviceConfig{
		MemPath:        *memPath,
		BaseAddress:    *baseAddr,
		MapSize:        uint32(*mapSize),
		PollIntervalUs: 100,
		TimeoutMs:      *timeoutMs,
	}

	fmt.Printf("[regmap-test] Opening device: %s @ 0x%08X (%d bytes)\n",
		cfg.MemPath, cfg.BaseAddress, cfg.MapSize)

	tracker := engine.NewPerformanceTracker()
	opt, err := device.Open(cfg, tracker, zap.NewNop())
	if err != nil {
		fmt.Printf("[regmap-test] WARNING: %v\n", err)
	}
	defer opt.Close()

	status := opt.Status()
	fmt.Printf("[regmap-test] Mode: %s  Ready=%v  Busy=%v  Comp/sec=%d\n",
		opt.Mode(), status.Ready, status.Busy, status.ComputationsPerSec)
	fmt.Println("---")

	req := model.OptimizeRequest{
		Market: model.MarketSnapshot{
			Bid:     100.25,
			Ask:     100.28,
			Last:    100.26,
			BidSize: 1000,
			AskSize: 1200,
		},
		RiskLimit:     100000,
		LatencyBudget: 1000,
		Strategy:      model.StrategyMarketMaking,
	}

	decision, err := opt.Optimize(req)
	if err != nil {
		fmt.Printf("[regmap-test] optimize failed: %v\n", err)
		return
	}

	fmt.Printf("Entry Price:     %.4f\n", decision.EntryPrice)
	fmt.Printf("Exit Price:      %.4f\n", decision.ExitPrice)
	fmt.Printf("Quantity:        %d\n", decision.Quantity)
	fmt.Printf("Expected Profit: %d\n", decision.ExpectedProfit)
	fmt.Printf("Confidence:      %.1f%%\n", decision.Confidence)
	fmt.Printf("Base Used:       %s\n", decision.BaseUsed)
	fmt.Printf("Cycles Taken:    %d\n", decision.CyclesTaken)

	kellyQty := engine.KellyQuantity(decision.EntryPrice, float64(req.RiskLimit), decision.Confidence, decision.Spread)
	slippage := engine.EstimateSlippage(kellyQty, decision.Spread, int(req.Market.BidSize))
	fmt.Printf("Kelly Size:      %d\n", kellyQty)
	fmt.Printf("Est. Slippage:   %.6f\n", slippage)
	fmt.Printf("Latency:         %s\n", decision.Latency)
	if decision.TradeSignal {
		fmt.Println("Trade Signal:    BUY")
	} else {
		fmt.Println("Trade Signal:    HOLD")
	}

	fmt.Println("---")
	fmt.Printf("[regmap-test] Benchmarking %d iterations...\n", *iterations)
	benchmark(opt, req, *iterations)
}

// benchmark runs repeated optimize calls with slight price perturbation
// and reports latency and per-base usage.
func benchmark(opt device.Optimizer, req model.OptimizeRequest, iterations int) {
	baseUsage := map[model.BaseSystem]int{}
	var totalCycles uint64
	var minLat, maxLat, sumLat time.Duration
	completed := 0

	start := time.Now()
	for i := 0; i < iterations; i++ {
		r := req
		shift := float64(i%10) * 0.01
		r.Market.Bid += shift
		r.Market.Ask += shift
		r.Market.Last += shift

		decision, err := opt.Optimize(r)
		if err != nil {
			continue
		}

		completed++
		baseUsage[decision.BaseUsed]++
		totalCycles += uint64(decision.CyclesTaken)
		sumLat += decision.Latency
		if minLat == 0 || decision.Latency < minLat {
			minLat = decision.Latency
		}
		if decision.Latency > maxLat {
			maxLat = decision.Latency
		}
	}
	elapsed := time.Since(start)

	if completed == 0 {
		fmt.Println("[regmap-test] no iterations completed")
		return
	}

	fmt.Printf("Completed:  %d/%d in %s\n", completed, iterations, elapsed)
	fmt.Printf("Throughput: %.0f ops/sec\n", float64(completed)/elapsed.Seconds())
	fmt.Printf("Latency:    min=%s avg=%s max=%s\n", minLat, sumLat/time.Duration(completed), maxLat)
	fmt.Printf("Avg Cycles: %d\n", totalCycles/uint64(completed))
	fmt.Println("Base Usage:")
	for _, base := range []model.BaseSystem{model.BaseDozenal, model.BaseDecimal, model.BaseBinary} {
		count := baseUsage[base]
		fmt.Printf("  %-8s %5d (%.1f%%)\n", base, count, 100*float64(count)/float64(completed))
	}
}
