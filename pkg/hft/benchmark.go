package hft

import (
	"time"

	"github.com/luxfi/log"
	"github.com/shopspring/decimal"

	"github.com/quantlabs/quantbench/pkg/metrics"
)

// BenchConfig bundles both HFT workloads.
type BenchConfig struct {
	Sim SimConfig
	Arb ArbConfig
}

// Result is the combined outcome of one HFT benchmark run.
type Result struct {
	Sim     SimResult
	Arb     ArbResult
	Score   float64
	Elapsed time.Duration
}

// RunBenchmark executes the order book simulation and the arbitrage scan and
// combines them into the suite score: average event latency (scaled by 1000)
// plus the opportunity count.
func RunBenchmark(cfg BenchConfig, logger log.Logger, m *metrics.Metrics) Result {
	cfg.Sim = cfg.Sim.withDefaults()
	cfg.Arb = cfg.Arb.withDefaults()

	start := time.Now()

	sim := SimulateOrderBook(cfg.Sim)
	logger.Info("order book simulation complete",
		"events", sim.NumEvents,
		"avgLatencyUs", sim.AvgLatency,
		"trades", sim.TotalTrades,
		"volume", sim.TotalVolume,
		"throughput", sim.Throughput)

	arb := ScanArbitrage(cfg.Arb)
	logger.Info("arbitrage scan complete",
		"updates", cfg.Arb.NumUpdates,
		"opportunities", arb.Opportunities,
		"grossProfitUSD", ticksToDollars(arb.TotalProfit).StringFixed(2))

	score := sim.AvgLatency*1000 + float64(arb.Opportunities)
	elapsed := time.Since(start)

	if m != nil {
		m.EventsProcessed.Add(float64(sim.NumEvents))
		m.TradesExecuted.Add(float64(sim.TotalTrades))
		m.ArbOpportunities.Add(float64(arb.Opportunities))
		m.RecordScore("hft", score)
		m.RecordDuration("hft", elapsed)
	}

	return Result{Sim: sim, Arb: arb, Score: score, Elapsed: elapsed}
}

// ticksToDollars converts $0.01 price ticks to a dollar amount.
func ticksToDollars(ticks int64) decimal.Decimal {
	return decimal.NewFromInt(ticks).Div(decimal.NewFromInt(100))
}
