// Benchmark both suites: HFT simulation and portfolio risk.
package main

import (
	"flag"
	"fmt"
	"runtime"
	"time"

	"github.com/luxfi/log"

	"github.com/quantlabs/quantbench/pkg/hft"
	"github.com/quantlabs/quantbench/pkg/metrics"
	"github.com/quantlabs/quantbench/pkg/risk"
)

type BenchResult struct {
	Name    string
	Score   float64
	Elapsed time.Duration
}

func main() {
	numEvents := flag.Int("events", hft.DefaultNumEvents, "Number of market events")
	numUpdates := flag.Int("updates", hft.DefaultNumUpdates, "Number of price updates per venue")
	iterations := flag.Int("iterations", risk.DefaultIterations, "Number of outer VaR iterations")
	trials := flag.Int("trials", risk.DefaultTrials, "Monte Carlo trials per iteration")
	logLevel := flag.String("log-level", "warn", "Log level")
	metricsAddr := flag.String("metrics-addr", "", "Prometheus metrics address (disabled when empty)")
	flag.Parse()

	level, _ := log.ToLevel(*logLevel)
	logger := log.NewTestLogger(level)

	fmt.Printf("🚀 QuantBench Reference Benchmarks\n")
	fmt.Printf("==================================\n")
	fmt.Printf("Platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("CPUs: %d\n\n", runtime.NumCPU())

	m := metrics.New("quantbench")
	if *metricsAddr != "" {
		go func() {
			if err := m.Serve(*metricsAddr); err != nil {
				logger.Error("metrics server stopped", "error", err)
			}
		}()
	}

	results := []BenchResult{}

	fmt.Println("📊 Running HFT Simulation...")
	hftResult := hft.RunBenchmark(hft.BenchConfig{
		Sim: hft.SimConfig{NumEvents: *numEvents},
		Arb: hft.ArbConfig{NumUpdates: *numUpdates},
	}, logger, m)
	results = append(results, BenchResult{"HFT Simulation", hftResult.Score, hftResult.Elapsed})
	fmt.Printf("   ✅ score %v (avg latency %.4fµs, %d arb opportunities)\n\n",
		hftResult.Score, hftResult.Sim.AvgLatency, hftResult.Arb.Opportunities)

	fmt.Println("📊 Running Portfolio Risk...")
	riskResult := risk.RunBenchmark(risk.BenchConfig{
		Iterations: *iterations,
		Trials:     *trials,
	}, logger, m)
	results = append(results, BenchResult{"Portfolio Risk", riskResult.Score, riskResult.Elapsed})
	fmt.Printf("   ✅ score %v (avg VaR %.6f, avg extreme loss $%.2f)\n\n",
		riskResult.Score, riskResult.AvgVaR, riskResult.AvgMCVaR)

	printSummary(results)
}

func printSummary(results []BenchResult) {
	fmt.Println("═══════════════════════════════════════════════════════")
	fmt.Println("📈 BENCHMARK SUMMARY")
	fmt.Println("═══════════════════════════════════════════════════════")
	for _, r := range results {
		fmt.Printf("%-20s: %18v | %12s\n", r.Name, r.Score, r.Elapsed)
	}
	fmt.Println("═══════════════════════════════════════════════════════")
}
