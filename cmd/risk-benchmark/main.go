// Portfolio risk benchmark: parametric and Monte Carlo VaR over a fixed
// three-asset book. Prints the combined score as a single line on stdout.
package main

import (
	"flag"
	"fmt"

	"github.com/luxfi/log"

	"github.com/quantlabs/quantbench/pkg/metrics"
	"github.com/quantlabs/quantbench/pkg/risk"
)

func main() {
	iterations := flag.Int("iterations", risk.DefaultIterations, "Number of outer VaR iterations")
	trials := flag.Int("trials", risk.DefaultTrials, "Monte Carlo trials per iteration")
	seed := flag.Int64("seed", risk.DefaultSeed, "Monte Carlo generator seed")
	notional := flag.Float64("notional", risk.DefaultNotional, "Portfolio notional in USD")
	logLevel := flag.String("log-level", "info", "Log level")
	metricsAddr := flag.String("metrics-addr", "", "Prometheus metrics address (disabled when empty)")
	flag.Parse()

	level, _ := log.ToLevel(*logLevel)
	logger := log.NewTestLogger(level)

	m := metrics.New("quantbench")
	if *metricsAddr != "" {
		go func() {
			if err := m.Serve(*metricsAddr); err != nil {
				logger.Error("metrics server stopped", "error", err)
			}
		}()
	}

	result := risk.RunBenchmark(risk.BenchConfig{
		Iterations: *iterations,
		Trials:     *trials,
		Seed:       *seed,
		Notional:   *notional,
	}, logger, m)

	fmt.Println(result.Score)
}
