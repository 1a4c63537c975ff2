// HFT simulation benchmark: order book event processing + cross-venue
// arbitrage scan. Prints the combined score as a single line on stdout.
package main

import (
	"flag"
	"fmt"

	"github.com/luxfi/log"

	"github.com/quantlabs/quantbench/pkg/hft"
	"github.com/quantlabs/quantbench/pkg/metrics"
)

func main() {
	numEvents := flag.Int("events", hft.DefaultNumEvents, "Number of market events")
	numUpdates := flag.Int("updates", hft.DefaultNumUpdates, "Number of price updates per venue")
	simSeed := flag.Uint("sim-seed", hft.DefaultSimSeed, "Order book simulation seed")
	arbSeed := flag.Uint("arb-seed", hft.DefaultArbSeed, "Arbitrage scanner seed")
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

	result := hft.RunBenchmark(hft.BenchConfig{
		Sim: hft.SimConfig{NumEvents: *numEvents, Seed: uint32(*simSeed)},
		Arb: hft.ArbConfig{NumUpdates: *numUpdates, Seed: uint32(*arbSeed)},
	}, logger, m)

	logger.Info("hft benchmark complete", "score", result.Score, "elapsed", result.Elapsed)

	fmt.Println(result.Score)
}
