package hft

import "github.com/quantlabs/quantbench/pkg/lcg"

// Reference arbitrage workload parameters.
const (
	DefaultNumUpdates = 50000
	DefaultArbSeed    = 54321

	// Prices are quoted in ticks of $0.01. A spread has to clear $0.50 to
	// count as an opportunity; booking it costs $0.10.
	spreadThreshold = 50
	transactionCost = 10
)

// ArbConfig parameterizes the cross-venue arbitrage scan.
type ArbConfig struct {
	NumUpdates int
	Seed       uint32
}

func (c ArbConfig) withDefaults() ArbConfig {
	if c.NumUpdates <= 0 {
		c.NumUpdates = DefaultNumUpdates
	}
	if c.Seed == 0 {
		c.Seed = DefaultArbSeed
	}
	return c
}

// ArbResult aggregates the scan. TotalProfit is in ticks.
type ArbResult struct {
	Opportunities int
	TotalProfit   int64
	FinalPrices   [3]int
}

// ScanArbitrage random-walks one quote per venue for NumUpdates iterations and
// counts the iterations where the max-min spread clears the threshold. Each
// iteration draws one price move per venue, in venue order.
func ScanArbitrage(cfg ArbConfig) ArbResult {
	cfg = cfg.withDefaults()
	seq := lcg.New(cfg.Seed)

	prices := [3]int{10000, 10000, 10000}

	var res ArbResult
	for i := 0; i < cfg.NumUpdates; i++ {
		for v := range prices {
			prices[v] += int(seq.Next()%200) - 100
		}

		minPrice, maxPrice := prices[0], prices[0]
		for _, p := range prices[1:] {
			if p < minPrice {
				minPrice = p
			}
			if p > maxPrice {
				maxPrice = p
			}
		}

		if spread := maxPrice - minPrice; spread > spreadThreshold {
			res.Opportunities++
			res.TotalProfit += int64(spread - transactionCost)
		}
	}

	res.FinalPrices = prices
	return res
}
