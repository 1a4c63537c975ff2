package risk

import (
	"math"
	"math/rand"
)

// MonteCarloVaR estimates the average loss across loss scenarios over trials
// simulated one-day returns on the given notional. Per trial it draws one
// standard-normal variate per asset, in asset order, and synthesizes a daily
// return mu/252 + sigma/sqrt(252)*z before combining with the portfolio
// weights. Returns 0 when no trial produced a loss.
//
// The generator is threaded explicitly and never re-seeded here, so a whole
// benchmark run is reproducible from one top-level seed while successive calls
// keep consuming fresh draws.
func MonteCarloVaR(p Portfolio, rng *rand.Rand, trials int, notional float64) float64 {
	avg, _ := monteCarlo(p, rng, trials, notional)
	return avg
}

// monteCarlo also reports how many trials ended in a loss.
func monteCarlo(p Portfolio, rng *rand.Rand, trials int, notional float64) (float64, int) {
	sqrtDays := math.Sqrt(TradingDays)

	var worstLosses float64
	var lossScenarios int

	for t := 0; t < trials; t++ {
		var dailyReturn float64
		for i := range p.Weights {
			z := rng.NormFloat64()
			dailyReturn += p.Weights[i] * (p.Returns[i]/TradingDays + p.Vols[i]/sqrtDays*z)
		}

		if dailyReturn < 0 {
			worstLosses += math.Abs(dailyReturn * notional)
			lossScenarios++
		}
	}

	if lossScenarios == 0 {
		return 0, 0
	}
	return worstLosses / float64(lossScenarios), lossScenarios
}
