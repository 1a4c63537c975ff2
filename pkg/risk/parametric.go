package risk

import "math"

// The parametric model only distinguishes two confidence buckets.
const (
	zScore95 = 1.645
	zScore99 = 2.326
)

// ParametricVaR computes closed-form one-day VaR under a normal-returns
// assumption. Confidence levels of 98 and below use the 95% z-score; only
// levels strictly above 98 use the 99% one.
func ParametricVaR(p Portfolio, confidence int) float64 {
	z := zScore95
	if confidence > 98 {
		z = zScore99
	}

	dailyVol := p.Volatility() / math.Sqrt(TradingDays)
	return z * dailyVol
}
