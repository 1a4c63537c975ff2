// Package risk implements the portfolio risk benchmark: a closed-form
// parametric one-day Value-at-Risk and a Monte Carlo average-extreme-loss
// estimate for a fixed three-asset book, combined into one score.
package risk

import "math"

// TradingDays is the annualization horizon for daily risk figures.
const TradingDays = 252

// Portfolio is a three-asset book with fixed weights, annualized expected
// returns and volatilities, and a correlation matrix. Weights are assumed to
// sum to 1 and Corr to be symmetric with unit diagonal; neither is validated.
type Portfolio struct {
	Weights [3]float64
	Returns [3]float64
	Vols    [3]float64
	Corr    [3][3]float64
}

// DefaultPortfolio returns the reference 50/30/20 stock/bond/commodity book.
func DefaultPortfolio() Portfolio {
	return Portfolio{
		Weights: [3]float64{0.5, 0.3, 0.2},
		Returns: [3]float64{0.12, 0.05, 0.08},
		Vols:    [3]float64{0.20, 0.05, 0.25},
		Corr: [3][3]float64{
			{1.0, 0.3, 0.5},
			{0.3, 1.0, 0.1},
			{0.5, 0.1, 1.0},
		},
	}
}

// ExpectedReturn is the weighted annual return of the book.
func (p Portfolio) ExpectedReturn() float64 {
	var r float64
	for i := range p.Weights {
		r += p.Weights[i] * p.Returns[i]
	}
	return r
}

// Variance is the full bilinear form w_i w_j sigma_i sigma_j rho_ij over the
// 3x3 grid, accumulated row-major.
func (p Portfolio) Variance() float64 {
	var v float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v += p.Weights[i] * p.Weights[j] * p.Vols[i] * p.Vols[j] * p.Corr[i][j]
		}
	}
	return v
}

// Volatility is the annualized portfolio volatility.
func (p Portfolio) Volatility() float64 {
	return math.Sqrt(p.Variance())
}
