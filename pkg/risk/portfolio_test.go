package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPortfolio(t *testing.T) {
	p := DefaultPortfolio()

	var weightSum float64
	for _, w := range p.Weights {
		weightSum += w
	}
	assert.InDelta(t, 1.0, weightSum, 1e-12)

	for i := 0; i < 3; i++ {
		assert.Equal(t, 1.0, p.Corr[i][i])
		for j := 0; j < 3; j++ {
			assert.Equal(t, p.Corr[i][j], p.Corr[j][i])
		}
	}
}

func TestPortfolioStatistics(t *testing.T) {
	p := DefaultPortfolio()

	assert.InDelta(t, 0.091, p.ExpectedReturn(), 1e-12)
	assert.InDelta(t, 0.018775000000000007, p.Variance(), 1e-15)
	assert.InDelta(t, 0.13702189606044723, p.Volatility(), 1e-12)
}

func TestVarianceUncorrelated(t *testing.T) {
	// With an identity correlation matrix the bilinear form collapses to the
	// diagonal sum of squared weighted vols.
	p := DefaultPortfolio()
	p.Corr = [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

	var want float64
	for i := range p.Weights {
		want += p.Weights[i] * p.Weights[i] * p.Vols[i] * p.Vols[i]
	}
	assert.InDelta(t, want, p.Variance(), 1e-15)
}
