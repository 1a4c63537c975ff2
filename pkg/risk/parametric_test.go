package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParametricVaRGolden(t *testing.T) {
	p := DefaultPortfolio()

	assert.InDelta(t, 0.014198929561570636, ParametricVaR(p, 95), 1e-12)
	assert.InDelta(t, 0.020077027453017204, ParametricVaR(p, 99), 1e-12)
}

func TestParametricVaRConfidenceBuckets(t *testing.T) {
	p := DefaultPortfolio()

	// 98 sits in the lower bucket; only strictly greater levels use z=2.326.
	low := ParametricVaR(p, 98)
	high := ParametricVaR(p, 99)

	assert.Equal(t, ParametricVaR(p, 95), low)
	assert.Equal(t, ParametricVaR(p, 96), low)
	assert.Equal(t, ParametricVaR(p, 97), low)
	assert.Greater(t, high, low)
	assert.InDelta(t, 2.326/1.645, high/low, 1e-12)
}

func BenchmarkParametricVaR(b *testing.B) {
	p := DefaultPortfolio()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ParametricVaR(p, 95+i%5)
	}
}
