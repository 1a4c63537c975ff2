package hft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Golden values for the reference workload (50000 updates, seed 54321),
// captured from a reference run. The three walks drift far apart, so every
// iteration past the early ones clears the spread threshold.
func TestScanArbitrageGolden(t *testing.T) {
	res := ScanArbitrage(ArbConfig{})

	assert.Equal(t, 50000, res.Opportunities)
	assert.Equal(t, int64(1407180530), res.TotalProfit)
	assert.Equal(t, [3]int{-32264, 9344, -35296}, res.FinalPrices)
}

func TestScanArbitrageDeterministic(t *testing.T) {
	a := ScanArbitrage(ArbConfig{NumUpdates: 2000, Seed: 123})
	b := ScanArbitrage(ArbConfig{NumUpdates: 2000, Seed: 123})
	require.Equal(t, a, b)
}

func TestScanArbitrageProfitBounds(t *testing.T) {
	res := ScanArbitrage(ArbConfig{NumUpdates: 2000, Seed: 123})

	// Each opportunity books spread-10 with spread > 50, so profit exceeds
	// 40 ticks per opportunity.
	assert.GreaterOrEqual(t, res.TotalProfit, int64(res.Opportunities)*41)
	assert.LessOrEqual(t, res.Opportunities, 2000)
}

func BenchmarkScanArbitrage(b *testing.B) {
	cfg := ArbConfig{NumUpdates: 10000, Seed: 54321}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ScanArbitrage(cfg)
	}
}
