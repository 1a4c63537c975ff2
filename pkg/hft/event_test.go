package hft

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcessEvent(t *testing.T) {
	tests := []struct {
		name string
		ev   MarketEvent
		want float64
	}{
		{"Buy", MarketEvent{Type: Buy, Price: 10000, Quantity: 500}, 14.001},
		{"Sell", MarketEvent{Type: Sell, Price: 10000, Quantity: 500}, 13.999},
		{"SmallTrade", MarketEvent{Type: TradeExec, Price: 10000, Quantity: 500}, 12.0},
		{"LargeTrade", MarketEvent{Type: TradeExec, Price: 10000, Quantity: 5000}, 19.0},
		{"OversizedTrade", MarketEvent{Type: TradeExec, Price: 10000, Quantity: 12000}, 33.12},
		{"Cancel", MarketEvent{Type: Cancel, Price: 10000, Quantity: 500}, 2.0},
		{"UnknownType", MarketEvent{Type: EventType(5), Price: 10000, Quantity: 500}, 9.0},
		{"BuyBelowRiskFloor", MarketEvent{Type: Buy, Price: 900, Quantity: 100}, 5.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ProcessEvent(tt.ev), 1e-9)
		})
	}
}

func TestProcessEventTradeLatencyBoundary(t *testing.T) {
	// Exactly 1000 shares is still the flat 3µs path.
	at := ProcessEvent(MarketEvent{Type: TradeExec, Price: 10000, Quantity: 1000})
	above := ProcessEvent(MarketEvent{Type: TradeExec, Price: 10000, Quantity: 1001})

	assert.InDelta(t, 3.0+900.0/100, at, 1e-9)
	assert.InDelta(t, 1.001*2+900.0/100, above, 1e-9)
}

func TestProcessEventCancelZeroesRisk(t *testing.T) {
	// Cancel forces price and quantity to zero, so no risk charge applies.
	got := ProcessEvent(MarketEvent{Type: Cancel, Price: 99999, Quantity: 99999})
	assert.Equal(t, 2.0, got)
}

func BenchmarkProcessEvent(b *testing.B) {
	ev := MarketEvent{Type: TradeExec, Price: 10000, Quantity: 5000}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ProcessEvent(ev)
	}
}
