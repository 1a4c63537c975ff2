// Package hft implements the high-frequency-trading simulation benchmark: a
// synthetic order book event stream driven through a per-event cost model, and
// an arbitrage scanner random-walking quotes across three venues. All
// randomness comes from pkg/lcg so runs are bit-for-bit reproducible.
package hft

// EventType identifies the synthetic market event classes.
type EventType int

const (
	Buy EventType = iota + 1
	Sell
	TradeExec
	Cancel
)

// MarketEvent is an ephemeral synthetic event. Timestamp is microseconds since
// the start of the simulated session; the cost model does not consume it.
type MarketEvent struct {
	Type      EventType
	Price     int
	Quantity  int
	Timestamp int64
}

// ProcessEvent runs the per-event cost/risk model and returns the total cost:
// processing latency in microseconds plus a scaled risk charge.
func ProcessEvent(ev MarketEvent) float64 {
	processedPrice := float64(ev.Price)
	processedQty := ev.Quantity
	latency := 0.0

	switch ev.Type {
	case Buy:
		processedPrice = float64(ev.Price) * 1.0001
		latency = 5
	case Sell:
		processedPrice = float64(ev.Price) * 0.9999
		latency = 5
	case TradeExec:
		// Trades keep price and quantity untouched; latency scales with size
		// above the 1000-share threshold.
		if ev.Quantity > 1000 {
			latency += float64(ev.Quantity) / 1000 * 2
		} else {
			latency = 3
		}
	case Cancel:
		latency = 2
		processedPrice = 0
		processedQty = 0
	default:
		// Generated events are always in [Buy, Cancel]; anything else costs
		// nothing beyond the risk charge.
	}

	riskScore := 0.0
	if processedPrice > 1000 {
		riskScore = (processedPrice - 1000) / 10
	}
	if processedQty > 10000 {
		riskScore += float64(processedQty) / 1000
	}

	return latency + riskScore/100
}
