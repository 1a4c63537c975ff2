package hft

import "github.com/quantlabs/quantbench/pkg/lcg"

// Reference workload parameters. Zero-valued config fields fall back to these
// so a default run reproduces the golden scores.
const (
	DefaultNumEvents = 100000
	DefaultSimSeed   = 12345
)

// SimConfig parameterizes the order book simulation.
type SimConfig struct {
	NumEvents int
	Seed      uint32
}

func (c SimConfig) withDefaults() SimConfig {
	if c.NumEvents <= 0 {
		c.NumEvents = DefaultNumEvents
	}
	if c.Seed == 0 {
		c.Seed = DefaultSimSeed
	}
	return c
}

// SimResult aggregates the simulated event stream.
type SimResult struct {
	NumEvents    int
	AvgLatency   float64
	TotalLatency float64
	TotalTrades  int64
	TotalVolume  int64
	Throughput   float64 // events per millisecond of simulated latency budget
}

// SimulateOrderBook drives NumEvents synthetic market events through the cost
// model. Per event it draws type, price and quantity from the generator in
// that order; the timestamp is i*10 and never drawn.
func SimulateOrderBook(cfg SimConfig) SimResult {
	cfg = cfg.withDefaults()
	seq := lcg.New(cfg.Seed)

	res := SimResult{NumEvents: cfg.NumEvents}
	for i := 0; i < cfg.NumEvents; i++ {
		eventType := EventType(seq.Next()%4 + 1)
		price := 10000 + int(seq.Next()%1000) - 500
		quantity := 100 + int(seq.Next()%9900)

		ev := MarketEvent{
			Type:      eventType,
			Price:     price,
			Quantity:  quantity,
			Timestamp: int64(i) * 10,
		}

		res.TotalLatency += ProcessEvent(ev)

		if eventType == TradeExec {
			res.TotalTrades++
			res.TotalVolume += int64(quantity)
		}
	}

	res.AvgLatency = res.TotalLatency / float64(cfg.NumEvents)
	res.Throughput = float64(cfg.NumEvents) / (res.TotalLatency / 1000)
	return res
}
