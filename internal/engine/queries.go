package engine

import (
	"github.com/orderbook-engine/clob/internal/book"
	"github.com/orderbook-engine/clob/internal/metrics"
)

func (e *Engine) BestBid() (int64, bool) {
	lvl, ok := e.bids.PeekBest()
	if !ok {
		return 0, false
	}
	return lvl.Price, true
}

func (e *Engine) BestAsk() (int64, bool) {
	lvl, ok := e.asks.PeekBest()
	if !ok {
		return 0, false
	}
	return lvl.Price, true
}

// Spread returns best_ask - best_bid, or (0, false) if either side is
// empty.
func (e *Engine) Spread() (int64, bool) {
	bid, ok := e.BestBid()
	if !ok {
		return 0, false
	}
	ask, ok := e.BestAsk()
	if !ok {
		return 0, false
	}
	return ask - bid, true
}

func (e *Engine) BidVolume(price int64) uint64 {
	lvl, ok := e.bids.Find(price)
	if !ok {
		return 0
	}
	return lvl.TotalVolume()
}

func (e *Engine) AskVolume(price int64) uint64 {
	lvl, ok := e.asks.Find(price)
	if !ok {
		return 0
	}
	return lvl.TotalVolume()
}

func (e *Engine) BidDepth() int { return e.bids.Depth() }

func (e *Engine) AskDepth() int { return e.asks.Depth() }

func (e *Engine) TotalOrders() int { return len(e.orders) }

// Metrics returns a point-in-time snapshot of the engine's counters and
// latency percentiles.
func (e *Engine) Metrics() metrics.Snapshot { return e.recorder.View() }

// MetricsSummary renders the metrics snapshot as a human-readable
// report, for the demo CLI and the server's /metrics endpoint.
func (e *Engine) MetricsSummary() string { return e.recorder.Summary() }

// PriceLevelView is a read-only, by-value projection of one price
// level, for depth snapshots (bid/ask ladders beyond just the best
// price).
type PriceLevelView struct {
	Price  int64
	Volume uint64
	Orders int
}

func (e *Engine) BidLevels(n int) []PriceLevelView {
	return levelViews(e.bids.Levels(n))
}

// AskLevels returns up to n ask levels, best price first.
func (e *Engine) AskLevels(n int) []PriceLevelView {
	return levelViews(e.asks.Levels(n))
}

func levelViews(levels []*book.Level) []PriceLevelView {
	out := make([]PriceLevelView, len(levels))
	for i, lvl := range levels {
		out[i] = PriceLevelView{Price: lvl.Price, Volume: lvl.TotalVolume(), Orders: lvl.OrderCount()}
	}
	return out
}
