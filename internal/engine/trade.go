package engine

import "time"

// Trade is the immutable record of a single fill, emitted synchronously
// to the registered TradeListener as the matching loop produces it.
// BuyID/SellID are taken from the orders by their side, independent of
// which side was the aggressor.
type Trade struct {
	BuyID     uint64
	SellID    uint64
	Price     int64
	Quantity  uint64
	Timestamp time.Time
}

// TradeListener observes trades as they happen. Implementations must
// treat the Trade as a value and must not call back into the engine
// that invoked them.
type TradeListener interface {
	OnTrade(Trade)
}
