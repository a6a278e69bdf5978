package engine

import "github.com/orderbook-engine/clob/internal/book"

// CommandType discriminates the requests a Runner accepts over its
// command channel.
type CommandType int

const (
	CmdPlaceLimit CommandType = iota
	CmdPlaceMarket
	CmdCancel
)

// PlaceLimitCommand carries the arguments for AddLimitOrder.
type PlaceLimitCommand struct {
	ID    uint64
	Side  book.Side
	Price int64
	Qty   uint64
}

// PlaceMarketCommand carries the arguments for AddMarketOrder.
type PlaceMarketCommand struct {
	ID   uint64
	Side book.Side
	Qty  uint64
}

// Command is a single request on the engine's command queue. Exactly
// one of Limit/Market/CancelID is populated, selected by Type. Resp
// receives exactly one value and is then never written to again.
type Command struct {
	Type     CommandType
	Limit    PlaceLimitCommand
	Market   PlaceMarketCommand
	CancelID uint64
	Resp     chan Result
}

// Result is the response delivered on a Command's Resp channel.
type Result struct {
	Rested  bool   // CmdPlaceLimit: true if a remainder rested
	Filled  uint64 // CmdPlaceMarket: quantity filled
	Existed bool   // CmdCancel: true if the id existed and was removed
	Err     error
}
