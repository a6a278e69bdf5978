// Package engine implements a price-time priority matching engine.
// It is a synchronous, single-writer state machine; see loop.go for
// the command-queue wrapper that serializes concurrent callers onto
// one goroutine.
package engine

import (
	"fmt"
	"time"

	"github.com/orderbook-engine/clob/internal/book"
	"github.com/orderbook-engine/clob/internal/metrics"
)

// Engine owns the two-sided ladder and the order-id index. It holds no
// lock; concurrent callers must serialize externally, typically via the
// Runner in loop.go.
type Engine struct {
	bids *book.Ladder
	asks *book.Ladder

	orders map[uint64]*book.Order

	listener TradeListener
	recorder *metrics.Recorder
	observer Observer // optional fan-out, nil unless WithObserver is used
}

type Option func(*Engine)

func WithObserver(o Observer) Option {
	return func(e *Engine) { e.observer = o }
}

func WithTradeListener(l TradeListener) Option {
	return func(e *Engine) { e.listener = l }
}

func New(opts ...Option) *Engine {
	e := &Engine{
		bids:     book.NewBidLadder(),
		asks:     book.NewAskLadder(),
		orders:   make(map[uint64]*book.Order),
		recorder: metrics.NewRecorder(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) SetTradeListener(l TradeListener) {
	e.listener = l
}

// AddLimitOrder returns true if any remainder rested in the book, false
// if the order was fully consumed by matching.
func (e *Engine) AddLimitOrder(id uint64, side book.Side, price int64, qty uint64) (bool, error) {
	defer e.timeAdd(time.Now())

	if qty == 0 {
		return false, fmt.Errorf("%w: qty must be positive, got %d", book.ErrInvalidQuantity, qty)
	}
	if price <= 0 {
		return false, fmt.Errorf("%w: price must be positive, got %d", book.ErrInvalidPrice, price)
	}
	if _, exists := e.orders[id]; exists {
		return false, fmt.Errorf("%w: id=%d", book.ErrDuplicateOrderID, id)
	}

	order := book.NewLimitOrder(id, side, price, qty)
	e.orders[id] = order

	e.matchAgainst(order)

	if order.IsFilled() {
		delete(e.orders, id)
		return false, nil
	}

	lvl := e.sideLadder(side).EntryOrCreate(price)
	lvl.PushBack(order)
	return true, nil
}

// AddMarketOrder returns the quantity filled, in [0, qty]. Any unfilled
// remainder is discarded; the order never rests.
func (e *Engine) AddMarketOrder(id uint64, side book.Side, qty uint64) (uint64, error) {
	defer e.timeAdd(time.Now())

	if qty == 0 {
		return 0, fmt.Errorf("%w: qty must be positive, got %d", book.ErrInvalidQuantity, qty)
	}
	if _, exists := e.orders[id]; exists {
		return 0, fmt.Errorf("%w: id=%d", book.ErrDuplicateOrderID, id)
	}

	order := book.NewMarketOrder(id, side, qty)
	e.orders[id] = order

	filled := e.matchAgainst(order)

	delete(e.orders, id)
	return filled, nil
}

// CancelOrder returns false for unknown ids; that is not an error
// condition.
func (e *Engine) CancelOrder(id uint64) bool {
	defer e.timeCancel(time.Now())

	order, exists := e.orders[id]
	if !exists {
		return false
	}

	ladder := e.sideLadder(order.Side)
	if lvl, ok := ladder.Find(order.Price); ok {
		lvl.PopFrontOrRemove(order)
		if lvl.Empty() {
			ladder.EraseEmpty(order.Price)
		}
	}
	delete(e.orders, id)
	return true
}

// matchAgainst runs incoming against the ladder on the opposite side,
// emitting a trade per fill, and times itself independently of the
// enclosing Add*Order call.
func (e *Engine) matchAgainst(incoming *book.Order) uint64 {
	start := time.Now()
	var filled uint64

	opposite := e.oppositeLadder(incoming.Side)

	for incoming.Remaining > 0 {
		lvl, ok := opposite.PeekBest()
		if !ok {
			break
		}
		if incoming.Kind == book.Limit && !crosses(incoming, lvl.Price) {
			break
		}

		for incoming.Remaining > 0 && !lvl.Empty() {
			resting := lvl.Front()
			tradeQty := min(incoming.Remaining, resting.Remaining)
			tradePrice := resting.Price // resting-order price rule
			buyID, sellID := tradeSides(incoming, resting)

			incoming.Reduce(tradeQty)
			lvl.Fill(resting, tradeQty)
			filled += tradeQty

			if resting.IsFilled() {
				delete(e.orders, resting.ID)
			}

			if e.listener != nil {
				e.listener.OnTrade(Trade{
					BuyID:     buyID,
					SellID:    sellID,
					Price:     tradePrice,
					Quantity:  tradeQty,
					Timestamp: time.Now(),
				})
			}
		}

		if lvl.Empty() {
			opposite.EraseEmpty(lvl.Price)
		}
	}

	if filled > 0 {
		ns := time.Since(start).Nanoseconds()
		e.recorder.RecordMatch(ns, filled)
		if e.observer != nil {
			e.observer.RecordMatch(ns, filled)
		}
	}
	return filled
}

// crosses reports whether a limit incoming order crosses the best
// opposite price.
func crosses(incoming *book.Order, bestOpposite int64) bool {
	if incoming.Side == book.Buy {
		return incoming.Price >= bestOpposite
	}
	return incoming.Price <= bestOpposite
}

func tradeSides(incoming, resting *book.Order) (buyID, sellID uint64) {
	if incoming.Side == book.Buy {
		return incoming.ID, resting.ID
	}
	return resting.ID, incoming.ID
}

func (e *Engine) sideLadder(side book.Side) *book.Ladder {
	if side == book.Buy {
		return e.bids
	}
	return e.asks
}

func (e *Engine) oppositeLadder(side book.Side) *book.Ladder {
	if side == book.Buy {
		return e.asks
	}
	return e.bids
}

func (e *Engine) timeAdd(start time.Time) {
	ns := time.Since(start).Nanoseconds()
	e.recorder.RecordAdd(ns)
	if e.observer != nil {
		e.observer.RecordAdd(ns)
	}
}

func (e *Engine) timeCancel(start time.Time) {
	ns := time.Since(start).Nanoseconds()
	e.recorder.RecordCancel(ns)
	if e.observer != nil {
		e.observer.RecordCancel(ns)
	}
}

func min(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}
