// A scripted walkthrough of the matching engine: build a book, cross it
// with an aggressive order, fill a market order, cancel a resting order,
// and print the metrics summary. Not a reusable tool, just a demo.
package main

import (
	"fmt"

	"github.com/orderbook-engine/clob/internal/book"
	"github.com/orderbook-engine/clob/internal/engine"
)

type printingListener struct{}

func (printingListener) OnTrade(t engine.Trade) {
	fmt.Printf("TRADE  buy=%d sell=%d price=$%.2f qty=%d\n",
		t.BuyID, t.SellID, float64(t.Price)/100, t.Quantity)
}

func printState(label string, e *engine.Engine) {
	fmt.Printf("\n--- %s ---\n", label)
	if bid, ok := e.BestBid(); ok {
		fmt.Printf("Best Bid: $%.2f\n", float64(bid)/100)
	} else {
		fmt.Println("Best Bid: -")
	}
	if ask, ok := e.BestAsk(); ok {
		fmt.Printf("Best Ask: $%.2f\n", float64(ask)/100)
	} else {
		fmt.Println("Best Ask: -")
	}
	if spread, ok := e.Spread(); ok {
		fmt.Printf("Spread: $%.2f\n", float64(spread)/100)
	}
	fmt.Printf("Bid Depth: %d levels\n", e.BidDepth())
	fmt.Printf("Ask Depth: %d levels\n", e.AskDepth())
	fmt.Printf("Total Orders: %d\n", e.TotalOrders())
}

func main() {
	fmt.Println("=== Order Book Walkthrough ===")

	e := engine.New(engine.WithTradeListener(printingListener{}))

	fmt.Println("\n=== Scenario 1: Building Order Book ===")
	mustAddLimit(e, 1, book.Buy, 10000, 100)
	mustAddLimit(e, 2, book.Buy, 9950, 150)
	mustAddLimit(e, 3, book.Buy, 9900, 200)
	mustAddLimit(e, 4, book.Sell, 10050, 100)
	mustAddLimit(e, 5, book.Sell, 10100, 150)
	mustAddLimit(e, 6, book.Sell, 10150, 200)
	printState("After building the book", e)

	fmt.Println("\n=== Scenario 2: Aggressive Buy Order ===")
	fmt.Println("Adding buy order at $101.00 for 250 shares")
	mustAddLimit(e, 7, book.Buy, 10100, 250)
	printState("After the aggressive cross", e)

	fmt.Println("\n=== Scenario 3: Market Order ===")
	filled, err := e.AddMarketOrder(8, book.Sell, 50)
	if err != nil {
		panic(err)
	}
	fmt.Printf("Market order filled: %d shares\n", filled)
	printState("After the market order", e)

	fmt.Println("\n=== Scenario 4: Order Cancellation ===")
	if e.CancelOrder(3) {
		fmt.Println("Order 3 cancelled successfully")
	}
	printState("After cancellation", e)

	fmt.Println("\n=== Metrics ===")
	fmt.Println(e.MetricsSummary())
}

func mustAddLimit(e *engine.Engine, id uint64, side book.Side, price int64, qty uint64) {
	if _, err := e.AddLimitOrder(id, side, price, qty); err != nil {
		panic(err)
	}
}
