package engine

import (
	"testing"

	"github.com/orderbook-engine/clob/internal/book"
)

// BenchmarkAddLimitOrder measures the cost of resting a non-crossing
// limit order: ladder insertion plus id-index bookkeeping, no matching.
func BenchmarkAddLimitOrder(b *testing.B) {
	e := New()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		price := int64(10000 + i%500)
		if _, err := e.AddLimitOrder(uint64(i), book.Buy, price, 10); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkMatchAgainst measures the matching loop's hot path: each
// iteration rests a sell, then crosses it with a buy for an immediate
// full fill, so every call does real level traversal and retirement
// rather than hitting an empty opposite ladder.
func BenchmarkMatchAgainst(b *testing.B) {
	e := New()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sellID := uint64(2 * i)
		buyID := uint64(2*i + 1)
		if _, err := e.AddLimitOrder(sellID, book.Sell, 10000, 10); err != nil {
			b.Fatal(err)
		}
		if _, err := e.AddLimitOrder(buyID, book.Buy, 10000, 10); err != nil {
			b.Fatal(err)
		}
	}
}
