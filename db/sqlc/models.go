// Hand-written in the style sqlc would generate from db/migrations
// (models.go/queries.go split, one struct per row type).
package sqlc

import (
	"github.com/jackc/pgx/v5/pgtype"
)

// Trade is one row of the append-only trade tape, a durability record
// of a fill the matching engine already executed in memory. This table
// is never read back into the book.
type Trade struct {
	ID          pgtype.UUID
	BuyOrderID  int64
	SellOrderID int64
	Price       int64
	Quantity    int64
	TradedAt    pgtype.Timestamptz
}
