package db

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/orderbook-engine/clob/db/sqlc"
	"github.com/orderbook-engine/clob/internal/engine"
)

// TradePersister implements engine.TradeListener by writing each trade
// to the trades table. It is the one out-of-core adapter exercising
// the listener contract; it never feeds anything back into the book.
type TradePersister struct {
	queries *sqlc.Queries
	logger  *slog.Logger
}

// NewTradePersister builds a TradePersister backed by pool. A nil
// logger falls back to slog.Default().
func NewTradePersister(pool *pgxpool.Pool, logger *slog.Logger) *TradePersister {
	if logger == nil {
		logger = slog.Default()
	}
	return &TradePersister{queries: sqlc.New(pool), logger: logger}
}

// OnTrade persists t. Failures are logged, not returned: the listener
// contract is fire-and-forget, so a write failure degrades the trade
// tape, not the book.
func (p *TradePersister) OnTrade(t engine.Trade) {
	id, err := uuid.NewRandom()
	if err != nil {
		p.logger.Error("trade persister: generating trade id", "err", err)
		return
	}

	ctx := context.Background()
	err = p.queries.InsertTrade(ctx, sqlc.InsertTradeParams{
		ID:          pgtype.UUID{Bytes: id, Valid: true},
		BuyOrderID:  int64(t.BuyID),
		SellOrderID: int64(t.SellID),
		Price:       t.Price,
		Quantity:    int64(t.Quantity),
		TradedAt:    pgtype.Timestamptz{Time: t.Timestamp, Valid: true},
	})
	if err != nil {
		p.logger.Error("trade persister: insert failed",
			"buy_id", t.BuyID, "sell_id", t.SellID, "err", err)
	}
}
