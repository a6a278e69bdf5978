package sqlc

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// DBTX is satisfied by both *pgxpool.Pool and pgx.Tx, so a Queries can
// be used directly against the pool or wrapped in a transaction via
// WithTx, following the sqlc pattern.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// WithTx returns a Queries bound to tx instead of the pool, so callers
// can batch several inserts into one commit.
func (q *Queries) WithTx(tx pgx.Tx) *Queries {
	return &Queries{db: tx}
}

const insertTrade = `
INSERT INTO trades (id, buy_order_id, sell_order_id, price, quantity, traded_at)
VALUES ($1, $2, $3, $4, $5, $6)
`

type InsertTradeParams struct {
	ID          pgtype.UUID
	BuyOrderID  int64
	SellOrderID int64
	Price       int64
	Quantity    int64
	TradedAt    pgtype.Timestamptz
}

func (q *Queries) InsertTrade(ctx context.Context, arg InsertTradeParams) error {
	_, err := q.db.Exec(ctx, insertTrade,
		arg.ID, arg.BuyOrderID, arg.SellOrderID, arg.Price, arg.Quantity, arg.TradedAt)
	return err
}

const listTradesByOrder = `
SELECT id, buy_order_id, sell_order_id, price, quantity, traded_at
FROM trades
WHERE buy_order_id = $1 OR sell_order_id = $1
ORDER BY traded_at ASC
`

func (q *Queries) ListTradesByOrder(ctx context.Context, orderID int64) ([]Trade, error) {
	rows, err := q.db.Query(ctx, listTradesByOrder, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Trade
	for rows.Next() {
		var t Trade
		if err := rows.Scan(&t.ID, &t.BuyOrderID, &t.SellOrderID, &t.Price, &t.Quantity, &t.TradedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

const listRecentTrades = `
SELECT id, buy_order_id, sell_order_id, price, quantity, traded_at
FROM trades
ORDER BY traded_at DESC
LIMIT $1
`

func (q *Queries) ListRecentTrades(ctx context.Context, limit int32) ([]Trade, error) {
	rows, err := q.db.Query(ctx, listRecentTrades, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Trade
	for rows.Next() {
		var t Trade
		if err := rows.Scan(&t.ID, &t.BuyOrderID, &t.SellOrderID, &t.Price, &t.Quantity, &t.TradedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
