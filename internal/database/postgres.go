package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// pgxpoolNew 建立連線池，測試可覆寫此變數。
var pgxpoolNew = pgxpool.New

// NewPgxPool opens a lazy connection pool. The pool itself never dials
// until first use, so this succeeds even while the database is still
// starting; the bootstrap sequencer owns the actual readiness check.
func NewPgxPool(ctx context.Context, url string) (DB, error) {
	pool, err := pgxpoolNew(ctx, url)
	if err != nil {
		return nil, err
	}
	return pool, nil
}
