package idemrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/stagepass/stagepass/internal/pg"
)

// Repository is the idempotency-key table: a retried CreatePaymentLink
// with the same key returns the originally created order instead of
// re-deriving a new one.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

// Get returns the order id stored under the key, or "" when the key is
// unknown or past its TTL.
func (r *Repository) Get(ctx context.Context, key string) (string, error) {
	query := `
        SELECT order_id
        FROM idempotency_keys
        WHERE key = $1 AND expires_at > now()
    `
	var orderID string
	err := r.db.QueryRow(ctx, query, key).Scan(&orderID)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		zap.L().Error("can't look up idempotency key", zap.Error(err))
		return "", err
	}
	return orderID, nil
}

// Put stores the outcome for a key. A concurrent writer wins silently;
// both writers stored the same outcome by construction of the key.
func (r *Repository) Put(ctx context.Context, key, orderID string, ttlSeconds int64) error {
	query := `
        INSERT INTO idempotency_keys (key, order_id, expires_at)
        VALUES ($1, $2, now() + make_interval(secs => $3))
        ON CONFLICT (key) DO NOTHING
    `
	if _, err := r.db.Exec(ctx, query, key, orderID, ttlSeconds); err != nil {
		zap.L().Error("can't store idempotency key", zap.Error(err))
		return err
	}
	return nil
}

// PurgeExpired drops stale keys; called from the expiry sweep cycle.
func (r *Repository) PurgeExpired(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM idempotency_keys WHERE expires_at <= now()`)
	if err != nil {
		zap.L().Error("can't purge idempotency keys", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
