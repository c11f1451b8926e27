package rewardrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/stagepass/stagepass/internal/domain"
	"github.com/stagepass/stagepass/internal/pg"
)

const uniqueViolation = "23505"

// A pending debit already holds funds, so it counts as redeemed until it
// is settled or cancelled.
const balanceQuery = `
        SELECT
            COALESCE(SUM(points) FILTER (WHERE type = 'credit' AND status = 'completed'), 0) AS lifetime_earned,
            COALESCE(SUM(points) FILTER (WHERE type = 'debit' AND status IN ('pending', 'completed')), 0) AS lifetime_redeemed
        FROM reward_transactions
        WHERE user_id = $1
    `

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// InsertCredit appends a completed credit row. A duplicate
// (user, reference, type) maps to domain.ErrDuplicateTransaction so
// webhook replays stay no-ops.
func (r *Repository) InsertCredit(ctx context.Context, tx *domain.RewardTransaction) error {
	query := `
        INSERT INTO reward_transactions (transaction_id, user_id, type, points, source, status, reference_id, created_at, processed_at)
        VALUES ($1, $2, 'credit', $3, $4, $5, $6, $7, $8)
    `
	_, err := r.db.Exec(ctx, query,
		tx.TransactionID, tx.UserID, tx.Points, tx.Source, tx.Status, tx.ReferenceID, tx.CreatedAt, tx.ProcessedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrDuplicateTransaction
		}
		zap.L().Error("can't insert credit transaction", zap.Error(err))
		return err
	}
	return nil
}

// InsertDebit appends a debit row, rejecting it when the available balance
// would go negative. The per-user advisory lock serializes concurrent
// debits so two requests can never both pass the balance check.
func (r *Repository) InsertDebit(ctx context.Context, tx *domain.RewardTransaction) error {
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, tx.UserID); err != nil {
			zap.L().Error("can't take user ledger lock", zap.Error(err))
			return err
		}

		balance, err := r.getBalance(ctx, tx.UserID)
		if err != nil {
			return err
		}
		if balance.AvailableBalance < tx.Points {
			return domain.ErrInsufficientBalance
		}

		query := `
        INSERT INTO reward_transactions (transaction_id, user_id, type, points, source, status, reference_id, created_at)
        VALUES ($1, $2, 'debit', $3, $4, $5, $6, $7)
    `
		_, err = r.db.Exec(ctx, query,
			tx.TransactionID, tx.UserID, tx.Points, tx.Source, tx.Status, tx.ReferenceID, tx.CreatedAt,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				return domain.ErrDuplicateTransaction
			}
			zap.L().Error("can't insert debit transaction", zap.Error(err))
			return err
		}
		return nil
	})
}

func (r *Repository) GetBalance(ctx context.Context, userID string) (*domain.RewardBalance, error) {
	return r.getBalance(ctx, userID)
}

func (r *Repository) getBalance(ctx context.Context, userID string) (*domain.RewardBalance, error) {
	var balance domain.RewardBalance
	err := r.db.QueryRow(ctx, balanceQuery, userID).Scan(&balance.LifetimeEarned, &balance.LifetimeRedeemed)
	if err != nil {
		zap.L().Error("can't compute reward balance", zap.Error(err))
		return nil, err
	}
	balance.AvailableBalance = balance.LifetimeEarned - balance.LifetimeRedeemed
	return &balance, nil
}

func (r *Repository) FindByReference(ctx context.Context, userID, referenceID string, typ domain.RewardType) (*domain.RewardTransaction, error) {
	query := `
        SELECT transaction_id, user_id, type, points, source, status, reference_id, created_at, processed_at
        FROM reward_transactions
        WHERE user_id = $1 AND reference_id = $2 AND type = $3
    `
	row := r.db.QueryRow(ctx, query, userID, referenceID, typ)

	var tx domain.RewardTransaction
	err := row.Scan(&tx.TransactionID, &tx.UserID, &tx.Type, &tx.Points, &tx.Source, &tx.Status, &tx.ReferenceID, &tx.CreatedAt, &tx.ProcessedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find reward transaction", zap.Error(err))
		return nil, err
	}
	return &tx, nil
}

// SettleByReference flips a transaction's status (pending -> completed or
// pending -> cancelled during settlement). Rows are otherwise immutable.
func (r *Repository) SettleByReference(ctx context.Context, referenceID string, typ domain.RewardType, from, to domain.RewardStatus) (bool, error) {
	query := `
        UPDATE reward_transactions
        SET status = $4, processed_at = now()
        WHERE reference_id = $1 AND type = $2 AND status = $3
    `
	var applied bool
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, referenceID, typ, from, to)
		if err != nil {
			zap.L().Error("can't settle reward transaction", zap.Error(err))
			return err
		}
		applied = tag.RowsAffected() > 0
		return nil
	})
	return applied, err
}

func (r *Repository) ListByUserID(ctx context.Context, userID string) ([]domain.RewardTransaction, error) {
	query := `
        SELECT transaction_id, user_id, type, points, source, status, reference_id, created_at, processed_at
        FROM reward_transactions
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't list reward transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txs []domain.RewardTransaction
	for rows.Next() {
		var tx domain.RewardTransaction
		err := rows.Scan(&tx.TransactionID, &tx.UserID, &tx.Type, &tx.Points, &tx.Source, &tx.Status, &tx.ReferenceID, &tx.CreatedAt, &tx.ProcessedAt)
		if err != nil {
			zap.L().Error("can't scan reward transaction row", zap.Error(err))
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}
