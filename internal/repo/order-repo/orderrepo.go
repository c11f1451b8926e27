package orderrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/stagepass/stagepass/internal/domain"
	"github.com/stagepass/stagepass/internal/pg"
)

const uniqueViolation = "23505"

const orderColumns = `
        order_id, user_id, workshop_id, workshop_snapshot, user_name, user_phone,
        amount_minor, currency, status, payment_link_url, gateway_id, gateway_tx_id,
        qr_code_data, qr_generated_at, cashback_points, points_redeemed,
        discount_minor, final_amount_minor, paid_at, created_at, updated_at`

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

func (r *Repository) Save(ctx context.Context, order *domain.Order) error {
	snapshot, err := json.Marshal(order.Workshop)
	if err != nil {
		return fmt.Errorf("can't marshal workshop snapshot: %w", err)
	}

	query := `
        INSERT INTO orders (
            order_id, user_id, workshop_id, workshop_snapshot, user_name, user_phone,
            amount_minor, currency, status, payment_link_url, gateway_id,
            cashback_points, points_redeemed, discount_minor, final_amount_minor,
            created_at, updated_at
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $16)
    `
	err = r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query,
			order.OrderID, order.UserID, order.WorkshopID, snapshot, order.UserName, order.UserPhone,
			order.AmountMinor, order.Currency, order.Status, order.PaymentLinkURL, order.GatewayID,
			order.CashbackPoints, order.PointsRedeemed, order.DiscountMinor, order.FinalAmountMinor,
			order.CreatedAt,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				return domain.ErrDuplicateActiveOrder
			}
			zap.L().Error("can't save order", zap.Error(err))
			return err
		}
		return nil
	})
	return err
}

func (r *Repository) FindByID(ctx context.Context, orderID string) (*domain.Order, error) {
	query := `SELECT` + orderColumns + `
        FROM orders
        WHERE order_id = $1
    `
	return r.scanOrder(r.db.QueryRow(ctx, query, orderID))
}

// FindActiveOrder returns the single created (non-terminal) order for a
// (user, workshop) pair, if any.
func (r *Repository) FindActiveOrder(ctx context.Context, userID, workshopID string) (*domain.Order, error) {
	query := `SELECT` + orderColumns + `
        FROM orders
        WHERE user_id = $1 AND workshop_id = $2 AND status = 'created'
    `
	return r.scanOrder(r.db.QueryRow(ctx, query, userID, workshopID))
}

func (r *Repository) FindOrdersByUserID(ctx context.Context, userID string) ([]domain.Order, error) {
	query := `SELECT` + orderColumns + `
        FROM orders
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return r.collectOrders(rows)
}

// MarkPaid transitions created -> paid and stamps the gateway transaction.
// Returns false when the order was not in created state anymore.
func (r *Repository) MarkPaid(ctx context.Context, orderID, gatewayTxID string, paidAt time.Time) (bool, error) {
	query := `
        UPDATE orders
        SET status = 'paid', gateway_tx_id = $2, paid_at = $3, updated_at = now()
        WHERE order_id = $1 AND status = 'created'
    `
	var applied bool
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, orderID, gatewayTxID, paidAt)
		if err != nil {
			zap.L().Error("failed to mark order paid", zap.Error(err))
			return err
		}
		applied = tag.RowsAffected() > 0
		return nil
	})
	return applied, err
}

// Transition moves a created order into a terminal state (failed or
// cancelled). Returns false when the order already left created.
func (r *Repository) Transition(ctx context.Context, orderID string, to domain.OrderStatus) (bool, error) {
	if !domain.OrderStatusCreated.CanTransitionTo(to) {
		return false, fmt.Errorf("invalid order transition to %q", to)
	}
	query := `
        UPDATE orders
        SET status = $2, updated_at = now()
        WHERE order_id = $1 AND status = 'created'
    `
	var applied bool
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, orderID, to)
		if err != nil {
			zap.L().Error("failed to transition order", zap.Error(err))
			return err
		}
		applied = tag.RowsAffected() > 0
		return nil
	})
	return applied, err
}

// SweepExpired expires created orders older than the cutoff and returns
// them so pending redemption holds can be released. Terminal orders are
// never touched.
func (r *Repository) SweepExpired(ctx context.Context, cutoff time.Time) ([]domain.Order, error) {
	query := `
        UPDATE orders
        SET status = 'expired', updated_at = now()
        WHERE status = 'created' AND created_at < $1
        RETURNING order_id, user_id, points_redeemed
    `
	rows, err := r.db.Query(ctx, query, cutoff)
	if err != nil {
		zap.L().Error("can't sweep expired orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.OrderID, &order.UserID, &order.PointsRedeemed); err != nil {
			zap.L().Error("can't scan expired order row", zap.Error(err))
			return nil, err
		}
		order.Status = domain.OrderStatusExpired
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

// FindPaidWithoutQR lists paid orders that still need a QR code.
func (r *Repository) FindPaidWithoutQR(ctx context.Context, limit uint32) ([]domain.Order, error) {
	query := `SELECT` + orderColumns + `
        FROM orders
        WHERE status = 'paid' AND qr_code_data IS NULL
        ORDER BY paid_at ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't get orders pending QR issuance", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return r.collectOrders(rows)
}

// AttachQR persists the generated QR payload. The qr_code_data IS NULL
// guard is the atomic claim: exactly one writer wins, concurrent workers
// see zero rows affected and skip.
func (r *Repository) AttachQR(ctx context.Context, orderID, data string, generatedAt time.Time) (bool, error) {
	query := `
        UPDATE orders
        SET qr_code_data = $2, qr_generated_at = $3, updated_at = now()
        WHERE order_id = $1 AND status = 'paid' AND qr_code_data IS NULL
    `
	tag, err := r.db.Exec(ctx, query, orderID, data, generatedAt)
	if err != nil {
		zap.L().Error("failed to attach QR payload", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ClearQR drops the stored payload of a paid order so the issuance worker
// regenerates it. Explicit regeneration only; scanning never ends up here.
func (r *Repository) ClearQR(ctx context.Context, orderID string) (bool, error) {
	query := `
        UPDATE orders
        SET qr_code_data = NULL, qr_generated_at = NULL, updated_at = now()
        WHERE order_id = $1 AND status = 'paid'
    `
	tag, err := r.db.Exec(ctx, query, orderID)
	if err != nil {
		zap.L().Error("failed to clear QR payload", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) scanOrder(row pgx.Row) (*domain.Order, error) {
	var order domain.Order
	var snapshot []byte
	err := row.Scan(
		&order.OrderID, &order.UserID, &order.WorkshopID, &snapshot, &order.UserName, &order.UserPhone,
		&order.AmountMinor, &order.Currency, &order.Status, &order.PaymentLinkURL, &order.GatewayID, &order.GatewayTxID,
		&order.QRCodeData, &order.QRGeneratedAt, &order.CashbackPoints, &order.PointsRedeemed,
		&order.DiscountMinor, &order.FinalAmountMinor, &order.PaidAt, &order.CreatedAt, &order.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order", zap.Error(err))
		return nil, err
	}
	if err := json.Unmarshal(snapshot, &order.Workshop); err != nil {
		return nil, fmt.Errorf("can't unmarshal workshop snapshot: %w", err)
	}
	return &order, nil
}

func (r *Repository) collectOrders(rows pgx.Rows) ([]domain.Order, error) {
	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		var snapshot []byte
		err := rows.Scan(
			&order.OrderID, &order.UserID, &order.WorkshopID, &snapshot, &order.UserName, &order.UserPhone,
			&order.AmountMinor, &order.Currency, &order.Status, &order.PaymentLinkURL, &order.GatewayID, &order.GatewayTxID,
			&order.QRCodeData, &order.QRGeneratedAt, &order.CashbackPoints, &order.PointsRedeemed,
			&order.DiscountMinor, &order.FinalAmountMinor, &order.PaidAt, &order.CreatedAt, &order.UpdatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		if err := json.Unmarshal(snapshot, &order.Workshop); err != nil {
			return nil, fmt.Errorf("can't unmarshal workshop snapshot: %w", err)
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}
