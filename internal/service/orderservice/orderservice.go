package orderservice

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stagepass/stagepass/internal/catalog"
	"github.com/stagepass/stagepass/internal/config"
	"github.com/stagepass/stagepass/internal/domain"
	"github.com/stagepass/stagepass/internal/gateway"
	"github.com/stagepass/stagepass/internal/pg"
	"github.com/stagepass/stagepass/internal/service/redemption"
	"github.com/stagepass/stagepass/pkg/auth"
)

type Repo interface {
	Save(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, orderID string) (*domain.Order, error)
	FindActiveOrder(ctx context.Context, userID, workshopID string) (*domain.Order, error)
	FindOrdersByUserID(ctx context.Context, userID string) ([]domain.Order, error)
	MarkPaid(ctx context.Context, orderID, gatewayTxID string, paidAt time.Time) (bool, error)
	Transition(ctx context.Context, orderID string, to domain.OrderStatus) (bool, error)
	SweepExpired(ctx context.Context, cutoff time.Time) ([]domain.Order, error)
	ClearQR(ctx context.Context, orderID string) (bool, error)
}

type Gateway interface {
	CreateLink(ctx context.Context, req gateway.CreateLinkRequest) (*gateway.CreateLinkResponse, error)
}

type Catalog interface {
	GetWorkshop(ctx context.Context, workshopID string) (*catalog.Workshop, error)
}

type Rewards interface {
	GetBalance(ctx context.Context, userID string) (*domain.RewardBalance, error)
	Hold(ctx context.Context, userID string, points int64, orderID string) error
	Settle(ctx context.Context, userID, orderID string) error
	Release(ctx context.Context, userID, orderID string) error
	Credit(ctx context.Context, userID string, points int64, source domain.RewardSource, referenceID string) error
}

type IdempotencyRepo interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, orderID string, ttlSeconds int64) error
}

type EventRepo interface {
	Record(ctx context.Context, eventID, orderID, outcome string) (bool, error)
}

var (
	ErrWorkshopNotPurchasable = errors.New("workshop is not open for purchase")
	ErrOrderNotFound          = errors.New("order not found")
	ErrNotOrderOwner          = errors.New("order belongs to another user")
	ErrOrderNotActive         = errors.New("order is not in created state")
	ErrOrderNotPaid           = errors.New("order is not paid")
)

type PaymentLinkResult struct {
	Order      *domain.Order
	IsExisting bool
}

type Service struct {
	repo    Repo
	gateway Gateway
	catalog Catalog
	rewards Rewards
	calc    *redemption.Calculator
	idem    IdempotencyRepo
	events  EventRepo
	tx      pg.TXManager

	orderTTL        time.Duration
	cashbackPercent float64
	pointValueMinor int64
}

func New(cfg *config.Config, repo Repo, gw Gateway, cat Catalog, rewards Rewards, calc *redemption.Calculator, idem IdempotencyRepo, events EventRepo, tx pg.TXManager) *Service {
	return &Service{
		repo:            repo,
		gateway:         gw,
		catalog:         cat,
		rewards:         rewards,
		calc:            calc,
		idem:            idem,
		events:          events,
		tx:              tx,
		orderTTL:        cfg.OrderTTL,
		cashbackPercent: cfg.CashbackPercent,
		pointValueMinor: cfg.PointValueMinor,
	}
}

// CreatePaymentLink returns a payment link for (user, workshop), reusing
// the existing active order when there is one. A client retry therefore
// never produces a second gateway link for the same intent.
func (s *Service) CreatePaymentLink(ctx context.Context, identity auth.Identity, workshopID string, pointsToRedeem int64) (*PaymentLinkResult, error) {
	workshop, err := s.catalog.GetWorkshop(ctx, workshopID)
	if err != nil {
		return nil, err
	}
	if !workshop.Purchasable {
		return nil, ErrWorkshopNotPurchasable
	}

	if existing, err := s.findReusableOrder(ctx, identity.UserID, workshopID); err != nil {
		return nil, err
	} else if existing != nil {
		zap.L().Info("returning existing payment link",
			zap.String("orderID", existing.OrderID), zap.String("userID", identity.UserID))
		return &PaymentLinkResult{Order: existing, IsExisting: true}, nil
	}

	var discountMinor int64
	if pointsToRedeem > 0 {
		balance, err := s.rewards.GetBalance(ctx, identity.UserID)
		if err != nil {
			return nil, err
		}
		if err := s.calc.Validate(pointsToRedeem, balance, workshop.PriceMinor); err != nil {
			return nil, err
		}
		discountMinor = s.calc.DiscountMinor(pointsToRedeem)
	}
	finalAmount := workshop.PriceMinor - discountMinor

	// The key is deterministic over the request intent, so a retry that
	// races the existing-order lookup still dedups here and at the gateway.
	idemKey := idempotencyKey(identity.UserID, workshopID, finalAmount)
	if orderID, err := s.idem.Get(ctx, idemKey); err != nil {
		return nil, err
	} else if orderID != "" {
		if order, err := s.repo.FindByID(ctx, orderID); err != nil {
			return nil, err
		} else if order != nil && order.Status == domain.OrderStatusCreated {
			return &PaymentLinkResult{Order: order, IsExisting: true}, nil
		}
	}

	orderID := uuid.NewString()
	link, err := s.gateway.CreateLink(ctx, gateway.CreateLinkRequest{
		OrderID:        orderID,
		AmountMinor:    finalAmount,
		Currency:       workshop.Currency,
		ContactName:    identity.Name,
		ContactPhone:   identity.Phone,
		Description:    workshop.Title,
		IdempotencyKey: idemKey,
	})
	if err != nil {
		// No order row exists at this point; the caller can retry safely.
		return nil, err
	}

	now := time.Now()
	order := &domain.Order{
		OrderID:          orderID,
		UserID:           identity.UserID,
		WorkshopID:       workshopID,
		Workshop:         workshop.Snapshot(),
		UserName:         identity.Name,
		UserPhone:        identity.Phone,
		AmountMinor:      workshop.PriceMinor,
		Currency:         workshop.Currency,
		Status:           domain.OrderStatusCreated,
		PaymentLinkURL:   link.PaymentLinkURL,
		GatewayID:        link.GatewayID,
		CashbackPoints:   s.cashbackPoints(finalAmount),
		PointsRedeemed:   pointsToRedeem,
		DiscountMinor:    discountMinor,
		FinalAmountMinor: finalAmount,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.Save(ctx, order); err != nil {
		if errors.Is(err, domain.ErrDuplicateActiveOrder) {
			// Lost the creation race: return the winner's order instead.
			winner, findErr := s.repo.FindActiveOrder(ctx, identity.UserID, workshopID)
			if findErr != nil {
				return nil, findErr
			}
			if winner == nil {
				return nil, err
			}
			zap.L().Info("order creation race lost, returning winner",
				zap.String("orderID", winner.OrderID), zap.String("userID", identity.UserID))
			return &PaymentLinkResult{Order: winner, IsExisting: true}, nil
		}
		return nil, err
	}

	if pointsToRedeem > 0 {
		if err := s.rewards.Hold(ctx, identity.UserID, pointsToRedeem, orderID); err != nil {
			if _, cErr := s.repo.Transition(ctx, orderID, domain.OrderStatusCancelled); cErr != nil {
				zap.L().Error("can't cancel order after failed hold", zap.String("orderID", orderID), zap.Error(cErr))
			}
			return nil, err
		}
	}

	if err := s.idem.Put(ctx, idemKey, orderID, int64(s.orderTTL.Seconds())); err != nil {
		zap.L().Warn("can't store idempotency key", zap.String("orderID", orderID), zap.Error(err))
	}

	return &PaymentLinkResult{Order: order, IsExisting: false}, nil
}

// findReusableOrder returns the active order for (user, workshop) if it
// is still inside its TTL. A stale one is expired inline, so a fresh
// link can be issued without waiting for the sweep.
func (s *Service) findReusableOrder(ctx context.Context, userID, workshopID string) (*domain.Order, error) {
	existing, err := s.repo.FindActiveOrder(ctx, userID, workshopID)
	if err != nil || existing == nil {
		return nil, err
	}
	if time.Since(existing.CreatedAt) < s.orderTTL {
		return existing, nil
	}

	applied, err := s.repo.Transition(ctx, existing.OrderID, domain.OrderStatusExpired)
	if err != nil {
		return nil, err
	}
	if applied && existing.PointsRedeemed > 0 {
		if err := s.rewards.Release(ctx, userID, existing.OrderID); err != nil {
			return nil, err
		}
	}
	return nil, nil
}

// HandleGatewayCallback applies a webhook event to the order state
// machine. Idempotent on the gateway transaction id; transitions out of
// terminal states are rejected and logged, never applied. The event row,
// the order transition and the ledger settlement commit in one database
// transaction: if any step fails the event row rolls back with it, so
// the gateway's redelivery is seen as a first delivery and retries the
// whole apply instead of being absorbed as a replay.
func (s *Service) HandleGatewayCallback(ctx context.Context, event *gateway.Event) error {
	order, err := s.repo.FindByID(ctx, event.OrderID)
	if err != nil {
		return err
	}
	if order == nil {
		return fmt.Errorf("%w: %s", ErrOrderNotFound, event.OrderID)
	}

	return s.tx.Begin(ctx, func(ctx context.Context) error {
		first, err := s.events.Record(ctx, event.TransactionID, event.OrderID, event.Outcome)
		if err != nil {
			return err
		}
		if !first {
			zap.L().Info("gateway event already processed", zap.String("transactionID", event.TransactionID))
			return nil
		}

		if order.Status.Terminal() {
			zap.L().Warn("webhook for terminal order rejected",
				zap.String("orderID", order.OrderID),
				zap.String("status", string(order.Status)),
				zap.String("transactionID", event.TransactionID))
			return nil
		}

		switch event.Outcome {
		case gateway.OutcomePaid:
			return s.applyPaid(ctx, order, event.TransactionID)
		case gateway.OutcomeFailed:
			return s.applyFailed(ctx, order)
		default:
			return fmt.Errorf("unknown gateway outcome %q", event.Outcome)
		}
	})
}

func (s *Service) applyPaid(ctx context.Context, order *domain.Order, gatewayTxID string) error {
	applied, err := s.repo.MarkPaid(ctx, order.OrderID, gatewayTxID, time.Now())
	if err != nil {
		return err
	}
	if !applied {
		zap.L().Warn("order left created state before paid webhook applied", zap.String("orderID", order.OrderID))
		return nil
	}

	if order.PointsRedeemed > 0 {
		if err := s.rewards.Settle(ctx, order.UserID, order.OrderID); err != nil {
			return err
		}
	}
	if order.CashbackPoints > 0 {
		if err := s.rewards.Credit(ctx, order.UserID, order.CashbackPoints, domain.SourceCashback, order.OrderID); err != nil {
			return err
		}
	}

	zap.L().Info("order paid",
		zap.String("orderID", order.OrderID),
		zap.Int64("finalAmount", order.FinalAmountMinor),
		zap.Int64("cashback", order.CashbackPoints))
	return nil
}

func (s *Service) applyFailed(ctx context.Context, order *domain.Order) error {
	applied, err := s.repo.Transition(ctx, order.OrderID, domain.OrderStatusFailed)
	if err != nil {
		return err
	}
	if !applied {
		zap.L().Warn("order left created state before failed webhook applied", zap.String("orderID", order.OrderID))
		return nil
	}

	if order.PointsRedeemed > 0 {
		// The tentative redemption never reduced the settled balance.
		if err := s.rewards.Release(ctx, order.UserID, order.OrderID); err != nil {
			return err
		}
	}
	return nil
}

// SweepExpiredOrders expires created orders older than the TTL and
// releases their redemption holds. Terminal orders are never touched.
func (s *Service) SweepExpiredOrders(ctx context.Context) (int, error) {
	expired, err := s.repo.SweepExpired(ctx, time.Now().Add(-s.orderTTL))
	if err != nil {
		return 0, err
	}

	for _, order := range expired {
		if order.PointsRedeemed == 0 {
			continue
		}
		if err := s.rewards.Release(ctx, order.UserID, order.OrderID); err != nil {
			zap.L().Error("can't release hold of expired order",
				zap.String("orderID", order.OrderID), zap.Error(err))
		}
	}

	if len(expired) > 0 {
		zap.L().Info("expired stale orders", zap.Int("count", len(expired)))
	}
	return len(expired), nil
}

// CancelOrder is the explicit user/admin cancellation of a created order.
func (s *Service) CancelOrder(ctx context.Context, userID, orderID string) error {
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrOrderNotFound
	}
	if order.UserID != userID {
		return ErrNotOrderOwner
	}

	applied, err := s.repo.Transition(ctx, orderID, domain.OrderStatusCancelled)
	if err != nil {
		return err
	}
	if !applied {
		return ErrOrderNotActive
	}

	if order.PointsRedeemed > 0 {
		if err := s.rewards.Release(ctx, userID, orderID); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) GetOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	orders, err := s.repo.FindOrdersByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get orders", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

func (s *Service) GetOrder(ctx context.Context, userID, orderID string) (*domain.Order, error) {
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.UserID != userID {
		return nil, ErrNotOrderOwner
	}
	return order, nil
}

// RegenerateQR drops the stored QR payload of a paid order so the
// issuance worker re-issues it on the next cycle. Regeneration is an
// explicit operation, never a side effect of scanning.
func (s *Service) RegenerateQR(ctx context.Context, userID, orderID string) error {
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrOrderNotFound
	}
	if order.UserID != userID {
		return ErrNotOrderOwner
	}

	applied, err := s.repo.ClearQR(ctx, orderID)
	if err != nil {
		return err
	}
	if !applied {
		return ErrOrderNotPaid
	}
	return nil
}

func (s *Service) cashbackPoints(finalAmountMinor int64) int64 {
	if s.cashbackPercent <= 0 || s.pointValueMinor <= 0 {
		return 0
	}
	return int64(float64(finalAmountMinor) * s.cashbackPercent / 100 / float64(s.pointValueMinor))
}

func idempotencyKey(userID, workshopID string, finalAmountMinor int64) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%d", userID, workshopID, finalAmountMinor)))
	return hex.EncodeToString(sum[:])
}
