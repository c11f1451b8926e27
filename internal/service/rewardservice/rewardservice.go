package rewardservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stagepass/stagepass/internal/domain"
)

type LedgerRepo interface {
	InsertCredit(ctx context.Context, tx *domain.RewardTransaction) error
	InsertDebit(ctx context.Context, tx *domain.RewardTransaction) error
	GetBalance(ctx context.Context, userID string) (*domain.RewardBalance, error)
	FindByReference(ctx context.Context, userID, referenceID string, typ domain.RewardType) (*domain.RewardTransaction, error)
	SettleByReference(ctx context.Context, referenceID string, typ domain.RewardType, from, to domain.RewardStatus) (bool, error)
	ListByUserID(ctx context.Context, userID string) ([]domain.RewardTransaction, error)
}

// BalanceCache holds the derived balance view. Cache failures are logged
// and absorbed; the ledger stays authoritative.
type BalanceCache interface {
	Get(ctx context.Context, userID string) (*domain.RewardBalance, error)
	Set(ctx context.Context, userID string, balance *domain.RewardBalance) error
	Invalidate(ctx context.Context, userID string) error
}

var ErrInsufficientBalance = domain.ErrInsufficientBalance

type Service struct {
	repo  LedgerRepo
	cache BalanceCache
}

func New(repo LedgerRepo, cache BalanceCache) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
	}
}

// Credit appends a completed credit. Replays with the same reference id
// (duplicate webhook deliveries) are silent no-ops.
func (s *Service) Credit(ctx context.Context, userID string, points int64, source domain.RewardSource, referenceID string) error {
	now := time.Now()
	tx := &domain.RewardTransaction{
		TransactionID: uuid.NewString(),
		UserID:        userID,
		Type:          domain.RewardTypeCredit,
		Points:        points,
		Source:        source,
		Status:        domain.RewardStatusCompleted,
		ReferenceID:   referenceID,
		CreatedAt:     now,
		ProcessedAt:   &now,
	}

	err := s.repo.InsertCredit(ctx, tx)
	if errors.Is(err, domain.ErrDuplicateTransaction) {
		zap.L().Info("credit already recorded, skipping",
			zap.String("userID", userID), zap.String("referenceID", referenceID))
		return nil
	}
	if err != nil {
		zap.L().Error("failed to credit rewards", zap.Error(err))
		return err
	}

	s.invalidate(ctx, userID)
	return nil
}

// Hold places a pending debit against an order. The hold reduces the
// available balance immediately and is finalized or released when the
// gateway settles the order.
func (s *Service) Hold(ctx context.Context, userID string, points int64, orderID string) error {
	tx := &domain.RewardTransaction{
		TransactionID: uuid.NewString(),
		UserID:        userID,
		Type:          domain.RewardTypeDebit,
		Points:        points,
		Source:        domain.SourceRedemption,
		Status:        domain.RewardStatusPending,
		ReferenceID:   orderID,
		CreatedAt:     time.Now(),
	}

	err := s.repo.InsertDebit(ctx, tx)
	if errors.Is(err, domain.ErrDuplicateTransaction) {
		zap.L().Info("redemption hold already exists, skipping",
			zap.String("userID", userID), zap.String("orderID", orderID))
		return nil
	}
	if err != nil {
		if !errors.Is(err, ErrInsufficientBalance) {
			zap.L().Error("failed to hold redemption points", zap.Error(err))
		}
		return err
	}

	s.invalidate(ctx, userID)
	return nil
}

// Settle finalizes the pending debit of a paid order.
func (s *Service) Settle(ctx context.Context, userID, orderID string) error {
	applied, err := s.repo.SettleByReference(ctx, orderID, domain.RewardTypeDebit, domain.RewardStatusPending, domain.RewardStatusCompleted)
	if err != nil {
		zap.L().Error("failed to settle redemption debit", zap.Error(err))
		return err
	}
	if !applied {
		zap.L().Warn("no pending debit to settle", zap.String("orderID", orderID))
		return nil
	}

	s.invalidate(ctx, userID)
	return nil
}

// Release cancels the pending debit of a failed, cancelled or expired
// order, restoring the pre-redemption balance exactly.
func (s *Service) Release(ctx context.Context, userID, orderID string) error {
	applied, err := s.repo.SettleByReference(ctx, orderID, domain.RewardTypeDebit, domain.RewardStatusPending, domain.RewardStatusCancelled)
	if err != nil {
		zap.L().Error("failed to release redemption debit", zap.Error(err))
		return err
	}
	if !applied {
		zap.L().Warn("no pending debit to release", zap.String("orderID", orderID))
		return nil
	}

	s.invalidate(ctx, userID)
	return nil
}

func (s *Service) GetBalance(ctx context.Context, userID string) (*domain.RewardBalance, error) {
	if cached, err := s.cache.Get(ctx, userID); err == nil && cached != nil {
		return cached, nil
	} else if err != nil {
		zap.L().Warn("balance cache read failed", zap.Error(err))
	}

	balance, err := s.repo.GetBalance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to compute balance", zap.Error(err))
		return nil, err
	}

	if err := s.cache.Set(ctx, userID, balance); err != nil {
		zap.L().Warn("balance cache write failed", zap.Error(err))
	}
	return balance, nil
}

func (s *Service) GetTransactions(ctx context.Context, userID string) ([]domain.RewardTransaction, error) {
	txs, err := s.repo.ListByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to list reward transactions", zap.Error(err))
		return nil, err
	}
	return txs, nil
}

func (s *Service) invalidate(ctx context.Context, userID string) {
	if err := s.cache.Invalidate(ctx, userID); err != nil {
		zap.L().Warn("balance cache invalidation failed", zap.String("userID", userID), zap.Error(err))
	}
}
