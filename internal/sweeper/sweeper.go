package sweeper

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/stagepass/stagepass/internal/config"
)

type OrderService interface {
	SweepExpiredOrders(ctx context.Context) (int, error)
}

type KeyPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// Service periodically expires stale created orders and prunes expired
// idempotency keys. It is the fallback for orders whose payment link was
// simply abandoned and never produced a webhook.
type Service struct {
	orders   OrderService
	keys     KeyPurger
	interval time.Duration
}

func New(cfg *config.Config, orders OrderService, keys KeyPurger) *Service {
	return &Service{
		orders:   orders,
		keys:     keys,
		interval: cfg.SweepInterval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Order expiry sweeper started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping sweeper")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	if _, err := s.orders.SweepExpiredOrders(ctx); err != nil {
		zap.L().Error("Order expiry sweep failed", zap.Error(err))
	}

	if purged, err := s.keys.PurgeExpired(ctx); err != nil {
		zap.L().Error("Idempotency key purge failed", zap.Error(err))
	} else if purged > 0 {
		zap.L().Info("Purged expired idempotency keys", zap.Int64("count", purged))
	}
}
