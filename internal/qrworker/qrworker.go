package qrworker

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/stagepass/stagepass/internal/config"
	"github.com/stagepass/stagepass/internal/domain"
)

var processingOrders sync.Map

type OrderRepo interface {
	FindPaidWithoutQR(ctx context.Context, limit uint32) ([]domain.Order, error)
	AttachQR(ctx context.Context, orderID, data string, generatedAt time.Time) (bool, error)
}

type Issuer interface {
	Issue(order *domain.Order) (string, error)
}

// Service issues QR codes for paid orders asynchronously. Payment success
// never waits on issuance; a failed cycle just leaves the order for the
// next one.
type Service struct {
	orderRepo      OrderRepo
	issuer         Issuer
	limit          uint32
	workerPool     WorkerPoolI
	updateInterval time.Duration
}

func New(cfg *config.Config, orderRepo OrderRepo, issuer Issuer) *Service {
	return &Service{
		orderRepo:      orderRepo,
		issuer:         issuer,
		limit:          1000,
		workerPool:     NewWorkerPool(10),
		updateInterval: cfg.QRInterval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("QR issuance worker started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping QR worker")
			return
		case <-ticker.C:
			s.processOrders(ctx)
		}
	}
}

func (s *Service) processOrders(ctx context.Context) {
	orders, err := s.orderRepo.FindPaidWithoutQR(ctx, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch orders pending QR issuance", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, order := range orders {
		order := order

		if _, loaded := processingOrders.LoadOrStore(order.OrderID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer processingOrders.Delete(order.OrderID)
				return s.handleOrder(ctx, order)
			})
			if err != nil {
				processingOrders.Delete(order.OrderID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error issuing QR codes", zap.Error(err))
	}
}

// handleOrder generates and attaches the QR payload of one order. The
// payload is derived entirely from the order record, so a lost attach
// race means another worker stored the identical bytes.
func (s *Service) handleOrder(ctx context.Context, order domain.Order) error {
	data, err := s.issuer.Issue(&order)
	if err != nil {
		zap.L().Error("Failed to build QR payload",
			zap.String("orderID", order.OrderID), zap.Error(err))
		return err
	}

	applied, err := s.orderRepo.AttachQR(ctx, order.OrderID, data, order.PaidAt.UTC())
	if err != nil {
		return err
	}
	if !applied {
		zap.L().Info("QR already attached by a concurrent worker", zap.String("orderID", order.OrderID))
		return nil
	}

	zap.L().Info("QR code issued", zap.String("orderID", order.OrderID))
	return nil
}
