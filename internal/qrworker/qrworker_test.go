package qrworker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/stagepass/stagepass/internal/config"
	"github.com/stagepass/stagepass/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockOrderRepo, *MockIssuer, *MockWorkerPoolI) {
	ctrl := gomock.NewController(t)
	repo := NewMockOrderRepo(ctrl)
	issuer := NewMockIssuer(ctrl)
	pool := NewMockWorkerPoolI(ctrl)

	service := New(&config.Config{QRInterval: time.Minute}, repo, issuer)
	service.workerPool = pool
	return service, repo, issuer, pool
}

// runInline executes queued tasks synchronously so the test observes the
// full issuance path.
func runInline(pool *MockWorkerPoolI, times int) {
	pool.EXPECT().AddTask(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, task Task) error {
			return task()
		}).Times(times)
}

func paidOrder(orderID string) domain.Order {
	paidAt := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	txID := "pay_" + orderID
	return domain.Order{
		OrderID:     orderID,
		UserID:      "user-1",
		Status:      domain.OrderStatusPaid,
		GatewayTxID: &txID,
		PaidAt:      &paidAt,
	}
}

func TestProcessOrders(t *testing.T) {
	t.Run("issues QR codes for paid orders", func(t *testing.T) {
		service, repo, issuer, pool := NewMock(t)
		orders := []domain.Order{paidOrder("order-1"), paidOrder("order-2")}

		repo.EXPECT().FindPaidWithoutQR(gomock.Any(), uint32(1000)).Return(orders, nil)
		runInline(pool, 2)
		for _, order := range orders {
			order := order
			issuer.EXPECT().Issue(gomock.Any()).
				DoAndReturn(func(o *domain.Order) (string, error) {
					return `{"order_id":"` + o.OrderID + `"}`, nil
				})
			repo.EXPECT().AttachQR(gomock.Any(), order.OrderID, gomock.Any(), order.PaidAt.UTC()).Return(true, nil)
		}

		service.processOrders(context.Background())
	})

	t.Run("lost attach race is not an error", func(t *testing.T) {
		service, repo, issuer, pool := NewMock(t)
		order := paidOrder("order-3")

		repo.EXPECT().FindPaidWithoutQR(gomock.Any(), uint32(1000)).Return([]domain.Order{order}, nil)
		runInline(pool, 1)
		issuer.EXPECT().Issue(gomock.Any()).Return(`{"order_id":"order-3"}`, nil)
		repo.EXPECT().AttachQR(gomock.Any(), "order-3", gomock.Any(), gomock.Any()).Return(false, nil)

		service.processOrders(context.Background())
	})

	t.Run("issue failure leaves the order for the next cycle", func(t *testing.T) {
		service, repo, issuer, pool := NewMock(t)
		order := paidOrder("order-4")

		repo.EXPECT().FindPaidWithoutQR(gomock.Any(), uint32(1000)).Return([]domain.Order{order}, nil)
		runInline(pool, 1)
		issuer.EXPECT().Issue(gomock.Any()).Return("", errors.New("bad order"))

		service.processOrders(context.Background())

		// the in-flight marker must be gone so the next cycle retries
		_, inflight := processingOrders.Load("order-4")
		assert.False(t, inflight)
	})

	t.Run("fetch failure skips the cycle", func(t *testing.T) {
		service, repo, _, _ := NewMock(t)
		repo.EXPECT().FindPaidWithoutQR(gomock.Any(), uint32(1000)).Return(nil, errors.New("database error"))

		service.processOrders(context.Background())
	})

	t.Run("order already in flight is skipped", func(t *testing.T) {
		service, repo, _, _ := NewMock(t)
		order := paidOrder("order-5")

		processingOrders.Store("order-5", struct{}{})
		defer processingOrders.Delete("order-5")

		repo.EXPECT().FindPaidWithoutQR(gomock.Any(), uint32(1000)).Return([]domain.Order{order}, nil)

		service.processOrders(context.Background())
	})
}
