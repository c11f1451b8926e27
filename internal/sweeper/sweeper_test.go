package sweeper

import (
	"context"
	"errors"
	"testing"
	"time"

	gomock "go.uber.org/mock/gomock"

	"github.com/stagepass/stagepass/internal/config"
)

func NewMock(t *testing.T) (*Service, *MockOrderService, *MockKeyPurger) {
	ctrl := gomock.NewController(t)
	orders := NewMockOrderService(ctrl)
	keys := NewMockKeyPurger(ctrl)
	service := New(&config.Config{SweepInterval: time.Minute}, orders, keys)
	return service, orders, keys
}

func TestSweep(t *testing.T) {
	t.Run("expires orders and purges keys", func(t *testing.T) {
		service, orders, keys := NewMock(t)
		orders.EXPECT().SweepExpiredOrders(gomock.Any()).Return(3, nil)
		keys.EXPECT().PurgeExpired(gomock.Any()).Return(int64(2), nil)

		service.sweep(context.Background())
	})

	t.Run("sweep failure does not stop the key purge", func(t *testing.T) {
		service, orders, keys := NewMock(t)
		orders.EXPECT().SweepExpiredOrders(gomock.Any()).Return(0, errors.New("database error"))
		keys.EXPECT().PurgeExpired(gomock.Any()).Return(int64(0), nil)

		service.sweep(context.Background())
	})
}
