package orderservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/stagepass/stagepass/internal/catalog"
	"github.com/stagepass/stagepass/internal/config"
	"github.com/stagepass/stagepass/internal/domain"
	"github.com/stagepass/stagepass/internal/gateway"
	"github.com/stagepass/stagepass/internal/pg"
	"github.com/stagepass/stagepass/internal/service/redemption"
	"github.com/stagepass/stagepass/pkg/auth"
)

type mocks struct {
	repo    *MockRepo
	gateway *MockGateway
	catalog *MockCatalog
	rewards *MockRewards
	idem    *MockIdempotencyRepo
	events  *MockEventRepo
	tx      *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		repo:    NewMockRepo(ctrl),
		gateway: NewMockGateway(ctrl),
		catalog: NewMockCatalog(ctrl),
		rewards: NewMockRewards(ctrl),
		idem:    NewMockIdempotencyRepo(ctrl),
		events:  NewMockEventRepo(ctrl),
		tx:      pg.NewMockTXManager(ctrl),
	}
	cfg := &config.Config{
		OrderTTL:            30 * time.Minute,
		CashbackPercent:     5,
		RedemptionCap:       300,
		MaxDiscountFraction: 0.5,
		PointValueMinor:     100,
	}
	service := New(cfg, m.repo, m.gateway, m.catalog, m.rewards, redemption.NewCalculator(cfg), m.idem, m.events, m.tx)
	return service, m
}

func runTx(m *mocks) {
	m.tx.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		})
}

var testIdentity = auth.Identity{UserID: "user-1", Name: "Asha Rao", Phone: "+919876543210"}

func testWorkshop() *catalog.Workshop {
	return &catalog.Workshop{
		UUID:        "ws-1",
		Title:       "Contemporary Intensive",
		Artists:     []string{"Priya N"},
		Studio:      "Studio One",
		Date:        "2026-09-01",
		Time:        "18:00",
		PriceMinor:  100000,
		Currency:    "INR",
		Purchasable: true,
	}
}

func TestCreatePaymentLink(t *testing.T) {
	tests := []struct {
		name           string
		pointsToRedeem int64
		prepareMock    func(m *mocks)
		wantExisting   bool
		wantErr        error
	}{
		{
			name: "new order without redemption",
			prepareMock: func(m *mocks) {
				m.catalog.EXPECT().GetWorkshop(gomock.Any(), "ws-1").Return(testWorkshop(), nil)
				m.repo.EXPECT().FindActiveOrder(gomock.Any(), "user-1", "ws-1").Return(nil, nil)
				m.idem.EXPECT().Get(gomock.Any(), gomock.Any()).Return("", nil)
				m.gateway.EXPECT().CreateLink(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req gateway.CreateLinkRequest) (*gateway.CreateLinkResponse, error) {
						assert.Equal(t, int64(100000), req.AmountMinor)
						assert.Equal(t, "INR", req.Currency)
						assert.NotEmpty(t, req.IdempotencyKey)
						return &gateway.CreateLinkResponse{GatewayID: "plink_1", PaymentLinkURL: "https://pay.test/plink_1"}, nil
					})
				m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, order *domain.Order) error {
						assert.Equal(t, domain.OrderStatusCreated, order.Status)
						assert.Equal(t, int64(100000), order.FinalAmountMinor)
						assert.Equal(t, int64(50), order.CashbackPoints)
						assert.Zero(t, order.PointsRedeemed)
						return nil
					})
				m.idem.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), int64(1800)).Return(nil)
			},
		},
		{
			name:           "new order with redemption hold",
			pointsToRedeem: 300,
			prepareMock: func(m *mocks) {
				m.catalog.EXPECT().GetWorkshop(gomock.Any(), "ws-1").Return(testWorkshop(), nil)
				m.repo.EXPECT().FindActiveOrder(gomock.Any(), "user-1", "ws-1").Return(nil, nil)
				m.rewards.EXPECT().GetBalance(gomock.Any(), "user-1").
					Return(&domain.RewardBalance{AvailableBalance: 500}, nil)
				m.idem.EXPECT().Get(gomock.Any(), gomock.Any()).Return("", nil)
				m.gateway.EXPECT().CreateLink(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req gateway.CreateLinkRequest) (*gateway.CreateLinkResponse, error) {
						assert.Equal(t, int64(70000), req.AmountMinor)
						return &gateway.CreateLinkResponse{GatewayID: "plink_2", PaymentLinkURL: "https://pay.test/plink_2"}, nil
					})
				m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, order *domain.Order) error {
						assert.Equal(t, int64(300), order.PointsRedeemed)
						assert.Equal(t, int64(30000), order.DiscountMinor)
						assert.Equal(t, int64(70000), order.FinalAmountMinor)
						return nil
					})
				m.rewards.EXPECT().Hold(gomock.Any(), "user-1", int64(300), gomock.Any()).Return(nil)
				m.idem.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "active order within TTL is reused",
			prepareMock: func(m *mocks) {
				m.catalog.EXPECT().GetWorkshop(gomock.Any(), "ws-1").Return(testWorkshop(), nil)
				m.repo.EXPECT().FindActiveOrder(gomock.Any(), "user-1", "ws-1").
					Return(&domain.Order{OrderID: "order-1", Status: domain.OrderStatusCreated, CreatedAt: time.Now().Add(-time.Minute)}, nil)
			},
			wantExisting: true,
		},
		{
			name: "stale active order is expired inline",
			prepareMock: func(m *mocks) {
				m.catalog.EXPECT().GetWorkshop(gomock.Any(), "ws-1").Return(testWorkshop(), nil)
				m.repo.EXPECT().FindActiveOrder(gomock.Any(), "user-1", "ws-1").
					Return(&domain.Order{OrderID: "order-stale", Status: domain.OrderStatusCreated, PointsRedeemed: 100, CreatedAt: time.Now().Add(-time.Hour)}, nil)
				m.repo.EXPECT().Transition(gomock.Any(), "order-stale", domain.OrderStatusExpired).Return(true, nil)
				m.rewards.EXPECT().Release(gomock.Any(), "user-1", "order-stale").Return(nil)
				m.idem.EXPECT().Get(gomock.Any(), gomock.Any()).Return("", nil)
				m.gateway.EXPECT().CreateLink(gomock.Any(), gomock.Any()).
					Return(&gateway.CreateLinkResponse{GatewayID: "plink_3", PaymentLinkURL: "https://pay.test/plink_3"}, nil)
				m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
				m.idem.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "idempotency key replay returns stored order",
			prepareMock: func(m *mocks) {
				m.catalog.EXPECT().GetWorkshop(gomock.Any(), "ws-1").Return(testWorkshop(), nil)
				m.repo.EXPECT().FindActiveOrder(gomock.Any(), "user-1", "ws-1").Return(nil, nil)
				m.idem.EXPECT().Get(gomock.Any(), gomock.Any()).Return("order-7", nil)
				m.repo.EXPECT().FindByID(gomock.Any(), "order-7").
					Return(&domain.Order{OrderID: "order-7", Status: domain.OrderStatusCreated}, nil)
			},
			wantExisting: true,
		},
		{
			name: "creation race lost returns winner",
			prepareMock: func(m *mocks) {
				m.catalog.EXPECT().GetWorkshop(gomock.Any(), "ws-1").Return(testWorkshop(), nil)
				m.repo.EXPECT().FindActiveOrder(gomock.Any(), "user-1", "ws-1").Return(nil, nil)
				m.idem.EXPECT().Get(gomock.Any(), gomock.Any()).Return("", nil)
				m.gateway.EXPECT().CreateLink(gomock.Any(), gomock.Any()).
					Return(&gateway.CreateLinkResponse{GatewayID: "plink_4", PaymentLinkURL: "https://pay.test/plink_4"}, nil)
				m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(domain.ErrDuplicateActiveOrder)
				m.repo.EXPECT().FindActiveOrder(gomock.Any(), "user-1", "ws-1").
					Return(&domain.Order{OrderID: "order-winner", Status: domain.OrderStatusCreated}, nil)
			},
			wantExisting: true,
		},
		{
			name: "workshop not purchasable",
			prepareMock: func(m *mocks) {
				ws := testWorkshop()
				ws.Purchasable = false
				m.catalog.EXPECT().GetWorkshop(gomock.Any(), "ws-1").Return(ws, nil)
			},
			wantErr: ErrWorkshopNotPurchasable,
		},
		{
			name:           "redemption above maximum rejected",
			pointsToRedeem: 400,
			prepareMock: func(m *mocks) {
				m.catalog.EXPECT().GetWorkshop(gomock.Any(), "ws-1").Return(testWorkshop(), nil)
				m.repo.EXPECT().FindActiveOrder(gomock.Any(), "user-1", "ws-1").Return(nil, nil)
				m.rewards.EXPECT().GetBalance(gomock.Any(), "user-1").
					Return(&domain.RewardBalance{AvailableBalance: 500}, nil)
			},
			wantErr: redemption.ErrRedemptionNotAllowed,
		},
		{
			name: "gateway unavailable leaves no order behind",
			prepareMock: func(m *mocks) {
				m.catalog.EXPECT().GetWorkshop(gomock.Any(), "ws-1").Return(testWorkshop(), nil)
				m.repo.EXPECT().FindActiveOrder(gomock.Any(), "user-1", "ws-1").Return(nil, nil)
				m.idem.EXPECT().Get(gomock.Any(), gomock.Any()).Return("", nil)
				m.gateway.EXPECT().CreateLink(gomock.Any(), gomock.Any()).Return(nil, gateway.ErrUnavailable)
			},
			wantErr: gateway.ErrUnavailable,
		},
		{
			name:           "failed hold cancels the fresh order",
			pointsToRedeem: 200,
			prepareMock: func(m *mocks) {
				m.catalog.EXPECT().GetWorkshop(gomock.Any(), "ws-1").Return(testWorkshop(), nil)
				m.repo.EXPECT().FindActiveOrder(gomock.Any(), "user-1", "ws-1").Return(nil, nil)
				m.rewards.EXPECT().GetBalance(gomock.Any(), "user-1").
					Return(&domain.RewardBalance{AvailableBalance: 500}, nil)
				m.idem.EXPECT().Get(gomock.Any(), gomock.Any()).Return("", nil)
				m.gateway.EXPECT().CreateLink(gomock.Any(), gomock.Any()).
					Return(&gateway.CreateLinkResponse{GatewayID: "plink_5", PaymentLinkURL: "https://pay.test/plink_5"}, nil)
				m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
				m.rewards.EXPECT().Hold(gomock.Any(), "user-1", int64(200), gomock.Any()).
					Return(domain.ErrInsufficientBalance)
				m.repo.EXPECT().Transition(gomock.Any(), gomock.Any(), domain.OrderStatusCancelled).Return(true, nil)
			},
			wantErr: domain.ErrInsufficientBalance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			result, err := service.CreatePaymentLink(context.Background(), testIdentity, "ws-1", tt.pointsToRedeem)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, result.Order)
			assert.Equal(t, tt.wantExisting, result.IsExisting)
		})
	}
}

func TestHandleGatewayCallback(t *testing.T) {
	paidEvent := &gateway.Event{TransactionID: "pay_1", OrderID: "order-1", Outcome: gateway.OutcomePaid}

	tests := []struct {
		name        string
		event       *gateway.Event
		prepareMock func(m *mocks)
		wantErr     error
	}{
		{
			name:  "paid settles hold and credits cashback",
			event: paidEvent,
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), "order-1").
					Return(&domain.Order{OrderID: "order-1", UserID: "user-1", Status: domain.OrderStatusCreated, PointsRedeemed: 300, CashbackPoints: 35, FinalAmountMinor: 70000}, nil)
				runTx(m)
				m.events.EXPECT().Record(gomock.Any(), "pay_1", "order-1", gateway.OutcomePaid).Return(true, nil)
				m.repo.EXPECT().MarkPaid(gomock.Any(), "order-1", "pay_1", gomock.Any()).Return(true, nil)
				m.rewards.EXPECT().Settle(gomock.Any(), "user-1", "order-1").Return(nil)
				m.rewards.EXPECT().Credit(gomock.Any(), "user-1", int64(35), domain.SourceCashback, "order-1").Return(nil)
			},
		},
		{
			name:  "failed releases the pending hold",
			event: &gateway.Event{TransactionID: "pay_2", OrderID: "order-1", Outcome: gateway.OutcomeFailed},
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), "order-1").
					Return(&domain.Order{OrderID: "order-1", UserID: "user-1", Status: domain.OrderStatusCreated, PointsRedeemed: 300}, nil)
				runTx(m)
				m.events.EXPECT().Record(gomock.Any(), "pay_2", "order-1", gateway.OutcomeFailed).Return(true, nil)
				m.repo.EXPECT().Transition(gomock.Any(), "order-1", domain.OrderStatusFailed).Return(true, nil)
				m.rewards.EXPECT().Release(gomock.Any(), "user-1", "order-1").Return(nil)
			},
		},
		{
			name:  "replayed event is a no-op",
			event: paidEvent,
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), "order-1").
					Return(&domain.Order{OrderID: "order-1", UserID: "user-1", Status: domain.OrderStatusPaid}, nil)
				runTx(m)
				m.events.EXPECT().Record(gomock.Any(), "pay_1", "order-1", gateway.OutcomePaid).Return(false, nil)
			},
		},
		{
			name:  "paid webhook after expiry is rejected",
			event: paidEvent,
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), "order-1").
					Return(&domain.Order{OrderID: "order-1", UserID: "user-1", Status: domain.OrderStatusExpired}, nil)
				runTx(m)
				m.events.EXPECT().Record(gomock.Any(), "pay_1", "order-1", gateway.OutcomePaid).Return(true, nil)
			},
		},
		{
			name:  "unknown order",
			event: &gateway.Event{TransactionID: "pay_3", OrderID: "order-missing", Outcome: gateway.OutcomePaid},
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), "order-missing").Return(nil, nil)
			},
			wantErr: ErrOrderNotFound,
		},
		{
			name:  "concurrent settle loses the conditional update",
			event: paidEvent,
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), "order-1").
					Return(&domain.Order{OrderID: "order-1", UserID: "user-1", Status: domain.OrderStatusCreated}, nil)
				runTx(m)
				m.events.EXPECT().Record(gomock.Any(), "pay_1", "order-1", gateway.OutcomePaid).Return(true, nil)
				m.repo.EXPECT().MarkPaid(gomock.Any(), "order-1", "pay_1", gomock.Any()).Return(false, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			err := service.HandleGatewayCallback(context.Background(), tt.event)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHandleGatewayCallbackRedelivery(t *testing.T) {
	t.Run("redelivery after transient failure still settles", func(t *testing.T) {
		service, m := NewMock(t)
		event := &gateway.Event{TransactionID: "pay_1", OrderID: "order-1", Outcome: gateway.OutcomePaid}
		order := func() *domain.Order {
			return &domain.Order{OrderID: "order-1", UserID: "user-1", Status: domain.OrderStatusCreated, PointsRedeemed: 300, CashbackPoints: 35, FinalAmountMinor: 70000}
		}

		// First delivery: the settlement fails mid-transaction, so the
		// recorded event must roll back along with it.
		m.repo.EXPECT().FindByID(gomock.Any(), "order-1").Return(order(), nil)
		runTx(m)
		m.events.EXPECT().Record(gomock.Any(), "pay_1", "order-1", gateway.OutcomePaid).Return(true, nil)
		m.repo.EXPECT().MarkPaid(gomock.Any(), "order-1", "pay_1", gomock.Any()).
			Return(false, errors.New("connection reset"))

		err := service.HandleGatewayCallback(context.Background(), event)
		assert.Error(t, err)

		// Gateway redelivery: the event is first-seen again and the full
		// apply goes through.
		m.repo.EXPECT().FindByID(gomock.Any(), "order-1").Return(order(), nil)
		runTx(m)
		m.events.EXPECT().Record(gomock.Any(), "pay_1", "order-1", gateway.OutcomePaid).Return(true, nil)
		m.repo.EXPECT().MarkPaid(gomock.Any(), "order-1", "pay_1", gomock.Any()).Return(true, nil)
		m.rewards.EXPECT().Settle(gomock.Any(), "user-1", "order-1").Return(nil)
		m.rewards.EXPECT().Credit(gomock.Any(), "user-1", int64(35), domain.SourceCashback, "order-1").Return(nil)

		err = service.HandleGatewayCallback(context.Background(), event)
		assert.NoError(t, err)
	})
}

func TestSweepExpiredOrders(t *testing.T) {
	t.Run("releases holds of swept orders", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().SweepExpired(gomock.Any(), gomock.Any()).Return([]domain.Order{
			{OrderID: "order-1", UserID: "user-1", PointsRedeemed: 300},
			{OrderID: "order-2", UserID: "user-2"},
		}, nil)
		m.rewards.EXPECT().Release(gomock.Any(), "user-1", "order-1").Return(nil)

		count, err := service.SweepExpiredOrders(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("release failure does not abort the sweep", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().SweepExpired(gomock.Any(), gomock.Any()).Return([]domain.Order{
			{OrderID: "order-1", UserID: "user-1", PointsRedeemed: 100},
			{OrderID: "order-2", UserID: "user-2", PointsRedeemed: 200},
		}, nil)
		m.rewards.EXPECT().Release(gomock.Any(), "user-1", "order-1").Return(errors.New("db down"))
		m.rewards.EXPECT().Release(gomock.Any(), "user-2", "order-2").Return(nil)

		count, err := service.SweepExpiredOrders(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 2, count)
	})
}

func TestCancelOrder(t *testing.T) {
	tests := []struct {
		name        string
		prepareMock func(m *mocks)
		wantErr     error
	}{
		{
			name: "cancel releases the hold",
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), "order-1").
					Return(&domain.Order{OrderID: "order-1", UserID: "user-1", Status: domain.OrderStatusCreated, PointsRedeemed: 100}, nil)
				m.repo.EXPECT().Transition(gomock.Any(), "order-1", domain.OrderStatusCancelled).Return(true, nil)
				m.rewards.EXPECT().Release(gomock.Any(), "user-1", "order-1").Return(nil)
			},
		},
		{
			name: "not the owner",
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), "order-1").
					Return(&domain.Order{OrderID: "order-1", UserID: "somebody-else"}, nil)
			},
			wantErr: ErrNotOrderOwner,
		},
		{
			name: "already terminal",
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), "order-1").
					Return(&domain.Order{OrderID: "order-1", UserID: "user-1", Status: domain.OrderStatusPaid}, nil)
				m.repo.EXPECT().Transition(gomock.Any(), "order-1", domain.OrderStatusCancelled).Return(false, nil)
			},
			wantErr: ErrOrderNotActive,
		},
		{
			name: "not found",
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), "order-1").Return(nil, nil)
			},
			wantErr: ErrOrderNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			err := service.CancelOrder(context.Background(), "user-1", "order-1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetOrder(t *testing.T) {
	t.Run("owner reads own order", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindByID(gomock.Any(), "order-1").
			Return(&domain.Order{OrderID: "order-1", UserID: "user-1"}, nil)

		order, err := service.GetOrder(context.Background(), "user-1", "order-1")
		assert.NoError(t, err)
		assert.Equal(t, "order-1", order.OrderID)
	})

	t.Run("foreign order is hidden", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindByID(gomock.Any(), "order-1").
			Return(&domain.Order{OrderID: "order-1", UserID: "somebody-else"}, nil)

		_, err := service.GetOrder(context.Background(), "user-1", "order-1")
		assert.ErrorIs(t, err, ErrNotOrderOwner)
	})
}

func TestRegenerateQR(t *testing.T) {
	tests := []struct {
		name        string
		prepareMock func(m *mocks)
		wantErr     error
	}{
		{
			name: "clears the stored payload",
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), "order-1").
					Return(&domain.Order{OrderID: "order-1", UserID: "user-1", Status: domain.OrderStatusPaid}, nil)
				m.repo.EXPECT().ClearQR(gomock.Any(), "order-1").Return(true, nil)
			},
		},
		{
			name: "unpaid order rejected",
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), "order-1").
					Return(&domain.Order{OrderID: "order-1", UserID: "user-1", Status: domain.OrderStatusCreated}, nil)
				m.repo.EXPECT().ClearQR(gomock.Any(), "order-1").Return(false, nil)
			},
			wantErr: ErrOrderNotPaid,
		},
		{
			name: "foreign order rejected",
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), "order-1").
					Return(&domain.Order{OrderID: "order-1", UserID: "somebody-else", Status: domain.OrderStatusPaid}, nil)
			},
			wantErr: ErrNotOrderOwner,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			err := service.RegenerateQR(context.Background(), "user-1", "order-1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
