package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	_ "github.com/stagepass/stagepass/docs"
	"github.com/stagepass/stagepass/internal/config"
	"github.com/stagepass/stagepass/internal/service"
	"github.com/stagepass/stagepass/pkg/auth"
)

func TestNew(t *testing.T) {
	cfg := &config.Config{WebhookSecret: "secret"}
	jwtService := auth.NewJWTService("secret")

	h := New(cfg, &service.Services{}, jwtService)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderHandler := NewMockOrderHandler(ctrl)
	mockRewardsHandler := NewMockRewardsHandler(ctrl)
	mockQRHandler := NewMockQRHandler(ctrl)

	mockOrderHandler.EXPECT().Webhook(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrderHandler.EXPECT().CreatePaymentLink(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrderHandler.EXPECT().GetOrders(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrderHandler.EXPECT().GetOrder(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrderHandler.EXPECT().CancelOrder(gomock.Any(), gomock.Any()).AnyTimes()
	mockOrderHandler.EXPECT().RegenerateQR(gomock.Any(), gomock.Any()).AnyTimes()
	mockRewardsHandler.EXPECT().GetBalance(gomock.Any(), gomock.Any()).AnyTimes()
	mockRewardsHandler.EXPECT().GetTransactions(gomock.Any(), gomock.Any()).AnyTimes()
	mockRewardsHandler.EXPECT().GetRedemptionInfo(gomock.Any(), gomock.Any()).AnyTimes()
	mockQRHandler.EXPECT().Verify(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		OrderHandler:   mockOrderHandler,
		RewardsHandler: mockRewardsHandler,
		QRHandler:      mockQRHandler,
		jwtService:     auth.NewJWTService("secret"),
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/webhooks/payment", http.StatusOK},
		{"POST", "/api/qr/verify", http.StatusOK},
		{"POST", "/api/orders/payment-link", http.StatusUnauthorized},
		{"GET", "/api/orders/", http.StatusUnauthorized},
		{"GET", "/api/orders/order-1", http.StatusUnauthorized},
		{"POST", "/api/orders/order-1/cancel", http.StatusUnauthorized},
		{"POST", "/api/orders/order-1/qr/regenerate", http.StatusUnauthorized},
		{"GET", "/api/rewards/balance", http.StatusUnauthorized},
		{"GET", "/api/rewards/transactions", http.StatusUnauthorized},
		{"GET", "/api/rewards/redemption/ws-1", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
