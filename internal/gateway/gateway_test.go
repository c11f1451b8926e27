package gateway

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/stagepass/stagepass/internal/config"
	"github.com/stagepass/stagepass/pkg/clients"
)

func newClient(t *testing.T) (*Client, *clients.MockHTTPClientI) {
	ctrl := gomock.NewController(t)
	httpc := clients.NewMockHTTPClientI(ctrl)
	cfg := &config.Config{
		GatewayAddress:   "http://gateway.test",
		GatewayKeyID:     "key",
		GatewayKeySecret: "secret",
		GatewayTimeout:   2 * time.Second,
	}
	return New(cfg, httpc), httpc
}

func TestCreateLink(t *testing.T) {
	req := CreateLinkRequest{
		OrderID:        "order-1",
		AmountMinor:    100000,
		Currency:       "INR",
		ContactName:    "Asha Rao",
		ContactPhone:   "+919876543210",
		IdempotencyKey: "idem-1",
	}

	tests := []struct {
		name      string
		mockSetup func(httpc *clients.MockHTTPClientI)
		want      *CreateLinkResponse
		wantErr   error
	}{
		{
			name: "link created",
			mockSetup: func(httpc *clients.MockHTTPClientI) {
				httpc.EXPECT().
					Post(gomock.Any(), "http://gateway.test/v1/payment_links", gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, headers http.Header, _ []byte) (int, []byte, error) {
						assert.Equal(t, "idem-1", headers.Get("X-Idempotency-Key"))
						assert.NotEmpty(t, headers.Get("Authorization"))
						return http.StatusOK, []byte(`{"payment_link_url":"https://pay.test/l/abc","gateway_id":"plink_1","status":"created"}`), nil
					})
			},
			want: &CreateLinkResponse{PaymentLinkURL: "https://pay.test/l/abc", GatewayID: "plink_1", Status: "created"},
		},
		{
			name: "transport error maps to unavailable",
			mockSetup: func(httpc *clients.MockHTTPClientI) {
				httpc.EXPECT().
					Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(0, nil, errors.New("dial timeout"))
			},
			wantErr: ErrUnavailable,
		},
		{
			name: "server error maps to unavailable",
			mockSetup: func(httpc *clients.MockHTTPClientI) {
				httpc.EXPECT().
					Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(http.StatusBadGateway, []byte("gateway down"), nil)
			},
			wantErr: ErrUnavailable,
		},
		{
			name: "rejection is not retryable",
			mockSetup: func(httpc *clients.MockHTTPClientI) {
				httpc.EXPECT().
					Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(http.StatusBadRequest, []byte(`{"error":"bad amount"}`), nil)
			},
			wantErr: errors.New("payment gateway rejected link creation: status 400"),
		},
		{
			name: "incomplete response",
			mockSetup: func(httpc *clients.MockHTTPClientI) {
				httpc.EXPECT().
					Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(http.StatusOK, []byte(`{"status":"created"}`), nil)
			},
			wantErr: errors.New("payment gateway returned incomplete link"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, httpc := newClient(t)
			tt.mockSetup(httpc)

			got, err := client.CreateLink(context.Background(), req)
			if tt.wantErr != nil {
				assert.Error(t, err)
				if errors.Is(tt.wantErr, ErrUnavailable) {
					assert.ErrorIs(t, err, ErrUnavailable)
				} else {
					assert.EqualError(t, err, tt.wantErr.Error())
				}
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func signature(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	body := []byte(`{"gateway_transaction_id":"tx_1","order_id":"order-1","outcome":"paid"}`)
	// hmac-sha256("webhook-secret", body)
	sig := signature("webhook-secret", body)

	assert.True(t, VerifySignature("webhook-secret", body, sig))
	assert.False(t, VerifySignature("other-secret", body, sig))
	assert.False(t, VerifySignature("webhook-secret", append(body, ' '), sig))
	assert.False(t, VerifySignature("webhook-secret", body, "deadbeef"))
}

func TestParseEvent(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		want      *Event
		expectErr bool
	}{
		{
			name: "paid event",
			body: `{"gateway_transaction_id":"tx_1","order_id":"order-1","outcome":"paid"}`,
			want: &Event{TransactionID: "tx_1", OrderID: "order-1", Outcome: OutcomePaid},
		},
		{
			name: "failed event",
			body: `{"gateway_transaction_id":"tx_2","order_id":"order-1","outcome":"failed"}`,
			want: &Event{TransactionID: "tx_2", OrderID: "order-1", Outcome: OutcomeFailed},
		},
		{name: "not json", body: `{{`, expectErr: true},
		{name: "missing ids", body: `{"outcome":"paid"}`, expectErr: true},
		{name: "unknown outcome", body: `{"gateway_transaction_id":"tx_3","order_id":"order-1","outcome":"refunded"}`, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEvent([]byte(tt.body))
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
