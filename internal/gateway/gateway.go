package gateway

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/stagepass/stagepass/internal/config"
	"github.com/stagepass/stagepass/pkg/clients"
)

// ErrUnavailable covers timeouts and 5xx responses from the payment
// provider. No order state is committed when it is returned, so the
// caller may retry safely.
var ErrUnavailable = errors.New("payment gateway unavailable")

type CreateLinkRequest struct {
	OrderID        string
	AmountMinor    int64
	Currency       string
	ContactName    string
	ContactPhone   string
	Description    string
	IdempotencyKey string
}

type CreateLinkResponse struct {
	PaymentLinkURL string `json:"payment_link_url"`
	GatewayID      string `json:"gateway_id"`
	Status         string `json:"status"`
}

// Event is a parsed inbound webhook delivery.
type Event struct {
	TransactionID string `json:"gateway_transaction_id"`
	OrderID       string `json:"order_id"`
	Outcome       string `json:"outcome"`
}

const (
	OutcomePaid   = "paid"
	OutcomeFailed = "failed"
)

type Client struct {
	baseURL   string
	keyID     string
	keySecret string
	timeout   time.Duration
	client    clients.HTTPClientI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Client {
	return &Client{
		baseURL:   cfg.GatewayAddress,
		keyID:     cfg.GatewayKeyID,
		keySecret: cfg.GatewayKeySecret,
		timeout:   cfg.GatewayTimeout,
		client:    client,
	}
}

// CreateLink asks the provider for a hosted payment link. The call is
// bounded by the configured timeout and carries the idempotency key so a
// retried request cannot produce a second charge.
func (c *Client) CreateLink(ctx context.Context, req CreateLinkRequest) (*CreateLinkResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := json.Marshal(map[string]any{
		"order_id":    req.OrderID,
		"amount":      req.AmountMinor,
		"currency":    req.Currency,
		"description": req.Description,
		"contact": map[string]string{
			"name":  req.ContactName,
			"phone": req.ContactPhone,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("can't marshal payment link request: %w", err)
	}

	headers := http.Header{}
	headers.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(c.keyID+":"+c.keySecret)))
	headers.Set("X-Idempotency-Key", req.IdempotencyKey)

	statusCode, respBody, err := c.client.Post(ctx, c.baseURL+"/v1/payment_links", headers, body)
	if err != nil {
		zap.L().Error("payment link request failed", zap.String("orderID", req.OrderID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	switch {
	case statusCode >= http.StatusInternalServerError:
		zap.L().Error("payment gateway returned server error", zap.Int("status", statusCode), zap.String("orderID", req.OrderID))
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, statusCode)
	case statusCode != http.StatusOK && statusCode != http.StatusCreated:
		return nil, fmt.Errorf("payment gateway rejected link creation: status %d", statusCode)
	}

	var resp CreateLinkResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("can't parse payment link response: %w", err)
	}
	if resp.PaymentLinkURL == "" || resp.GatewayID == "" {
		return nil, errors.New("payment gateway returned incomplete link")
	}
	return &resp, nil
}

// VerifySignature checks the webhook HMAC so forged callbacks are dropped
// before they reach the order service.
func VerifySignature(secret string, body []byte, signature string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// ParseEvent decodes a webhook body into an Event.
func ParseEvent(body []byte) (*Event, error) {
	var event Event
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, fmt.Errorf("can't parse gateway event: %w", err)
	}
	if event.TransactionID == "" || event.OrderID == "" {
		return nil, errors.New("gateway event missing identifiers")
	}
	if event.Outcome != OutcomePaid && event.Outcome != OutcomeFailed {
		return nil, fmt.Errorf("unknown gateway outcome %q", event.Outcome)
	}
	return &event, nil
}
