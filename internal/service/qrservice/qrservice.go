package qrservice

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/stagepass/stagepass/internal/config"
	"github.com/stagepass/stagepass/internal/domain"
	"github.com/stagepass/stagepass/pkg/utils"
)

const gatewayName = "stagepass-payments"

// ErrorKind values returned to the scanning client. Scanners run in an
// untrusted context and always get a well-formed answer, never a panic
// or a bare 500.
const (
	ErrKindSignatureInvalid = "signature_invalid"
	ErrKindExpired          = "expired"
	ErrKindMalformed        = "malformed"
)

var ErrOrderNotPaid = errors.New("order is not paid")

// nonceNamespace pins deterministic nonce derivation: issuing the same
// order twice yields byte-identical payloads.
var nonceNamespace = uuid.MustParse("7e3b1e2a-9c41-4f6e-8a5d-2b9f0c4d71aa")

type VerificationResult struct {
	Valid     bool
	Payload   *domain.QRPayload
	ErrorKind string
}

// Service builds, signs and verifies QR registration payloads. Issuance
// and verification share the signing secret and the canonical encoding.
type Service struct {
	secret   []byte
	validity time.Duration
	now      func() time.Time
}

func New(cfg *config.Config) *Service {
	return &Service{
		secret:   []byte(cfg.QRSecret),
		validity: cfg.QRValidity,
		now:      time.Now,
	}
}

// Issue renders the signed payload for a paid order. Every field is
// derived from the order record, so re-issuing is idempotent.
func (s *Service) Issue(order *domain.Order) (string, error) {
	if order.Status != domain.OrderStatusPaid || order.PaidAt == nil {
		return "", ErrOrderNotPaid
	}

	var gatewayTxID string
	if order.GatewayTxID != nil {
		gatewayTxID = *order.GatewayTxID
	}

	generatedAt := order.PaidAt.UTC()
	payload := domain.QRPayload{
		OrderID: order.OrderID,
		Workshop: domain.QRWorkshop{
			UUID:    order.Workshop.UUID,
			Title:   order.Workshop.Title,
			Artists: order.Workshop.Artists,
			Studio:  order.Workshop.Studio,
			Date:    order.Workshop.Date,
			Time:    order.Workshop.Time,
		},
		Registration: domain.QRRegistration{
			UserName:    order.UserName,
			MaskedPhone: utils.MaskPhone(order.UserPhone),
			AmountPaid:  order.FinalAmountMinor,
			Currency:    order.Currency,
		},
		Verification: domain.QRVerification{
			GeneratedAt: generatedAt.Format(time.RFC3339),
			ExpiresAt:   generatedAt.Add(s.validity).Format(time.RFC3339),
			Nonce:       uuid.NewSHA1(nonceNamespace, []byte(order.OrderID)).String(),
		},
		Payment: domain.QRPayment{
			TransactionID: gatewayTxID,
			Gateway:       gatewayName,
		},
	}

	signature, err := s.sign(payload)
	if err != nil {
		return "", err
	}
	payload.Signature = signature

	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("can't marshal QR payload: %w", err)
	}
	return string(data), nil
}

// Verify checks the signature and the expiry window of scanned QR data.
// Failures come back as structured kinds, never as errors.
func (s *Service) Verify(data []byte) VerificationResult {
	var payload domain.QRPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return VerificationResult{ErrorKind: ErrKindMalformed}
	}
	if payload.OrderID == "" || payload.Signature == "" {
		return VerificationResult{ErrorKind: ErrKindMalformed}
	}

	expected, err := s.sign(payload)
	if err != nil {
		return VerificationResult{ErrorKind: ErrKindMalformed}
	}
	if !hmac.Equal([]byte(expected), []byte(payload.Signature)) {
		return VerificationResult{ErrorKind: ErrKindSignatureInvalid}
	}

	expiresAt, err := time.Parse(time.RFC3339, payload.Verification.ExpiresAt)
	if err != nil {
		return VerificationResult{ErrorKind: ErrKindMalformed}
	}
	if !s.now().Before(expiresAt) {
		return VerificationResult{ErrorKind: ErrKindExpired}
	}

	return VerificationResult{Valid: true, Payload: &payload}
}

// sign computes the HMAC over the canonical payload: the JSON encoding
// with an empty signature field.
func (s *Service) sign(payload domain.QRPayload) (string, error) {
	payload.Signature = ""
	canonical, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("can't marshal canonical payload: %w", err)
	}
	mac := hmac.New(sha256.New, s.secret)
	mac.Write(canonical)
	return hex.EncodeToString(mac.Sum(nil)), nil
}
