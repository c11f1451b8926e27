package domain

// QRPayload is the signed registration proof rendered into the QR code.
// The signature is an HMAC over the canonical JSON with Signature empty;
// field order below is the canonical order.
type QRPayload struct {
	OrderID      string         `json:"order_id"`
	Workshop     QRWorkshop     `json:"workshop"`
	Registration QRRegistration `json:"registration"`
	Verification QRVerification `json:"verification"`
	Payment      QRPayment      `json:"payment"`
	Signature    string         `json:"signature"`
}

type QRWorkshop struct {
	UUID    string   `json:"uuid"`
	Title   string   `json:"title"`
	Artists []string `json:"artists"`
	Studio  string   `json:"studio"`
	Date    string   `json:"date"`
	Time    string   `json:"time"`
}

type QRRegistration struct {
	UserName    string `json:"user_name"`
	MaskedPhone string `json:"masked_phone"`
	AmountPaid  int64  `json:"amount_paid"`
	Currency    string `json:"currency"`
}

type QRVerification struct {
	GeneratedAt string `json:"generated_at"`
	ExpiresAt   string `json:"expires_at"`
	Nonce       string `json:"nonce"`
}

type QRPayment struct {
	TransactionID string `json:"transaction_id"`
	Gateway       string `json:"gateway"`
}
