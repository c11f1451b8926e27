package dto

type CreatePaymentLinkRequestDTO struct {
	WorkshopID     string `json:"workshop_id" example:"7b6fc9f0-2ac0-4f7c-9d3e-6f3f4c1b2a10"`
	PointsToRedeem int64  `json:"points_to_redeem,omitempty" example:"300"`
}

type PaymentLinkResponseDTO struct {
	OrderID          string `json:"order_id" example:"3f1d3a8e-9a44-4f4b-8a7a-1c2d3e4f5a6b"`
	PaymentLinkURL   string `json:"payment_link_url" example:"https://pay.example.com/plink_abc123"`
	Status           string `json:"status" example:"created"`
	AmountMinor      int64  `json:"amount_minor" example:"100000"`
	DiscountMinor    int64  `json:"discount_minor" example:"30000"`
	FinalAmountMinor int64  `json:"final_amount_minor" example:"70000"`
	Currency         string `json:"currency" example:"INR"`
	PointsRedeemed   int64  `json:"points_redeemed" example:"300"`
	CashbackPoints   int64  `json:"cashback_points" example:"35"`
	IsExisting       bool   `json:"is_existing" example:"false"`
}

type GetOrderResponseDTO struct {
	OrderID          string  `json:"order_id"`
	WorkshopID       string  `json:"workshop_id"`
	WorkshopTitle    string  `json:"workshop_title"`
	Status           string  `json:"status" example:"paid"`
	PaymentLinkURL   string  `json:"payment_link_url,omitempty"`
	AmountMinor      int64   `json:"amount_minor"`
	DiscountMinor    int64   `json:"discount_minor"`
	FinalAmountMinor int64   `json:"final_amount_minor"`
	Currency         string  `json:"currency"`
	PointsRedeemed   int64   `json:"points_redeemed"`
	CashbackPoints   int64   `json:"cashback_points"`
	QRCodeData       *string `json:"qr_code_data,omitempty"`
	PaidAt           *string `json:"paid_at,omitempty" example:"2026-08-20T12:00:00Z"`
	CreatedAt        string  `json:"created_at" example:"2026-08-20T11:30:00Z"`
}
