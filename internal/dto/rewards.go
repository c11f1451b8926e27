package dto

type BalanceResponseDTO struct {
	LifetimeEarned   int64 `json:"lifetime_earned" example:"500"`
	LifetimeRedeemed int64 `json:"lifetime_redeemed" example:"200"`
	AvailableBalance int64 `json:"available_balance" example:"300"`
}

type TransactionResponseDTO struct {
	TransactionID string  `json:"transaction_id"`
	Type          string  `json:"type" example:"credit"`
	Points        int64   `json:"points" example:"50"`
	Source        string  `json:"source" example:"cashback"`
	Status        string  `json:"status" example:"completed"`
	ReferenceID   string  `json:"reference_id"`
	CreatedAt     string  `json:"created_at" example:"2026-08-20T12:00:00Z"`
	ProcessedAt   *string `json:"processed_at,omitempty" example:"2026-08-20T12:00:01Z"`
}

type RedemptionInfoResponseDTO struct {
	WorkshopID            string `json:"workshop_id"`
	AvailableBalance      int64  `json:"available_balance" example:"500"`
	MaxRedeemablePoints   int64  `json:"max_redeemable_points" example:"300"`
	RecommendedRedemption int64  `json:"recommended_redemption" example:"300"`
	DiscountMinor         int64  `json:"discount_minor" example:"30000"`
	FinalAmountMinor      int64  `json:"final_amount_minor" example:"70000"`
}
