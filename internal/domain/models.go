package domain

import "time"

// OrderStatus is the closed set of order states. Created is the only
// non-terminal state; every transition out of it is final.
type OrderStatus string

const (
	OrderStatusCreated   OrderStatus = "created"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusFailed    OrderStatus = "failed"
	OrderStatusExpired   OrderStatus = "expired"
	OrderStatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusCreated, OrderStatusPaid, OrderStatusFailed, OrderStatusExpired, OrderStatusCancelled:
		return true
	}
	return false
}

func (s OrderStatus) Terminal() bool {
	return s.Valid() && s != OrderStatusCreated
}

// CanTransitionTo reports whether the state machine allows s -> next.
// No edges leave a terminal state.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return s == OrderStatusCreated && next.Terminal()
}

// WorkshopSnapshot is the denormalized workshop view frozen onto an order
// at creation time, so later catalog edits never change a receipt.
type WorkshopSnapshot struct {
	UUID    string   `json:"uuid"`
	Title   string   `json:"title"`
	Artists []string `json:"artists"`
	Studio  string   `json:"studio"`
	Date    string   `json:"date"`
	Time    string   `json:"time"`
}

type Order struct {
	OrderID          string           `db:"order_id"`
	UserID           string           `db:"user_id"`
	WorkshopID       string           `db:"workshop_id"`
	Workshop         WorkshopSnapshot `db:"workshop_snapshot"`
	UserName         string           `db:"user_name"`
	UserPhone        string           `db:"user_phone"`
	AmountMinor      int64            `db:"amount_minor"`
	Currency         string           `db:"currency"`
	Status           OrderStatus      `db:"status"`
	PaymentLinkURL   string           `db:"payment_link_url"`
	GatewayID        string           `db:"gateway_id"`
	GatewayTxID      *string          `db:"gateway_tx_id"`
	QRCodeData       *string          `db:"qr_code_data"`
	QRGeneratedAt    *time.Time       `db:"qr_generated_at"`
	CashbackPoints   int64            `db:"cashback_points"`
	PointsRedeemed   int64            `db:"points_redeemed"`
	DiscountMinor    int64            `db:"discount_minor"`
	FinalAmountMinor int64            `db:"final_amount_minor"`
	PaidAt           *time.Time       `db:"paid_at"`
	CreatedAt        time.Time        `db:"created_at"`
	UpdatedAt        time.Time        `db:"updated_at"`
}

type RewardType string

const (
	RewardTypeCredit RewardType = "credit"
	RewardTypeDebit  RewardType = "debit"
)

type RewardSource string

const (
	SourceReferral           RewardSource = "referral"
	SourceCashback           RewardSource = "cashback"
	SourceWelcomeBonus       RewardSource = "welcome_bonus"
	SourceSpecialPromotion   RewardSource = "special_promotion"
	SourceWorkshopCompletion RewardSource = "workshop_completion"
	SourceAdminBonus         RewardSource = "admin_bonus"
	SourceRedemption         RewardSource = "redemption"
)

type RewardStatus string

const (
	RewardStatusPending   RewardStatus = "pending"
	RewardStatusCompleted RewardStatus = "completed"
	RewardStatusFailed    RewardStatus = "failed"
	RewardStatusCancelled RewardStatus = "cancelled"
)

// RewardTransaction is one row of the append-only ledger. Rows are never
// deleted; only Status (and ProcessedAt) change during settlement.
type RewardTransaction struct {
	TransactionID string       `db:"transaction_id"`
	UserID        string       `db:"user_id"`
	Type          RewardType   `db:"type"`
	Points        int64        `db:"points"`
	Source        RewardSource `db:"source"`
	Status        RewardStatus `db:"status"`
	ReferenceID   string       `db:"reference_id"`
	CreatedAt     time.Time    `db:"created_at"`
	ProcessedAt   *time.Time   `db:"processed_at"`
}

// RewardBalance is derived from the ledger, never stored authoritatively.
// A pending debit already holds funds, so it counts into LifetimeRedeemed.
type RewardBalance struct {
	LifetimeEarned   int64 `json:"lifetime_earned"`
	LifetimeRedeemed int64 `json:"lifetime_redeemed"`
	AvailableBalance int64 `json:"available_balance"`
}

// WorkshopRedemptionInfo is the redemption preview for one (user, workshop).
type WorkshopRedemptionInfo struct {
	WorkshopID            string `json:"workshop_id"`
	AvailableBalance      int64  `json:"available_balance"`
	MaxRedeemablePoints   int64  `json:"max_redeemable_points"`
	RecommendedRedemption int64  `json:"recommended_redemption"`
	DiscountMinor         int64  `json:"discount_amount"`
	FinalAmountMinor      int64  `json:"final_amount"`
}
