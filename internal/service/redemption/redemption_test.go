package redemption

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stagepass/stagepass/internal/config"
	"github.com/stagepass/stagepass/internal/domain"
)

func newCalculator() *Calculator {
	return NewCalculator(&config.Config{
		RedemptionCap:       300,
		MaxDiscountFraction: 0.5,
		PointValueMinor:     100, // one point is worth one rupee
	})
}

func TestMaxRedeemablePoints(t *testing.T) {
	calc := newCalculator()

	tests := []struct {
		name        string
		available   int64
		amountMinor int64
		want        int64
	}{
		// balance=500, cap=300, order=Rs 1000 at 50% -> min(500, 300, 500)
		{name: "cap binds", available: 500, amountMinor: 100000, want: 300},
		{name: "balance binds", available: 100, amountMinor: 100000, want: 100},
		{name: "order fraction binds", available: 500, amountMinor: 40000, want: 200},
		{name: "zero balance", available: 0, amountMinor: 100000, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balance := &domain.RewardBalance{AvailableBalance: tt.available}
			assert.Equal(t, tt.want, calc.MaxRedeemablePoints(balance, tt.amountMinor))
		})
	}
}

func TestInfo(t *testing.T) {
	calc := newCalculator()
	balance := &domain.RewardBalance{LifetimeEarned: 500, AvailableBalance: 500}

	info := calc.Info("ws-1", balance, 100000)

	assert.Equal(t, "ws-1", info.WorkshopID)
	assert.Equal(t, int64(500), info.AvailableBalance)
	assert.Equal(t, int64(300), info.MaxRedeemablePoints)
	assert.Equal(t, int64(300), info.RecommendedRedemption)
	assert.Equal(t, int64(30000), info.DiscountMinor)
	assert.Equal(t, int64(70000), info.FinalAmountMinor)
}

func TestValidate(t *testing.T) {
	calc := newCalculator()
	balance := &domain.RewardBalance{AvailableBalance: 500}

	tests := []struct {
		name        string
		points      int64
		amountMinor int64
		expectErr   bool
	}{
		{name: "within maximum", points: 300, amountMinor: 100000},
		{name: "exceeds cap", points: 301, amountMinor: 100000, expectErr: true},
		{name: "non-positive points", points: 0, amountMinor: 100000, expectErr: true},
		{name: "negative points", points: -5, amountMinor: 100000, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := calc.Validate(tt.points, balance, tt.amountMinor)
			if tt.expectErr {
				assert.ErrorIs(t, err, ErrRedemptionNotAllowed)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_NothingLeftToPay(t *testing.T) {
	// Cap and fraction relaxed so the full price can be covered by points.
	calc := NewCalculator(&config.Config{
		RedemptionCap:       10000,
		MaxDiscountFraction: 1.0,
		PointValueMinor:     100,
	})
	balance := &domain.RewardBalance{AvailableBalance: 10000}

	err := calc.Validate(1000, balance, 100000)
	assert.ErrorIs(t, err, ErrRedemptionNotAllowed)
}
