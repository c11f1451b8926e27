package redemption

import (
	"context"
	"errors"
	"fmt"

	"github.com/stagepass/stagepass/internal/catalog"
	"github.com/stagepass/stagepass/internal/config"
	"github.com/stagepass/stagepass/internal/domain"
)

var ErrRedemptionNotAllowed = errors.New("redemption not allowed")

// Calculator converts reward points into order discounts. Pure functions
// of the balance and the workshop price, no side effects.
type Calculator struct {
	capPerWorkshop      int64
	maxDiscountFraction float64
	pointValueMinor     int64
}

func NewCalculator(cfg *config.Config) *Calculator {
	return &Calculator{
		capPerWorkshop:      cfg.RedemptionCap,
		maxDiscountFraction: cfg.MaxDiscountFraction,
		pointValueMinor:     cfg.PointValueMinor,
	}
}

// MaxRedeemablePoints is
// min(available_balance, cap_per_workshop, floor(amount * fraction / point_value)).
func (c *Calculator) MaxRedeemablePoints(balance *domain.RewardBalance, amountMinor int64) int64 {
	byOrder := int64(float64(amountMinor) * c.maxDiscountFraction / float64(c.pointValueMinor))

	max := balance.AvailableBalance
	if c.capPerWorkshop < max {
		max = c.capPerWorkshop
	}
	if byOrder < max {
		max = byOrder
	}
	if max < 0 {
		return 0
	}
	return max
}

func (c *Calculator) DiscountMinor(points int64) int64 {
	return points * c.pointValueMinor
}

func (c *Calculator) Info(workshopID string, balance *domain.RewardBalance, amountMinor int64) domain.WorkshopRedemptionInfo {
	max := c.MaxRedeemablePoints(balance, amountMinor)
	return domain.WorkshopRedemptionInfo{
		WorkshopID:            workshopID,
		AvailableBalance:      balance.AvailableBalance,
		MaxRedeemablePoints:   max,
		RecommendedRedemption: max,
		DiscountMinor:         c.DiscountMinor(max),
		FinalAmountMinor:      amountMinor - c.DiscountMinor(max),
	}
}

// Validate rejects a redemption request that exceeds the computed maximum
// or would zero out (or invert) the payable amount.
func (c *Calculator) Validate(points int64, balance *domain.RewardBalance, amountMinor int64) error {
	if points <= 0 {
		return fmt.Errorf("%w: points must be positive", ErrRedemptionNotAllowed)
	}
	if max := c.MaxRedeemablePoints(balance, amountMinor); points > max {
		return fmt.Errorf("%w: requested %d points, maximum is %d", ErrRedemptionNotAllowed, points, max)
	}
	if amountMinor-c.DiscountMinor(points) <= 0 {
		return fmt.Errorf("%w: discount would not leave a payable amount", ErrRedemptionNotAllowed)
	}
	return nil
}

type BalanceSource interface {
	GetBalance(ctx context.Context, userID string) (*domain.RewardBalance, error)
}

type Catalog interface {
	GetWorkshop(ctx context.Context, workshopID string) (*catalog.Workshop, error)
}

// Service answers redemption previews for a (user, workshop) pair.
type Service struct {
	calc     *Calculator
	balances BalanceSource
	catalog  Catalog
}

func NewService(calc *Calculator, balances BalanceSource, catalog Catalog) *Service {
	return &Service{
		calc:     calc,
		balances: balances,
		catalog:  catalog,
	}
}

func (s *Service) Calculator() *Calculator {
	return s.calc
}

func (s *Service) GetRedemptionInfo(ctx context.Context, userID, workshopID string) (*domain.WorkshopRedemptionInfo, error) {
	workshop, err := s.catalog.GetWorkshop(ctx, workshopID)
	if err != nil {
		return nil, err
	}

	balance, err := s.balances.GetBalance(ctx, userID)
	if err != nil {
		return nil, err
	}

	info := s.calc.Info(workshopID, balance, workshop.PriceMinor)
	return &info, nil
}
