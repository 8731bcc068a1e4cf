package pricing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/zakerai/zaker-web/app/models"
)

var monthsPerYear = decimal.NewFromInt(12)

// ErrMalformedPrice is returned when a catalog price is not a decimal string.
var ErrMalformedPrice = errors.New("malformed price")

// TiersForPlan returns the tiers owned by planID in catalog order. A plan
// without tiers yields an empty slice.
func TiersForPlan(tiers []models.Tier, planID int64) []models.Tier {
	out := make([]models.Tier, 0, 2)
	for _, t := range tiers {
		if t.PlanID == planID {
			out = append(out, t)
		}
	}
	return out
}

// DefaultTier is the tier pre-selected when a plan is chosen.
func DefaultTier(tiers []models.Tier, planID int64) (models.Tier, bool) {
	for _, t := range tiers {
		if t.PlanID == planID {
			return t, true
		}
	}
	return models.Tier{}, false
}

// EffectivePrice returns the raw catalog price for the billing cycle.
func EffectivePrice(tier models.Tier, cycle models.BillingCycle) (decimal.Decimal, error) {
	raw := tier.MonthlyPrice
	if cycle.IsYearly() {
		raw = tier.YearlyPrice
	}
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: tier %d %s price %q: %w", ErrMalformedPrice, tier.ID, cycle, raw, err)
	}
	return price, nil
}

// MonthlyEquivalent is the headline per-month figure: the monthly price, or
// the yearly price spread over twelve months.
func MonthlyEquivalent(tier models.Tier, cycle models.BillingCycle) (decimal.Decimal, error) {
	price, err := EffectivePrice(tier, cycle)
	if err != nil {
		return decimal.Zero, err
	}
	if cycle.IsYearly() {
		return price.Div(monthsPerYear), nil
	}
	return price, nil
}
