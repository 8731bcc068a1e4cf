package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/zakerai/zaker-web/app/models"
)

// PlanCard is one plan as shown in the pricing section: its tiers and the
// primary (first) tier whose price is used as the headline.
type PlanCard struct {
	Plan              models.Plan     `json:"plan"`
	Tiers             []models.Tier   `json:"tiers"`
	PrimaryTier       *models.Tier    `json:"primary_tier,omitempty"`
	Price             decimal.Decimal `json:"price"`
	MonthlyEquivalent decimal.Decimal `json:"monthly_equivalent"`
}

// PlanCards pairs every plan of the catalog with its tiers, in catalog order.
// Plans without tiers get a zero price.
func PlanCards(catalog models.Catalog, cycle models.BillingCycle) ([]PlanCard, error) {
	cards := make([]PlanCard, 0, len(catalog.Plans))
	for _, plan := range catalog.Plans {
		card := PlanCard{
			Plan:  plan,
			Tiers: TiersForPlan(catalog.Tiers, plan.ID),
		}
		if primary, ok := DefaultTier(catalog.Tiers, plan.ID); ok {
			price, err := EffectivePrice(primary, cycle)
			if err != nil {
				return nil, err
			}
			monthly, err := MonthlyEquivalent(primary, cycle)
			if err != nil {
				return nil, err
			}
			card.PrimaryTier = &primary
			card.Price = price
			card.MonthlyEquivalent = monthly
		}
		cards = append(cards, card)
	}
	return cards, nil
}
