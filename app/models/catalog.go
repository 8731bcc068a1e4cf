package models

import (
	"errors"
	"fmt"
	"strings"
)

const (
	BILLING_MONTHLY BillingCycle = "monthly"
	BILLING_YEARLY  BillingCycle = "yearly"
)

var (
	ErrInvalidBillingCycle = errors.New("billing cycle must be monthly or yearly")
	ErrInvalidCatalog      = errors.New("invalid catalog")
)

// BillingCycle selects which tier price is charged and submitted.
type BillingCycle string

// ParseBillingCycle accepts "monthly" or "yearly" (case-insensitive). An empty
// value yields the monthly default.
func ParseBillingCycle(raw string) (BillingCycle, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", string(BILLING_MONTHLY):
		return BILLING_MONTHLY, nil
	case string(BILLING_YEARLY):
		return BILLING_YEARLY, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidBillingCycle, raw)
	}
}

func (b BillingCycle) IsYearly() bool {
	return b == BILLING_YEARLY
}

// Plan is a top-level product offering such as "Teachers" or "Schools".
type Plan struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    bool   `json:"is_active"`
}

// Key is the normalized plan name used to look up display text.
func (p Plan) Key() string {
	return strings.ToLower(strings.TrimSpace(p.Name))
}

// Tier is a priced variant of a plan. Prices are decimal strings exactly as
// delivered by the catalog.
type Tier struct {
	ID           int64    `json:"id"`
	PlanID       int64    `json:"plan_id"`
	Name         string   `json:"name"`
	MonthlyPrice string   `json:"monthly_price"`
	YearlyPrice  string   `json:"yearly_price"`
	Features     []string `json:"features"`
	IsActive     bool     `json:"is_active"`
}

// Catalog is the immutable set of plans and tiers a wizard session works with.
type Catalog struct {
	Plans []Plan `json:"plans"`
	Tiers []Tier `json:"tiers"`
}

func (c Catalog) Plan(id int64) (Plan, bool) {
	for _, p := range c.Plans {
		if p.ID == id {
			return p, true
		}
	}
	return Plan{}, false
}

func (c Catalog) Tier(id int64) (Tier, bool) {
	for _, t := range c.Tiers {
		if t.ID == id {
			return t, true
		}
	}
	return Tier{}, false
}

// Validate checks that every tier references a plan of the same catalog.
func (c Catalog) Validate() error {
	for _, t := range c.Tiers {
		if _, ok := c.Plan(t.PlanID); !ok {
			return fmt.Errorf("%w: tier %d references unknown plan %d", ErrInvalidCatalog, t.ID, t.PlanID)
		}
	}
	return nil
}

// FallbackCatalog is served whenever the remote catalog cannot be fetched.
func FallbackCatalog() Catalog {
	return Catalog{Plans: FallbackPlans(), Tiers: FallbackTiers()}
}

func FallbackPlans() []Plan {
	return []Plan{
		{
			ID:          1,
			Name:        "Teachers",
			Description: "Perfect for individual educators",
			IsActive:    true,
		},
		{
			ID:          2,
			Name:        "Schools",
			Description: "Comprehensive solution for institutions",
			IsActive:    true,
		},
	}
}

func FallbackTiers() []Tier {
	return []Tier{
		{
			ID:           1,
			PlanID:       1,
			Name:         "Basic",
			MonthlyPrice: "900",
			YearlyPrice:  "8640",
			Features: []string{
				"Up to 500 papers/month",
				"Basic analytics",
				"Email support",
				"Arabic & English support",
			},
			IsActive: true,
		},
		{
			ID:           2,
			PlanID:       1,
			Name:         "Pro",
			MonthlyPrice: "1500",
			YearlyPrice:  "14400",
			Features: []string{
				"Up to 1500 papers/month",
				"Advanced analytics",
				"Priority support",
				"All subjects",
				"Custom feedback templates",
			},
			IsActive: true,
		},
		{
			ID:           3,
			PlanID:       2,
			Name:         "Basic",
			MonthlyPrice: "4000",
			YearlyPrice:  "38400",
			Features: []string{
				"Unlimited papers",
				"Up to 20 teachers",
				"Admin dashboard",
				"Basic analytics",
				"Email support",
			},
			IsActive: true,
		},
		{
			ID:           4,
			PlanID:       2,
			Name:         "Enterprise",
			MonthlyPrice: "8000",
			YearlyPrice:  "76800",
			Features: []string{
				"Unlimited papers",
				"Unlimited teachers",
				"Advanced admin dashboard",
				"Full analytics suite",
				"24/7 priority support",
				"Custom integrations",
				"Dedicated account manager",
			},
			IsActive: true,
		},
	}
}
