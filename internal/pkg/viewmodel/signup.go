package viewmodel

import (
	"github.com/shopspring/decimal"

	"github.com/zakerai/zaker-web/app/models"
	"github.com/zakerai/zaker-web/internal/pkg/i18n"
	"github.com/zakerai/zaker-web/internal/pkg/pricing"
	"github.com/zakerai/zaker-web/internal/pkg/validation"
	"github.com/zakerai/zaker-web/internal/pkg/wizard"
)

// Signup is everything the wizard pages render. Organization and Contact hold
// the values to prefill, which are the posted ones after a rejected step.
type Signup struct {
	Layout
	Step         int
	StepLabels   []string
	Plans        []pricing.PlanCard
	Tiers        []models.Tier
	PlanID       int64
	TierID       int64
	Cycle        models.BillingCycle
	Plan         *models.Plan
	Tier         *models.Tier
	Price        decimal.Decimal
	Organization models.OrganizationDraft
	Contact      models.ContactDraft
	Errors       validation.FieldErrors
	Notice       string
	LastError    string
	Submitting   bool
	Result       *models.TenantResult
	LoginURL     string
}

// NewSignup builds the page data from a wizard state. Price lookups fall back
// to zero; the catalog was validated when the wizard started.
func NewSignup(layout Layout, s wizard.State) Signup {
	vm := Signup{
		Layout:     layout,
		Step:       int(s.Step),
		StepLabels: StepLabels(layout.Lang),
		Tiers:      s.AvailableTiers(),
		Cycle:      s.BillingCycle,
		Errors:     s.FieldErrors,
		Notice:     s.Notice,
		LastError:  s.LastError,
		Submitting: s.Submitting,
		Result:     s.Result,
	}
	vm.Plans, _ = pricing.PlanCards(s.Catalog, s.BillingCycle)

	if plan, ok := s.SelectedPlan(); ok {
		vm.Plan = &plan
		vm.PlanID = plan.ID
	}
	if tier, ok := s.SelectedTier(); ok {
		vm.Tier = &tier
		vm.TierID = tier.ID
		if price, err := pricing.EffectivePrice(tier, s.BillingCycle); err == nil {
			vm.Price = price
		}
	}
	if s.Organization != nil {
		vm.Organization = *s.Organization
	}
	if s.Contact != nil {
		vm.Contact = *s.Contact
	}
	return vm
}

func StepLabels(lang i18n.Lang) []string {
	return []string{
		i18n.T(lang, "signup.step1"),
		i18n.T(lang, "signup.step2"),
		i18n.T(lang, "signup.step3"),
		i18n.T(lang, "signup.step4"),
	}
}
