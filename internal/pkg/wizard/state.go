package wizard

import (
	"github.com/zakerai/zaker-web/app/models"
	"github.com/zakerai/zaker-web/internal/pkg/pricing"
	"github.com/zakerai/zaker-web/internal/pkg/validation"
)

// Step is the position of the wizard. Confirmation is terminal.
type Step int

const (
	StepPlanSelection Step = iota
	StepOrganizationDetails
	StepContactAndPayment
	StepConfirmation
)

// StepCount is the number of steps including the confirmation.
const StepCount = 4

func (s Step) String() string {
	switch s {
	case StepPlanSelection:
		return "plan_selection"
	case StepOrganizationDetails:
		return "organization_details"
	case StepContactAndPayment:
		return "contact_and_payment"
	case StepConfirmation:
		return "confirmation"
	default:
		return "unknown"
	}
}

// State is the whole signup session. It is serialisable so it can live in
// any Store; only the wizard mutates it.
type State struct {
	ID           string                    `json:"id"`
	Step         Step                      `json:"step"`
	Catalog      models.Catalog            `json:"catalog"`
	PlanID       *int64                    `json:"plan_id,omitempty"`
	TierID       *int64                    `json:"tier_id,omitempty"`
	BillingCycle models.BillingCycle       `json:"billing_cycle"`
	Organization *models.OrganizationDraft `json:"organization,omitempty"`
	Contact      *models.ContactDraft      `json:"contact,omitempty"`
	Submitting   bool                      `json:"submitting"`
	LastError    string                    `json:"last_error,omitempty"`
	Notice       string                    `json:"notice,omitempty"`
	FieldErrors  validation.FieldErrors    `json:"field_errors,omitempty"`
	Result       *models.TenantResult      `json:"result,omitempty"`
}

// New creates a wizard at the plan step. A planHint naming a plan of the
// catalog pre-selects it together with its default tier; any other hint is
// ignored.
func New(id string, catalog models.Catalog, planHint *int64) State {
	s := State{
		ID:           id,
		Step:         StepPlanSelection,
		Catalog:      catalog,
		BillingCycle: models.BILLING_MONTHLY,
	}
	if planHint != nil {
		if _, ok := catalog.Plan(*planHint); ok {
			s.selectPlan(*planHint)
		}
	}
	return s
}

// SelectedPlan returns the selected plan, if any.
func (s State) SelectedPlan() (models.Plan, bool) {
	if s.PlanID == nil {
		return models.Plan{}, false
	}
	return s.Catalog.Plan(*s.PlanID)
}

// SelectedTier returns the selected tier, if any.
func (s State) SelectedTier() (models.Tier, bool) {
	if s.TierID == nil {
		return models.Tier{}, false
	}
	return s.Catalog.Tier(*s.TierID)
}

// AvailableTiers lists the tiers selectable for the current plan.
func (s State) AvailableTiers() []models.Tier {
	if s.PlanID == nil {
		return []models.Tier{}
	}
	return pricing.TiersForPlan(s.Catalog.Tiers, *s.PlanID)
}

// IsTerminal reports whether the wizard reached the confirmation.
func (s State) IsTerminal() bool {
	return s.Step == StepConfirmation
}

// selectPlan switches the plan and re-defaults the tier. Reselecting the
// current plan keeps the tier choice.
func (s *State) selectPlan(planID int64) {
	if s.PlanID != nil && *s.PlanID == planID {
		return
	}
	s.PlanID = int64Ptr(planID)
	s.TierID = nil
	if tier, ok := pricing.DefaultTier(s.Catalog.Tiers, planID); ok {
		s.TierID = int64Ptr(tier.ID)
	}
}

// clone copies every pointer and map so reducers never alias their input.
// Catalog slices are shared; they are never mutated.
func (s State) clone() State {
	out := s
	if s.PlanID != nil {
		out.PlanID = int64Ptr(*s.PlanID)
	}
	if s.TierID != nil {
		out.TierID = int64Ptr(*s.TierID)
	}
	if s.Organization != nil {
		org := *s.Organization
		out.Organization = &org
	}
	if s.Contact != nil {
		contact := *s.Contact
		out.Contact = &contact
	}
	if s.Result != nil {
		res := *s.Result
		out.Result = &res
	}
	if s.FieldErrors != nil {
		out.FieldErrors = make(validation.FieldErrors, len(s.FieldErrors))
		for k, v := range s.FieldErrors {
			out.FieldErrors[k] = v
		}
	}
	return out
}

func int64Ptr(v int64) *int64 {
	return &v
}
