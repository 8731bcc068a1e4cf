package wizard

import (
	"errors"

	"github.com/zakerai/zaker-web/app/models"
	"github.com/zakerai/zaker-web/internal/pkg/validation"
)

const NoticeSelectionIncomplete = "Please select a plan and tier"

var (
	ErrInvalidTransition   = errors.New("wizard: transition not allowed from this step")
	ErrSubmissionInFlight  = errors.New("wizard: submission in flight")
	ErrSelectionIncomplete = errors.New("wizard: plan and tier must be selected")
	ErrUnknownPlan         = errors.New("wizard: unknown plan")
	ErrUnknownTier         = errors.New("wizard: tier does not belong to the selected plan")
	ErrSubmitPrecondition  = errors.New("wizard: submission requires plan, tier and organization")
	ErrNoSubmissionPending = errors.New("wizard: no submission pending")
)

// Action is a discrete user input or the completion of a submission.
type Action interface {
	action()
}

type SelectPlan struct{ PlanID int64 }
type SelectTier struct{ TierID int64 }
type SelectBillingCycle struct{ Cycle models.BillingCycle }

// Advance moves forward. Organization is read on step 1, Contact on step 2;
// nil drafts validate as empty.
type Advance struct {
	Organization *models.OrganizationDraft
	Contact      *models.ContactDraft
}

type Retreat struct{}

type SubmissionSucceeded struct{ Result models.TenantResult }
type SubmissionFailed struct{ Message string }

func (SelectPlan) action()          {}
func (SelectTier) action()          {}
func (SelectBillingCycle) action()  {}
func (Advance) action()             {}
func (Retreat) action()             {}
func (SubmissionSucceeded) action() {}
func (SubmissionFailed) action()    {}

// SubmitEffect asks the caller to send exactly one tenant request and feed
// the outcome back as SubmissionSucceeded or SubmissionFailed.
type SubmitEffect struct {
	Request models.TenantRequest
}

// Reduce applies a to s and returns the next state. s is never modified.
// Rejected inputs return an error; when the rejection carries something to
// show (a notice or field errors) the returned state holds it, otherwise the
// returned state equals s.
func Reduce(s State, a Action) (State, *SubmitEffect, error) {
	next := s.clone()

	switch act := a.(type) {
	case SelectPlan:
		if next.Step != StepPlanSelection {
			return s, nil, ErrInvalidTransition
		}
		if _, ok := next.Catalog.Plan(act.PlanID); !ok {
			return s, nil, ErrUnknownPlan
		}
		next.selectPlan(act.PlanID)
		next.Notice = ""
		return next, nil, nil

	case SelectTier:
		if next.Step != StepPlanSelection {
			return s, nil, ErrInvalidTransition
		}
		tier, ok := next.Catalog.Tier(act.TierID)
		if !ok || next.PlanID == nil || tier.PlanID != *next.PlanID {
			return s, nil, ErrUnknownTier
		}
		next.TierID = int64Ptr(tier.ID)
		next.Notice = ""
		return next, nil, nil

	case SelectBillingCycle:
		if next.Step != StepPlanSelection {
			return s, nil, ErrInvalidTransition
		}
		if act.Cycle != models.BILLING_MONTHLY && act.Cycle != models.BILLING_YEARLY {
			return s, nil, models.ErrInvalidBillingCycle
		}
		next.BillingCycle = act.Cycle
		return next, nil, nil

	case Advance:
		return advance(next, s, act)

	case Retreat:
		if next.Submitting {
			return s, nil, ErrSubmissionInFlight
		}
		if next.Step != StepOrganizationDetails && next.Step != StepContactAndPayment {
			return s, nil, ErrInvalidTransition
		}
		next.Step--
		next.FieldErrors = nil
		next.Notice = ""
		return next, nil, nil

	case SubmissionSucceeded:
		if !next.Submitting || next.Step != StepContactAndPayment {
			return s, nil, ErrNoSubmissionPending
		}
		res := act.Result
		next.Result = &res
		next.LastError = ""
		next.Step = StepConfirmation
		next.Submitting = false
		return next, nil, nil

	case SubmissionFailed:
		if !next.Submitting || next.Step != StepContactAndPayment {
			return s, nil, ErrNoSubmissionPending
		}
		next.LastError = act.Message
		next.Submitting = false
		return next, nil, nil
	}

	return s, nil, ErrInvalidTransition
}

func advance(next, prev State, act Advance) (State, *SubmitEffect, error) {
	if next.Submitting {
		return prev, nil, ErrSubmissionInFlight
	}
	next.FieldErrors = nil
	next.Notice = ""

	switch next.Step {
	case StepPlanSelection:
		_, planOK := next.SelectedPlan()
		tier, tierOK := next.SelectedTier()
		if !planOK || !tierOK || tier.PlanID != *next.PlanID {
			next.Notice = NoticeSelectionIncomplete
			return next, nil, ErrSelectionIncomplete
		}
		next.Step = StepOrganizationDetails
		return next, nil, nil

	case StepOrganizationDetails:
		org := models.OrganizationDraft{}
		if act.Organization != nil {
			org = *act.Organization
		}
		if err := org.Validate(); err != nil {
			next.FieldErrors = fieldErrors(err)
			return next, nil, next.FieldErrors
		}
		next.Organization = &org
		next.Step = StepContactAndPayment
		return next, nil, nil

	case StepContactAndPayment:
		contact := models.ContactDraft{}
		if act.Contact != nil {
			contact = *act.Contact
		}
		if err := contact.Validate(); err != nil {
			next.FieldErrors = fieldErrors(err)
			return next, nil, next.FieldErrors
		}
		if next.PlanID == nil || next.TierID == nil || next.Organization == nil {
			return prev, nil, ErrSubmitPrecondition
		}
		next.Contact = &contact
		next.Submitting = true
		next.LastError = ""
		req := models.NewTenantRequest(*next.Organization, contact, *next.PlanID, *next.TierID, next.BillingCycle)
		return next, &SubmitEffect{Request: req}, nil
	}

	return prev, nil, ErrInvalidTransition
}

func fieldErrors(err error) validation.FieldErrors {
	if fe, ok := validation.AsFieldErrors(err); ok {
		return fe
	}
	return validation.FieldErrors{"_": err.Error()}
}
