package controllers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/zakerai/zaker-web/app/models"
	"github.com/zakerai/zaker-web/internal/pkg/constants"
	"github.com/zakerai/zaker-web/internal/pkg/flash"
	"github.com/zakerai/zaker-web/internal/pkg/hcaptcha"
	"github.com/zakerai/zaker-web/internal/pkg/i18n"
	"github.com/zakerai/zaker-web/internal/pkg/session"
	"github.com/zakerai/zaker-web/internal/pkg/usercontext"
	"github.com/zakerai/zaker-web/internal/pkg/validation"
	"github.com/zakerai/zaker-web/internal/pkg/viewmodel"
	"github.com/zakerai/zaker-web/internal/pkg/wizard"
)

const DEFAULT_DOMAIN_SUFFIX = ".zaker.ai"

// ============================================================================
// SIGNUP CONTROLLER - server-side wizard
// ============================================================================

// SignupController drives the signup wizard. Every POST redirects back to
// GET /signup, except rejected forms which are re-rendered with status 422
// so the posted values survive.
type SignupController struct {
	machine      *wizard.Machine
	captcha      *hcaptcha.Verifier
	domainSuffix string
}

// NewSignupController creates the controller. A nil captcha verifier skips
// the robot check.
func NewSignupController(machine *wizard.Machine, captcha *hcaptcha.Verifier, domainSuffix string) *SignupController {
	if domainSuffix == "" {
		domainSuffix = DEFAULT_DOMAIN_SUFFIX
	}
	if !strings.HasPrefix(domainSuffix, ".") {
		domainSuffix = "." + domainSuffix
	}
	return &SignupController{
		machine:      machine,
		captcha:      captcha,
		domainSuffix: domainSuffix,
	}
}

// HandleShow renders the current step, starting a wizard when the visitor
// has none. ?plan=N preselects a plan on a fresh or unfinished wizard.
func (sc *SignupController) HandleShow(c *fiber.Ctx) error {
	ctx := c.UserContext()
	hint := planHint(c.Query("plan"))

	state, err := sc.machine.Load(ctx, usercontext.GetWizardID(c))
	switch {
	case errors.Is(err, wizard.ErrNotFound):
		if state, err = sc.start(c, hint); err != nil {
			return sc.handleError(c, err)
		}
	case err != nil:
		return sc.handleError(c, err)
	case hint != nil && state.Step == wizard.StepPlanSelection:
		if next, err := sc.machine.Dispatch(ctx, state.ID, wizard.SelectPlan{PlanID: *hint}); err == nil {
			state = next
		}
	case hint != nil && state.IsTerminal():
		// a new plan link after a finished signup starts over
		_ = sc.machine.Discard(ctx, state.ID)
		if state, err = sc.start(c, hint); err != nil {
			return sc.handleError(c, err)
		}
	}

	return render(c, fiber.StatusOK, "signup", sc.viewModel(c, state))
}

// HandleSelect applies the plan form: plan, tier and cycle, then advances
// when the "next" button was used.
func (sc *SignupController) HandleSelect(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id := usercontext.GetWizardID(c)

	if planID, ok := parseID(c.FormValue("plan_id")); ok {
		if _, err := sc.machine.Dispatch(ctx, id, wizard.SelectPlan{PlanID: planID}); err != nil {
			return sc.afterDispatch(c, err)
		}
	}
	if tierID, ok := parseID(c.FormValue("tier_id")); ok {
		// the posted tier belongs to the previous plan when the plan changed
		_, err := sc.machine.Dispatch(ctx, id, wizard.SelectTier{TierID: tierID})
		if err != nil && !errors.Is(err, wizard.ErrUnknownTier) {
			return sc.afterDispatch(c, err)
		}
	}
	if raw := c.FormValue("billing_cycle"); raw != "" {
		cycle, err := models.ParseBillingCycle(raw)
		if err != nil {
			return sc.afterDispatch(c, err)
		}
		if _, err := sc.machine.Dispatch(ctx, id, wizard.SelectBillingCycle{Cycle: cycle}); err != nil {
			return sc.afterDispatch(c, err)
		}
	}

	if c.FormValue("action") != "next" {
		return c.Redirect(constants.SignupRoute, fiber.StatusSeeOther)
	}
	_, err := sc.machine.Dispatch(ctx, id, wizard.Advance{})
	return sc.afterDispatch(c, err)
}

// HandleNext submits the form of the current step
func (sc *SignupController) HandleNext(c *fiber.Ctx) error {
	ctx := c.UserContext()
	state, err := sc.machine.Load(ctx, usercontext.GetWizardID(c))
	if err != nil {
		return sc.afterDispatch(c, err)
	}

	switch state.Step {
	case wizard.StepPlanSelection:
		_, err = sc.machine.Dispatch(ctx, state.ID, wizard.Advance{})
		return sc.afterDispatch(c, err)

	case wizard.StepOrganizationDetails:
		var org models.OrganizationDraft
		if err := c.BodyParser(&org); err != nil {
			return renderError(c, fiber.StatusBadRequest, "Invalid form data")
		}
		org.Name = strings.TrimSpace(org.Name)
		org.Domain = strings.ToLower(strings.TrimSpace(org.Domain))

		next, err := sc.machine.Dispatch(ctx, state.ID, wizard.Advance{Organization: &org})
		if _, invalid := validation.AsFieldErrors(err); invalid {
			vm := sc.viewModel(c, next)
			vm.Organization = org
			return render(c, fiber.StatusUnprocessableEntity, "signup", vm)
		}
		return sc.afterDispatch(c, err)

	case wizard.StepContactAndPayment:
		var contact models.ContactDraft
		if err := c.BodyParser(&contact); err != nil {
			return renderError(c, fiber.StatusBadRequest, "Invalid form data")
		}
		contact.Email = strings.TrimSpace(contact.Email)
		contact.Phone = strings.TrimSpace(contact.Phone)
		contact.TransactionID = strings.TrimSpace(contact.TransactionID)

		if err := sc.captcha.Verify(ctx, c.FormValue("h-captcha-response")); err != nil {
			log.Infof("signup %s: captcha rejected: %v", state.ID, err)
			vm := sc.viewModel(c, state)
			vm.Contact = contact
			vm.Notice = i18n.T(vm.Lang, "signup.captcha")
			return render(c, fiber.StatusUnprocessableEntity, "signup", vm)
		}

		next, err := sc.machine.Dispatch(ctx, state.ID, wizard.Advance{Contact: &contact})
		if _, invalid := validation.AsFieldErrors(err); invalid {
			vm := sc.viewModel(c, next)
			vm.Contact = contact
			return render(c, fiber.StatusUnprocessableEntity, "signup", vm)
		}
		return sc.afterDispatch(c, err)
	}

	return c.Redirect(constants.SignupRoute, fiber.StatusSeeOther)
}

// HandleBack returns to the previous step
func (sc *SignupController) HandleBack(c *fiber.Ctx) error {
	_, err := sc.machine.Dispatch(c.UserContext(), usercontext.GetWizardID(c), wizard.Retreat{})
	return sc.afterDispatch(c, err)
}

// HandleRestart drops the wizard and begins a fresh one on the next GET
func (sc *SignupController) HandleRestart(c *fiber.Ctx) error {
	if id := usercontext.GetWizardID(c); id != "" {
		if err := sc.machine.Discard(c.UserContext(), id); err != nil {
			log.Warnf("signup %s: failed to discard: %v", id, err)
		}
	}
	if err := session.DeleteSessionValue(c, usercontext.KeyWizardID); err != nil {
		log.Warnf("failed to clear wizard from session: %v", err)
	}
	return c.Redirect(constants.SignupRoute, fiber.StatusSeeOther)
}

func (sc *SignupController) start(c *fiber.Ctx, hint *int64) (wizard.State, error) {
	state, err := sc.machine.Start(c.UserContext(), hint)
	if err != nil {
		return wizard.State{}, err
	}
	if err := session.SetSessionValue(c, usercontext.KeyWizardID, state.ID); err != nil {
		return wizard.State{}, err
	}
	return state, nil
}

func (sc *SignupController) viewModel(c *fiber.Ctx, state wizard.State) viewmodel.Signup {
	layout := newLayout(c, "signup")
	layout.OGViewModel.Title = i18n.T(layout.Lang, "signup.title")
	if sc.captcha.Enabled() && state.Step == wizard.StepContactAndPayment {
		layout.HCaptchaSiteKey = sc.captcha.SiteKey
	}

	vm := viewmodel.NewSignup(layout, state)
	if state.Result != nil && state.Result.Domain != "" {
		vm.LoginURL = "https://" + state.Result.Domain + sc.domainSuffix
	}
	return vm
}

// afterDispatch maps the outcome of a wizard action to a redirect. Rejections
// the wizard already records in its state simply show the current step again.
func (sc *SignupController) afterDispatch(c *fiber.Ctx, err error) error {
	lang := usercontext.GetLang(c)
	switch {
	case err == nil,
		errors.Is(err, wizard.ErrSelectionIncomplete),
		errors.Is(err, wizard.ErrInvalidTransition):
		return c.Redirect(constants.SignupRoute, fiber.StatusSeeOther)
	case errors.Is(err, wizard.ErrNotFound):
		if err := session.DeleteSessionValue(c, usercontext.KeyWizardID); err != nil {
			log.Warnf("failed to clear wizard from session: %v", err)
		}
		return flash.RedirectWithError(c, constants.SignupRoute, i18n.T(lang, "signup.expired"))
	case errors.Is(err, wizard.ErrSubmissionInFlight):
		return flash.RedirectWithError(c, constants.SignupRoute, i18n.T(lang, "signup.inProgress"))
	case errors.Is(err, wizard.ErrUnknownPlan),
		errors.Is(err, wizard.ErrUnknownTier),
		errors.Is(err, models.ErrInvalidBillingCycle):
		return flash.RedirectWithError(c, constants.SignupRoute, err.Error())
	}
	return sc.handleError(c, err)
}

func (sc *SignupController) handleError(c *fiber.Ctx, err error) error {
	log.Errorf("signup %s: %v", usercontext.GetWizardID(c), err)
	return renderError(c, fiber.StatusInternalServerError, "Something went wrong. Please try again.")
}

func planHint(raw string) *int64 {
	id, ok := parseID(raw)
	if !ok {
		return nil
	}
	return &id
}

// ============================================================================
// GLOBAL SIGNUP CONTROLLER INSTANCE
// ============================================================================

var signupController *SignupController

// InitializeSignupController wires the global signup controller
func InitializeSignupController(machine *wizard.Machine, captcha *hcaptcha.Verifier, domainSuffix string) {
	signupController = NewSignupController(machine, captcha, domainSuffix)
}

func GetSignupController() *SignupController {
	return signupController
}

// HandleSignup - Adapter for GET /signup
func HandleSignup(c *fiber.Ctx) error {
	return GetSignupController().HandleShow(c)
}

// HandleSignupSelect - Adapter for the plan form
func HandleSignupSelect(c *fiber.Ctx) error {
	return GetSignupController().HandleSelect(c)
}

// HandleSignupNext - Adapter for the step forms
func HandleSignupNext(c *fiber.Ctx) error {
	return GetSignupController().HandleNext(c)
}

// HandleSignupBack - Adapter for the back button
func HandleSignupBack(c *fiber.Ctx) error {
	return GetSignupController().HandleBack(c)
}

// HandleSignupRestart - Adapter for starting over
func HandleSignupRestart(c *fiber.Ctx) error {
	return GetSignupController().HandleRestart(c)
}
