package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/zakerai/zaker-web/app/models"
	"github.com/zakerai/zaker-web/internal/pkg/constants"
	"github.com/zakerai/zaker-web/internal/pkg/i18n"
	"github.com/zakerai/zaker-web/internal/pkg/pricing"
	"github.com/zakerai/zaker-web/internal/pkg/session"
	"github.com/zakerai/zaker-web/internal/pkg/usercontext"
	"github.com/zakerai/zaker-web/internal/pkg/viewmodel"
	"github.com/zakerai/zaker-web/internal/pkg/wizard"
)

// ============================================================================
// PAGE CONTROLLER - marketing pages
// ============================================================================

// PageController renders the landing and pricing pages
type PageController struct {
	catalogs wizard.CatalogSource
}

func NewPageController(catalogs wizard.CatalogSource) *PageController {
	return &PageController{catalogs: catalogs}
}

// HandleLanding renders the home page with the pricing section
func (pc *PageController) HandleLanding(c *fiber.Ctx) error {
	layout := newLayout(c, "home")
	return render(c, fiber.StatusOK, "index", viewmodel.NewLanding(layout, pc.pricing(c)))
}

// HandlePricing renders the pricing section on its own
func (pc *PageController) HandlePricing(c *fiber.Ctx) error {
	layout := newLayout(c, "pricing")
	layout.OGViewModel.Title = i18n.T(layout.Lang, "pricing.title")
	return render(c, fiber.StatusOK, "pricing", viewmodel.NewLanding(layout, pc.pricing(c)))
}

// HandleLanguage stores the chosen language and goes back to where the
// visitor came from
func (pc *PageController) HandleLanguage(c *fiber.Ctx) error {
	lang, ok := i18n.Parse(c.Params("code"))
	if !ok {
		return renderError(c, fiber.StatusNotFound, "Unknown language")
	}
	if err := session.SetSessionValue(c, usercontext.KeyLang, lang.String()); err != nil {
		log.Warnf("failed to store language: %v", err)
	}
	return c.Redirect(localReferer(c, constants.HomeRoute), fiber.StatusSeeOther)
}

// pricing resolves the displayed cycle and plan cards. An unknown cycle shows
// monthly prices; a live catalog with unparseable prices shows the fallback.
func (pc *PageController) pricing(c *fiber.Ctx) viewmodel.Pricing {
	cycle, err := models.ParseBillingCycle(c.Query("cycle"))
	if err != nil {
		cycle = models.BILLING_MONTHLY
	}

	cards, err := pricing.PlanCards(pc.catalogs.FetchOrFallback(c.UserContext()), cycle)
	if err != nil {
		log.Errorf("pricing: live catalog unusable, showing fallback: %v", err)
		cards, _ = pricing.PlanCards(models.FallbackCatalog(), cycle)
	}
	return viewmodel.Pricing{Cycle: cycle, Cards: cards}
}

// ============================================================================
// GLOBAL PAGE CONTROLLER INSTANCE
// ============================================================================

var pageController *PageController

// InitializePageController wires the global page controller
func InitializePageController(catalogs wizard.CatalogSource) {
	pageController = NewPageController(catalogs)
}

func GetPageController() *PageController {
	return pageController
}

// HandleStart - Adapter for the landing page
func HandleStart(c *fiber.Ctx) error {
	return GetPageController().HandleLanding(c)
}

// HandlePricing - Adapter for the pricing page
func HandlePricing(c *fiber.Ctx) error {
	return GetPageController().HandlePricing(c)
}

// HandleLanguage - Adapter for the language switch
func HandleLanguage(c *fiber.Ctx) error {
	return GetPageController().HandleLanguage(c)
}
