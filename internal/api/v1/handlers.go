package apiv1

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/zakerai/zaker-web/app/models"
	"github.com/zakerai/zaker-web/internal/pkg/pricing"
	"github.com/zakerai/zaker-web/internal/pkg/wizard"
)

// APIServer implements the ServerInterface
type APIServer struct {
	catalogs wizard.CatalogSource
}

// NewAPIServer creates a new API server instance
func NewAPIServer(catalogs wizard.CatalogSource) *APIServer {
	return &APIServer{catalogs: catalogs}
}

// GetPing handles the ping endpoint
func (s *APIServer) GetPing(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(Pong{Ping: "pong"})
}

// GetCatalog returns the catalog the signup wizard would start with
func (s *APIServer) GetCatalog(c *fiber.Ctx) error {
	return c.JSON(s.catalogs.FetchOrFallback(c.UserContext()))
}

// GetPricing returns the plan cards for the requested billing cycle
func (s *APIServer) GetPricing(c *fiber.Ctx, params GetPricingParams) error {
	var raw string
	if params.Cycle != nil {
		raw = *params.Cycle
	}
	cycle, err := models.ParseBillingCycle(raw)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(Error{Error: "bad_request", Message: err.Error()})
	}

	cards, err := pricing.PlanCards(s.catalogs.FetchOrFallback(c.UserContext()), cycle)
	if err != nil {
		log.Errorf("api: pricing failed: %v", err)
		if errors.Is(err, pricing.ErrMalformedPrice) {
			return c.Status(fiber.StatusBadGateway).JSON(Error{Error: "bad_gateway", Message: "catalog returned an invalid price"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(Error{Error: "internal_error", Message: "pricing unavailable"})
	}
	return c.JSON(Pricing{Cycle: cycle, Plans: cards})
}

// GetPlanTiers returns the active tiers of one plan
func (s *APIServer) GetPlanTiers(c *fiber.Ctx, planId int64) error {
	catalog := s.catalogs.FetchOrFallback(c.UserContext())
	if _, ok := catalog.Plan(planId); !ok {
		return c.Status(fiber.StatusNotFound).JSON(Error{Error: "not_found", Message: "unknown plan"})
	}
	return c.JSON(TierList{PlanID: planId, Tiers: pricing.TiersForPlan(catalog.Tiers, planId)})
}
