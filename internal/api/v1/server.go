package apiv1

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// ServerInterface represents all server handlers of the v1 API.
type ServerInterface interface {
	// Health check
	// (GET /ping)
	GetPing(c *fiber.Ctx) error
	// Plans and tiers, live or fallback
	// (GET /catalog)
	GetCatalog(c *fiber.Ctx) error
	// Plan cards priced for a billing cycle
	// (GET /pricing)
	GetPricing(c *fiber.Ctx, params GetPricingParams) error
	// Active tiers of one plan
	// (GET /plans/{planId}/tiers)
	GetPlanTiers(c *fiber.Ctx, planId int64) error
}

// GetPricingParams defines parameters for GetPricing.
type GetPricingParams struct {
	Cycle *string `form:"cycle,omitempty" json:"cycle,omitempty"`
}

// ServerInterfaceWrapper converts fiber contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

type MiddlewareFunc fiber.Handler

func (siw *ServerInterfaceWrapper) GetPing(c *fiber.Ctx) error {
	return siw.Handler.GetPing(c)
}

func (siw *ServerInterfaceWrapper) GetCatalog(c *fiber.Ctx) error {
	return siw.Handler.GetCatalog(c)
}

func (siw *ServerInterfaceWrapper) GetPricing(c *fiber.Ctx) error {
	var params GetPricingParams
	if raw := c.Query("cycle"); raw != "" {
		params.Cycle = &raw
	}
	return siw.Handler.GetPricing(c, params)
}

func (siw *ServerInterfaceWrapper) GetPlanTiers(c *fiber.Ctx) error {
	planId, err := strconv.ParseInt(c.Params("planId"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(Error{
			Error:   "bad_request",
			Message: "Invalid format for parameter planId: " + err.Error(),
		})
	}
	return siw.Handler.GetPlanTiers(c, planId)
}

// FiberServerOptions provides options for the Fiber server.
type FiberServerOptions struct {
	BaseURL     string
	Middlewares []MiddlewareFunc
}

// RegisterHandlers creates http.Handler with routing matching OpenAPI spec.
func RegisterHandlers(router fiber.Router, si ServerInterface) {
	RegisterHandlersWithOptions(router, si, FiberServerOptions{})
}

// RegisterHandlersWithOptions creates http.Handler with additional options
func RegisterHandlersWithOptions(router fiber.Router, si ServerInterface, options FiberServerOptions) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	for _, m := range options.Middlewares {
		router.Use(fiber.Handler(m))
	}

	router.Get(options.BaseURL+"/ping", wrapper.GetPing)
	router.Get(options.BaseURL+"/catalog", wrapper.GetCatalog)
	router.Get(options.BaseURL+"/pricing", wrapper.GetPricing)
	router.Get(options.BaseURL+"/plans/:planId/tiers", wrapper.GetPlanTiers)
}
