package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	apiv1 "github.com/zakerai/zaker-web/internal/api/v1"
	"github.com/zakerai/zaker-web/internal/pkg/wizard"
)

type ApiRouter struct {
	catalogs wizard.CatalogSource
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New())
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Zaker AI public API",
		})
	})

	// API v1 routes
	v1 := api.Group("/v1")
	apiv1.RegisterHandlers(v1, apiv1.NewAPIServer(h.catalogs))
}

func NewApiRouter(catalogs wizard.CatalogSource) *ApiRouter {
	return &ApiRouter{catalogs: catalogs}
}
