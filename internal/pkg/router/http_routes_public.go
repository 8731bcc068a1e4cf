package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zakerai/zaker-web/app/controllers"
	"github.com/zakerai/zaker-web/internal/pkg/constants"
)

func (h HttpRouter) registerPublicRoutes(app *fiber.App) {
	// API routes live in ApiRouter (internal/pkg/router/api_router.go)
	app.Get(constants.LanguageRoute, controllers.HandleLanguage)
	app.Get(constants.HealthRoute, func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
}
