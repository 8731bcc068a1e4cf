package router

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/csrf"

	"github.com/zakerai/zaker-web/app/controllers"
	"github.com/zakerai/zaker-web/internal/pkg/constants"
	"github.com/zakerai/zaker-web/internal/pkg/env"
	"github.com/zakerai/zaker-web/internal/pkg/middleware"
)

func (h HttpRouter) registerCSRFProtectedRoutes(app *fiber.App) {
	csrfConf := csrf.Config{
		KeyLookup:      "form:_csrf",
		ContextKey:     controllers.CSRF_CONTEXT_KEY,
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		Expiration:     1 * time.Hour,
		CookieSecure:   !env.IsDev(),
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/api/")
		},
	}

	group := app.Group("", cors.New(), csrf.New(csrfConf))
	group.Get(constants.HomeRoute, controllers.HandleStart)
	group.Get(constants.PricingRoute, controllers.HandlePricing)

	// Signup wizard
	group.Get(constants.SignupRoute, controllers.HandleSignup)
	group.Post(constants.SignupPlanRoute, middleware.RequireWizard, controllers.HandleSignupSelect)
	group.Post(constants.SignupNextRoute, middleware.RequireWizard, controllers.HandleSignupNext)
	group.Post(constants.SignupBackRoute, middleware.RequireWizard, controllers.HandleSignupBack)
	group.Post(constants.SignupRestartRoute, controllers.HandleSignupRestart)
}
