package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zakerai/zaker-web/app/controllers"
	"github.com/zakerai/zaker-web/internal/pkg/middleware"
	"github.com/zakerai/zaker-web/internal/pkg/session"
)

type HttpRouter struct {
	deps Dependencies
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session unless one was installed already
	if session.GetSessionStore() == nil {
		session.NewSessionStore()
	}

	// Apply UserContext middleware globally as first middleware
	app.Use(middleware.UserContextMiddleware)

	controllers.InitializePageController(h.deps.Catalogs)
	controllers.InitializeSignupController(h.deps.Machine, h.deps.Captcha, h.deps.DomainSuffix)
	controllers.InitializeFunnelController(h.deps.Funnel)

	h.registerPublicRoutes(app)
	h.registerOperatorRoutes(app)
	h.registerCSRFProtectedRoutes(app)
}

func NewHttpRouter(deps Dependencies) *HttpRouter {
	return &HttpRouter{deps: deps}
}
