package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zakerai/zaker-web/internal/pkg/funnel"
	"github.com/zakerai/zaker-web/internal/pkg/hcaptcha"
	"github.com/zakerai/zaker-web/internal/pkg/wizard"
)

type Router interface {
	InstallRouter(app *fiber.App)
}

// Dependencies are the services the routes hand to their controllers
type Dependencies struct {
	Catalogs     wizard.CatalogSource
	Machine      *wizard.Machine
	Captcha      *hcaptcha.Verifier
	Funnel       *funnel.Recorder
	DomainSuffix string
}

func InstallRouter(app *fiber.App, deps Dependencies) {
	// Install HttpRouter first to initialize the session store and the global
	// UserContext middleware, then the API routes.
	setup(app, NewHttpRouter(deps), NewApiRouter(deps.Catalogs))
}

func setup(app *fiber.App, router ...Router) {
	for _, r := range router {
		r.InstallRouter(app)
	}
}
