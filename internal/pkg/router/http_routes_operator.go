package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/zakerai/zaker-web/app/controllers"
	"github.com/zakerai/zaker-web/internal/pkg/constants"
	"github.com/zakerai/zaker-web/internal/pkg/metrics"
	"github.com/zakerai/zaker-web/internal/pkg/middleware"
)

func (h HttpRouter) registerOperatorRoutes(app *fiber.App) {
	metrics.MustRegister()

	operator := app.Group(constants.MetricsRoute, middleware.OperatorAuth())
	operator.Get(constants.PrometheusRoute, adaptor.HTTPHandler(promhttp.Handler()))
	operator.Get(constants.FunnelRoute, controllers.HandleFunnelReport)
}
