package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/basicauth"

	"github.com/zakerai/zaker-web/internal/pkg/env"
)

// OperatorAuth protects the operator endpoints (monitor, prometheus, funnel
// report) with the METRICS_USER/METRICS_PASSWORD credentials. Without a
// password the endpoints are closed.
func OperatorAuth() fiber.Handler {
	user := env.GetEnv("METRICS_USER", "admin")
	password := env.GetEnv("METRICS_PASSWORD", "")
	if password == "" {
		log.Warn("METRICS_PASSWORD not set, operator endpoints are disabled")
		return func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusNotFound)
		}
	}
	return basicauth.New(basicauth.Config{
		Users: map[string]string{
			user: password,
		},
		Realm: "zaker operators",
	})
}
