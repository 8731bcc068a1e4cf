package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zakerai/zaker-web/internal/pkg/constants"
	"github.com/zakerai/zaker-web/internal/pkg/usercontext"
)

// RequireWizard sends visitors without a running signup back to its start
func RequireWizard(c *fiber.Ctx) error {
	if usercontext.GetWizardID(c) == "" {
		return c.Redirect(constants.SignupRoute, fiber.StatusSeeOther)
	}
	return c.Next()
}
