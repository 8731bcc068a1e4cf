package usercontext

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zakerai/zaker-web/internal/pkg/i18n"
)

// UserContext represents the anonymous visitor of a request
type UserContext struct {
	Lang     i18n.Lang `json:"lang"`
	WizardID string    `json:"wizard_id"`
}

// GetUserContext retrieves the visitor context from fiber context.
// Returns a default context if none is set
func GetUserContext(c *fiber.Ctx) UserContext {
	if ctx, ok := c.Locals(KeyContext).(UserContext); ok {
		return ctx
	}
	return UserContext{Lang: i18n.Default}
}

func Set(c *fiber.Ctx, ctx UserContext) {
	c.Locals(KeyContext, ctx)
}

// GetLang returns the visitor's UI language
func GetLang(c *fiber.Ctx) i18n.Lang {
	return GetUserContext(c).Lang
}

// GetWizardID returns the signup wizard bound to the session, if any
func GetWizardID(c *fiber.Ctx) string {
	return GetUserContext(c).WizardID
}
