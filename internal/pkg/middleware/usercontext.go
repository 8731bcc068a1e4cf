package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/zakerai/zaker-web/internal/pkg/i18n"
	"github.com/zakerai/zaker-web/internal/pkg/session"
	"github.com/zakerai/zaker-web/internal/pkg/usercontext"
)

// UserContextMiddleware sets up the visitor context for every page request.
// The language comes from the session, then from Accept-Language.
func UserContextMiddleware(c *fiber.Ctx) error {
	if strings.HasPrefix(c.Path(), "/api/") {
		return c.Next()
	}

	ctx := usercontext.UserContext{Lang: i18n.Negotiate(c.Get(fiber.HeaderAcceptLanguage))}

	store := session.GetSessionStore()
	if store == nil {
		usercontext.Set(c, ctx)
		return c.Next()
	}
	sess, err := store.Get(c)
	if err != nil {
		// On error: negotiated language, no wizard
		usercontext.Set(c, ctx)
		return c.Next()
	}

	if raw, ok := sess.Get(usercontext.KeyLang).(string); ok {
		if lang, ok := i18n.Parse(raw); ok {
			ctx.Lang = lang
		}
	}
	if id, ok := sess.Get(usercontext.KeyWizardID).(string); ok {
		ctx.WizardID = id
	}

	usercontext.Set(c, ctx)
	return c.Next()
}
