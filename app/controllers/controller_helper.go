package controllers

import (
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/zakerai/zaker-web/internal/pkg/env"
	"github.com/zakerai/zaker-web/internal/pkg/flash"
	"github.com/zakerai/zaker-web/internal/pkg/usercontext"
	"github.com/zakerai/zaker-web/internal/pkg/viewmodel"
	"github.com/zakerai/zaker-web/views"
)

// CSRF_CONTEXT_KEY is where the csrf middleware leaves the form token
const CSRF_CONTEXT_KEY = "csrf"

// newLayout collects the per-request layout data: language, flash and csrf token
func newLayout(c *fiber.Ctx, page string) viewmodel.Layout {
	layout := viewmodel.NewLayout(page, usercontext.GetLang(c))
	layout.Msg = flash.Get(c)
	layout.IsDev = env.IsDev()
	if token, ok := c.Locals(CSRF_CONTEXT_KEY).(string); ok {
		layout.CSRF = token
	}
	layout.OGViewModel.URL = c.BaseURL() + c.OriginalURL()
	return layout
}

func render(c *fiber.Ctx, status int, name string, data interface{}) error {
	return c.Status(status).Render(name, data, views.Layout)
}

// renderError shows the error page inside the site layout
func renderError(c *fiber.Ctx, status int, message string) error {
	return render(c, status, "error", viewmodel.ErrorPage{
		Layout:  newLayout(c, strconv.Itoa(status)),
		Code:    status,
		Message: message,
	})
}

// parseID reads a positive integer id; ok is false for missing or malformed values
func parseID(raw string) (int64, bool) {
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// localReferer returns the path of the Referer header, or fallback when it is
// missing or points to another host. Paths starting with "//" or "/\" are
// read by browsers as another host and are refused too.
func localReferer(c *fiber.Ctx, fallback string) string {
	ref := c.Get(fiber.HeaderReferer)
	if ref == "" {
		return fallback
	}
	u, err := url.Parse(ref)
	if err != nil || (u.Host != "" && u.Host != c.Hostname()) {
		return fallback
	}
	if u.Path == "" || u.Path[0] != '/' {
		return fallback
	}
	if len(u.Path) > 1 && (u.Path[1] == '/' || u.Path[1] == '\\') {
		return fallback
	}
	if u.RawQuery != "" {
		return u.Path + "?" + u.RawQuery
	}
	return u.Path
}
