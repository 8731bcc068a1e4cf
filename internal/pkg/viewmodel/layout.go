package viewmodel

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zakerai/zaker-web/internal/pkg/i18n"
)

type Layout struct {
	Page            string
	Lang            i18n.Lang
	Dir             string
	IsDev           bool
	Msg             fiber.Map
	CSRF            string
	HCaptchaSiteKey string
	OGViewModel     *OpenGraph
}

// OpenGraph carries the meta tags of a page
type OpenGraph struct {
	Title       string
	Description string
	URL         string
	Image       string
}

func NewLayout(page string, lang i18n.Lang) Layout {
	return Layout{
		Page: page,
		Lang: lang,
		Dir:  lang.Dir(),
		OGViewModel: &OpenGraph{
			Title:       i18n.T(lang, "hero.title"),
			Description: i18n.T(lang, "hero.subtitle"),
		},
	}
}

type ErrorPage struct {
	Layout
	Code    int
	Message string
}
