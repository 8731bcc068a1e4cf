package views

import (
	"context"
	"embed"
	"html/template"
	"net/http"

	"github.com/a-h/templ"
	"github.com/gofiber/template/html/v2"
	"github.com/shopspring/decimal"

	"github.com/zakerai/zaker-web/app/models"
	"github.com/zakerai/zaker-web/internal/pkg/i18n"
	"github.com/zakerai/zaker-web/internal/pkg/validation"
	"github.com/zakerai/zaker-web/views/components"
)

// Layout every page is rendered into.
const Layout = "layouts/main"

//go:embed layouts partials signup *.html
var files embed.FS

// NewEngine returns the html engine over the embedded templates.
func NewEngine() *html.Engine {
	engine := html.NewFileSystem(http.FS(files), ".html")
	engine.AddFuncMap(Funcs())
	return engine
}

func Funcs() map[string]interface{} {
	return map[string]interface{}{
		"tr": func(lang i18n.Lang, key string) string {
			return i18n.T(lang, key)
		},
		"planTitle": func(lang i18n.Lang, p models.Plan) string {
			return i18n.T(lang, "pricing."+p.Key()+".title")
		},
		"planDesc": func(lang i18n.Lang, p models.Plan) string {
			return i18n.T(lang, "pricing."+p.Key()+".desc")
		},
		"amount": components.FormatAmount,
		"whole": func(d decimal.Decimal) decimal.Decimal {
			return d.Round(0)
		},
		"priceTag": func(d decimal.Decimal, suffix string) (template.HTML, error) {
			return templ.ToGoHTML(context.Background(), components.PriceTag(d, suffix))
		},
		"steps": func(labels []string, current int) (template.HTML, error) {
			return templ.ToGoHTML(context.Background(), components.StepIndicator(labels, current))
		},
		"fieldError": func(errs validation.FieldErrors, field string) string {
			return errs[field]
		},
		"isYearly": func(c models.BillingCycle) bool {
			return c.IsYearly()
		},
	}
}
