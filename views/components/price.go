package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Currency is shown next to every amount.
const Currency = "EGP"

// amounts use Latin digits and "," grouping in every page language
var amountPrinter = message.NewPrinter(language.English)

// FormatAmount renders d with thousands separators and at most three
// fraction digits, trailing zeros dropped: 14400 -> "14,400", 1234.5 ->
// "1,234.5". Rounding happens on the decimal before the conversion.
func FormatAmount(d decimal.Decimal) string {
	return amountPrinter.Sprint(number.Decimal(d.Round(3).InexactFloat64(), number.MaxFractionDigits(3)))
}

// PriceTag renders "<amount> EGP<suffix>", e.g. "720 EGP/month".
func PriceTag(amount decimal.Decimal, suffix string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<span class="price-tag"><span class="price-amount">`+
			templ.EscapeString(FormatAmount(amount))+
			`</span> <span class="price-currency">`+Currency+templ.EscapeString(suffix)+`</span></span>`)
		return err
	})
}
