package components

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// StepIndicator renders the wizard progress bar. labels holds one entry per
// step; current is zero based.
func StepIndicator(labels []string, current int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<ol class="steps">`); err != nil {
			return err
		}
		for i, label := range labels {
			class := "step"
			switch {
			case i < current:
				class += " step-done"
			case i == current:
				class += " step-current"
			}
			aria := ""
			if i == current {
				aria = ` aria-current="step"`
			}
			_, err := fmt.Fprintf(w, `<li class="%s"%s><span class="step-number">%d</span> <span class="step-label">%s</span></li>`,
				class, aria, i+1, templ.EscapeString(label))
			if err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</ol>`)
		return err
	})
}
