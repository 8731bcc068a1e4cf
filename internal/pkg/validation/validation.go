package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var subdomainPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// messages overrides the generic text for a field/tag pair.
var messages = map[string]string{
	"name.min":                "Organization name must be at least 2 characters",
	"name.required":           "Organization name must be at least 2 characters",
	"name.max":                "Organization name must be at most 100 characters",
	"domain.min":              "Domain must be at least 3 characters",
	"domain.required":         "Domain must be at least 3 characters",
	"domain.max":              "Domain must be at most 50 characters",
	"domain.subdomain":        "Domain can only contain lowercase letters, numbers, and hyphens",
	"description.max":         "Description must be at most 500 characters",
	"phone.required":          "Please enter a valid phone number",
	"phone.min":               "Please enter a valid phone number",
	"phone.max":               "Please enter a valid phone number",
	"email.required":          "Please enter a valid email address",
	"email.email":             "Please enter a valid email address",
	"transaction_id.min":      "Transaction ID is required",
	"transaction_id.required": "Transaction ID is required",
}

var (
	once     sync.Once
	validate *validator.Validate
)

// FieldErrors maps a json field name to a user-facing message.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, fe[k]))
	}
	return strings.Join(parts, "; ")
}

// Has reports whether the given field failed validation.
func (fe FieldErrors) Has(field string) bool {
	_, ok := fe[field]
	return ok
}

// Validator returns the shared validator with the custom rules registered.
func Validator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		_ = validate.RegisterValidation("subdomain", func(fl validator.FieldLevel) bool {
			return subdomainPattern.MatchString(fl.Field().String())
		})
	})
	return validate
}

// Struct validates s and converts validator errors to FieldErrors. Only the
// first failing rule per field is reported.
func Struct(s interface{}) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if _, seen := out[field]; seen {
			continue
		}
		out[field] = message(field, fe)
	}
	return out
}

// AsFieldErrors extracts FieldErrors from err, if any.
func AsFieldErrors(err error) (FieldErrors, bool) {
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

func message(field string, fe validator.FieldError) string {
	if msg, ok := messages[field+"."+fe.Tag()]; ok {
		return msg
	}
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "email":
		return "Please enter a valid email address"
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
