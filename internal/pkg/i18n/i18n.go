package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Lang is a supported UI language.
type Lang string

const (
	EN Lang = "en"
	AR Lang = "ar"

	Default = EN
)

var (
	supported = []Lang{EN, AR}
	matcher   = language.NewMatcher([]language.Tag{language.English, language.Arabic})
)

// Parse accepts a language code as stored in the session or passed to /lang.
func Parse(code string) (Lang, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	for _, l := range supported {
		if string(l) == code {
			return l, true
		}
	}
	return Default, false
}

// Negotiate picks the best supported language for an Accept-Language header.
func Negotiate(acceptLanguage string) Lang {
	if acceptLanguage == "" {
		return Default
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, index, conf := matcher.Match(tags...)
	if conf == language.No {
		return Default
	}
	return supported[index]
}

func (l Lang) IsRTL() bool {
	return l == AR
}

// Dir is the value of the html dir attribute.
func (l Lang) Dir() string {
	if l.IsRTL() {
		return "rtl"
	}
	return "ltr"
}

func (l Lang) String() string {
	return string(l)
}

// T translates key. Unknown keys render as the key itself.
func T(l Lang, key string) string {
	if dict, ok := dictionaries[l]; ok {
		if v, ok := dict[key]; ok && v != "" {
			return v
		}
	}
	return key
}

// Func returns T bound to l, for use as a template function.
func Func(l Lang) func(string) string {
	return func(key string) string {
		return T(l, key)
	}
}
