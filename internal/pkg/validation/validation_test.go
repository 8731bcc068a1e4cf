package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orgForm struct {
	Name   string `json:"name" validate:"required,min=2,max=100"`
	Domain string `json:"domain" validate:"required,min=3,max=50,subdomain"`
	Notes  string `json:"-" validate:"max=3"`
}

func TestStructValid(t *testing.T) {
	err := Struct(&orgForm{Name: "Al-Azhar Academy", Domain: "al-azhar-2"})
	assert.NoError(t, err)
}

func TestStructSubdomainRule(t *testing.T) {
	for _, domain := range []string{"Al Azhar!", "AL-AZHAR", "al_azhar", "al.azhar"} {
		err := Struct(&orgForm{Name: "Al-Azhar Academy", Domain: domain})
		fe, ok := AsFieldErrors(err)
		require.True(t, ok, "domain %q", domain)
		assert.Equal(t, "Domain can only contain lowercase letters, numbers, and hyphens", fe["domain"])
		assert.False(t, fe.Has("name"))
	}
}

func TestStructReportsFirstRulePerField(t *testing.T) {
	err := Struct(&orgForm{Name: "A", Domain: ""})
	fe, ok := AsFieldErrors(err)
	require.True(t, ok)

	assert.Equal(t, "Organization name must be at least 2 characters", fe["name"])
	assert.Equal(t, "Domain must be at least 3 characters", fe["domain"])
	assert.Len(t, fe, 2)
}

func TestStructFallsBackToGoFieldName(t *testing.T) {
	err := Struct(&orgForm{Name: "ok", Domain: "abc", Notes: "toolong"})
	fe, ok := AsFieldErrors(err)
	require.True(t, ok)
	assert.Equal(t, "Notes must be at most 3 characters", fe["Notes"])
}

func TestFieldErrorsErrorIsSorted(t *testing.T) {
	fe := FieldErrors{"phone": "bad phone", "email": "bad email"}
	assert.Equal(t, "email: bad email; phone: bad phone", fe.Error())
}
