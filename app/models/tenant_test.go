package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zakerai/zaker-web/internal/pkg/validation"
)

func TestOrganizationDraftValidate(t *testing.T) {
	ok := OrganizationDraft{Name: "Al-Azhar Academy", Domain: "al-azhar-2"}
	assert.NoError(t, ok.Validate())

	bad := OrganizationDraft{Name: "Al-Azhar Academy", Domain: "Al Azhar!"}
	fe, isFieldErr := validation.AsFieldErrors(bad.Validate())
	require.True(t, isFieldErr)
	assert.Equal(t, "Domain can only contain lowercase letters, numbers, and hyphens", fe["domain"])

	long := OrganizationDraft{
		Name:        strings.Repeat("a", 101),
		Domain:      strings.Repeat("b", 51),
		Description: strings.Repeat("c", 501),
	}
	fe, isFieldErr = validation.AsFieldErrors(long.Validate())
	require.True(t, isFieldErr)
	assert.True(t, fe.Has("name"))
	assert.True(t, fe.Has("domain"))
	assert.True(t, fe.Has("description"))
}

func TestContactDraftValidate(t *testing.T) {
	ok := ContactDraft{Phone: "+201234567890", Email: "admin@school.edu.eg", TransactionID: "TXN-1234"}
	assert.NoError(t, ok.Validate())

	bad := ContactDraft{Phone: "123", Email: "not-an-email", TransactionID: "TX"}
	fe, isFieldErr := validation.AsFieldErrors(bad.Validate())
	require.True(t, isFieldErr)
	assert.Equal(t, "Please enter a valid phone number", fe["phone"])
	assert.Equal(t, "Please enter a valid email address", fe["email"])
	assert.Equal(t, "Transaction ID is required", fe["transaction_id"])
}

func TestNewTenantRequest(t *testing.T) {
	org := OrganizationDraft{Name: "Al-Azhar Academy", Domain: "al-azhar", Description: "Cairo"}
	contact := ContactDraft{Phone: "+201234567890", Email: "admin@school.edu.eg", TransactionID: "TXN-1234"}

	req := NewTenantRequest(org, contact, 1, 2, BILLING_YEARLY)
	assert.Equal(t, TenantRequest{
		Name:          "Al-Azhar Academy",
		Domain:        "al-azhar",
		Description:   "Cairo",
		Phone:         "+201234567890",
		Email:         "admin@school.edu.eg",
		PlanID:        1,
		TierID:        2,
		BillingCycle:  BILLING_YEARLY,
		TransactionID: "TXN-1234",
	}, req)
}
