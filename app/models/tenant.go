package models

import (
	"github.com/zakerai/zaker-web/internal/pkg/validation"
)

// OrganizationDraft is captured on the organization step of the signup wizard.
type OrganizationDraft struct {
	Name        string `json:"name" form:"name" validate:"required,min=2,max=100"`
	Domain      string `json:"domain" form:"domain" validate:"required,min=3,max=50,subdomain"`
	Description string `json:"description,omitempty" form:"description" validate:"max=500"`
}

// Validate returns validation.FieldErrors keyed by the json field name.
func (o *OrganizationDraft) Validate() error {
	return validation.Struct(o)
}

// ContactDraft is captured on the contact and payment step.
type ContactDraft struct {
	Phone         string `json:"phone" form:"phone" validate:"required,min=10,max=20"`
	Email         string `json:"email" form:"email" validate:"required,email"`
	TransactionID string `json:"transaction_id" form:"transaction_id" validate:"required,min=5"`
}

func (c *ContactDraft) Validate() error {
	return validation.Struct(c)
}

// TenantRequest is the payload sent to the provisioning backend.
type TenantRequest struct {
	Name          string       `json:"name"`
	Domain        string       `json:"domain"`
	Description   string       `json:"description,omitempty"`
	LogoURL       string       `json:"logo_url,omitempty"`
	Phone         string       `json:"phone"`
	Email         string       `json:"email"`
	PlanID        int64        `json:"plan_id"`
	TierID        int64        `json:"tier_id"`
	BillingCycle  BillingCycle `json:"billing_cycle"`
	TransactionID string       `json:"transaction_id"`
}

// NewTenantRequest composes the provisioning payload from the wizard selections.
func NewTenantRequest(org OrganizationDraft, contact ContactDraft, planID, tierID int64, cycle BillingCycle) TenantRequest {
	return TenantRequest{
		Name:          org.Name,
		Domain:        org.Domain,
		Description:   org.Description,
		Phone:         contact.Phone,
		Email:         contact.Email,
		PlanID:        planID,
		TierID:        tierID,
		BillingCycle:  cycle,
		TransactionID: contact.TransactionID,
	}
}

// TenantResult carries the generated admin credentials. The password is
// plaintext and only ever shown once.
type TenantResult struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Domain        string `json:"domain"`
	AdminEmail    string `json:"admin_email"`
	AdminPassword string `json:"admin_password"`
	Message       string `json:"message"`
}
