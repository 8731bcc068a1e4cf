package provisioning

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zakerai/zaker-web/app/models"
	"github.com/zakerai/zaker-web/internal/pkg/backend"
)

func sampleRequest() models.TenantRequest {
	return models.NewTenantRequest(
		models.OrganizationDraft{Name: "Al-Azhar Academy", Domain: "al-azhar"},
		models.ContactDraft{Phone: "+201234567890", Email: "admin@school.edu.eg", TransactionID: "TXN-1234"},
		1, 2, models.BILLING_YEARLY,
	)
}

func TestCreateTenantSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/tenants/", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Al-Azhar Academy", body["name"])
		assert.Equal(t, "yearly", body["billing_cycle"])
		assert.Equal(t, float64(2), body["tier_id"])
		assert.Equal(t, "TXN-1234", body["transaction_id"])
		assert.NotContains(t, body, "description")
		assert.NotContains(t, body, "logo_url")

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":7,"name":"Al-Azhar Academy","domain":"al-azhar","admin_email":"admin@al-azhar.zaker.ai","admin_password":"s3cret","message":"Tenant created"}`))
	}))
	defer srv.Close()

	res, err := NewClient(backend.New(srv.URL, time.Second)).CreateTenant(context.Background(), sampleRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(7), res.ID)
	assert.Equal(t, "admin@al-azhar.zaker.ai", res.AdminEmail)
	assert.Equal(t, "s3cret", res.AdminPassword)
}

func TestCreateTenantIsNeverRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewClient(backend.New(srv.URL, time.Second)).CreateTenant(context.Background(), sampleRequest())
	require.Error(t, err)
	assert.Equal(t, "HTTP error! status: 503", err.Error())
	assert.Equal(t, int32(1), calls.Load())
}

func TestCreateTenantRejectsEmptyCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, err := NewClient(backend.New(srv.URL, time.Second)).CreateTenant(context.Background(), sampleRequest())
	assert.ErrorIs(t, err, ErrEmptyResult)
}
