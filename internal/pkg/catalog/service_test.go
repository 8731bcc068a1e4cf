package catalog

import (
	"context"
	"errors"
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

type fakeLister struct {
	plans     []models.Plan
	tiers     []models.Tier
	plansErr  error
	tiersErr  error
	planCalls atomic.Int32
}

func (f *fakeLister) ListPlans(ctx context.Context) ([]models.Plan, error) {
	f.planCalls.Add(1)
	return f.plans, f.plansErr
}

func (f *fakeLister) ListTiers(ctx context.Context, planID int64) ([]models.Tier, error) {
	return f.tiers, f.tiersErr
}

func TestFetchOrFallbackTotalFailure(t *testing.T) {
	down := errors.New("connection refused")
	svc := NewService(&fakeLister{plansErr: down, tiersErr: down}, time.Minute)

	c := svc.FetchOrFallback(context.Background())
	assert.Equal(t, models.FallbackCatalog(), c)
}

func TestFetchOrFallbackPerResource(t *testing.T) {
	live := []models.Plan{
		{ID: 1, Name: "Teachers", IsActive: true},
		{ID: 2, Name: "Schools", IsActive: true},
	}
	svc := NewService(&fakeLister{plans: live, tiersErr: errors.New("boom")}, 0)

	c := svc.FetchOrFallback(context.Background())
	assert.Equal(t, live, c.Plans)
	assert.Equal(t, models.FallbackTiers(), c.Tiers)
}

func TestFetchOrFallbackNormalizes(t *testing.T) {
	lister := &fakeLister{
		plans: []models.Plan{
			{ID: 1, Name: "Teachers", IsActive: true},
			{ID: 5, Name: "Retired", IsActive: false},
		},
		tiers: []models.Tier{
			{ID: 1, PlanID: 1, Name: "Basic", MonthlyPrice: "900", YearlyPrice: "8640", IsActive: true},
			{ID: 2, PlanID: 1, Name: "Old", MonthlyPrice: "1", YearlyPrice: "1", IsActive: false},
			{ID: 9, PlanID: 5, Name: "Orphan", MonthlyPrice: "1", YearlyPrice: "1", IsActive: true},
		},
	}
	c := NewService(lister, 0).FetchOrFallback(context.Background())

	require.Len(t, c.Plans, 1)
	require.Len(t, c.Tiers, 1)
	assert.Equal(t, int64(1), c.Tiers[0].ID)
	assert.NoError(t, c.Validate())
}

func TestFetchOrFallbackMemoisesLiveCatalogOnly(t *testing.T) {
	lister := &fakeLister{
		plans: models.FallbackPlans(),
		tiers: models.FallbackTiers(),
	}
	svc := NewService(lister, time.Minute)

	svc.FetchOrFallback(context.Background())
	svc.FetchOrFallback(context.Background())
	assert.Equal(t, int32(1), lister.planCalls.Load())

	failing := &fakeLister{plansErr: errors.New("down"), tiers: models.FallbackTiers()}
	svc = NewService(failing, time.Minute)
	svc.FetchOrFallback(context.Background())
	svc.FetchOrFallback(context.Background())
	assert.Equal(t, int32(2), failing.planCalls.Load())
}

func TestClientRetriesServerErrorsOnly(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := calls.Add(1)
		switch r.URL.Path {
		case "/plans/":
			if n == 1 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			_, _ = w.Write([]byte(`[{"id":1,"name":"Teachers","is_active":true}]`))
		case "/tiers/":
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"detail":"Not Found"}`))
		}
	}))
	defer srv.Close()

	c := NewClient(backend.New(srv.URL, time.Second)).WithAttempts(3)
	c.initialDelay = time.Millisecond

	plans, err := c.ListPlans(context.Background())
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, int32(2), calls.Load())

	calls.Store(10)
	_, err = c.ListTiers(context.Background(), 2)
	require.Error(t, err)
	assert.Equal(t, "Not Found", err.Error())
	assert.Equal(t, int32(11), calls.Load())
}

func TestClientListTiersFilter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("plan_id"))
		_, _ = w.Write([]byte(`[{"id":1,"plan_id":1,"name":"Basic","monthly_price":"900.00","yearly_price":"8640.00","features":["a"],"is_active":true}]`))
	}))
	defer srv.Close()

	tiers, err := NewClient(backend.New(srv.URL, time.Second)).ListTiers(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, tiers, 1)
	assert.Equal(t, "900.00", tiers[0].MonthlyPrice)
	assert.Equal(t, []string{"a"}, tiers[0].Features)
}

func TestClientWithAttemptsClamps(t *testing.T) {
	c := NewClient(backend.New("http://api.test", time.Second))

	assert.Equal(t, uint(1), c.WithAttempts(-1).attempts)
	assert.Equal(t, uint(1), c.WithAttempts(0).attempts)
	assert.Equal(t, uint(4), c.WithAttempts(4).attempts)
	assert.Equal(t, uint(maxAttempts), c.WithAttempts(1<<20).attempts)
}
