package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/zakerai/zaker-web/app/models"
	"github.com/zakerai/zaker-web/internal/pkg/backend"
)

const (
	defaultAttempts = 2
	maxAttempts     = 10
)

// Lister is the remote catalog contract.
type Lister interface {
	ListPlans(ctx context.Context) ([]models.Plan, error)
	ListTiers(ctx context.Context, planID int64) ([]models.Tier, error)
}

// Client reads plans and tiers from the product API. Transient failures
// (transport errors, 5xx) are retried a bounded number of times; 4xx
// responses are returned immediately.
type Client struct {
	api          *backend.Client
	attempts     uint
	initialDelay time.Duration
}

func NewClient(api *backend.Client) *Client {
	return &Client{
		api:          api,
		attempts:     defaultAttempts,
		initialDelay: 100 * time.Millisecond,
	}
}

// WithAttempts overrides the number of tries per call, clamped to
// [1, maxAttempts].
func (c *Client) WithAttempts(n int) *Client {
	switch {
	case n < 1:
		n = 1
	case n > maxAttempts:
		n = maxAttempts
	}
	c.attempts = uint(n)
	return c
}

func (c *Client) ListPlans(ctx context.Context) ([]models.Plan, error) {
	return retry(ctx, c, func() ([]models.Plan, error) {
		var plans []models.Plan
		err := c.api.Get(ctx, "/plans/", nil, &plans)
		return plans, err
	})
}

// ListTiers lists all tiers, or only those of planID when planID > 0.
func (c *Client) ListTiers(ctx context.Context, planID int64) ([]models.Tier, error) {
	var query url.Values
	if planID > 0 {
		query = url.Values{"plan_id": {strconv.FormatInt(planID, 10)}}
	}
	return retry(ctx, c, func() ([]models.Tier, error) {
		var tiers []models.Tier
		err := c.api.Get(ctx, "/tiers/", query, &tiers)
		return tiers, err
	})
}

func retry[T any](ctx context.Context, c *Client, op func() (T, error)) (T, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.initialDelay

	return backoff.Retry(ctx, func() (T, error) {
		out, err := op()
		if err != nil && !isTransient(err) {
			return out, backoff.Permanent(err)
		}
		return out, err
	}, backoff.WithBackOff(b), backoff.WithMaxTries(c.attempts))
}

func isTransient(err error) bool {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status >= http.StatusInternalServerError || apiErr.Status == http.StatusTooManyRequests
	}
	return !errors.Is(err, context.Canceled)
}
