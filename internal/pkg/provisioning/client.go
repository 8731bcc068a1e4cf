package provisioning

import (
	"context"
	"errors"
	"time"

	"github.com/zakerai/zaker-web/app/models"
	"github.com/zakerai/zaker-web/internal/pkg/backend"
	"github.com/zakerai/zaker-web/internal/pkg/metrics"
)

var ErrEmptyResult = errors.New("provisioning returned no credentials")

// Client creates tenants through the product API. Requests are sent exactly
// once; deduplication is the backend's job.
type Client struct {
	api *backend.Client
}

func NewClient(api *backend.Client) *Client {
	return &Client{api: api}
}

func (c *Client) CreateTenant(ctx context.Context, req models.TenantRequest) (*models.TenantResult, error) {
	start := time.Now()

	var out models.TenantResult
	err := c.api.Post(ctx, "/tenants/", req, &out)
	if err == nil && out.AdminEmail == "" {
		err = ErrEmptyResult
	}
	metrics.ObserveProvisioning(err == nil, time.Since(start).Seconds())
	if err != nil {
		return nil, err
	}
	return &out, nil
}
