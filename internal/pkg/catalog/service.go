package catalog

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/errgroup"

	"github.com/zakerai/zaker-web/app/models"
	"github.com/zakerai/zaker-web/internal/pkg/metrics"
)

const memoKey = "catalog"

// Service turns the remote catalog into a models.Catalog that is always
// usable: every failed call is replaced by the built-in fallback data.
type Service struct {
	lister Lister
	memo   *expirable.LRU[string, models.Catalog]
}

// NewService memoises fully live catalogs for ttl. A ttl <= 0 disables the memo.
func NewService(lister Lister, ttl time.Duration) *Service {
	s := &Service{lister: lister}
	if ttl > 0 {
		s.memo = expirable.NewLRU[string, models.Catalog](1, nil, ttl)
	}
	return s
}

// FetchOrFallback fetches plans and tiers concurrently and never fails.
func (s *Service) FetchOrFallback(ctx context.Context) models.Catalog {
	if s.memo != nil {
		if c, ok := s.memo.Get(memoKey); ok {
			return c
		}
	}

	var (
		plans    []models.Plan
		tiers    []models.Tier
		plansErr error
		tiersErr error
	)

	// Failures are recorded per resource, so the group never cancels its sibling.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		plans, plansErr = s.lister.ListPlans(gctx)
		return nil
	})
	g.Go(func() error {
		tiers, tiersErr = s.lister.ListTiers(gctx, 0)
		return nil
	})
	_ = g.Wait()

	if plansErr != nil {
		log.Warnf("catalog: plans unavailable, using fallback: %v", plansErr)
		metrics.IncCatalogFallback("plans")
		plans = models.FallbackPlans()
	}
	if tiersErr != nil {
		log.Warnf("catalog: tiers unavailable, using fallback: %v", tiersErr)
		metrics.IncCatalogFallback("tiers")
		tiers = models.FallbackTiers()
	}

	c := normalize(models.Catalog{Plans: plans, Tiers: tiers})
	if s.memo != nil && plansErr == nil && tiersErr == nil {
		s.memo.Add(memoKey, c)
	}
	return c
}

// normalize drops inactive entries and tiers whose plan is not part of the
// catalog, keeping catalog order.
func normalize(c models.Catalog) models.Catalog {
	out := models.Catalog{
		Plans: make([]models.Plan, 0, len(c.Plans)),
		Tiers: make([]models.Tier, 0, len(c.Tiers)),
	}
	for _, p := range c.Plans {
		if p.IsActive {
			out.Plans = append(out.Plans, p)
		}
	}
	for _, t := range c.Tiers {
		if !t.IsActive {
			continue
		}
		if _, ok := out.Plan(t.PlanID); !ok {
			log.Warnf("catalog: dropping tier %d of unknown plan %d", t.ID, t.PlanID)
			continue
		}
		out.Tiers = append(out.Tiers, t)
	}
	return out
}
