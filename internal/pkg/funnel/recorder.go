package funnel

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2/log"

	"github.com/zakerai/zaker-web/app/models"
	"github.com/zakerai/zaker-web/app/repository"
	"github.com/zakerai/zaker-web/internal/pkg/metrics"
	"github.com/zakerai/zaker-web/internal/pkg/wizard"
)

const DEFAULT_RETENTION_INTERVAL = time.Hour

// Recorder turns wizard events into prometheus counters and, when a
// repository is configured, anonymous signup_events rows. Storage failures
// are logged and never reach the visitor.
type Recorder struct {
	repo repository.SignupEventRepository
}

func NewRecorder(repo repository.SignupEventRepository) *Recorder {
	return &Recorder{repo: repo}
}

func (r *Recorder) Observe(ctx context.Context, e wizard.Event) {
	metrics.IncWizardEvent(e.Kind, e.Step.String())

	if r.repo == nil {
		return
	}
	row := &models.SignupEvent{
		WizardID:     e.WizardID,
		Event:        e.Kind,
		Step:         int(e.Step),
		PlanID:       e.PlanID,
		TierID:       e.TierID,
		BillingCycle: string(e.BillingCycle),
	}
	if err := r.repo.Create(row); err != nil {
		log.Warnf("funnel: failed to record %s for wizard %s: %v", e.Kind, e.WizardID, err)
	}
}

// Summary is the funnel report served to operators.
type Summary struct {
	Since   time.Time               `json:"since"`
	Wizards int64                   `json:"wizards"`
	Events  []repository.EventCount `json:"events"`
}

func (r *Recorder) Summary(since time.Time) (*Summary, error) {
	if r.repo == nil {
		return &Summary{Since: since, Events: []repository.EventCount{}}, nil
	}
	wizards, err := r.repo.CountDistinctWizards(since)
	if err != nil {
		return nil, err
	}
	events, err := r.repo.CountByEvent(since)
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []repository.EventCount{}
	}
	return &Summary{Since: since, Wizards: wizards, Events: events}, nil
}

// StartRetention deletes rows older than retention every interval until ctx
// is done. A non-positive interval falls back to hourly.
func (r *Recorder) StartRetention(ctx context.Context, retention, interval time.Duration) {
	if r.repo == nil || retention <= 0 {
		return
	}
	interval = retentionInterval(interval)
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				n, err := r.repo.DeleteOlderThan(time.Now().Add(-retention))
				if err != nil {
					log.Errorf("funnel: retention cleanup failed: %v", err)
					continue
				}
				if n > 0 {
					log.Infof("funnel: pruned %d signup events", n)
				}
			}
		}
	}()
}

func retentionInterval(d time.Duration) time.Duration {
	if d <= 0 {
		log.Warnf("funnel: invalid retention interval %s, using %s", d, DEFAULT_RETENTION_INTERVAL)
		return DEFAULT_RETENTION_INTERVAL
	}
	return d
}
