package wizard

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"

	"github.com/zakerai/zaker-web/app/models"
	"github.com/zakerai/zaker-web/internal/pkg/backend"
	"github.com/zakerai/zaker-web/internal/pkg/validation"
)

const (
	msgSubmissionFailed = "Registration failed. Please try again."

	// completionAttempts bounds the writes of a provisioning outcome.
	completionAttempts = 5
)

type CatalogSource interface {
	FetchOrFallback(ctx context.Context) models.Catalog
}

type Provisioner interface {
	CreateTenant(ctx context.Context, req models.TenantRequest) (*models.TenantResult, error)
}

// Event is an anonymous funnel record emitted after a transition.
type Event struct {
	WizardID     string
	Kind         string
	Step         Step
	PlanID       *int64
	TierID       *int64
	BillingCycle models.BillingCycle
}

type Observer interface {
	Observe(ctx context.Context, e Event)
}

// Machine runs wizards on top of a Store. Each Dispatch is serialized per
// wizard by the store; the provisioning call happens outside the store
// update so a slow backend never holds a lock.
type Machine struct {
	store       Store
	catalogs    CatalogSource
	provisioner Provisioner
	observers   []Observer

	completionDelay time.Duration
}

func NewMachine(store Store, catalogs CatalogSource, provisioner Provisioner, observers ...Observer) *Machine {
	return &Machine{
		store:       store,
		catalogs:    catalogs,
		provisioner: provisioner,
		observers:   observers,

		completionDelay: 100 * time.Millisecond,
	}
}

// Start creates a fresh wizard with the current catalog.
func (m *Machine) Start(ctx context.Context, planHint *int64) (State, error) {
	s := New(uuid.NewString(), m.catalogs.FetchOrFallback(ctx), planHint)
	if err := m.store.Put(ctx, s); err != nil {
		return State{}, err
	}
	m.emit(ctx, s, models.EVENT_STARTED, s.Step)
	return s, nil
}

func (m *Machine) Load(ctx context.Context, id string) (State, error) {
	return m.store.Get(ctx, id)
}

func (m *Machine) Discard(ctx context.Context, id string) error {
	return m.store.Delete(ctx, id)
}

// Dispatch applies a user action. When the action starts a submission, the
// tenant request is sent once and its outcome applied before returning. The
// returned error is the rejection of the action itself; a failed submission
// is reported through State.LastError.
func (m *Machine) Dispatch(ctx context.Context, id string, a Action) (State, error) {
	var (
		effect    *SubmitEffect
		rejection error
		from      Step
	)
	next, err := m.store.Update(ctx, id, func(cur State) (State, bool) {
		from = cur.Step
		var n State
		n, effect, rejection = Reduce(cur, a)
		return n, persists(rejection)
	})
	if err != nil {
		return State{}, err
	}

	m.observe(ctx, next, a, from, rejection)

	if effect == nil {
		return next, rejection
	}
	return m.submit(ctx, id, effect.Request)
}

func (m *Machine) submit(ctx context.Context, id string, req models.TenantRequest) (State, error) {
	var completion Action
	res, err := m.provisioner.CreateTenant(ctx, req)
	if err == nil && res == nil {
		err = errors.New(msgSubmissionFailed)
	}
	if err != nil {
		log.Warnf("wizard %s: tenant provisioning failed: %v", id, err)
		completion = SubmissionFailed{Message: failureMessage(err)}
	} else {
		completion = SubmissionSucceeded{Result: *res}
	}

	// The request already reached the backend; record its outcome even if
	// the visitor went away, and retry the write so a created tenant is not
	// left behind a wizard stuck in Submitting.
	done := context.WithoutCancel(ctx)
	var rejection error
	final, err := m.complete(done, id, completion, &rejection)
	if err != nil {
		log.Errorf("wizard %s: failed to store provisioning outcome: %v", id, err)
		return State{}, err
	}
	if rejection != nil {
		return final, rejection
	}

	kind := models.EVENT_SUBMIT_SUCCEEDED
	if _, failed := completion.(SubmissionFailed); failed {
		kind = models.EVENT_SUBMIT_FAILED
	}
	m.emit(done, final, kind, StepContactAndPayment)
	return final, nil
}

func (m *Machine) complete(ctx context.Context, id string, completion Action, rejection *error) (State, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = m.completionDelay

	return backoff.Retry(ctx, func() (State, error) {
		final, err := m.store.Update(ctx, id, func(cur State) (State, bool) {
			var n State
			n, _, *rejection = Reduce(cur, completion)
			return n, *rejection == nil
		})
		if errors.Is(err, ErrNotFound) {
			return final, backoff.Permanent(err)
		}
		return final, err
	}, backoff.WithBackOff(b), backoff.WithMaxTries(completionAttempts))
}

// persists reports whether a reduction is worth storing: accepted actions
// and rejections that leave something to show on the page. Other rejections
// return the state unchanged, and rewriting it would only extend its expiry.
func persists(rejection error) bool {
	if rejection == nil || errors.Is(rejection, ErrSelectionIncomplete) {
		return true
	}
	_, invalid := validation.AsFieldErrors(rejection)
	return invalid
}

func (m *Machine) observe(ctx context.Context, s State, a Action, from Step, rejection error) {
	switch a.(type) {
	case Advance:
		_, invalid := validation.AsFieldErrors(rejection)
		switch {
		case rejection == nil:
			m.emit(ctx, s, models.EVENT_STEP_COMPLETED, from)
		case invalid, errors.Is(rejection, ErrSelectionIncomplete):
			m.emit(ctx, s, models.EVENT_STEP_REJECTED, from)
		}
	case Retreat:
		if rejection == nil {
			m.emit(ctx, s, models.EVENT_RETREATED, from)
		}
	}
}

func (m *Machine) emit(ctx context.Context, s State, kind string, step Step) {
	e := Event{
		WizardID:     s.ID,
		Kind:         kind,
		Step:         step,
		PlanID:       s.PlanID,
		TierID:       s.TierID,
		BillingCycle: s.BillingCycle,
	}
	for _, o := range m.observers {
		o.Observe(ctx, e)
	}
}

// failureMessage shows the backend's own explanation. Transport errors name
// internal addresses and are replaced by a generic message.
func failureMessage(err error) string {
	var apiErr *backend.APIError
	if !errors.As(err, &apiErr) || apiErr.Detail == "" {
		return msgSubmissionFailed
	}
	return apiErr.Detail
}
