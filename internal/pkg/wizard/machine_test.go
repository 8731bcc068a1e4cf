package wizard

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zakerai/zaker-web/app/models"
	"github.com/zakerai/zaker-web/internal/pkg/backend"
)

type fallbackCatalog struct{}

func (fallbackCatalog) FetchOrFallback(ctx context.Context) models.Catalog {
	return models.FallbackCatalog()
}

type fakeProvisioner struct {
	calls   atomic.Int32
	gate    chan struct{}
	entered chan struct{}
	err     error
	last    models.TenantRequest
	mu      sync.Mutex
}

func (f *fakeProvisioner) CreateTenant(ctx context.Context, req models.TenantRequest) (*models.TenantResult, error) {
	f.calls.Add(1)
	f.mu.Lock()
	f.last = req
	f.mu.Unlock()
	if f.entered != nil {
		f.entered <- struct{}{}
	}
	if f.gate != nil {
		<-f.gate
	}
	if f.err != nil {
		return nil, f.err
	}
	return &models.TenantResult{
		ID:            1,
		Name:          req.Name,
		Domain:        req.Domain,
		AdminEmail:    "admin@" + req.Domain + ".zaker.ai",
		AdminPassword: "generated",
		Message:       "Tenant created successfully",
	}, nil
}

type recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *recorder) Observe(ctx context.Context, e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) kinds() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Kind)
	}
	return out
}

func TestMachineFallbackWalkthrough(t *testing.T) {
	ctx := context.Background()
	prov := &fakeProvisioner{}
	rec := &recorder{}
	m := NewMachine(NewMemoryStore(0, time.Minute), fallbackCatalog{}, prov, rec)

	s, err := m.Start(ctx, nil)
	require.NoError(t, err)
	require.Len(t, s.Catalog.Plans, 2)
	require.Len(t, s.Catalog.Tiers, 4)

	steps := []Action{
		SelectPlan{PlanID: 1},
		SelectTier{TierID: 2},
		SelectBillingCycle{Cycle: models.BILLING_YEARLY},
		Advance{},
		Advance{Organization: validOrg()},
		Advance{Contact: validContact()},
	}
	for _, a := range steps {
		s, err = m.Dispatch(ctx, s.ID, a)
		require.NoError(t, err)
	}

	assert.Equal(t, StepConfirmation, s.Step)
	assert.Equal(t, "admin@al-azhar.zaker.ai", s.Result.AdminEmail)
	assert.Equal(t, int32(1), prov.calls.Load())
	assert.Equal(t, models.BILLING_YEARLY, prov.last.BillingCycle)
	assert.Equal(t, int64(1), prov.last.PlanID)
	assert.Equal(t, int64(2), prov.last.TierID)

	stored, err := m.Load(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, StepConfirmation, stored.Step)

	assert.Equal(t, []string{
		models.EVENT_STARTED,
		models.EVENT_STEP_COMPLETED,
		models.EVENT_STEP_COMPLETED,
		models.EVENT_STEP_COMPLETED,
		models.EVENT_SUBMIT_SUCCEEDED,
	}, rec.kinds())
}

func TestMachineSubmissionFailureKeepsDrafts(t *testing.T) {
	ctx := context.Background()
	prov := &fakeProvisioner{err: &backend.APIError{Status: 409, Detail: "Domain already registered"}}
	m := NewMachine(NewMemoryStore(0, time.Minute), fallbackCatalog{}, prov)

	s, err := m.Start(ctx, int64Ptr(1))
	require.NoError(t, err)
	s, _ = m.Dispatch(ctx, s.ID, Advance{})
	s, _ = m.Dispatch(ctx, s.ID, Advance{Organization: validOrg()})

	s, err = m.Dispatch(ctx, s.ID, Advance{Contact: validContact()})
	require.NoError(t, err)
	assert.Equal(t, StepContactAndPayment, s.Step)
	assert.Equal(t, "Domain already registered", s.LastError)
	assert.False(t, s.Submitting)
	assert.Equal(t, "al-azhar", s.Organization.Domain)
	assert.Equal(t, "TXN-1234", s.Contact.TransactionID)
}

func TestMachineSingleSubmissionInFlight(t *testing.T) {
	ctx := context.Background()
	prov := &fakeProvisioner{gate: make(chan struct{}), entered: make(chan struct{}, 1)}
	m := NewMachine(NewMemoryStore(0, time.Minute), fallbackCatalog{}, prov)

	s, err := m.Start(ctx, int64Ptr(1))
	require.NoError(t, err)
	s, _ = m.Dispatch(ctx, s.ID, Advance{})
	s, _ = m.Dispatch(ctx, s.ID, Advance{Organization: validOrg()})

	done := make(chan State)
	go func() {
		final, _ := m.Dispatch(ctx, s.ID, Advance{Contact: validContact()})
		done <- final
	}()
	<-prov.entered

	second, err := m.Dispatch(ctx, s.ID, Advance{Contact: validContact()})
	assert.ErrorIs(t, err, ErrSubmissionInFlight)
	assert.True(t, second.Submitting)
	assert.Equal(t, StepContactAndPayment, second.Step)

	_, err = m.Dispatch(ctx, s.ID, Retreat{})
	assert.ErrorIs(t, err, ErrSubmissionInFlight)

	close(prov.gate)
	final := <-done
	assert.Equal(t, StepConfirmation, final.Step)
	assert.Equal(t, int32(1), prov.calls.Load())
}

func TestMachineRejectionEvents(t *testing.T) {
	ctx := context.Background()
	rec := &recorder{}
	m := NewMachine(NewMemoryStore(0, time.Minute), fallbackCatalog{}, &fakeProvisioner{}, rec)

	s, err := m.Start(ctx, nil)
	require.NoError(t, err)

	_, err = m.Dispatch(ctx, s.ID, Advance{})
	assert.ErrorIs(t, err, ErrSelectionIncomplete)
	_, err = m.Dispatch(ctx, s.ID, Retreat{})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	assert.Equal(t, []string{models.EVENT_STARTED, models.EVENT_STEP_REJECTED}, rec.kinds())
}

func TestMachineUnknownWizard(t *testing.T) {
	m := NewMachine(NewMemoryStore(0, time.Minute), fallbackCatalog{}, &fakeProvisioner{})

	_, err := m.Dispatch(context.Background(), "missing", Advance{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMachineDiscard(t *testing.T) {
	ctx := context.Background()
	m := NewMachine(NewMemoryStore(0, time.Minute), fallbackCatalog{}, &fakeProvisioner{})

	s, err := m.Start(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, m.Discard(ctx, s.ID))

	_, err = m.Load(ctx, s.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

// flakyStore fails the configured number of Update calls after the first
// `healthy` ones.
type flakyStore struct {
	*MemoryStore
	healthy int
	fail    int
	updates int
}

func (f *flakyStore) Update(ctx context.Context, id string, fn func(State) (State, bool)) (State, error) {
	f.updates++
	if f.updates > f.healthy && f.fail > 0 {
		f.fail--
		return State{}, errors.New("connection reset")
	}
	return f.MemoryStore.Update(ctx, id, fn)
}

func readyToSubmit(t *testing.T, m *Machine) State {
	t.Helper()
	ctx := context.Background()
	s, err := m.Start(ctx, int64Ptr(1))
	require.NoError(t, err)
	s, err = m.Dispatch(ctx, s.ID, Advance{})
	require.NoError(t, err)
	s, err = m.Dispatch(ctx, s.ID, Advance{Organization: validOrg()})
	require.NoError(t, err)
	return s
}

func TestMachineRetriesCompletionWrite(t *testing.T) {
	ctx := context.Background()
	prov := &fakeProvisioner{}
	store := &flakyStore{MemoryStore: NewMemoryStore(0, time.Minute)}
	m := NewMachine(store, fallbackCatalog{}, prov)
	m.completionDelay = time.Millisecond

	s := readyToSubmit(t, m)
	// the submitting write succeeds, the next two completion writes fail
	store.healthy = store.updates + 1
	store.fail = 2

	final, err := m.Dispatch(ctx, s.ID, Advance{Contact: validContact()})
	require.NoError(t, err)
	assert.Equal(t, StepConfirmation, final.Step)
	assert.Equal(t, "generated", final.Result.AdminPassword)
	assert.Equal(t, int32(1), prov.calls.Load())

	got, err := m.Load(ctx, s.ID)
	require.NoError(t, err)
	assert.False(t, got.Submitting)
	assert.Equal(t, StepConfirmation, got.Step)
}

func TestMachineCompletionWriteGivesUp(t *testing.T) {
	ctx := context.Background()
	store := &flakyStore{MemoryStore: NewMemoryStore(0, time.Minute)}
	m := NewMachine(store, fallbackCatalog{}, &fakeProvisioner{})
	m.completionDelay = time.Millisecond

	s := readyToSubmit(t, m)
	store.healthy = store.updates + 1
	store.fail = completionAttempts

	_, err := m.Dispatch(ctx, s.ID, Advance{Contact: validContact()})
	assert.Error(t, err)
	assert.Equal(t, store.healthy+completionAttempts, store.updates)
}

func TestMachineRejectionKeepsStoredState(t *testing.T) {
	ctx := context.Background()
	m := NewMachine(NewMemoryStore(0, time.Minute), fallbackCatalog{}, &fakeProvisioner{})

	s, err := m.Start(ctx, int64Ptr(1))
	require.NoError(t, err)

	_, err = m.Dispatch(ctx, s.ID, SelectPlan{PlanID: 99})
	assert.ErrorIs(t, err, ErrUnknownPlan)
	_, err = m.Dispatch(ctx, s.ID, Retreat{})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	got, err := m.Load(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestFailureMessageHidesTransportErrors(t *testing.T) {
	assert.Equal(t, "Domain already taken", failureMessage(&backend.APIError{Status: 409, Detail: "Domain already taken"}))
	assert.Equal(t, msgSubmissionFailed, failureMessage(&backend.APIError{Status: 500}))
	assert.Equal(t, msgSubmissionFailed, failureMessage(errors.New(`Post "http://localhost:8000/tenants/": dial tcp: connection refused`)))
	assert.Equal(t, msgSubmissionFailed, failureMessage(nil))
}
