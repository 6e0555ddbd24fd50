package wizards

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SwapPortal/internal/domain"
	wizardRepo "github.com/m04kA/SMC-SwapPortal/internal/infra/storage/wizard"
)

type counter struct {
	Value int
}

func TestManager_Lifecycle(t *testing.T) {
	now := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	store := wizardRepo.NewMemoryStore(clock)
	mgr := NewManager[counter](store, domain.WizardKindBooking, time.Minute, clock)
	ctx := context.Background()

	id, err := mgr.Create(ctx, "u-1", &counter{Value: 1})
	require.NoError(t, err)

	state, err := mgr.Mutate(ctx, "u-1", id, func(c *counter) error {
		c.Value++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, state.Value)

	loaded, err := mgr.Load(ctx, "u-1", id)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Value)

	require.NoError(t, mgr.Delete(ctx, "u-1", id))
	_, err = mgr.Load(ctx, "u-1", id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestManager_RejectsOtherOwnerAndKind(t *testing.T) {
	store := wizardRepo.NewMemoryStore(nil)
	booking := NewManager[counter](store, domain.WizardKindBooking, 0, nil)
	inspection := NewManager[counter](store, domain.WizardKindInspection, 0, nil)
	ctx := context.Background()

	id, err := booking.Create(ctx, "u-1", &counter{})
	require.NoError(t, err)

	_, err = booking.Load(ctx, "u-2", id)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = inspection.Load(ctx, "u-1", id)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, booking.Delete(ctx, "u-2", id), ErrForbidden)
}

func TestManager_MutateErrorKeepsState(t *testing.T) {
	store := wizardRepo.NewMemoryStore(nil)
	mgr := NewManager[counter](store, domain.WizardKindBooking, 0, nil)
	ctx := context.Background()
	id, err := mgr.Create(ctx, "u-1", &counter{Value: 7})
	require.NoError(t, err)
	rejected := errors.New("rejected")

	_, err = mgr.Mutate(ctx, "u-1", id, func(c *counter) error {
		c.Value = 100
		return rejected
	})

	assert.ErrorIs(t, err, rejected)
	loaded, err := mgr.Load(ctx, "u-1", id)
	require.NoError(t, err)
	assert.Equal(t, 7, loaded.Value)
}

func TestManager_SlidingTTL(t *testing.T) {
	now := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	store := wizardRepo.NewMemoryStore(clock)
	mgr := NewManager[counter](store, domain.WizardKindBooking, 10*time.Minute, clock)
	ctx := context.Background()
	id, err := mgr.Create(ctx, "u-1", &counter{})
	require.NoError(t, err)

	now = now.Add(8 * time.Minute)
	_, err = mgr.Mutate(ctx, "u-1", id, func(c *counter) error { return nil })
	require.NoError(t, err)

	now = now.Add(8 * time.Minute)
	_, err = mgr.Load(ctx, "u-1", id)
	assert.NoError(t, err)

	now = now.Add(3 * time.Minute)
	_, err = mgr.Load(ctx, "u-1", id)
	assert.ErrorIs(t, err, ErrNotFound)
}

// recordingStore считает обращения к хранилищу
type recordingStore struct {
	*wizardRepo.MemoryStore
	calls int
}

func (s *recordingStore) Get(ctx context.Context, id string) (*domain.WizardRecord, error) {
	s.calls++
	return s.MemoryStore.Get(ctx, id)
}

func (s *recordingStore) Update(ctx context.Context, id string, fn func(rec *domain.WizardRecord) error) (*domain.WizardRecord, error) {
	s.calls++
	return s.MemoryStore.Update(ctx, id, fn)
}

func (s *recordingStore) Delete(ctx context.Context, id string) error {
	s.calls++
	return s.MemoryStore.Delete(ctx, id)
}

func TestManager_MalformedIDIsNotFound(t *testing.T) {
	store := &recordingStore{MemoryStore: wizardRepo.NewMemoryStore(nil)}
	mgr := NewManager[counter](store, domain.WizardKindBooking, 0, nil)
	ctx := context.Background()

	for _, id := range []string{"not-a-uuid", "", "1; DROP TABLE wizard_sessions"} {
		_, err := mgr.Load(ctx, "u-1", id)
		assert.ErrorIs(t, err, ErrNotFound, id)

		_, err = mgr.Mutate(ctx, "u-1", id, func(*counter) error { return nil })
		assert.ErrorIs(t, err, ErrNotFound, id)

		assert.NoError(t, mgr.Delete(ctx, "u-1", id), id)
	}
	assert.Zero(t, store.calls, "malformed ids never reach the store")
}
