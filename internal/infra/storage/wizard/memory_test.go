package wizard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SwapPortal/internal/domain"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newRecord(id string, now time.Time) *domain.WizardRecord {
	return &domain.WizardRecord{
		ID:        id,
		Kind:      domain.WizardKindBooking,
		OwnerID:   "u-1",
		State:     []byte(`{"Step":1}`),
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(30 * time.Minute),
	}
}

func TestMemoryStore_CreateGet(t *testing.T) {
	clock := &testClock{now: time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)}
	store := NewMemoryStore(clock.Now)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, newRecord("w-1", clock.Now())))
	assert.ErrorIs(t, store.Create(ctx, newRecord("w-1", clock.Now())), ErrSessionExists)

	rec, err := store.Get(ctx, "w-1")
	require.NoError(t, err)
	assert.Equal(t, "u-1", rec.OwnerID)

	// Изменение копии не влияет на хранилище
	rec.State[0] = 'X'
	again, err := store.Get(ctx, "w-1")
	require.NoError(t, err)
	assert.Equal(t, `{"Step":1}`, string(again.State))
}

func TestMemoryStore_UpdateBumpsVersion(t *testing.T) {
	clock := &testClock{now: time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)}
	store := NewMemoryStore(clock.Now)
	ctx := context.Background()
	require.NoError(t, store.Create(ctx, newRecord("w-1", clock.Now())))

	rec, err := store.Update(ctx, "w-1", func(rec *domain.WizardRecord) error {
		rec.State = []byte(`{"Step":2}`)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, int64(2), rec.Version)
	assert.Equal(t, `{"Step":2}`, string(rec.State))
}

func TestMemoryStore_UpdateErrorDiscardsChanges(t *testing.T) {
	clock := &testClock{now: time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)}
	store := NewMemoryStore(clock.Now)
	ctx := context.Background()
	require.NoError(t, store.Create(ctx, newRecord("w-1", clock.Now())))
	boom := errors.New("boom")

	_, err := store.Update(ctx, "w-1", func(rec *domain.WizardRecord) error {
		rec.State = []byte(`{"Step":5}`)
		return boom
	})

	assert.ErrorIs(t, err, boom)
	rec, err := store.Get(ctx, "w-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), rec.Version)
	assert.Equal(t, `{"Step":1}`, string(rec.State))
}

func TestMemoryStore_Expiry(t *testing.T) {
	clock := &testClock{now: time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)}
	store := NewMemoryStore(clock.Now)
	ctx := context.Background()
	require.NoError(t, store.Create(ctx, newRecord("w-1", clock.Now())))

	clock.Advance(31 * time.Minute)

	_, err := store.Get(ctx, "w-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	removed, err := store.DeleteExpired(ctx, clock.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)
}

func TestMemoryStore_ConcurrentUpdatesAreSerialized(t *testing.T) {
	clock := &testClock{now: time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)}
	store := NewMemoryStore(clock.Now)
	ctx := context.Background()
	require.NoError(t, store.Create(ctx, newRecord("w-1", clock.Now())))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Update(ctx, "w-1", func(rec *domain.WizardRecord) error { return nil })
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	rec, err := store.Get(ctx, "w-1")
	require.NoError(t, err)
	assert.Equal(t, int64(51), rec.Version)
}
