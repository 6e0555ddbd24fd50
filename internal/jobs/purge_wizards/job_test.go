package purge_wizards

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SwapPortal/internal/domain"
	wizardRepo "github.com/m04kA/SMC-SwapPortal/internal/infra/storage/wizard"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

func TestNewJob_RejectsBadSchedule(t *testing.T) {
	_, err := NewJob(wizardRepo.NewMemoryStore(time.Now), "every sometimes", nopLogger{})

	assert.ErrorIs(t, err, ErrInvalidSchedule)
}

func TestRunOnce_RemovesExpired(t *testing.T) {
	now := time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)
	store := wizardRepo.NewMemoryStore(func() time.Time { return now })

	for id, expires := range map[string]time.Time{
		"old":   now.Add(-time.Minute),
		"fresh": now.Add(time.Hour),
	} {
		require.NoError(t, store.Create(context.Background(), &domain.WizardRecord{
			ID:        id,
			Kind:      domain.WizardKindBooking,
			OwnerID:   "u-1",
			State:     []byte(`{}`),
			CreatedAt: now.Add(-time.Hour),
			UpdatedAt: now.Add(-time.Hour),
			ExpiresAt: expires,
		}))
	}

	job, err := NewJob(store, "@every 5m", nopLogger{})
	require.NoError(t, err)

	removed, err := job.WithTimeProvider(fixedTime{t: now}).RunOnce(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(1), removed)
	_, err = store.Get(context.Background(), "fresh")
	assert.NoError(t, err)
}
