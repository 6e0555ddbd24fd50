// Package wizards persists wizard state machines as JSON snapshots with a sliding TTL.
package wizards

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SwapPortal/internal/domain"
	wizardRepo "github.com/m04kA/SMC-SwapPortal/internal/infra/storage/wizard"
)

// DefaultTTL время жизни брошенного визарда
const DefaultTTL = 30 * time.Minute

// Manager хранит состояние визардов одного типа S
type Manager[S any] struct {
	store Store
	kind  domain.WizardKind
	ttl   time.Duration
	now   func() time.Time
}

// NewManager создает менеджер сессий для визардов kind
func NewManager[S any](store Store, kind domain.WizardKind, ttl time.Duration, now func() time.Time) *Manager[S] {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if now == nil {
		now = time.Now
	}
	return &Manager[S]{
		store: store,
		kind:  kind,
		ttl:   ttl,
		now:   now,
	}
}

// Create сохраняет новую сессию и возвращает её id
func (m *Manager[S]) Create(ctx context.Context, ownerID string, state *S) (string, error) {
	raw, err := json.Marshal(state)
	if err != nil {
		return "", fmt.Errorf("%w: marshal: %v", ErrCorruptState, err)
	}

	now := m.now()
	rec := &domain.WizardRecord{
		ID:        uuid.NewString(),
		Kind:      m.kind,
		OwnerID:   ownerID,
		State:     raw,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}
	if err := m.store.Create(ctx, rec); err != nil {
		return "", err
	}
	return rec.ID, nil
}

// Load читает сессию владельца
func (m *Manager[S]) Load(ctx context.Context, ownerID, id string) (*S, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	rec, err := m.store.Get(ctx, id)
	if err != nil {
		return nil, m.mapStoreError(err)
	}
	if err := m.check(rec, ownerID); err != nil {
		return nil, err
	}
	return decode[S](rec.State)
}

// Mutate атомарно применяет fn к состоянию и продлевает срок жизни.
// Если fn вернул ошибку, состояние не меняется.
func (m *Manager[S]) Mutate(ctx context.Context, ownerID, id string, fn func(state *S) error) (*S, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	var result *S
	_, err := m.store.Update(ctx, id, func(rec *domain.WizardRecord) error {
		if err := m.check(rec, ownerID); err != nil {
			return err
		}
		state, err := decode[S](rec.State)
		if err != nil {
			return err
		}
		if err := fn(state); err != nil {
			return err
		}

		raw, err := json.Marshal(state)
		if err != nil {
			return fmt.Errorf("%w: marshal: %v", ErrCorruptState, err)
		}
		rec.State = raw
		rec.ExpiresAt = m.now().Add(m.ttl)
		result = state
		return nil
	})
	if err != nil {
		return nil, m.mapStoreError(err)
	}
	return result, nil
}

// Delete удаляет сессию владельца; отсутствующая сессия не ошибка
func (m *Manager[S]) Delete(ctx context.Context, ownerID, id string) error {
	if checkID(id) != nil {
		return nil
	}
	rec, err := m.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, wizardRepo.ErrSessionNotFound) {
			return nil
		}
		return err
	}
	if err := m.check(rec, ownerID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}
	return m.store.Delete(ctx, id)
}

// checkID отсекает id, которые не могли быть выданы Create
func checkID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: malformed id %q", ErrNotFound, id)
	}
	return nil
}

func (m *Manager[S]) check(rec *domain.WizardRecord, ownerID string) error {
	if rec.Kind != m.kind {
		return ErrNotFound
	}
	if rec.OwnerID != ownerID {
		return ErrForbidden
	}
	return nil
}

func (m *Manager[S]) mapStoreError(err error) error {
	if errors.Is(err, wizardRepo.ErrSessionNotFound) {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return err
}

func decode[S any](raw []byte) (*S, error) {
	var state S
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	return &state, nil
}
