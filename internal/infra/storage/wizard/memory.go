package wizard

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-SwapPortal/internal/domain"
)

// MemoryStore хранилище сессий в памяти процесса, для одного инстанса портала
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]domain.WizardRecord
	now      func() time.Time
}

// NewMemoryStore создает пустое хранилище
func NewMemoryStore(now func() time.Time) *MemoryStore {
	if now == nil {
		now = time.Now
	}
	return &MemoryStore{
		sessions: make(map[string]domain.WizardRecord),
		now:      now,
	}
}

// Create сохраняет новую сессию
func (s *MemoryStore) Create(_ context.Context, rec *domain.WizardRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sessions[rec.ID]; exists {
		return ErrSessionExists
	}
	s.sessions[rec.ID] = cloneRecord(*rec)
	return nil
}

// Get возвращает копию живой сессии
func (s *MemoryStore) Get(_ context.Context, id string) (*domain.WizardRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.live(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	out := cloneRecord(rec)
	return &out, nil
}

// Update применяет fn к копии под мьютексом; ошибка fn отменяет запись
func (s *MemoryStore) Update(_ context.Context, id string, fn func(rec *domain.WizardRecord) error) (*domain.WizardRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.live(id)
	if !ok {
		return nil, ErrSessionNotFound
	}

	working := cloneRecord(rec)
	if err := fn(&working); err != nil {
		return nil, err
	}
	working.Version++
	working.UpdatedAt = s.now()

	s.sessions[id] = cloneRecord(working)
	return &working, nil
}

// Delete удаляет сессию
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}

// DeleteExpired удаляет истёкшие сессии
func (s *MemoryStore) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int64
	for id, rec := range s.sessions {
		if rec.IsExpired(now) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed, nil
}

func (s *MemoryStore) live(id string) (domain.WizardRecord, bool) {
	rec, ok := s.sessions[id]
	if !ok || rec.IsExpired(s.now()) {
		return domain.WizardRecord{}, false
	}
	return rec, true
}

func cloneRecord(rec domain.WizardRecord) domain.WizardRecord {
	if rec.State != nil {
		state := make([]byte, len(rec.State))
		copy(state, rec.State)
		rec.State = state
	}
	return rec
}
