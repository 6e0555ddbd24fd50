package inspection_wizard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SwapPortal/internal/domain"
	"github.com/m04kA/SMC-SwapPortal/internal/integrations/swapapi"
	"github.com/m04kA/SMC-SwapPortal/internal/service/wizards"
)

const (
	wizardName = "inspection"

	msgSlotsUnavailable = "Could not build the inspection schedule. Please pick the date again."
	msgScheduleFailed   = "Could not schedule the inspection. Please try again."
)

const (
	// DefaultConfirmTimeout через это время незавершённая запись считается брошенной
	DefaultConfirmTimeout = 30 * time.Second

	outcomeWriteAttempts   = 3
	defaultOutcomeRetryGap = 200 * time.Millisecond
)

// UseCase визард записи на осмотр батареи по жалобе
type UseCase struct {
	client       ComplaintClient
	slots        SlotSource
	sessions     SessionManager
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger

	confirmTimeout  time.Duration
	outcomeRetryGap time.Duration
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	client ComplaintClient,
	slots SlotSource,
	sessions SessionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		client:       client,
		slots:        slots,
		sessions:     sessions,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,

		confirmTimeout:  DefaultConfirmTimeout,
		outcomeRetryGap: defaultOutcomeRetryGap,
	}
}

// WithTimeProvider подменяет часы (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// WithConfirmTimeout задаёт, через сколько незавершённую запись можно повторить
func (uc *UseCase) WithConfirmTimeout(d time.Duration) *UseCase {
	if d > 0 {
		uc.confirmTimeout = d
	}
	return uc
}

// Open открывает визард для жалобы
func (uc *UseCase) Open(ctx context.Context, req *OpenRequest) (*View, error) {
	uc.logger.Info("InspectionWizard.Open: owner=%s, complaint=%s", req.OwnerID, req.ComplaintID)

	// 1. Валидация входных данных
	if err := validateOpen(req); err != nil {
		return nil, err
	}

	// 2. Проверяем жалобу
	complaint, err := uc.client.GetComplaint(ctx, req.ComplaintID)
	if err != nil {
		if errors.Is(err, swapapi.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrComplaintNotFound, req.ComplaintID)
		}
		uc.logger.Error("InspectionWizard.Open: failed to get complaint %s: %v", req.ComplaintID, err)
		return nil, fmt.Errorf("%w: complaint: %w", ErrLoadFailed, err)
	}
	if !complaint.CanScheduleInspection() {
		return nil, fmt.Errorf("%w: status=%s", ErrInspectionNotAllowed, complaint.Status)
	}

	// 3. Только активные станции
	stations, err := uc.client.ListStations(ctx)
	if err != nil {
		uc.logger.Error("InspectionWizard.Open: failed to list stations: %v", err)
		return nil, fmt.Errorf("%w: stations: %w", ErrLoadFailed, err)
	}
	active := make([]domain.Station, 0, len(stations))
	for _, st := range stations {
		if st.IsActive {
			active = append(active, st)
		}
	}
	if len(active) == 0 {
		return nil, ErrNoStations
	}

	// 4. Создаём сессию
	session := NewSession(*complaint, active)
	id, err := uc.sessions.Create(ctx, req.OwnerID, session)
	if err != nil {
		uc.logger.Error("InspectionWizard.Open: failed to save session: %v", err)
		return nil, err
	}

	uc.track("open", nil)
	return newView(id, session, uc.timeProvider.Now()), nil
}

// Get текущее состояние визарда
func (uc *UseCase) Get(ctx context.Context, ref Ref) (*View, error) {
	if err := validateRef(ref); err != nil {
		return nil, err
	}
	session, err := uc.sessions.Load(ctx, ref.OwnerID, ref.WizardID)
	if err != nil {
		return nil, err
	}
	return newView(ref.WizardID, session, uc.timeProvider.Now()), nil
}

// SelectStation выбор станции
func (uc *UseCase) SelectStation(ctx context.Context, ref Ref, stationID string) (*View, error) {
	return uc.selectWithSlots(ctx, ref, "select_station", func(s *Session) (*SlotsFetch, error) {
		return s.SelectStation(stationID)
	})
}

// SelectDate выбор даты; слоты генерируются заново
func (uc *UseCase) SelectDate(ctx context.Context, ref Ref, date time.Time) (*View, error) {
	now := uc.timeProvider.Now()
	return uc.selectWithSlots(ctx, ref, "select_date", func(s *Session) (*SlotsFetch, error) {
		return s.SelectDate(date, now)
	})
}

// SelectSlot выбор слота
func (uc *UseCase) SelectSlot(ctx context.Context, ref Ref, slotKey string) (*View, error) {
	now := uc.timeProvider.Now()
	return uc.mutate(ctx, ref, "select_slot", func(s *Session) error {
		return s.SelectSlot(slotKey, now)
	})
}

// Next переход на следующий шаг
func (uc *UseCase) Next(ctx context.Context, ref Ref) (*View, error) {
	return uc.mutate(ctx, ref, "next", func(s *Session) error {
		return s.Next()
	})
}

// Back возврат на предыдущий шаг
func (uc *UseCase) Back(ctx context.Context, ref Ref) (*View, error) {
	return uc.mutate(ctx, ref, "back", func(s *Session) error {
		return s.Back()
	})
}

// Confirm запись на осмотр. Ошибка backend остаётся в сессии, шаг не меняется.
func (uc *UseCase) Confirm(ctx context.Context, ref Ref) (*View, error) {
	if err := validateRef(ref); err != nil {
		return nil, err
	}

	// 1. Проверяем выборы и помечаем подтверждение
	now := uc.timeProvider.Now()
	var plan *ConfirmPlan
	_, err := uc.sessions.Mutate(ctx, ref.OwnerID, ref.WizardID, func(s *Session) error {
		if s.ReleaseStaleConfirm(now) {
			uc.logger.Warn("InspectionWizard.Confirm: wizard=%s, stale confirmation released", ref.WizardID)
		}
		var err error
		plan, err = s.BeginConfirm(now.Add(uc.confirmTimeout))
		return err
	})
	if err != nil {
		uc.track("confirm", err)
		return nil, err
	}

	// 2. Запрос в backend; слот мог быть занят, проверяет backend
	err = uc.client.ScheduleInspection(ctx, plan.ComplaintID, swapapi.InspectionRequest{
		StationID:      plan.StationID,
		InspectionDate: plan.Date.Format(domain.DateFormat),
		StartTime:      plan.Slot.StartTime.String(),
		EndTime:        plan.Slot.EndTime.String(),
	})
	message := ""
	if err != nil {
		uc.logger.Warn("InspectionWizard.Confirm: complaint=%s: %v", plan.ComplaintID, err)
		message = swapapi.UserMessage(err, msgScheduleFailed)
	}
	uc.track("confirm", err)

	// 3. Сохраняем результат, даже если клиент уже отключился
	session, err := uc.storeOutcome(context.WithoutCancel(ctx), ref, message)
	if err != nil {
		uc.logger.Error("InspectionWizard.Confirm: wizard=%s, failed to store outcome: %v", ref.WizardID, err)
		return nil, err
	}

	if session.Scheduled {
		uc.logger.Info("InspectionWizard.Confirm: complaint=%s scheduled at %s %s",
			plan.ComplaintID, plan.Date.Format(domain.DateFormat), plan.Slot.StartTime)
	}
	return newView(ref.WizardID, session, uc.timeProvider.Now()), nil
}

// Close закрывает визард
func (uc *UseCase) Close(ctx context.Context, ref Ref) error {
	if err := validateRef(ref); err != nil {
		return err
	}
	if err := uc.sessions.Delete(ctx, ref.OwnerID, ref.WizardID); err != nil {
		return err
	}
	uc.track("close", nil)
	return nil
}

func (uc *UseCase) selectWithSlots(ctx context.Context, ref Ref, transition string, fn func(s *Session) (*SlotsFetch, error)) (*View, error) {
	if err := validateRef(ref); err != nil {
		return nil, err
	}

	now := uc.timeProvider.Now()
	var fetch *SlotsFetch
	session, err := uc.sessions.Mutate(ctx, ref.OwnerID, ref.WizardID, func(s *Session) error {
		s.ReleaseStaleConfirm(now)
		var err error
		fetch, err = fn(s)
		return err
	})
	uc.track(transition, err)
	if err != nil {
		uc.logger.Warn("InspectionWizard.%s: wizard=%s: %v", transition, ref.WizardID, err)
		return nil, err
	}

	if fetch != nil {
		slots, err := uc.slots.Slots(ctx, fetch.Query)
		message := ""
		if err != nil {
			uc.logger.Warn("InspectionWizard.%s: slots: %v", transition, err)
			message = msgSlotsUnavailable
		}
		// Слоты применяются, даже если клиент уже отключился; устаревшее поколение отбрасывается
		session, err = uc.sessions.Mutate(context.WithoutCancel(ctx), ref.OwnerID, ref.WizardID, func(s *Session) error {
			s.ApplySlots(fetch.Generation, slots, message)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return newView(ref.WizardID, session, uc.timeProvider.Now()), nil
}

func (uc *UseCase) mutate(ctx context.Context, ref Ref, transition string, fn func(s *Session) error) (*View, error) {
	if err := validateRef(ref); err != nil {
		return nil, err
	}
	now := uc.timeProvider.Now()
	session, err := uc.sessions.Mutate(ctx, ref.OwnerID, ref.WizardID, func(s *Session) error {
		s.ReleaseStaleConfirm(now)
		return fn(s)
	})
	uc.track(transition, err)
	if err != nil {
		uc.logger.Warn("InspectionWizard.%s: wizard=%s: %v", transition, ref.WizardID, err)
		return nil, err
	}
	return newView(ref.WizardID, session, uc.timeProvider.Now()), nil
}

// storeOutcome записывает ответ backend с повторами. Если запись так и не удалась,
// подтверждение освободится по ConfirmDeadline.
func (uc *UseCase) storeOutcome(ctx context.Context, ref Ref, message string) (*Session, error) {
	var lastErr error
	for attempt := 1; attempt <= outcomeWriteAttempts; attempt++ {
		session, err := uc.sessions.Mutate(ctx, ref.OwnerID, ref.WizardID, func(s *Session) error {
			s.ApplyConfirm(message)
			return nil
		})
		if err == nil {
			return session, nil
		}
		if errors.Is(err, wizards.ErrNotFound) || errors.Is(err, wizards.ErrForbidden) || errors.Is(err, wizards.ErrCorruptState) {
			return nil, err
		}
		lastErr = err
		uc.logger.Warn("InspectionWizard.Confirm: wizard=%s, outcome write attempt %d failed: %v", ref.WizardID, attempt, err)
		if attempt < outcomeWriteAttempts {
			time.Sleep(uc.outcomeRetryGap * time.Duration(attempt))
		}
	}
	return nil, lastErr
}

func (uc *UseCase) track(transition string, err error) {
	if uc.metrics == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "rejected"
	}
	uc.metrics.IncWizardTransition(wizardName, transition, result)
}
