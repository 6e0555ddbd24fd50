package booking_wizard

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
	wizardName = "booking"

	msgSubscriptionsUnavailable = "Could not load your subscriptions. The swap will be priced per booking."
	msgPriceUnavailable         = "Could not load the swap price. You can still continue."
	msgSlotsUnavailable         = "Could not load available slots. Please pick the date again to retry."
	msgBookingFailed            = "Booking failed. Please try again."
)

const (
	// DefaultConfirmTimeout через это время незавершённое подтверждение считается брошенным
	DefaultConfirmTimeout = 30 * time.Second

	outcomeWriteAttempts   = 3
	defaultOutcomeRetryGap = 200 * time.Millisecond
)

// UseCase визард бронирования замены батареи
type UseCase struct {
	client       BookingClient
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
	client BookingClient,
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

// WithConfirmTimeout задаёт, через сколько незавершённое подтверждение можно повторить
func (uc *UseCase) WithConfirmTimeout(d time.Duration) *UseCase {
	if d > 0 {
		uc.confirmTimeout = d
	}
	return uc
}

// Open открывает визард для станции: шаг 1, всё остальное пусто
func (uc *UseCase) Open(ctx context.Context, req *OpenRequest) (*View, error) {
	uc.logger.Info("BookingWizard.Open: owner=%s, station=%s", req.OwnerID, req.StationID)

	// 1. Валидация входных данных
	if err := validateOpen(req); err != nil {
		uc.logger.Warn("BookingWizard.Open: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем станцию
	stations, err := uc.client.ListStations(ctx)
	if err != nil {
		uc.logger.Error("BookingWizard.Open: failed to list stations: %v", err)
		return nil, fmt.Errorf("%w: stations: %w", ErrLoadFailed, err)
	}
	station := domain.FindStation(stations, req.StationID)
	if station == nil {
		return nil, fmt.Errorf("%w: %s", ErrStationNotFound, req.StationID)
	}
	if !station.IsActive {
		return nil, fmt.Errorf("%w: %s", ErrStationInactive, station.Name)
	}

	// 3. Получаем автомобили водителя
	vehicles, err := uc.client.ListVehicles(ctx)
	if err != nil {
		uc.logger.Error("BookingWizard.Open: failed to list vehicles: %v", err)
		return nil, fmt.Errorf("%w: vehicles: %w", ErrLoadFailed, err)
	}
	if len(vehicles) == 0 {
		return nil, ErrNoVehicles
	}

	// 4. Получаем подписки; при ошибке продолжаем без них
	subs, err := uc.client.ListMySubscriptions(ctx)
	subsFailed := err != nil
	if subsFailed {
		uc.logger.Warn("BookingWizard.Open: subscriptions unavailable, continuing as pay-per-swap: %v", err)
		subs = nil
	}

	// 5. Создаём сессию
	session := NewSession(*station, vehicles, subs)
	if subsFailed {
		session.Error = msgSubscriptionsUnavailable
	}
	id, err := uc.sessions.Create(ctx, req.OwnerID, session)
	if err != nil {
		uc.logger.Error("BookingWizard.Open: failed to save session: %v", err)
		return nil, err
	}

	uc.track("open", nil)
	uc.logger.Info("BookingWizard.Open: wizard=%s opened for station=%s", id, station.ID)
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

// SelectVehicle выбор автомобиля; для платной замены запрашивается цена
func (uc *UseCase) SelectVehicle(ctx context.Context, ref Ref, vehicleID string) (*View, error) {
	if err := validateRef(ref); err != nil {
		return nil, err
	}

	// 1. Переход состояния
	var priceFetch *PriceFetch
	var slotsFetch *SlotsFetch
	session, err := uc.sessions.Mutate(ctx, ref.OwnerID, ref.WizardID, func(s *Session) error {
		var err error
		priceFetch, slotsFetch, err = s.SelectVehicle(vehicleID)
		return err
	})
	uc.track("select_vehicle", err)
	if err != nil {
		uc.logger.Warn("BookingWizard.SelectVehicle: wizard=%s, vehicle=%s: %v", ref.WizardID, vehicleID, err)
		return nil, err
	}

	// 2. Цена замены (только если подписка не покрывает)
	if priceFetch != nil {
		if session, err = uc.fetchPrice(ctx, ref, priceFetch); err != nil {
			return nil, err
		}
	}

	// 3. Слоты, если станция, автомобиль и дата уже заданы
	if slotsFetch != nil {
		if session, err = uc.fetchSlots(ctx, ref, slotsFetch); err != nil {
			return nil, err
		}
	}

	uc.logger.Info("BookingWizard.SelectVehicle: wizard=%s, vehicle=%s, mode=%s", ref.WizardID, vehicleID, session.Mode)
	return newView(ref.WizardID, session, uc.timeProvider.Now()), nil
}

// SelectDate выбор даты; слоты перезапрашиваются
func (uc *UseCase) SelectDate(ctx context.Context, ref Ref, date time.Time) (*View, error) {
	if err := validateRef(ref); err != nil {
		return nil, err
	}

	now := uc.timeProvider.Now()
	var slotsFetch *SlotsFetch
	session, err := uc.sessions.Mutate(ctx, ref.OwnerID, ref.WizardID, func(s *Session) error {
		var err error
		slotsFetch, err = s.SelectDate(date, now)
		return err
	})
	uc.track("select_date", err)
	if err != nil {
		uc.logger.Warn("BookingWizard.SelectDate: wizard=%s, date=%s: %v", ref.WizardID, date.Format(domain.DateFormat), err)
		return nil, err
	}

	if slotsFetch != nil {
		if session, err = uc.fetchSlots(ctx, ref, slotsFetch); err != nil {
			return nil, err
		}
	}
	return newView(ref.WizardID, session, uc.timeProvider.Now()), nil
}

// SelectSlot выбор слота из текущего списка
func (uc *UseCase) SelectSlot(ctx context.Context, ref Ref, slotKey string) (*View, error) {
	now := uc.timeProvider.Now()
	return uc.mutate(ctx, ref, "select_slot", func(s *Session) error {
		return s.SelectSlot(slotKey, now)
	})
}

// SelectPaymentMethod выбор VNPay или наличных
func (uc *UseCase) SelectPaymentMethod(ctx context.Context, ref Ref, method domain.PaymentMethod) (*View, error) {
	return uc.mutate(ctx, ref, "select_payment_method", func(s *Session) error {
		return s.SelectPaymentMethod(method)
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

// Confirm бронирование: по подписке, VNPay (редирект) или наличными (шаг 5).
// Ошибка backend не возвращается наружу: визард остаётся на шаге 4 с сообщением.
func (uc *UseCase) Confirm(ctx context.Context, ref Ref) (*View, error) {
	if err := validateRef(ref); err != nil {
		return nil, err
	}

	// 1. Проверяем выборы и помечаем подтверждение
	now := uc.timeProvider.Now()
	var plan *ConfirmPlan
	_, err := uc.sessions.Mutate(ctx, ref.OwnerID, ref.WizardID, func(s *Session) error {
		if s.ReleaseStaleConfirm(now) {
			uc.logger.Warn("BookingWizard.Confirm: wizard=%s, stale confirmation released", ref.WizardID)
		}
		var err error
		plan, err = s.BeginConfirm(now.Add(uc.confirmTimeout))
		return err
	})
	if err != nil {
		uc.track("confirm", err)
		uc.logger.Warn("BookingWizard.Confirm: wizard=%s rejected: %v", ref.WizardID, err)
		return nil, err
	}

	// 2. Запрос в backend
	outcome := uc.submit(ctx, plan)

	// 3. Сохраняем результат, даже если клиент уже отключился
	session, err := uc.storeOutcome(context.WithoutCancel(ctx), ref, outcome)
	if err != nil {
		uc.logger.Error("BookingWizard.Confirm: wizard=%s, failed to store outcome: %v", ref.WizardID, err)
		return nil, err
	}

	switch {
	case outcome.Err != nil:
		uc.track("confirm", outcome.Err)
		uc.logger.Warn("BookingWizard.Confirm: wizard=%s failed: %v", ref.WizardID, outcome.Err)
	case session.RedirectURL != "":
		uc.track("confirm", nil)
		uc.logger.Info("BookingWizard.Confirm: wizard=%s redirected to payment gateway", ref.WizardID)
	case session.Step == StepResult:
		uc.track("confirm", nil)
		uc.logger.Info("BookingWizard.Confirm: wizard=%s booked, reservation=%s", ref.WizardID, session.Result.ReservationID)
	default:
		uc.track("confirm", errors.New(session.Error))
		uc.logger.Warn("BookingWizard.Confirm: wizard=%s incomplete answer: %s", ref.WizardID, session.Error)
	}
	return newView(ref.WizardID, session, uc.timeProvider.Now()), nil
}

// Result результат бронирования для QR
func (uc *UseCase) Result(ctx context.Context, ref Ref) (*domain.BookingResult, error) {
	if err := validateRef(ref); err != nil {
		return nil, err
	}
	session, err := uc.sessions.Load(ctx, ref.OwnerID, ref.WizardID)
	if err != nil {
		return nil, err
	}
	if session.Result == nil || !session.Result.HasQR() {
		return nil, ErrNoResult
	}
	return session.Result, nil
}

// Close закрывает визард; на backend ничего не отменяется
func (uc *UseCase) Close(ctx context.Context, ref Ref) error {
	if err := validateRef(ref); err != nil {
		return err
	}
	if err := uc.sessions.Delete(ctx, ref.OwnerID, ref.WizardID); err != nil {
		return err
	}
	uc.track("close", nil)
	uc.logger.Info("BookingWizard.Close: wizard=%s closed", ref.WizardID)
	return nil
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
		uc.logger.Warn("BookingWizard.%s: wizard=%s: %v", transition, ref.WizardID, err)
		return nil, err
	}
	return newView(ref.WizardID, session, uc.timeProvider.Now()), nil
}

// storeOutcome записывает ответ backend с повторами. Если запись так и не удалась,
// подтверждение освободится по ConfirmDeadline.
func (uc *UseCase) storeOutcome(ctx context.Context, ref Ref, outcome ConfirmOutcome) (*Session, error) {
	var lastErr error
	for attempt := 1; attempt <= outcomeWriteAttempts; attempt++ {
		session, err := uc.sessions.Mutate(ctx, ref.OwnerID, ref.WizardID, func(s *Session) error {
			s.ApplyConfirm(outcome)
			return nil
		})
		if err == nil {
			return session, nil
		}
		// Визард удалён, истёк или чужой: повторять бессмысленно
		if errors.Is(err, wizards.ErrNotFound) || errors.Is(err, wizards.ErrForbidden) || errors.Is(err, wizards.ErrCorruptState) {
			return nil, err
		}
		lastErr = err
		uc.logger.Warn("BookingWizard.Confirm: wizard=%s, outcome write attempt %d failed: %v", ref.WizardID, attempt, err)
		if attempt < outcomeWriteAttempts {
			time.Sleep(uc.outcomeRetryGap * time.Duration(attempt))
		}
	}
	return nil, lastErr
}

func (uc *UseCase) fetchPrice(ctx context.Context, ref Ref, fetch *PriceFetch) (*Session, error) {
	price, err := uc.client.GetSwapPrice(ctx, fetch.BatteryModelID)
	message := ""
	if err != nil {
		uc.logger.Warn("BookingWizard.fetchPrice: model=%s: %v", fetch.BatteryModelID, err)
		message = swapapi.UserMessage(err, msgPriceUnavailable)
	}

	var applied bool
	session, err := uc.sessions.Mutate(context.WithoutCancel(ctx), ref.OwnerID, ref.WizardID, func(s *Session) error {
		applied = s.ApplyPrice(fetch.Generation, price, message)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !applied {
		uc.trackResult("price", "stale")
		uc.logger.Info("BookingWizard.fetchPrice: wizard=%s, stale response generation=%d discarded", ref.WizardID, fetch.Generation)
	}
	return session, nil
}

func (uc *UseCase) fetchSlots(ctx context.Context, ref Ref, fetch *SlotsFetch) (*Session, error) {
	slots, err := uc.slots.Slots(ctx, fetch.Query)
	message := ""
	if err != nil {
		uc.logger.Warn("BookingWizard.fetchSlots: station=%s, date=%s: %v",
			fetch.Query.StationID, fetch.Query.Date.Format(domain.DateFormat), err)
		message = swapapi.UserMessage(err, msgSlotsUnavailable)
	}

	var applied bool
	session, err := uc.sessions.Mutate(context.WithoutCancel(ctx), ref.OwnerID, ref.WizardID, func(s *Session) error {
		applied = s.ApplySlots(fetch.Generation, slots, message)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !applied {
		uc.trackResult("slots", "stale")
		uc.logger.Info("BookingWizard.fetchSlots: wizard=%s, stale response generation=%d discarded", ref.WizardID, fetch.Generation)
	}
	return session, nil
}

// submit отправляет бронирование по выбранной ветке оплаты
func (uc *UseCase) submit(ctx context.Context, plan *ConfirmPlan) ConfirmOutcome {
	req := swapapi.ReservationRequest{
		VehicleID: plan.VehicleID,
		StationID: plan.StationID,
		SlotDate:  plan.Date.Format(domain.DateFormat),
		StartTime: plan.Slot.StartTime.String(),
		EndTime:   plan.Slot.EndTime.String(),
	}

	if plan.Mode == domain.PaymentModeSubscriptionCovered {
		req.SubscriptionID = plan.SubscriptionID
		result, err := uc.client.CreateReservation(ctx, req)
		if err != nil {
			return ConfirmOutcome{Err: err, Message: swapapi.UserMessage(err, msgBookingFailed)}
		}
		return ConfirmOutcome{Result: result}
	}

	req.PaymentMethod = plan.Method
	result, err := uc.client.CreatePayPerSwapReservation(ctx, req)
	if err != nil {
		return ConfirmOutcome{Err: err, Message: swapapi.UserMessage(err, msgBookingFailed)}
	}
	return ConfirmOutcome{
		Result:      result.Reservation,
		RedirectURL: result.PaymentURL,
		PaymentID:   result.PaymentID,
	}
}

func (uc *UseCase) track(transition string, err error) {
	result := "ok"
	if err != nil {
		result = "rejected"
	}
	uc.trackResult(transition, result)
}

func (uc *UseCase) trackResult(transition, result string) {
	if uc.metrics == nil {
		return
	}
	uc.metrics.IncWizardTransition(wizardName, transition, result)
}
