package booking_wizard

import "errors"

var (
	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("invalid input")

	// ErrStationNotFound станция не найдена
	ErrStationNotFound = errors.New("station not found")

	// ErrStationInactive станция не принимает бронирования
	ErrStationInactive = errors.New("station is not active")

	// ErrNoVehicles у водителя нет автомобилей
	ErrNoVehicles = errors.New("driver has no vehicles")

	// ErrLoadFailed не удалось загрузить данные для открытия визарда
	ErrLoadFailed = errors.New("failed to load wizard data")

	// ErrWrongStep действие недоступно на текущем шаге
	ErrWrongStep = errors.New("action is not available on the current step")

	// ErrSelectionRequired шаг нельзя покинуть без выбора
	ErrSelectionRequired = errors.New("selection required before moving on")

	// ErrVehicleNotFound автомобиль не из списка водителя
	ErrVehicleNotFound = errors.New("vehicle not found")

	// ErrDateInPast дата бронирования в прошлом
	ErrDateInPast = errors.New("booking date is in the past")

	// ErrSlotsNotLoaded слоты ещё не получены
	ErrSlotsNotLoaded = errors.New("slots are not loaded")

	// ErrSlotNotFound слот не из текущего списка
	ErrSlotNotFound = errors.New("slot not found")

	// ErrSlotNotSelectable слот занят или уже начался
	ErrSlotNotSelectable = errors.New("slot is not selectable")

	// ErrPaymentMethodNotApplicable способ оплаты выбирается только для платной замены
	ErrPaymentMethodNotApplicable = errors.New("payment method applies to pay-per-swap bookings only")

	// ErrPaymentMethodRequired для платной замены нужно выбрать способ оплаты
	ErrPaymentMethodRequired = errors.New("payment method is required")

	// ErrConfirmInProgress подтверждение уже выполняется
	ErrConfirmInProgress = errors.New("confirmation already in progress")

	// ErrNoResult у визарда нет результата бронирования
	ErrNoResult = errors.New("booking has no result")
)
