package inspection_wizard

import "errors"

var (
	// ErrInvalidInput неверные входные данные
	ErrInvalidInput = errors.New("invalid input")

	// ErrComplaintNotFound жалоба не найдена
	ErrComplaintNotFound = errors.New("complaint not found")

	// ErrInspectionNotAllowed жалоба закрыта или осмотр уже назначен
	ErrInspectionNotAllowed = errors.New("inspection cannot be scheduled for this complaint")

	// ErrNoStations нет активных станций для осмотра
	ErrNoStations = errors.New("no active stations")

	// ErrLoadFailed не удалось загрузить данные для визарда
	ErrLoadFailed = errors.New("failed to load wizard data")

	// ErrWrongStep действие недоступно на текущем шаге
	ErrWrongStep = errors.New("action is not allowed on the current step")

	// ErrSelectionRequired не сделан выбор текущего шага
	ErrSelectionRequired = errors.New("selection required")

	// ErrStationNotFound станция не из списка
	ErrStationNotFound = errors.New("station not found")

	// ErrDateInPast дата в прошлом
	ErrDateInPast = errors.New("date is in the past")

	// ErrSlotNotFound слот не из текущего списка
	ErrSlotNotFound = errors.New("slot not found")

	// ErrSlotNotSelectable слот уже начался
	ErrSlotNotSelectable = errors.New("slot cannot be selected")

	// ErrConfirmInProgress подтверждение уже выполняется
	ErrConfirmInProgress = errors.New("confirmation already in progress")

	// ErrAlreadyScheduled осмотр уже назначен в этом визарде
	ErrAlreadyScheduled = errors.New("inspection already scheduled")
)
