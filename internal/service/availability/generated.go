package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SwapPortal/internal/domain"
	"github.com/m04kA/SMC-SwapPortal/pkg/types"
)

// GeneratedSource слоты фиксированной длины, сгенерированные локально.
// Каждый слот считается доступным; реальную проверку делает backend при записи.
type GeneratedSource struct {
	dayStart        types.TimeString
	dayEnd          types.TimeString
	durationMinutes int
	now             func() time.Time
}

// NewGeneratedSource создает источник с рабочим днём [dayStart, dayEnd) и шагом durationMinutes
func NewGeneratedSource(dayStart, dayEnd string, durationMinutes int, now func() time.Time) (*GeneratedSource, error) {
	start, err := types.NewTimeStringFromString(dayStart)
	if err != nil {
		return nil, fmt.Errorf("%w: day start: %v", ErrInvalidSchedule, err)
	}
	end, err := types.NewTimeStringFromString(dayEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: day end: %v", ErrInvalidSchedule, err)
	}
	if !start.IsBefore(end) {
		return nil, fmt.Errorf("%w: day start %s is not before day end %s", ErrInvalidSchedule, start, end)
	}
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: slot duration must be positive", ErrInvalidSchedule)
	}
	if now == nil {
		now = time.Now
	}
	return &GeneratedSource{
		dayStart:        start,
		dayEnd:          end,
		durationMinutes: durationMinutes,
		now:             now,
	}, nil
}

// NewInspectionSource слоты осмотра: 08:00-18:00 по 30 минут
func NewInspectionSource(now func() time.Time) *GeneratedSource {
	src, err := NewGeneratedSource(domain.InspectionDayStart, domain.InspectionDayEnd, domain.InspectionSlotDurationMinutes, now)
	if err != nil {
		// Константы пакета domain валидны
		panic(err)
	}
	return src
}

// Slots генерирует слоты на дату; для прошедшей даты список пустой
func (g *GeneratedSource) Slots(_ context.Context, q Query) ([]domain.Slot, error) {
	if err := validateQuery(q); err != nil {
		return nil, err
	}

	// Проверяем, что дата не в прошлом
	if domain.IsDateInPast(q.Date, g.now()) {
		return []domain.Slot{}, nil
	}

	// Генерируем все слоты от начала дня до конца с фиксированным шагом
	slots := make([]domain.Slot, 0)
	current := g.dayStart
	for current.IsBefore(g.dayEnd) {
		end, err := current.AddMinutes(g.durationMinutes)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
		}
		// Слот не должен выходить за конец дня
		if end.IsAfter(g.dayEnd) {
			break
		}

		slots = append(slots, domain.Slot{
			StartTime:     current,
			EndTime:       end,
			TotalCapacity: 1,
			IsAvailable:   true,
		})
		current = end
	}

	return slots, nil
}
