package group_requests

import (
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-SwapPortal/internal/domain"
)

// Strategy выбирает, с каким членом группы сравнивается время новой строки
type Strategy string

const (
	// StrategyAdjacent сравнение с последним добавленным членом группы
	StrategyAdjacent Strategy = "adjacent"
	// StrategyFirstMember сравнение с первым членом группы.
	// Дробит партии, растянутые дольше окна.
	StrategyFirstMember Strategy = "first_member"
)

// ParseStrategy разбирает значение из конфига
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyAdjacent, StrategyFirstMember:
		return Strategy(s), nil
	case "":
		return StrategyAdjacent, nil
	default:
		return "", fmt.Errorf("%w: unknown grouping strategy %q", ErrInvalidRequest, s)
	}
}

// Attrs поля строки, по которым строятся партии
type Attrs struct {
	CreatedAt   time.Time
	RequestedBy string
	StationName string
	Quantity    int
	Status      domain.RequestStatus
}

// Batch восстановленная партия: строки одного действия пользователя
type Batch[T any] struct {
	Key           time.Time
	RequestedBy   string
	StationName   string
	Items         []T
	TotalQuantity int
	Status        domain.RequestStatus
}

type openGroup[T any] struct {
	first Attrs
	last  Attrs
	batch Batch[T]
}

// Group собирает плоские строки в партии по близости времени, автору и станции.
// Партии возвращаются от новых к старым.
func Group[T any](rows []T, attrs func(T) Attrs, window time.Duration, strategy Strategy) []Batch[T] {
	// 1. Сортируем строки по времени создания
	sorted := make([]T, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return attrs(sorted[i]).CreatedAt.Before(attrs(sorted[j]).CreatedAt)
	})

	// 2-3. Один проход: строка попадает в первую подходящую группу или открывает новую
	groups := make([]*openGroup[T], 0)
	for _, row := range sorted {
		a := attrs(row)

		var target *openGroup[T]
		for _, g := range groups {
			if g.accepts(a, window, strategy) {
				target = g
				break
			}
		}

		if target == nil {
			target = &openGroup[T]{
				first: a,
				batch: Batch[T]{
					Key:         a.CreatedAt.Truncate(time.Second),
					RequestedBy: a.RequestedBy,
					StationName: a.StationName,
				},
			}
			groups = append(groups, target)
		}
		target.add(row, a)
	}

	// 4. Итоги по группам
	batches := make([]Batch[T], 0, len(groups))
	for _, g := range groups {
		batches = append(batches, g.batch)
	}

	// 5. Новые партии первыми
	sort.SliceStable(batches, func(i, j int) bool {
		return batches[i].Key.After(batches[j].Key)
	})
	return batches
}

func (g *openGroup[T]) accepts(a Attrs, window time.Duration, strategy Strategy) bool {
	if a.RequestedBy != g.first.RequestedBy || a.StationName != g.first.StationName {
		return false
	}

	anchor := g.last
	if strategy == StrategyFirstMember {
		anchor = g.first
	}

	delta := a.CreatedAt.Sub(anchor.CreatedAt)
	if delta < 0 {
		delta = -delta
	}
	return delta <= window
}

func (g *openGroup[T]) add(row T, a Attrs) {
	if len(g.batch.Items) == 0 {
		g.batch.Status = a.Status
	} else if g.batch.Status != a.Status {
		// Смешанные статусы считаем неразрешёнными
		g.batch.Status = domain.RequestStatusPending
	}

	g.batch.Items = append(g.batch.Items, row)
	g.batch.TotalQuantity += a.Quantity
	g.last = a
}

// BatteryRequestAttrs поля строки admin -> staff
func BatteryRequestAttrs(r domain.BatteryRequest) Attrs {
	return Attrs{
		CreatedAt:   r.CreatedAt,
		RequestedBy: r.RequestedBy,
		StationName: r.StationName,
		Quantity:    r.Quantity,
		Status:      r.Status,
	}
}

// StockRequestAttrs поля строки staff -> admin
func StockRequestAttrs(r domain.StockRequest) Attrs {
	return Attrs{
		CreatedAt:   r.CreatedAt,
		RequestedBy: r.RequestedBy,
		StationName: r.StationName,
		Quantity:    r.Quantity,
		Status:      r.Status,
	}
}
