package manage_plans

// PlanRequest форма тарифа
type PlanRequest struct {
	Name         string
	Description  string
	Price        float64
	DurationDays int
	SwapsLimit   *int // nil = без ограничений
	IsActive     bool
}
