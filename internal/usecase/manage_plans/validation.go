package manage_plans

import "strings"

const (
	maxNameLength        = 100
	maxDescriptionLength = 1000
	maxDurationDays      = 366
)

// validatePlan проверяет форму тарифа
func validatePlan(req *PlanRequest) error {
	fields := map[string]string{}

	name := strings.TrimSpace(req.Name)
	switch {
	case name == "":
		fields["name"] = "Name is required"
	case len(name) > maxNameLength:
		fields["name"] = "Name is too long"
	}
	if len(req.Description) > maxDescriptionLength {
		fields["description"] = "Description is too long"
	}
	if req.Price <= 0 {
		fields["price"] = "Price must be greater than zero"
	}
	if req.DurationDays <= 0 || req.DurationDays > maxDurationDays {
		fields["durationDays"] = "Duration must be between 1 and 366 days"
	}
	if req.SwapsLimit != nil && *req.SwapsLimit <= 0 {
		fields["swapsLimit"] = "Swap limit must be positive or empty for unlimited"
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}
