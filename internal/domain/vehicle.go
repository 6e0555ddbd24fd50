package domain

// Vehicle represents a driver's vehicle. It is selected once per booking session.
type Vehicle struct {
	ID             string
	BatteryModelID string
	VIN            string
	LicensePlate   string
	Brand          string
	ModelName      string
	PhotoURL       string
}

// FindVehicle returns the vehicle with the given id or nil
func FindVehicle(vehicles []Vehicle, id string) *Vehicle {
	for i := range vehicles {
		if vehicles[i].ID == id {
			return &vehicles[i]
		}
	}
	return nil
}
