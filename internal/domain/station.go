package domain

import "github.com/m04kA/SMC-SwapPortal/pkg/types"

// Station represents a battery-swap station. Read-only reference data.
type Station struct {
	ID        string
	Name      string
	Address   string
	City      string
	Latitude  float64
	Longitude float64
	IsActive  bool
	OpenTime  types.TimeString
	CloseTime types.TimeString
	Phone     string
	IsOpenNow bool
}

// FindStation returns the station with the given id or nil
func FindStation(stations []Station, id string) *Station {
	for i := range stations {
		if stations[i].ID == id {
			return &stations[i]
		}
	}
	return nil
}
