package swapapi

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/m04kA/SMC-SwapPortal/internal/domain"
)

// ListStations справочник станций
func (c *Client) ListStations(ctx context.Context) ([]domain.Station, error) {
	var resp []stationResponse
	if err := c.call(ctx, "ListStations", http.MethodGet, "/api/v1/stations", nil, nil, &resp); err != nil {
		return nil, err
	}
	stations := make([]domain.Station, 0, len(resp))
	for _, s := range resp {
		stations = append(stations, s.toDomain())
	}
	return stations, nil
}

// ListVehicles автомобили текущего водителя
func (c *Client) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	var resp []vehicleResponse
	if err := c.call(ctx, "ListVehicles", http.MethodGet, "/api/v1/vehicles", nil, nil, &resp); err != nil {
		return nil, err
	}
	vehicles := make([]domain.Vehicle, 0, len(resp))
	for _, v := range resp {
		vehicles = append(vehicles, v.toDomain())
	}
	return vehicles, nil
}

// GetAvailableSlots слоты станции на дату для модели батареи
func (c *Client) GetAvailableSlots(ctx context.Context, stationID string, date time.Time, batteryModelID string) ([]domain.Slot, error) {
	query := url.Values{}
	query.Set("stationId", stationID)
	query.Set("date", date.Format(domain.DateFormat))
	query.Set("batteryModelId", batteryModelID)

	var resp []slotResponse
	if err := c.call(ctx, "GetAvailableSlots", http.MethodGet, "/api/v1/slot-reservations/available-slots", query, nil, &resp); err != nil {
		return nil, err
	}
	slots := make([]domain.Slot, 0, len(resp))
	for _, s := range resp {
		slots = append(slots, s.toDomain())
	}
	return slots, nil
}

// GetSwapPrice цена одной замены для модели батареи
func (c *Client) GetSwapPrice(ctx context.Context, batteryModelID string) (float64, error) {
	query := url.Values{}
	query.Set("batteryModelId", batteryModelID)

	var resp swapPriceResponse
	if err := c.call(ctx, "GetSwapPrice", http.MethodGet, "/api/v1/payments/swap-price", query, nil, &resp); err != nil {
		return 0, err
	}
	return resp.Price, nil
}

// CreateReservation бронирование по подписке
func (c *Client) CreateReservation(ctx context.Context, req ReservationRequest) (*domain.BookingResult, error) {
	var resp reservationResponse
	if err := c.call(ctx, "CreateReservation", http.MethodPost, "/api/v1/slot-reservations", nil, req, &resp); err != nil {
		return nil, err
	}
	result := resp.toDomain()
	return &result, nil
}

// CreatePayPerSwapReservation платное бронирование (VNPay или Cash)
func (c *Client) CreatePayPerSwapReservation(ctx context.Context, req ReservationRequest) (*PayPerSwapResult, error) {
	var resp payPerSwapResponse
	if err := c.call(ctx, "CreatePayPerSwapReservation", http.MethodPost, "/api/v1/payments/create-pay-per-swap-reservation", nil, req, &resp); err != nil {
		return nil, err
	}

	result := &PayPerSwapResult{
		PaymentID:  string(resp.PaymentID),
		PaymentURL: resp.PaymentURL,
		Amount:     resp.Amount,
	}
	if resp.Reservation != nil {
		booking := resp.Reservation.toDomain()
		booking.PaymentID = result.PaymentID
		booking.Amount = result.Amount
		result.Reservation = &booking
	}
	return result, nil
}
