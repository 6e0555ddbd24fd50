package swapapi

import (
	"github.com/m04kA/SMC-SwapPortal/internal/domain"
)

// userResponse модель пользователя из /Auth
type userResponse struct {
	ID        flexID   `json:"id"`
	Email     string   `json:"email"`
	FullName  string   `json:"fullName"`
	Phone     string   `json:"phoneNumber"`
	Role      string   `json:"role"`
	StationID flexID   `json:"stationId"`
	IsActive  *bool    `json:"isActive"`
	CreatedAt wireTime `json:"createdAt"`
}

func (u userResponse) toDomain() domain.User {
	active := true
	if u.IsActive != nil {
		active = *u.IsActive
	}
	return domain.User{
		ID:        string(u.ID),
		Email:     u.Email,
		FullName:  u.FullName,
		Phone:     u.Phone,
		Role:      domain.Role(u.Role),
		StationID: string(u.StationID),
		IsActive:  active,
		CreatedAt: u.CreatedAt.Time,
	}
}

// LoginRequest тело POST /Auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult результат входа
type LoginResult struct {
	Token string
	Role  domain.Role
	User  *domain.User
}

type loginResponse struct {
	Token       string        `json:"token"`
	AccessToken string        `json:"accessToken"`
	Role        string        `json:"role"`
	User        *userResponse `json:"user"`
}

// RegisterRequest тело POST /Auth/register
type RegisterRequest struct {
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Phone           string `json:"phoneNumber"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type verifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// ResetPasswordRequest тело POST /Auth/reset-password
type ResetPasswordRequest struct {
	Email           string `json:"email"`
	OTP             string `json:"otp"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

type stationResponse struct {
	ID        flexID    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	IsActive  bool      `json:"isActive"`
	OpenTime  wireClock `json:"openTime"`
	CloseTime wireClock `json:"closeTime"`
	Phone     string    `json:"phoneNumber"`
	IsOpenNow bool      `json:"isOpenNow"`
}

func (s stationResponse) toDomain() domain.Station {
	return domain.Station{
		ID:        string(s.ID),
		Name:      s.Name,
		Address:   s.Address,
		City:      s.City,
		Latitude:  s.Latitude,
		Longitude: s.Longitude,
		IsActive:  s.IsActive,
		OpenTime:  s.OpenTime.toTimeString(),
		CloseTime: s.CloseTime.toTimeString(),
		Phone:     s.Phone,
		IsOpenNow: s.IsOpenNow,
	}
}

type vehicleResponse struct {
	ID             flexID `json:"id"`
	BatteryModelID flexID `json:"batteryModelId"`
	VIN            string `json:"vin"`
	LicensePlate   string `json:"licensePlate"`
	Brand          string `json:"brand"`
	ModelName      string `json:"modelName"`
	PhotoURL       string `json:"photoUrl"`
}

func (v vehicleResponse) toDomain() domain.Vehicle {
	return domain.Vehicle{
		ID:             string(v.ID),
		BatteryModelID: string(v.BatteryModelID),
		VIN:            v.VIN,
		LicensePlate:   v.LicensePlate,
		Brand:          v.Brand,
		ModelName:      v.ModelName,
		PhotoURL:       v.PhotoURL,
	}
}

type slotResponse struct {
	StartTime           wireClock `json:"startTime"`
	EndTime             wireClock `json:"endTime"`
	TotalCapacity       int       `json:"totalCapacity"`
	CurrentReservations int       `json:"currentReservations"`
	IsAvailable         bool      `json:"isAvailable"`
}

func (s slotResponse) toDomain() domain.Slot {
	return domain.Slot{
		StartTime:           s.StartTime.toTimeString(),
		EndTime:             s.EndTime.toTimeString(),
		TotalCapacity:       s.TotalCapacity,
		CurrentReservations: s.CurrentReservations,
		IsAvailable:         s.IsAvailable,
	}
}

type swapPriceResponse struct {
	BatteryModelID flexID  `json:"batteryModelId"`
	Price          float64 `json:"price"`
}

// ReservationRequest тело бронирования слота
type ReservationRequest struct {
	VehicleID      string                `json:"vehicleId"`
	StationID      string                `json:"stationId"`
	SlotDate       string                `json:"slotDate"`
	StartTime      string                `json:"startTime"`
	EndTime        string                `json:"endTime"`
	SubscriptionID string                `json:"subscriptionId,omitempty"`
	PaymentMethod  *domain.PaymentMethod `json:"paymentMethod,omitempty"`
}

type reservationResponse struct {
	ID              flexID    `json:"id"`
	ReservationCode string    `json:"reservationCode"`
	QRCode          string    `json:"qrCode"`
	QRPayload       string    `json:"qrPayload"`
	StationID       flexID    `json:"stationId"`
	StationName     string    `json:"stationName"`
	SlotDate        wireTime  `json:"slotDate"`
	StartTime       wireClock `json:"startTime"`
	EndTime         wireClock `json:"endTime"`
}

func (r reservationResponse) toDomain() domain.BookingResult {
	payload := r.QRPayload
	if payload == "" {
		payload = r.QRCode
	}
	return domain.BookingResult{
		ReservationID:   string(r.ID),
		ReservationCode: r.ReservationCode,
		QRPayload:       payload,
		StationID:       string(r.StationID),
		StationName:     r.StationName,
		SlotDate:        r.SlotDate.Time,
		StartTime:       r.StartTime.toTimeString(),
		EndTime:         r.EndTime.toTimeString(),
	}
}

// PayPerSwapResult ответ на платное бронирование.
// Для VNPay заполнен PaymentURL, для Cash сразу есть Reservation.
type PayPerSwapResult struct {
	PaymentID   string
	PaymentURL  string
	Amount      *float64
	Reservation *domain.BookingResult
}

type payPerSwapResponse struct {
	PaymentID   flexID               `json:"paymentId"`
	PaymentURL  string               `json:"paymentUrl"`
	Amount      *float64             `json:"amount"`
	Reservation *reservationResponse `json:"reservation"`
}

type paymentURLResponse struct {
	PaymentURL string `json:"paymentUrl"`
}

type paymentResponse struct {
	ID            flexID   `json:"id"`
	Method        int      `json:"paymentMethod"`
	Type          string   `json:"paymentType"`
	Amount        float64  `json:"amount"`
	Status        string   `json:"status"`
	PaymentURL    *string  `json:"paymentUrl"`
	CustomerName  string   `json:"customerName"`
	CustomerEmail string   `json:"customerEmail"`
	CreatedAt     wireTime `json:"createdAt"`
	UpdatedAt     wireTime `json:"updatedAt"`
}

func (p paymentResponse) toDomain() domain.Payment {
	return domain.Payment{
		ID:            string(p.ID),
		Method:        domain.PaymentMethod(p.Method),
		Type:          domain.PaymentType(p.Type),
		Amount:        p.Amount,
		Status:        domain.PaymentStatus(p.Status),
		PaymentURL:    p.PaymentURL,
		CustomerName:  p.CustomerName,
		CustomerEmail: p.CustomerEmail,
		CreatedAt:     p.CreatedAt.Time,
		UpdatedAt:     p.UpdatedAt.Time,
	}
}

type subscriptionResponse struct {
	ID                    flexID   `json:"id"`
	StartDate             wireTime `json:"startDate"`
	EndDate               wireTime `json:"endDate"`
	IsActive              bool     `json:"isActive"`
	IsBlocked             bool     `json:"isBlocked"`
	VehicleID             flexID   `json:"vehicleId"`
	CurrentMonthSwapCount int      `json:"currentMonthSwapCount"`
	SwapsLimit            *int     `json:"swapsLimit"`
	PlanID                flexID   `json:"planId"`
	PlanName              string   `json:"planName"`
}

func (s subscriptionResponse) toDomain() domain.SubscriptionInfo {
	return domain.SubscriptionInfo{
		ID:                    string(s.ID),
		StartDate:             s.StartDate.Time,
		EndDate:               s.EndDate.Time,
		IsActive:              s.IsActive,
		IsBlocked:             s.IsBlocked,
		VehicleID:             string(s.VehicleID),
		CurrentMonthSwapCount: s.CurrentMonthSwapCount,
		SwapsLimit:            s.SwapsLimit,
		PlanID:                string(s.PlanID),
		PlanName:              s.PlanName,
	}
}

type planResponse struct {
	ID           flexID   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	DurationDays int      `json:"durationDays"`
	SwapsLimit   *int     `json:"swapsLimit"`
	IsActive     bool     `json:"isActive"`
	CreatedAt    wireTime `json:"createdAt"`
}

func (p planResponse) toDomain() domain.SubscriptionPlan {
	return domain.SubscriptionPlan{
		ID:           string(p.ID),
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		DurationDays: p.DurationDays,
		SwapsLimit:   p.SwapsLimit,
		IsActive:     p.IsActive,
		CreatedAt:    p.CreatedAt.Time,
	}
}

// PlanRequest тело создания и изменения тарифа
type PlanRequest struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	DurationDays int     `json:"durationDays"`
	SwapsLimit   *int    `json:"swapsLimit"`
	IsActive     bool    `json:"isActive"`
}

type swapRecordResponse struct {
	ID           flexID   `json:"id"`
	StationName  string   `json:"stationName"`
	VehiclePlate string   `json:"licensePlate"`
	OldBatteryID flexID   `json:"oldBatteryId"`
	NewBatteryID flexID   `json:"newBatteryId"`
	PaymentType  string   `json:"paymentType"`
	Amount       float64  `json:"amount"`
	SwappedAt    wireTime `json:"swappedAt"`
}

func (s swapRecordResponse) toDomain() domain.SwapRecord {
	return domain.SwapRecord{
		ID:           string(s.ID),
		StationName:  s.StationName,
		VehiclePlate: s.VehiclePlate,
		OldBatteryID: string(s.OldBatteryID),
		NewBatteryID: string(s.NewBatteryID),
		PaymentType:  domain.PaymentType(s.PaymentType),
		Amount:       s.Amount,
		SwappedAt:    s.SwappedAt.Time,
	}
}

// SwapHistoryPage страница истории замен, пагинация на стороне backend
type SwapHistoryPage struct {
	Items      []domain.SwapRecord
	Page       int
	PageSize   int
	TotalItems int
	TotalPages int
}

type swapHistoryResponse struct {
	Items      []swapRecordResponse `json:"items"`
	Page       int                  `json:"page"`
	PageSize   int                  `json:"pageSize"`
	TotalItems int                  `json:"totalItems"`
	TotalPages int                  `json:"totalPages"`
}

type complaintResponse struct {
	ID                    flexID    `json:"id"`
	ReservationID         flexID    `json:"reservationId"`
	Title                 string    `json:"title"`
	Description           string    `json:"description"`
	Status                string    `json:"status"`
	CustomerName          string    `json:"customerName"`
	CustomerEmail         string    `json:"customerEmail"`
	StationName           string    `json:"stationName"`
	InspectionStationID   flexID    `json:"inspectionStationId"`
	InspectionScheduledAt *wireTime `json:"inspectionScheduledAt"`
	CreatedAt             wireTime  `json:"createdAt"`
}

func (c complaintResponse) toDomain() domain.Complaint {
	return domain.Complaint{
		ID:                    string(c.ID),
		ReservationID:         string(c.ReservationID),
		Title:                 c.Title,
		Description:           c.Description,
		Status:                domain.ComplaintStatus(c.Status),
		CustomerName:          c.CustomerName,
		CustomerEmail:         c.CustomerEmail,
		StationName:           c.StationName,
		InspectionStationID:   string(c.InspectionStationID),
		InspectionScheduledAt: c.InspectionScheduledAt.ptr(),
		CreatedAt:             c.CreatedAt.Time,
	}
}

// ComplaintRequest тело создания жалобы
type ComplaintRequest struct {
	ReservationID string `json:"reservationId,omitempty"`
	Title         string `json:"title"`
	Description   string `json:"description"`
}

// InspectionRequest тело записи на осмотр батареи
type InspectionRequest struct {
	StationID      string `json:"stationId"`
	InspectionDate string `json:"inspectionDate"`
	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
}

type batteryRequestResponse struct {
	ID               flexID   `json:"id"`
	StationID        flexID   `json:"stationId"`
	StationName      string   `json:"stationName"`
	BatteryModelID   flexID   `json:"batteryModelId"`
	BatteryModelName string   `json:"batteryModelName"`
	Quantity         int      `json:"quantity"`
	Status           int      `json:"status"`
	RequestedBy      string   `json:"requestedByName"`
	Note             string   `json:"note"`
	Reason           string   `json:"reason"`
	CreatedAt        wireTime `json:"createdAt"`
}

func (r batteryRequestResponse) toBatteryRequest() domain.BatteryRequest {
	return domain.BatteryRequest{
		ID:               string(r.ID),
		StationID:        string(r.StationID),
		StationName:      r.StationName,
		BatteryModelID:   string(r.BatteryModelID),
		BatteryModelName: r.BatteryModelName,
		Quantity:         r.Quantity,
		Status:           domain.RequestStatus(r.Status),
		RequestedBy:      r.RequestedBy,
		Note:             r.Note,
		CreatedAt:        r.CreatedAt.Time,
	}
}

func (r batteryRequestResponse) toStockRequest() domain.StockRequest {
	return domain.StockRequest{
		ID:               string(r.ID),
		StationID:        string(r.StationID),
		StationName:      r.StationName,
		BatteryModelID:   string(r.BatteryModelID),
		BatteryModelName: r.BatteryModelName,
		Quantity:         r.Quantity,
		Status:           domain.RequestStatus(r.Status),
		RequestedBy:      r.RequestedBy,
		Reason:           r.Reason,
		CreatedAt:        r.CreatedAt.Time,
	}
}

// RestockLineRequest одна строка заявки на пополнение
type RestockLineRequest struct {
	StationID      string `json:"stationId"`
	BatteryModelID string `json:"batteryModelId"`
	Quantity       int    `json:"quantity"`
	Note           string `json:"note,omitempty"`
	Reason         string `json:"reason,omitempty"`
}
