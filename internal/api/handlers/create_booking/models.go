package create_booking

import (
	"time"

	"github.com/qnovavr/QNOVA-BookingService/internal/domain"
	createBooking "github.com/qnovavr/QNOVA-BookingService/internal/usecase/create_booking"
	"github.com/qnovavr/QNOVA-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CustomerName string  `json:"name"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	ServiceType  string  `json:"service"`
	BookingDate  string  `json:"date"` // "2025-10-15"
	StartTime    string  `json:"time"` // "14:00"
	Participants int     `json:"participants"`
	Message      *string `json:"message,omitempty"`
	SelectedGame *string `json:"selectedGame,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           string  `json:"id"`
	SlotID       string  `json:"slotId"`
	CustomerName string  `json:"name"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	ServiceType  string  `json:"service"`
	BookingDate  string  `json:"date"`
	StartTime    string  `json:"time"`
	Participants int     `json:"participants"`
	Message      *string `json:"message,omitempty"`
	SelectedGame *string `json:"selectedGame,omitempty"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		CustomerName: r.CustomerName,
		Email:        r.Email,
		Phone:        r.Phone,
		ServiceType:  r.ServiceType,
		BookingDate:  bookingDate,
		StartTime:    startTime,
		Participants: r.Participants,
		Message:      r.Message,
		SelectedGame: r.SelectedGame,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:           resp.ID,
		SlotID:       resp.SlotID,
		CustomerName: resp.CustomerName,
		Email:        resp.Email,
		Phone:        resp.Phone,
		ServiceType:  resp.ServiceType,
		BookingDate:  resp.BookingDate.Format(domain.DateFormat),
		StartTime:    resp.StartTime.String(),
		Participants: resp.Participants,
		Message:      resp.Message,
		SelectedGame: resp.SelectedGame,
		Status:       resp.Status,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}
