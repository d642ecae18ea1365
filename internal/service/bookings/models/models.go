package models

import (
	"errors"
	"time"

	"github.com/qnovavr/QNOVA-BookingService/internal/domain"
	"github.com/qnovavr/QNOVA-BookingService/pkg/types"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// ListBookingsRequest запрос на получение списка бронирований (админский)
type ListBookingsRequest struct {
	Date        *time.Time // Фильтр по дате (опционально)
	ServiceType *string    // Фильтр по услуге (опционально)
	Status      *string    // Фильтр по статусу (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		Date:        r.Date,
		ServiceType: r.ServiceType,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(status) {
	case domain.StatusConfirmed:
		return domain.StatusConfirmed, nil
	case domain.StatusCancelled:
		return domain.StatusCancelled, nil
	default:
		return "", ErrInvalidStatus
	}
}

// BookingResponse представление бронирования для API
type BookingResponse struct {
	ID           string           `json:"id"`
	SlotID       string           `json:"slotId"`
	CustomerName string           `json:"name"`
	Email        string           `json:"email"`
	Phone        string           `json:"phone"`
	ServiceType  string           `json:"service"`
	BookingDate  string           `json:"date"`
	StartTime    types.TimeString `json:"time"`
	Participants int              `json:"participants"`
	Message      *string          `json:"message,omitempty"`
	SelectedGame *string          `json:"selectedGame,omitempty"`
	Status       string           `json:"status"`
	CancelledAt  *time.Time       `json:"cancelledAt,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// FromDomainBooking конвертирует domain модель в response
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:           b.ID,
		SlotID:       b.SlotID,
		CustomerName: b.CustomerName,
		Email:        b.Email,
		Phone:        b.Phone,
		ServiceType:  b.ServiceType,
		BookingDate:  b.BookingDate.Format(domain.DateFormat),
		StartTime:    b.StartTime,
		Participants: b.Participants,
		Message:      b.Message,
		SelectedGame: b.SelectedGame,
		Status:       string(b.Status),
		CancelledAt:  b.CancelledAt,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в response
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, FromDomainBooking(b))
	}

	return &BookingListResponse{
		Bookings: result,
		Total:    len(result),
	}
}
