package domain

import (
	"time"

	"github.com/qnovavr/QNOVA-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a confirmed reservation of a single slot
type Booking struct {
	ID     string
	SlotID string

	// Данные клиента
	CustomerName string
	Email        string
	Phone        string

	ServiceType  string
	BookingDate  time.Time
	StartTime    types.TimeString
	Participants int

	Message      *string
	SelectedGame *string

	Status      BookingStatus
	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still owns its slot
func (b *Booking) IsActive() bool {
	return b.Status == StatusConfirmed
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// BookingsFilter фильтр для выборки бронирований (админский список)
type BookingsFilter struct {
	Date        *time.Time     // Фильтр по дате (опционально)
	ServiceType *string        // Фильтр по услуге (опционально)
	Status      *BookingStatus // Фильтр по статусу (опционально)
	EmailSuffix *string        // Фильтр по суффиксу email (используется для тестовых данных)
}
