package domain

import (
	"time"

	"github.com/qnovavr/QNOVA-BookingService/pkg/types"
)

// SlotStatus represents the status of a time slot
type SlotStatus string

const (
	SlotAvailable   SlotStatus = "available"
	SlotBooked      SlotStatus = "booked"
	SlotBlocked     SlotStatus = "blocked"
	SlotMaintenance SlotStatus = "maintenance"
)

// Slot represents a bookable unit of time for one service on one date.
// Инвариант: для тройки (Date, StartTime, ServiceType) существует ровно
// один слот; BookingRef заполнен тогда и только тогда, когда Status = booked.
type Slot struct {
	ID          string
	Date        time.Time // Календарная дата без компонента времени
	StartTime   types.TimeString
	ServiceType string
	Status      SlotStatus
	BookingRef  *string // ID владеющего бронирования, только при Status = booked

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAvailable returns true if the slot can be claimed
func (s *Slot) IsAvailable() bool {
	return s.Status == SlotAvailable
}

// IsBooked returns true if the slot is owned by a booking
func (s *Slot) IsBooked() bool {
	return s.Status == SlotBooked
}
