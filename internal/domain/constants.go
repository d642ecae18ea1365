package domain

import "github.com/qnovavr/QNOVA-BookingService/pkg/types"

// Часы работы студии (единые для всех услуг)
const (
	OpenTime  types.TimeString = "12:00"
	CloseTime types.TimeString = "22:00"
)

// Business validation constants
const (
	MinParticipants  = 1
	MaxMessageLength = 1000
	MaxNameLength    = 100
	MaxPhoneLength   = 30
	MaxSubjectLength = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// TestEmailSuffix суффикс email тестовых бронирований.
// Админская ручка очистки удаляет только бронирования с этим суффиксом.
const TestEmailSuffix = "@qnova-test.local"
