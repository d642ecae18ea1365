package create_booking

import (
	"time"

	"github.com/qnovavr/QNOVA-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	CustomerName string           `validate:"required,max=100"`
	Email        string           `validate:"required,email"`
	Phone        string           `validate:"required,max=30"`
	ServiceType  string           `validate:"required"`
	BookingDate  time.Time        `validate:"required"`
	StartTime    types.TimeString `validate:"required"`
	Participants int              `validate:"required,min=1"`
	Message      *string          `validate:"omitempty,max=1000"`
	SelectedGame *string          `validate:"omitempty,max=200"`
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID           string           // ID созданного бронирования
	SlotID       string           // ID занятого слота
	CustomerName string           // Имя клиента
	Email        string           // Email клиента
	Phone        string           // Телефон клиента
	ServiceType  string           // Название услуги
	BookingDate  time.Time        // Дата бронирования
	StartTime    types.TimeString // Время начала
	Participants int              // Число участников
	Message      *string          // Сообщение клиента
	SelectedGame *string          // Выбранная игра
	Status       string           // Статус бронирования

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
