package get_availability

import (
	"time"

	"github.com/qnovavr/QNOVA-BookingService/pkg/types"
)

// Request модель запроса доступных слотов
type Request struct {
	Date        time.Time // Дата, на которую запрашивается расписание
	ServiceType *string   // Фильтр по услуге (опционально, точное название)
}

// SlotInfo информация об одном слоте расписания
type SlotInfo struct {
	ServiceType string           // Название услуги
	StartTime   types.TimeString // Время начала слота
	Status      string           // available | booked | blocked | maintenance
	Available   bool             // Можно ли забронировать слот
}

// Response модель ответа с расписанием на дату
type Response struct {
	Date  time.Time  // Запрошенная дата
	Slots []SlotInfo // Слоты, упорядоченные по услуге и времени начала
}
