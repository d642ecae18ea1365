package slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/qnovavr/QNOVA-BookingService/internal/domain"
	"github.com/qnovavr/QNOVA-BookingService/pkg/types"
)

// Generate детерминированно строит полный упорядоченный набор слотов
// для пары (дата, услуга). Все слоты создаются в статусе available.
//
// Сетка слотов (воспроизводится точно):
//   - PlayStation-услуги: шаг 60 минут, 12:00..22:00 включительно (11 слотов);
//   - остальные услуги: шаг 30 минут, 12:00..21:30 (20 слотов) —
//     слот, начинающийся в момент закрытия или позже, не создается.
//
// Функция чистая по отношению к состоянию: повторный вызов для той же
// пары дает тот же набор времен, поэтому ленивую генерацию безопасно
// выполнять конкурентно поверх идемпотентного upsert.
func Generate(date time.Time, svc domain.ServiceType) []*domain.Slot {
	result := make([]*domain.Slot, 0, 20)

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	cursor := domain.OpenTime
	for {
		if svc.IsPlayStation() {
			if cursor.IsAfter(domain.CloseTime) {
				break
			}
		} else {
			if !cursor.IsBefore(domain.CloseTime) {
				break
			}
		}

		result = append(result, &domain.Slot{
			ID:          uuid.NewString(),
			Date:        day,
			StartTime:   cursor,
			ServiceType: svc.Name,
			Status:      domain.SlotAvailable,
		})

		next, err := cursor.AddMinutes(svc.SlotIntervalMinutes)
		if err != nil {
			break
		}
		cursor = next
	}

	return result
}

// Times возвращает только времена слотов (для логов и тестов)
func Times(slots []*domain.Slot) []types.TimeString {
	times := make([]types.TimeString, len(slots))
	for i, s := range slots {
		times[i] = s.StartTime
	}
	return times
}
