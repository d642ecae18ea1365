package get_availability

import (
	"github.com/qnovavr/QNOVA-BookingService/internal/domain"
	getAvailability "github.com/qnovavr/QNOVA-BookingService/internal/usecase/get_availability"
)

// SlotResponse один слот расписания в HTTP ответе
type SlotResponse struct {
	ServiceType string `json:"service"`
	Time        string `json:"time"`
	Status      string `json:"status"`
	Available   bool   `json:"available"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			ServiceType: s.ServiceType,
			Time:        s.StartTime.String(),
			Status:      s.Status,
			Available:   s.Available,
		})
	}

	return &AvailabilityResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Slots: slots,
	}
}
