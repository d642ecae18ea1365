package get_availability

import (
	"context"
	"fmt"

	"github.com/qnovavr/QNOVA-BookingService/internal/domain"
	"github.com/qnovavr/QNOVA-BookingService/internal/slots"
)

// UseCase use case для получения расписания слотов на дату
type UseCase struct {
	slotRepo     SlotRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slotRepo SlotRepository, logger Logger) *UseCase {
	return &UseCase{
		slotRepo:     slotRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения расписания.
// Слоты генерируются лениво: перед чтением для каждой услуги выполняется
// идемпотентный upsert полного набора времен, поэтому конкурентные запросы
// на одну и ту же дату безопасны и не создают дубликатов.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: date=%s, service=%v",
		req.Date.Format(domain.DateFormat), req.ServiceType)

	now := uc.timeProvider.Now()

	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// Ленивая генерация: гарантируем наличие полного набора слотов
	// для каждой запрошенной услуги.
	for _, svc := range targetServices(req.ServiceType) {
		generated := slots.Generate(req.Date, svc)
		if err := uc.slotRepo.EnsureSlots(ctx, generated); err != nil {
			uc.logger.Error("GetAvailability: failed to ensure slots for service=%s: %v", svc.Name, err)
			return nil, fmt.Errorf("%w: failed to ensure slots: %v", ErrInternal, err)
		}
	}

	stored, err := uc.slotRepo.GetByDate(ctx, req.Date, req.ServiceType)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get slots: %v", ErrInternal, err)
	}

	resp := &Response{
		Date:  req.Date,
		Slots: make([]SlotInfo, 0, len(stored)),
	}
	for _, s := range stored {
		resp.Slots = append(resp.Slots, SlotInfo{
			ServiceType: s.ServiceType,
			StartTime:   s.StartTime,
			Status:      string(s.Status),
			Available:   s.IsAvailable(),
		})
	}

	uc.logger.Info("GetAvailability: returning %d slots for date=%s",
		len(resp.Slots), req.Date.Format(domain.DateFormat))

	return resp, nil
}

// targetServices возвращает список услуг, для которых нужна генерация слотов
func targetServices(serviceType *string) []domain.ServiceType {
	if serviceType == nil {
		return domain.ServiceTypes
	}

	svc, ok := domain.ServiceByName(*serviceType)
	if !ok {
		return nil
	}
	return []domain.ServiceType{svc}
}
