package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/qnovavr/QNOVA-BookingService/internal/domain"
	slotRepo "github.com/qnovavr/QNOVA-BookingService/internal/infra/storage/slot"
	"github.com/qnovavr/QNOVA-BookingService/internal/slots"
	"github.com/qnovavr/QNOVA-BookingService/pkg/txmanager"
)

// Metrics интерфейс бизнес-метрик бронирования
type Metrics interface {
	BookingCreated(serviceType string)
	SlotClaimConflict()
}

// UseCase use case для создания бронирования
type UseCase struct {
	slotRepo     SlotRepository
	bookingRepo  BookingRepository
	txManager    TransactionManager
	notifier     Notifier
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	notifier Notifier,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:     slotRepo,
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		notifier:     notifier,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Слот захватывается атомарно внутри сериализуемой транзакции: при гонке
// двух запросов за один слот ровно один получает бронирование, второй —
// ErrSlotUnavailable. Сбой сериализации прозрачно повторяется один раз.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: email=%s, service=%q, date=%s, time=%s, participants=%d",
		req.Email, req.ServiceType, req.BookingDate.Format(domain.DateFormat), req.StartTime, req.Participants)

	// 1. Валидация входных данных (все нарушения сразу)
	now := uc.timeProvider.Now()
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	svc, _ := domain.ServiceByName(req.ServiceType)

	// 2. Ленивая генерация слотов до транзакции: идемпотентный upsert
	// не должен удлинять сериализуемую секцию.
	generated := slots.Generate(req.BookingDate, svc)
	if err := uc.slotRepo.EnsureSlots(ctx, generated); err != nil {
		uc.logger.Error("CreateBooking: failed to ensure slots: %v", err)
		return nil, fmt.Errorf("%w: failed to ensure slots: %v", ErrInternal, err)
	}

	// 3. ID бронирования фиксируется до транзакции, чтобы повтор после
	// сбоя сериализации не породил второй идентификатор.
	bookingID := uuid.NewString()

	result, err := uc.claimAndCreate(ctx, req, bookingID)
	if errors.Is(err, txmanager.ErrSerialization) {
		// 4. Один прозрачный повтор при сбое сериализации
		uc.logger.Warn("CreateBooking: serialization failure, retrying once: %v", err)

		result, err = uc.claimAndCreate(ctx, req, bookingID)
		if errors.Is(err, txmanager.ErrSerialization) {
			uc.logger.Error("CreateBooking: serialization failure after retry: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrTransient, err)
		}
	}
	if err != nil {
		return nil, err
	}

	uc.metrics.BookingCreated(result.ServiceType)
	uc.logger.Info("CreateBooking: successfully created booking id=%s slot=%s", result.ID, result.SlotID)

	// 5. Подтверждение клиенту; сбой доставки не откатывает бронирование
	if err := uc.notifier.SendBookingConfirmation(ctx, result); err != nil {
		uc.logger.Warn("CreateBooking: failed to send confirmation for booking id=%s: %v", result.ID, err)
	}

	return toResponse(result), nil
}

// claimAndCreate захватывает слот и создает бронирование в одной
// сериализуемой транзакции
func (uc *UseCase) claimAndCreate(ctx context.Context, req *Request, bookingID string) (*domain.Booking, error) {
	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Слот читается с блокировкой (FOR UPDATE внутри транзакции)
		slot, err := uc.slotRepo.GetByKey(txCtx, req.BookingDate, req.StartTime, req.ServiceType)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				uc.logger.Warn("CreateBooking: no slot at %s %s for service=%q",
					req.BookingDate.Format(domain.DateFormat), req.StartTime, req.ServiceType)
				return ErrSlotNotFound
			}
			uc.logger.Error("CreateBooking: failed to get slot: %v", err)
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}

		// Атомарный захват: available -> booked, условное обновление
		if err := uc.slotRepo.TryClaim(txCtx, slot.ID, bookingID); err != nil {
			if errors.Is(err, slotRepo.ErrSlotConflict) {
				uc.metrics.SlotClaimConflict()
				uc.logger.Warn("CreateBooking: slot id=%s already taken", slot.ID)
				return ErrSlotUnavailable
			}
			uc.logger.Error("CreateBooking: failed to claim slot id=%s: %v", slot.ID, err)
			return fmt.Errorf("%w: failed to claim slot: %v", ErrInternal, err)
		}

		booking := &domain.Booking{
			ID:           bookingID,
			SlotID:       slot.ID,
			CustomerName: req.CustomerName,
			Email:        req.Email,
			Phone:        req.Phone,
			ServiceType:  req.ServiceType,
			BookingDate:  req.BookingDate,
			StartTime:    req.StartTime,
			Participants: req.Participants,
			Message:      req.Message,
			SelectedGame: req.SelectedGame,
			Status:       domain.StatusConfirmed,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// toResponse конвертирует доменную модель в response
func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:           b.ID,
		SlotID:       b.SlotID,
		CustomerName: b.CustomerName,
		Email:        b.Email,
		Phone:        b.Phone,
		ServiceType:  b.ServiceType,
		BookingDate:  b.BookingDate,
		StartTime:    b.StartTime,
		Participants: b.Participants,
		Message:      b.Message,
		SelectedGame: b.SelectedGame,
		Status:       string(b.Status),

		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
