package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/qnovavr/QNOVA-BookingService/internal/domain"
	bookingRepo "github.com/qnovavr/QNOVA-BookingService/internal/infra/storage/booking"
	slotRepo "github.com/qnovavr/QNOVA-BookingService/internal/infra/storage/slot"
	"github.com/qnovavr/QNOVA-BookingService/internal/service/bookings/models"
	"github.com/qnovavr/QNOVA-BookingService/pkg/ptr"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	slotRepo    SlotRepository
	txManager   TransactionManager
	notifier    Notifier
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	txManager TransactionManager,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		slotRepo:    slotRepo,
		txManager:   txManager,
		notifier:    notifier,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List получает список бронирований с фильтрацией по дате, услуге и статусу
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings, date=%v, service=%v, status=%v",
		req.Date, req.ServiceType, req.Status)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование и освобождает занятый им слот.
// Отмена и освобождение выполняются в одной транзакции: слот не может
// остаться занятым отмененным бронированием.
func (s *Service) Cancel(ctx context.Context, id string) error {
	s.logger.Info("Cancel: cancelling booking id=%s", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%s not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%s cannot be cancelled, status=%s", id, booking.Status)
		return ErrCannotCancel
	}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.bookingRepo.Cancel(txCtx, id); err != nil {
			return fmt.Errorf("cancel booking: %w", err)
		}

		if err := s.slotRepo.Release(txCtx, booking.SlotID, booking.ID); err != nil {
			// Слот мог быть освобожден вручную; отмену это не блокирует
			if errors.Is(err, slotRepo.ErrSlotNotBooked) {
				s.logger.Warn("Cancel: slot id=%s was not booked", booking.SlotID)
				return nil
			}
			return fmt.Errorf("release slot: %w", err)
		}

		return nil
	})
	if err != nil {
		s.logger.Error("Cancel: transaction failed for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - transaction failed: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%s, slot id=%s released", id, booking.SlotID)

	if err := s.notifier.SendBookingCancellation(ctx, booking); err != nil {
		s.logger.Warn("Cancel: failed to send cancellation for booking id=%s: %v", id, err)
	}

	return nil
}

// ClearTestData удаляет тестовые бронирования и освобождает их слоты.
// Тестовыми считаются только бронирования с email-суффиксом тестового
// домена: боевые данные эта операция не трогает.
func (s *Service) ClearTestData(ctx context.Context) (int, error) {
	s.logger.Info("ClearTestData: removing test bookings")

	testBookings, err := s.bookingRepo.List(ctx, domain.BookingsFilter{
		EmailSuffix: ptr.Ptr(domain.TestEmailSuffix),
	})
	if err != nil {
		s.logger.Error("ClearTestData: repository error: %v", err)
		return 0, fmt.Errorf("%w: ClearTestData - repository error: %v", ErrInternal, err)
	}

	removed := 0

	for _, booking := range testBookings {
		b := booking

		err := s.txManager.Do(ctx, func(txCtx context.Context) error {
			if b.IsActive() {
				if err := s.slotRepo.Release(txCtx, b.SlotID, b.ID); err != nil && !errors.Is(err, slotRepo.ErrSlotNotBooked) {
					return fmt.Errorf("release slot: %w", err)
				}
			}

			if err := s.bookingRepo.Delete(txCtx, b.ID); err != nil {
				return fmt.Errorf("delete booking: %w", err)
			}

			return nil
		})
		if err != nil {
			s.logger.Error("ClearTestData: failed to remove booking id=%s: %v", b.ID, err)
			return removed, fmt.Errorf("%w: ClearTestData - failed to remove booking: %v", ErrInternal, err)
		}

		removed++
	}

	s.logger.Info("ClearTestData: removed %d test bookings", removed)
	return removed, nil
}
