package notifier

import (
	"context"

	"github.com/qnovavr/QNOVA-BookingService/internal/domain"
)

// Notifier отправляет клиентские уведомления о бронированиях.
// Реальной интеграции с почтовым провайдером пока нет: письмо
// формируется и пишется в лог. Подключение SMTP не меняет контракт.
type Notifier struct {
	logger Logger
}

func New(logger Logger) *Notifier {
	return &Notifier{logger: logger}
}

// SendBookingConfirmation отправляет подтверждение бронирования.
// Ошибки доставки не должны ронять создание бронирования, поэтому
// вызывающая сторона логирует их как warning и продолжает.
func (n *Notifier) SendBookingConfirmation(ctx context.Context, booking *domain.Booking) error {
	n.logger.Info("Notifier: confirmation email to=%s booking=%s service=%q date=%s time=%s participants=%d",
		booking.Email,
		booking.ID,
		booking.ServiceType,
		booking.BookingDate.Format(domain.DateFormat),
		booking.StartTime,
		booking.Participants,
	)

	return nil
}

// SendBookingCancellation отправляет уведомление об отмене бронирования
func (n *Notifier) SendBookingCancellation(ctx context.Context, booking *domain.Booking) error {
	n.logger.Info("Notifier: cancellation email to=%s booking=%s service=%q date=%s time=%s",
		booking.Email,
		booking.ID,
		booking.ServiceType,
		booking.BookingDate.Format(domain.DateFormat),
		booking.StartTime,
	)

	return nil
}
