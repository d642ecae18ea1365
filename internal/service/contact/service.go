package contact

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/qnovavr/QNOVA-BookingService/internal/domain"
	"github.com/qnovavr/QNOVA-BookingService/internal/service/contact/models"
)

var validate = validator.New()

// Service сервис сообщений обратной связи
type Service struct {
	contactRepo ContactRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса обратной связи
func NewService(contactRepo ContactRepository, logger Logger) *Service {
	return &Service{
		contactRepo: contactRepo,
		logger:      logger,
	}
}

// Create сохраняет сообщение обратной связи
func (s *Service) Create(ctx context.Context, req *models.CreateContactMessageRequest) (*models.ContactMessageResponse, error) {
	s.logger.Info("Create: contact message from=%s subject=%q", req.Email, req.Subject)

	if err := validateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	message := &domain.ContactMessage{
		ID:      uuid.NewString(),
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	created, err := s.contactRepo.Create(ctx, message)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: saved contact message id=%s", created.ID)
	return models.FromDomainContactMessage(created), nil
}

// List возвращает все сообщения обратной связи, новые первыми
func (s *Service) List(ctx context.Context) (*models.ContactMessageListResponse, error) {
	s.logger.Info("List: fetching contact messages")

	messages, err := s.contactRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d messages", len(messages))
	return models.FromDomainContactMessageList(messages), nil
}

// validateRequest проверяет поля сообщения и собирает все нарушения разом
func validateRequest(req *models.CreateContactMessageRequest) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		parts = append(parts, fmt.Sprintf("%s failed on rule %q", strings.ToLower(fe.Field()), fe.Tag()))
	}

	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(parts, "; "))
}
