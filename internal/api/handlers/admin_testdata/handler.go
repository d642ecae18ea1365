package admin_testdata

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/qnovavr/QNOVA-BookingService/internal/api/handlers"
	"github.com/qnovavr/QNOVA-BookingService/internal/domain"
	createBooking "github.com/qnovavr/QNOVA-BookingService/internal/usecase/create_booking"
	"github.com/qnovavr/QNOVA-BookingService/pkg/ptr"
)

const (
	msgInvalidRequestBody = "invalid_request_body"
	msgInvalidDate        = "invalid_date_format"
)

// Тестовые бронирования создаются по одному на услугу, на первый слот дня.
// Email обязан принадлежать тестовому домену: только такие записи
// попадают под очистку DELETE /admin/test-data.
var testCustomers = []struct {
	name  string
	email string
	phone string
}{
	{"Test Customer One", "customer.one" + domain.TestEmailSuffix, "+49 551 0000001"},
	{"Test Customer Two", "customer.two" + domain.TestEmailSuffix, "+49 551 0000002"},
	{"Test Customer Three", "customer.three" + domain.TestEmailSuffix, "+49 551 0000003"},
}

type Handler struct {
	createUseCase CreateBookingUseCase
	service       BookingsService
	logger        Logger
}

func NewHandler(createUseCase CreateBookingUseCase, service BookingsService, logger Logger) *Handler {
	return &Handler{
		createUseCase: createUseCase,
		service:       service,
		logger:        logger,
	}
}

// HandleCreate POST /api/v1/admin/test-data
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	req := CreateTestDataRequest{}
	if r.ContentLength > 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("POST /admin/test-data - Invalid request body: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
	}

	date := time.Now().AddDate(0, 0, 1)
	if req.Date != nil {
		parsed, err := time.Parse(domain.DateFormat, *req.Date)
		if err != nil {
			h.logger.Warn("POST /admin/test-data - Invalid date %q: %v", *req.Date, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		date = parsed
	}

	resp := CreateTestDataResponse{BookingIDs: make([]string, 0, len(domain.ServiceTypes))}

	for i, svc := range domain.ServiceTypes {
		customer := testCustomers[i%len(testCustomers)]

		result, err := h.createUseCase.Execute(r.Context(), &createBooking.Request{
			CustomerName: customer.name,
			Email:        customer.email,
			Phone:        customer.phone,
			ServiceType:  svc.Name,
			BookingDate:  date,
			StartTime:    domain.OpenTime,
			Participants: 1,
			Message:      ptr.Ptr(fmt.Sprintf("test booking for %s", svc.Name)),
		})
		if err != nil {
			// Слот мог быть занят предыдущим прогоном; пропускаем услугу
			if errors.Is(err, createBooking.ErrSlotUnavailable) {
				h.logger.Warn("POST /admin/test-data - Slot already taken: service=%q, date=%s",
					svc.Name, date.Format(domain.DateFormat))
				continue
			}
			h.logger.Error("POST /admin/test-data - Failed to create test booking: service=%q, error=%v",
				svc.Name, err)
			handlers.RespondInternalError(w)
			return
		}

		resp.Created++
		resp.BookingIDs = append(resp.BookingIDs, result.ID)
	}

	h.logger.Info("POST /admin/test-data - Created %d test bookings for date=%s",
		resp.Created, date.Format(domain.DateFormat))
	handlers.RespondJSON(w, http.StatusCreated, resp)
}

// HandleClear DELETE /api/v1/admin/test-data
func (h *Handler) HandleClear(w http.ResponseWriter, r *http.Request) {
	removed, err := h.service.ClearTestData(r.Context())
	if err != nil {
		h.logger.Error("DELETE /admin/test-data - Failed to clear test data: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /admin/test-data - Removed %d test bookings", removed)
	handlers.RespondJSON(w, http.StatusOK, ClearTestDataResponse{Removed: removed})
}
