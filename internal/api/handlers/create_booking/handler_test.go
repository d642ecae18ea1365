package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qnovavr/QNOVA-BookingService/internal/domain"
	createBooking "github.com/qnovavr/QNOVA-BookingService/internal/usecase/create_booking"
)

type fakeUseCase struct {
	resp *createBooking.Response
	err  error

	gotReq *createBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validBody() map[string]interface{} {
	return map[string]interface{}{
		"name":         "Max Mustermann",
		"email":        "max@example.com",
		"phone":        "+49 551 1234567",
		"service":      domain.ServiceKATVR,
		"date":         "2026-09-15",
		"time":         "12:00",
		"participants": 2,
	}
}

func doRequest(t *testing.T, uc *fakeUseCase, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader(raw))
	rec := httptest.NewRecorder()

	NewHandler(uc, nopLogger{}).Handle(rec, req)
	return rec
}

func TestHandleCreated(t *testing.T) {
	uc := &fakeUseCase{resp: &createBooking.Response{
		ID:           "booking-1",
		SlotID:       "slot-1",
		CustomerName: "Max Mustermann",
		Email:        "max@example.com",
		Phone:        "+49 551 1234567",
		ServiceType:  domain.ServiceKATVR,
		BookingDate:  time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:    "12:00",
		Participants: 2,
		Status:       string(domain.StatusConfirmed),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}}

	rec := doRequest(t, uc, validBody())

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "booking-1", resp.ID)
	assert.Equal(t, "2026-09-15", resp.BookingDate)
	assert.Equal(t, "12:00", resp.StartTime)
	assert.Equal(t, "confirmed", resp.Status)

	require.NotNil(t, uc.gotReq)
	assert.Equal(t, domain.ServiceKATVR, uc.gotReq.ServiceType)
}

func TestHandleValidationErrorsReturnAllFields(t *testing.T) {
	uc := &fakeUseCase{err: &createBooking.ValidationError{
		Violations: []createBooking.FieldViolation{
			{Field: "customer_name", Message: "is required"},
			{Field: "email", Message: "must be a valid email address"},
		},
	}}

	rec := doRequest(t, uc, validBody())

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Error  string `json:"error"`
		Errors []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "validation_failed", resp.Error)
	require.Len(t, resp.Errors, 2)
	assert.Equal(t, "customer_name", resp.Errors[0].Field)
	assert.Equal(t, "email", resp.Errors[1].Field)
}

func TestHandleConflictBody(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{err: createBooking.ErrSlotUnavailable}, validBody())

	require.Equal(t, http.StatusConflict, rec.Code)

	var resp struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "slot_unavailable", resp.Error)
}

func TestHandleErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "unknown service", err: createBooking.ErrUnknownService, wantStatus: http.StatusBadRequest},
		{name: "date in past", err: createBooking.ErrInvalidDate, wantStatus: http.StatusBadRequest},
		{name: "slot not found", err: createBooking.ErrSlotNotFound, wantStatus: http.StatusNotFound},
		{name: "slot unavailable", err: createBooking.ErrSlotUnavailable, wantStatus: http.StatusConflict},
		{name: "transient", err: createBooking.ErrTransient, wantStatus: http.StatusServiceUnavailable},
		{name: "internal", err: createBooking.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tt.err}, validBody())
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandleBadDateFormat(t *testing.T) {
	body := validBody()
	body["date"] = "15.09.2026"

	rec := doRequest(t, &fakeUseCase{}, body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_date_format")
}

func TestHandleBadTimeFormat(t *testing.T) {
	body := validBody()
	body["time"] = "noon"

	rec := doRequest(t, &fakeUseCase{}, body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_time_format")
}

func TestHandleRejectsUnknownFields(t *testing.T) {
	body := validBody()
	body["price"] = 10

	rec := doRequest(t, &fakeUseCase{}, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
