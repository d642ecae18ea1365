package contact

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qnovavr/QNOVA-BookingService/internal/domain"
	"github.com/qnovavr/QNOVA-BookingService/internal/service/contact/models"
)

type fakeContactRepo struct {
	created []*domain.ContactMessage
}

func (r *fakeContactRepo) Create(_ context.Context, m *domain.ContactMessage) (*domain.ContactMessage, error) {
	copied := *m
	r.created = append(r.created, &copied)
	return &copied, nil
}

func (r *fakeContactRepo) List(context.Context) ([]*domain.ContactMessage, error) {
	result := make([]*domain.ContactMessage, len(r.created))
	copy(result, r.created)
	return result, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestCreateSavesMessage(t *testing.T) {
	repo := &fakeContactRepo{}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateContactMessageRequest{
		Name:    "Max Mustermann",
		Email:   "max@example.com",
		Subject: "Birthday party",
		Message: "Do you host groups of ten?",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Birthday party", resp.Subject)
	require.Len(t, repo.created, 1)
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name string
		req  *models.CreateContactMessageRequest
	}{
		{name: "missing name", req: &models.CreateContactMessageRequest{
			Email: "max@example.com", Subject: "Hi", Message: "Hello"}},
		{name: "bad email", req: &models.CreateContactMessageRequest{
			Name: "Max", Email: "not-an-email", Subject: "Hi", Message: "Hello"}},
		{name: "missing subject", req: &models.CreateContactMessageRequest{
			Name: "Max", Email: "max@example.com", Message: "Hello"}},
		{name: "missing message", req: &models.CreateContactMessageRequest{
			Name: "Max", Email: "max@example.com", Subject: "Hi"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeContactRepo{}
			svc := NewService(repo, nopLogger{})

			_, err := svc.Create(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Empty(t, repo.created)
		})
	}
}

func TestListReturnsSavedMessages(t *testing.T) {
	repo := &fakeContactRepo{}
	svc := NewService(repo, nopLogger{})

	for _, subject := range []string{"first", "second"} {
		_, err := svc.Create(context.Background(), &models.CreateContactMessageRequest{
			Name:    "Max",
			Email:   "max@example.com",
			Subject: subject,
			Message: "Hello",
		})
		require.NoError(t, err)
	}

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
}
