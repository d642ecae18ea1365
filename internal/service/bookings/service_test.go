package bookings

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qnovavr/QNOVA-BookingService/internal/domain"
	bookingRepo "github.com/qnovavr/QNOVA-BookingService/internal/infra/storage/booking"
	slotRepo "github.com/qnovavr/QNOVA-BookingService/internal/infra/storage/slot"
)

type fakeBookingRepo struct {
	bookings map[string]*domain.Booking
	deleted  []string
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	r := &fakeBookingRepo{bookings: make(map[string]*domain.Booking)}
	for _, b := range bookings {
		copied := *b
		r.bookings[b.ID] = &copied
	}
	return r
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBookingRepo) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range r.bookings {
		if filter.EmailSuffix != nil && !strings.HasSuffix(b.Email, *filter.EmailSuffix) {
			continue
		}
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		copied := *b
		result = append(result, &copied)
	}
	return result, nil
}

func (r *fakeBookingRepo) Cancel(_ context.Context, id string) error {
	b, ok := r.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	now := time.Now()
	b.Status = domain.StatusCancelled
	b.CancelledAt = &now
	return nil
}

func (r *fakeBookingRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	delete(r.bookings, id)
	r.deleted = append(r.deleted, id)
	return nil
}

type fakeSlotRepo struct {
	released    []string
	releasedRef []string
	failRelease error
}

func (r *fakeSlotRepo) Release(_ context.Context, slotID, bookingRef string) error {
	if r.failRelease != nil {
		return r.failRelease
	}
	r.released = append(r.released, slotID)
	r.releasedRef = append(r.releasedRef, bookingRef)
	return nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeNotifier struct {
	cancellations int
}

func (n *fakeNotifier) SendBookingCancellation(context.Context, *domain.Booking) error {
	n.cancellations++
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func confirmedBooking(id, slotID, email string) *domain.Booking {
	return &domain.Booking{
		ID:           id,
		SlotID:       slotID,
		CustomerName: "Max Mustermann",
		Email:        email,
		Phone:        "+49 551 1234567",
		ServiceType:  domain.ServiceKATVR,
		BookingDate:  time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:    "12:00",
		Participants: 2,
		Status:       domain.StatusConfirmed,
	}
}

func TestGetByID(t *testing.T) {
	repo := newFakeBookingRepo(confirmedBooking("b1", "s1", "max@example.com"))
	svc := NewService(repo, &fakeSlotRepo{}, passthroughTxManager{}, &fakeNotifier{}, nopLogger{})

	resp, err := svc.GetByID(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, "b1", resp.ID)
	assert.Equal(t, "s1", resp.SlotID)

	_, err = svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancelReleasesSlot(t *testing.T) {
	repo := newFakeBookingRepo(confirmedBooking("b1", "s1", "max@example.com"))
	slots := &fakeSlotRepo{}
	notifier := &fakeNotifier{}
	svc := NewService(repo, slots, passthroughTxManager{}, notifier, nopLogger{})

	err := svc.Cancel(context.Background(), "b1")
	require.NoError(t, err)

	assert.Equal(t, []string{"s1"}, slots.released)
	assert.Equal(t, []string{"b1"}, slots.releasedRef)
	assert.Equal(t, 1, notifier.cancellations)

	stored, err := repo.GetByID(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, stored.Status)
	assert.NotNil(t, stored.CancelledAt)
}

func TestCancelAlreadyCancelled(t *testing.T) {
	b := confirmedBooking("b1", "s1", "max@example.com")
	b.Status = domain.StatusCancelled
	repo := newFakeBookingRepo(b)
	slots := &fakeSlotRepo{}
	svc := NewService(repo, slots, passthroughTxManager{}, &fakeNotifier{}, nopLogger{})

	err := svc.Cancel(context.Background(), "b1")
	assert.ErrorIs(t, err, ErrCannotCancel)
	assert.Empty(t, slots.released)
}

func TestCancelNotFound(t *testing.T) {
	svc := NewService(newFakeBookingRepo(), &fakeSlotRepo{}, passthroughTxManager{}, &fakeNotifier{}, nopLogger{})

	err := svc.Cancel(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancelToleratesAlreadyReleasedSlot(t *testing.T) {
	repo := newFakeBookingRepo(confirmedBooking("b1", "s1", "max@example.com"))
	slots := &fakeSlotRepo{failRelease: slotRepo.ErrSlotNotBooked}
	svc := NewService(repo, slots, passthroughTxManager{}, &fakeNotifier{}, nopLogger{})

	err := svc.Cancel(context.Background(), "b1")
	require.NoError(t, err)

	stored, err := repo.GetByID(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, stored.Status)
}

func TestClearTestDataRemovesOnlyTestBookings(t *testing.T) {
	repo := newFakeBookingRepo(
		confirmedBooking("b1", "s1", "customer.one"+domain.TestEmailSuffix),
		confirmedBooking("b2", "s2", "customer.two"+domain.TestEmailSuffix),
		confirmedBooking("b3", "s3", "real.customer@example.com"),
	)
	slots := &fakeSlotRepo{}
	svc := NewService(repo, slots, passthroughTxManager{}, &fakeNotifier{}, nopLogger{})

	removed, err := svc.ClearTestData(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	assert.ElementsMatch(t, []string{"b1", "b2"}, repo.deleted)
	assert.ElementsMatch(t, []string{"s1", "s2"}, slots.released)

	// Боевое бронирование не тронуто
	_, err = repo.GetByID(context.Background(), "b3")
	assert.NoError(t, err)
}

func TestClearTestDataSkipsReleaseForCancelled(t *testing.T) {
	b := confirmedBooking("b1", "s1", "customer.one"+domain.TestEmailSuffix)
	b.Status = domain.StatusCancelled
	repo := newFakeBookingRepo(b)
	slots := &fakeSlotRepo{}
	svc := NewService(repo, slots, passthroughTxManager{}, &fakeNotifier{}, nopLogger{})

	removed, err := svc.ClearTestData(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.Empty(t, slots.released)
}
