package create_booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qnovavr/QNOVA-BookingService/internal/domain"
	slotRepo "github.com/qnovavr/QNOVA-BookingService/internal/infra/storage/slot"
	"github.com/qnovavr/QNOVA-BookingService/pkg/txmanager"
	"github.com/qnovavr/QNOVA-BookingService/pkg/types"
)

// fakeSlotRepo потокобезопасное in-memory хранилище слотов с CAS-захватом
type fakeSlotRepo struct {
	mu    sync.Mutex
	slots map[string]*domain.Slot // key: date|time|service
}

func newFakeSlotRepo() *fakeSlotRepo {
	return &fakeSlotRepo{slots: make(map[string]*domain.Slot)}
}

func slotKey(date time.Time, startTime types.TimeString, serviceType string) string {
	return date.Format(domain.DateFormat) + "|" + startTime.String() + "|" + serviceType
}

func (r *fakeSlotRepo) EnsureSlots(_ context.Context, slots []*domain.Slot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range slots {
		key := slotKey(s.Date, s.StartTime, s.ServiceType)
		if _, ok := r.slots[key]; !ok {
			copied := *s
			r.slots[key] = &copied
		}
	}
	return nil
}

func (r *fakeSlotRepo) GetByKey(_ context.Context, date time.Time, startTime types.TimeString, serviceType string) (*domain.Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.slots[slotKey(date, startTime, serviceType)]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	copied := *s
	return &copied, nil
}

func (r *fakeSlotRepo) TryClaim(_ context.Context, slotID, bookingRef string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.slots {
		if s.ID != slotID {
			continue
		}
		if s.Status != domain.SlotAvailable {
			return slotRepo.ErrSlotConflict
		}
		s.Status = domain.SlotBooked
		ref := bookingRef
		s.BookingRef = &ref
		return nil
	}
	return slotRepo.ErrSlotNotFound
}

// fakeBookingRepo хранит созданные бронирования
type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings []*domain.Booking
}

func (r *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *b
	copied.CreatedAt = time.Now()
	copied.UpdatedAt = copied.CreatedAt
	r.bookings = append(r.bookings, &copied)
	return &copied, nil
}

func (r *fakeBookingRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.bookings)
}

// fakeTxManager исполняет функцию без настоящей транзакции; первые
// failFirst вызовов завершаются сбоем сериализации
type fakeTxManager struct {
	mu        sync.Mutex
	failFirst int
	calls     int
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	m.calls++
	shouldFail := m.calls <= m.failFirst
	m.mu.Unlock()

	if shouldFail {
		return txmanager.ErrSerialization
	}
	return fn(ctx)
}

type fakeNotifier struct {
	mu    sync.Mutex
	sent  int
	lastN *domain.Booking
}

func (n *fakeNotifier) SendBookingConfirmation(_ context.Context, b *domain.Booking) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent++
	n.lastN = b
	return nil
}

type fakeMetrics struct {
	mu        sync.Mutex
	created   int
	conflicts int
}

func (m *fakeMetrics) BookingCreated(string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.created++
}

func (m *fakeMetrics) SlotClaimConflict() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.conflicts++
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(slots *fakeSlotRepo, bookings *fakeBookingRepo, tx *fakeTxManager) (*UseCase, *fakeNotifier, *fakeMetrics) {
	notifier := &fakeNotifier{}
	metrics := &fakeMetrics{}

	uc := NewUseCase(slots, bookings, tx, notifier, metrics, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)}

	return uc, notifier, metrics
}

func TestExecuteCreatesBookingAndClaimsSlot(t *testing.T) {
	slots := newFakeSlotRepo()
	bookings := &fakeBookingRepo{}
	uc, notifier, metrics := newTestUseCase(slots, bookings, &fakeTxManager{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.NotEmpty(t, resp.SlotID)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, 1, bookings.count())
	assert.Equal(t, 1, notifier.sent)
	assert.Equal(t, 1, metrics.created)

	// Слот помечен занятым и ссылается на бронирование
	slot, err := slots.GetByKey(context.Background(),
		resp.BookingDate, resp.StartTime, resp.ServiceType)
	require.NoError(t, err)
	assert.Equal(t, domain.SlotBooked, slot.Status)
	require.NotNil(t, slot.BookingRef)
	assert.Equal(t, resp.ID, *slot.BookingRef)
}

func TestExecuteSecondClaimOfSameSlotConflicts(t *testing.T) {
	slots := newFakeSlotRepo()
	bookings := &fakeBookingRepo{}
	uc, _, metrics := newTestUseCase(slots, bookings, &fakeTxManager{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.Email = "other@example.com"
	_, err = uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrSlotUnavailable)
	assert.Equal(t, 1, bookings.count())
	assert.Equal(t, 1, metrics.conflicts)
}

func TestExecuteConcurrentClaimsExactlyOneWins(t *testing.T) {
	const attempts = 16

	slots := newFakeSlotRepo()
	bookings := &fakeBookingRepo{}
	uc, _, _ := newTestUseCase(slots, bookings, &fakeTxManager{})

	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, errs[n] = uc.Execute(context.Background(), validRequest())
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrSlotUnavailable)
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, bookings.count())
}

func TestExecuteRetriesOnceOnSerializationFailure(t *testing.T) {
	slots := newFakeSlotRepo()
	bookings := &fakeBookingRepo{}
	tx := &fakeTxManager{failFirst: 1}
	uc, _, _ := newTestUseCase(slots, bookings, tx)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, 2, tx.calls)
	assert.Equal(t, 1, bookings.count())
	assert.NotEmpty(t, resp.ID)
}

func TestExecuteGivesUpAfterSecondSerializationFailure(t *testing.T) {
	slots := newFakeSlotRepo()
	bookings := &fakeBookingRepo{}
	tx := &fakeTxManager{failFirst: 2}
	uc, _, _ := newTestUseCase(slots, bookings, tx)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTransient)
	assert.Equal(t, 2, tx.calls)
	assert.Equal(t, 0, bookings.count())
}

func TestExecuteSlotNotFoundForOffGridTime(t *testing.T) {
	slots := newFakeSlotRepo()
	bookings := &fakeBookingRepo{}
	uc, _, _ := newTestUseCase(slots, bookings, &fakeTxManager{})

	// 12:15 не попадает в получасовую сетку
	req := validRequest()
	req.StartTime = "12:15"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotFound)
	assert.Equal(t, 0, bookings.count())
}

func TestExecutePlayStationHourlyGrid(t *testing.T) {
	slots := newFakeSlotRepo()
	bookings := &fakeBookingRepo{}
	uc, _, _ := newTestUseCase(slots, bookings, &fakeTxManager{})

	// 22:00 входит в сетку PlayStation-слотов
	req := validRequest()
	req.ServiceType = domain.ServicePS5VR
	req.StartTime = "22:00"

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// 21:30 — получасовой слот, которого у PlayStation нет
	req2 := validRequest()
	req2.ServiceType = domain.ServicePS5VR
	req2.StartTime = "21:30"

	_, err = uc.Execute(context.Background(), req2)
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecuteRetryReusesBookingID(t *testing.T) {
	slots := newFakeSlotRepo()
	bookings := &fakeBookingRepo{}
	tx := &fakeTxManager{failFirst: 1}
	uc, _, _ := newTestUseCase(slots, bookings, tx)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	slot, err := slots.GetByKey(context.Background(), resp.BookingDate, resp.StartTime, resp.ServiceType)
	require.NoError(t, err)
	require.NotNil(t, slot.BookingRef)
	assert.Equal(t, resp.ID, *slot.BookingRef)
}
