package get_availability

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qnovavr/QNOVA-BookingService/internal/domain"
	"github.com/qnovavr/QNOVA-BookingService/pkg/ptr"
	"github.com/qnovavr/QNOVA-BookingService/pkg/types"
)

// fakeSlotRepo in-memory хранилище слотов с идемпотентным upsert
type fakeSlotRepo struct {
	mu    sync.Mutex
	slots map[string]*domain.Slot
}

func newFakeSlotRepo() *fakeSlotRepo {
	return &fakeSlotRepo{slots: make(map[string]*domain.Slot)}
}

func key(date time.Time, startTime types.TimeString, serviceType string) string {
	return date.Format(domain.DateFormat) + "|" + startTime.String() + "|" + serviceType
}

func (r *fakeSlotRepo) EnsureSlots(_ context.Context, slots []*domain.Slot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range slots {
		k := key(s.Date, s.StartTime, s.ServiceType)
		if _, ok := r.slots[k]; !ok {
			copied := *s
			r.slots[k] = &copied
		}
	}
	return nil
}

func (r *fakeSlotRepo) GetByDate(_ context.Context, date time.Time, serviceType *string) ([]*domain.Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []*domain.Slot
	for _, s := range r.slots {
		if !s.Date.Equal(date) {
			continue
		}
		if serviceType != nil && s.ServiceType != *serviceType {
			continue
		}
		copied := *s
		result = append(result, &copied)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].ServiceType != result[j].ServiceType {
			return result[i].ServiceType < result[j].ServiceType
		}
		return result[i].StartTime.IsBefore(result[j].StartTime)
	})

	return result, nil
}

func (r *fakeSlotRepo) markBooked(date time.Time, startTime types.TimeString, serviceType string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.slots[key(date, startTime, serviceType)]; ok {
		s.Status = domain.SlotBooked
	}
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(repo *fakeSlotRepo) *UseCase {
	uc := NewUseCase(repo, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)}
	return uc
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

func TestExecuteGeneratesFullScheduleForSingleService(t *testing.T) {
	repo := newFakeSlotRepo()
	uc := newTestUseCase(repo)

	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:        date,
		ServiceType: ptr.Ptr(domain.ServicePS5VR),
	})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 11)
	assert.Equal(t, types.TimeString("12:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("22:00"), resp.Slots[10].StartTime)

	for _, s := range resp.Slots {
		assert.True(t, s.Available)
		assert.Equal(t, string(domain.SlotAvailable), s.Status)
	}
}

func TestExecuteGeneratesAllServicesWithoutFilter(t *testing.T) {
	repo := newFakeSlotRepo()
	uc := newTestUseCase(repo)

	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	resp, err := uc.Execute(context.Background(), &Request{Date: date})
	require.NoError(t, err)

	// 20 (KAT VR) + 11 (PS5) + 20 (Group) слотов
	assert.Len(t, resp.Slots, 51)

	counts := make(map[string]int)
	for _, s := range resp.Slots {
		counts[s.ServiceType]++
	}
	assert.Equal(t, 20, counts[domain.ServiceKATVR])
	assert.Equal(t, 11, counts[domain.ServicePS5VR])
	assert.Equal(t, 20, counts[domain.ServiceGroupKATVR])
}

func TestExecuteReflectsBookedSlots(t *testing.T) {
	repo := newFakeSlotRepo()
	uc := newTestUseCase(repo)

	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	// Первый запрос создает слоты
	_, err := uc.Execute(context.Background(), &Request{
		Date:        date,
		ServiceType: ptr.Ptr(domain.ServiceKATVR),
	})
	require.NoError(t, err)

	repo.markBooked(date, "14:00", domain.ServiceKATVR)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:        date,
		ServiceType: ptr.Ptr(domain.ServiceKATVR),
	})
	require.NoError(t, err)

	booked := 0
	for _, s := range resp.Slots {
		if s.StartTime == "14:00" {
			assert.False(t, s.Available)
			assert.Equal(t, string(domain.SlotBooked), s.Status)
			booked++
		} else {
			assert.True(t, s.Available)
		}
	}
	assert.Equal(t, 1, booked)
}

func TestExecuteIsIdempotentAcrossRepeatedCalls(t *testing.T) {
	repo := newFakeSlotRepo()
	uc := newTestUseCase(repo)

	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	req := &Request{Date: date, ServiceType: ptr.Ptr(domain.ServiceKATVR)}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, len(first.Slots), len(second.Slots))
}

func TestExecuteRejectsPastDate(t *testing.T) {
	repo := newFakeSlotRepo()
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecuteRejectsUnknownService(t *testing.T) {
	repo := newFakeSlotRepo()
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		Date:        time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		ServiceType: ptr.Ptr("Laser Tag"),
	})
	assert.ErrorIs(t, err, ErrUnknownService)
}

func TestExecuteAllowsToday(t *testing.T) {
	repo := newFakeSlotRepo()
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:        time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		ServiceType: ptr.Ptr(domain.ServiceKATVR),
	})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 20)
}

// Сегодняшний день не считается прошедшим, даже если серверные часы
// идут в поясе позади UTC.
func TestExecuteAllowsTodayInBehindUTCZone(t *testing.T) {
	repo := newFakeSlotRepo()
	uc := newTestUseCase(repo)
	// 2026-09-01 01:00 локально (UTC-5) = 2026-09-01 06:00 UTC
	uc.timeProvider = &fixedTimeProvider{
		now: time.Date(2026, 9, 1, 1, 0, 0, 0, time.FixedZone("UTC-5", -5*3600)),
	}

	resp, err := uc.Execute(context.Background(), &Request{
		Date:        time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		ServiceType: ptr.Ptr(domain.ServiceKATVR),
	})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 20)
}
