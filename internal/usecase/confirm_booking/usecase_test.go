package confirm_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumiplatform/LUMI-SchedulingService/internal/domain"
	"github.com/lumiplatform/LUMI-SchedulingService/internal/infra/events"
	bookingRepo "github.com/lumiplatform/LUMI-SchedulingService/internal/infra/storage/booking"
	staffRepo "github.com/lumiplatform/LUMI-SchedulingService/internal/infra/storage/staff"
	directoryClient "github.com/lumiplatform/LUMI-SchedulingService/internal/integrations/directoryservice"
	"github.com/lumiplatform/LUMI-SchedulingService/internal/service/bookings/models"
	"github.com/lumiplatform/LUMI-SchedulingService/internal/service/scheduling"
	"github.com/lumiplatform/LUMI-SchedulingService/pkg/types"
)

// bookingStore in-memory хранилище бронирований
// Реализует и BookingRepository use case, и scheduling.BookingRepository,
// поэтому проверка конфликтов в тестах идет через настоящий ConflictChecker
type bookingStore struct {
	bookings map[int64]*domain.Booking
}

func newBookingStore(bookings ...*domain.Booking) *bookingStore {
	store := &bookingStore{bookings: make(map[int64]*domain.Booking)}
	for _, b := range bookings {
		store.bookings[b.ID] = b
	}
	return store
}

func (s *bookingStore) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := s.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (s *bookingStore) Confirm(_ context.Context, id int64, staffID int64, staffName string) error {
	b, ok := s.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	if b.Status != domain.StatusPending {
		return bookingRepo.ErrStatusPrecondition
	}
	b.Status = domain.StatusConfirmed
	b.StaffID = &staffID
	b.StaffName = &staffName
	return nil
}

func (s *bookingStore) GetConfirmedByStaffDate(_ context.Context, tenantID, staffID int64, date time.Time) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range s.bookings {
		if b.TenantID != tenantID || b.Status != domain.StatusConfirmed {
			continue
		}
		if b.StaffID == nil || *b.StaffID != staffID || !b.BookingDate.Equal(date) {
			continue
		}
		copied := *b
		result = append(result, &copied)
	}
	return result, nil
}

type fakeStaffRepo struct {
	staff map[int64]*domain.Staff
}

func (f *fakeStaffRepo) GetByID(_ context.Context, _, staffID int64) (*domain.Staff, error) {
	s, ok := f.staff[staffID]
	if !ok {
		return nil, staffRepo.ErrStaffNotFound
	}
	return s, nil
}

type fakeDirectory struct {
	items map[int64]*directoryClient.ServiceItem
}

func (f *fakeDirectory) GetServiceItem(_ context.Context, _, id int64) (*directoryClient.ServiceItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, directoryClient.ErrServiceItemNotFound
	}
	return item, nil
}

type fakeAssigner struct {
	staff *domain.Staff
	err   error

	gotCategory string
}

func (f *fakeAssigner) Assign(_ context.Context, _ int64, _ time.Time, _ domain.Interval, category string) (*domain.Staff, error) {
	f.gotCategory = category
	if f.err != nil {
		return nil, f.err
	}
	return f.staff, nil
}

// inlineTxManager выполняет функцию без транзакции
type inlineTxManager struct{}

func (inlineTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type recordingPublisher struct {
	published []events.TransitionEvent
}

func (p *recordingPublisher) PublishTransition(_ context.Context, event events.TransitionEvent) {
	p.published = append(p.published, event)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var bookingDate = time.Date(2099, 12, 13, 0, 0, 0, 0, time.UTC)

func staffIDPtr(id int64) *int64 { return &id }

func pendingBooking(id int64, staffID *int64, start string, duration int) *domain.Booking {
	return &domain.Booking{
		ID:              id,
		TenantID:        1,
		CustomerID:      5,
		ServiceItemID:   7,
		StaffID:         staffID,
		BookingDate:     bookingDate,
		StartTime:       types.TimeString(start),
		DurationMinutes: duration,
		Status:          domain.StatusPending,
	}
}

type fixture struct {
	store     *bookingStore
	publisher *recordingPublisher
	assigner  *fakeAssigner
	uc        *UseCase
}

func newFixture(store *bookingStore, assigner *fakeAssigner) *fixture {
	publisher := &recordingPublisher{}
	staffs := &fakeStaffRepo{staff: map[int64]*domain.Staff{
		20: {ID: 20, TenantID: 1, DisplayName: "Alice", IsBookable: true},
	}}
	directory := &fakeDirectory{items: map[int64]*directoryClient.ServiceItem{
		7: {ID: 7, TenantID: 1, Name: "Haircut", Category: "haircut", DurationMinutes: 60},
	}}
	checker := scheduling.NewConflictChecker(store, nopLogger{})

	uc := NewUseCase(store, staffs, directory, checker, assigner, inlineTxManager{}, publisher, nopLogger{})
	return &fixture{store: store, publisher: publisher, assigner: assigner, uc: uc}
}

func TestExecute_ConfirmsRequestedStaff(t *testing.T) {
	f := newFixture(newBookingStore(pendingBooking(1, staffIDPtr(20), "10:00", 60)), &fakeAssigner{})

	resp, err := f.uc.Execute(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, models.ExternalStatusConfirmed, resp.Status)
	require.NotNil(t, resp.StaffID)
	assert.Equal(t, int64(20), *resp.StaffID)
	require.NotNil(t, resp.StaffName)
	assert.Equal(t, "Alice", *resp.StaffName)
}

func TestExecute_TwoHoldsOnSameSlot(t *testing.T) {
	// Две pending заявки на один слот сосуществуют; ресурс фиксирует
	// только подтверждение
	store := newBookingStore(
		pendingBooking(1, staffIDPtr(20), "10:00", 60),
		pendingBooking(2, staffIDPtr(20), "10:00", 60),
	)
	f := newFixture(store, &fakeAssigner{})

	_, err := f.uc.Execute(context.Background(), 1, 1)
	require.NoError(t, err)

	// Второе подтверждение на занятый слот отклоняется, заявка остается pending
	_, err = f.uc.Execute(context.Background(), 1, 2)
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Equal(t, domain.StatusPending, store.bookings[2].Status)

	// После отмены первого слот освобождается и второе подтверждается
	store.bookings[1].Status = domain.StatusCancelled
	resp, err := f.uc.Execute(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, models.ExternalStatusConfirmed, resp.Status)
}

func TestExecute_TouchingSlotsDoNotConflict(t *testing.T) {
	store := newBookingStore(
		pendingBooking(1, staffIDPtr(20), "10:00", 60),
		pendingBooking(2, staffIDPtr(20), "11:00", 60),
	)
	f := newFixture(store, &fakeAssigner{})

	_, err := f.uc.Execute(context.Background(), 1, 1)
	require.NoError(t, err)

	_, err = f.uc.Execute(context.Background(), 1, 2)
	require.NoError(t, err)
}

func TestExecute_AutoAssignUsesServiceCategory(t *testing.T) {
	assigner := &fakeAssigner{staff: &domain.Staff{ID: 30, TenantID: 1, DisplayName: "Bob"}}
	f := newFixture(newBookingStore(pendingBooking(1, nil, "10:00", 60)), assigner)

	resp, err := f.uc.Execute(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, "haircut", assigner.gotCategory)
	require.NotNil(t, resp.StaffID)
	assert.Equal(t, int64(30), *resp.StaffID)
}

func TestExecute_AutoAssignMissingServiceItem(t *testing.T) {
	// Услуга удалена из каталога после создания заявки:
	// назначение идет без фильтра по категории
	assigner := &fakeAssigner{staff: &domain.Staff{ID: 30, TenantID: 1, DisplayName: "Bob"}}
	booking := pendingBooking(1, nil, "10:00", 60)
	booking.ServiceItemID = 999
	f := newFixture(newBookingStore(booking), assigner)

	_, err := f.uc.Execute(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, "", assigner.gotCategory)
}

func TestExecute_NoStaffAvailable(t *testing.T) {
	assigner := &fakeAssigner{err: scheduling.ErrNoStaffAvailable}
	store := newBookingStore(pendingBooking(1, nil, "10:00", 60))
	f := newFixture(store, assigner)

	_, err := f.uc.Execute(context.Background(), 1, 1)
	assert.ErrorIs(t, err, ErrNoStaffAvailable)
	assert.Equal(t, domain.StatusPending, store.bookings[1].Status)
}

func TestExecute_BookingNotFound(t *testing.T) {
	f := newFixture(newBookingStore(), &fakeAssigner{})

	_, err := f.uc.Execute(context.Background(), 1, 404)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_TenantMismatch(t *testing.T) {
	booking := pendingBooking(1, staffIDPtr(20), "10:00", 60)
	booking.TenantID = 2
	f := newFixture(newBookingStore(booking), &fakeAssigner{})

	_, err := f.uc.Execute(context.Background(), 1, 1)
	assert.ErrorIs(t, err, ErrTenantMismatch)
}

func TestExecute_AlreadyConfirmed(t *testing.T) {
	booking := pendingBooking(1, staffIDPtr(20), "10:00", 60)
	booking.Status = domain.StatusConfirmed
	f := newFixture(newBookingStore(booking), &fakeAssigner{})

	_, err := f.uc.Execute(context.Background(), 1, 1)
	assert.ErrorIs(t, err, ErrInvalidStateTransition)
}

func TestExecute_UnknownRequestedStaff(t *testing.T) {
	f := newFixture(newBookingStore(pendingBooking(1, staffIDPtr(999), "10:00", 60)), &fakeAssigner{})

	_, err := f.uc.Execute(context.Background(), 1, 1)
	assert.ErrorIs(t, err, ErrStaffNotFound)
}

func TestExecute_PublishesTransitionEvent(t *testing.T) {
	f := newFixture(newBookingStore(pendingBooking(1, staffIDPtr(20), "10:00", 60)), &fakeAssigner{})

	_, err := f.uc.Execute(context.Background(), 1, 1)
	require.NoError(t, err)

	require.Len(t, f.publisher.published, 1)
	event := f.publisher.published[0]
	assert.Equal(t, int64(1), event.BookingID)
	assert.Equal(t, domain.StatusPending, event.OldStatus)
	assert.Equal(t, domain.StatusConfirmed, event.NewStatus)
}

func TestExecute_NoEventOnConflict(t *testing.T) {
	store := newBookingStore(
		pendingBooking(1, staffIDPtr(20), "10:00", 60),
		pendingBooking(2, staffIDPtr(20), "10:30", 60),
	)
	f := newFixture(store, &fakeAssigner{})

	_, err := f.uc.Execute(context.Background(), 1, 1)
	require.NoError(t, err)

	_, err = f.uc.Execute(context.Background(), 1, 2)
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Len(t, f.publisher.published, 1)
}
