package update_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumiplatform/LUMI-SchedulingService/internal/domain"
	bookingRepo "github.com/lumiplatform/LUMI-SchedulingService/internal/infra/storage/booking"
	staffRepo "github.com/lumiplatform/LUMI-SchedulingService/internal/infra/storage/staff"
	"github.com/lumiplatform/LUMI-SchedulingService/internal/service/scheduling"
	"github.com/lumiplatform/LUMI-SchedulingService/pkg/types"
)

type bookingStore struct {
	bookings map[int64]*domain.Booking
	updates  int
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

func (s *bookingStore) Update(_ context.Context, booking *domain.Booking) error {
	if _, ok := s.bookings[booking.ID]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	copied := *booking
	s.bookings[booking.ID] = &copied
	s.updates++
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

type inlineTxManager struct {
	calls int
}

func (m *inlineTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (f *fixedTimeProvider) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	today       = time.Date(2026, 7, 6, 0, 0, 0, 0, time.UTC)
	bookingDate = today.AddDate(0, 0, 1)
)

func staffIDPtr(id int64) *int64 { return &id }

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func tsPtr(s string) *types.TimeString {
	v := types.TimeString(s)
	return &v
}

func booking(id int64, status domain.BookingStatus, staffID *int64, start string) *domain.Booking {
	var staffName *string
	if staffID != nil {
		staffName = strPtr("Alice")
	}
	return &domain.Booking{
		ID:              id,
		TenantID:        1,
		CustomerID:      5,
		ServiceItemID:   7,
		StaffID:         staffID,
		StaffName:       staffName,
		BookingDate:     bookingDate,
		StartTime:       types.TimeString(start),
		DurationMinutes: 60,
		Status:          status,
	}
}

type fixture struct {
	store *bookingStore
	tx    *inlineTxManager
	uc    *UseCase
}

func newFixture(store *bookingStore) *fixture {
	staffs := &fakeStaffRepo{staff: map[int64]*domain.Staff{
		20: {ID: 20, TenantID: 1, DisplayName: "Alice", IsBookable: true},
		21: {ID: 21, TenantID: 1, DisplayName: "Bob", IsBookable: true},
	}}
	checker := scheduling.NewConflictChecker(store, nopLogger{})
	tx := &inlineTxManager{}

	uc := NewUseCase(store, staffs, checker, tx, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: today.Add(12 * time.Hour)}
	return &fixture{store: store, tx: tx, uc: uc}
}

func TestExecute_UpdatesNotesWithoutTransaction(t *testing.T) {
	f := newFixture(newBookingStore(booking(1, domain.StatusConfirmed, staffIDPtr(20), "10:00")))

	resp, err := f.uc.Execute(context.Background(), &Request{
		TenantID:     1,
		BookingID:    1,
		CustomerNote: strPtr("please be gentle"),
		StoreNote:    strPtr("regular client"),
	})
	require.NoError(t, err)

	require.NotNil(t, resp.CustomerNote)
	assert.Equal(t, "please be gentle", *resp.CustomerNote)
	require.NotNil(t, resp.StoreNote)
	assert.Equal(t, "regular client", *resp.StoreNote)
	// Заметки слот не трогают, транзакция не нужна
	assert.Equal(t, 0, f.tx.calls)
}

func TestExecute_PendingSlotChangeSkipsConflictCheck(t *testing.T) {
	// Две pending заявки на один слот: перенос одной на слот другой проходит
	f := newFixture(newBookingStore(
		booking(1, domain.StatusPending, nil, "10:00"),
		booking(2, domain.StatusPending, nil, "12:00"),
	))

	resp, err := f.uc.Execute(context.Background(), &Request{
		TenantID:  1,
		BookingID: 2,
		StartTime: tsPtr("10:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, 0, f.tx.calls)
}

func TestExecute_ConfirmedSlotChangeChecksConflicts(t *testing.T) {
	f := newFixture(newBookingStore(
		booking(1, domain.StatusConfirmed, staffIDPtr(20), "10:00"),
		booking(2, domain.StatusConfirmed, staffIDPtr(20), "12:00"),
	))

	// Перенос на занятый слот отклоняется
	_, err := f.uc.Execute(context.Background(), &Request{
		TenantID:  1,
		BookingID: 2,
		StartTime: tsPtr("10:30"),
	})
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Equal(t, types.TimeString("12:00"), f.store.bookings[2].StartTime)

	// Перенос на свободный слот проходит в транзакции
	resp, err := f.uc.Execute(context.Background(), &Request{
		TenantID:  1,
		BookingID: 2,
		StartTime: tsPtr("14:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, "14:00", resp.StartTime)
	assert.Equal(t, 2, f.tx.calls)
}

func TestExecute_ConfirmedRescheduleExcludesItself(t *testing.T) {
	f := newFixture(newBookingStore(booking(1, domain.StatusConfirmed, staffIDPtr(20), "10:00")))

	// Сдвиг на полчаса пересекается со старым интервалом самого бронирования
	resp, err := f.uc.Execute(context.Background(), &Request{
		TenantID:  1,
		BookingID: 1,
		StartTime: tsPtr("10:30"),
	})
	require.NoError(t, err)
	assert.Equal(t, "10:30", resp.StartTime)
}

func TestExecute_ReassignsStaff(t *testing.T) {
	f := newFixture(newBookingStore(booking(1, domain.StatusConfirmed, staffIDPtr(20), "10:00")))

	resp, err := f.uc.Execute(context.Background(), &Request{
		TenantID:  1,
		BookingID: 1,
		StaffID:   staffIDPtr(21),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.StaffID)
	assert.Equal(t, int64(21), *resp.StaffID)
	require.NotNil(t, resp.StaffName)
	assert.Equal(t, "Bob", *resp.StaffName)
}

func TestExecute_TerminalBookingIsImmutable(t *testing.T) {
	for _, status := range []domain.BookingStatus{
		domain.StatusCompleted,
		domain.StatusCancelled,
		domain.StatusNoShow,
	} {
		t.Run(string(status), func(t *testing.T) {
			f := newFixture(newBookingStore(booking(1, status, staffIDPtr(20), "10:00")))

			_, err := f.uc.Execute(context.Background(), &Request{
				TenantID:     1,
				BookingID:    1,
				CustomerNote: strPtr("too late"),
			})
			assert.ErrorIs(t, err, ErrInvalidStateTransition)
		})
	}
}

func TestExecute_TenantMismatch(t *testing.T) {
	b := booking(1, domain.StatusPending, nil, "10:00")
	b.TenantID = 2
	f := newFixture(newBookingStore(b))

	_, err := f.uc.Execute(context.Background(), &Request{
		TenantID:     1,
		BookingID:    1,
		CustomerNote: strPtr("note"),
	})
	assert.ErrorIs(t, err, ErrTenantMismatch)
}

func TestExecute_BookingNotFound(t *testing.T) {
	f := newFixture(newBookingStore())

	_, err := f.uc.Execute(context.Background(), &Request{
		TenantID:     1,
		BookingID:    404,
		CustomerNote: strPtr("note"),
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_EmptyRequest(t *testing.T) {
	f := newFixture(newBookingStore(booking(1, domain.StatusPending, nil, "10:00")))

	_, err := f.uc.Execute(context.Background(), &Request{TenantID: 1, BookingID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_DateInThePast(t *testing.T) {
	f := newFixture(newBookingStore(booking(1, domain.StatusPending, nil, "10:00")))

	_, err := f.uc.Execute(context.Background(), &Request{
		TenantID:  1,
		BookingID: 1,
		Date:      timePtr(today.AddDate(0, 0, -1)),
	})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_SlotRunsPastMidnight(t *testing.T) {
	f := newFixture(newBookingStore(booking(1, domain.StatusPending, nil, "10:00")))

	_, err := f.uc.Execute(context.Background(), &Request{
		TenantID:  1,
		BookingID: 1,
		StartTime: tsPtr("23:30"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_UnknownStaff(t *testing.T) {
	f := newFixture(newBookingStore(booking(1, domain.StatusPending, nil, "10:00")))

	_, err := f.uc.Execute(context.Background(), &Request{
		TenantID:  1,
		BookingID: 1,
		StaffID:   staffIDPtr(999),
	})
	assert.ErrorIs(t, err, ErrStaffNotFound)
}
