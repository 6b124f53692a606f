package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumiplatform/LUMI-SchedulingService/internal/domain"
	"github.com/lumiplatform/LUMI-SchedulingService/internal/infra/events"
	bookingRepo "github.com/lumiplatform/LUMI-SchedulingService/internal/infra/storage/booking"
	"github.com/lumiplatform/LUMI-SchedulingService/internal/service/bookings/models"
	"github.com/lumiplatform/LUMI-SchedulingService/pkg/types"
)

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

func (s *bookingStore) ListWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range s.bookings {
		if b.TenantID != filter.TenantID {
			continue
		}
		if b.Status == domain.StatusCancelled && !filter.IncludeCancelled {
			continue
		}
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		if filter.CustomerID != nil && b.CustomerID != *filter.CustomerID {
			continue
		}
		if filter.StaffID != nil && (b.StaffID == nil || *b.StaffID != *filter.StaffID) {
			continue
		}
		if filter.StartDate != nil && b.BookingDate.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && b.BookingDate.After(*filter.EndDate) {
			continue
		}
		copied := *b
		result = append(result, &copied)
	}
	return result, nil
}

func (s *bookingStore) UpdateStatusFrom(_ context.Context, id int64, from, to domain.BookingStatus) error {
	b, ok := s.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	if b.Status != from {
		return bookingRepo.ErrStatusPrecondition
	}
	b.Status = to
	return nil
}

func (s *bookingStore) Cancel(_ context.Context, id int64, reason *string) error {
	b, ok := s.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	if b.Status != domain.StatusPending && b.Status != domain.StatusConfirmed {
		return bookingRepo.ErrStatusPrecondition
	}
	now := time.Now().UTC()
	b.Status = domain.StatusCancelled
	b.CancellationReason = reason
	b.CancelledAt = &now
	return nil
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

var bookingDate = time.Date(2026, 7, 7, 0, 0, 0, 0, time.UTC)

func staffIDPtr(id int64) *int64 { return &id }

func strPtr(s string) *string { return &s }

func booking(id int64, status domain.BookingStatus) *domain.Booking {
	staffID := int64(20)
	return &domain.Booking{
		ID:              id,
		TenantID:        1,
		CustomerID:      5,
		ServiceItemID:   7,
		StaffID:         &staffID,
		StaffName:       strPtr("Alice"),
		BookingDate:     bookingDate,
		StartTime:       types.TimeString("10:00"),
		DurationMinutes: 60,
		Status:          status,
		ServiceItemName: "Haircut",
	}
}

type fixture struct {
	store     *bookingStore
	publisher *recordingPublisher
	svc       *Service
}

func newFixture(store *bookingStore) *fixture {
	publisher := &recordingPublisher{}
	return &fixture{
		store:     store,
		publisher: publisher,
		svc:       NewService(store, publisher, nopLogger{}),
	}
}

func TestGetByID(t *testing.T) {
	f := newFixture(newBookingStore(booking(1, domain.StatusConfirmed)))

	resp, err := f.svc.GetByID(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, models.ExternalStatusConfirmed, resp.Status)
	assert.Equal(t, "11:00", resp.EndTime)
}

func TestGetByID_NotFound(t *testing.T) {
	f := newFixture(newBookingStore())

	_, err := f.svc.GetByID(context.Background(), 1, 404)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByID_ForeignTenant(t *testing.T) {
	// Чужой арендатор получает явный отказ, а не "не найдено"
	f := newFixture(newBookingStore(booking(1, domain.StatusConfirmed)))

	_, err := f.svc.GetByID(context.Background(), 2, 1)
	assert.ErrorIs(t, err, ErrTenantMismatch)
}

func TestCancel_Pending(t *testing.T) {
	f := newFixture(newBookingStore(booking(1, domain.StatusPending)))

	resp, err := f.svc.Cancel(context.Background(), 1, 1, &models.CancelBookingRequest{
		Reason: strPtr("changed my mind"),
	})
	require.NoError(t, err)
	assert.Equal(t, models.ExternalStatusCancelled, resp.Status)
	require.NotNil(t, resp.CancellationReason)
	assert.Equal(t, "changed my mind", *resp.CancellationReason)
	assert.NotNil(t, resp.CancelledAt)
}

func TestCancel_ConfirmedFreesSlot(t *testing.T) {
	f := newFixture(newBookingStore(booking(1, domain.StatusConfirmed)))

	resp, err := f.svc.Cancel(context.Background(), 1, 1, &models.CancelBookingRequest{})
	require.NoError(t, err)
	assert.Equal(t, models.ExternalStatusCancelled, resp.Status)
	// Отмененное бронирование слот не занимает
	assert.False(t, f.store.bookings[1].OccupiesSlot())
}

func TestCancel_TerminalStatuses(t *testing.T) {
	for _, status := range []domain.BookingStatus{
		domain.StatusCompleted,
		domain.StatusCancelled,
		domain.StatusNoShow,
	} {
		t.Run(string(status), func(t *testing.T) {
			f := newFixture(newBookingStore(booking(1, status)))

			_, err := f.svc.Cancel(context.Background(), 1, 1, &models.CancelBookingRequest{})
			assert.ErrorIs(t, err, ErrInvalidStateTransition)
			assert.Equal(t, status, f.store.bookings[1].Status)
		})
	}
}

func TestCancel_OversizedReason(t *testing.T) {
	f := newFixture(newBookingStore(booking(1, domain.StatusPending)))

	reason := string(make([]byte, domain.MaxCancellationReasonLength+1))
	_, err := f.svc.Cancel(context.Background(), 1, 1, &models.CancelBookingRequest{Reason: &reason})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestComplete(t *testing.T) {
	f := newFixture(newBookingStore(booking(1, domain.StatusConfirmed)))

	resp, err := f.svc.Complete(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, models.ExternalStatusCompleted, resp.Status)
}

func TestComplete_FromPendingRejected(t *testing.T) {
	f := newFixture(newBookingStore(booking(1, domain.StatusPending)))

	_, err := f.svc.Complete(context.Background(), 1, 1)
	assert.ErrorIs(t, err, ErrInvalidStateTransition)
	assert.Equal(t, domain.StatusPending, f.store.bookings[1].Status)
}

func TestMarkNoShow(t *testing.T) {
	f := newFixture(newBookingStore(booking(1, domain.StatusConfirmed)))

	resp, err := f.svc.MarkNoShow(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, models.ExternalStatusNoShow, resp.Status)
}

func TestMarkNoShow_FromPendingRejected(t *testing.T) {
	f := newFixture(newBookingStore(booking(1, domain.StatusPending)))

	_, err := f.svc.MarkNoShow(context.Background(), 1, 1)
	assert.ErrorIs(t, err, ErrInvalidStateTransition)
}

func TestTransitions_PublishEvents(t *testing.T) {
	f := newFixture(newBookingStore(
		booking(1, domain.StatusConfirmed),
		booking(2, domain.StatusConfirmed),
		booking(3, domain.StatusPending),
	))

	_, err := f.svc.Complete(context.Background(), 1, 1)
	require.NoError(t, err)
	_, err = f.svc.MarkNoShow(context.Background(), 1, 2)
	require.NoError(t, err)
	_, err = f.svc.Cancel(context.Background(), 1, 3, &models.CancelBookingRequest{})
	require.NoError(t, err)

	require.Len(t, f.publisher.published, 3)
	assert.Equal(t, domain.StatusCompleted, f.publisher.published[0].NewStatus)
	assert.Equal(t, domain.StatusNoShow, f.publisher.published[1].NewStatus)
	assert.Equal(t, domain.StatusCancelled, f.publisher.published[2].NewStatus)
	assert.Equal(t, domain.StatusPending, f.publisher.published[2].OldStatus)
}

func TestTransitions_NoEventOnRejection(t *testing.T) {
	f := newFixture(newBookingStore(booking(1, domain.StatusCompleted)))

	_, err := f.svc.Cancel(context.Background(), 1, 1, &models.CancelBookingRequest{})
	assert.ErrorIs(t, err, ErrInvalidStateTransition)
	assert.Empty(t, f.publisher.published)
}

func TestList_FiltersByStatus(t *testing.T) {
	f := newFixture(newBookingStore(
		booking(1, domain.StatusPending),
		booking(2, domain.StatusConfirmed),
		booking(3, domain.StatusCancelled),
	))

	status := models.ExternalStatusConfirmed
	resp, err := f.svc.List(context.Background(), &models.ListBookingsRequest{
		TenantID: 1,
		Status:   &status,
	})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(2), resp.Bookings[0].ID)
}

func TestList_ExcludesCancelledByDefault(t *testing.T) {
	f := newFixture(newBookingStore(
		booking(1, domain.StatusConfirmed),
		booking(2, domain.StatusCancelled),
	))

	resp, err := f.svc.List(context.Background(), &models.ListBookingsRequest{TenantID: 1})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(1), resp.Bookings[0].ID)

	resp, err = f.svc.List(context.Background(), &models.ListBookingsRequest{
		TenantID:         1,
		IncludeCancelled: true,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)
}

func TestList_UnknownStatusFilter(t *testing.T) {
	f := newFixture(newBookingStore())

	status := "WAITING"
	_, err := f.svc.List(context.Background(), &models.ListBookingsRequest{
		TenantID: 1,
		Status:   &status,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCalendar(t *testing.T) {
	cancelled := booking(2, domain.StatusCancelled)
	f := newFixture(newBookingStore(booking(1, domain.StatusConfirmed), cancelled))

	resp, err := f.svc.Calendar(context.Background(), &models.CalendarRequest{
		TenantID:  1,
		StartDate: bookingDate.AddDate(0, 0, -1),
		EndDate:   bookingDate.AddDate(0, 0, 1),
	})
	require.NoError(t, err)
	require.Len(t, resp.Events, 1)

	event := resp.Events[0]
	assert.Equal(t, int64(1), event.BookingID)
	assert.Equal(t, "Haircut", event.Title)
	assert.Equal(t, "2026-07-07", event.Date)
	assert.Equal(t, "10:00", event.StartTime)
	assert.Equal(t, "11:00", event.EndTime)
}

func TestCalendar_InvalidPeriod(t *testing.T) {
	f := newFixture(newBookingStore())

	_, err := f.svc.Calendar(context.Background(), &models.CalendarRequest{
		TenantID:  1,
		StartDate: bookingDate,
		EndDate:   bookingDate.AddDate(0, 0, -1),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
