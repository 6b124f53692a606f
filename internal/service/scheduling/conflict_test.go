package scheduling

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumiplatform/LUMI-SchedulingService/internal/domain"
	"github.com/lumiplatform/LUMI-SchedulingService/pkg/types"
)

type fakeBookingRepo struct {
	confirmed map[int64][]*domain.Booking // staffID -> confirmed bookings
	err       error
}

func (f *fakeBookingRepo) GetConfirmedByStaffDate(_ context.Context, _, staffID int64, _ time.Time) ([]*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.confirmed[staffID], nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func ts(s string) types.TimeString { return types.TimeString(s) }

func iv(start, end string) domain.Interval {
	return domain.Interval{Start: ts(start), End: ts(end)}
}

func confirmedBooking(id int64, start string, duration int) *domain.Booking {
	return &domain.Booking{
		ID:              id,
		TenantID:        1,
		Status:          domain.StatusConfirmed,
		StartTime:       ts(start),
		DurationMinutes: duration,
	}
}

var testDate = time.Date(2026, 7, 6, 0, 0, 0, 0, time.UTC)

func TestHasConflict(t *testing.T) {
	repo := &fakeBookingRepo{confirmed: map[int64][]*domain.Booking{
		10: {confirmedBooking(100, "10:00", 60)}, // [10:00, 11:00)
	}}
	checker := NewConflictChecker(repo, nopLogger{})

	tests := []struct {
		name     string
		interval domain.Interval
		want     bool
	}{
		{"identical slot", iv("10:00", "11:00"), true},
		{"overlapping tail", iv("10:30", "11:30"), true},
		{"overlapping head", iv("09:30", "10:30"), true},
		{"touching before", iv("09:00", "10:00"), false},
		{"touching after", iv("11:00", "12:00"), false},
		{"disjoint", iv("14:00", "15:00"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := checker.HasConflict(context.Background(), 1, 10, testDate, tt.interval, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHasConflict_ExcludesOwnBooking(t *testing.T) {
	repo := &fakeBookingRepo{confirmed: map[int64][]*domain.Booking{
		10: {confirmedBooking(100, "10:00", 60)},
	}}
	checker := NewConflictChecker(repo, nopLogger{})

	// Перепроверка того же бронирования на том же месте - не конфликт
	got, err := checker.HasConflict(context.Background(), 1, 10, testDate, iv("10:00", "11:00"), 100)
	require.NoError(t, err)
	assert.False(t, got)

	// Но чужое бронирование в этом слоте - конфликт
	got, err = checker.HasConflict(context.Background(), 1, 10, testDate, iv("10:00", "11:00"), 999)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestHasConflict_StaffWithoutBookings(t *testing.T) {
	checker := NewConflictChecker(&fakeBookingRepo{}, nopLogger{})

	got, err := checker.HasConflict(context.Background(), 1, 10, testDate, iv("10:00", "11:00"), 0)
	require.NoError(t, err)
	assert.False(t, got)
}

func TestHasConflict_RepositoryFailure(t *testing.T) {
	checker := NewConflictChecker(&fakeBookingRepo{err: errors.New("connection refused")}, nopLogger{})

	_, err := checker.HasConflict(context.Background(), 1, 10, testDate, iv("10:00", "11:00"), 0)
	assert.ErrorIs(t, err, ErrInternal)
}
