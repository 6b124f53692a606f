package scheduling

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumiplatform/LUMI-SchedulingService/internal/domain"
)

type fakeStaffRepo struct {
	roster []*domain.Staff
	err    error
}

func (f *fakeStaffRepo) ListBookable(_ context.Context, _ int64) ([]*domain.Staff, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.roster, nil
}

// fakeAvailability покрывает интервал для всех мастеров из working
type fakeAvailability struct {
	working map[int64]bool
}

func (f *fakeAvailability) Covers(_ context.Context, _, staffID int64, _ time.Time, _ domain.Interval) (bool, error) {
	return f.working[staffID], nil
}

func staff(id int64, categories ...string) *domain.Staff {
	return &domain.Staff{
		ID:                id,
		TenantID:          1,
		DisplayName:       "staff",
		IsBookable:        true,
		ServiceCategories: categories,
	}
}

func newAssigner(
	roster []*domain.Staff,
	working map[int64]bool,
	confirmed map[int64][]*domain.Booking,
) *AutoAssigner {
	checker := NewConflictChecker(&fakeBookingRepo{confirmed: confirmed}, nopLogger{})
	return NewAutoAssigner(
		&fakeStaffRepo{roster: roster},
		&fakeAvailability{working: working},
		checker,
		nopLogger{},
	)
}

func TestAssign_PicksLowestIDMatch(t *testing.T) {
	assigner := newAssigner(
		[]*domain.Staff{staff(1), staff(2), staff(3)},
		map[int64]bool{1: true, 2: true, 3: true},
		nil,
	)

	got, err := assigner.Assign(context.Background(), 1, testDate, iv("10:00", "11:00"), "haircut")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
}

func TestAssign_SkipsWrongCategory(t *testing.T) {
	assigner := newAssigner(
		[]*domain.Staff{staff(1, "massage"), staff(2, "haircut")},
		map[int64]bool{1: true, 2: true},
		nil,
	)

	got, err := assigner.Assign(context.Background(), 1, testDate, iv("10:00", "11:00"), "haircut")
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.ID)
}

func TestAssign_EmptyCategoriesPerformAll(t *testing.T) {
	assigner := newAssigner(
		[]*domain.Staff{staff(1)},
		map[int64]bool{1: true},
		nil,
	)

	got, err := assigner.Assign(context.Background(), 1, testDate, iv("10:00", "11:00"), "anything")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
}

func TestAssign_SkipsNotWorking(t *testing.T) {
	assigner := newAssigner(
		[]*domain.Staff{staff(1), staff(2)},
		map[int64]bool{1: false, 2: true},
		nil,
	)

	got, err := assigner.Assign(context.Background(), 1, testDate, iv("10:00", "11:00"), "")
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.ID)
}

func TestAssign_SkipsConflicting(t *testing.T) {
	assigner := newAssigner(
		[]*domain.Staff{staff(1), staff(2)},
		map[int64]bool{1: true, 2: true},
		map[int64][]*domain.Booking{
			1: {confirmedBooking(100, "10:00", 60)},
		},
	)

	got, err := assigner.Assign(context.Background(), 1, testDate, iv("10:30", "11:30"), "")
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.ID)
}

func TestAssign_NoStaffAtAll(t *testing.T) {
	assigner := newAssigner(nil, nil, nil)

	_, err := assigner.Assign(context.Background(), 1, testDate, iv("10:00", "11:00"), "")
	assert.ErrorIs(t, err, ErrNoStaffAvailable)
}

func TestAssign_EveryoneBusyOrOff(t *testing.T) {
	assigner := newAssigner(
		[]*domain.Staff{staff(1), staff(2)},
		map[int64]bool{1: false, 2: true},
		map[int64][]*domain.Booking{
			2: {confirmedBooking(200, "10:00", 60)},
		},
	)

	_, err := assigner.Assign(context.Background(), 1, testDate, iv("10:00", "11:00"), "")
	assert.ErrorIs(t, err, ErrNoStaffAvailable)
}
