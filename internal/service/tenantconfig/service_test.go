package tenantconfig

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumiplatform/LUMI-SchedulingService/internal/domain"
	configRepo "github.com/lumiplatform/LUMI-SchedulingService/internal/infra/storage/tenantconfig"
	"github.com/lumiplatform/LUMI-SchedulingService/pkg/timerange"
	"github.com/lumiplatform/LUMI-SchedulingService/pkg/types"
)

type fakeRepo struct {
	hours map[int64]*domain.TenantBusinessHours
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{hours: make(map[int64]*domain.TenantBusinessHours)}
}

func (f *fakeRepo) GetByTenant(_ context.Context, tenantID int64) (*domain.TenantBusinessHours, error) {
	h, ok := f.hours[tenantID]
	if !ok {
		return nil, configRepo.ErrBusinessHoursNotFound
	}
	return h, nil
}

func (f *fakeRepo) Upsert(_ context.Context, hours *domain.TenantBusinessHours) (*domain.TenantBusinessHours, error) {
	copied := *hours
	copied.ID = 1
	f.hours[hours.TenantID] = &copied
	return &copied, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func strPtr(s string) *string { return &s }

func TestUpdateBusinessHours(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	hours, err := svc.UpdateBusinessHours(context.Background(), &UpdateBusinessHoursRequest{
		TenantID:  1,
		StartTime: "08:00",
		EndTime:   "20:00",
	})
	require.NoError(t, err)

	assert.Equal(t, types.TimeString("08:00"), hours.BusinessStartTime)
	assert.Equal(t, types.TimeString("20:00"), hours.BusinessEndTime)
	assert.False(t, hours.HasBreak())
}

func TestUpdateBusinessHours_WithBreak(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	hours, err := svc.UpdateBusinessHours(context.Background(), &UpdateBusinessHoursRequest{
		TenantID:   1,
		StartTime:  "08:00",
		EndTime:    "20:00",
		BreakStart: strPtr("12:00"),
		BreakEnd:   strPtr("13:00"),
	})
	require.NoError(t, err)
	require.True(t, hours.HasBreak())
	assert.Equal(t, types.TimeString("12:00"), *hours.BreakStartTime)
}

func TestUpdateBusinessHours_InvertedRange(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	_, err := svc.UpdateBusinessHours(context.Background(), &UpdateBusinessHoursRequest{
		TenantID:  1,
		StartTime: "20:00",
		EndTime:   "08:00",
	})
	assert.ErrorIs(t, err, timerange.ErrInvalidRange)
}

func TestUpdateBusinessHours_BreakOutsideHours(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	_, err := svc.UpdateBusinessHours(context.Background(), &UpdateBusinessHoursRequest{
		TenantID:   1,
		StartTime:  "08:00",
		EndTime:    "20:00",
		BreakStart: strPtr("19:00"),
		BreakEnd:   strPtr("21:00"),
	})
	assert.ErrorIs(t, err, timerange.ErrNestedRangeOutOfBounds)
}

func TestUpdateBusinessHours_HalfBreak(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	_, err := svc.UpdateBusinessHours(context.Background(), &UpdateBusinessHoursRequest{
		TenantID:   1,
		StartTime:  "08:00",
		EndTime:    "20:00",
		BreakStart: strPtr("12:00"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetBusinessHours(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetBusinessHours(context.Background(), 1)
	assert.ErrorIs(t, err, ErrBusinessHoursNotFound)

	_, err = svc.UpdateBusinessHours(context.Background(), &UpdateBusinessHoursRequest{
		TenantID:  1,
		StartTime: "08:00",
		EndTime:   "20:00",
	})
	require.NoError(t, err)

	hours, err := svc.GetBusinessHours(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("08:00"), hours.BusinessStartTime)

	// Часы работы другого арендатора не видны
	_, err = svc.GetBusinessHours(context.Background(), 2)
	assert.ErrorIs(t, err, ErrBusinessHoursNotFound)
}
