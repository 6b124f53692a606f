package get_staff_availability

import (
	"context"
	"time"

	"github.com/lumiplatform/LUMI-SchedulingService/internal/domain"
)

type AvailabilityService interface {
	IntervalsFor(ctx context.Context, tenantID, staffID int64, date time.Time) ([]domain.Interval, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
