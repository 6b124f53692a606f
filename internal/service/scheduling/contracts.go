package scheduling

import (
	"context"
	"time"

	"github.com/lumiplatform/LUMI-SchedulingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetConfirmedByStaffDate(ctx context.Context, tenantID, staffID int64, date time.Time) ([]*domain.Booking, error)
}

// StaffRepository интерфейс репозитория мастеров
type StaffRepository interface {
	ListBookable(ctx context.Context, tenantID int64) ([]*domain.Staff, error)
}

// AvailabilityIndex интерфейс индекса доступности мастеров
type AvailabilityIndex interface {
	Covers(ctx context.Context, tenantID, staffID int64, date time.Time, interval domain.Interval) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
