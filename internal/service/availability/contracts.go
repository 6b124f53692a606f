package availability

import (
	"context"
	"time"

	"github.com/lumiplatform/LUMI-SchedulingService/internal/domain"
)

// StaffRepository интерфейс репозитория расписаний и отпусков мастеров
type StaffRepository interface {
	GetSchedule(ctx context.Context, tenantID, staffID int64, weekday time.Weekday) (*domain.StaffSchedule, error)
	GetApprovedLeaves(ctx context.Context, tenantID, staffID int64, date time.Time) ([]*domain.StaffLeave, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
