package schedule

import (
	"context"
	"time"

	"github.com/lumiplatform/LUMI-SchedulingService/internal/domain"
)

// StaffRepository интерфейс репозитория мастеров
type StaffRepository interface {
	GetByID(ctx context.Context, tenantID, staffID int64) (*domain.Staff, error)
	UpsertSchedule(ctx context.Context, schedule *domain.StaffSchedule) (*domain.StaffSchedule, error)
	CreateLeave(ctx context.Context, leave *domain.StaffLeave) (*domain.StaffLeave, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// UpsertScheduleRequest запрос на обновление расписания мастера на день недели
type UpsertScheduleRequest struct {
	TenantID     int64
	StaffID      int64
	Weekday      time.Weekday
	IsWorkingDay bool
	StartTime    string
	EndTime      string
	BreakStart   *string
	BreakEnd     *string
}

// CreateLeaveRequest запрос на создание отпуска мастера
type CreateLeaveRequest struct {
	TenantID   int64
	StaffID    int64
	LeaveDate  time.Time
	IsFullDay  bool
	StartTime  string
	EndTime    string
	IsApproved bool
}
