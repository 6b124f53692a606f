package create_staff_leave

import (
	"context"

	"github.com/lumiplatform/LUMI-SchedulingService/internal/domain"
	"github.com/lumiplatform/LUMI-SchedulingService/internal/service/schedule"
)

type ScheduleService interface {
	CreateLeave(ctx context.Context, req *schedule.CreateLeaveRequest) (*domain.StaffLeave, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
