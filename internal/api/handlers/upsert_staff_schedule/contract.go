package upsert_staff_schedule

import (
	"context"

	"github.com/lumiplatform/LUMI-SchedulingService/internal/domain"
	"github.com/lumiplatform/LUMI-SchedulingService/internal/service/schedule"
)

type ScheduleService interface {
	UpsertSchedule(ctx context.Context, req *schedule.UpsertScheduleRequest) (*domain.StaffSchedule, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
