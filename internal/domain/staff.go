package domain

import (
	"time"

	"github.com/lumiplatform/LUMI-SchedulingService/pkg/types"
)

// Staff represents a staff member of a tenant (stylist, doctor, master)
type Staff struct {
	ID          int64
	TenantID    int64
	DisplayName string
	// IsBookable marks the staff member as eligible to receive appointments
	IsBookable bool
	// ServiceCategories список категорий услуг, которые выполняет мастер
	// Пустой список означает отсутствие ограничений (выполняет всё)
	ServiceCategories []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanPerform returns true if the staff member can perform a service of the given category
func (s *Staff) CanPerform(category string) bool {
	if len(s.ServiceCategories) == 0 {
		return true
	}
	for _, c := range s.ServiceCategories {
		if c == category {
			return true
		}
	}
	return false
}

// StaffSchedule недельное расписание мастера: одна запись на день недели
type StaffSchedule struct {
	ID           int64
	TenantID     int64
	StaffID      int64
	Weekday      time.Weekday
	IsWorkingDay bool
	StartTime    types.TimeString
	EndTime      types.TimeString
	// Необязательный перерыв, обязан лежать внутри рабочего интервала
	BreakStartTime *types.TimeString
	BreakEndTime   *types.TimeString

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasBreak returns true if a break window is set for the day
func (s *StaffSchedule) HasBreak() bool {
	return s.BreakStartTime != nil && s.BreakEndTime != nil
}

// WorkingInterval returns the working interval of the day
func (s *StaffSchedule) WorkingInterval() Interval {
	return Interval{Start: s.StartTime, End: s.EndTime}
}

// StaffLeave отпуск или отгул мастера на конкретную дату
type StaffLeave struct {
	ID        int64
	TenantID  int64
	StaffID   int64
	LeaveDate time.Time
	IsFullDay bool
	// Для неполного дня - интервал отсутствия
	StartTime types.TimeString
	EndTime   types.TimeString
	// Учитываются только согласованные отпуска
	IsApproved bool

	CreatedAt time.Time
}
