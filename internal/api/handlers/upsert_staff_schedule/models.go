package upsert_staff_schedule

import (
	"fmt"
	"time"

	"github.com/lumiplatform/LUMI-SchedulingService/internal/domain"
	"github.com/lumiplatform/LUMI-SchedulingService/internal/service/schedule"
)

// UpsertScheduleRequest HTTP request model
type UpsertScheduleRequest struct {
	Weekday      int     `json:"weekday"` // 0 = воскресенье ... 6 = суббота
	IsWorkingDay bool    `json:"isWorkingDay"`
	StartTime    string  `json:"startTime,omitempty"`
	EndTime      string  `json:"endTime,omitempty"`
	BreakStart   *string `json:"breakStart,omitempty"`
	BreakEnd     *string `json:"breakEnd,omitempty"`
}

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	ID           int64   `json:"id"`
	StaffID      int64   `json:"staffId"`
	Weekday      int     `json:"weekday"`
	IsWorkingDay bool    `json:"isWorkingDay"`
	StartTime    string  `json:"startTime,omitempty"`
	EndTime      string  `json:"endTime,omitempty"`
	BreakStart   *string `json:"breakStart,omitempty"`
	BreakEnd     *string `json:"breakEnd,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpsertScheduleRequest) ToServiceRequest(tenantID, staffID int64) (*schedule.UpsertScheduleRequest, error) {
	if r.Weekday < 0 || r.Weekday > 6 {
		return nil, fmt.Errorf("weekday must be in [0, 6], got %d", r.Weekday)
	}

	return &schedule.UpsertScheduleRequest{
		TenantID:     tenantID,
		StaffID:      staffID,
		Weekday:      time.Weekday(r.Weekday),
		IsWorkingDay: r.IsWorkingDay,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		BreakStart:   r.BreakStart,
		BreakEnd:     r.BreakEnd,
	}, nil
}

// FromDomainSchedule конвертирует domain модель в HTTP response
func FromDomainSchedule(s *domain.StaffSchedule) *ScheduleResponse {
	resp := &ScheduleResponse{
		ID:           s.ID,
		StaffID:      s.StaffID,
		Weekday:      int(s.Weekday),
		IsWorkingDay: s.IsWorkingDay,
	}

	if s.IsWorkingDay {
		resp.StartTime = s.StartTime.String()
		resp.EndTime = s.EndTime.String()
	}

	if s.HasBreak() {
		breakStart := s.BreakStartTime.String()
		breakEnd := s.BreakEndTime.String()
		resp.BreakStart = &breakStart
		resp.BreakEnd = &breakEnd
	}

	return resp
}
