package create_staff_leave

import (
	"time"

	"github.com/lumiplatform/LUMI-SchedulingService/internal/domain"
	"github.com/lumiplatform/LUMI-SchedulingService/internal/service/schedule"
)

// CreateLeaveRequest HTTP request model
type CreateLeaveRequest struct {
	LeaveDate  string `json:"leaveDate"` // "2025-10-15"
	IsFullDay  bool   `json:"isFullDay"`
	StartTime  string `json:"startTime,omitempty"`
	EndTime    string `json:"endTime,omitempty"`
	IsApproved bool   `json:"isApproved"`
}

// LeaveResponse HTTP response model
type LeaveResponse struct {
	ID         int64  `json:"id"`
	StaffID    int64  `json:"staffId"`
	LeaveDate  string `json:"leaveDate"`
	IsFullDay  bool   `json:"isFullDay"`
	StartTime  string `json:"startTime,omitempty"`
	EndTime    string `json:"endTime,omitempty"`
	IsApproved bool   `json:"isApproved"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateLeaveRequest) ToServiceRequest(tenantID, staffID int64) (*schedule.CreateLeaveRequest, error) {
	leaveDate, err := time.Parse(domain.DateFormat, r.LeaveDate)
	if err != nil {
		return nil, err
	}

	return &schedule.CreateLeaveRequest{
		TenantID:   tenantID,
		StaffID:    staffID,
		LeaveDate:  leaveDate,
		IsFullDay:  r.IsFullDay,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		IsApproved: r.IsApproved,
	}, nil
}

// FromDomainLeave конвертирует domain модель в HTTP response
func FromDomainLeave(l *domain.StaffLeave) *LeaveResponse {
	resp := &LeaveResponse{
		ID:         l.ID,
		StaffID:    l.StaffID,
		LeaveDate:  l.LeaveDate.Format(domain.DateFormat),
		IsFullDay:  l.IsFullDay,
		IsApproved: l.IsApproved,
	}

	if !l.IsFullDay {
		resp.StartTime = l.StartTime.String()
		resp.EndTime = l.EndTime.String()
	}

	return resp
}
