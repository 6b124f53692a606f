package update_business_hours

import (
	"github.com/lumiplatform/LUMI-SchedulingService/internal/domain"
	"github.com/lumiplatform/LUMI-SchedulingService/internal/service/tenantconfig"
)

// UpdateBusinessHoursRequest HTTP request model
type UpdateBusinessHoursRequest struct {
	StartTime  string  `json:"startTime"` // "09:00"
	EndTime    string  `json:"endTime"`   // "20:00"
	BreakStart *string `json:"breakStart,omitempty"`
	BreakEnd   *string `json:"breakEnd,omitempty"`
}

// BusinessHoursResponse HTTP response model
type BusinessHoursResponse struct {
	StartTime  string  `json:"startTime"`
	EndTime    string  `json:"endTime"`
	BreakStart *string `json:"breakStart,omitempty"`
	BreakEnd   *string `json:"breakEnd,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateBusinessHoursRequest) ToServiceRequest(tenantID int64) *tenantconfig.UpdateBusinessHoursRequest {
	return &tenantconfig.UpdateBusinessHoursRequest{
		TenantID:   tenantID,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		BreakStart: r.BreakStart,
		BreakEnd:   r.BreakEnd,
	}
}

// FromDomainBusinessHours конвертирует domain модель в HTTP response
func FromDomainBusinessHours(h *domain.TenantBusinessHours) *BusinessHoursResponse {
	resp := &BusinessHoursResponse{
		StartTime: h.BusinessStartTime.String(),
		EndTime:   h.BusinessEndTime.String(),
	}

	if h.HasBreak() {
		breakStart := h.BreakStartTime.String()
		breakEnd := h.BreakEndTime.String()
		resp.BreakStart = &breakStart
		resp.BreakEnd = &breakEnd
	}

	return resp
}
