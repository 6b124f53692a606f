package domain

import (
	"time"

	"github.com/lumiplatform/LUMI-SchedulingService/pkg/types"
)

// TenantBusinessHours часы работы арендатора (салона/клиники)
type TenantBusinessHours struct {
	ID                int64
	TenantID          int64
	BusinessStartTime types.TimeString
	BusinessEndTime   types.TimeString
	// Необязательный перерыв (например, обеденный), внутри рабочих часов
	BreakStartTime *types.TimeString
	BreakEndTime   *types.TimeString

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasBreak returns true if a break window is configured
func (h *TenantBusinessHours) HasBreak() bool {
	return h.BreakStartTime != nil && h.BreakEndTime != nil
}
