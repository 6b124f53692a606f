package update_business_hours

import (
	"context"

	"github.com/lumiplatform/LUMI-SchedulingService/internal/domain"
	"github.com/lumiplatform/LUMI-SchedulingService/internal/service/tenantconfig"
)

type TenantConfigService interface {
	GetBusinessHours(ctx context.Context, tenantID int64) (*domain.TenantBusinessHours, error)
	UpdateBusinessHours(ctx context.Context, req *tenantconfig.UpdateBusinessHoursRequest) (*domain.TenantBusinessHours, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
