package tenantconfig

import (
	"context"

	"github.com/lumiplatform/LUMI-SchedulingService/internal/domain"
)

// Repository интерфейс репозитория часов работы арендатора
type Repository interface {
	GetByTenant(ctx context.Context, tenantID int64) (*domain.TenantBusinessHours, error)
	Upsert(ctx context.Context, hours *domain.TenantBusinessHours) (*domain.TenantBusinessHours, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// UpdateBusinessHoursRequest запрос на обновление часов работы
type UpdateBusinessHoursRequest struct {
	TenantID   int64
	StartTime  string
	EndTime    string
	BreakStart *string
	BreakEnd   *string
}
