package promotions

import (
	"context"
	"time"

	"github.com/lumiplatform/LUMI-SchedulingService/internal/domain"
)

// Repository интерфейс репозитория купонов и кампаний
type Repository interface {
	CreateCoupon(ctx context.Context, coupon *domain.Coupon) (*domain.Coupon, error)
	CreateCampaign(ctx context.Context, campaign *domain.Campaign) (*domain.Campaign, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// CreateCouponRequest запрос на создание купона
type CreateCouponRequest struct {
	TenantID        int64
	Code            string
	DiscountPercent int
	ValidFrom       time.Time
	ValidUntil      time.Time
}

// CreateCampaignRequest запрос на создание кампании
type CreateCampaignRequest struct {
	TenantID int64
	Name     string
	StartsAt time.Time
	EndsAt   time.Time
}
