package create_coupon

import (
	"context"

	"github.com/lumiplatform/LUMI-SchedulingService/internal/domain"
	"github.com/lumiplatform/LUMI-SchedulingService/internal/service/promotions"
)

type PromotionsService interface {
	CreateCoupon(ctx context.Context, req *promotions.CreateCouponRequest) (*domain.Coupon, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
