package create_campaign

import (
	"context"

	"github.com/lumiplatform/LUMI-SchedulingService/internal/domain"
	"github.com/lumiplatform/LUMI-SchedulingService/internal/service/promotions"
)

type PromotionsService interface {
	CreateCampaign(ctx context.Context, req *promotions.CreateCampaignRequest) (*domain.Campaign, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
