package promotions

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lumiplatform/LUMI-SchedulingService/internal/domain"
	promoRepo "github.com/lumiplatform/LUMI-SchedulingService/internal/infra/storage/promo"
	"github.com/lumiplatform/LUMI-SchedulingService/pkg/timerange"
)

// Service сервис создания купонов и кампаний
// Бизнес-логика применения скидок живёт в маркетинговом сервисе; здесь
// только создание с валидацией окна действия через общий pkg/timerange
type Service struct {
	repo   Repository
	logger Logger
}

// NewService создает новый экземпляр сервиса промо-акций
func NewService(repo Repository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// CreateCoupon создает купон с окном действия [ValidFrom, ValidUntil)
func (s *Service) CreateCoupon(ctx context.Context, req *CreateCouponRequest) (*domain.Coupon, error) {
	code := strings.TrimSpace(req.Code)
	if code == "" {
		return nil, fmt.Errorf("%w: coupon code is required", ErrInvalidInput)
	}
	if len(code) > domain.MaxCouponCodeLength {
		return nil, fmt.Errorf("%w: coupon code exceeds %d characters", ErrInvalidInput, domain.MaxCouponCodeLength)
	}
	if req.DiscountPercent <= 0 || req.DiscountPercent > domain.MaxDiscountPercent {
		return nil, fmt.Errorf("%w: discount percent must be in (0, %d]", ErrInvalidInput, domain.MaxDiscountPercent)
	}

	if err := timerange.ValidateInstants(req.ValidFrom, req.ValidUntil); err != nil {
		s.logger.Warn("CreateCoupon: invalid validity window tenant=%d code=%s: %v", req.TenantID, code, err)
		return nil, err
	}

	coupon := &domain.Coupon{
		TenantID:        req.TenantID,
		Code:            code,
		DiscountPercent: req.DiscountPercent,
		ValidFrom:       req.ValidFrom,
		ValidUntil:      req.ValidUntil,
	}

	created, err := s.repo.CreateCoupon(ctx, coupon)
	if err != nil {
		if errors.Is(err, promoRepo.ErrDuplicateCouponCode) {
			s.logger.Warn("CreateCoupon: duplicate code tenant=%d code=%s", req.TenantID, code)
			return nil, ErrDuplicateCouponCode
		}
		s.logger.Error("CreateCoupon: repository error tenant=%d: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: CreateCoupon - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateCoupon: coupon id=%d created tenant=%d code=%s", created.ID, req.TenantID, code)
	return created, nil
}

// CreateCampaign создает кампанию с окном действия [StartsAt, EndsAt)
func (s *Service) CreateCampaign(ctx context.Context, req *CreateCampaignRequest) (*domain.Campaign, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: campaign name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxCampaignNameLength {
		return nil, fmt.Errorf("%w: campaign name exceeds %d characters", ErrInvalidInput, domain.MaxCampaignNameLength)
	}

	if err := timerange.ValidateInstants(req.StartsAt, req.EndsAt); err != nil {
		s.logger.Warn("CreateCampaign: invalid validity window tenant=%d name=%s: %v", req.TenantID, name, err)
		return nil, err
	}

	campaign := &domain.Campaign{
		TenantID: req.TenantID,
		Name:     name,
		StartsAt: req.StartsAt,
		EndsAt:   req.EndsAt,
	}

	created, err := s.repo.CreateCampaign(ctx, campaign)
	if err != nil {
		s.logger.Error("CreateCampaign: repository error tenant=%d: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: CreateCampaign - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateCampaign: campaign id=%d created tenant=%d name=%s", created.ID, req.TenantID, name)
	return created, nil
}
