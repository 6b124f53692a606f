package tenantconfig

import (
	"context"
	"errors"
	"fmt"

	"github.com/lumiplatform/LUMI-SchedulingService/internal/domain"
	configRepo "github.com/lumiplatform/LUMI-SchedulingService/internal/infra/storage/tenantconfig"
	"github.com/lumiplatform/LUMI-SchedulingService/pkg/timerange"
	"github.com/lumiplatform/LUMI-SchedulingService/pkg/types"
)

// Service сервис управления часами работы арендатора
type Service struct {
	repo   Repository
	logger Logger
}

// NewService создает новый экземпляр сервиса
func NewService(repo Repository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetBusinessHours получает часы работы арендатора
func (s *Service) GetBusinessHours(ctx context.Context, tenantID int64) (*domain.TenantBusinessHours, error) {
	hours, err := s.repo.GetByTenant(ctx, tenantID)
	if err != nil {
		if errors.Is(err, configRepo.ErrBusinessHoursNotFound) {
			return nil, ErrBusinessHoursNotFound
		}
		s.logger.Error("GetBusinessHours: repository error tenant=%d: %v", tenantID, err)
		return nil, fmt.Errorf("%w: GetBusinessHours - repository error: %v", ErrInternal, err)
	}
	return hours, nil
}

// UpdateBusinessHours обновляет часы работы арендатора
// Диапазон проходит общий pkg/timerange - так же, как расписания мастеров,
// отпуска, купоны и кампании
func (s *Service) UpdateBusinessHours(ctx context.Context, req *UpdateBusinessHoursRequest) (*domain.TenantBusinessHours, error) {
	start, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}
	end, err := types.NewTimeStringFromString(req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid end time: %v", ErrInvalidInput, err)
	}

	if err := timerange.Validate(start, end); err != nil {
		s.logger.Warn("UpdateBusinessHours: invalid range tenant=%d: %v", req.TenantID, err)
		return nil, err
	}

	hours := &domain.TenantBusinessHours{
		TenantID:          req.TenantID,
		BusinessStartTime: start,
		BusinessEndTime:   end,
	}

	if req.BreakStart != nil || req.BreakEnd != nil {
		if req.BreakStart == nil || req.BreakEnd == nil {
			return nil, fmt.Errorf("%w: break requires both start and end", ErrInvalidInput)
		}

		breakStart, err := types.NewTimeStringFromString(*req.BreakStart)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid break start: %v", ErrInvalidInput, err)
		}
		breakEnd, err := types.NewTimeStringFromString(*req.BreakEnd)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid break end: %v", ErrInvalidInput, err)
		}

		if err := timerange.ValidateNested(start, end, breakStart, breakEnd); err != nil {
			s.logger.Warn("UpdateBusinessHours: invalid break range tenant=%d: %v", req.TenantID, err)
			return nil, err
		}

		hours.BreakStartTime = &breakStart
		hours.BreakEndTime = &breakEnd
	}

	updated, err := s.repo.Upsert(ctx, hours)
	if err != nil {
		s.logger.Error("UpdateBusinessHours: repository error tenant=%d: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: UpdateBusinessHours - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateBusinessHours: hours updated tenant=%d [%s, %s)", req.TenantID, start, end)
	return updated, nil
}
