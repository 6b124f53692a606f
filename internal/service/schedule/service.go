package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/lumiplatform/LUMI-SchedulingService/internal/domain"
	staffRepo "github.com/lumiplatform/LUMI-SchedulingService/internal/infra/storage/staff"
	"github.com/lumiplatform/LUMI-SchedulingService/pkg/timerange"
	"github.com/lumiplatform/LUMI-SchedulingService/pkg/types"
)

// Service сервис управления расписаниями и отпусками мастеров
// Диапазоны времени валидируются общим pkg/timerange: перевернутый диапазон
// отклоняется той же ошибкой, что и в часах работы, купонах и кампаниях
type Service struct {
	staffRepo StaffRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(staffRepo StaffRepository, logger Logger) *Service {
	return &Service{
		staffRepo: staffRepo,
		logger:    logger,
	}
}

// UpsertSchedule создает или обновляет расписание мастера на день недели
func (s *Service) UpsertSchedule(ctx context.Context, req *UpsertScheduleRequest) (*domain.StaffSchedule, error) {
	if err := s.checkStaff(ctx, req.TenantID, req.StaffID, "UpsertSchedule"); err != nil {
		return nil, err
	}

	schedule := &domain.StaffSchedule{
		TenantID:     req.TenantID,
		StaffID:      req.StaffID,
		Weekday:      req.Weekday,
		IsWorkingDay: req.IsWorkingDay,
	}

	if req.IsWorkingDay {
		start, err := types.NewTimeStringFromString(req.StartTime)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
		}
		end, err := types.NewTimeStringFromString(req.EndTime)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid end time: %v", ErrInvalidInput, err)
		}

		if err := timerange.Validate(start, end); err != nil {
			s.logger.Warn("UpsertSchedule: invalid working range staff=%d: %v", req.StaffID, err)
			return nil, err
		}

		schedule.StartTime = start
		schedule.EndTime = end

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

			// Перерыв обязан лежать внутри рабочего интервала
			if err := timerange.ValidateNested(start, end, breakStart, breakEnd); err != nil {
				s.logger.Warn("UpsertSchedule: invalid break range staff=%d: %v", req.StaffID, err)
				return nil, err
			}

			schedule.BreakStartTime = &breakStart
			schedule.BreakEndTime = &breakEnd
		}
	}

	created, err := s.staffRepo.UpsertSchedule(ctx, schedule)
	if err != nil {
		s.logger.Error("UpsertSchedule: repository error staff=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: UpsertSchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpsertSchedule: schedule updated staff=%d weekday=%s working=%v",
		req.StaffID, req.Weekday, req.IsWorkingDay)
	return created, nil
}

// CreateLeave создает отпуск мастера
// Для неполного дня интервал отсутствия проходит ту же проверку диапазона
func (s *Service) CreateLeave(ctx context.Context, req *CreateLeaveRequest) (*domain.StaffLeave, error) {
	if err := s.checkStaff(ctx, req.TenantID, req.StaffID, "CreateLeave"); err != nil {
		return nil, err
	}

	if req.LeaveDate.IsZero() {
		return nil, fmt.Errorf("%w: leave date is required", ErrInvalidInput)
	}

	leave := &domain.StaffLeave{
		TenantID:   req.TenantID,
		StaffID:    req.StaffID,
		LeaveDate:  req.LeaveDate,
		IsFullDay:  req.IsFullDay,
		IsApproved: req.IsApproved,
	}

	if !req.IsFullDay {
		start, err := types.NewTimeStringFromString(req.StartTime)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
		}
		end, err := types.NewTimeStringFromString(req.EndTime)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid end time: %v", ErrInvalidInput, err)
		}

		if err := timerange.Validate(start, end); err != nil {
			s.logger.Warn("CreateLeave: invalid leave range staff=%d: %v", req.StaffID, err)
			return nil, err
		}

		leave.StartTime = start
		leave.EndTime = end
	}

	created, err := s.staffRepo.CreateLeave(ctx, leave)
	if err != nil {
		s.logger.Error("CreateLeave: repository error staff=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: CreateLeave - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateLeave: leave created staff=%d date=%s full_day=%v",
		req.StaffID, req.LeaveDate.Format(domain.DateFormat), req.IsFullDay)
	return created, nil
}

func (s *Service) checkStaff(ctx context.Context, tenantID, staffID int64, method string) error {
	if _, err := s.staffRepo.GetByID(ctx, tenantID, staffID); err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			s.logger.Warn("%s: staff=%d not found in tenant=%d", method, staffID, tenantID)
			return ErrStaffNotFound
		}
		s.logger.Error("%s: failed to get staff=%d: %v", method, staffID, err)
		return fmt.Errorf("%w: %s - failed to get staff: %v", ErrInternal, method, err)
	}
	return nil
}
