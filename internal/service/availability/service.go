package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lumiplatform/LUMI-SchedulingService/internal/domain"
	staffRepo "github.com/lumiplatform/LUMI-SchedulingService/internal/infra/storage/staff"
)

// Service индекс доступности мастеров
// Вычисляет эффективные рабочие интервалы мастера на дату:
// рабочий интервал дня недели минус перерыв минус согласованные отпуска
type Service struct {
	staffRepo StaffRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(staffRepo StaffRepository, logger Logger) *Service {
	return &Service{
		staffRepo: staffRepo,
		logger:    logger,
	}
}

// IntervalsFor возвращает доступные интервалы мастера на дату
// Пустой результат означает, что мастер в этот день не принимает вообще:
// нерабочий день, нет расписания или отпуск на весь день
func (s *Service) IntervalsFor(ctx context.Context, tenantID, staffID int64, date time.Time) ([]domain.Interval, error) {
	schedule, err := s.staffRepo.GetSchedule(ctx, tenantID, staffID, date.Weekday())
	if err != nil {
		if errors.Is(err, staffRepo.ErrScheduleNotFound) {
			return []domain.Interval{}, nil
		}
		s.logger.Error("IntervalsFor: failed to get schedule staff=%d weekday=%s: %v", staffID, date.Weekday(), err)
		return nil, fmt.Errorf("%w: IntervalsFor - failed to get schedule: %v", ErrInternal, err)
	}

	if !schedule.IsWorkingDay {
		return []domain.Interval{}, nil
	}

	intervals := []domain.Interval{schedule.WorkingInterval()}

	if schedule.HasBreak() {
		breakInterval := domain.Interval{Start: *schedule.BreakStartTime, End: *schedule.BreakEndTime}
		intervals = subtractFromAll(intervals, breakInterval)
	}

	leaves, err := s.staffRepo.GetApprovedLeaves(ctx, tenantID, staffID, date)
	if err != nil {
		s.logger.Error("IntervalsFor: failed to get leaves staff=%d date=%s: %v",
			staffID, date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: IntervalsFor - failed to get leaves: %v", ErrInternal, err)
	}

	for _, leave := range leaves {
		if leave.IsFullDay {
			return []domain.Interval{}, nil
		}
		intervals = subtractFromAll(intervals, domain.Interval{Start: leave.StartTime, End: leave.EndTime})
	}

	return intervals, nil
}

// Covers проверяет, что запрошенный интервал целиком лежит в одном из
// доступных интервалов мастера на дату
// Мастер без расписания на этот день никогда не покрывает интервал,
// независимо от наличия конфликтующих бронирований
func (s *Service) Covers(ctx context.Context, tenantID, staffID int64, date time.Time, interval domain.Interval) (bool, error) {
	intervals, err := s.IntervalsFor(ctx, tenantID, staffID, date)
	if err != nil {
		return false, err
	}

	for _, available := range intervals {
		if available.Contains(interval) {
			return true, nil
		}
	}
	return false, nil
}

// subtractFromAll вырезает sub из каждого интервала списка
func subtractFromAll(intervals []domain.Interval, sub domain.Interval) []domain.Interval {
	result := make([]domain.Interval, 0, len(intervals))
	for _, interval := range intervals {
		result = append(result, interval.Subtract(sub)...)
	}
	return result
}
