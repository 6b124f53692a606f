package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/lumiplatform/LUMI-SchedulingService/internal/domain"
)

// AutoAssigner подбирает мастера для бронирования без указанного мастера
//
// Порядок перебора - по возрастанию ID мастера (порядок регистрации).
// Порядок детерминированный: при одинаковом состоянии два вызова выберут
// одного и того же мастера
type AutoAssigner struct {
	staffRepo    StaffRepository
	availability AvailabilityIndex
	conflicts    *ConflictChecker
	logger       Logger
}

// NewAutoAssigner создает новый экземпляр автоназначения
func NewAutoAssigner(
	staffRepo StaffRepository,
	availability AvailabilityIndex,
	conflicts *ConflictChecker,
	logger Logger,
) *AutoAssigner {
	return &AutoAssigner{
		staffRepo:    staffRepo,
		availability: availability,
		conflicts:    conflicts,
		logger:       logger,
	}
}

// Assign выбирает первого мастера, который:
//  1. доступен для записи (is_bookable)
//  2. выполняет услуги нужной категории
//  3. работает в запрошенный интервал (по расписанию и отпускам)
//  4. не имеет пересечений с подтвержденными бронированиями
//
// Частичного результата нет: либо найден мастер без конфликта,
// либо ErrNoStaffAvailable
func (a *AutoAssigner) Assign(
	ctx context.Context,
	tenantID int64,
	date time.Time,
	interval domain.Interval,
	serviceCategory string,
) (*domain.Staff, error) {
	roster, err := a.staffRepo.ListBookable(ctx, tenantID)
	if err != nil {
		a.logger.Error("Assign: failed to list bookable staff tenant=%d: %v", tenantID, err)
		return nil, fmt.Errorf("%w: Assign - failed to list bookable staff: %v", ErrInternal, err)
	}

	if len(roster) == 0 {
		a.logger.Warn("Assign: tenant=%d has no bookable staff", tenantID)
		return nil, ErrNoStaffAvailable
	}

	for _, candidate := range roster {
		if !candidate.CanPerform(serviceCategory) {
			continue
		}

		covers, err := a.availability.Covers(ctx, tenantID, candidate.ID, date, interval)
		if err != nil {
			return nil, err
		}
		if !covers {
			continue
		}

		hasConflict, err := a.conflicts.HasConflict(ctx, tenantID, candidate.ID, date, interval, 0)
		if err != nil {
			return nil, err
		}
		if hasConflict {
			continue
		}

		a.logger.Info("Assign: selected staff=%d (%s) for tenant=%d date=%s slot=[%s, %s)",
			candidate.ID, candidate.DisplayName, tenantID,
			date.Format(domain.DateFormat), interval.Start, interval.End)
		return candidate, nil
	}

	a.logger.Warn("Assign: no conflict-free staff for tenant=%d date=%s slot=[%s, %s)",
		tenantID, date.Format(domain.DateFormat), interval.Start, interval.End)
	return nil, ErrNoStaffAvailable
}
