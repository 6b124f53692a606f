package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/lumiplatform/LUMI-SchedulingService/internal/domain"
)

// ConflictChecker проверяет пересечения кандидатного интервала
// с подтвержденными бронированиями мастера
//
// В проверке участвуют только confirmed бронирования:
// pending - это необязывающая заявка и слот не занимает,
// cancelled слот не занимал, completed и no_show занимали уже прошедший
type ConflictChecker struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewConflictChecker создает новый экземпляр проверки конфликтов
func NewConflictChecker(bookingRepo BookingRepository, logger Logger) *ConflictChecker {
	return &ConflictChecker{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// HasConflict проверяет, пересекается ли кандидатный интервал [start, end)
// с каким-либо подтвержденным бронированием мастера на дату
//
// excludeBookingID позволяет исключить из проверки само перепроверяемое
// бронирование (нужно при изменении времени confirmed бронирования);
// 0 означает "ничего не исключать"
func (c *ConflictChecker) HasConflict(
	ctx context.Context,
	tenantID, staffID int64,
	date time.Time,
	interval domain.Interval,
	excludeBookingID int64,
) (bool, error) {
	confirmed, err := c.bookingRepo.GetConfirmedByStaffDate(ctx, tenantID, staffID, date)
	if err != nil {
		c.logger.Error("HasConflict: failed to get confirmed bookings staff=%d date=%s: %v",
			staffID, date.Format(domain.DateFormat), err)
		return false, fmt.Errorf("%w: HasConflict - failed to get confirmed bookings: %v", ErrInternal, err)
	}

	for _, other := range confirmed {
		if other.ID == excludeBookingID {
			continue
		}

		otherInterval, err := other.Interval()
		if err != nil {
			c.logger.Warn("HasConflict: skipping booking id=%d with invalid interval: %v", other.ID, err)
			continue
		}

		// Полуоткрытые интервалы: границы могут соприкасаться без конфликта
		if interval.Overlaps(otherInterval) {
			return true, nil
		}
	}

	return false, nil
}
