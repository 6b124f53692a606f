package update_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/lumiplatform/LUMI-SchedulingService/internal/domain"
	bookingRepo "github.com/lumiplatform/LUMI-SchedulingService/internal/infra/storage/booking"
	staffRepo "github.com/lumiplatform/LUMI-SchedulingService/internal/infra/storage/staff"
	"github.com/lumiplatform/LUMI-SchedulingService/internal/service/bookings/models"
	"github.com/lumiplatform/LUMI-SchedulingService/pkg/ptr"
)

// UseCase use case изменения бронирования
//
// Изменять можно заметки, мастера, дату и время, пока бронирование
// не терминально. Для pending изменение свободное - заявка слот не занимает.
// Для confirmed изменение даты, времени или мастера повторяет проверку
// конфликтов как при подтверждении, в той же транзакционной рамке
type UseCase struct {
	bookingRepo  BookingRepository
	staffRepo    StaffRepository
	conflicts    ConflictChecker
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	staffRepo StaffRepository,
	conflicts ConflictChecker,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		staffRepo:    staffRepo,
		conflicts:    conflicts,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case изменения бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.BookingResponse, error) {
	uc.logger.Info("UpdateBooking: tenant=%d, booking=%d", req.TenantID, req.BookingID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Загружаем бронирование и проверяем принадлежность арендатору
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("UpdateBooking: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("UpdateBooking: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if booking.TenantID != req.TenantID {
		uc.logger.Warn("UpdateBooking: tenant=%d attempted to update booking id=%d of tenant=%d",
			req.TenantID, req.BookingID, booking.TenantID)
		return nil, ErrTenantMismatch
	}

	// 3. Терминальные бронирования неизменяемы
	if !booking.CanBeUpdated() {
		uc.logger.Warn("UpdateBooking: booking id=%d is immutable, status=%s", req.BookingID, booking.Status)
		return nil, ErrInvalidStateTransition
	}

	// 4. Применяем изменения к копии
	updated := *booking

	if req.CustomerNote != nil {
		updated.CustomerNote = req.CustomerNote
	}
	if req.StoreNote != nil {
		updated.StoreNote = req.StoreNote
	}
	if req.Date != nil {
		if err := validateDate(*req.Date, uc.timeProvider.Now()); err != nil {
			uc.logger.Warn("UpdateBooking: date validation failed: %v", err)
			return nil, err
		}
		updated.BookingDate = *req.Date
	}
	if req.StartTime != nil {
		updated.StartTime = *req.StartTime
	}
	if req.StaffID != nil {
		staff, err := uc.staffRepo.GetByID(ctx, req.TenantID, *req.StaffID)
		if err != nil {
			if errors.Is(err, staffRepo.ErrStaffNotFound) {
				uc.logger.Warn("UpdateBooking: staff id=%d not found in tenant=%d", *req.StaffID, req.TenantID)
				return nil, ErrStaffNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get staff id=%d: %v", *req.StaffID, err)
			return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
		}
		updated.StaffID = ptr.Ptr(staff.ID)
		updated.StaffName = ptr.Ptr(staff.DisplayName)
	}

	// Новый интервал не должен выходить за границу суток
	interval, err := updated.Interval()
	if err != nil {
		uc.logger.Warn("UpdateBooking: slot runs past midnight: %v", err)
		return nil, fmt.Errorf("%w: slot runs past midnight: %v", ErrInvalidInput, err)
	}

	// 5. Для confirmed изменение слота повторяет confirm-проверку:
	// само бронирование исключается из кандидатов, иначе оно конфликтовало
	// бы с собственной строкой
	if booking.Status == domain.StatusConfirmed && req.touchesSlot() {
		err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
			hasConflict, err := uc.conflicts.HasConflict(
				txCtx, req.TenantID, *updated.StaffID, updated.BookingDate, interval, booking.ID)
			if err != nil {
				return fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
			}
			if hasConflict {
				return ErrSlotConflict
			}

			if err := uc.bookingRepo.Update(txCtx, &updated); err != nil {
				return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
			}

			return nil
		})
		if err != nil {
			if errors.Is(err, ErrSlotConflict) {
				uc.logger.Warn("UpdateBooking: booking id=%d slot conflict, update rejected", req.BookingID)
			}
			return nil, err
		}
	} else {
		// Заявка слот не занимает, конфликтов быть не может
		if err := uc.bookingRepo.Update(ctx, &updated); err != nil {
			uc.logger.Error("UpdateBooking: failed to update booking id=%d: %v", req.BookingID, err)
			return nil, fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("UpdateBooking: booking id=%d updated", req.BookingID)

	// Перечитываем, чтобы вернуть зафиксированное состояние
	reloaded, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to reload booking: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(reloaded), nil
}
