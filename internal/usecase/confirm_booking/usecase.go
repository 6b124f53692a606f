package confirm_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lumiplatform/LUMI-SchedulingService/internal/domain"
	"github.com/lumiplatform/LUMI-SchedulingService/internal/infra/events"
	bookingRepo "github.com/lumiplatform/LUMI-SchedulingService/internal/infra/storage/booking"
	staffRepo "github.com/lumiplatform/LUMI-SchedulingService/internal/infra/storage/staff"
	directoryClient "github.com/lumiplatform/LUMI-SchedulingService/internal/integrations/directoryservice"
	"github.com/lumiplatform/LUMI-SchedulingService/internal/service/bookings/models"
	"github.com/lumiplatform/LUMI-SchedulingService/internal/service/scheduling"
)

// UseCase use case подтверждения бронирования
//
// Единственная точка, где ресурсы действительно фиксируются: до confirm
// бронирование - необязывающая заявка. Проверка конфликтов и переход
// в confirmed выполняются в сериализуемой транзакции, выборка подтвержденных
// бронирований мастера внутри нее идет с FOR UPDATE - два конкурентных
// confirm на пересекающийся интервал не пройдут оба
type UseCase struct {
	bookingRepo BookingRepository
	staffRepo   StaffRepository
	directory   DirectoryClient
	conflicts   ConflictChecker
	assigner    StaffAssigner
	txManager   TransactionManager
	publisher   EventPublisher
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	staffRepo StaffRepository,
	directory DirectoryClient,
	conflicts ConflictChecker,
	assigner StaffAssigner,
	txManager TransactionManager,
	publisher EventPublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		staffRepo:   staffRepo,
		directory:   directory,
		conflicts:   conflicts,
		assigner:    assigner,
		txManager:   txManager,
		publisher:   publisher,
		logger:      logger,
	}
}

// Execute выполняет use case подтверждения бронирования
func (uc *UseCase) Execute(ctx context.Context, tenantID, bookingID int64) (*models.BookingResponse, error) {
	uc.logger.Info("ConfirmBooking: tenant=%d, booking=%d", tenantID, bookingID)

	// 1. Загружаем бронирование и проверяем принадлежность арендатору
	booking, err := uc.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("ConfirmBooking: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("ConfirmBooking: failed to get booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if booking.TenantID != tenantID {
		uc.logger.Warn("ConfirmBooking: tenant=%d attempted to confirm booking id=%d of tenant=%d",
			tenantID, bookingID, booking.TenantID)
		return nil, ErrTenantMismatch
	}

	// 2. Подтверждать можно только pending
	if booking.Status != domain.StatusPending {
		uc.logger.Warn("ConfirmBooking: booking id=%d is not pending, status=%s", bookingID, booking.Status)
		return nil, ErrInvalidStateTransition
	}

	interval, err := booking.Interval()
	if err != nil {
		uc.logger.Error("ConfirmBooking: booking id=%d has invalid interval: %v", bookingID, err)
		return nil, fmt.Errorf("%w: invalid booking interval: %v", ErrInternal, err)
	}

	// 3. Для автоназначения нужна категория услуги из каталога
	var serviceCategory string
	if booking.StaffID == nil {
		serviceItem, err := uc.directory.GetServiceItem(ctx, tenantID, booking.ServiceItemID)
		if err != nil && !errors.Is(err, directoryClient.ErrServiceItemNotFound) {
			uc.logger.Error("ConfirmBooking: failed to get service item id=%d: %v", booking.ServiceItemID, err)
			return nil, fmt.Errorf("%w: failed to get service item: %v", ErrInternal, err)
		}
		// Услуга могла быть удалена из каталога после создания заявки:
		// тогда назначаем без учета категории
		if serviceItem != nil {
			serviceCategory = serviceItem.Category
		}
	}

	var assignedStaffID int64
	var assignedStaffName string

	// 4. Проверка конфликтов и переход в confirmed - неделимый шаг
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if booking.StaffID == nil {
			// 4.1. Мастер не выбран - подбираем первого свободного
			// Assign уже включает проверку конфликтов для кандидата
			staff, err := uc.assigner.Assign(txCtx, tenantID, booking.BookingDate, interval, serviceCategory)
			if err != nil {
				if errors.Is(err, scheduling.ErrNoStaffAvailable) {
					return ErrNoStaffAvailable
				}
				return fmt.Errorf("%w: auto-assignment failed: %v", ErrInternal, err)
			}
			assignedStaffID = staff.ID
			assignedStaffName = staff.DisplayName
		} else {
			// 4.2. Мастер запрошен явно - проверяем его существование и конфликты
			staff, err := uc.staffRepo.GetByID(txCtx, tenantID, *booking.StaffID)
			if err != nil {
				if errors.Is(err, staffRepo.ErrStaffNotFound) {
					return ErrStaffNotFound
				}
				return fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
			}

			hasConflict, err := uc.conflicts.HasConflict(txCtx, tenantID, staff.ID, booking.BookingDate, interval, 0)
			if err != nil {
				return fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
			}
			if hasConflict {
				return ErrSlotConflict
			}

			assignedStaffID = staff.ID
			assignedStaffName = staff.DisplayName
		}

		// 4.3. Переход pending -> confirmed с фиксацией мастера
		// Предусловие status = pending в самом UPDATE перехватывает
		// конкурентный уход статуса
		if err := uc.bookingRepo.Confirm(txCtx, bookingID, assignedStaffID, assignedStaffName); err != nil {
			if errors.Is(err, bookingRepo.ErrStatusPrecondition) {
				return ErrInvalidStateTransition
			}
			return fmt.Errorf("%w: failed to confirm booking: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotConflict) || errors.Is(err, ErrNoStaffAvailable) {
			uc.logger.Warn("ConfirmBooking: booking id=%d remains pending: %v", bookingID, err)
		}
		return nil, err
	}

	uc.publisher.PublishTransition(ctx, events.TransitionEvent{
		BookingID:  bookingID,
		TenantID:   tenantID,
		OldStatus:  domain.StatusPending,
		NewStatus:  domain.StatusConfirmed,
		OccurredAt: time.Now().UTC(),
	})

	uc.logger.Info("ConfirmBooking: booking id=%d confirmed, staff=%d (%s)",
		bookingID, assignedStaffID, assignedStaffName)

	// Перечитываем, чтобы вернуть зафиксированное состояние
	confirmed, err := uc.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to reload booking: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(confirmed), nil
}
