package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/lumiplatform/LUMI-SchedulingService/internal/domain"
	staffRepo "github.com/lumiplatform/LUMI-SchedulingService/internal/infra/storage/staff"
	directoryClient "github.com/lumiplatform/LUMI-SchedulingService/internal/integrations/directoryservice"
	"github.com/lumiplatform/LUMI-SchedulingService/internal/service/bookings/models"
	"github.com/lumiplatform/LUMI-SchedulingService/pkg/ptr"
)

// UseCase use case создания бронирования
//
// Создание - это необязывающая заявка (pending hold): проверка конфликтов
// здесь не выполняется вообще. Пересечения pending заявок допустимы,
// единственной точкой фиксации ресурсов является confirm
type UseCase struct {
	bookingRepo  BookingRepository
	staffRepo    StaffRepository
	directory    DirectoryClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	staffRepo StaffRepository,
	directory DirectoryClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		staffRepo:    staffRepo,
		directory:    directory,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Транзакция не нужна: заявка не занимает слот и гонок с confirm не создает
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.BookingResponse, error) {
	uc.logger.Info("CreateBooking: tenant=%d, customer=%d, service=%d, date=%s, time=%s",
		req.TenantID, req.CustomerID, req.ServiceItemID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не должна быть в прошлом
	if err := validateDate(req.Date, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 3. Клиент должен существовать в рамках арендатора
	customer, err := uc.directory.GetCustomer(ctx, req.TenantID, req.CustomerID)
	if err != nil {
		if errors.Is(err, directoryClient.ErrCustomerNotFound) {
			uc.logger.Warn("CreateBooking: customer id=%d not found in tenant=%d", req.CustomerID, req.TenantID)
			return nil, ErrCustomerNotFound
		}
		uc.logger.Error("CreateBooking: failed to get customer id=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
	}

	// 4. Услуга определяет длительность бронирования
	serviceItem, err := uc.directory.GetServiceItem(ctx, req.TenantID, req.ServiceItemID)
	if err != nil {
		if errors.Is(err, directoryClient.ErrServiceItemNotFound) {
			uc.logger.Warn("CreateBooking: service item id=%d not found in tenant=%d", req.ServiceItemID, req.TenantID)
			return nil, ErrServiceItemNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service item id=%d: %v", req.ServiceItemID, err)
		return nil, fmt.Errorf("%w: failed to get service item: %v", ErrInternal, err)
	}

	if err := validateDuration(serviceItem.DurationMinutes); err != nil {
		uc.logger.Warn("CreateBooking: service item id=%d has invalid duration: %v", req.ServiceItemID, err)
		return nil, err
	}

	// 5. Конец слота производный: start + длительность услуги
	// Слот не должен выходить за границу суток
	if _, err := req.StartTime.AddMinutes(serviceItem.DurationMinutes); err != nil {
		uc.logger.Warn("CreateBooking: slot runs past midnight: %v", err)
		return nil, fmt.Errorf("%w: slot runs past midnight: %v", ErrInvalidInput, err)
	}

	booking := &domain.Booking{
		TenantID:        req.TenantID,
		CustomerID:      req.CustomerID,
		ServiceItemID:   req.ServiceItemID,
		BookingDate:     req.Date,
		StartTime:       req.StartTime,
		DurationMinutes: serviceItem.DurationMinutes,
		Status:          domain.StatusPending,
		ServiceItemName: serviceItem.Name,
		CustomerNote:    req.CustomerNote,
	}

	// 6. Пожелание по мастеру фиксируется, но на конфликты не проверяется:
	// это задача confirm
	if req.StaffID != nil {
		staff, err := uc.staffRepo.GetByID(ctx, req.TenantID, *req.StaffID)
		if err != nil {
			if errors.Is(err, staffRepo.ErrStaffNotFound) {
				uc.logger.Warn("CreateBooking: staff id=%d not found in tenant=%d", *req.StaffID, req.TenantID)
				return nil, ErrStaffNotFound
			}
			uc.logger.Error("CreateBooking: failed to get staff id=%d: %v", *req.StaffID, err)
			return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
		}

		booking.StaffID = ptr.Ptr(staff.ID)
		booking.StaffName = ptr.Ptr(staff.DisplayName)
	}

	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: created pending booking id=%d for customer=%d (%s)",
		created.ID, customer.ID, customer.DisplayName)

	return models.FromDomainBooking(created), nil
}
