package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lumiplatform/LUMI-SchedulingService/internal/domain"
	"github.com/lumiplatform/LUMI-SchedulingService/internal/infra/events"
	bookingRepo "github.com/lumiplatform/LUMI-SchedulingService/internal/infra/storage/booking"
	"github.com/lumiplatform/LUMI-SchedulingService/internal/service/bookings/models"
)

// Service сервис чтения бронирований и терминальных переходов статусов
// (отмена, завершение, неявка)
//
// Переходы здесь оптимистичные: статус-предусловие проверяется в самом
// UPDATE, и если статус уже ушел из ожидаемого, операция отклоняется
// без блокировок
type Service struct {
	bookingRepo BookingRepository
	publisher   EventPublisher
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	publisher EventPublisher,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID в рамках арендатора
func (s *Service) GetByID(ctx context.Context, tenantID, id int64) (*models.BookingResponse, error) {
	booking, err := s.loadScoped(ctx, tenantID, id, "GetByID")
	if err != nil {
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// List получает бронирования арендатора с фильтрацией
// по клиенту, мастеру, периоду и статусу
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter for tenant=%d: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: invalid status filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for tenant=%d: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings for tenant=%d", len(bookings), req.TenantID)
	return models.FromDomainBookingList(bookings), nil
}

// Calendar получает все неотмененные бронирования арендатора за период
// в виде событий календаря
func (s *Service) Calendar(ctx context.Context, req *models.CalendarRequest) (*models.CalendarResponse, error) {
	if req.EndDate.Before(req.StartDate) {
		return nil, fmt.Errorf("%w: calendar period end before start", ErrInvalidInput)
	}

	filter := domain.BookingsFilter{
		TenantID:         req.TenantID,
		StaffID:          req.StaffID,
		StartDate:        &req.StartDate,
		EndDate:          &req.EndDate,
		IncludeCancelled: false,
	}

	bookings, err := s.bookingRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("Calendar: repository error for tenant=%d: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: Calendar - repository error: %v", ErrInternal, err)
	}

	resp := &models.CalendarResponse{Events: make([]models.CalendarEvent, 0, len(bookings))}
	for _, b := range bookings {
		event := models.CalendarEvent{
			BookingID: b.ID,
			Title:     b.ServiceItemName,
			Date:      b.BookingDate.Format(domain.DateFormat),
			StartTime: b.StartTime.String(),
			Status:    models.FromDomainStatus(b.Status),
			StaffID:   b.StaffID,
			StaffName: b.StaffName,
		}
		if end, err := b.EndTime(); err == nil {
			event.EndTime = end.String()
		}
		resp.Events = append(resp.Events, event)
	}

	return resp, nil
}

// Cancel отменяет бронирование
// Допустимо только из pending или confirmed; отмена confirmed бронирования
// немедленно освобождает его интервал для последующих подтверждений -
// отдельного шага "release" нет, достаточно отсутствия confirmed строки
func (s *Service) Cancel(ctx context.Context, tenantID, id int64, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	if req.Reason != nil && len(*req.Reason) > domain.MaxCancellationReasonLength {
		return nil, fmt.Errorf("%w: cancellation reason exceeds %d characters",
			ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	booking, err := s.loadScoped(ctx, tenantID, id, "Cancel")
	if err != nil {
		return nil, err
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", id, booking.Status)
		return nil, ErrInvalidStateTransition
	}

	oldStatus := booking.Status

	if err := s.bookingRepo.Cancel(ctx, id, req.Reason); err != nil {
		if errors.Is(err, bookingRepo.ErrStatusPrecondition) {
			// Статус успел измениться между чтением и обновлением
			s.logger.Warn("Cancel: booking id=%d status moved concurrently", id)
			return nil, ErrInvalidStateTransition
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.publisher.PublishTransition(ctx, events.TransitionEvent{
		BookingID:  id,
		TenantID:   tenantID,
		OldStatus:  oldStatus,
		NewStatus:  domain.StatusCancelled,
		OccurredAt: time.Now().UTC(),
	})

	s.logger.Info("Cancel: booking id=%d cancelled (was %s)", id, oldStatus)
	return s.reload(ctx, id)
}

// Complete завершает бронирование
// Допустимо только из confirmed: завершенные бронирования учитываются
// отчетным слоем как выручка, случайный complete из pending испортил бы
// агрегаты
func (s *Service) Complete(ctx context.Context, tenantID, id int64) (*models.BookingResponse, error) {
	return s.transition(ctx, tenantID, id, domain.StatusCompleted, "Complete")
}

// MarkNoShow отмечает неявку клиента
// Допустимо только из confirmed
func (s *Service) MarkNoShow(ctx context.Context, tenantID, id int64) (*models.BookingResponse, error) {
	return s.transition(ctx, tenantID, id, domain.StatusNoShow, "MarkNoShow")
}

// transition выполняет переход статуса с оптимистичным предусловием
func (s *Service) transition(ctx context.Context, tenantID, id int64, target domain.BookingStatus, method string) (*models.BookingResponse, error) {
	booking, err := s.loadScoped(ctx, tenantID, id, method)
	if err != nil {
		return nil, err
	}

	if !booking.Status.CanTransitionTo(target) {
		s.logger.Warn("%s: illegal transition %s -> %s for booking id=%d", method, booking.Status, target, id)
		return nil, ErrInvalidStateTransition
	}

	if err := s.bookingRepo.UpdateStatusFrom(ctx, id, booking.Status, target); err != nil {
		if errors.Is(err, bookingRepo.ErrStatusPrecondition) {
			s.logger.Warn("%s: booking id=%d status moved concurrently", method, id)
			return nil, ErrInvalidStateTransition
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", method, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}

	s.publisher.PublishTransition(ctx, events.TransitionEvent{
		BookingID:  id,
		TenantID:   tenantID,
		OldStatus:  booking.Status,
		NewStatus:  target,
		OccurredAt: time.Now().UTC(),
	})

	s.logger.Info("%s: booking id=%d transitioned %s -> %s", method, id, booking.Status, target)
	return s.reload(ctx, id)
}

// loadScoped загружает бронирование и проверяет принадлежность арендатору
// Чужой арендатор - это ErrTenantMismatch, не ErrBookingNotFound
func (s *Service) loadScoped(ctx context.Context, tenantID, id int64, method string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", method, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", method, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}

	if booking.TenantID != tenantID {
		s.logger.Warn("%s: tenant=%d attempted to access booking id=%d of tenant=%d",
			method, tenantID, id, booking.TenantID)
		return nil, ErrTenantMismatch
	}

	return booking, nil
}

func (s *Service) reload(ctx context.Context, id int64) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to reload booking: %v", ErrInternal, err)
	}
	return models.FromDomainBooking(booking), nil
}
