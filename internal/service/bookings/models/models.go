package models

import (
	"errors"
	"time"

	"github.com/lumiplatform/LUMI-SchedulingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Внешние имена статусов
// Наружу pending отдается как PENDING_CONFIRMATION
const (
	ExternalStatusPendingConfirmation = "PENDING_CONFIRMATION"
	ExternalStatusConfirmed           = "CONFIRMED"
	ExternalStatusCompleted           = "COMPLETED"
	ExternalStatusCancelled           = "CANCELLED"
	ExternalStatusNoShow              = "NO_SHOW"
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	Reason *string `json:"reason,omitempty"`
}

// ListBookingsRequest запрос на получение бронирований арендатора
type ListBookingsRequest struct {
	TenantID         int64
	CustomerID       *int64
	StaffID          *int64
	StartDate        *time.Time
	EndDate          *time.Time
	Status           *string
	IncludeCancelled bool
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		TenantID:         r.TenantID,
		CustomerID:       r.CustomerID,
		StaffID:          r.StaffID,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		IncludeCancelled: r.IncludeCancelled,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// CalendarRequest запрос календаря бронирований за период
type CalendarRequest struct {
	TenantID  int64
	StartDate time.Time
	EndDate   time.Time
	StaffID   *int64
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              int64  `json:"id"`
	TenantID        int64  `json:"tenantId"`
	CustomerID      int64  `json:"customerId"`
	ServiceItemID   int64  `json:"serviceItemId"`
	StaffID         *int64 `json:"staffId,omitempty"`
	BookingDate     string `json:"bookingDate"` // "2025-10-15"
	StartTime       string `json:"startTime"`   // "10:00"
	EndTime         string `json:"endTime"`     // "11:00", всегда производное
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`

	// Денормализованные данные
	ServiceItemName string  `json:"serviceItemName"`
	StaffName       *string `json:"staffName,omitempty"`

	CustomerNote *string `json:"customerNote,omitempty"`
	StoreNote    *string `json:"storeNote,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// CalendarEvent бронирование в виде события календаря
type CalendarEvent struct {
	BookingID int64   `json:"bookingId"`
	Title     string  `json:"title"`
	Date      string  `json:"date"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Status    string  `json:"status"`
	StaffID   *int64  `json:"staffId,omitempty"`
	StaffName *string `json:"staffName,omitempty"`
}

// CalendarResponse ответ календарного запроса
type CalendarResponse struct {
	Events []CalendarEvent `json:"events"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		TenantID:           b.TenantID,
		CustomerID:         b.CustomerID,
		ServiceItemID:      b.ServiceItemID,
		StaffID:            b.StaffID,
		BookingDate:        b.BookingDate.Format(domain.DateFormat),
		StartTime:          b.StartTime.String(),
		DurationMinutes:    b.DurationMinutes,
		Status:             FromDomainStatus(b.Status),
		ServiceItemName:    b.ServiceItemName,
		StaffName:          b.StaffName,
		CustomerNote:       b.CustomerNote,
		StoreNote:          b.StoreNote,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if end, err := b.EndTime(); err == nil {
		resp.EndTime = end.String()
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// FromDomainStatus конвертирует внутренний статус во внешнее имя
func FromDomainStatus(status domain.BookingStatus) string {
	switch status {
	case domain.StatusPending:
		return ExternalStatusPendingConfirmation
	case domain.StatusConfirmed:
		return ExternalStatusConfirmed
	case domain.StatusCompleted:
		return ExternalStatusCompleted
	case domain.StatusCancelled:
		return ExternalStatusCancelled
	case domain.StatusNoShow:
		return ExternalStatusNoShow
	default:
		return string(status)
	}
}

// ToDomainBookingStatus конвертирует внешнее имя статуса во внутреннее с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	switch status {
	case ExternalStatusPendingConfirmation:
		return domain.StatusPending, nil
	case ExternalStatusConfirmed:
		return domain.StatusConfirmed, nil
	case ExternalStatusCompleted:
		return domain.StatusCompleted, nil
	case ExternalStatusCancelled:
		return domain.StatusCancelled, nil
	case ExternalStatusNoShow:
		return domain.StatusNoShow, nil
	default:
		return "", ErrInvalidStatus
	}
}
