package domain

import (
	"time"

	"github.com/lumiplatform/LUMI-SchedulingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
	StatusNoShow    BookingStatus = "no_show"
)

// transitions таблица допустимых переходов статусов
// Единственное место, где описан жизненный цикл бронирования:
// все мутирующие операции сверяются с ней перед изменением статуса
var transitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled, StatusNoShow},
	StatusCompleted: {},
	StatusCancelled: {},
	StatusNoShow:    {},
}

// CanTransitionTo returns true if the transition from s to target is legal
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsTerminal returns true if no further transition is legal from s
func (s BookingStatus) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// IsValid returns true if s is a known booking status
func (s BookingStatus) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

// Booking represents one appointment request or commitment.
// A PENDING booking is a non-binding hold: it never occupies a slot.
// Only CONFIRMED bookings participate in conflict detection.
type Booking struct {
	ID            int64
	TenantID      int64
	CustomerID    int64
	ServiceItemID int64
	// StaffID is nil only while the booking is PENDING; confirmation
	// always resolves it (either the requested staff or an auto-assigned one)
	StaffID *int64

	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          BookingStatus

	// Denormalized data for history
	ServiceItemName string
	StaffName       *string

	CustomerNote *string
	StoreNote    *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EndTime returns the derived end of the booking interval.
// It is never stored independently: end = start + service duration.
func (b *Booking) EndTime() (types.TimeString, error) {
	return b.StartTime.AddMinutes(b.DurationMinutes)
}

// Interval returns the half-open [start, end) interval of the booking
func (b *Booking) Interval() (Interval, error) {
	end, err := b.EndTime()
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: b.StartTime, End: end}, nil
}

// IsTerminal returns true if the booking reached a terminal status
func (b *Booking) IsTerminal() bool {
	return b.Status.IsTerminal()
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status.CanTransitionTo(StatusCancelled)
}

// CanBeUpdated returns true if the booking fields can still be mutated
func (b *Booking) CanBeUpdated() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// OccupiesSlot returns true if the booking holds its slot for conflict checks.
// A pending hold never occupies, cancelled never occupied, and
// completed/no-show occupy an interval that has already passed.
func (b *Booking) OccupiesSlot() bool {
	return b.Status == StatusConfirmed
}

// BookingsFilter фильтр для выборки бронирований арендатора
type BookingsFilter struct {
	TenantID         int64          // Обязательный параметр - граница изоляции
	CustomerID       *int64         // Фильтр по клиенту (опционально)
	StaffID          *int64         // Фильтр по мастеру (опционально)
	StartDate        *time.Time     // Начало периода (опционально)
	EndDate          *time.Time     // Конец периода (опционально)
	Status           *BookingStatus // Фильтр по статусу (опционально)
	IncludeCancelled bool           // Включать ли отмененные бронирования
}
