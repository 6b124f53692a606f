package confirm_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("confirm_booking: booking not found")

	// ErrTenantMismatch возвращается при попытке подтвердить бронирование чужого арендатора
	ErrTenantMismatch = errors.New("confirm_booking: booking belongs to another tenant")

	// ErrInvalidStateTransition возвращается при подтверждении не-pending бронирования
	// Повторное подтверждение - это ошибка, не no-op
	ErrInvalidStateTransition = errors.New("confirm_booking: booking is not pending")

	// ErrStaffNotFound возвращается, когда запрошенный мастер не найден в рамках арендатора
	ErrStaffNotFound = errors.New("confirm_booking: staff not found")

	// ErrSlotConflict возвращается, когда слот пересекается с подтвержденным бронированием
	// Бронирование остается pending и может быть подтверждено с другим временем или мастером
	ErrSlotConflict = errors.New("confirm_booking: slot conflicts with a confirmed booking")

	// ErrNoStaffAvailable возвращается, когда автоназначение не нашло свободного мастера
	ErrNoStaffAvailable = errors.New("confirm_booking: no staff available for the slot")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_booking: internal error")
)
