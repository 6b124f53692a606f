package update_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrTenantMismatch возвращается при попытке изменить бронирование чужого арендатора
	ErrTenantMismatch = errors.New("update_booking: booking belongs to another tenant")

	// ErrInvalidStateTransition возвращается при изменении терминального бронирования
	ErrInvalidStateTransition = errors.New("update_booking: booking is in a terminal status")

	// ErrStaffNotFound возвращается, когда новый мастер не найден в рамках арендатора
	ErrStaffNotFound = errors.New("update_booking: staff not found")

	// ErrSlotConflict возвращается, когда новый слот пересекается
	// с подтвержденным бронированием
	ErrSlotConflict = errors.New("update_booking: slot conflicts with a confirmed booking")

	// ErrInvalidDate возвращается при некорректной новой дате бронирования
	ErrInvalidDate = errors.New("update_booking: invalid booking date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
)
