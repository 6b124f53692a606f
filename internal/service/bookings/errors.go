package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrTenantMismatch возвращается при попытке доступа к бронированию чужого арендатора
	// Никогда не маскируется под "не найдено": граница изоляции должна быть явной
	ErrTenantMismatch = errors.New("booking belongs to another tenant")

	// ErrInvalidStateTransition возвращается, когда операция недопустима
	// для текущего статуса бронирования; бронирование остается без изменений
	ErrInvalidStateTransition = errors.New("operation is not allowed for current booking status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings service: internal error")
)
