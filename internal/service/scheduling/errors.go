package scheduling

import "errors"

var (
	// ErrNoStaffAvailable возвращается, когда ни один доступный мастер
	// не может выполнить бронирование без конфликта
	ErrNoStaffAvailable = errors.New("scheduling: no staff available for the requested slot")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("scheduling: internal error")
)
