package tenantconfig

import "errors"

var (
	// ErrBusinessHoursNotFound возвращается, когда часы работы не заданы
	ErrBusinessHoursNotFound = errors.New("tenantconfig: business hours not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("tenantconfig: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("tenantconfig: internal error")
)
