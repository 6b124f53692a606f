package schedule

import "errors"

var (
	// ErrStaffNotFound возвращается, когда мастер не найден в рамках арендатора
	ErrStaffNotFound = errors.New("schedule: staff not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("schedule: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("schedule: internal error")
)
