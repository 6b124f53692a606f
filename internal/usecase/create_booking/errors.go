package create_booking

import "errors"

var (
	// ErrCustomerNotFound возвращается, когда клиент не найден в рамках арендатора
	ErrCustomerNotFound = errors.New("create_booking: customer not found")

	// ErrServiceItemNotFound возвращается, когда услуга не найдена в рамках арендатора
	ErrServiceItemNotFound = errors.New("create_booking: service item not found")

	// ErrStaffNotFound возвращается, когда запрошенный мастер не найден в рамках арендатора
	ErrStaffNotFound = errors.New("create_booking: staff not found")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
