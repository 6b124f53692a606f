package directoryservice

import "errors"

var (
	// ErrCustomerNotFound возвращается, когда клиент не найден в рамках арендатора
	ErrCustomerNotFound = errors.New("directoryservice: customer not found")

	// ErrServiceItemNotFound возвращается, когда услуга не найдена в рамках арендатора
	ErrServiceItemNotFound = errors.New("directoryservice: service item not found")

	// ErrInvalidResponse возвращается при некорректном ответе сервиса
	ErrInvalidResponse = errors.New("directoryservice: invalid response")

	// ErrInternal возвращается при инфраструктурных ошибках клиента
	ErrInternal = errors.New("directoryservice: internal error")
)
