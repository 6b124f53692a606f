package promotions

import "errors"

var (
	// ErrDuplicateCouponCode возвращается при создании купона с занятым кодом
	ErrDuplicateCouponCode = errors.New("promotions: coupon code already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("promotions: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("promotions: internal error")
)
