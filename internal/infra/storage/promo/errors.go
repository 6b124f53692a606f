package promo

import "errors"

var (
	// ErrDuplicateCouponCode возвращается при создании купона с занятым кодом
	ErrDuplicateCouponCode = errors.New("promo.repository: coupon code already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("promo.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("promo.repository: failed to execute query")
)
