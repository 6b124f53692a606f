package tenantconfig

import "errors"

var (
	// ErrBusinessHoursNotFound возвращается, когда часы работы арендатора не заданы
	ErrBusinessHoursNotFound = errors.New("tenantconfig.repository: business hours not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("tenantconfig.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("tenantconfig.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("tenantconfig.repository: failed to scan row")
)
