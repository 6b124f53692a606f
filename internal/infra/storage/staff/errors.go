package staff

import "errors"

var (
	// ErrStaffNotFound возвращается, когда мастер не найден в рамках арендатора
	ErrStaffNotFound = errors.New("staff.repository: staff not found")

	// ErrScheduleNotFound возвращается, когда расписание на день недели не задано
	ErrScheduleNotFound = errors.New("staff.repository: schedule not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("staff.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("staff.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("staff.repository: failed to scan row")
)
