package create_booking

import (
	"time"

	"github.com/lumiplatform/LUMI-SchedulingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	TenantID      int64            // ID арендатора (из контекста аутентификации)
	CustomerID    int64            // ID клиента в каталоге
	ServiceItemID int64            // ID услуги в каталоге
	StaffID       *int64           // Пожелание по мастеру (опционально)
	Date          time.Time        // Дата бронирования (без времени)
	StartTime     types.TimeString // Время начала (например, "10:00")
	CustomerNote  *string          // Заметка клиента (опционально)
}
