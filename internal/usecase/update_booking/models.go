package update_booking

import (
	"time"

	"github.com/lumiplatform/LUMI-SchedulingService/pkg/types"
)

// Request модель запроса на изменение бронирования
// nil поле означает "не менять"
type Request struct {
	TenantID  int64
	BookingID int64

	StaffID      *int64            // Новый мастер
	Date         *time.Time        // Новая дата
	StartTime    *types.TimeString // Новое время начала
	CustomerNote *string           // Новая заметка клиента
	StoreNote    *string           // Новая заметка салона
}

// touchesSlot сообщает, меняет ли запрос занимаемый интервал
// (дату, время или мастера)
func (r *Request) touchesSlot() bool {
	return r.StaffID != nil || r.Date != nil || r.StartTime != nil
}

// isEmpty сообщает, что менять нечего
func (r *Request) isEmpty() bool {
	return r.StaffID == nil && r.Date == nil && r.StartTime == nil &&
		r.CustomerNote == nil && r.StoreNote == nil
}
