package update_booking

import (
	"time"

	"github.com/lumiplatform/LUMI-SchedulingService/internal/domain"
	updateBooking "github.com/lumiplatform/LUMI-SchedulingService/internal/usecase/update_booking"
	"github.com/lumiplatform/LUMI-SchedulingService/pkg/types"
)

// UpdateBookingRequest HTTP request model
// Отсутствующее поле означает "не менять"
type UpdateBookingRequest struct {
	StaffID      *int64  `json:"staffId,omitempty"`
	BookingDate  *string `json:"bookingDate,omitempty"` // "2025-10-15"
	StartTime    *string `json:"startTime,omitempty"`   // "10:00"
	CustomerNote *string `json:"customerNote,omitempty"`
	StoreNote    *string `json:"storeNote,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateBookingRequest) ToUseCaseRequest(tenantID, bookingID int64) (*updateBooking.Request, error) {
	req := &updateBooking.Request{
		TenantID:     tenantID,
		BookingID:    bookingID,
		StaffID:      r.StaffID,
		CustomerNote: r.CustomerNote,
		StoreNote:    r.StoreNote,
	}

	if r.BookingDate != nil {
		date, err := time.Parse(domain.DateFormat, *r.BookingDate)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if r.StartTime != nil {
		startTime, err := types.NewTimeStringFromString(*r.StartTime)
		if err != nil {
			return nil, err
		}
		req.StartTime = &startTime
	}

	return req, nil
}
