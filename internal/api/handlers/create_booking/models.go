package create_booking

import (
	"time"

	"github.com/lumiplatform/LUMI-SchedulingService/internal/domain"
	createBooking "github.com/lumiplatform/LUMI-SchedulingService/internal/usecase/create_booking"
	"github.com/lumiplatform/LUMI-SchedulingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CustomerID    int64   `json:"customerId"`
	ServiceItemID int64   `json:"serviceItemId"`
	StaffID       *int64  `json:"staffId,omitempty"`
	BookingDate   string  `json:"bookingDate"` // "2025-10-15"
	StartTime     string  `json:"startTime"`   // "10:00"
	CustomerNote  *string `json:"customerNote,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(tenantID int64) (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		TenantID:      tenantID,
		CustomerID:    r.CustomerID,
		ServiceItemID: r.ServiceItemID,
		StaffID:       r.StaffID,
		Date:          bookingDate,
		StartTime:     startTime,
		CustomerNote:  r.CustomerNote,
	}, nil
}
