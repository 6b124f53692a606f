package confirm_booking

import (
	"context"

	"github.com/lumiplatform/LUMI-SchedulingService/internal/service/bookings/models"
)

type ConfirmBookingUseCase interface {
	Execute(ctx context.Context, tenantID, bookingID int64) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
