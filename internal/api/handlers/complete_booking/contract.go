package complete_booking

import (
	"context"

	"github.com/lumiplatform/LUMI-SchedulingService/internal/service/bookings/models"
)

type BookingService interface {
	Complete(ctx context.Context, tenantID, id int64) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
