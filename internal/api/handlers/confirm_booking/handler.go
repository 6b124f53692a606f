package confirm_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/lumiplatform/LUMI-SchedulingService/internal/api/handlers"
	"github.com/lumiplatform/LUMI-SchedulingService/internal/api/middleware"
	confirmBooking "github.com/lumiplatform/LUMI-SchedulingService/internal/usecase/confirm_booking"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgMissingTenantID  = "отсутствует ID арендатора"
	msgNotFound         = "бронирование не найдено"
	msgForbidden        = "доступ запрещен"
	msgNotPending       = "бронирование не ожидает подтверждения"
	msgStaffNotFound    = "мастер не найден"
	msgSlotConflict     = "слот пересекается с подтвержденным бронированием"
	msgNoStaffAvailable = "нет свободного мастера на выбранное время"
)

type Handler struct {
	useCase ConfirmBookingUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/confirm - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	tenantID, ok := middleware.GetTenantID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/{id}/confirm - Missing tenant ID")
		handlers.RespondUnauthorized(w, msgMissingTenantID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), tenantID, bookingID)
	if err != nil {
		switch {
		case errors.Is(err, confirmBooking.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/confirm - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, confirmBooking.ErrTenantMismatch):
			h.logger.Warn("POST /bookings/{id}/confirm - Tenant mismatch: booking_id=%d, tenant_id=%d",
				bookingID, tenantID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, confirmBooking.ErrInvalidStateTransition):
			h.logger.Warn("POST /bookings/{id}/confirm - Not pending: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgNotPending)

		case errors.Is(err, confirmBooking.ErrStaffNotFound):
			h.logger.Warn("POST /bookings/{id}/confirm - Staff not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, confirmBooking.ErrSlotConflict):
			h.logger.Warn("POST /bookings/{id}/confirm - Slot conflict: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, confirmBooking.ErrNoStaffAvailable):
			h.logger.Warn("POST /bookings/{id}/confirm - No staff available: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgNoStaffAvailable)

		default:
			h.logger.Error("POST /bookings/{id}/confirm - Failed to confirm booking: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/confirm - Booking confirmed successfully: booking_id=%d, tenant_id=%d",
		bookingID, tenantID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
