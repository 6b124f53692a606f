package get_calendar

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/lumiplatform/LUMI-SchedulingService/internal/api/handlers"
	"github.com/lumiplatform/LUMI-SchedulingService/internal/api/middleware"
	"github.com/lumiplatform/LUMI-SchedulingService/internal/domain"
	"github.com/lumiplatform/LUMI-SchedulingService/internal/service/bookings"
	"github.com/lumiplatform/LUMI-SchedulingService/internal/service/bookings/models"
)

const (
	msgMissingTenantID = "отсутствует ID арендатора"
	msgInvalidQuery    = "некорректные параметры периода, ожидается startDate и endDate в формате YYYY-MM-DD"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.GetTenantID(r.Context())
	if !ok {
		h.logger.Warn("GET /calendar - Missing tenant ID")
		handlers.RespondUnauthorized(w, msgMissingTenantID)
		return
	}

	query := r.URL.Query()

	startDate, err := time.Parse(domain.DateFormat, query.Get("startDate"))
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid startDate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	endDate, err := time.Parse(domain.DateFormat, query.Get("endDate"))
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid endDate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	req := &models.CalendarRequest{
		TenantID:  tenantID,
		StartDate: startDate,
		EndDate:   endDate,
	}

	if raw := query.Get("staffId"); raw != "" {
		staffID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /calendar - Invalid staffId: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)
			return
		}
		req.StaffID = &staffID
	}

	result, err := h.service.Calendar(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /calendar - Invalid period: tenant_id=%d, error=%v", tenantID, err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /calendar - Failed to build calendar: tenant_id=%d, error=%v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar - Returned %d events: tenant_id=%d", len(result.Events), tenantID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
