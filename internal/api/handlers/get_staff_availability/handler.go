package get_staff_availability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/lumiplatform/LUMI-SchedulingService/internal/api/handlers"
	"github.com/lumiplatform/LUMI-SchedulingService/internal/api/middleware"
	"github.com/lumiplatform/LUMI-SchedulingService/internal/domain"
)

const (
	msgInvalidStaffID  = "некорректный ID мастера"
	msgMissingTenantID = "отсутствует ID арендатора"
	msgInvalidDate     = "некорректная дата, ожидается date в формате YYYY-MM-DD"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/staff/{staffId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	staffID, err := strconv.ParseInt(vars["staffId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /staff/{id}/availability - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	tenantID, ok := middleware.GetTenantID(r.Context())
	if !ok {
		h.logger.Warn("GET /staff/{id}/availability - Missing tenant ID")
		handlers.RespondUnauthorized(w, msgMissingTenantID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /staff/{id}/availability - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	intervals, err := h.service.IntervalsFor(r.Context(), tenantID, staffID, date)
	if err != nil {
		h.logger.Error("GET /staff/{id}/availability - Failed to resolve availability: staff_id=%d, error=%v",
			staffID, err)
		handlers.RespondInternalError(w)
		return
	}

	response := AvailabilityResponse{
		StaffID:   staffID,
		Date:      date.Format(domain.DateFormat),
		Intervals: fromDomainIntervals(intervals),
	}

	h.logger.Info("GET /staff/{id}/availability - Resolved %d intervals: staff_id=%d, tenant_id=%d",
		len(intervals), staffID, tenantID)
	handlers.RespondJSON(w, http.StatusOK, response)
}
