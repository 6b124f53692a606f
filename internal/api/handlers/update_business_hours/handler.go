package update_business_hours

import (
	"errors"
	"net/http"

	"github.com/lumiplatform/LUMI-SchedulingService/internal/api/handlers"
	"github.com/lumiplatform/LUMI-SchedulingService/internal/api/middleware"
	"github.com/lumiplatform/LUMI-SchedulingService/internal/service/tenantconfig"
	"github.com/lumiplatform/LUMI-SchedulingService/pkg/timerange"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingTenantID    = "отсутствует ID арендатора"
	msgNotFound           = "часы работы не заданы"
	msgInvalidRange       = "время начала должно быть строго раньше времени окончания"
	msgBreakOutOfBounds   = "перерыв должен лежать внутри рабочих часов"
	msgInvalidInput       = "некорректные данные часов работы"
)

type Handler struct {
	service TenantConfigService
	logger  Logger
}

func NewHandler(service TenantConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleUpdate PUT /api/v1/business-hours
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.GetTenantID(r.Context())
	if !ok {
		h.logger.Warn("PUT /business-hours - Missing tenant ID")
		handlers.RespondUnauthorized(w, msgMissingTenantID)
		return
	}

	var req UpdateBusinessHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /business-hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateBusinessHours(r.Context(), req.ToServiceRequest(tenantID))
	if err != nil {
		switch {
		case errors.Is(err, timerange.ErrNestedRangeOutOfBounds):
			h.logger.Warn("PUT /business-hours - Break out of bounds: tenant_id=%d", tenantID)
			handlers.RespondBadRequest(w, msgBreakOutOfBounds)

		case errors.Is(err, timerange.ErrInvalidRange):
			h.logger.Warn("PUT /business-hours - Invalid range: tenant_id=%d", tenantID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, tenantconfig.ErrInvalidInput):
			h.logger.Warn("PUT /business-hours - Invalid input: tenant_id=%d, error=%v", tenantID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /business-hours - Failed to update business hours: tenant_id=%d, error=%v",
				tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /business-hours - Business hours updated successfully: tenant_id=%d", tenantID)
	handlers.RespondJSON(w, http.StatusOK, FromDomainBusinessHours(result))
}

// HandleGet GET /api/v1/business-hours
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.GetTenantID(r.Context())
	if !ok {
		h.logger.Warn("GET /business-hours - Missing tenant ID")
		handlers.RespondUnauthorized(w, msgMissingTenantID)
		return
	}

	result, err := h.service.GetBusinessHours(r.Context(), tenantID)
	if err != nil {
		switch {
		case errors.Is(err, tenantconfig.ErrBusinessHoursNotFound):
			h.logger.Warn("GET /business-hours - Business hours not configured: tenant_id=%d", tenantID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /business-hours - Failed to get business hours: tenant_id=%d, error=%v",
				tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /business-hours - Business hours retrieved: tenant_id=%d", tenantID)
	handlers.RespondJSON(w, http.StatusOK, FromDomainBusinessHours(result))
}
