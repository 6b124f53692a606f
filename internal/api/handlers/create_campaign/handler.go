package create_campaign

import (
	"errors"
	"net/http"

	"github.com/lumiplatform/LUMI-SchedulingService/internal/api/handlers"
	"github.com/lumiplatform/LUMI-SchedulingService/internal/api/middleware"
	"github.com/lumiplatform/LUMI-SchedulingService/internal/service/promotions"
	"github.com/lumiplatform/LUMI-SchedulingService/pkg/timerange"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDates       = "некорректный формат дат, ожидается RFC 3339"
	msgMissingTenantID    = "отсутствует ID арендатора"
	msgInvalidRange       = "начало окна действия должно быть строго раньше его окончания"
	msgInvalidInput       = "некорректные данные кампании"
)

type Handler struct {
	service PromotionsService
	logger  Logger
}

func NewHandler(service PromotionsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/campaigns
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.GetTenantID(r.Context())
	if !ok {
		h.logger.Warn("POST /campaigns - Missing tenant ID")
		handlers.RespondUnauthorized(w, msgMissingTenantID)
		return
	}

	var req CreateCampaignRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /campaigns - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(tenantID)
	if err != nil {
		h.logger.Warn("POST /campaigns - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	result, err := h.service.CreateCampaign(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, timerange.ErrInvalidRange):
			h.logger.Warn("POST /campaigns - Invalid validity window: tenant_id=%d", tenantID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, promotions.ErrInvalidInput):
			h.logger.Warn("POST /campaigns - Invalid input: tenant_id=%d, error=%v", tenantID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /campaigns - Failed to create campaign: tenant_id=%d, error=%v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /campaigns - Campaign created successfully: campaign_id=%d, tenant_id=%d",
		result.ID, tenantID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomainCampaign(result))
}
