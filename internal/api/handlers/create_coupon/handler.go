package create_coupon

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
	msgDuplicateCode      = "купон с таким кодом уже существует"
	msgInvalidRange       = "начало окна действия должно быть строго раньше его окончания"
	msgInvalidInput       = "некорректные данные купона"
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

// Handle POST /api/v1/coupons
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.GetTenantID(r.Context())
	if !ok {
		h.logger.Warn("POST /coupons - Missing tenant ID")
		handlers.RespondUnauthorized(w, msgMissingTenantID)
		return
	}

	var req CreateCouponRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /coupons - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(tenantID)
	if err != nil {
		h.logger.Warn("POST /coupons - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	result, err := h.service.CreateCoupon(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, promotions.ErrDuplicateCouponCode):
			h.logger.Warn("POST /coupons - Duplicate code: tenant_id=%d, code=%s", tenantID, req.Code)
			handlers.RespondConflict(w, msgDuplicateCode)

		case errors.Is(err, timerange.ErrInvalidRange):
			h.logger.Warn("POST /coupons - Invalid validity window: tenant_id=%d", tenantID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, promotions.ErrInvalidInput):
			h.logger.Warn("POST /coupons - Invalid input: tenant_id=%d, error=%v", tenantID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /coupons - Failed to create coupon: tenant_id=%d, error=%v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /coupons - Coupon created successfully: coupon_id=%d, tenant_id=%d", result.ID, tenantID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomainCoupon(result))
}
