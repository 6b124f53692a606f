package create_coupon

import (
	"time"

	"github.com/lumiplatform/LUMI-SchedulingService/internal/domain"
	"github.com/lumiplatform/LUMI-SchedulingService/internal/service/promotions"
)

// CreateCouponRequest HTTP request model
type CreateCouponRequest struct {
	Code            string `json:"code"`
	DiscountPercent int    `json:"discountPercent"`
	ValidFrom       string `json:"validFrom"`  // RFC 3339
	ValidUntil      string `json:"validUntil"` // RFC 3339
}

// CouponResponse HTTP response model
type CouponResponse struct {
	ID              int64  `json:"id"`
	Code            string `json:"code"`
	DiscountPercent int    `json:"discountPercent"`
	ValidFrom       string `json:"validFrom"`
	ValidUntil      string `json:"validUntil"`
	CreatedAt       string `json:"createdAt"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateCouponRequest) ToServiceRequest(tenantID int64) (*promotions.CreateCouponRequest, error) {
	validFrom, err := time.Parse(time.RFC3339, r.ValidFrom)
	if err != nil {
		return nil, err
	}

	validUntil, err := time.Parse(time.RFC3339, r.ValidUntil)
	if err != nil {
		return nil, err
	}

	return &promotions.CreateCouponRequest{
		TenantID:        tenantID,
		Code:            r.Code,
		DiscountPercent: r.DiscountPercent,
		ValidFrom:       validFrom,
		ValidUntil:      validUntil,
	}, nil
}

// FromDomainCoupon конвертирует domain модель в HTTP response
func FromDomainCoupon(c *domain.Coupon) *CouponResponse {
	return &CouponResponse{
		ID:              c.ID,
		Code:            c.Code,
		DiscountPercent: c.DiscountPercent,
		ValidFrom:       c.ValidFrom.Format(time.RFC3339),
		ValidUntil:      c.ValidUntil.Format(time.RFC3339),
		CreatedAt:       c.CreatedAt.Format(time.RFC3339),
	}
}
