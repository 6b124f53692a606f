package create_campaign

import (
	"time"

	"github.com/lumiplatform/LUMI-SchedulingService/internal/domain"
	"github.com/lumiplatform/LUMI-SchedulingService/internal/service/promotions"
)

// CreateCampaignRequest HTTP request model
type CreateCampaignRequest struct {
	Name     string `json:"name"`
	StartsAt string `json:"startsAt"` // RFC 3339
	EndsAt   string `json:"endsAt"`   // RFC 3339
}

// CampaignResponse HTTP response model
type CampaignResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	StartsAt  string `json:"startsAt"`
	EndsAt    string `json:"endsAt"`
	CreatedAt string `json:"createdAt"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateCampaignRequest) ToServiceRequest(tenantID int64) (*promotions.CreateCampaignRequest, error) {
	startsAt, err := time.Parse(time.RFC3339, r.StartsAt)
	if err != nil {
		return nil, err
	}

	endsAt, err := time.Parse(time.RFC3339, r.EndsAt)
	if err != nil {
		return nil, err
	}

	return &promotions.CreateCampaignRequest{
		TenantID: tenantID,
		Name:     r.Name,
		StartsAt: startsAt,
		EndsAt:   endsAt,
	}, nil
}

// FromDomainCampaign конвертирует domain модель в HTTP response
func FromDomainCampaign(c *domain.Campaign) *CampaignResponse {
	return &CampaignResponse{
		ID:        c.ID,
		Name:      c.Name,
		StartsAt:  c.StartsAt.Format(time.RFC3339),
		EndsAt:    c.EndsAt.Format(time.RFC3339),
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}
