package promotions

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumiplatform/LUMI-SchedulingService/internal/domain"
	promoRepo "github.com/lumiplatform/LUMI-SchedulingService/internal/infra/storage/promo"
	"github.com/lumiplatform/LUMI-SchedulingService/pkg/timerange"
)

type fakeRepo struct {
	coupons   []*domain.Coupon
	campaigns []*domain.Campaign
}

func (f *fakeRepo) CreateCoupon(_ context.Context, coupon *domain.Coupon) (*domain.Coupon, error) {
	for _, existing := range f.coupons {
		if existing.TenantID == coupon.TenantID && existing.Code == coupon.Code {
			return nil, promoRepo.ErrDuplicateCouponCode
		}
	}
	copied := *coupon
	copied.ID = int64(len(f.coupons) + 1)
	f.coupons = append(f.coupons, &copied)
	return &copied, nil
}

func (f *fakeRepo) CreateCampaign(_ context.Context, campaign *domain.Campaign) (*domain.Campaign, error) {
	copied := *campaign
	copied.ID = int64(len(f.campaigns) + 1)
	f.campaigns = append(f.campaigns, &copied)
	return &copied, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	validFrom  = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	validUntil = validFrom.AddDate(0, 1, 0)
)

func couponRequest() *CreateCouponRequest {
	return &CreateCouponRequest{
		TenantID:        1,
		Code:            "WELCOME10",
		DiscountPercent: 10,
		ValidFrom:       validFrom,
		ValidUntil:      validUntil,
	}
}

func TestCreateCoupon(t *testing.T) {
	svc := NewService(&fakeRepo{}, nopLogger{})

	coupon, err := svc.CreateCoupon(context.Background(), couponRequest())
	require.NoError(t, err)

	assert.Equal(t, "WELCOME10", coupon.Code)
	assert.Equal(t, 10, coupon.DiscountPercent)
	assert.True(t, coupon.IsActiveAt(validFrom))
	assert.False(t, coupon.IsActiveAt(validUntil))
}

func TestCreateCoupon_TrimsCode(t *testing.T) {
	svc := NewService(&fakeRepo{}, nopLogger{})

	req := couponRequest()
	req.Code = "  SPRING  "

	coupon, err := svc.CreateCoupon(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "SPRING", coupon.Code)
}

func TestCreateCoupon_DuplicateCode(t *testing.T) {
	svc := NewService(&fakeRepo{}, nopLogger{})

	_, err := svc.CreateCoupon(context.Background(), couponRequest())
	require.NoError(t, err)

	_, err = svc.CreateCoupon(context.Background(), couponRequest())
	assert.ErrorIs(t, err, ErrDuplicateCouponCode)
}

func TestCreateCoupon_Validation(t *testing.T) {
	svc := NewService(&fakeRepo{}, nopLogger{})

	tests := []struct {
		name    string
		mutate  func(*CreateCouponRequest)
		wantErr error
	}{
		{"empty code", func(r *CreateCouponRequest) { r.Code = "   " }, ErrInvalidInput},
		{"oversized code", func(r *CreateCouponRequest) {
			r.Code = strings.Repeat("X", domain.MaxCouponCodeLength+1)
		}, ErrInvalidInput},
		{"zero discount", func(r *CreateCouponRequest) { r.DiscountPercent = 0 }, ErrInvalidInput},
		{"negative discount", func(r *CreateCouponRequest) { r.DiscountPercent = -5 }, ErrInvalidInput},
		{"discount above max", func(r *CreateCouponRequest) { r.DiscountPercent = 101 }, ErrInvalidInput},
		{"inverted window", func(r *CreateCouponRequest) {
			r.ValidFrom, r.ValidUntil = r.ValidUntil, r.ValidFrom
		}, timerange.ErrInvalidRange},
		{"empty window", func(r *CreateCouponRequest) { r.ValidUntil = r.ValidFrom }, timerange.ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := couponRequest()
			tt.mutate(req)

			_, err := svc.CreateCoupon(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateCampaign(t *testing.T) {
	svc := NewService(&fakeRepo{}, nopLogger{})

	campaign, err := svc.CreateCampaign(context.Background(), &CreateCampaignRequest{
		TenantID: 1,
		Name:     "Autumn Sale",
		StartsAt: validFrom,
		EndsAt:   validUntil,
	})
	require.NoError(t, err)

	assert.Equal(t, "Autumn Sale", campaign.Name)
	assert.True(t, campaign.IsActiveAt(validFrom.Add(time.Hour)))
}

func TestCreateCampaign_Validation(t *testing.T) {
	svc := NewService(&fakeRepo{}, nopLogger{})

	_, err := svc.CreateCampaign(context.Background(), &CreateCampaignRequest{
		TenantID: 1,
		Name:     "   ",
		StartsAt: validFrom,
		EndsAt:   validUntil,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CreateCampaign(context.Background(), &CreateCampaignRequest{
		TenantID: 1,
		Name:     strings.Repeat("A", domain.MaxCampaignNameLength+1),
		StartsAt: validFrom,
		EndsAt:   validUntil,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CreateCampaign(context.Background(), &CreateCampaignRequest{
		TenantID: 1,
		Name:     "Autumn Sale",
		StartsAt: validUntil,
		EndsAt:   validFrom,
	})
	assert.ErrorIs(t, err, timerange.ErrInvalidRange)
}
