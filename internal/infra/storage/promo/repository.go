package promo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/lumiplatform/LUMI-SchedulingService/internal/domain"
	"github.com/lumiplatform/LUMI-SchedulingService/pkg/dbmetrics"
	"github.com/lumiplatform/LUMI-SchedulingService/pkg/psqlbuilder"
)

// pq-код нарушения уникального ограничения
const uniqueViolationCode = "23505"

// Repository репозиторий для работы с купонами и кампаниями
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateCoupon создает купон с окном действия
// Код купона уникален в рамках арендатора
func (r *Repository) CreateCoupon(ctx context.Context, coupon *domain.Coupon) (*domain.Coupon, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("coupons").
		Columns(
			"tenant_id",
			"code",
			"discount_percent",
			"valid_from",
			"valid_until",
		).
		Values(
			coupon.TenantID,
			coupon.Code,
			coupon.DiscountPercent,
			coupon.ValidFrom,
			coupon.ValidUntil,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateCoupon - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&coupon.ID,
		&createdAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateCouponCode
		}
		return nil, fmt.Errorf("%w: CreateCoupon - execute insert: %v", ErrExecQuery, err)
	}

	coupon.CreatedAt = createdAt.Time

	return coupon, nil
}

// CreateCampaign создает кампанию с окном действия
func (r *Repository) CreateCampaign(ctx context.Context, campaign *domain.Campaign) (*domain.Campaign, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("campaigns").
		Columns(
			"tenant_id",
			"name",
			"starts_at",
			"ends_at",
		).
		Values(
			campaign.TenantID,
			campaign.Name,
			campaign.StartsAt,
			campaign.EndsAt,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateCampaign - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&campaign.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: CreateCampaign - execute insert: %v", ErrExecQuery, err)
	}

	campaign.CreatedAt = createdAt.Time

	return campaign, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolationCode
	}
	return false
}
