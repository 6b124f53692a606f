package tenantconfig

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/lumiplatform/LUMI-SchedulingService/internal/domain"
	"github.com/lumiplatform/LUMI-SchedulingService/pkg/dbmetrics"
	"github.com/lumiplatform/LUMI-SchedulingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с часами работы арендатора
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByTenant получает часы работы арендатора
func (r *Repository) GetByTenant(ctx context.Context, tenantID int64) (*domain.TenantBusinessHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"tenant_id",
		"business_start_time",
		"business_end_time",
		"break_start_time",
		"break_end_time",
		"created_at",
		"updated_at",
	).
		From("tenant_business_hours").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByTenant - build select query: %v", ErrBuildQuery, err)
	}

	var h domain.TenantBusinessHours
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&h.ID,
		&h.TenantID,
		&h.BusinessStartTime,
		&h.BusinessEndTime,
		&h.BreakStartTime,
		&h.BreakEndTime,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBusinessHoursNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTenant - scan business hours: %v", ErrScanRow, err)
	}

	h.CreatedAt = createdAt.Time
	h.UpdatedAt = updatedAt.Time

	return &h, nil
}

// Upsert создает или обновляет часы работы арендатора
func (r *Repository) Upsert(ctx context.Context, hours *domain.TenantBusinessHours) (*domain.TenantBusinessHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("tenant_business_hours").
		Columns(
			"tenant_id",
			"business_start_time",
			"business_end_time",
			"break_start_time",
			"break_end_time",
		).
		Values(
			hours.TenantID,
			hours.BusinessStartTime,
			hours.BusinessEndTime,
			hours.BreakStartTime,
			hours.BreakEndTime,
		).
		Suffix(`ON CONFLICT (tenant_id) DO UPDATE SET
			business_start_time = EXCLUDED.business_start_time,
			business_end_time = EXCLUDED.business_end_time,
			break_start_time = EXCLUDED.break_start_time,
			break_end_time = EXCLUDED.break_end_time,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&hours.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	hours.CreatedAt = createdAt.Time
	hours.UpdatedAt = updatedAt.Time

	return hours, nil
}
