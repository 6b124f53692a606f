package staff

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/lumiplatform/LUMI-SchedulingService/internal/domain"
	"github.com/lumiplatform/LUMI-SchedulingService/pkg/dbmetrics"
	"github.com/lumiplatform/LUMI-SchedulingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с мастерами, их расписаниями и отпусками
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория мастеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает мастера по ID в рамках арендатора
func (r *Repository) GetByID(ctx context.Context, tenantID, staffID int64) (*domain.Staff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"tenant_id",
		"display_name",
		"is_bookable",
		"service_categories",
		"created_at",
		"updated_at",
	).
		From("staff").
		Where(squirrel.Eq{"id": staffID, "tenant_id": tenantID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Staff
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.TenantID,
		&s.DisplayName,
		&s.IsBookable,
		pq.Array(&s.ServiceCategories),
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrStaffNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan staff: %v", ErrScanRow, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// ListBookable получает доступных для записи мастеров арендатора
// Сортировка по ID фиксирует детерминированный порядок автоназначения
func (r *Repository) ListBookable(ctx context.Context, tenantID int64) ([]*domain.Staff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"tenant_id",
		"display_name",
		"is_bookable",
		"service_categories",
		"created_at",
		"updated_at",
	).
		From("staff").
		Where(squirrel.Eq{"tenant_id": tenantID, "is_bookable": true}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListBookable - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBookable - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Staff, 0)
	for rows.Next() {
		var s domain.Staff
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&s.ID,
			&s.TenantID,
			&s.DisplayName,
			&s.IsBookable,
			pq.Array(&s.ServiceCategories),
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListBookable - scan row: %v", ErrScanRow, err)
		}

		s.CreatedAt = createdAt.Time
		s.UpdatedAt = updatedAt.Time
		result = append(result, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBookable - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// GetSchedule получает расписание мастера на день недели
func (r *Repository) GetSchedule(ctx context.Context, tenantID, staffID int64, weekday time.Weekday) (*domain.StaffSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"tenant_id",
		"staff_id",
		"weekday",
		"is_working_day",
		"start_time",
		"end_time",
		"break_start_time",
		"break_end_time",
		"created_at",
		"updated_at",
	).
		From("staff_schedules").
		Where(squirrel.Eq{
			"tenant_id": tenantID,
			"staff_id":  staffID,
			"weekday":   int(weekday),
		}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSchedule - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.StaffSchedule
	var weekdayInt int
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.TenantID,
		&s.StaffID,
		&weekdayInt,
		&s.IsWorkingDay,
		&s.StartTime,
		&s.EndTime,
		&s.BreakStartTime,
		&s.BreakEndTime,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSchedule - scan schedule: %v", ErrScanRow, err)
	}

	s.Weekday = time.Weekday(weekdayInt)
	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// UpsertSchedule создает или обновляет расписание мастера на день недели
func (r *Repository) UpsertSchedule(ctx context.Context, schedule *domain.StaffSchedule) (*domain.StaffSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("staff_schedules").
		Columns(
			"tenant_id",
			"staff_id",
			"weekday",
			"is_working_day",
			"start_time",
			"end_time",
			"break_start_time",
			"break_end_time",
		).
		Values(
			schedule.TenantID,
			schedule.StaffID,
			int(schedule.Weekday),
			schedule.IsWorkingDay,
			schedule.StartTime,
			schedule.EndTime,
			schedule.BreakStartTime,
			schedule.BreakEndTime,
		).
		Suffix(`ON CONFLICT (tenant_id, staff_id, weekday) DO UPDATE SET
			is_working_day = EXCLUDED.is_working_day,
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			break_start_time = EXCLUDED.break_start_time,
			break_end_time = EXCLUDED.break_end_time,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertSchedule - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&schedule.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertSchedule - execute upsert: %v", ErrExecQuery, err)
	}

	schedule.CreatedAt = createdAt.Time
	schedule.UpdatedAt = updatedAt.Time

	return schedule, nil
}

// CreateLeave создает заявку на отпуск мастера
func (r *Repository) CreateLeave(ctx context.Context, leave *domain.StaffLeave) (*domain.StaffLeave, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("staff_leaves").
		Columns(
			"tenant_id",
			"staff_id",
			"leave_date",
			"is_full_day",
			"start_time",
			"end_time",
			"is_approved",
		).
		Values(
			leave.TenantID,
			leave.StaffID,
			leave.LeaveDate,
			leave.IsFullDay,
			leave.StartTime,
			leave.EndTime,
			leave.IsApproved,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateLeave - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&leave.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: CreateLeave - execute insert: %v", ErrExecQuery, err)
	}

	leave.CreatedAt = createdAt.Time

	return leave, nil
}

// GetApprovedLeaves получает согласованные отпуска мастера на дату
func (r *Repository) GetApprovedLeaves(ctx context.Context, tenantID, staffID int64, date time.Time) ([]*domain.StaffLeave, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"tenant_id",
		"staff_id",
		"leave_date",
		"is_full_day",
		"start_time",
		"end_time",
		"is_approved",
		"created_at",
	).
		From("staff_leaves").
		Where(squirrel.Eq{
			"tenant_id":   tenantID,
			"staff_id":    staffID,
			"leave_date":  date,
			"is_approved": true,
		}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetApprovedLeaves - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetApprovedLeaves - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	leaves := make([]*domain.StaffLeave, 0)
	for rows.Next() {
		var l domain.StaffLeave
		var startTime, endTime sql.NullString
		var createdAt sql.NullTime

		err := rows.Scan(
			&l.ID,
			&l.TenantID,
			&l.StaffID,
			&l.LeaveDate,
			&l.IsFullDay,
			&startTime,
			&endTime,
			&l.IsApproved,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetApprovedLeaves - scan row: %v", ErrScanRow, err)
		}

		if startTime.Valid {
			if err := l.StartTime.Scan(startTime.String); err != nil {
				return nil, fmt.Errorf("%w: GetApprovedLeaves - parse start_time: %v", ErrScanRow, err)
			}
		}
		if endTime.Valid {
			if err := l.EndTime.Scan(endTime.String); err != nil {
				return nil, fmt.Errorf("%w: GetApprovedLeaves - parse end_time: %v", ErrScanRow, err)
			}
		}

		l.CreatedAt = createdAt.Time
		leaves = append(leaves, &l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetApprovedLeaves - rows error: %v", ErrScanRow, err)
	}

	return leaves, nil
}
