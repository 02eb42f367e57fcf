package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/salao-digital/salon-scheduler/internal/domain"
	"github.com/salao-digital/salon-scheduler/pkg/psqlbuilder"
	"github.com/salao-digital/salon-scheduler/pkg/txmanager"
)

// The configuration is a single row; settingsRowID pins it.
const settingsRowID = 1

// Repository persists the salon's business configuration in PostgreSQL
type Repository struct {
	db txmanager.Executor
}

// NewRepository creates a settings repository
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

// Get returns the current configuration. On first read the defaults are
// written so subsequent updates always have a row to modify.
func (r *Repository) Get(ctx context.Context) (*domain.Settings, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"business_hours_start",
		"business_hours_end",
		"slot_interval_minutes",
		"holidays",
		"created_at",
		"updated_at",
	).
		From("settings").
		Where(squirrel.Eq{"id": settingsRowID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var (
		s        domain.Settings
		holidays []string
	)
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.BusinessHours.StartHour,
		&s.BusinessHours.EndHour,
		&s.SlotIntervalMinutes,
		pq.Array(&holidays),
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return r.insertDefaults(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan settings: %v", ErrScanRow, err)
	}

	s.Holidays, err = parseHolidays(holidays)
	if err != nil {
		return nil, fmt.Errorf("%w: Get - parse holidays: %v", ErrScanRow, err)
	}
	return &s, nil
}

// Update overwrites the configuration. The caller validates beforehand; an
// invalid configuration never reaches this method.
func (r *Repository) Update(ctx context.Context, s *domain.Settings) (*domain.Settings, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("settings").
		Set("business_hours_start", s.BusinessHours.StartHour).
		Set("business_hours_end", s.BusinessHours.EndHour).
		Set("slot_interval_minutes", s.SlotIntervalMinutes).
		Set("holidays", pq.Array(formatHolidays(s.Holidays))).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": settingsRowID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		// First update before any read: seed the row, then retry once
		if _, seedErr := r.insertDefaults(ctx); seedErr != nil {
			return nil, seedErr
		}
		return r.Update(ctx, s)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time
	return s, nil
}

func (r *Repository) insertDefaults(ctx context.Context) (*domain.Settings, error) {
	executor := txmanager.GetExecutor(ctx, r.db)
	defaults := domain.DefaultSettings()

	query, args, err := psqlbuilder.Insert("settings").
		Columns("id", "business_hours_start", "business_hours_end", "slot_interval_minutes", "holidays").
		Values(
			settingsRowID,
			defaults.BusinessHours.StartHour,
			defaults.BusinessHours.EndHour,
			defaults.SlotIntervalMinutes,
			pq.Array([]string{}),
		).
		Suffix("ON CONFLICT (id) DO NOTHING RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: insertDefaults - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: insertDefaults - execute insert: %v", ErrExecQuery, err)
	}

	defaults.CreatedAt = createdAt.Time
	defaults.UpdatedAt = updatedAt.Time
	return defaults, nil
}

func formatHolidays(holidays []time.Time) []string {
	out := make([]string, 0, len(holidays))
	for _, h := range holidays {
		out = append(out, h.Format(domain.DateFormat))
	}
	return out
}

func parseHolidays(holidays []string) ([]time.Time, error) {
	out := make([]time.Time, 0, len(holidays))
	for _, h := range holidays {
		d, err := time.Parse(domain.DateFormat, h)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
