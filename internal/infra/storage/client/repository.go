package client

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/salao-digital/salon-scheduler/internal/domain"
	"github.com/salao-digital/salon-scheduler/pkg/psqlbuilder"
	"github.com/salao-digital/salon-scheduler/pkg/txmanager"
)

// Repository persists the client registry in PostgreSQL
type Repository struct {
	db txmanager.Executor
}

// NewRepository creates a client repository
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new client
func (r *Repository) Create(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("clients").
		Columns("id", "name", "phone", "notes", "tier").
		Values(c.ID, c.Name, c.Phone, c.Notes, c.Tier).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time
	return c, nil
}

// GetByID fetches one client
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := clientSelect().
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var c domain.Client
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID, &c.Name, &c.Phone, &c.Notes, &c.Tier, &c.CreatedAt, &c.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan client: %v", ErrScanRow, err)
	}
	return &c, nil
}

// GetAll returns every client ordered by name
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Client, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := clientSelect().
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	clients := make([]*domain.Client, 0)
	for rows.Next() {
		var c domain.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Notes, &c.Tier, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan client row: %v", ErrScanRow, err)
		}
		clients = append(clients, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - iterate rows: %v", ErrScanRow, err)
	}
	return clients, nil
}

// Update changes the mutable fields of a client
func (r *Repository) Update(ctx context.Context, id uuid.UUID, name *string, phone, notes *string, tier *domain.ClientTier) (*domain.Client, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("clients").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, name, phone, notes, tier, created_at, updated_at")

	if name != nil {
		updateBuilder = updateBuilder.Set("name", *name)
	}
	if phone != nil {
		updateBuilder = updateBuilder.Set("phone", *phone)
	}
	if notes != nil {
		updateBuilder = updateBuilder.Set("notes", *notes)
	}
	if tier != nil {
		updateBuilder = updateBuilder.Set("tier", *tier)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var c domain.Client
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID, &c.Name, &c.Phone, &c.Notes, &c.Tier, &c.CreatedAt, &c.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - scan client: %v", ErrScanRow, err)
	}
	return &c, nil
}

// Delete removes a client from the registry
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("clients").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute: %v", ErrExecQuery, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrClientNotFound
	}
	return nil
}

func clientSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select("id", "name", "phone", "notes", "tier", "created_at", "updated_at").
		From("clients")
}
