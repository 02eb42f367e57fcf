package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/salao-digital/salon-scheduler/internal/domain"
	"github.com/salao-digital/salon-scheduler/pkg/psqlbuilder"
	"github.com/salao-digital/salon-scheduler/pkg/txmanager"
)

var appointmentColumns = []string{
	"id",
	"client_name",
	"client_id",
	"service_id",
	"service_name",
	"date",
	"start_time",
	"end_time",
	"recurrence_group_id",
	"attendance_status",
	"calendar_event_id",
	"created_at",
	"updated_at",
}

// Repository persists appointments in PostgreSQL
type Repository struct {
	db DBExecutor
}

// NewRepository creates an appointment repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new appointment. ID and the time window are set by the
// caller; created_at/updated_at come back from the database.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"id",
			"client_name",
			"client_id",
			"service_id",
			"service_name",
			"date",
			"start_time",
			"end_time",
			"recurrence_group_id",
			"attendance_status",
			"calendar_event_id",
		).
		Values(
			appt.ID,
			appt.ClientName,
			appt.ClientID,
			appt.ServiceID,
			appt.ServiceName,
			appt.Date,
			appt.StartTime,
			appt.EndTime,
			appt.RecurrenceGroupID,
			appt.AttendanceStatus,
			appt.CalendarEventID,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// GetByID fetches one appointment
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appt, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appt, nil
}

// GetAll returns every appointment ordered by date and start time
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		OrderBy("date ASC, start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// GetByDate returns the appointments on one calendar date sorted by start
// time. Inside a transaction the rows are locked with FOR UPDATE so the
// conflict check and the following insert see a stable view.
func (r *Repository) GetByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"date": date}).
		OrderBy("start_time ASC")

	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// UpdateCalendarEvent stores the external calendar event id for an appointment
func (r *Repository) UpdateCalendarEvent(ctx context.Context, id uuid.UUID, eventID string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("calendar_event_id", eventID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateCalendarEvent - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "UpdateCalendarEvent")
}

// UpdateAttendance records the attendance status of an appointment
func (r *Repository) UpdateAttendance(ctx context.Context, id uuid.UUID, status domain.AttendanceStatus) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("attendance_status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateAttendance - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "UpdateAttendance")
}

// Delete removes an appointment by id. Recurrence-group siblings are left
// untouched; deletion is independent per series member.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "Delete")
}

func (r *Repository) execExpectingRow(ctx context.Context, executor DBExecutor, query string, args []interface{}, op string) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - rows affected: %v", ErrExecQuery, op, err)
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var (
		appt              domain.Appointment
		clientID          uuid.NullUUID
		recurrenceGroupID uuid.NullUUID
		calendarEventID   sql.NullString
		createdAt         sql.NullTime
		updatedAt         sql.NullTime
	)

	err := row.Scan(
		&appt.ID,
		&appt.ClientName,
		&clientID,
		&appt.ServiceID,
		&appt.ServiceName,
		&appt.Date,
		&appt.StartTime,
		&appt.EndTime,
		&recurrenceGroupID,
		&appt.AttendanceStatus,
		&calendarEventID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if clientID.Valid {
		appt.ClientID = &clientID.UUID
	}
	if recurrenceGroupID.Valid {
		appt.RecurrenceGroupID = &recurrenceGroupID.UUID
	}
	if calendarEventID.Valid {
		appt.CalendarEventID = &calendarEventID.String
	}
	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return &appt, nil
}

func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan appointment row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate appointment rows: %v", ErrScanRow, err)
	}
	return appointments, nil
}
