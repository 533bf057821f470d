package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sashakmakeup/booking_bot/internal/model"
	"github.com/sashakmakeup/booking_bot/internal/repository/base"
)

const bookingColumns = `id, service_id, service_name, duration_minutes, booking_date,
	start_time, end_time, customer_name, email, COALESCE(phone, ''), COALESCE(notes, ''),
	status, created_at`

// BookingRepository is the append-mostly booking store. Records are never
// deleted; cancellation only updates the status.
type BookingRepository struct {
	*base.Repository
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{Repository: base.NewRepository(pool)}
}

// Append persists a new booking record.
func (r *BookingRepository) Append(ctx context.Context, rec model.BookingRecord) error {
	query := `
		INSERT INTO bookings (id, service_id, service_name, duration_minutes, booking_date,
			start_time, end_time, customer_name, email, phone, notes, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NULLIF($10, ''), NULLIF($11, ''), $12, $13)
	`

	_, err := r.Pool().Exec(ctx, query,
		rec.ID,
		rec.ServiceID,
		rec.ServiceName,
		rec.DurationMinutes,
		rec.DateISO,
		rec.StartTime,
		rec.EndTime,
		rec.Name,
		rec.Email,
		rec.Phone,
		rec.Notes,
		rec.Status,
		rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("append booking: %w", err)
	}

	return nil
}

// List returns all bookings in insertion order.
func (r *BookingRepository) List(ctx context.Context) ([]model.BookingRecord, error) {
	query := fmt.Sprintf(`SELECT %s FROM bookings ORDER BY created_at ASC`, bookingColumns)

	rows, err := r.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// ListByDate returns all bookings for one calendar date, ordered by start time.
func (r *BookingRepository) ListByDate(ctx context.Context, dateISO string) ([]model.BookingRecord, error) {
	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE booking_date = $1 ORDER BY start_time ASC`, bookingColumns)

	rows, err := r.Query(ctx, query, dateISO)
	if err != nil {
		return nil, fmt.Errorf("list bookings by date: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// ListBetween returns bookings with dates in [fromISO, toISO], ordered by
// date and start time. Used by the schedule image and reminders.
func (r *BookingRepository) ListBetween(ctx context.Context, fromISO, toISO string) ([]model.BookingRecord, error) {
	query := fmt.Sprintf(`SELECT %s FROM bookings
		WHERE booking_date >= $1 AND booking_date <= $2
		ORDER BY booking_date ASC, start_time ASC`, bookingColumns)

	rows, err := r.Query(ctx, query, fromISO, toISO)
	if err != nil {
		return nil, fmt.Errorf("list bookings between dates: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// UpdateStatus changes a booking's status. Used only by the admin cancel flow.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, status model.BookingStatus) error {
	query := `UPDATE bookings SET status = $1 WHERE id = $2`

	affected, err := r.ExecAffected(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("booking not found")
	}

	return nil
}

func scanBookings(rows pgx.Rows) ([]model.BookingRecord, error) {
	var bookings []model.BookingRecord
	for rows.Next() {
		var rec model.BookingRecord
		err := rows.Scan(
			&rec.ID,
			&rec.ServiceID,
			&rec.ServiceName,
			&rec.DurationMinutes,
			&rec.DateISO,
			&rec.StartTime,
			&rec.EndTime,
			&rec.Name,
			&rec.Email,
			&rec.Phone,
			&rec.Notes,
			&rec.Status,
			&rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookings: %w", err)
	}

	return bookings, nil
}
