package repositories

import (
	"context"
	"database/sql"
	"time"

	"tripgoBack/internal/models"
)

type BookingRepository struct {
	DB *sql.DB
}

func (r *BookingRepository) CreateBooking(ctx context.Context, b models.Booking) (models.Booking, error) {
	query := `
		INSERT INTO bookings
			(reference, user_id, trip_id, status, start_date, seats, total_price, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	b.CreatedAt = time.Now()
	b.UpdatedAt = &b.CreatedAt
	result, err := r.DB.ExecContext(ctx, query,
		b.Reference, b.UserID, b.TripID, b.Status, b.StartDate, b.Seats, b.TotalPrice,
		b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return models.Booking{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.Booking{}, err
	}
	b.ID = int(id)
	return b, nil
}

func (r *BookingRepository) GetBookingByID(ctx context.Context, id int) (models.Booking, error) {
	var b models.Booking
	query := `
		SELECT id, reference, user_id, trip_id, status, start_date, seats, total_price, created_at, updated_at
		FROM bookings
		WHERE id = ?
	`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&b.ID, &b.Reference, &b.UserID, &b.TripID, &b.Status, &b.StartDate,
		&b.Seats, &b.TotalPrice, &b.CreatedAt, &b.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return models.Booking{}, models.ErrBookingNotFound
	}
	if err != nil {
		return models.Booking{}, err
	}
	return b, nil
}

func (r *BookingRepository) GetBookingsByUserID(ctx context.Context, userID int) ([]models.Booking, error) {
	query := `
		SELECT id, reference, user_id, trip_id, status, start_date, seats, total_price, created_at, updated_at
		FROM bookings
		WHERE user_id = ?
		ORDER BY created_at DESC
	`
	return r.queryBookings(ctx, query, userID)
}

func (r *BookingRepository) GetBookingsByTripID(ctx context.Context, tripID int) ([]models.Booking, error) {
	query := `
		SELECT id, reference, user_id, trip_id, status, start_date, seats, total_price, created_at, updated_at
		FROM bookings
		WHERE trip_id = ?
		ORDER BY created_at DESC
	`
	return r.queryBookings(ctx, query, tripID)
}

func (r *BookingRepository) queryBookings(ctx context.Context, query string, args ...interface{}) ([]models.Booking, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		var b models.Booking
		err := rows.Scan(
			&b.ID, &b.Reference, &b.UserID, &b.TripID, &b.Status, &b.StartDate,
			&b.Seats, &b.TotalPrice, &b.CreatedAt, &b.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingRepository) UpdateBookingStatus(ctx context.Context, id int, status string) (models.Booking, error) {
	query := `UPDATE bookings SET status = ?, updated_at = ? WHERE id = ?`
	result, err := r.DB.ExecContext(ctx, query, status, time.Now(), id)
	if err != nil {
		return models.Booking{}, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.Booking{}, err
	}
	if rowsAffected == 0 {
		return models.Booking{}, models.ErrBookingNotFound
	}
	return r.GetBookingByID(ctx, id)
}

func (r *BookingRepository) DeleteBooking(ctx context.Context, id int) error {
	query := `DELETE FROM bookings WHERE id = ?`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrBookingNotFound
	}
	return nil
}

// SeatsTaken sums the seats of non-cancelled bookings that share the trip
// and start date, so capacity checks see only active demand.
func (r *BookingRepository) SeatsTaken(ctx context.Context, tripID int, startDate time.Time) (int, error) {
	var taken sql.NullInt64
	query := `
		SELECT SUM(seats)
		FROM bookings
		WHERE trip_id = ? AND start_date = ? AND status IN (?, ?)
	`
	err := r.DB.QueryRowContext(ctx, query, tripID, startDate,
		models.BookingStatusPending, models.BookingStatusConfirmed).Scan(&taken)
	if err != nil {
		return 0, err
	}
	return int(taken.Int64), nil
}
