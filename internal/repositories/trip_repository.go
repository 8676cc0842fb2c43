package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"tripgoBack/internal/models"
)

type TripRepository struct {
	DB *sql.DB
}

func (r *TripRepository) CreateTrip(ctx context.Context, t models.Trip) (models.Trip, error) {
	images, err := json.Marshal(t.Images)
	if err != nil {
		return models.Trip{}, err
	}

	query := `
		INSERT INTO trips
			(provider_id, name, description, city, country, price, duration_days, capacity, images, status, avg_rating, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())
	`
	if t.Status == "" {
		t.Status = models.TripStatusActive
	}
	result, err := r.DB.ExecContext(ctx, query,
		t.ProviderID, t.Name, t.Description, t.City, t.Country, t.Price,
		t.DurationDays, t.Capacity, images, t.Status, t.AvgRating,
	)
	if err != nil {
		return models.Trip{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.Trip{}, err
	}
	t.ID = int(id)
	return r.GetTripByID(ctx, t.ID)
}

func (r *TripRepository) GetTripByID(ctx context.Context, id int) (models.Trip, error) {
	query := `
		SELECT id, provider_id, name, description, city, country, price, duration_days, capacity, images, status, avg_rating, created_at, updated_at
		FROM trips
		WHERE id = ?
	`

	var (
		t      models.Trip
		images []byte
	)
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&t.ID, &t.ProviderID, &t.Name, &t.Description, &t.City, &t.Country,
		&t.Price, &t.DurationDays, &t.Capacity, &images, &t.Status, &t.AvgRating,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return models.Trip{}, models.ErrTripNotFound
	}
	if err != nil {
		return models.Trip{}, err
	}
	if len(images) > 0 {
		if err := json.Unmarshal(images, &t.Images); err != nil {
			return models.Trip{}, err
		}
	}
	return t, nil
}

func (r *TripRepository) UpdateTrip(ctx context.Context, t models.Trip) (models.Trip, error) {
	images, err := json.Marshal(t.Images)
	if err != nil {
		return models.Trip{}, err
	}

	query := `
        UPDATE trips
        SET name = ?, description = ?, city = ?, country = ?, price = ?,
            duration_days = ?, capacity = ?, images = ?, status = ?, avg_rating = ?, updated_at = ?
        WHERE id = ?
    `
	updatedAt := time.Now()
	t.UpdatedAt = &updatedAt
	result, err := r.DB.ExecContext(ctx, query,
		t.Name, t.Description, t.City, t.Country, t.Price,
		t.DurationDays, t.Capacity, images, t.Status, t.AvgRating, t.UpdatedAt, t.ID,
	)
	if err != nil {
		return models.Trip{}, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.Trip{}, err
	}
	if rowsAffected == 0 {
		return models.Trip{}, models.ErrTripNotFound
	}
	return r.GetTripByID(ctx, t.ID)
}

func (r *TripRepository) DeleteTrip(ctx context.Context, id int) error {
	query := `DELETE FROM trips WHERE id = ?`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrTripNotFound
	}
	return nil
}

func (r *TripRepository) GetTripsWithFilters(ctx context.Context, filter models.TripFilter) ([]models.Trip, int, error) {
	var (
		params     []interface{}
		conditions []string
	)

	baseQuery := `
		SELECT id, provider_id, name, description, city, country, price, duration_days, capacity, images, status, avg_rating, created_at, updated_at
		FROM trips
	`
	countQuery := `SELECT COUNT(*) FROM trips`

	conditions = append(conditions, "status = ?")
	params = append(params, models.TripStatusActive)

	if filter.City != "" {
		conditions = append(conditions, "city = ?")
		params = append(params, filter.City)
	}
	if filter.Country != "" {
		conditions = append(conditions, "country = ?")
		params = append(params, filter.Country)
	}
	if filter.PriceMin > 0 {
		conditions = append(conditions, "price >= ?")
		params = append(params, filter.PriceMin)
	}
	if filter.PriceMax > 0 {
		conditions = append(conditions, "price <= ?")
		params = append(params, filter.PriceMax)
	}

	where := " WHERE " + strings.Join(conditions, " AND ")
	baseQuery += where
	countQuery += where

	var total int
	if err := r.DB.QueryRowContext(ctx, countQuery, params...).Scan(&total); err != nil {
		return nil, 0, err
	}

	switch filter.Sort {
	case "price_asc":
		baseQuery += ` ORDER BY price ASC`
	case "price_desc":
		baseQuery += ` ORDER BY price DESC`
	case "rating":
		baseQuery += ` ORDER BY avg_rating DESC`
	default:
		baseQuery += ` ORDER BY created_at DESC`
	}

	baseQuery += " LIMIT ? OFFSET ?"
	params = append(params, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := r.DB.QueryContext(ctx, baseQuery, params...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var trips []models.Trip
	for rows.Next() {
		var (
			t      models.Trip
			images []byte
		)
		err := rows.Scan(
			&t.ID, &t.ProviderID, &t.Name, &t.Description, &t.City, &t.Country,
			&t.Price, &t.DurationDays, &t.Capacity, &images, &t.Status, &t.AvgRating,
			&t.CreatedAt, &t.UpdatedAt,
		)
		if err != nil {
			return nil, 0, err
		}
		if len(images) > 0 {
			if err := json.Unmarshal(images, &t.Images); err != nil {
				return nil, 0, err
			}
		}
		trips = append(trips, t)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}
	return trips, total, nil
}

func (r *TripRepository) GetTripsByProviderID(ctx context.Context, providerID int) ([]models.Trip, error) {
	query := `
		SELECT id, provider_id, name, description, city, country, price, duration_days, capacity, images, status, avg_rating, created_at, updated_at
		FROM trips
		WHERE provider_id = ?
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, providerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trips []models.Trip
	for rows.Next() {
		var (
			t      models.Trip
			images []byte
		)
		err := rows.Scan(
			&t.ID, &t.ProviderID, &t.Name, &t.Description, &t.City, &t.Country,
			&t.Price, &t.DurationDays, &t.Capacity, &images, &t.Status, &t.AvgRating,
			&t.CreatedAt, &t.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		if len(images) > 0 {
			if err := json.Unmarshal(images, &t.Images); err != nil {
				return nil, err
			}
		}
		trips = append(trips, t)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return trips, nil
}
