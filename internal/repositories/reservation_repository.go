package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"turakBack/internal/models"
)

type ReservationRepository struct {
	DB *sql.DB
}

// CreateReservation re-checks the overlap and inserts inside one serializable
// transaction, so two concurrent bookings for the same dates cannot both
// commit. The exclusion constraint in the schema catches anything that slips
// through under weaker isolation.
func (r *ReservationRepository) CreateReservation(ctx context.Context, res models.Reservation) (models.Reservation, error) {
	tx, err := r.DB.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return models.Reservation{}, err
	}
	defer tx.Rollback()

	var count int
	err = tx.QueryRowContext(ctx, `
        SELECT COUNT(*) FROM reservations
        WHERE property_id = $1 AND status <> $2
          AND start_date <= $3 AND end_date >= $4`,
		res.PropertyID, models.ReservationCancelled, res.EndDate, res.StartDate,
	).Scan(&count)
	if err != nil {
		return models.Reservation{}, err
	}
	if count > 0 {
		return models.Reservation{}, models.ErrDateConflict
	}

	res.Status = models.ReservationPending
	res.CreatedAt = time.Now()
	err = tx.QueryRowContext(ctx, `
        INSERT INTO reservations (property_id, user_id, start_date, end_date, total_price, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id`,
		res.PropertyID, res.UserID, res.StartDate, res.EndDate, res.TotalPrice, res.Status, res.CreatedAt,
	).Scan(&res.ID)
	if err != nil {
		if isOverlapViolation(err) {
			return models.Reservation{}, models.ErrDateConflict
		}
		return models.Reservation{}, err
	}

	if err = tx.Commit(); err != nil {
		if isSerializationFailure(err) {
			return models.Reservation{}, models.ErrDateConflict
		}
		return models.Reservation{}, err
	}
	return res, nil
}

func isOverlapViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "reservations_no_overlap")
}

func isSerializationFailure(err error) bool {
	return err != nil && strings.Contains(err.Error(), "could not serialize access")
}

func (r *ReservationRepository) GetReservationByID(ctx context.Context, id int) (models.Reservation, error) {
	query := `
        SELECT id, property_id, user_id, start_date, end_date, total_price, status, created_at, updated_at
        FROM reservations WHERE id = $1`

	var res models.Reservation
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&res.ID, &res.PropertyID, &res.UserID, &res.StartDate, &res.EndDate,
		&res.TotalPrice, &res.Status, &res.CreatedAt, &res.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Reservation{}, models.ErrReservationNotFound
	}
	if err != nil {
		return models.Reservation{}, err
	}
	return res, nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id int, status string) (models.Reservation, error) {
	updatedAt := time.Now()
	query := `
        UPDATE reservations SET status = $1, updated_at = $2 WHERE id = $3
        RETURNING id, property_id, user_id, start_date, end_date, total_price, status, created_at, updated_at`

	var res models.Reservation
	err := r.DB.QueryRowContext(ctx, query, status, updatedAt, id).Scan(
		&res.ID, &res.PropertyID, &res.UserID, &res.StartDate, &res.EndDate,
		&res.TotalPrice, &res.Status, &res.CreatedAt, &res.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Reservation{}, models.ErrReservationNotFound
	}
	if err != nil {
		return models.Reservation{}, err
	}
	return res, nil
}

func (r *ReservationRepository) DeleteReservation(ctx context.Context, id int) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return models.ErrReservationNotFound
	}
	return nil
}

// GetActiveReservations returns the property's reservations whose status is
// not cancelled.
func (r *ReservationRepository) GetActiveReservations(ctx context.Context, propertyID int) ([]models.Reservation, error) {
	rows, err := r.DB.QueryContext(ctx, `
        SELECT id, property_id, user_id, start_date, end_date, total_price, status, created_at, updated_at
        FROM reservations
        WHERE property_id = $1 AND status <> $2
        ORDER BY start_date ASC`, propertyID, models.ReservationCancelled)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reservations := []models.Reservation{}
	for rows.Next() {
		var res models.Reservation
		err := rows.Scan(
			&res.ID, &res.PropertyID, &res.UserID, &res.StartDate, &res.EndDate,
			&res.TotalPrice, &res.Status, &res.CreatedAt, &res.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *ReservationRepository) GetReservationsByProperty(ctx context.Context, propertyID int) ([]models.Reservation, error) {
	return r.queryReservations(ctx, `
        SELECT id, property_id, user_id, start_date, end_date, total_price, status, created_at, updated_at
        FROM reservations WHERE property_id = $1 ORDER BY start_date ASC`, propertyID)
}

func (r *ReservationRepository) GetReservationsByUser(ctx context.Context, userID int) ([]models.Reservation, error) {
	return r.queryReservations(ctx, `
        SELECT id, property_id, user_id, start_date, end_date, total_price, status, created_at, updated_at
        FROM reservations WHERE user_id = $1 ORDER BY start_date DESC`, userID)
}

func (r *ReservationRepository) queryReservations(ctx context.Context, query string, arg interface{}) ([]models.Reservation, error) {
	rows, err := r.DB.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reservations := []models.Reservation{}
	for rows.Next() {
		var res models.Reservation
		err := rows.Scan(
			&res.ID, &res.PropertyID, &res.UserID, &res.StartDate, &res.EndDate,
			&res.TotalPrice, &res.Status, &res.CreatedAt, &res.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return reservations, nil
}
