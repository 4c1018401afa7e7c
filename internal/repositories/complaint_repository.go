package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"turakBack/internal/models"
)

type ComplaintRepository struct {
	DB *sql.DB
}

func (r *ComplaintRepository) CreateComplaint(ctx context.Context, c models.Complaint) (models.Complaint, error) {
	query := `
        INSERT INTO complaints (property_id, user_id, reason, description, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id`

	c.Status = models.ComplaintPending
	c.CreatedAt = time.Now()
	err := r.DB.QueryRowContext(ctx, query,
		c.PropertyID, c.UserID, c.Reason, c.Description, c.Status, c.CreatedAt,
	).Scan(&c.ID)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return models.Complaint{}, models.ErrDuplicateComplaint
		}
		return models.Complaint{}, err
	}
	return c, nil
}

func (r *ComplaintRepository) GetAllComplaints(ctx context.Context) ([]models.Complaint, error) {
	query := `
        SELECT c.id, c.property_id, c.user_id, c.reason, c.description, c.status, c.created_at,
               u.name, u.surname, u.phone
        FROM complaints c
        JOIN users u ON c.user_id = u.id
        ORDER BY c.created_at DESC`

	return r.queryComplaints(ctx, query)
}

func (r *ComplaintRepository) GetComplaintsByPropertyID(ctx context.Context, propertyID int) ([]models.Complaint, error) {
	query := `
        SELECT c.id, c.property_id, c.user_id, c.reason, c.description, c.status, c.created_at,
               u.name, u.surname, u.phone
        FROM complaints c
        JOIN users u ON c.user_id = u.id
        WHERE c.property_id = $1
        ORDER BY c.created_at DESC`

	return r.queryComplaints(ctx, query, propertyID)
}

func (r *ComplaintRepository) queryComplaints(ctx context.Context, query string, args ...interface{}) ([]models.Complaint, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	complaints := []models.Complaint{}
	for rows.Next() {
		var c models.Complaint
		err := rows.Scan(
			&c.ID, &c.PropertyID, &c.UserID, &c.Reason, &c.Description, &c.Status, &c.CreatedAt,
			&c.User.Name, &c.User.Surname, &c.User.Phone,
		)
		if err != nil {
			return nil, err
		}
		complaints = append(complaints, c)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return complaints, nil
}

func (r *ComplaintRepository) UpdateComplaintStatus(ctx context.Context, id int, status string) (models.Complaint, error) {
	query := `
        UPDATE complaints SET status = $1 WHERE id = $2
        RETURNING id, property_id, user_id, reason, description, status, created_at`

	var c models.Complaint
	err := r.DB.QueryRowContext(ctx, query, status, id).Scan(
		&c.ID, &c.PropertyID, &c.UserID, &c.Reason, &c.Description, &c.Status, &c.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Complaint{}, models.ErrComplaintNotFound
	}
	if err != nil {
		return models.Complaint{}, err
	}
	return c, nil
}

func (r *ComplaintRepository) DeleteComplaintByID(ctx context.Context, id int) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM complaints WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return models.ErrComplaintNotFound
	}
	return nil
}
