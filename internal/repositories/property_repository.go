package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"turakBack/internal/models"
)

type PropertyRepository struct {
	DB *sql.DB
}

const propertyColumns = `p.id, p.title, p.description, p.price, p.latitude, p.longitude,
       p.address, p.city, p.transaction_type, p.property_type, p.bedrooms, p.bathrooms,
       p.area, p.furnished, p.air_conditioning, p.parking, p.pets_allowed, p.heating_type,
       p.images, p.user_id, p.views, p.archived, p.created_at, p.updated_at`

func (r *PropertyRepository) CreateProperty(ctx context.Context, p models.Property) (models.Property, error) {
	query := `
    INSERT INTO properties (title, description, price, latitude, longitude, address, city,
                            transaction_type, property_type, bedrooms, bathrooms, area,
                            furnished, air_conditioning, parking, pets_allowed, heating_type,
                            images, user_id, created_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
    RETURNING id
    `

	imagesJSON, err := json.Marshal(p.Images)
	if err != nil {
		return models.Property{}, err
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}

	err = r.DB.QueryRowContext(ctx, query,
		p.Title,
		p.Description,
		p.Price,
		p.Latitude,
		p.Longitude,
		p.Address,
		p.City,
		p.TransactionType,
		p.PropertyType,
		p.Bedrooms,
		p.Bathrooms,
		p.Area,
		p.Furnished,
		p.AirConditioning,
		p.Parking,
		p.PetsAllowed,
		p.HeatingType,
		string(imagesJSON),
		p.UserID,
		p.CreatedAt,
	).Scan(&p.ID)
	if err != nil {
		return models.Property{}, err
	}
	return p, nil
}

func (r *PropertyRepository) GetPropertyByID(ctx context.Context, id int) (models.Property, error) {
	query := `
        SELECT ` + propertyColumns + `,
               u.name, u.surname, u.phone, u.avatar_path
        FROM properties p
        JOIN users u ON p.user_id = u.id
        WHERE p.id = $1
    `

	var p models.Property
	var imagesJSON []byte
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Title, &p.Description, &p.Price, &p.Latitude, &p.Longitude,
		&p.Address, &p.City, &p.TransactionType, &p.PropertyType, &p.Bedrooms, &p.Bathrooms,
		&p.Area, &p.Furnished, &p.AirConditioning, &p.Parking, &p.PetsAllowed, &p.HeatingType,
		&imagesJSON, &p.UserID, &p.Views, &p.Archived, &p.CreatedAt, &p.UpdatedAt,
		&p.User.Name, &p.User.Surname, &p.User.Phone, &p.User.AvatarPath,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Property{}, models.ErrPropertyNotFound
	}
	if err != nil {
		return models.Property{}, err
	}
	p.User.ID = p.UserID

	if len(imagesJSON) > 0 {
		if err := json.Unmarshal(imagesJSON, &p.Images); err != nil {
			return models.Property{}, fmt.Errorf("failed to decode images json: %w", err)
		}
	}
	return p, nil
}

func (r *PropertyRepository) UpdateProperty(ctx context.Context, p models.Property) (models.Property, error) {
	query := `
UPDATE properties
SET title = $1, description = $2, price = $3, latitude = $4, longitude = $5, address = $6,
    city = $7, transaction_type = $8, property_type = $9, bedrooms = $10, bathrooms = $11,
    area = $12, furnished = $13, air_conditioning = $14, parking = $15, pets_allowed = $16,
    heating_type = $17, images = $18, updated_at = $19
WHERE id = $20
`
	imagesJSON, err := json.Marshal(p.Images)
	if err != nil {
		return models.Property{}, fmt.Errorf("failed to marshal images: %w", err)
	}
	updatedAt := time.Now()

	res, err := r.DB.ExecContext(ctx, query,
		p.Title, p.Description, p.Price, p.Latitude, p.Longitude, p.Address,
		p.City, p.TransactionType, p.PropertyType, p.Bedrooms, p.Bathrooms,
		p.Area, p.Furnished, p.AirConditioning, p.Parking, p.PetsAllowed,
		p.HeatingType, string(imagesJSON), updatedAt, p.ID,
	)
	if err != nil {
		return models.Property{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return models.Property{}, models.ErrPropertyNotFound
	}
	p.UpdatedAt = &updatedAt
	return p, nil
}

func (r *PropertyRepository) DeleteProperty(ctx context.Context, id int) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return models.ErrPropertyNotFound
	}
	return nil
}

func (r *PropertyRepository) SetArchived(ctx context.Context, id int, archived bool) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE properties SET archived = $1, updated_at = $2 WHERE id = $3`,
		archived, time.Now(), id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return models.ErrPropertyNotFound
	}
	return nil
}

func (r *PropertyRepository) IncrementViews(ctx context.Context, id int) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE properties SET views = views + 1 WHERE id = $1`, id)
	return err
}

// GetFilteredProperties returns matching listings ordered by creation time,
// newest first. A zero Limit means no cap.
func (r *PropertyRepository) GetFilteredProperties(ctx context.Context, filter models.PropertyFilter) ([]models.Property, error) {
	where, args := buildPropertyWhere(filter)

	query := `SELECT ` + propertyColumns + `
        FROM properties p
        WHERE ` + where + `
        ORDER BY p.created_at DESC`
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	properties := []models.Property{}
	for rows.Next() {
		var p models.Property
		var imagesJSON []byte
		err := rows.Scan(
			&p.ID, &p.Title, &p.Description, &p.Price, &p.Latitude, &p.Longitude,
			&p.Address, &p.City, &p.TransactionType, &p.PropertyType, &p.Bedrooms, &p.Bathrooms,
			&p.Area, &p.Furnished, &p.AirConditioning, &p.Parking, &p.PetsAllowed, &p.HeatingType,
			&imagesJSON, &p.UserID, &p.Views, &p.Archived, &p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		if len(imagesJSON) > 0 {
			if err := json.Unmarshal(imagesJSON, &p.Images); err != nil {
				return nil, fmt.Errorf("failed to decode images json for property %d: %w", p.ID, err)
			}
		}
		properties = append(properties, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return properties, nil
}

func (r *PropertyRepository) GetPropertiesByUserID(ctx context.Context, userID int) ([]models.Property, error) {
	query := `SELECT ` + propertyColumns + `
        FROM properties p
        WHERE p.user_id = $1
        ORDER BY p.created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	properties := []models.Property{}
	for rows.Next() {
		var p models.Property
		var imagesJSON []byte
		err := rows.Scan(
			&p.ID, &p.Title, &p.Description, &p.Price, &p.Latitude, &p.Longitude,
			&p.Address, &p.City, &p.TransactionType, &p.PropertyType, &p.Bedrooms, &p.Bathrooms,
			&p.Area, &p.Furnished, &p.AirConditioning, &p.Parking, &p.PetsAllowed, &p.HeatingType,
			&imagesJSON, &p.UserID, &p.Views, &p.Archived, &p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		if len(imagesJSON) > 0 {
			if err := json.Unmarshal(imagesJSON, &p.Images); err != nil {
				return nil, fmt.Errorf("failed to decode images json for property %d: %w", p.ID, err)
			}
		}
		properties = append(properties, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return properties, nil
}
