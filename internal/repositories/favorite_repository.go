package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"turakBack/internal/models"
)

type FavoriteRepository struct {
	DB *sql.DB
}

func (r *FavoriteRepository) AddToFavorites(ctx context.Context, userID, propertyID int) error {
	query := `INSERT INTO property_favorites (user_id, property_id, created_at) VALUES ($1, $2, $3)`
	_, err := r.DB.ExecContext(ctx, query, userID, propertyID, time.Now())
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return models.ErrDuplicateFavorite
		}
		if strings.Contains(err.Error(), "foreign key") {
			return models.ErrPropertyNotFound
		}
		return err
	}
	return nil
}

func (r *FavoriteRepository) RemoveFromFavorites(ctx context.Context, userID, propertyID int) error {
	query := `DELETE FROM property_favorites WHERE user_id = $1 AND property_id = $2`
	_, err := r.DB.ExecContext(ctx, query, userID, propertyID)
	return err
}

func (r *FavoriteRepository) IsFavorite(ctx context.Context, userID, propertyID int) (bool, error) {
	query := `SELECT COUNT(*) FROM property_favorites WHERE user_id = $1 AND property_id = $2`
	var count int
	err := r.DB.QueryRowContext(ctx, query, userID, propertyID).Scan(&count)
	return count > 0, err
}

func (r *FavoriteRepository) GetFavoritesByUser(ctx context.Context, userID int) ([]models.Favorite, error) {
	query := `SELECT f.id, f.user_id, f.property_id, f.created_at,
                     p.id, p.title, p.price, p.address, p.city, p.transaction_type,
                     p.property_type, p.bedrooms, p.images, p.archived, p.created_at
              FROM property_favorites f
              JOIN properties p ON f.property_id = p.id
              WHERE f.user_id = $1
              ORDER BY f.created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	favs := []models.Favorite{}
	for rows.Next() {
		var fav models.Favorite
		var p models.Property
		var imagesJSON []byte
		err := rows.Scan(&fav.ID, &fav.UserID, &fav.PropertyID, &fav.CreatedAt,
			&p.ID, &p.Title, &p.Price, &p.Address, &p.City, &p.TransactionType,
			&p.PropertyType, &p.Bedrooms, &imagesJSON, &p.Archived, &p.CreatedAt)
		if err != nil {
			return nil, err
		}
		if len(imagesJSON) > 0 {
			if err := json.Unmarshal(imagesJSON, &p.Images); err != nil {
				log.Printf("failed to decode images for favorite %d: %v", fav.ID, err)
			}
		}
		fav.Property = &p
		favs = append(favs, fav)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("favorites rows error: %w", err)
	}
	return favs, nil
}
