package models

import "time"

type Favorite struct {
	ID         int       `json:"id"`
	UserID     int       `json:"user_id"`
	PropertyID int       `json:"property_id"`
	CreatedAt  time.Time `json:"created_at"`
	Property   *Property `json:"property,omitempty"`
}
