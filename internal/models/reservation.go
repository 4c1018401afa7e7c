package models

import (
	"time"
)

const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
)

// allowedTransitions lists the permitted status moves. Reverse moves and
// anything out of cancelled are rejected.
var allowedTransitions = map[string][]string{
	ReservationPending:   {ReservationConfirmed, ReservationCancelled},
	ReservationConfirmed: {ReservationCancelled},
	ReservationCancelled: {},
}

func IsValidReservationStatus(s string) bool {
	_, ok := allowedTransitions[s]
	return ok
}

func CanTransitionReservation(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Reservation struct {
	ID         int        `json:"id"`
	PropertyID int        `json:"property_id"`
	UserID     int        `json:"user_id"`
	StartDate  time.Time  `json:"start_date"`
	EndDate    time.Time  `json:"end_date"`
	TotalPrice float64    `json:"total_price"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

type CreateReservationRequest struct {
	PostID     int     `json:"post_id"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	TotalPrice float64 `json:"total_price"`
}

type UpdateReservationStatusRequest struct {
	Status string `json:"status"`
}

type AvailabilityResponse struct {
	Available bool `json:"available"`
}
