package services

import (
	"context"
	"fmt"
	"time"

	"turakBack/internal/models"
)

// ReservationStore is the slice of the reservation repository the service
// needs. Kept as an interface so the booking rules can be tested without a
// database.
type ReservationStore interface {
	GetActiveReservations(ctx context.Context, propertyID int) ([]models.Reservation, error)
	CreateReservation(ctx context.Context, res models.Reservation) (models.Reservation, error)
	GetReservationByID(ctx context.Context, id int) (models.Reservation, error)
	UpdateStatus(ctx context.Context, id int, status string) (models.Reservation, error)
	DeleteReservation(ctx context.Context, id int) error
	GetReservationsByProperty(ctx context.Context, propertyID int) ([]models.Reservation, error)
	GetReservationsByUser(ctx context.Context, userID int) ([]models.Reservation, error)
}

type PropertyGetter interface {
	GetPropertyByID(ctx context.Context, id int) (models.Property, error)
}

type ReservationService struct {
	ReservationRepo ReservationStore
	PropertyRepo    PropertyGetter
	Push            *PushService
}

// CheckAvailability reports whether [start, end] can be booked on the
// property. Read-only; creation re-validates the same rule atomically.
func (s *ReservationService) CheckAvailability(ctx context.Context, propertyID int, start, end time.Time) (bool, error) {
	if err := ValidateDateRange(start, end); err != nil {
		return false, err
	}
	existing, err := s.ReservationRepo.GetActiveReservations(ctx, propertyID)
	if err != nil {
		return false, err
	}
	for _, res := range existing {
		if DateRangesConflict(res.StartDate, res.EndDate, start, end) {
			return false, nil
		}
	}
	return true, nil
}

func (s *ReservationService) CreateReservation(ctx context.Context, res models.Reservation) (models.Reservation, error) {
	if err := ValidateDateRange(res.StartDate, res.EndDate); err != nil {
		return models.Reservation{}, err
	}
	if res.TotalPrice <= 0 {
		return models.Reservation{}, models.ErrInvalidTotalPrice
	}

	property, err := s.PropertyRepo.GetPropertyByID(ctx, res.PropertyID)
	if err != nil {
		return models.Reservation{}, err
	}

	available, err := s.CheckAvailability(ctx, res.PropertyID, res.StartDate, res.EndDate)
	if err != nil {
		return models.Reservation{}, err
	}
	if !available {
		return models.Reservation{}, models.ErrDateConflict
	}

	// The repository re-runs the overlap check inside a serializable
	// transaction, so a concurrent booking cannot slip in between the check
	// above and the insert.
	created, err := s.ReservationRepo.CreateReservation(ctx, res)
	if err != nil {
		return models.Reservation{}, err
	}

	s.Push.SendToUser(ctx, property.UserID, "New reservation request",
		fmt.Sprintf("%s: %s to %s", property.Title,
			created.StartDate.Format("2006-01-02"), created.EndDate.Format("2006-01-02")),
		map[string]string{"reservation_id": fmt.Sprint(created.ID)})
	return created, nil
}

// UpdateStatus transitions a reservation. The reservation owner may cancel;
// the property owner and admins may confirm or cancel.
func (s *ReservationService) UpdateStatus(ctx context.Context, id int, newStatus string, requester models.Requester) (models.Reservation, error) {
	if !models.IsValidReservationStatus(newStatus) {
		return models.Reservation{}, models.ErrInvalidStatus
	}

	res, err := s.ReservationRepo.GetReservationByID(ctx, id)
	if err != nil {
		return models.Reservation{}, err
	}
	property, err := s.PropertyRepo.GetPropertyByID(ctx, res.PropertyID)
	if err != nil {
		return models.Reservation{}, err
	}

	allowed := requester.IsAdmin() || requester.UserID == property.UserID ||
		(requester.UserID == res.UserID && newStatus == models.ReservationCancelled)
	if !allowed {
		return models.Reservation{}, models.ErrForbidden
	}

	if !models.CanTransitionReservation(res.Status, newStatus) {
		return models.Reservation{}, models.ErrTransitionNotAllowed
	}

	updated, err := s.ReservationRepo.UpdateStatus(ctx, id, newStatus)
	if err != nil {
		return models.Reservation{}, err
	}

	if requester.UserID != updated.UserID {
		s.Push.SendToUser(ctx, updated.UserID, "Reservation "+updated.Status,
			property.Title, map[string]string{"reservation_id": fmt.Sprint(updated.ID)})
	}
	return updated, nil
}

func (s *ReservationService) DeleteReservation(ctx context.Context, id int, requester models.Requester) error {
	res, err := s.ReservationRepo.GetReservationByID(ctx, id)
	if err != nil {
		return err
	}
	if !requester.IsAdmin() && requester.UserID != res.UserID {
		return models.ErrForbidden
	}
	return s.ReservationRepo.DeleteReservation(ctx, id)
}

// GetByProperty lists a property's reservations for its owner or an admin.
func (s *ReservationService) GetByProperty(ctx context.Context, propertyID int, requester models.Requester) ([]models.Reservation, error) {
	property, err := s.PropertyRepo.GetPropertyByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if !requester.IsAdmin() && requester.UserID != property.UserID {
		return nil, models.ErrForbidden
	}
	return s.ReservationRepo.GetReservationsByProperty(ctx, propertyID)
}

func (s *ReservationService) GetByUser(ctx context.Context, userID int) ([]models.Reservation, error) {
	return s.ReservationRepo.GetReservationsByUser(ctx, userID)
}
