package services

import (
	"context"
	"log"

	"turakBack/internal/models"
	"turakBack/internal/repositories"
)

// MapResultLimit caps the map-bounded search to keep map rendering cheap.
const MapResultLimit = 100

type PropertyService struct {
	PropertyRepo *repositories.PropertyRepository
}

func validateProperty(p models.Property) error {
	if p.Title == "" || p.Price < 0 {
		return models.ErrValidation
	}
	if p.Latitude < -90 || p.Latitude > 90 {
		return models.ErrValidation
	}
	if p.Longitude < -180 || p.Longitude > 180 {
		return models.ErrValidation
	}
	if !models.IsValidTransactionType(p.TransactionType) {
		return models.ErrValidation
	}
	if !models.IsValidPropertyType(p.PropertyType) {
		return models.ErrValidation
	}
	return nil
}

func (s *PropertyService) CreateProperty(ctx context.Context, p models.Property) (models.Property, error) {
	if err := validateProperty(p); err != nil {
		return models.Property{}, err
	}
	return s.PropertyRepo.CreateProperty(ctx, p)
}

// GetPropertyByID returns the listing and bumps its view counter. The bump
// is best effort.
func (s *PropertyService) GetPropertyByID(ctx context.Context, id int) (models.Property, error) {
	p, err := s.PropertyRepo.GetPropertyByID(ctx, id)
	if err != nil {
		return models.Property{}, err
	}
	if err := s.PropertyRepo.IncrementViews(ctx, id); err != nil {
		log.Printf("failed to increment views for property %d: %v", id, err)
	} else {
		p.Views++
	}
	return p, nil
}

func (s *PropertyService) UpdateProperty(ctx context.Context, p models.Property, requester models.Requester) (models.Property, error) {
	existing, err := s.PropertyRepo.GetPropertyByID(ctx, p.ID)
	if err != nil {
		return models.Property{}, err
	}
	if !requester.IsAdmin() && requester.UserID != existing.UserID {
		return models.Property{}, models.ErrForbidden
	}
	if err := validateProperty(p); err != nil {
		return models.Property{}, err
	}
	return s.PropertyRepo.UpdateProperty(ctx, p)
}

func (s *PropertyService) DeleteProperty(ctx context.Context, id int, requester models.Requester) error {
	existing, err := s.PropertyRepo.GetPropertyByID(ctx, id)
	if err != nil {
		return err
	}
	if !requester.IsAdmin() && requester.UserID != existing.UserID {
		return models.ErrForbidden
	}
	return s.PropertyRepo.DeleteProperty(ctx, id)
}

func (s *PropertyService) ArchiveProperty(ctx context.Context, id int, archived bool, requester models.Requester) error {
	existing, err := s.PropertyRepo.GetPropertyByID(ctx, id)
	if err != nil {
		return err
	}
	if !requester.IsAdmin() && requester.UserID != existing.UserID {
		return models.ErrForbidden
	}
	return s.PropertyRepo.SetArchived(ctx, id, archived)
}

// GetFilteredProperties is the browse listing: unbounded unless the caller
// asks for a limit. The bounding box belongs to the map variant only.
func (s *PropertyService) GetFilteredProperties(ctx context.Context, filter models.PropertyFilter) ([]models.Property, error) {
	filter.Bounds = nil
	return s.PropertyRepo.GetFilteredProperties(ctx, filter)
}

// GetMapProperties runs the bounding-box variant, capped at MapResultLimit.
func (s *PropertyService) GetMapProperties(ctx context.Context, filter models.PropertyFilter) ([]models.Property, error) {
	if filter.Bounds == nil {
		return nil, models.ErrValidation
	}
	filter.Limit = MapResultLimit
	return s.PropertyRepo.GetFilteredProperties(ctx, filter)
}

func (s *PropertyService) GetPropertiesByUserID(ctx context.Context, userID int) ([]models.Property, error) {
	return s.PropertyRepo.GetPropertiesByUserID(ctx, userID)
}
