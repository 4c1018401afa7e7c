package services

import (
	"context"

	"turakBack/internal/models"
	"turakBack/internal/repositories"
)

type FavoriteService struct {
	FavoriteRepo *repositories.FavoriteRepository
}

func (s *FavoriteService) AddToFavorites(ctx context.Context, userID, propertyID int) error {
	return s.FavoriteRepo.AddToFavorites(ctx, userID, propertyID)
}

func (s *FavoriteService) RemoveFromFavorites(ctx context.Context, userID, propertyID int) error {
	return s.FavoriteRepo.RemoveFromFavorites(ctx, userID, propertyID)
}

func (s *FavoriteService) IsFavorite(ctx context.Context, userID, propertyID int) (bool, error) {
	return s.FavoriteRepo.IsFavorite(ctx, userID, propertyID)
}

func (s *FavoriteService) GetFavoritesByUser(ctx context.Context, userID int) ([]models.Favorite, error) {
	return s.FavoriteRepo.GetFavoritesByUser(ctx, userID)
}
