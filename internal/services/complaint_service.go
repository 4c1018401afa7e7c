package services

import (
	"context"

	"turakBack/internal/models"
	"turakBack/internal/repositories"
)

type ComplaintService struct {
	ComplaintRepo *repositories.ComplaintRepository
}

func (s *ComplaintService) CreateComplaint(ctx context.Context, c models.Complaint) (models.Complaint, error) {
	if !models.IsValidComplaintReason(c.Reason) {
		return models.Complaint{}, models.ErrValidation
	}
	return s.ComplaintRepo.CreateComplaint(ctx, c)
}

func (s *ComplaintService) GetAllComplaints(ctx context.Context) ([]models.Complaint, error) {
	return s.ComplaintRepo.GetAllComplaints(ctx)
}

func (s *ComplaintService) GetComplaintsByPropertyID(ctx context.Context, propertyID int) ([]models.Complaint, error) {
	return s.ComplaintRepo.GetComplaintsByPropertyID(ctx, propertyID)
}

func (s *ComplaintService) UpdateComplaintStatus(ctx context.Context, id int, status string) (models.Complaint, error) {
	if !models.IsValidComplaintStatus(status) {
		return models.Complaint{}, models.ErrValidation
	}
	return s.ComplaintRepo.UpdateComplaintStatus(ctx, id, status)
}

func (s *ComplaintService) DeleteComplaintByID(ctx context.Context, id int) error {
	return s.ComplaintRepo.DeleteComplaintByID(ctx, id)
}
