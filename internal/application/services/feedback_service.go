package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/swiftmedhelp/backend/internal/domain/entities"
	"github.com/swiftmedhelp/backend/internal/domain/repositories"
	apperrors "github.com/swiftmedhelp/backend/pkg/errors"
)

// ReviewRequest holds a patient's feedback for a doctor
type ReviewRequest struct {
	PatientName string                   `json:"patient_name"`
	Rating      int                      `json:"rating"`
	Comment     string                   `json:"comment"`
	Categories  entities.CategoryRatings `json:"categories"`
}

// FeedbackService handles patient review submissions. Reviews feed the
// doctor profile display only; the search engine never reads them.
type FeedbackService struct {
	repo       repositories.ReviewRepository
	doctorRepo repositories.DoctorRepository
	now        func() time.Time
}

// NewFeedbackService creates a new feedback service
func NewFeedbackService(repo repositories.ReviewRepository, doctorRepo repositories.DoctorRepository) *FeedbackService {
	return &FeedbackService{
		repo:       repo,
		doctorRepo: doctorRepo,
		now:        time.Now,
	}
}

// Submit validates and stores a review for a doctor
func (s *FeedbackService) Submit(ctx context.Context, doctorID string, req ReviewRequest) (*entities.Review, error) {
	if _, err := s.doctorRepo.GetByID(ctx, doctorID); err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.PatientName) == "" {
		return nil, apperrors.NewValidationError("patient name is required")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperrors.NewValidationError("rating must be between 1 and 5")
	}
	for name, value := range map[string]int{
		"knowledge":       req.Categories.Knowledge,
		"communication":   req.Categories.Communication,
		"wait_time":       req.Categories.WaitTime,
		"cleanliness":     req.Categories.Cleanliness,
		"staff_behavior":  req.Categories.StaffBehavior,
		"value_for_money": req.Categories.ValueForMoney,
	} {
		if value < 1 || value > 5 {
			return nil, apperrors.NewValidationError(name + " rating must be between 1 and 5")
		}
	}
	if len(req.Comment) > 1000 {
		return nil, apperrors.NewValidationError("comment is too long")
	}

	review := &entities.Review{
		ID:          uuid.New().String(),
		DoctorID:    doctorID,
		PatientName: strings.TrimSpace(req.PatientName),
		Rating:      req.Rating,
		Comment:     strings.TrimSpace(req.Comment),
		Categories:  req.Categories,
		CreatedAt:   s.now().UTC(),
		Verified:    true,
	}

	if err := s.repo.Create(ctx, review); err != nil {
		return nil, apperrors.NewInternalError("failed to store review", err)
	}
	return review, nil
}

// ListByDoctor returns all reviews for a doctor, oldest first
func (s *FeedbackService) ListByDoctor(ctx context.Context, doctorID string) ([]*entities.Review, error) {
	if _, err := s.doctorRepo.GetByID(ctx, doctorID); err != nil {
		return nil, err
	}
	return s.repo.ListByDoctor(ctx, doctorID)
}
