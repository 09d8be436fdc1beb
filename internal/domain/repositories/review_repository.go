package repositories

import (
	"context"

	"github.com/swiftmedhelp/backend/internal/domain/entities"
)

// ReviewRepository defines the interface for patient review storage
type ReviewRepository interface {
	// Create appends a review to the doctor's review list
	Create(ctx context.Context, review *entities.Review) error

	// ListByDoctor retrieves all reviews for a doctor, oldest first
	ListByDoctor(ctx context.Context, doctorID string) ([]*entities.Review, error)
}
