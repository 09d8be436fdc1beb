package reviews

import (
	"context"
	"sync"

	"github.com/swiftmedhelp/backend/internal/domain/entities"
	"github.com/swiftmedhelp/backend/internal/domain/repositories"
)

// MemoryAdapter implements the ReviewRepository interface with in-process
// lists. Used in tests and when Redis is unavailable.
type MemoryAdapter struct {
	mu       sync.RWMutex
	byDoctor map[string][]*entities.Review
}

// NewMemoryAdapter creates a new in-memory review adapter pre-populated
// with the given seed reviews.
func NewMemoryAdapter(seed []*entities.Review) repositories.ReviewRepository {
	byDoctor := make(map[string][]*entities.Review)
	for _, r := range seed {
		byDoctor[r.DoctorID] = append(byDoctor[r.DoctorID], r)
	}
	return &MemoryAdapter{byDoctor: byDoctor}
}

// Create appends a review to the doctor's review list
func (a *MemoryAdapter) Create(ctx context.Context, review *entities.Review) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.byDoctor[review.DoctorID] = append(a.byDoctor[review.DoctorID], review)
	return nil
}

// ListByDoctor retrieves all reviews for a doctor, oldest first
func (a *MemoryAdapter) ListByDoctor(ctx context.Context, doctorID string) ([]*entities.Review, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	list := a.byDoctor[doctorID]
	result := make([]*entities.Review, len(list))
	copy(result, list)
	return result, nil
}
