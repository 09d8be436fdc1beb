package reviews

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/swiftmedhelp/backend/internal/domain/entities"
	"github.com/swiftmedhelp/backend/internal/domain/repositories"
	redisclient "github.com/swiftmedhelp/backend/internal/infrastructure/clients/redis"
)

// RedisAdapter implements the ReviewRepository interface using a Redis
// list per doctor.
type RedisAdapter struct {
	client *redisclient.Client
}

// NewRedisAdapter creates a new Redis review adapter
func NewRedisAdapter(client *redisclient.Client) repositories.ReviewRepository {
	return &RedisAdapter{client: client}
}

// Create appends a review to the doctor's review list
func (a *RedisAdapter) Create(ctx context.Context, review *entities.Review) error {
	payload, err := json.Marshal(review)
	if err != nil {
		return fmt.Errorf("failed to encode review: %w", err)
	}
	if err := a.client.Client().RPush(ctx, reviewKey(review.DoctorID), payload).Err(); err != nil {
		return fmt.Errorf("failed to store review: %w", err)
	}
	return nil
}

// ListByDoctor retrieves all reviews for a doctor, oldest first
func (a *RedisAdapter) ListByDoctor(ctx context.Context, doctorID string) ([]*entities.Review, error) {
	raw, err := a.client.Client().LRange(ctx, reviewKey(doctorID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	result := make([]*entities.Review, 0, len(raw))
	for _, item := range raw {
		var review entities.Review
		if err := json.Unmarshal([]byte(item), &review); err != nil {
			return nil, fmt.Errorf("failed to decode review: %w", err)
		}
		result = append(result, &review)
	}
	return result, nil
}

func reviewKey(doctorID string) string {
	return "reviews:doctor:" + doctorID
}
