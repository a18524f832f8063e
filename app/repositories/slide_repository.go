package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/kashvi-admin/app/models"
	"github.com/shashiranjanraj/kashvi-admin/pkg/database"
)

// SlideRepository handles database operations for HomeSlide.
// Slides are create-only.
type SlideRepository struct{}

func NewSlideRepository() *SlideRepository {
	return &SlideRepository{}
}

// Insert persists a new homepage slide.
func (r *SlideRepository) Insert(ctx context.Context, s *models.HomeSlide) (*models.HomeSlide, error) {
	col, err := database.Collection(models.HomeSlideCollection)
	if err != nil {
		return nil, err
	}

	s.CreatedAt = time.Now().UTC()

	res, err := col.InsertOne(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("slides: insert: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		s.ID = oid
	}
	return s, nil
}
