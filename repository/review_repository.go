package repository

import (
	"context"

	"gorm.io/gorm"

	"home-maintenance-server/models"
	"home-maintenance-server/types"
)

// ErrAlreadyReviewed is the message returned when a request already has a review
const ErrAlreadyReviewed = "This service has already been reviewed"

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create inserts a review. The unique index on service_request_id turns a
// concurrent second review into a conflict.
func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) error {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		return duplicateOr(err, ErrAlreadyReviewed, "failed to create review")
	}
	return nil
}

// FindByRequest returns the review of a request, or a not-found error
func (r *ReviewRepository) FindByRequest(ctx context.Context, requestID string) (*models.Review, error) {
	if !IsValidID(requestID) {
		return nil, types.NewNotFoundError("Review not found")
	}
	var review models.Review
	if err := r.db.WithContext(ctx).Where("service_request_id = ?", requestID).First(&review).Error; err != nil {
		return nil, notFoundOr(err, "Review not found", "failed to fetch review")
	}
	return &review, nil
}

// ListVerified returns verified reviews, newest first, with their authors loaded
func (r *ReviewRepository) ListVerified(ctx context.Context) ([]models.Review, error) {
	reviews := []models.Review{}
	err := r.db.WithContext(ctx).
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name")
		}).
		Where("verified = ?", true).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, types.NewInternalError("failed to fetch reviews", err)
	}
	return reviews, nil
}
