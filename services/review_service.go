package services

import (
	"context"
	"math"

	"github.com/rs/zerolog/log"

	"home-maintenance-server/metrics"
	"home-maintenance-server/models"
	"home-maintenance-server/repository"
	"home-maintenance-server/types"
)

// ReviewInput is a customer's rating of a completed service
type ReviewInput struct {
	Rating     int    `json:"rating"`
	Title      string `json:"title"`
	Comment    string `json:"comment"`
	Quality    *int   `json:"quality"`
	Response   *int   `json:"response"`
	Technician *int   `json:"technician"`
	Pricing    *int   `json:"pricing"`
}

type ReviewService struct {
	requests interface {
		FindByID(ctx context.Context, id string) (*models.ServiceRequest, error)
	}
	reviews ReviewStore
}

func NewReviewService(requests RequestStore, reviews ReviewStore) *ReviewService {
	return &ReviewService{requests: requests, reviews: reviews}
}

// Submit records the author's review of a request. The request must exist,
// belong to the author, be completed and not be reviewed yet, in that order.
func (s *ReviewService) Submit(ctx context.Context, requestID, authorID string, input ReviewInput) (*models.Review, error) {
	req, err := s.requests.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.CustomerID != authorID {
		return nil, types.NewForbiddenError("Access denied")
	}
	if req.Status != models.RequestStatusCompleted {
		return nil, types.NewConflictError("Only completed services can be reviewed")
	}

	existing, err := s.reviews.FindByRequest(ctx, req.ID)
	if err != nil && !types.IsKind(err, types.ErrorKindNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, types.NewConflictError(repository.ErrAlreadyReviewed)
	}

	review := &models.Review{
		ServiceRequestID: req.ID,
		UserID:           authorID,
		Rating:           input.Rating,
		Title:            input.Title,
		Comment:          input.Comment,
		Quality:          input.Quality,
		Response:         input.Response,
		Technician:       input.Technician,
		Pricing:          input.Pricing,
		Verified:         true,
	}
	if err := review.Validate(); err != nil {
		return nil, err
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}

	log.Info().Str("request_id", req.ID).Int("rating", review.Rating).Msg("⭐ Review submitted")
	metrics.ReviewsSubmittedTotal.Inc()
	return review, nil
}

// ForRequest returns the review of a request, or nil when there is none
func (s *ReviewService) ForRequest(ctx context.Context, requestID string) (*models.Review, error) {
	review, err := s.reviews.FindByRequest(ctx, requestID)
	if types.IsKind(err, types.ErrorKindNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return review, nil
}

// ListVerified returns verified reviews with their author's public details
func (s *ReviewService) ListVerified(ctx context.Context) ([]models.Review, error) {
	reviews, err := s.reviews.ListVerified(ctx)
	if err != nil {
		return nil, err
	}
	for i := range reviews {
		if u := reviews[i].User; u != nil {
			reviews[i].Author = &models.Author{ID: u.ID, Name: u.Name}
		}
	}
	return reviews, nil
}

// Stats averages the verified reviews. A missing sub-rating counts as zero.
func (s *ReviewService) Stats(ctx context.Context) (*models.ReviewStats, error) {
	reviews, err := s.reviews.ListVerified(ctx)
	if err != nil {
		return nil, err
	}

	stats := &models.ReviewStats{TotalReviews: len(reviews)}
	if len(reviews) == 0 {
		return stats, nil
	}

	var rating, quality, response, technician, pricing int
	for _, r := range reviews {
		rating += r.Rating
		quality += valueOrZero(r.Quality)
		response += valueOrZero(r.Response)
		technician += valueOrZero(r.Technician)
		pricing += valueOrZero(r.Pricing)
	}

	n := float64(len(reviews))
	stats.AvgRating = roundOneDecimal(float64(rating) / n)
	stats.AvgQuality = roundOneDecimal(float64(quality) / n)
	stats.AvgResponse = roundOneDecimal(float64(response) / n)
	stats.AvgTechnician = roundOneDecimal(float64(technician) / n)
	stats.AvgPricing = roundOneDecimal(float64(pricing) / n)
	return stats, nil
}

func valueOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func roundOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
