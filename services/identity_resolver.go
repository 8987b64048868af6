package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"home-maintenance-server/models"
	"home-maintenance-server/repository"
	"home-maintenance-server/utils"
)

type requestFinder interface {
	FindByCustomer(ctx context.Context, customerID string) ([]models.ServiceRequest, error)
	FindByPhone(ctx context.Context, phone string) ([]models.ServiceRequest, error)
}

// IdentityResolver finds a customer's requests by user id, falling back to
// the phone snapshot for requests placed under an earlier account.
type IdentityResolver struct {
	requests requestFinder
}

func NewIdentityResolver(requests requestFinder) *IdentityResolver {
	return &IdentityResolver{requests: requests}
}

// ResolveRequests returns the customer's requests newest first. It never
// returns nil on success.
func (r *IdentityResolver) ResolveRequests(ctx context.Context, userID, phone string) ([]models.ServiceRequest, error) {
	requests := []models.ServiceRequest{}

	if repository.IsValidID(userID) {
		byID, err := r.requests.FindByCustomer(ctx, userID)
		if err != nil {
			return nil, err
		}
		requests = byID
		log.Debug().Str("user_id", userID).Int("count", len(requests)).Msg("Requests found by user id")
	}

	phone = utils.NormalizePhone(phone)
	if len(requests) == 0 && phone != "" {
		log.Debug().Str("phone", phone).Msg("⚠️ No results by id, trying phone")
		byPhone, err := r.requests.FindByPhone(ctx, phone)
		if err != nil {
			return nil, err
		}
		requests = byPhone
	}

	if requests == nil {
		requests = []models.ServiceRequest{}
	}
	return requests, nil
}
