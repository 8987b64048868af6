package services

import (
	"context"

	"home-maintenance-server/models"
	"home-maintenance-server/types"
)

// The services depend on these store contracts. The repository package
// provides the PostgreSQL and Redis implementations.

type RequestStore interface {
	Create(ctx context.Context, req *models.ServiceRequest) error
	FindByID(ctx context.Context, id string) (*models.ServiceRequest, error)
	FindByCustomer(ctx context.Context, customerID string) ([]models.ServiceRequest, error)
	FindByPhone(ctx context.Context, phone string) ([]models.ServiceRequest, error)
	Save(ctx context.Context, req *models.ServiceRequest) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter models.RequestFilter) ([]models.ServiceRequest, error)
	ListAll(ctx context.Context) ([]models.ServiceRequest, error)
}

type UserStore interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByIDs(ctx context.Context, ids []string) (map[string]models.User, error)
	FindByPhone(ctx context.Context, phone string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Save(ctx context.Context, user *models.User) error
	List(ctx context.Context) ([]models.User, error)
	DeleteWithRequests(ctx context.Context, id string) (int64, error)
}

type ReviewStore interface {
	Create(ctx context.Context, review *models.Review) error
	FindByRequest(ctx context.Context, requestID string) (*models.Review, error)
	ListVerified(ctx context.Context) ([]models.Review, error)
}

type ServiceStore interface {
	ListActive(ctx context.Context) ([]models.Service, error)
	List(ctx context.Context, status models.ActivityStatus) ([]models.Service, error)
	FindByID(ctx context.Context, id string) (*models.Service, error)
	NameTaken(ctx context.Context, name, excludeID string) (bool, error)
	Create(ctx context.Context, service *models.Service) error
	Save(ctx context.Context, service *models.Service) error
	Delete(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, ids []string, status models.ActivityStatus) (int64, error)
}

type AreaStore interface {
	ListActive(ctx context.Context) ([]models.ServiceArea, error)
	List(ctx context.Context, status models.ActivityStatus) ([]models.ServiceArea, error)
	FindByID(ctx context.Context, id string) (*models.ServiceArea, error)
	CityTaken(ctx context.Context, cityName, excludeID string) (bool, error)
	Create(ctx context.Context, area *models.ServiceArea) error
	Save(ctx context.Context, area *models.ServiceArea) error
	Delete(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, ids []string, status models.ActivityStatus) (int64, error)
}

type ContactStore interface {
	Get(ctx context.Context) (*models.Contact, error)
	Save(ctx context.Context, contact *models.Contact) error
}

type SessionStore interface {
	Save(ctx context.Context, sessionID string, identity *types.Identity) error
	Load(ctx context.Context, sessionID string) (*types.Identity, error)
	Delete(ctx context.Context, sessionID string) error
}

// Notifier is told about new bookings after they are stored
type Notifier interface {
	BookingCreated(ctx context.Context, req *models.ServiceRequest)
}

// EventPublisher pushes events to the admin live feed
type EventPublisher interface {
	Publish(eventType string, data interface{})
}
