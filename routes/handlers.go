package routes

import (
	"context"
	"time"

	gws "github.com/gorilla/websocket"

	"home-maintenance-server/models"
	"home-maintenance-server/services"
	"home-maintenance-server/types"
	"home-maintenance-server/utils"
	ws "home-maintenance-server/websocket"
)

// The handlers depend on these service contracts so they can be exercised
// with mocks.

type BookingAPI interface {
	Create(ctx context.Context, identity *types.Identity, input services.CreateBookingInput) (*models.ServiceRequest, error)
	Get(ctx context.Context, identity *types.Identity, id string) (*models.ServiceRequest, error)
	Cancel(ctx context.Context, identity *types.Identity, id string) (*models.ServiceRequest, error)
	Reschedule(ctx context.Context, identity *types.Identity, id, scheduledDate string) (*models.ServiceRequest, error)
	Delete(ctx context.Context, identity *types.Identity, id string) error
	AdminUpdate(ctx context.Context, id string, input services.AdminUpdateInput) (*models.ServiceRequest, error)
	AdminList(ctx context.Context, filter models.RequestFilter) ([]models.ServiceRequest, error)
	AdminGet(ctx context.Context, id string) (*models.ServiceRequest, error)
	CustomerHistory(ctx context.Context, phone string) (*services.CustomerHistory, error)
	Export(ctx context.Context) ([]utils.ExportRow, error)
}

type RequestResolver interface {
	ResolveRequests(ctx context.Context, userID, phone string) ([]models.ServiceRequest, error)
}

type ReviewAPI interface {
	Submit(ctx context.Context, requestID, authorID string, input services.ReviewInput) (*models.Review, error)
	ForRequest(ctx context.Context, requestID string) (*models.Review, error)
	ListVerified(ctx context.Context) ([]models.Review, error)
	Stats(ctx context.Context) (*models.ReviewStats, error)
}

type CatalogAPI interface {
	ListActive(ctx context.Context) ([]models.Service, error)
	ListAll(ctx context.Context, status string) ([]models.Service, error)
	Get(ctx context.Context, id string) (*models.Service, error)
	Create(ctx context.Context, input services.ServiceInput) (*models.Service, error)
	Update(ctx context.Context, id string, input services.ServiceInput) (*models.Service, error)
	Delete(ctx context.Context, id string) error
	BulkStatus(ctx context.Context, ids []string, status string) (int64, error)
}

type AreaAPI interface {
	ListActive(ctx context.Context) ([]models.ServiceArea, error)
	ListAll(ctx context.Context, status string) ([]models.ServiceArea, error)
	Get(ctx context.Context, id string) (*models.ServiceArea, error)
	Create(ctx context.Context, input services.AreaInput) (*models.ServiceArea, error)
	Update(ctx context.Context, id string, input services.AreaInput) (*models.ServiceArea, error)
	Delete(ctx context.Context, id string) error
	BulkStatus(ctx context.Context, ids []string, status string) (int64, error)
}

type ContactAPI interface {
	Get(ctx context.Context) (*models.Contact, error)
	Update(ctx context.Context, input services.ContactInput) (*models.Contact, error)
}

type UserAPI interface {
	VerifyOTP(ctx context.Context, input services.VerifyOTPInput) (*models.User, error)
	AdminLogin(ctx context.Context, email, password string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Delete(ctx context.Context, actor *types.Identity, id string) error
}

type SessionAPI interface {
	Issue(ctx context.Context, identity *types.Identity) (string, error)
	Resolve(ctx context.Context, token string) (*types.Identity, error)
	Destroy(ctx context.Context, token string) error
	TTL() time.Duration
}

// CookieOptions controls the session cookie
type CookieOptions struct {
	Name   string
	Secure bool
}

// Handlers holds everything the HTTP layer calls into
type Handlers struct {
	Bookings BookingAPI
	Resolver RequestResolver
	Reviews  ReviewAPI
	Catalog  CatalogAPI
	Areas    AreaAPI
	Contact  ContactAPI
	Users    UserAPI
	Sessions SessionAPI
	Cookie   CookieOptions

	Hub      *ws.Hub
	Upgrader *gws.Upgrader
}
