package routes

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"home-maintenance-server/models"
	"home-maintenance-server/services"
	"home-maintenance-server/types"
	"home-maintenance-server/utils"
)

type mockBookings struct{ mock.Mock }

func (m *mockBookings) Create(ctx context.Context, identity *types.Identity, input services.CreateBookingInput) (*models.ServiceRequest, error) {
	args := m.Called(ctx, identity, input)
	req, _ := args.Get(0).(*models.ServiceRequest)
	return req, args.Error(1)
}

func (m *mockBookings) Get(ctx context.Context, identity *types.Identity, id string) (*models.ServiceRequest, error) {
	args := m.Called(ctx, identity, id)
	req, _ := args.Get(0).(*models.ServiceRequest)
	return req, args.Error(1)
}

func (m *mockBookings) Cancel(ctx context.Context, identity *types.Identity, id string) (*models.ServiceRequest, error) {
	args := m.Called(ctx, identity, id)
	req, _ := args.Get(0).(*models.ServiceRequest)
	return req, args.Error(1)
}

func (m *mockBookings) Reschedule(ctx context.Context, identity *types.Identity, id, scheduledDate string) (*models.ServiceRequest, error) {
	args := m.Called(ctx, identity, id, scheduledDate)
	req, _ := args.Get(0).(*models.ServiceRequest)
	return req, args.Error(1)
}

func (m *mockBookings) Delete(ctx context.Context, identity *types.Identity, id string) error {
	return m.Called(ctx, identity, id).Error(0)
}

func (m *mockBookings) AdminUpdate(ctx context.Context, id string, input services.AdminUpdateInput) (*models.ServiceRequest, error) {
	args := m.Called(ctx, id, input)
	req, _ := args.Get(0).(*models.ServiceRequest)
	return req, args.Error(1)
}

func (m *mockBookings) AdminList(ctx context.Context, filter models.RequestFilter) ([]models.ServiceRequest, error) {
	args := m.Called(ctx, filter)
	list, _ := args.Get(0).([]models.ServiceRequest)
	return list, args.Error(1)
}

func (m *mockBookings) AdminGet(ctx context.Context, id string) (*models.ServiceRequest, error) {
	args := m.Called(ctx, id)
	req, _ := args.Get(0).(*models.ServiceRequest)
	return req, args.Error(1)
}

func (m *mockBookings) CustomerHistory(ctx context.Context, phone string) (*services.CustomerHistory, error) {
	args := m.Called(ctx, phone)
	h, _ := args.Get(0).(*services.CustomerHistory)
	return h, args.Error(1)
}

func (m *mockBookings) Export(ctx context.Context) ([]utils.ExportRow, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]utils.ExportRow)
	return rows, args.Error(1)
}

type mockResolver struct{ mock.Mock }

func (m *mockResolver) ResolveRequests(ctx context.Context, userID, phone string) ([]models.ServiceRequest, error) {
	args := m.Called(ctx, userID, phone)
	list, _ := args.Get(0).([]models.ServiceRequest)
	return list, args.Error(1)
}

type mockReviews struct{ mock.Mock }

func (m *mockReviews) Submit(ctx context.Context, requestID, authorID string, input services.ReviewInput) (*models.Review, error) {
	args := m.Called(ctx, requestID, authorID, input)
	r, _ := args.Get(0).(*models.Review)
	return r, args.Error(1)
}

func (m *mockReviews) ForRequest(ctx context.Context, requestID string) (*models.Review, error) {
	args := m.Called(ctx, requestID)
	r, _ := args.Get(0).(*models.Review)
	return r, args.Error(1)
}

func (m *mockReviews) ListVerified(ctx context.Context) ([]models.Review, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]models.Review)
	return list, args.Error(1)
}

func (m *mockReviews) Stats(ctx context.Context) (*models.ReviewStats, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).(*models.ReviewStats)
	return s, args.Error(1)
}

type mockCatalog struct{ mock.Mock }

func (m *mockCatalog) ListActive(ctx context.Context) ([]models.Service, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]models.Service)
	return list, args.Error(1)
}

func (m *mockCatalog) ListAll(ctx context.Context, status string) ([]models.Service, error) {
	args := m.Called(ctx, status)
	list, _ := args.Get(0).([]models.Service)
	return list, args.Error(1)
}

func (m *mockCatalog) Get(ctx context.Context, id string) (*models.Service, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*models.Service)
	return s, args.Error(1)
}

func (m *mockCatalog) Create(ctx context.Context, input services.ServiceInput) (*models.Service, error) {
	args := m.Called(ctx, input)
	s, _ := args.Get(0).(*models.Service)
	return s, args.Error(1)
}

func (m *mockCatalog) Update(ctx context.Context, id string, input services.ServiceInput) (*models.Service, error) {
	args := m.Called(ctx, id, input)
	s, _ := args.Get(0).(*models.Service)
	return s, args.Error(1)
}

func (m *mockCatalog) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCatalog) BulkStatus(ctx context.Context, ids []string, status string) (int64, error) {
	args := m.Called(ctx, ids, status)
	return args.Get(0).(int64), args.Error(1)
}

type mockAreas struct{ mock.Mock }

func (m *mockAreas) ListActive(ctx context.Context) ([]models.ServiceArea, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]models.ServiceArea)
	return list, args.Error(1)
}

func (m *mockAreas) ListAll(ctx context.Context, status string) ([]models.ServiceArea, error) {
	args := m.Called(ctx, status)
	list, _ := args.Get(0).([]models.ServiceArea)
	return list, args.Error(1)
}

func (m *mockAreas) Get(ctx context.Context, id string) (*models.ServiceArea, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*models.ServiceArea)
	return a, args.Error(1)
}

func (m *mockAreas) Create(ctx context.Context, input services.AreaInput) (*models.ServiceArea, error) {
	args := m.Called(ctx, input)
	a, _ := args.Get(0).(*models.ServiceArea)
	return a, args.Error(1)
}

func (m *mockAreas) Update(ctx context.Context, id string, input services.AreaInput) (*models.ServiceArea, error) {
	args := m.Called(ctx, id, input)
	a, _ := args.Get(0).(*models.ServiceArea)
	return a, args.Error(1)
}

func (m *mockAreas) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockAreas) BulkStatus(ctx context.Context, ids []string, status string) (int64, error) {
	args := m.Called(ctx, ids, status)
	return args.Get(0).(int64), args.Error(1)
}

type mockContact struct{ mock.Mock }

func (m *mockContact) Get(ctx context.Context) (*models.Contact, error) {
	args := m.Called(ctx)
	c, _ := args.Get(0).(*models.Contact)
	return c, args.Error(1)
}

func (m *mockContact) Update(ctx context.Context, input services.ContactInput) (*models.Contact, error) {
	args := m.Called(ctx, input)
	c, _ := args.Get(0).(*models.Contact)
	return c, args.Error(1)
}

type mockUsers struct{ mock.Mock }

func (m *mockUsers) VerifyOTP(ctx context.Context, input services.VerifyOTPInput) (*models.User, error) {
	args := m.Called(ctx, input)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *mockUsers) AdminLogin(ctx context.Context, email, password string) (*models.User, error) {
	args := m.Called(ctx, email, password)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *mockUsers) List(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]models.User)
	return list, args.Error(1)
}

func (m *mockUsers) Delete(ctx context.Context, actor *types.Identity, id string) error {
	return m.Called(ctx, actor, id).Error(0)
}

type mockSessions struct{ mock.Mock }

func (m *mockSessions) Issue(ctx context.Context, identity *types.Identity) (string, error) {
	args := m.Called(ctx, identity)
	return args.String(0), args.Error(1)
}

func (m *mockSessions) Resolve(ctx context.Context, token string) (*types.Identity, error) {
	args := m.Called(ctx, token)
	id, _ := args.Get(0).(*types.Identity)
	return id, args.Error(1)
}

func (m *mockSessions) Destroy(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *mockSessions) TTL() time.Duration {
	return 24 * time.Hour
}
