package services

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"home-maintenance-server/models"
	"home-maintenance-server/repository"
	"home-maintenance-server/types"
)

// In-memory stores with the same error behaviour as the repository package.

type fakeRequestStore struct {
	mu      sync.Mutex
	byID    map[string]*models.ServiceRequest
	clock   time.Time
	lastLim int
}

func newFakeRequestStore() *fakeRequestStore {
	return &fakeRequestStore{
		byID:  make(map[string]*models.ServiceRequest),
		clock: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (f *fakeRequestStore) add(req models.ServiceRequest) *models.ServiceRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	if req.Status == "" {
		req.Status = models.RequestStatusPending
	}
	f.clock = f.clock.Add(time.Minute)
	if req.CreatedAt.IsZero() {
		req.CreatedAt = f.clock
	}
	stored := req
	f.byID[req.ID] = &stored
	out := stored
	return &out
}

func (f *fakeRequestStore) Create(_ context.Context, req *models.ServiceRequest) error {
	created := f.add(*req)
	*req = *created
	return nil
}

func (f *fakeRequestStore) FindByID(_ context.Context, id string) (*models.ServiceRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	req, ok := f.byID[id]
	if !ok {
		return nil, types.NewNotFoundError("Request not found")
	}
	out := *req
	return &out, nil
}

func (f *fakeRequestStore) filter(keep func(*models.ServiceRequest) bool) []models.ServiceRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.ServiceRequest{}
	for _, r := range f.byID {
		if keep(r) {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (f *fakeRequestStore) FindByCustomer(_ context.Context, customerID string) ([]models.ServiceRequest, error) {
	return f.filter(func(r *models.ServiceRequest) bool { return r.CustomerID == customerID }), nil
}

func (f *fakeRequestStore) FindByPhone(_ context.Context, phone string) ([]models.ServiceRequest, error) {
	return f.filter(func(r *models.ServiceRequest) bool { return r.CustomerPhone == phone }), nil
}

func (f *fakeRequestStore) Save(_ context.Context, req *models.ServiceRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := *req
	f.byID[req.ID] = &stored
	return nil
}

func (f *fakeRequestStore) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[id]; !ok {
		return types.NewNotFoundError("Request not found")
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeRequestStore) List(_ context.Context, filter models.RequestFilter) ([]models.ServiceRequest, error) {
	f.lastLim = filter.Limit
	out := f.filter(func(r *models.ServiceRequest) bool {
		return filter.Status == "" || r.Status == filter.Status
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ScheduledDate.After(out[j].ScheduledDate) })
	return out, nil
}

func (f *fakeRequestStore) ListAll(_ context.Context) ([]models.ServiceRequest, error) {
	return f.filter(func(*models.ServiceRequest) bool { return true }), nil
}

func (f *fakeRequestStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.byID)
}

type fakeUserStore struct {
	byID     map[string]*models.User
	requests *fakeRequestStore
}

func newFakeUserStore(requests *fakeRequestStore) *fakeUserStore {
	return &fakeUserStore{byID: make(map[string]*models.User), requests: requests}
}

func (f *fakeUserStore) add(u models.User) *models.User {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Role == "" {
		u.Role = models.RoleCustomer
	}
	stored := u
	f.byID[u.ID] = &stored
	return &u
}

func (f *fakeUserStore) FindByID(_ context.Context, id string) (*models.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, types.NewNotFoundError("User not found")
	}
	out := *u
	return &out, nil
}

func (f *fakeUserStore) FindByIDs(_ context.Context, ids []string) (map[string]models.User, error) {
	out := make(map[string]models.User)
	for _, id := range ids {
		if u, ok := f.byID[id]; ok {
			out[id] = *u
		}
	}
	return out, nil
}

func (f *fakeUserStore) find(match func(*models.User) bool) (*models.User, error) {
	for _, u := range f.byID {
		if match(u) {
			out := *u
			return &out, nil
		}
	}
	return nil, types.NewNotFoundError("User not found")
}

func (f *fakeUserStore) FindByPhone(_ context.Context, phone string) (*models.User, error) {
	return f.find(func(u *models.User) bool { return u.Phone == phone })
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	return f.find(func(u *models.User) bool { return u.Email != nil && *u.Email == email })
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	for _, u := range f.byID {
		if u.Phone == user.Phone {
			return types.NewConflictError("User with this phone or email already exists")
		}
	}
	*user = *f.add(*user)
	return nil
}

func (f *fakeUserStore) Save(_ context.Context, user *models.User) error {
	stored := *user
	f.byID[user.ID] = &stored
	return nil
}

func (f *fakeUserStore) List(_ context.Context) ([]models.User, error) {
	out := []models.User{}
	for _, u := range f.byID {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserStore) DeleteWithRequests(ctx context.Context, id string) (int64, error) {
	if _, ok := f.byID[id]; !ok {
		return 0, types.NewNotFoundError("User not found")
	}
	var removed int64
	if f.requests != nil {
		owned, _ := f.requests.FindByCustomer(ctx, id)
		for _, r := range owned {
			_ = f.requests.Delete(ctx, r.ID)
			removed++
		}
	}
	delete(f.byID, id)
	return removed, nil
}

type fakeReviewStore struct {
	byRequest map[string]*models.Review
	users     *fakeUserStore
}

func newFakeReviewStore(users *fakeUserStore) *fakeReviewStore {
	return &fakeReviewStore{byRequest: make(map[string]*models.Review), users: users}
}

func (f *fakeReviewStore) Create(_ context.Context, review *models.Review) error {
	if _, ok := f.byRequest[review.ServiceRequestID]; ok {
		return types.NewConflictError(repository.ErrAlreadyReviewed)
	}
	if review.ID == "" {
		review.ID = uuid.NewString()
	}
	stored := *review
	f.byRequest[review.ServiceRequestID] = &stored
	return nil
}

func (f *fakeReviewStore) FindByRequest(_ context.Context, requestID string) (*models.Review, error) {
	r, ok := f.byRequest[requestID]
	if !ok {
		return nil, types.NewNotFoundError("Review not found")
	}
	out := *r
	return &out, nil
}

func (f *fakeReviewStore) ListVerified(_ context.Context) ([]models.Review, error) {
	out := []models.Review{}
	for _, r := range f.byRequest {
		if !r.Verified {
			continue
		}
		review := *r
		if f.users != nil {
			if u, ok := f.users.byID[review.UserID]; ok {
				review.User = &models.User{ID: u.ID, Name: u.Name}
			}
		}
		out = append(out, review)
	}
	return out, nil
}

type fakeServiceStore struct {
	byID map[string]*models.Service
}

func newFakeServiceStore() *fakeServiceStore {
	return &fakeServiceStore{byID: make(map[string]*models.Service)}
}

func (f *fakeServiceStore) ListActive(ctx context.Context) ([]models.Service, error) {
	return f.List(ctx, models.StatusActive)
}

func (f *fakeServiceStore) List(_ context.Context, status models.ActivityStatus) ([]models.Service, error) {
	out := []models.Service{}
	for _, s := range f.byID {
		if status == "" || s.Status == status {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeServiceStore) FindByID(_ context.Context, id string) (*models.Service, error) {
	s, ok := f.byID[id]
	if !ok {
		return nil, types.NewNotFoundError("Service not found")
	}
	out := *s
	return &out, nil
}

func (f *fakeServiceStore) NameTaken(_ context.Context, name, excludeID string) (bool, error) {
	for id, s := range f.byID {
		if id != excludeID && strings.EqualFold(s.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeServiceStore) Create(_ context.Context, service *models.Service) error {
	if service.ID == "" {
		service.ID = uuid.NewString()
	}
	stored := *service
	f.byID[service.ID] = &stored
	return nil
}

func (f *fakeServiceStore) Save(ctx context.Context, service *models.Service) error {
	return f.Create(ctx, service)
}

func (f *fakeServiceStore) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return types.NewNotFoundError("Service not found")
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeServiceStore) UpdateStatus(_ context.Context, ids []string, status models.ActivityStatus) (int64, error) {
	var n int64
	for _, id := range ids {
		if s, ok := f.byID[id]; ok {
			s.Status = status
			n++
		}
	}
	return n, nil
}

type fakeAreaStore struct {
	byID map[string]*models.ServiceArea
}

func newFakeAreaStore() *fakeAreaStore {
	return &fakeAreaStore{byID: make(map[string]*models.ServiceArea)}
}

func (f *fakeAreaStore) ListActive(ctx context.Context) ([]models.ServiceArea, error) {
	return f.List(ctx, models.StatusActive)
}

func (f *fakeAreaStore) List(_ context.Context, status models.ActivityStatus) ([]models.ServiceArea, error) {
	out := []models.ServiceArea{}
	for _, a := range f.byID {
		if status == "" || a.Status == status {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAreaStore) FindByID(_ context.Context, id string) (*models.ServiceArea, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, types.NewNotFoundError("Area not found")
	}
	out := *a
	return &out, nil
}

func (f *fakeAreaStore) CityTaken(_ context.Context, cityName, excludeID string) (bool, error) {
	for id, a := range f.byID {
		if id != excludeID && strings.EqualFold(a.CityName, cityName) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAreaStore) Create(_ context.Context, area *models.ServiceArea) error {
	if area.ID == "" {
		area.ID = uuid.NewString()
	}
	stored := *area
	f.byID[area.ID] = &stored
	return nil
}

func (f *fakeAreaStore) Save(ctx context.Context, area *models.ServiceArea) error {
	return f.Create(ctx, area)
}

func (f *fakeAreaStore) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return types.NewNotFoundError("Area not found")
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeAreaStore) UpdateStatus(_ context.Context, ids []string, status models.ActivityStatus) (int64, error) {
	var n int64
	for _, id := range ids {
		if a, ok := f.byID[id]; ok {
			a.Status = status
			n++
		}
	}
	return n, nil
}

type fakeContactStore struct {
	contact *models.Contact
	saves   int
}

func (f *fakeContactStore) Get(_ context.Context) (*models.Contact, error) {
	if f.contact == nil {
		return nil, types.NewNotFoundError("Contact not found")
	}
	out := *f.contact
	return &out, nil
}

func (f *fakeContactStore) Save(_ context.Context, contact *models.Contact) error {
	if contact.ID == "" {
		contact.ID = uuid.NewString()
	}
	stored := *contact
	f.contact = &stored
	f.saves++
	return nil
}

type fakeSessionStore struct {
	mu       sync.Mutex
	sessions map[string]types.Identity
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]types.Identity)}
}

func (f *fakeSessionStore) Save(_ context.Context, sessionID string, identity *types.Identity) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions[sessionID] = *identity
	return nil
}

func (f *fakeSessionStore) Load(_ context.Context, sessionID string) (*types.Identity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id, ok := f.sessions[sessionID]
	if !ok {
		return nil, types.NewUnauthenticatedError("Session expired")
	}
	return &id, nil
}

func (f *fakeSessionStore) Delete(_ context.Context, sessionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.sessions, sessionID)
	return nil
}

type recordingNotifier struct {
	sent chan *models.ServiceRequest
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{sent: make(chan *models.ServiceRequest, 4)}
}

func (n *recordingNotifier) BookingCreated(_ context.Context, req *models.ServiceRequest) {
	n.sent <- req
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []string
}

func (p *recordingPublisher) Publish(eventType string, _ interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, eventType)
}

func (p *recordingPublisher) published() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.events...)
}
