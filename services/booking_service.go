package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"home-maintenance-server/metrics"
	"home-maintenance-server/models"
	"home-maintenance-server/repository"
	"home-maintenance-server/types"
	"home-maintenance-server/utils"
	"home-maintenance-server/websocket"
)

const adminListLimit = 100

// CreateBookingInput is what a customer submits to book a service
type CreateBookingInput struct {
	Service       string   `json:"service"`
	Description   string   `json:"description"`
	ScheduledDate string   `json:"scheduledDate"`
	Price         *float64 `json:"price"`
	Location      string   `json:"location"`
}

// AdminUpdateInput carries the fields an admin may change. Nil means leave
// unchanged.
type AdminUpdateInput struct {
	Status        *models.RequestStatus `json:"status"`
	AssignedStaff *string               `json:"assignedStaff"`
	Notes         *string               `json:"notes"`
	Price         *float64              `json:"price"`
}

// CustomerHistory is the result of an admin phone lookup
type CustomerHistory struct {
	Found         bool                    `json:"found"`
	Message       string                  `json:"message,omitempty"`
	Phone         string                  `json:"phone,omitempty"`
	TotalBookings int                     `json:"totalBookings,omitempty"`
	Requests      []models.ServiceRequest `json:"requests,omitempty"`
}

// BookingService owns the service request lifecycle
type BookingService struct {
	requests RequestStore
	users    UserStore
	notifier Notifier
	events   EventPublisher
}

func NewBookingService(requests RequestStore, users UserStore, notifier Notifier, events EventPublisher) *BookingService {
	return &BookingService{
		requests: requests,
		users:    users,
		notifier: notifier,
		events:   events,
	}
}

// Create books a service for the session's customer. The confirmation message
// is sent after the response path has moved on.
func (s *BookingService) Create(ctx context.Context, identity *types.Identity, input CreateBookingInput) (*models.ServiceRequest, error) {
	if identity == nil {
		return nil, types.NewUnauthenticatedError("Not logged in")
	}

	req := &models.ServiceRequest{
		CustomerID:    identity.UserID,
		CustomerPhone: identity.Phone,
		CustomerName:  identity.Name,
		Service:       strings.TrimSpace(input.Service),
		Description:   input.Description,
		Status:        models.RequestStatusPending,
		Price:         input.Price,
		Location:      input.Location,
	}
	if input.ScheduledDate != "" {
		date, err := utils.ParseDate(input.ScheduledDate)
		if err != nil {
			return nil, types.NewValidationError("Invalid scheduled date")
		}
		req.ScheduledDate = date
	}
	if req.CustomerName == "" {
		req.CustomerName = models.DefaultCustomerName
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.requests.Create(ctx, req); err != nil {
		return nil, err
	}

	log.Info().
		Str("request_id", req.ID).
		Str("service", req.Service).
		Str("customer_id", req.CustomerID).
		Str("customer_phone", req.CustomerPhone).
		Msg("✅ Booking saved successfully")
	metrics.BookingsCreatedTotal.Inc()

	s.publishRequest(websocket.EventBookingCreated, req)

	if s.notifier != nil {
		snapshot := *req
		go s.notifier.BookingCreated(context.WithoutCancel(ctx), &snapshot)
	}

	return req, nil
}

// ownedRequest loads a request and checks it belongs to the caller
func (s *BookingService) ownedRequest(ctx context.Context, identity *types.Identity, id string) (*models.ServiceRequest, error) {
	if identity == nil {
		return nil, types.NewUnauthenticatedError("Not logged in")
	}
	req, err := s.requests.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.CustomerID != identity.UserID {
		return nil, types.NewForbiddenError("Access denied")
	}
	return req, nil
}

// Get returns one of the caller's requests
func (s *BookingService) Get(ctx context.Context, identity *types.Identity, id string) (*models.ServiceRequest, error) {
	return s.ownedRequest(ctx, identity, id)
}

// Cancel moves a pending request to cancelled
func (s *BookingService) Cancel(ctx context.Context, identity *types.Identity, id string) (*models.ServiceRequest, error) {
	req, err := s.ownedRequest(ctx, identity, id)
	if err != nil {
		return nil, err
	}
	if req.Status != models.RequestStatusPending {
		return nil, types.NewConflictError("Only pending requests can be cancelled")
	}

	req.Status = models.RequestStatusCancelled
	if err := s.requests.Save(ctx, req); err != nil {
		return nil, err
	}

	metrics.BookingTransitionsTotal.WithLabelValues(string(req.Status), "customer").Inc()
	s.publishRequest(websocket.EventBookingUpdated, req)
	return req, nil
}

// Reschedule replaces the date of a pending request
func (s *BookingService) Reschedule(ctx context.Context, identity *types.Identity, id, scheduledDate string) (*models.ServiceRequest, error) {
	req, err := s.ownedRequest(ctx, identity, id)
	if err != nil {
		return nil, err
	}
	if req.Status != models.RequestStatusPending {
		return nil, types.NewConflictError("Only pending requests can be rescheduled")
	}
	if strings.TrimSpace(scheduledDate) == "" {
		return nil, types.NewValidationError("New date is required")
	}
	date, err := utils.ParseDate(scheduledDate)
	if err != nil {
		return nil, types.NewValidationError("Invalid scheduled date")
	}

	req.ScheduledDate = date
	if err := s.requests.Save(ctx, req); err != nil {
		return nil, err
	}

	s.publishRequest(websocket.EventBookingUpdated, req)
	return req, nil
}

// Delete removes one of the caller's requests unless work on it has started
func (s *BookingService) Delete(ctx context.Context, identity *types.Identity, id string) error {
	req, err := s.ownedRequest(ctx, identity, id)
	if err != nil {
		return err
	}
	if req.Status == models.RequestStatusAssigned || req.Status == models.RequestStatusInProgress {
		return types.NewConflictError("Cannot delete assigned or in-progress bookings")
	}

	if err := s.requests.Delete(ctx, req.ID); err != nil {
		return err
	}

	log.Info().Str("request_id", req.ID).Str("phone", identity.Phone).Msg("🗑️ Booking deleted")
	s.publish(websocket.EventBookingDeleted, map[string]string{"_id": req.ID})
	return nil
}

// AdminUpdate changes status, staff, notes or price without any lifecycle
// guard
func (s *BookingService) AdminUpdate(ctx context.Context, id string, input AdminUpdateInput) (*models.ServiceRequest, error) {
	if input.Status != nil && *input.Status != "" && !input.Status.IsValid() {
		return nil, types.NewValidationError("Invalid status")
	}
	if input.AssignedStaff != nil && *input.AssignedStaff != "" && !repository.IsValidID(*input.AssignedStaff) {
		return nil, types.NewValidationError("Invalid staff id")
	}
	if input.Price != nil && *input.Price < 0 {
		return nil, types.NewValidationError("Price cannot be negative")
	}

	req, err := s.requests.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	statusChanged := false
	if input.Status != nil && *input.Status != "" {
		statusChanged = req.Status != *input.Status
		req.Status = *input.Status
	}
	if input.AssignedStaff != nil && *input.AssignedStaff != "" {
		staff := *input.AssignedStaff
		req.AssignedStaffID = &staff
	}
	if input.Notes != nil {
		req.Notes = *input.Notes
	}
	if input.Price != nil {
		price := *input.Price
		req.Price = &price
	}

	if err := s.requests.Save(ctx, req); err != nil {
		return nil, err
	}

	if statusChanged {
		metrics.BookingTransitionsTotal.WithLabelValues(string(req.Status), "admin").Inc()
	}
	log.Info().Str("request_id", req.ID).Str("status", string(req.Status)).Msg("📝 Request updated by admin")
	s.publishRequest(websocket.EventBookingUpdated, req)
	return req, nil
}

// AdminList returns up to 100 requests, latest scheduled date first
func (s *BookingService) AdminList(ctx context.Context, filter models.RequestFilter) ([]models.ServiceRequest, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, types.NewValidationError("Invalid status")
	}
	filter.Limit = adminListLimit
	return s.requests.List(ctx, filter)
}

func (s *BookingService) AdminGet(ctx context.Context, id string) (*models.ServiceRequest, error) {
	return s.requests.FindByID(ctx, id)
}

// CustomerHistory looks requests up by the phone snapshot
func (s *BookingService) CustomerHistory(ctx context.Context, phone string) (*CustomerHistory, error) {
	phone = utils.NormalizePhone(phone)
	if phone == "" {
		return nil, types.NewValidationError("Phone number is required")
	}

	requests, err := s.requests.FindByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if len(requests) == 0 {
		return &CustomerHistory{Found: false, Message: "No records found for this phone number"}, nil
	}
	return &CustomerHistory{
		Found:         true,
		Phone:         phone,
		TotalBookings: len(requests),
		Requests:      requests,
	}, nil
}

// Export returns every request as export rows, newest first. Customer name
// and phone come from the live user record.
func (s *BookingService) Export(ctx context.Context) ([]utils.ExportRow, error) {
	requests, err := s.requests.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(requests) == 0 {
		return nil, types.NewValidationError("No requests to export")
	}

	ids := make([]string, 0, len(requests))
	for _, r := range requests {
		ids = append(ids, r.CustomerID)
	}
	customers, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	rows := make([]utils.ExportRow, 0, len(requests))
	for _, r := range requests {
		row := utils.ExportRow{
			ID:            r.ID,
			CustomerName:  "Unknown",
			CustomerPhone: "-",
			Service:       r.Service,
			Status:        string(r.Status),
			Price:         r.PriceValue(),
			ScheduledDate: r.ScheduledDate,
			Location:      r.Location,
			Notes:         r.Notes,
		}
		if customer, ok := customers[r.CustomerID]; ok {
			if customer.Name != "" {
				row.CustomerName = customer.Name
			}
			if customer.Phone != "" {
				row.CustomerPhone = customer.Phone
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// publishRequest publishes a copy of req; the hub encodes it on another
// goroutine
func (s *BookingService) publishRequest(eventType string, req *models.ServiceRequest) {
	s.publish(eventType, *req)
}

func (s *BookingService) publish(eventType string, data interface{}) {
	if s.events != nil {
		s.events.Publish(eventType, data)
	}
}
