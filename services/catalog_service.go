package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"home-maintenance-server/models"
	"home-maintenance-server/types"
)

const (
	minServicePrice    = 0
	maxServicePrice    = 10000
	minServiceDuration = 0.5
	maxServiceDuration = 8
)

// ServiceInput is the admin payload for creating or updating a catalog item.
// Nil fields are left unchanged on update.
type ServiceInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Duration    *float64 `json:"duration"`
	Icon        *string  `json:"icon"`
	Status      *string  `json:"status"`
	Notes       *string  `json:"notes"`
}

// CatalogService manages the services customers can book
type CatalogService struct {
	services ServiceStore
}

func NewCatalogService(services ServiceStore) *CatalogService {
	return &CatalogService{services: services}
}

func (s *CatalogService) ListActive(ctx context.Context) ([]models.Service, error) {
	return s.services.ListActive(ctx)
}

// ListAll returns active and inactive services, optionally narrowed by status
func (s *CatalogService) ListAll(ctx context.Context, status string) ([]models.Service, error) {
	return s.services.List(ctx, models.ActivityStatus(status))
}

func (s *CatalogService) Get(ctx context.Context, id string) (*models.Service, error) {
	return s.services.FindByID(ctx, id)
}

func (s *CatalogService) Create(ctx context.Context, input ServiceInput) (*models.Service, error) {
	name := strings.TrimSpace(stringValue(input.Name))
	description := stringValue(input.Description)
	if name == "" || description == "" || input.Price == nil || input.Duration == nil || *input.Duration == 0 {
		return nil, types.NewValidationError("Please provide all required fields")
	}

	if err := s.checkName(ctx, name, ""); err != nil {
		return nil, err
	}
	if err := checkServiceRanges(input.Price, input.Duration); err != nil {
		return nil, err
	}

	service := &models.Service{
		Name:        name,
		Description: description,
		Price:       *input.Price,
		Duration:    *input.Duration,
		Category:    models.ServiceCategory(stringValue(input.Category)),
		Icon:        stringValue(input.Icon),
		Status:      models.ActivityStatus(stringValue(input.Status)),
		Notes:       stringValue(input.Notes),
	}
	service.ApplyDefaults()

	if err := service.Validate(); err != nil {
		return nil, err
	}
	if err := s.services.Create(ctx, service); err != nil {
		return nil, err
	}

	log.Info().Str("service_id", service.ID).Str("name", service.Name).Msg("✅ Service created")
	return service, nil
}

// Update applies the provided fields. The duplicate name check ignores the
// service being updated.
func (s *CatalogService) Update(ctx context.Context, id string, input ServiceInput) (*models.Service, error) {
	name := strings.TrimSpace(stringValue(input.Name))
	if name != "" {
		if err := s.checkName(ctx, name, id); err != nil {
			return nil, err
		}
	}
	if err := checkServiceRanges(input.Price, input.Duration); err != nil {
		return nil, err
	}

	service, err := s.services.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != "" {
		service.Name = name
	}
	if v := stringValue(input.Description); v != "" {
		service.Description = v
	}
	if input.Price != nil {
		service.Price = *input.Price
	}
	if v := stringValue(input.Category); v != "" {
		service.Category = models.ServiceCategory(v)
	}
	if input.Duration != nil {
		service.Duration = *input.Duration
	}
	if v := stringValue(input.Icon); v != "" {
		service.Icon = v
	}
	if v := stringValue(input.Status); v != "" {
		service.Status = models.ActivityStatus(v)
	}
	if input.Notes != nil {
		service.Notes = *input.Notes
	}

	if err := service.Validate(); err != nil {
		return nil, err
	}
	if err := s.services.Save(ctx, service); err != nil {
		return nil, err
	}
	return service, nil
}

func (s *CatalogService) Delete(ctx context.Context, id string) error {
	if err := s.services.Delete(ctx, id); err != nil {
		return err
	}
	log.Info().Str("service_id", id).Msg("🗑️ Service deleted")
	return nil
}

// BulkStatus sets the status of many services at once and returns how many
// were updated
func (s *CatalogService) BulkStatus(ctx context.Context, ids []string, status string) (int64, error) {
	if ids == nil || status == "" {
		return 0, types.NewValidationError("Please provide serviceIds array and status")
	}
	st := models.ActivityStatus(status)
	if !st.IsValid() {
		return 0, types.NewValidationError("Status must be active or inactive")
	}
	return s.services.UpdateStatus(ctx, ids, st)
}

func (s *CatalogService) checkName(ctx context.Context, name, excludeID string) error {
	taken, err := s.services.NameTaken(ctx, name, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return types.NewConflictError("Service with this name already exists")
	}
	return nil
}

func checkServiceRanges(price, duration *float64) error {
	if price != nil && (*price < minServicePrice || *price > maxServicePrice) {
		return types.NewValidationError("Price must be between 0 and 10,000 SAR")
	}
	if duration != nil && (*duration < minServiceDuration || *duration > maxServiceDuration) {
		return types.NewValidationError("Duration must be between 0.5 and 8 hours")
	}
	return nil
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
