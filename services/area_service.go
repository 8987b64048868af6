package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"home-maintenance-server/models"
	"home-maintenance-server/types"
)

// AreaInput is the admin payload for a service area. Nil fields are left
// unchanged on update.
type AreaInput struct {
	CityName     *string `json:"cityName"`
	ArabicName   *string `json:"arabicName"`
	Status       *string `json:"status"`
	DeliveryTime *int    `json:"deliveryTime"`
	Notes        *string `json:"notes"`
}

type AreaService struct {
	areas AreaStore
}

func NewAreaService(areas AreaStore) *AreaService {
	return &AreaService{areas: areas}
}

func (s *AreaService) ListActive(ctx context.Context) ([]models.ServiceArea, error) {
	return s.areas.ListActive(ctx)
}

func (s *AreaService) ListAll(ctx context.Context, status string) ([]models.ServiceArea, error) {
	return s.areas.List(ctx, models.ActivityStatus(status))
}

func (s *AreaService) Get(ctx context.Context, id string) (*models.ServiceArea, error) {
	return s.areas.FindByID(ctx, id)
}

func (s *AreaService) Create(ctx context.Context, input AreaInput) (*models.ServiceArea, error) {
	cityName := strings.TrimSpace(stringValue(input.CityName))
	arabicName := strings.TrimSpace(stringValue(input.ArabicName))
	if cityName == "" || arabicName == "" {
		return nil, types.NewValidationError("City name and Arabic name are required")
	}

	taken, err := s.areas.CityTaken(ctx, cityName, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, types.NewConflictError("City already exists")
	}

	area := &models.ServiceArea{
		CityName:     cityName,
		ArabicName:   arabicName,
		Status:       models.ActivityStatus(stringValue(input.Status)),
		DeliveryTime: models.DefaultDeliveryTime,
		Notes:        stringValue(input.Notes),
	}
	if area.Status == "" {
		area.Status = models.StatusActive
	}
	if input.DeliveryTime != nil && *input.DeliveryTime != 0 {
		area.DeliveryTime = *input.DeliveryTime
	}

	if err := area.Validate(); err != nil {
		return nil, err
	}
	if err := s.areas.Create(ctx, area); err != nil {
		return nil, err
	}

	log.Info().Str("area_id", area.ID).Str("city", area.CityName).Msg("✅ Service area created")
	return area, nil
}

// Update applies the provided fields. Renaming to a city another area already
// uses is rejected.
func (s *AreaService) Update(ctx context.Context, id string, input AreaInput) (*models.ServiceArea, error) {
	area, err := s.areas.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	cityName := strings.TrimSpace(stringValue(input.CityName))
	if cityName != "" && cityName != area.CityName {
		taken, err := s.areas.CityTaken(ctx, cityName, area.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, types.NewConflictError("City name already exists")
		}
		area.CityName = cityName
	}
	if v := strings.TrimSpace(stringValue(input.ArabicName)); v != "" {
		area.ArabicName = v
	}
	if v := stringValue(input.Status); v != "" {
		area.Status = models.ActivityStatus(v)
	}
	if input.DeliveryTime != nil {
		area.DeliveryTime = *input.DeliveryTime
	}
	if input.Notes != nil {
		area.Notes = *input.Notes
	}

	if err := area.Validate(); err != nil {
		return nil, err
	}
	if err := s.areas.Save(ctx, area); err != nil {
		return nil, err
	}
	return area, nil
}

func (s *AreaService) Delete(ctx context.Context, id string) error {
	if err := s.areas.Delete(ctx, id); err != nil {
		return err
	}
	log.Info().Str("area_id", id).Msg("🗑️ Service area deleted")
	return nil
}

// BulkStatus sets the status of many areas and returns how many changed.
// Unknown ids are skipped.
func (s *AreaService) BulkStatus(ctx context.Context, ids []string, status string) (int64, error) {
	if ids == nil || status == "" {
		return 0, types.NewValidationError("areaIds and status are required")
	}
	st := models.ActivityStatus(status)
	if !st.IsValid() {
		return 0, types.NewValidationError("Status must be active or inactive")
	}
	return s.areas.UpdateStatus(ctx, ids, st)
}
