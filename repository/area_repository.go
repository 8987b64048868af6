package repository

import (
	"context"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"home-maintenance-server/models"
	"home-maintenance-server/types"
)

const areaNotFound = "Area not found"

// AreaRepository persists the cities the business serves
type AreaRepository struct {
	db *gorm.DB
}

func NewAreaRepository(db *gorm.DB) *AreaRepository {
	return &AreaRepository{db: db}
}

// ListActive returns active areas sorted by city name
func (r *AreaRepository) ListActive(ctx context.Context) ([]models.ServiceArea, error) {
	areas := []models.ServiceArea{}
	err := r.db.WithContext(ctx).
		Where("status = ?", models.StatusActive).
		Order("city_name ASC").
		Find(&areas).Error
	if err != nil {
		return nil, types.NewInternalError("failed to fetch service areas", err)
	}
	return areas, nil
}

// List returns every area, newest first, optionally filtered by status
func (r *AreaRepository) List(ctx context.Context, status models.ActivityStatus) ([]models.ServiceArea, error) {
	query := r.db.WithContext(ctx).Model(&models.ServiceArea{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	areas := []models.ServiceArea{}
	if err := query.Order("created_at DESC").Find(&areas).Error; err != nil {
		return nil, types.NewInternalError("failed to fetch service areas", err)
	}
	return areas, nil
}

func (r *AreaRepository) FindByID(ctx context.Context, id string) (*models.ServiceArea, error) {
	if !IsValidID(id) {
		return nil, types.NewNotFoundError(areaNotFound)
	}
	var area models.ServiceArea
	if err := r.db.WithContext(ctx).First(&area, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err, areaNotFound, "failed to fetch service area")
	}
	return &area, nil
}

// CityTaken reports whether another area already uses cityName, ignoring case
func (r *AreaRepository) CityTaken(ctx context.Context, cityName, excludeID string) (bool, error) {
	query := r.db.WithContext(ctx).Model(&models.ServiceArea{}).Where("LOWER(city_name) = LOWER(?)", cityName)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, types.NewInternalError("failed to check city name", err)
	}
	return count > 0, nil
}

func (r *AreaRepository) Create(ctx context.Context, area *models.ServiceArea) error {
	if err := r.db.WithContext(ctx).Create(area).Error; err != nil {
		return duplicateOr(err, "City already exists", "failed to create service area")
	}
	return nil
}

func (r *AreaRepository) Save(ctx context.Context, area *models.ServiceArea) error {
	if err := r.db.WithContext(ctx).Save(area).Error; err != nil {
		return duplicateOr(err, "City name already exists", "failed to update service area")
	}
	return nil
}

func (r *AreaRepository) Delete(ctx context.Context, id string) error {
	if !IsValidID(id) {
		return types.NewNotFoundError(areaNotFound)
	}
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.ServiceArea{})
	if res.Error != nil {
		return types.NewInternalError("failed to delete service area", res.Error)
	}
	if res.RowsAffected == 0 {
		return types.NewNotFoundError(areaNotFound)
	}
	return nil
}

// UpdateStatus sets status on every listed area and returns the number of rows
// modified. Ids that match nothing are not counted.
func (r *AreaRepository) UpdateStatus(ctx context.Context, ids []string, status models.ActivityStatus) (int64, error) {
	ids = validIDs(ids)
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Model(&models.ServiceArea{}).
		Where("id = ANY(?::uuid[])", pq.Array(ids)).
		Update("status", status)
	if res.Error != nil {
		return 0, types.NewInternalError("failed to update service area status", res.Error)
	}
	return res.RowsAffected, nil
}
