package repository

import (
	"context"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"home-maintenance-server/models"
	"home-maintenance-server/types"
)

const (
	serviceNotFound  = "Service not found"
	serviceDuplicate = "Service with this name already exists"
)

// ServiceRepository persists the service catalog
type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

// ListActive returns active services in the order they were added
func (r *ServiceRepository) ListActive(ctx context.Context) ([]models.Service, error) {
	services := []models.Service{}
	err := r.db.WithContext(ctx).
		Where("status = ?", models.StatusActive).
		Order("created_at ASC").
		Find(&services).Error
	if err != nil {
		return nil, types.NewInternalError("failed to fetch services", err)
	}
	return services, nil
}

// List returns every service, optionally filtered by status
func (r *ServiceRepository) List(ctx context.Context, status models.ActivityStatus) ([]models.Service, error) {
	query := r.db.WithContext(ctx).Model(&models.Service{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	services := []models.Service{}
	if err := query.Order("created_at ASC").Find(&services).Error; err != nil {
		return nil, types.NewInternalError("failed to fetch services", err)
	}
	return services, nil
}

func (r *ServiceRepository) FindByID(ctx context.Context, id string) (*models.Service, error) {
	if !IsValidID(id) {
		return nil, types.NewNotFoundError(serviceNotFound)
	}
	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err, serviceNotFound, "failed to fetch service")
	}
	return &service, nil
}

// NameTaken reports whether another service already uses name, ignoring case.
// excludeID may be empty.
func (r *ServiceRepository) NameTaken(ctx context.Context, name, excludeID string) (bool, error) {
	query := r.db.WithContext(ctx).Model(&models.Service{}).Where("LOWER(name) = LOWER(?)", name)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, types.NewInternalError("failed to check service name", err)
	}
	return count > 0, nil
}

func (r *ServiceRepository) Create(ctx context.Context, service *models.Service) error {
	if err := r.db.WithContext(ctx).Create(service).Error; err != nil {
		return duplicateOr(err, serviceDuplicate, "failed to create service")
	}
	return nil
}

func (r *ServiceRepository) Save(ctx context.Context, service *models.Service) error {
	if err := r.db.WithContext(ctx).Save(service).Error; err != nil {
		return duplicateOr(err, serviceDuplicate, "failed to update service")
	}
	return nil
}

func (r *ServiceRepository) Delete(ctx context.Context, id string) error {
	if !IsValidID(id) {
		return types.NewNotFoundError(serviceNotFound)
	}
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Service{})
	if res.Error != nil {
		return types.NewInternalError("failed to delete service", res.Error)
	}
	if res.RowsAffected == 0 {
		return types.NewNotFoundError(serviceNotFound)
	}
	return nil
}

// UpdateStatus sets status on every listed service in a single statement and
// returns how many rows changed. Unknown ids are ignored.
func (r *ServiceRepository) UpdateStatus(ctx context.Context, ids []string, status models.ActivityStatus) (int64, error) {
	ids = validIDs(ids)
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("id = ANY(?::uuid[])", pq.Array(ids)).
		Update("status", status)
	if res.Error != nil {
		return 0, types.NewInternalError("failed to update service status", res.Error)
	}
	return res.RowsAffected, nil
}
