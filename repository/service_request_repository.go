package repository

import (
	"context"

	"gorm.io/gorm"

	"home-maintenance-server/models"
	"home-maintenance-server/types"
)

const requestNotFound = "Request not found"

type ServiceRequestRepository struct {
	db *gorm.DB
}

func NewServiceRequestRepository(db *gorm.DB) *ServiceRequestRepository {
	return &ServiceRequestRepository{db: db}
}

func (r *ServiceRequestRepository) Create(ctx context.Context, req *models.ServiceRequest) error {
	if err := r.db.WithContext(ctx).Create(req).Error; err != nil {
		return types.NewInternalError("failed to create service request", err)
	}
	return nil
}

func (r *ServiceRequestRepository) FindByID(ctx context.Context, id string) (*models.ServiceRequest, error) {
	if !IsValidID(id) {
		return nil, types.NewNotFoundError(requestNotFound)
	}
	var req models.ServiceRequest
	if err := r.db.WithContext(ctx).First(&req, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err, requestNotFound, "failed to fetch service request")
	}
	return &req, nil
}

// FindByCustomer returns the requests owned by a user id, newest first
func (r *ServiceRequestRepository) FindByCustomer(ctx context.Context, customerID string) ([]models.ServiceRequest, error) {
	requests := []models.ServiceRequest{}
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, types.NewInternalError("failed to fetch requests by customer", err)
	}
	return requests, nil
}

// FindByPhone returns the requests whose phone snapshot matches, newest first
func (r *ServiceRequestRepository) FindByPhone(ctx context.Context, phone string) ([]models.ServiceRequest, error) {
	requests := []models.ServiceRequest{}
	err := r.db.WithContext(ctx).
		Where("customer_phone = ?", phone).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, types.NewInternalError("failed to fetch requests by phone", err)
	}
	return requests, nil
}

func (r *ServiceRequestRepository) Save(ctx context.Context, req *models.ServiceRequest) error {
	if err := r.db.WithContext(ctx).Save(req).Error; err != nil {
		return types.NewInternalError("failed to save service request", err)
	}
	return nil
}

func (r *ServiceRequestRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.ServiceRequest{})
	if res.Error != nil {
		return types.NewInternalError("failed to delete service request", res.Error)
	}
	if res.RowsAffected == 0 {
		return types.NewNotFoundError(requestNotFound)
	}
	return nil
}

// List returns requests for the admin panel, latest scheduled date first
func (r *ServiceRequestRepository) List(ctx context.Context, filter models.RequestFilter) ([]models.ServiceRequest, error) {
	query := r.db.WithContext(ctx).Model(&models.ServiceRequest{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.StartDate != nil {
		query = query.Where("scheduled_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("scheduled_date <= ?", *filter.EndDate)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	requests := []models.ServiceRequest{}
	if err := query.Order("scheduled_date DESC").Find(&requests).Error; err != nil {
		return nil, types.NewInternalError("failed to list service requests", err)
	}
	return requests, nil
}

// ListAll returns every request, newest first
func (r *ServiceRequestRepository) ListAll(ctx context.Context) ([]models.ServiceRequest, error) {
	requests := []models.ServiceRequest{}
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, types.NewInternalError("failed to list service requests", err)
	}
	return requests, nil
}

// CountByStatus returns how many requests sit in each lifecycle state
func (r *ServiceRequestRepository) CountByStatus(ctx context.Context) (map[models.RequestStatus]int64, error) {
	var rows []struct {
		Status models.RequestStatus
		Count  int64
	}
	err := r.db.WithContext(ctx).
		Model(&models.ServiceRequest{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, types.NewInternalError("failed to count service requests", err)
	}

	counts := make(map[models.RequestStatus]int64, len(models.RequestStatuses))
	for _, s := range models.RequestStatuses {
		counts[s] = 0
	}
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
