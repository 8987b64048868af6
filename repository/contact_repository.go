package repository

import (
	"context"

	"gorm.io/gorm"

	"home-maintenance-server/models"
	"home-maintenance-server/types"
)

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// Get returns the contact singleton, or a not-found error when it was never
// created
func (r *ContactRepository) Get(ctx context.Context) (*models.Contact, error) {
	var contact models.Contact
	if err := r.db.WithContext(ctx).Order("created_at ASC").First(&contact).Error; err != nil {
		return nil, notFoundOr(err, "Contact not found", "failed to fetch contact")
	}
	return &contact, nil
}

func (r *ContactRepository) Save(ctx context.Context, contact *models.Contact) error {
	if err := r.db.WithContext(ctx).Save(contact).Error; err != nil {
		return types.NewInternalError("failed to save contact", err)
	}
	return nil
}
