package repository

import (
	"context"

	"gorm.io/gorm"

	"home-maintenance-server/models"
	"home-maintenance-server/types"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	if !IsValidID(id) {
		return nil, types.NewNotFoundError("User not found")
	}
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, notFoundOr(err, "User not found", "failed to fetch user")
	}
	return &user, nil
}

// FindByIDs returns the users with the given ids keyed by id
func (r *UserRepository) FindByIDs(ctx context.Context, ids []string) (map[string]models.User, error) {
	out := make(map[string]models.User)
	ids = validIDs(ids)
	if len(ids) == 0 {
		return out, nil
	}
	var users []models.User
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, types.NewInternalError("failed to fetch users", err)
	}
	for _, u := range users {
		out[u.ID] = u
	}
	return out, nil
}

func (r *UserRepository) FindByPhone(ctx context.Context, phone string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("phone = ?", phone).First(&user).Error; err != nil {
		return nil, notFoundOr(err, "User not found", "failed to fetch user by phone")
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, notFoundOr(err, "User not found", "failed to fetch user by email")
	}
	return &user, nil
}

// FindFirstAdmin returns any admin account
func (r *UserRepository) FindFirstAdmin(ctx context.Context) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Where("role = ?", models.RoleAdmin).
		Order("created_at ASC").
		First(&user).Error
	if err != nil {
		return nil, notFoundOr(err, "Admin not found", "failed to fetch admin")
	}
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return duplicateOr(err, "User with this phone or email already exists", "failed to create user")
	}
	return nil
}

func (r *UserRepository) Save(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return duplicateOr(err, "User with this phone or email already exists", "failed to save user")
	}
	return nil
}

func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, types.NewInternalError("failed to fetch users", err)
	}
	return users, nil
}

// DeleteWithRequests removes a user and every service request they own in one
// transaction. It returns the number of requests removed.
func (r *UserRepository) DeleteWithRequests(ctx context.Context, id string) (int64, error) {
	var removed int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("customer_id = ?", id).Delete(&models.ServiceRequest{})
		if res.Error != nil {
			return res.Error
		}
		removed = res.RowsAffected

		res = tx.Where("id = ?", id).Delete(&models.User{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return 0, notFoundOr(err, "User not found", "failed to delete user")
	}
	return removed, nil
}
