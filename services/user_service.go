package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"home-maintenance-server/models"
	"home-maintenance-server/types"
	"home-maintenance-server/utils"
)

// VerifyOTPInput is posted by the client once the OTP provider has verified
// the phone number
type VerifyOTPInput struct {
	UID   string `json:"uid"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// VerifyOTP signs a customer in by phone, creating the account on first use.
// A returning customer may update their name and set an email once.
func (s *UserService) VerifyOTP(ctx context.Context, input VerifyOTPInput) (*models.User, error) {
	phone := utils.NormalizePhone(input.Phone)
	if phone == "" {
		return nil, types.NewValidationError("Phone number is required")
	}
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)

	user, err := s.users.FindByPhone(ctx, phone)
	if err != nil && !types.IsKind(err, types.ErrorKindNotFound) {
		return nil, err
	}

	if user == nil {
		user = &models.User{
			Phone: phone,
			Name:  name,
			Role:  models.RoleCustomer,
		}
		if user.Name == "" {
			user.Name = models.DefaultCustomerName
		}
		if email != "" {
			user.Email = &email
		}
		if err := user.Validate(); err != nil {
			return nil, err
		}
		if err := s.users.Create(ctx, user); err != nil {
			return nil, err
		}
		log.Info().Str("phone", phone).Str("uid", input.UID).Msg("✅ New customer created")
		return user, nil
	}

	if name != "" {
		user.Name = name
	}
	if email != "" && user.Email == nil {
		user.Email = &email
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}
	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}
	log.Info().Str("phone", phone).Msg("✅ Customer logged in")
	return user, nil
}

// AdminLogin checks an admin's email and password
func (s *UserService) AdminLogin(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.FindByEmail(ctx, strings.TrimSpace(email))
	if types.IsKind(err, types.ErrorKindNotFound) {
		return nil, types.NewUnauthenticatedError("Invalid email or password")
	}
	if err != nil {
		return nil, err
	}
	if !user.IsAdmin() {
		return nil, types.NewForbiddenError("Access denied. Admin role required.")
	}
	if user.PasswordHash == "" || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, types.NewUnauthenticatedError("Invalid email or password")
	}

	log.Info().Str("user_id", user.ID).Msg("🔐 Admin logged in")
	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

// Delete removes a customer and all their requests. Admins cannot delete
// themselves or other admins.
func (s *UserService) Delete(ctx context.Context, actor *types.Identity, id string) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if actor != nil && user.ID == actor.UserID {
		return types.NewConflictError("Cannot delete your own admin account")
	}
	if user.IsAdmin() {
		return types.NewConflictError("Cannot delete admin accounts")
	}

	removed, err := s.users.DeleteWithRequests(ctx, user.ID)
	if err != nil {
		return err
	}

	ev := log.Info().
		Str("user_id", user.ID).
		Str("phone", user.Phone).
		Int64("requests_removed", removed)
	if actor != nil {
		ev = ev.Str("admin_phone", actor.Phone)
	}
	ev.Msg("🗑️ User deleted")
	return nil
}

// IdentityFor builds the session identity of a user
func IdentityFor(user *models.User) *types.Identity {
	return &types.Identity{
		UserID: user.ID,
		Phone:  user.Phone,
		Name:   user.Name,
		Email:  user.EmailValue(),
		Role:   string(user.Role),
	}
}
