package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"
)

const DefaultCustomerName = "Customer"

type User struct {
	ID           string    `json:"_id" gorm:"type:uuid;primaryKey"`
	Phone        string    `json:"phone" gorm:"size:20;uniqueIndex;not null" validate:"required,startswith=+"`
	Name         string    `json:"name" gorm:"size:255;not null;default:'Customer'"`
	Email        *string   `json:"email" gorm:"size:255;uniqueIndex" validate:"omitempty,email"`
	PasswordHash string    `json:"-" gorm:"size:255"`
	Role         UserRole  `json:"role" gorm:"type:varchar(20);not null;default:'customer';check:role IN ('customer','admin')" validate:"oneof=customer admin"`
	CreatedAt    time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns the identifier and the defaults the store relies on
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Role == "" {
		u.Role = RoleCustomer
	}
	if u.Name == "" {
		u.Name = DefaultCustomerName
	}
	return nil
}

var userMessages = map[string]string{
	"phone":            "Phone number is required",
	"phone.startswith": "Phone number must be in international format",
	"email":            "Invalid email address",
	"role":             "Invalid role",
}

// Validate checks the user before it is persisted
func (u *User) Validate() error {
	return validateStruct(u, userMessages)
}

// IsAdmin checks if the user is an admin
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsCustomer checks if the user is a customer
func (u *User) IsCustomer() bool {
	return u.Role == RoleCustomer
}

// EmailValue returns the email or an empty string when none is set
func (u *User) EmailValue() string {
	if u.Email == nil {
		return ""
	}
	return *u.Email
}
