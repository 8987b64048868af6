package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServiceCategory string

const (
	CategoryCleaning     ServiceCategory = "cleaning"
	CategoryRepair       ServiceCategory = "repair"
	CategoryMaintenance  ServiceCategory = "maintenance"
	CategoryInstallation ServiceCategory = "installation"
	CategoryInspection   ServiceCategory = "inspection"
)

// ActivityStatus is shared by catalog services and service areas
type ActivityStatus string

const (
	StatusActive   ActivityStatus = "active"
	StatusInactive ActivityStatus = "inactive"
)

// IsValid checks if the status is active or inactive
func (s ActivityStatus) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

const DefaultServiceIcon = "🔧"

// Service is an item of the service catalog
type Service struct {
	ID          string          `json:"_id" gorm:"type:uuid;primaryKey"`
	Name        string          `json:"name" gorm:"size:50;not null" validate:"required,min=3,max=50"`
	Description string          `json:"description" gorm:"size:500;not null" validate:"required,min=10,max=500"`
	Price       float64         `json:"price" gorm:"type:decimal(10,2);not null" validate:"gte=0,lte=10000"`
	Category    ServiceCategory `json:"category" gorm:"type:varchar(20);not null;default:'cleaning'" validate:"oneof=cleaning repair maintenance installation inspection"`
	Duration    float64         `json:"duration" gorm:"type:decimal(4,2);not null" validate:"gte=0.5,lte=8"`
	Icon        string          `json:"icon" gorm:"size:50;default:'🔧'"`
	Status      ActivityStatus  `json:"status" gorm:"type:varchar(20);not null;default:'active';index" validate:"oneof=active inactive"`
	Notes       string          `json:"notes" gorm:"size:200" validate:"max=200"`
	CreatedAt   time.Time       `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt   time.Time       `json:"updatedAt" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for the Service model
func (Service) TableName() string {
	return "services"
}

// BeforeCreate assigns the identifier and catalog defaults
func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	s.ApplyDefaults()
	return nil
}

// ApplyDefaults fills optional fields the same way on create and in the seeder
func (s *Service) ApplyDefaults() {
	if s.Category == "" {
		s.Category = CategoryCleaning
	}
	if s.Icon == "" {
		s.Icon = DefaultServiceIcon
	}
	if s.Status == "" {
		s.Status = StatusActive
	}
}

var serviceMessages = map[string]string{
	"name.required":        "Service name is required",
	"name.min":             "Service name must be at least 3 characters",
	"name.max":             "Service name cannot exceed 50 characters",
	"description.required": "Service description is required",
	"description.min":      "Description must be at least 10 characters",
	"description.max":      "Description cannot exceed 500 characters",
	"price":                "Price must be between 0 and 10,000 SAR",
	"category":             "Category must be: cleaning, repair, maintenance, installation, or inspection",
	"duration":             "Duration must be between 0.5 and 8 hours",
	"status":               "Status must be active or inactive",
	"notes":                "Notes cannot exceed 200 characters",
}

// Validate checks the service before it is persisted
func (s *Service) Validate() error {
	return validateStruct(s, serviceMessages)
}
