package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const DefaultDeliveryTime = 24

// ServiceArea is a city the business serves
type ServiceArea struct {
	ID           string         `json:"_id" gorm:"type:uuid;primaryKey"`
	CityName     string         `json:"cityName" gorm:"size:100;not null" validate:"required"`
	ArabicName   string         `json:"arabicName" gorm:"size:100;not null" validate:"required"`
	Status       ActivityStatus `json:"status" gorm:"type:varchar(20);not null;default:'active';index" validate:"oneof=active inactive"`
	DeliveryTime int            `json:"deliveryTime" gorm:"not null;default:24" validate:"gte=0"` // hours
	Notes        string         `json:"notes" gorm:"type:text"`
	CreatedAt    time.Time      `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `json:"updatedAt" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for the ServiceArea model
func (ServiceArea) TableName() string {
	return "service_areas"
}

// BeforeCreate assigns the identifier and area defaults
func (a *ServiceArea) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Status == "" {
		a.Status = StatusActive
	}
	if a.DeliveryTime == 0 {
		a.DeliveryTime = DefaultDeliveryTime
	}
	return nil
}

var serviceAreaMessages = map[string]string{
	"cityName":     "City name and Arabic name are required",
	"arabicName":   "City name and Arabic name are required",
	"status":       "Status must be active or inactive",
	"deliveryTime": "Delivery time cannot be negative",
}

// Validate checks the area before it is persisted
func (a *ServiceArea) Validate() error {
	return validateStruct(a, serviceAreaMessages)
}
