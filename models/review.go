package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review is a customer's rating of a completed service request. At most one
// review exists per request.
type Review struct {
	ID               string    `json:"_id" gorm:"type:uuid;primaryKey"`
	ServiceRequestID string    `json:"serviceRequest" gorm:"type:uuid;not null;uniqueIndex"`
	UserID           string    `json:"-" gorm:"type:uuid;not null;index"`
	User             *User     `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Author           *Author   `json:"user,omitempty" gorm:"-"`
	Rating           int       `json:"rating" gorm:"type:int;not null;check:rating >= 1 AND rating <= 5" validate:"required,min=1,max=5"`
	Title            string    `json:"title" gorm:"size:100;not null" validate:"required,max=100"`
	Comment          string    `json:"comment" gorm:"size:500;not null" validate:"required,max=500"`
	Quality          *int      `json:"quality" gorm:"type:int" validate:"omitempty,min=1,max=5"`
	Response         *int      `json:"response" gorm:"type:int" validate:"omitempty,min=1,max=5"`
	Technician       *int      `json:"technician" gorm:"type:int" validate:"omitempty,min=1,max=5"`
	Pricing          *int      `json:"pricing" gorm:"type:int" validate:"omitempty,min=1,max=5"`
	Verified         bool      `json:"verified" gorm:"default:true;index"`
	CreatedAt        time.Time `json:"createdAt" gorm:"autoCreateTime;index"`
	UpdatedAt        time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for the Review model
func (Review) TableName() string {
	return "reviews"
}

// BeforeCreate assigns the identifier
func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

var reviewMessages = map[string]string{
	"rating":     "Rating must be between 1 and 5",
	"title":      "Title is required (max 100 characters)",
	"comment":    "Comment is required (max 500 characters)",
	"quality":    "Quality rating must be between 1 and 5",
	"response":   "Response rating must be between 1 and 5",
	"technician": "Technician rating must be between 1 and 5",
	"pricing":    "Pricing rating must be between 1 and 5",
}

// Validate checks the review before it is persisted
func (r *Review) Validate() error {
	return validateStruct(r, reviewMessages)
}

// Author is the public view of a review's author
type Author struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// ReviewStats aggregates verified reviews
type ReviewStats struct {
	TotalReviews  int     `json:"totalReviews"`
	AvgRating     float64 `json:"avgRating"`
	AvgQuality    float64 `json:"avgQuality"`
	AvgResponse   float64 `json:"avgResponse"`
	AvgTechnician float64 `json:"avgTechnician"`
	AvgPricing    float64 `json:"avgPricing"`
}
