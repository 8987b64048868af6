package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RequestStatus is the lifecycle state of a service request
type RequestStatus string

const (
	RequestStatusPending    RequestStatus = "pending"
	RequestStatusAssigned   RequestStatus = "assigned"
	RequestStatusInProgress RequestStatus = "in-progress"
	RequestStatusCompleted  RequestStatus = "completed"
	RequestStatusCancelled  RequestStatus = "cancelled"
)

// RequestStatuses lists every status in lifecycle order
var RequestStatuses = []RequestStatus{
	RequestStatusPending,
	RequestStatusAssigned,
	RequestStatusInProgress,
	RequestStatusCompleted,
	RequestStatusCancelled,
}

// IsValid checks if the status is one of the known lifecycle states
func (s RequestStatus) IsValid() bool {
	for _, known := range RequestStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the customer path allows no further transitions
func (s RequestStatus) IsTerminal() bool {
	return s == RequestStatusCompleted || s == RequestStatusCancelled
}

// ServiceRequest is a booking placed by a customer.
//
// CustomerPhone and CustomerName are snapshots taken at creation time. They are
// lookup keys for records that predate the customer's current user id and are
// never re-synced with the live user, so a differing phone is expected.
type ServiceRequest struct {
	ID              string        `json:"_id" gorm:"type:uuid;primaryKey"`
	CustomerID      string        `json:"customer" gorm:"type:uuid;not null;index"`
	CustomerPhone   string        `json:"customerPhone" gorm:"size:20;not null;index" validate:"required"`
	CustomerName    string        `json:"customerName" gorm:"size:255;default:'Customer'"`
	Service         string        `json:"service" gorm:"size:255;not null" validate:"required"`
	Description     string        `json:"description" gorm:"type:text"`
	ScheduledDate   time.Time     `json:"scheduledDate" gorm:"not null;index" validate:"required"`
	Status          RequestStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index" validate:"oneof=pending assigned in-progress completed cancelled"`
	AssignedStaffID *string       `json:"assignedStaff" gorm:"type:uuid"`
	Price           *float64      `json:"price" gorm:"type:decimal(10,2)" validate:"omitempty,gte=0"`
	Location        string        `json:"location" gorm:"type:text"`
	Notes           string        `json:"notes" gorm:"type:text"`
	CreatedAt       time.Time     `json:"createdAt" gorm:"autoCreateTime;index"`
	UpdatedAt       time.Time     `json:"updatedAt" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for the ServiceRequest model
func (ServiceRequest) TableName() string {
	return "service_requests"
}

// BeforeCreate assigns the identifier and default status
func (r *ServiceRequest) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.Status == "" {
		r.Status = RequestStatusPending
	}
	if r.CustomerName == "" {
		r.CustomerName = DefaultCustomerName
	}
	return nil
}

var serviceRequestMessages = map[string]string{
	"customerPhone": "Customer phone is required",
	"service":       "Service is required",
	"scheduledDate": "Scheduled date is required",
	"status":        "Invalid status",
	"price":         "Price cannot be negative",
}

// Validate checks the request before it is persisted
func (r *ServiceRequest) Validate() error {
	return validateStruct(r, serviceRequestMessages)
}

// PriceValue returns the price or 0 when none was set
func (r *ServiceRequest) PriceValue() float64 {
	if r.Price == nil {
		return 0
	}
	return *r.Price
}

// RequestFilter narrows the admin request listing
type RequestFilter struct {
	Status    RequestStatus
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
}
