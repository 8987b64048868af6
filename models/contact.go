package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contact is the single document holding the business contact details
type Contact struct {
	ID           string    `json:"_id" gorm:"type:uuid;primaryKey"`
	Title        string    `json:"title" gorm:"size:255"`
	Description  string    `json:"description" gorm:"type:text"`
	Phone        string    `json:"phone" gorm:"size:20;not null"`
	Email        string    `json:"email" gorm:"size:255;not null"`
	Address      string    `json:"address" gorm:"size:255"`
	WhatsappLink string    `json:"whatsappLink" gorm:"size:255"`
	Instagram    string    `json:"instagram" gorm:"size:255"`
	Tiktok       string    `json:"tiktok" gorm:"size:255"`
	Snapchat     string    `json:"snapchat" gorm:"size:255"`
	CreatedAt    time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for the Contact model
func (Contact) TableName() string {
	return "contacts"
}

// BeforeCreate assigns the identifier
func (c *Contact) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// DefaultContact returns the contact details used until an admin edits them
func DefaultContact() *Contact {
	return &Contact{
		Title:        "Ready to get started?",
		Description:  "Reach out via WhatsApp and book your maintenance appointment in minutes. We serve Jazan, Sabya, Abo Arish and Samtah.",
		Phone:        "+966502258883",
		Email:        "specialtechnician@gmail.com",
		Address:      "Jazan, Saudi Arabia",
		WhatsappLink: "https://wa.me/+966502258883",
		Instagram:    "#",
		Tiktok:       "#",
		Snapchat:     "#",
	}
}
