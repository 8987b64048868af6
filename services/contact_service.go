package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"home-maintenance-server/models"
	"home-maintenance-server/types"
)

// ContactInput holds the contact fields an admin may change. Empty values are
// ignored.
type ContactInput struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	WhatsappLink string `json:"whatsappLink"`
	Instagram    string `json:"instagram"`
	Tiktok       string `json:"tiktok"`
	Snapchat     string `json:"snapchat"`
}

type ContactService struct {
	contacts ContactStore
}

func NewContactService(contacts ContactStore) *ContactService {
	return &ContactService{contacts: contacts}
}

// Get returns the contact details, storing the defaults on first use
func (s *ContactService) Get(ctx context.Context) (*models.Contact, error) {
	contact, err := s.current(ctx)
	if err != nil {
		return nil, err
	}
	if contact.ID == "" {
		if err := s.contacts.Save(ctx, contact); err != nil {
			return nil, err
		}
		log.Info().Msg("📝 Default contact details created")
	}
	return contact, nil
}

// Update overwrites every non-empty field of input
func (s *ContactService) Update(ctx context.Context, input ContactInput) (*models.Contact, error) {
	contact, err := s.current(ctx)
	if err != nil {
		return nil, err
	}

	setIfPresent(&contact.Title, input.Title)
	setIfPresent(&contact.Description, input.Description)
	setIfPresent(&contact.Phone, input.Phone)
	setIfPresent(&contact.Email, input.Email)
	setIfPresent(&contact.Address, input.Address)
	setIfPresent(&contact.WhatsappLink, input.WhatsappLink)
	setIfPresent(&contact.Instagram, input.Instagram)
	setIfPresent(&contact.Tiktok, input.Tiktok)
	setIfPresent(&contact.Snapchat, input.Snapchat)

	if err := s.contacts.Save(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// current returns the stored contact or an unsaved default one
func (s *ContactService) current(ctx context.Context) (*models.Contact, error) {
	contact, err := s.contacts.Get(ctx)
	if types.IsKind(err, types.ErrorKindNotFound) {
		return models.DefaultContact(), nil
	}
	if err != nil {
		return nil, err
	}
	return contact, nil
}

func setIfPresent(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
