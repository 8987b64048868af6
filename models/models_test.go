package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"home-maintenance-server/types"
)

func intPtr(v int) *int { return &v }

func validService() *Service {
	s := &Service{
		Name:        "AC Repair",
		Description: "Diagnosis and repair of split units",
		Price:       100,
		Duration:    1,
	}
	s.ApplyDefaults()
	return s
}

func TestServiceValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *Service)
		wantMsg string
	}{
		{name: "valid", mutate: func(s *Service) {}},
		{name: "price lower bound", mutate: func(s *Service) { s.Price = 0 }},
		{name: "price upper bound", mutate: func(s *Service) { s.Price = 10000 }},
		{name: "negative price", mutate: func(s *Service) { s.Price = -1 }, wantMsg: "Price must be between 0 and 10,000 SAR"},
		{name: "price too high", mutate: func(s *Service) { s.Price = 10000.5 }, wantMsg: "Price must be between 0 and 10,000 SAR"},
		{name: "duration too short", mutate: func(s *Service) { s.Duration = 0.25 }, wantMsg: "Duration must be between 0.5 and 8 hours"},
		{name: "duration too long", mutate: func(s *Service) { s.Duration = 9 }, wantMsg: "Duration must be between 0.5 and 8 hours"},
		{name: "short name", mutate: func(s *Service) { s.Name = "AC" }, wantMsg: "Service name must be at least 3 characters"},
		{name: "short description", mutate: func(s *Service) { s.Description = "short" }, wantMsg: "Description must be at least 10 characters"},
		{name: "unknown category", mutate: func(s *Service) { s.Category = "plumbing" }, wantMsg: "Category must be: cleaning, repair, maintenance, installation, or inspection"},
		{name: "unknown status", mutate: func(s *Service) { s.Status = "archived" }, wantMsg: "Status must be active or inactive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validService()
			tt.mutate(s)

			err := s.Validate()
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, types.IsKind(err, types.ErrorKindValidation))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestServiceApplyDefaults(t *testing.T) {
	s := &Service{}
	s.ApplyDefaults()

	assert.Equal(t, CategoryCleaning, s.Category)
	assert.Equal(t, DefaultServiceIcon, s.Icon)
	assert.Equal(t, StatusActive, s.Status)
}

func TestReviewValidate(t *testing.T) {
	base := func() *Review {
		return &Review{Rating: 5, Title: "Great", Comment: "Fixed quickly"}
	}

	assert.NoError(t, base().Validate())

	r := base()
	r.Quality = intPtr(4)
	r.Pricing = intPtr(1)
	assert.NoError(t, r.Validate())

	r = base()
	r.Rating = 0
	assert.ErrorContains(t, r.Validate(), "Rating must be between 1 and 5")

	r = base()
	r.Rating = 6
	assert.ErrorContains(t, r.Validate(), "Rating must be between 1 and 5")

	r = base()
	r.Technician = intPtr(0)
	assert.ErrorContains(t, r.Validate(), "Technician rating must be between 1 and 5")

	r = base()
	r.Title = ""
	assert.ErrorContains(t, r.Validate(), "Title is required")
}

func TestServiceRequestValidate(t *testing.T) {
	r := &ServiceRequest{
		CustomerPhone: "+966500000000",
		Service:       "AC Repair",
		ScheduledDate: time.Now(),
		Status:        RequestStatusPending,
	}
	assert.NoError(t, r.Validate())

	r.Status = "done"
	assert.ErrorContains(t, r.Validate(), "Invalid status")

	r.Status = RequestStatusPending
	r.ScheduledDate = time.Time{}
	assert.ErrorContains(t, r.Validate(), "Scheduled date is required")
}

func TestRequestStatus(t *testing.T) {
	for _, s := range RequestStatuses {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, RequestStatus("in_progress").IsValid())

	assert.True(t, RequestStatusCompleted.IsTerminal())
	assert.True(t, RequestStatusCancelled.IsTerminal())
	assert.False(t, RequestStatusAssigned.IsTerminal())
}

func TestServiceAreaValidate(t *testing.T) {
	a := &ServiceArea{CityName: "Jazan", ArabicName: "جازان", Status: StatusActive, DeliveryTime: 24}
	assert.NoError(t, a.Validate())

	a.ArabicName = ""
	assert.ErrorContains(t, a.Validate(), "City name and Arabic name are required")
}

func TestUserValidate(t *testing.T) {
	u := &User{Phone: "+966500000000", Role: RoleCustomer}
	assert.NoError(t, u.Validate())

	u.Phone = "966500000000"
	assert.ErrorContains(t, u.Validate(), "international format")

	email := "not-an-email"
	u.Phone = "+966500000000"
	u.Email = &email
	assert.ErrorContains(t, u.Validate(), "Invalid email address")
}

func TestDefaultContact(t *testing.T) {
	c := DefaultContact()

	assert.Equal(t, "+966502258883", c.Phone)
	assert.Equal(t, "https://wa.me/+966502258883", c.WhatsappLink)
	assert.Equal(t, "#", c.Snapchat)
}
