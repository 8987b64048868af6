package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactLazyDefault(t *testing.T) {
	ctx := context.Background()
	store := &fakeContactStore{}
	svc := NewContactService(store)

	contact, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, contact.ID)
	assert.Equal(t, "+966502258883", contact.Phone)
	assert.Equal(t, 1, store.saves)

	again, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, contact.ID, again.ID)
	assert.Equal(t, 1, store.saves)
}

func TestContactUpdate(t *testing.T) {
	ctx := context.Background()
	store := &fakeContactStore{}
	svc := NewContactService(store)

	contact, err := svc.Update(ctx, ContactInput{Phone: "+966511111111", Instagram: "https://instagram.com/fixit"})
	require.NoError(t, err)
	assert.Equal(t, "+966511111111", contact.Phone)
	assert.Equal(t, "https://instagram.com/fixit", contact.Instagram)
	// Untouched fields keep their defaults
	assert.Equal(t, "specialtechnician@gmail.com", contact.Email)
	assert.Equal(t, "#", contact.Tiktok)
}
