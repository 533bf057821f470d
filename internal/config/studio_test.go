package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sashakmakeup/booking_bot/internal/model"
)

func TestDefaultStudioIsValid(t *testing.T) {
	studio := DefaultStudio()
	require.NoError(t, studio.Validate())
	assert.NotEmpty(t, studio.Services)
}

func TestValidateRejectsDuplicateServiceIDs(t *testing.T) {
	studio := DefaultStudio()
	studio.Services = append(studio.Services, model.ServiceOption{
		ID: "bridal", Name: "Another Bridal", DurationMinutes: 60, PriceCents: 100,
	})

	err := studio.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate service id")
}

func TestValidateRejectsInvertedHours(t *testing.T) {
	studio := DefaultStudio()
	studio.WorkingHours.Open = "19:00"

	require.Error(t, studio.Validate())
}

func TestValidateRejectsEmptyCatalog(t *testing.T) {
	studio := DefaultStudio()
	studio.Services = nil

	require.Error(t, studio.Validate())
}

func TestServiceByID(t *testing.T) {
	studio := DefaultStudio()

	svc := studio.ServiceByID("party")
	require.NotNil(t, svc)
	assert.Equal(t, "Party Glam", svc.Name)

	assert.Nil(t, studio.ServiceByID("missing"))
}
