package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleConfirmation() *BookingConfirmation {
	return &BookingConfirmation{
		ToAddress:        "owner@example.com",
		CustomerName:     "Jane Harris",
		PetName:          "Rex",
		VeterinarianName: "Dr. Alvarez",
		ServiceName:      "General Checkup",
		TotalPrice:       "225.50",
		AdmissionDate:    "2024-08-01",
		AdmissionTime:    "14:30",
	}
}

func TestRenderBookingConfirmation(t *testing.T) {
	body, err := RenderBookingConfirmation(sampleConfirmation())
	require.NoError(t, err)

	assert.Contains(t, body, "Jane Harris")
	assert.Contains(t, body, "Rex")
	assert.Contains(t, body, "Dr. Alvarez")
	assert.Contains(t, body, "General Checkup")
	assert.Contains(t, body, "225.50")
	assert.Contains(t, body, "2024-08-01")
	assert.Contains(t, body, "14:30")
	assert.NotContains(t, body, "<img", "no photo block without a photo URL")
}

func TestRenderBookingConfirmationWithPhoto(t *testing.T) {
	confirmation := sampleConfirmation()
	confirmation.PhotoURL = "https://cdn.example.com/vets/alvarez.jpg"

	body, err := RenderBookingConfirmation(confirmation)
	require.NoError(t, err)

	assert.Contains(t, body, `src="https://cdn.example.com/vets/alvarez.jpg"`)
}

func TestRenderBookingConfirmationEscapesHTML(t *testing.T) {
	confirmation := sampleConfirmation()
	confirmation.CustomerName = `<script>alert("x")</script>`

	body, err := RenderBookingConfirmation(confirmation)
	require.NoError(t, err)

	assert.False(t, strings.Contains(body, "<script>"), "customer name must be escaped")
}
