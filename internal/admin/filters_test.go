package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ignatzorin/homeservices-portal/internal/models"
)

func TestFilterBookings(t *testing.T) {
	items := []models.Booking{
		{ID: "1", ServiceName: "AC Repair", Name: "Sara", Mobile: "0501234567", Status: models.BookingStatusPending},
		{ID: "2", ServiceName: "Deep Cleaning", Name: "Omar", Mobile: "0559876543", Status: models.BookingStatusCompleted},
	}

	assert.Len(t, FilterBookings(items, "", "all"), 2)
	assert.Equal(t, "1", FilterBookings(items, "ac", "")[0].ID)
	assert.Equal(t, "2", FilterBookings(items, "0559", "")[0].ID)
	assert.Empty(t, FilterBookings(items, "sara", models.BookingStatusCompleted))
}

func TestFilterMessages(t *testing.T) {
	items := []models.Contact{
		{ID: "1", Name: "Ali", Email: "ali@example.ae", Subject: "Quote"},
		{ID: "2", Name: "Mona", Email: "mona@example.ae", Subject: "Complaint", IsRead: true},
	}

	assert.Len(t, FilterMessages(items, "", "all"), 2)
	assert.Equal(t, "1", FilterMessages(items, "", "unread")[0].ID)
	assert.Equal(t, "2", FilterMessages(items, "COMPLAINT", "read")[0].ID)
	assert.Empty(t, FilterMessages(items, "ali", "read"))
}

func TestFilterServicesAndReviews(t *testing.T) {
	services := []models.Service{
		{ID: "1", Title: "AC Repair", Category: &models.Category{Slug: "ac"}},
		{ID: "2", Title: "Sofa Cleaning", Description: "steam", Category: &models.Category{Slug: "cleaning"}},
	}
	assert.Equal(t, "2", FilterServices(services, "steam", "")[0].ID)
	assert.Equal(t, "1", FilterServices(services, "", "ac")[0].ID)

	reviews := []models.Review{
		{ID: "1", Rating: 5, Comment: "Great", User: &models.User{Name: "Sara"}},
		{ID: "2", Rating: 3, Comment: "Okay", Service: &models.Service{Title: "AC Repair"}},
	}
	assert.Equal(t, "2", FilterReviews(reviews, "repair", "")[0].ID)
	assert.Equal(t, "1", FilterReviews(reviews, "", "5")[0].ID)
	assert.Empty(t, FilterReviews(reviews, "sara", "3"))
}

func TestParentOptions(t *testing.T) {
	parent := "c1"
	items := []models.Category{
		{ID: "c1", Name: "Cleaning"},
		{ID: "c2", Name: "Deep", ParentID: &parent},
		{ID: "c3", Name: "Repair"},
	}
	opts := ParentOptions(items, "c3")
	assert.Len(t, opts, 1)
	assert.Equal(t, "c1", opts[0].ID)
}
