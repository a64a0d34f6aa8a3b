package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Facu14carrizo/StuntProAR/internal/auth"
	"github.com/Facu14carrizo/StuntProAR/internal/models"
)

func galleryFixture() []models.GalleryItem {
	return []models.GalleryItem{
		{Title: "Detrás de escena", IsPremium: false, OrderIndex: 0},
		{Title: "Caída de 20 metros", IsPremium: true, OrderIndex: 1},
		{Title: "Entrenamiento", IsPremium: false, OrderIndex: 2},
		{Title: "Escena de fuego", IsPremium: true, OrderIndex: 3},
	}
}

func TestVisibleGalleryItemsGuest(t *testing.T) {
	visible, hidden := VisibleGalleryItems(galleryFixture(), auth.TierGuest)

	assert.Equal(t, 2, hidden)
	assert.Len(t, visible, 2)
	assert.Equal(t, "Detrás de escena", visible[0].Title)
	assert.Equal(t, "Entrenamiento", visible[1].Title)
}

func TestVisibleGalleryItemsAuthenticated(t *testing.T) {
	items := galleryFixture()
	visible, hidden := VisibleGalleryItems(items, auth.TierAuthenticated)

	assert.Equal(t, 0, hidden)
	assert.Equal(t, items, visible)
}

func TestVisibleGalleryItemsIdempotent(t *testing.T) {
	once, _ := VisibleGalleryItems(galleryFixture(), auth.TierGuest)
	twice, hidden := VisibleGalleryItems(once, auth.TierGuest)

	assert.Equal(t, 0, hidden)
	assert.Equal(t, once, twice)
}

func TestVisibleVideos(t *testing.T) {
	videos := []models.EducationalVideo{
		{Title: "Intro al combate escénico", IsPremium: false},
		{Title: "Técnicas avanzadas de caída", IsPremium: true},
	}

	visible, hidden := VisibleVideos(videos, auth.TierGuest)
	assert.Equal(t, 1, hidden)
	assert.Len(t, visible, 1)
	assert.Equal(t, "Intro al combate escénico", visible[0].Title)

	visible, hidden = VisibleVideos(videos, auth.TierAuthenticated)
	assert.Equal(t, 0, hidden)
	assert.Len(t, visible, 2)
}

func TestVisibleContact(t *testing.T) {
	profile := &models.Profile{Email: "ana@stuntproar.com.ar", Phone: "+54 11 5555-0101"}

	contact, locked := VisibleContact(profile, auth.TierGuest)
	assert.Nil(t, contact)
	assert.True(t, locked)

	contact, locked = VisibleContact(profile, auth.TierAuthenticated)
	assert.False(t, locked)
	assert.Equal(t, "ana@stuntproar.com.ar", contact.Email)
	assert.Equal(t, "+54 11 5555-0101", contact.Phone)
}
