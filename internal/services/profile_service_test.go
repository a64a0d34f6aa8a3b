package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Facu14carrizo/StuntProAR/internal/auth"
	"github.com/Facu14carrizo/StuntProAR/internal/models"
	"github.com/Facu14carrizo/StuntProAR/pkg/apperrors"
)

func detailFixture() *fakeProfileRepo {
	repo := directoryFixture()
	repo.stats = map[string]*models.ProfileStats{
		"p1": {ProfileID: "p1", YearsExperience: 8, Available: true},
	}
	repo.projects = map[string][]models.ProfileProject{
		"p1": {
			{
				ProfileID:       "p1",
				ProjectID:       "pr1",
				RoleDescription: "Doble de conducción en persecución nocturna",
				Project:         &models.Project{Title: "Ruta 40", Year: 2023, Director: "L. Giménez"},
			},
		},
	}
	repo.testimonials = map[string][]models.Testimonial{
		"p1": {{ProfileID: "p1", Author: "Productora Sur", IsVerified: true, Rating: 5}},
	}
	repo.gallery = map[string][]models.GalleryItem{
		"p1": {
			{ProfileID: "p1", Title: "Ensayo", IsPremium: false, OrderIndex: 0},
			{ProfileID: "p1", Title: "Escena final", IsPremium: true, OrderIndex: 1},
		},
	}
	repo.profiles[2].Email = "ana@stuntproar.com.ar"
	repo.profiles[2].Phone = "+54 11 5555-0101"
	return repo
}

func TestGetProfileDetailGuest(t *testing.T) {
	svc := NewProfileService(detailFixture())

	detail, err := svc.GetProfileDetail(context.Background(), "p1", auth.TierGuest)
	require.NoError(t, err)

	assert.Equal(t, "Blaze", detail.DisplayName)
	require.NotNil(t, detail.Stats)
	assert.Equal(t, 8, detail.Stats.YearsExperience)

	require.Len(t, detail.Projects, 1)
	assert.Equal(t, "Ruta 40", detail.Projects[0].Title)
	assert.Equal(t, "Doble de conducción en persecución nocturna", detail.Projects[0].RoleDescription)

	assert.Len(t, detail.Testimonials, 1)

	// Guests see only free gallery items and no contact.
	assert.Len(t, detail.Gallery.Items, 1)
	assert.Equal(t, 1, detail.Gallery.HiddenCount)
	assert.Nil(t, detail.Contact)
	assert.True(t, detail.ContactLocked)
}

func TestGetProfileDetailAuthenticated(t *testing.T) {
	svc := NewProfileService(detailFixture())

	detail, err := svc.GetProfileDetail(context.Background(), "p1", auth.TierAuthenticated)
	require.NoError(t, err)

	assert.Len(t, detail.Gallery.Items, 2)
	assert.Equal(t, 0, detail.Gallery.HiddenCount)
	require.NotNil(t, detail.Contact)
	assert.Equal(t, "ana@stuntproar.com.ar", detail.Contact.Email)
	assert.False(t, detail.ContactLocked)
}

func TestGetProfileDetailMissingStats(t *testing.T) {
	svc := NewProfileService(detailFixture())

	// p3 has no stats row; the detail still renders.
	detail, err := svc.GetProfileDetail(context.Background(), "p3", auth.TierGuest)
	require.NoError(t, err)
	assert.Nil(t, detail.Stats)
	assert.Equal(t, "Carla Paredes", detail.DisplayName)
}

func TestGetProfileDetailNotFound(t *testing.T) {
	svc := NewProfileService(detailFixture())

	_, err := svc.GetProfileDetail(context.Background(), "desconocido", auth.TierGuest)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrProfileNotFound.Code, appErr.Code)
}
