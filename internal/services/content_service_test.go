package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Facu14carrizo/StuntProAR/internal/auth"
	"github.com/Facu14carrizo/StuntProAR/internal/models"
)

func TestLatestNewsHonorsLimit(t *testing.T) {
	catalog := &fakeCatalogRepo{
		news: []models.News{{Title: "a"}, {Title: "b"}, {Title: "c"}},
	}
	svc := NewContentService(catalog)

	assert.Len(t, svc.LatestNews(context.Background(), 2), 2)
	assert.Len(t, svc.LatestNews(context.Background(), 10), 3)
}

func TestLatestNewsDegradesToEmpty(t *testing.T) {
	svc := NewContentService(&fakeCatalogRepo{newsErr: errors.New("boom")})
	assert.Empty(t, svc.LatestNews(context.Background(), 10))
}

func TestListVideosTierGate(t *testing.T) {
	catalog := &fakeCatalogRepo{
		videos: []models.EducationalVideo{
			{Title: "Seguridad básica", IsPremium: false},
			{Title: "Coreografía de combate", IsPremium: true},
		},
	}
	svc := NewContentService(catalog)

	listing := svc.ListVideos(context.Background(), auth.TierGuest)
	assert.Len(t, listing.Videos, 1)
	assert.Equal(t, 1, listing.HiddenCount)

	listing = svc.ListVideos(context.Background(), auth.TierAuthenticated)
	assert.Len(t, listing.Videos, 2)
	assert.Equal(t, 0, listing.HiddenCount)
}
