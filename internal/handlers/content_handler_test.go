package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Facu14carrizo/StuntProAR/internal/auth"
	"github.com/Facu14carrizo/StuntProAR/internal/models"
	"github.com/Facu14carrizo/StuntProAR/internal/services/dto"
	"github.com/Facu14carrizo/StuntProAR/internal/validator"
)

type fakeContent struct {
	news []models.News
}

func (f *fakeContent) LatestNews(_ context.Context, limit int) []models.News {
	if limit < len(f.news) {
		return f.news[:limit]
	}
	return f.news
}

func (f *fakeContent) ListSpecialties(_ context.Context) []models.Specialty {
	return []models.Specialty{{Name: "Acrobacia"}}
}

func (f *fakeContent) ListVideos(_ context.Context, tier auth.Tier) *dto.VideoListing {
	if tier.CanViewPremium() {
		return &dto.VideoListing{Videos: []models.EducationalVideo{{Title: "a"}, {Title: "b"}}}
	}
	return &dto.VideoListing{Videos: []models.EducationalVideo{{Title: "a"}}, HiddenCount: 1}
}

func newContentRouter(content *fakeContent) *gin.Engine {
	directory := &fakeDirectory{byName: map[string][]dto.ProfileSummary{
		"": {{ID: "p1"}},
	}}
	handler := NewContentHandler(NewBaseHandler(validator.New()), directory, content)

	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)
	return router
}

func TestNewsEndpointLimit(t *testing.T) {
	content := &fakeContent{news: []models.News{{Title: "a"}, {Title: "b"}, {Title: "c"}}}
	router := newContentRouter(content)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/news?limit=2", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var news []models.News
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &news))
	assert.Len(t, news, 2)
}

func TestVideosEndpointTier(t *testing.T) {
	router := newContentRouter(&fakeContent{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/videos", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var listing dto.VideoListing
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	assert.Equal(t, 1, listing.HiddenCount)
	assert.Len(t, listing.Videos, 1)

	token, err := auth.GenerateToken("u1", "ana@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/videos", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	assert.Equal(t, 0, listing.HiddenCount)
	assert.Len(t, listing.Videos, 2)
}

func TestHomeEndpoint(t *testing.T) {
	router := newContentRouter(&fakeContent{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/home", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var home dto.HomeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &home))
	assert.Len(t, home.Profiles, 1)
}
