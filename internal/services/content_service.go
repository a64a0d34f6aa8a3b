package services

import (
	"context"

	"github.com/Facu14carrizo/StuntProAR/internal/auth"
	"github.com/Facu14carrizo/StuntProAR/internal/logger"
	"github.com/Facu14carrizo/StuntProAR/internal/models"
	"github.com/Facu14carrizo/StuntProAR/internal/repositories"
	"github.com/Facu14carrizo/StuntProAR/internal/services/dto"
)

// ContentService serves the editorial surfaces: news, the specialty
// catalog and educational videos. Like the directory, these degrade to
// empty on store failure.
type ContentService interface {
	LatestNews(ctx context.Context, limit int) []models.News
	ListSpecialties(ctx context.Context) []models.Specialty
	ListVideos(ctx context.Context, tier auth.Tier) *dto.VideoListing
}

type contentService struct {
	catalogRepo repositories.CatalogRepository
}

func NewContentService(catalogRepo repositories.CatalogRepository) ContentService {
	return &contentService{catalogRepo: catalogRepo}
}

func (s *contentService) LatestNews(ctx context.Context, limit int) []models.News {
	news, err := s.catalogRepo.LatestNews(limit)
	if err != nil {
		logger.CtxWarn(ctx, "news unavailable", "error", err)
		return []models.News{}
	}
	return news
}

func (s *contentService) ListSpecialties(ctx context.Context) []models.Specialty {
	specialties, err := s.catalogRepo.ListSpecialties()
	if err != nil {
		logger.CtxWarn(ctx, "specialty catalog unavailable", "error", err)
		return []models.Specialty{}
	}
	return specialties
}

// ListVideos returns the video library with premium entries withheld
// from guests. HiddenCount lets the UI show how much a sign-in unlocks.
func (s *contentService) ListVideos(ctx context.Context, tier auth.Tier) *dto.VideoListing {
	videos, err := s.catalogRepo.ListEducationalVideos()
	if err != nil {
		logger.CtxWarn(ctx, "video library unavailable", "error", err)
		return &dto.VideoListing{Videos: []models.EducationalVideo{}}
	}
	visible, hidden := VisibleVideos(videos, tier)
	return &dto.VideoListing{Videos: visible, HiddenCount: hidden}
}
