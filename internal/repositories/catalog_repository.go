package repositories

import (
	"github.com/Facu14carrizo/StuntProAR/internal/models"

	"gorm.io/gorm"
)

// CatalogRepository serves the platform-wide collections: specialty
// reference data, news and educational videos.
type CatalogRepository interface {
	ListSpecialties() ([]models.Specialty, error)
	LatestNews(limit int) ([]models.News, error)
	ListEducationalVideos() ([]models.EducationalVideo, error)
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) ListSpecialties() ([]models.Specialty, error) {
	var specialties []models.Specialty
	err := r.db.Order("name ASC").Find(&specialties).Error
	return specialties, err
}

func (r *catalogRepository) LatestNews(limit int) ([]models.News, error) {
	var news []models.News
	err := r.db.Order("created_at DESC").Limit(limit).Find(&news).Error
	return news, err
}

func (r *catalogRepository) ListEducationalVideos() ([]models.EducationalVideo, error) {
	var videos []models.EducationalVideo
	err := r.db.Order("created_at DESC").Find(&videos).Error
	return videos, err
}
