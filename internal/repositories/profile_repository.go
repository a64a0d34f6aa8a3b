package repositories

import (
	"errors"

	"github.com/Facu14carrizo/StuntProAR/internal/models"

	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository interface {
	ListStuntmen() ([]models.Profile, error)
	FindByID(id string) (*models.Profile, error)

	// Batched id-set queries for the filter engine: one round trip per
	// stage instead of one per surviving profile.
	IDsWithSpecialty(specialtyID string) (map[string]bool, error)
	IDsByAvailability(available bool) (map[string]bool, error)

	// Per-profile detail
	StatsForProfile(profileID string) (*models.ProfileStats, error)
	SpecialtiesForProfile(profileID string) ([]models.ProfileSpecialty, error)
	SpecialtiesForProfiles(profileIDs []string) (map[string][]models.ProfileSpecialty, error)
	SkillsForProfile(profileID string) ([]models.ProfileSkill, error)
	ProjectsForProfile(profileID string) ([]models.ProfileProject, error)
	VerifiedTestimonials(profileID string) ([]models.Testimonial, error)
	GalleryForProfile(profileID string) ([]models.GalleryItem, error)
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// ListStuntmen returns every listed profile newest-first. Criteria
// narrowing happens in the directory service so each stage works on the
// previous stage's output.
func (r *profileRepository) ListStuntmen() ([]models.Profile, error) {
	var profiles []models.Profile
	err := r.db.Model(&models.Profile{}).
		Where("is_stuntman = ?", true).
		Order("created_at DESC").
		Find(&profiles).Error
	return profiles, err
}

func (r *profileRepository) FindByID(id string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) IDsWithSpecialty(specialtyID string) (map[string]bool, error) {
	var ids []string
	err := r.db.Model(&models.ProfileSpecialty{}).
		Where("specialty_id = ?", specialtyID).
		Pluck("profile_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return toIDSet(ids), nil
}

func (r *profileRepository) IDsByAvailability(available bool) (map[string]bool, error) {
	var ids []string
	err := r.db.Model(&models.ProfileStats{}).
		Where("available = ?", available).
		Pluck("profile_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return toIDSet(ids), nil
}

// StatsForProfile returns nil without error when no stats row exists:
// a missing row means "unknown", not a fault.
func (r *profileRepository) StatsForProfile(profileID string) (*models.ProfileStats, error) {
	var stats models.ProfileStats
	err := r.db.Where("profile_id = ?", profileID).First(&stats).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &stats, nil
}

func (r *profileRepository) SpecialtiesForProfile(profileID string) ([]models.ProfileSpecialty, error) {
	var joins []models.ProfileSpecialty
	err := r.db.Preload("Specialty").
		Where("profile_id = ?", profileID).
		Find(&joins).Error
	return joins, err
}

func (r *profileRepository) SpecialtiesForProfiles(profileIDs []string) (map[string][]models.ProfileSpecialty, error) {
	result := make(map[string][]models.ProfileSpecialty, len(profileIDs))
	if len(profileIDs) == 0 {
		return result, nil
	}

	var joins []models.ProfileSpecialty
	err := r.db.Preload("Specialty").
		Where("profile_id IN ?", profileIDs).
		Find(&joins).Error
	if err != nil {
		return nil, err
	}

	for _, j := range joins {
		result[j.ProfileID] = append(result[j.ProfileID], j)
	}
	return result, nil
}

func (r *profileRepository) SkillsForProfile(profileID string) ([]models.ProfileSkill, error) {
	var joins []models.ProfileSkill
	err := r.db.Preload("Skill").
		Where("profile_id = ?", profileID).
		Find(&joins).Error
	return joins, err
}

func (r *profileRepository) ProjectsForProfile(profileID string) ([]models.ProfileProject, error) {
	var joins []models.ProfileProject
	err := r.db.Preload("Project").
		Where("profile_id = ?", profileID).
		Find(&joins).Error
	return joins, err
}

func (r *profileRepository) VerifiedTestimonials(profileID string) ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	err := r.db.Where("profile_id = ? AND is_verified = ?", profileID, true).
		Order("created_at DESC").
		Find(&testimonials).Error
	return testimonials, err
}

func (r *profileRepository) GalleryForProfile(profileID string) ([]models.GalleryItem, error) {
	var items []models.GalleryItem
	err := r.db.Where("profile_id = ?", profileID).
		Order("order_index ASC").
		Find(&items).Error
	return items, err
}

func toIDSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
