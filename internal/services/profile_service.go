package services

import (
	"context"
	"errors"

	"github.com/Facu14carrizo/StuntProAR/internal/auth"
	"github.com/Facu14carrizo/StuntProAR/internal/logger"
	"github.com/Facu14carrizo/StuntProAR/internal/models"
	"github.com/Facu14carrizo/StuntProAR/internal/repositories"
	"github.com/Facu14carrizo/StuntProAR/internal/services/dto"
	"github.com/Facu14carrizo/StuntProAR/pkg/apperrors"
)

// ProfileService aggregates everything the performer detail page shows.
// An unknown profile id is the only user-visible error; a failing
// section degrades to empty so the rest of the page still renders.
type ProfileService interface {
	GetProfileDetail(ctx context.Context, id string, tier auth.Tier) (*dto.ProfileDetail, error)
}

type profileService struct {
	profileRepo repositories.ProfileRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository) ProfileService {
	return &profileService{profileRepo: profileRepo}
}

func (s *profileService) GetProfileDetail(ctx context.Context, id string, tier auth.Tier) (*dto.ProfileDetail, error) {
	profile, err := s.profileRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	detail := &dto.ProfileDetail{
		Skills:       []dto.SkillTag{},
		Projects:     []dto.ProjectCredit{},
		Testimonials: []models.Testimonial{},
		Gallery:      dto.GallerySection{Items: []models.GalleryItem{}},
	}

	specialties, err := s.profileRepo.SpecialtiesForProfile(id)
	if err != nil {
		logger.CtxWarn(ctx, "specialties unavailable for profile", "profile_id", id, "error", err)
		specialties = nil
	}
	detail.ProfileSummary = newProfileSummary(profile, specialties)

	// Missing stats row means nothing recorded yet, not an error.
	stats, err := s.profileRepo.StatsForProfile(id)
	if err != nil {
		logger.CtxWarn(ctx, "stats unavailable for profile", "profile_id", id, "error", err)
	} else {
		detail.Stats = stats
	}

	if skills, err := s.profileRepo.SkillsForProfile(id); err != nil {
		logger.CtxWarn(ctx, "skills unavailable for profile", "profile_id", id, "error", err)
	} else {
		detail.Skills = toSkillTags(skills)
	}

	if projects, err := s.profileRepo.ProjectsForProfile(id); err != nil {
		logger.CtxWarn(ctx, "projects unavailable for profile", "profile_id", id, "error", err)
	} else {
		detail.Projects = toProjectCredits(projects)
	}

	if testimonials, err := s.profileRepo.VerifiedTestimonials(id); err != nil {
		logger.CtxWarn(ctx, "testimonials unavailable for profile", "profile_id", id, "error", err)
	} else {
		detail.Testimonials = testimonials
	}

	if gallery, err := s.profileRepo.GalleryForProfile(id); err != nil {
		logger.CtxWarn(ctx, "gallery unavailable for profile", "profile_id", id, "error", err)
	} else {
		items, hidden := VisibleGalleryItems(gallery, tier)
		detail.Gallery = dto.GallerySection{Items: items, HiddenCount: hidden}
	}

	detail.Contact, detail.ContactLocked = VisibleContact(profile, tier)

	return detail, nil
}

func toSkillTags(skills []models.ProfileSkill) []dto.SkillTag {
	tags := make([]dto.SkillTag, 0, len(skills))
	for _, ps := range skills {
		tag := dto.SkillTag{
			SkillID:     ps.SkillID,
			Proficiency: ps.Proficiency,
			Certified:   ps.Certified,
		}
		if ps.Skill != nil {
			tag.Name = ps.Skill.Name
		}
		tags = append(tags, tag)
	}
	return tags
}

// toProjectCredits folds the performer's role into each project so the
// page renders one flat credit per project.
func toProjectCredits(projects []models.ProfileProject) []dto.ProjectCredit {
	credits := make([]dto.ProjectCredit, 0, len(projects))
	for _, pp := range projects {
		credit := dto.ProjectCredit{
			ProjectID:       pp.ProjectID,
			RoleDescription: pp.RoleDescription,
		}
		if pp.Project != nil {
			credit.Title = pp.Project.Title
			credit.Year = pp.Project.Year
			credit.Director = pp.Project.Director
			credit.Description = pp.Project.Description
			credit.PosterURL = pp.Project.PosterURL
		}
		credits = append(credits, credit)
	}
	return credits
}
