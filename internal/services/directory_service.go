package services

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/Facu14carrizo/StuntProAR/internal/config"
	"github.com/Facu14carrizo/StuntProAR/internal/logger"
	"github.com/Facu14carrizo/StuntProAR/internal/models"
	"github.com/Facu14carrizo/StuntProAR/internal/repositories"
	"github.com/Facu14carrizo/StuntProAR/internal/services/dto"
)

// DirectoryService runs the profile browsing surface: the full listing,
// criteria search and the aggregated landing page.
//
// Discovery reads degrade instead of failing: a store error logs a
// warning and yields an empty section, never a user-visible error.
type DirectoryService interface {
	Search(ctx context.Context, criteria dto.SearchCriteria) *dto.SearchResult
	ListProfiles(ctx context.Context) []dto.ProfileSummary
	Home(ctx context.Context) *dto.HomeResponse
}

type directoryService struct {
	profileRepo repositories.ProfileRepository
	catalogRepo repositories.CatalogRepository
}

func NewDirectoryService(profileRepo repositories.ProfileRepository, catalogRepo repositories.CatalogRepository) DirectoryService {
	return &directoryService{
		profileRepo: profileRepo,
		catalogRepo: catalogRepo,
	}
}

// Search narrows the directory one criterion at a time. Each stage works
// on the previous stage's output, so stage order never changes the final
// set, and listing order from the store is preserved throughout.
func (s *directoryService) Search(ctx context.Context, criteria dto.SearchCriteria) *dto.SearchResult {
	profiles, err := s.profileRepo.ListStuntmen()
	if err != nil {
		logger.CtxWarn(ctx, "profile listing unavailable, returning empty result", "error", err)
		return &dto.SearchResult{Criteria: criteria, Profiles: []dto.ProfileSummary{}}
	}

	profiles = filterByName(profiles, criteria.Name)
	profiles = filterByGender(profiles, criteria.Gender)
	profiles = filterByProfileType(profiles, criteria.ProfileType)

	if criteria.SpecialtyID != "" {
		ids, err := s.profileRepo.IDsWithSpecialty(criteria.SpecialtyID)
		if err != nil {
			logger.CtxWarn(ctx, "specialty lookup failed, treating as empty", "specialty_id", criteria.SpecialtyID, "error", err)
			ids = map[string]bool{}
		}
		profiles = filterByIDSet(profiles, ids)
	}

	if criteria.Available != nil {
		ids, err := s.profileRepo.IDsByAvailability(*criteria.Available)
		if err != nil {
			logger.CtxWarn(ctx, "availability lookup failed, treating as empty", "error", err)
			ids = map[string]bool{}
		}
		profiles = filterByIDSet(profiles, ids)
	}

	return &dto.SearchResult{
		Criteria: criteria,
		Profiles: s.toSummaries(ctx, profiles),
		Total:    len(profiles),
	}
}

// ListProfiles returns the unfiltered directory.
func (s *directoryService) ListProfiles(ctx context.Context) []dto.ProfileSummary {
	result := s.Search(ctx, dto.SearchCriteria{})
	return result.Profiles
}

// Home fetches the landing page sections concurrently. Each section
// degrades to empty on its own, so one failing table never blanks the
// whole page.
func (s *directoryService) Home(ctx context.Context) *dto.HomeResponse {
	home := &dto.HomeResponse{
		News:        []models.News{},
		Profiles:    []dto.ProfileSummary{},
		Specialties: []models.Specialty{},
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		news, err := s.catalogRepo.LatestNews(config.GetConfig().News.HomeLimit)
		if err != nil {
			logger.CtxWarn(gctx, "news unavailable for home", "error", err)
			return nil
		}
		home.News = news
		return nil
	})

	g.Go(func() error {
		home.Profiles = s.ListProfiles(gctx)
		return nil
	})

	g.Go(func() error {
		specialties, err := s.catalogRepo.ListSpecialties()
		if err != nil {
			logger.CtxWarn(gctx, "specialties unavailable for home", "error", err)
			return nil
		}
		home.Specialties = specialties
		return nil
	})

	_ = g.Wait()
	return home
}

// ====================
//  Narrowing stages
// ====================

// filterByName keeps profiles whose legal name OR stage name contains
// the query, case-insensitive.
func filterByName(profiles []models.Profile, name string) []models.Profile {
	if name == "" {
		return profiles
	}
	query := strings.ToLower(name)
	out := make([]models.Profile, 0, len(profiles))
	for _, p := range profiles {
		if strings.Contains(strings.ToLower(p.FullName), query) {
			out = append(out, p)
			continue
		}
		if p.StageName != nil && strings.Contains(strings.ToLower(*p.StageName), query) {
			out = append(out, p)
		}
	}
	return out
}

func filterByGender(profiles []models.Profile, gender string) []models.Profile {
	if gender == "" {
		return profiles
	}
	out := make([]models.Profile, 0, len(profiles))
	for _, p := range profiles {
		if p.Gender == gender {
			out = append(out, p)
		}
	}
	return out
}

func filterByProfileType(profiles []models.Profile, profileType string) []models.Profile {
	if profileType == "" {
		return profiles
	}
	out := make([]models.Profile, 0, len(profiles))
	for _, p := range profiles {
		if string(p.ProfileType) == profileType {
			out = append(out, p)
		}
	}
	return out
}

// filterByIDSet intersects the running set with ids fetched in one
// batched store query. Profiles missing from the set are dropped, which
// also covers profiles with no stats row at all.
func filterByIDSet(profiles []models.Profile, ids map[string]bool) []models.Profile {
	out := make([]models.Profile, 0, len(profiles))
	for _, p := range profiles {
		if ids[p.ID] {
			out = append(out, p)
		}
	}
	return out
}

// toSummaries shapes profiles for listing cards, attaching specialties
// in one batched query instead of one per profile.
func (s *directoryService) toSummaries(ctx context.Context, profiles []models.Profile) []dto.ProfileSummary {
	summaries := make([]dto.ProfileSummary, 0, len(profiles))
	if len(profiles) == 0 {
		return summaries
	}

	ids := make([]string, 0, len(profiles))
	for _, p := range profiles {
		ids = append(ids, p.ID)
	}

	specialtiesByProfile, err := s.profileRepo.SpecialtiesForProfiles(ids)
	if err != nil {
		logger.CtxWarn(ctx, "specialty tags unavailable for listing", "error", err)
		specialtiesByProfile = map[string][]models.ProfileSpecialty{}
	}

	for _, p := range profiles {
		summaries = append(summaries, newProfileSummary(&p, specialtiesByProfile[p.ID]))
	}
	return summaries
}

func newProfileSummary(profile *models.Profile, specialties []models.ProfileSpecialty) dto.ProfileSummary {
	return dto.ProfileSummary{
		ID:          profile.ID,
		DisplayName: profile.DisplayName(),
		FullName:    profile.FullName,
		StageName:   profile.StageName,
		Bio:         profile.Bio,
		Gender:      profile.Gender,
		ProfileType: string(profile.ProfileType),
		AvatarURL:   profile.AvatarURL,
		Languages:   profile.GetLanguages(),
		Specialties: toSpecialtyTags(specialties),
		CreatedAt:   profile.CreatedAt,
	}
}

func toSpecialtyTags(specialties []models.ProfileSpecialty) []dto.SpecialtyTag {
	tags := make([]dto.SpecialtyTag, 0, len(specialties))
	for _, ps := range specialties {
		tag := dto.SpecialtyTag{
			SpecialtyID:     ps.SpecialtyID,
			ExperienceLevel: string(ps.ExperienceLevel),
		}
		if ps.Specialty != nil {
			tag.Name = ps.Specialty.Name
			tag.Icon = ps.Specialty.Icon
		}
		tags = append(tags, tag)
	}
	return tags
}
