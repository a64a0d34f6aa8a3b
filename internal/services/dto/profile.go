package dto

import (
	"time"

	"github.com/Facu14carrizo/StuntProAR/internal/models"
)

// SpecialtyTag - one specialty attached to a profile, with the
// profile's experience level in it.
type SpecialtyTag struct {
	SpecialtyID     string `json:"specialty_id"`
	Name            string `json:"name"`
	Icon            string `json:"icon,omitempty"`
	ExperienceLevel string `json:"experience_level"`
}

// SkillTag - one skill attached to a profile.
type SkillTag struct {
	SkillID     string `json:"skill_id"`
	Name        string `json:"name"`
	Proficiency string `json:"proficiency"`
	Certified   bool   `json:"certified"`
}

// ProjectCredit - a project the performer worked on, with their role in
// it folded into the project fields.
type ProjectCredit struct {
	ProjectID       string `json:"project_id"`
	Title           string `json:"title"`
	Year            int    `json:"year,omitempty"`
	Director        string `json:"director,omitempty"`
	Description     string `json:"description,omitempty"`
	PosterURL       string `json:"poster_url,omitempty"`
	RoleDescription string `json:"role_description,omitempty"`
}

// ContactInfo - direct contact fields. Only present for authenticated
// viewers; guests get ContactLocked instead.
type ContactInfo struct {
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// ProfileSummary - card-level view of a performer used in listings and
// search results.
type ProfileSummary struct {
	ID          string         `json:"id"`
	DisplayName string         `json:"display_name"`
	FullName    string         `json:"full_name"`
	StageName   *string        `json:"stage_name,omitempty"`
	Bio         string         `json:"bio,omitempty"`
	Gender      string         `json:"gender,omitempty"`
	ProfileType string         `json:"profile_type"`
	AvatarURL   string         `json:"avatar_url,omitempty"`
	Languages   []string       `json:"languages,omitempty"`
	Specialties []SpecialtyTag `json:"specialties"`
	CreatedAt   time.Time      `json:"created_at"`
}

// GallerySection - tier-filtered gallery. HiddenCount tells a guest how
// many premium items were withheld so the UI can render an upsell.
type GallerySection struct {
	Items       []models.GalleryItem `json:"items"`
	HiddenCount int                  `json:"hidden_count"`
}

// ProfileDetail - everything the detail page shows for one performer.
// Stats is nil when the profile has no stats row yet.
type ProfileDetail struct {
	ProfileSummary
	Stats         *models.ProfileStats `json:"stats,omitempty"`
	Skills        []SkillTag           `json:"skills"`
	Projects      []ProjectCredit      `json:"projects"`
	Testimonials  []models.Testimonial `json:"testimonials"`
	Gallery       GallerySection       `json:"gallery"`
	Contact       *ContactInfo         `json:"contact,omitempty"`
	ContactLocked bool                 `json:"contact_locked"`
}
