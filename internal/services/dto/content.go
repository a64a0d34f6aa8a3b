package dto

import "github.com/Facu14carrizo/StuntProAR/internal/models"

// VideoListing - tier-filtered educational videos. HiddenCount is the
// number of premium videos withheld from a guest.
type VideoListing struct {
	Videos      []models.EducationalVideo `json:"videos"`
	HiddenCount int                       `json:"hidden_count"`
}

// HomeResponse - everything the landing page needs in one call.
type HomeResponse struct {
	News        []models.News      `json:"news"`
	Profiles    []ProfileSummary   `json:"profiles"`
	Specialties []models.Specialty `json:"specialties"`
}
