package services

import (
	"github.com/Facu14carrizo/StuntProAR/internal/auth"
	"github.com/Facu14carrizo/StuntProAR/internal/models"
	"github.com/Facu14carrizo/StuntProAR/internal/services/dto"
)

// VisibleGalleryItems drops premium items for guests and counts what was
// withheld. The input slice is never mutated and relative order is kept,
// so running the result through the filter again changes nothing.
func VisibleGalleryItems(items []models.GalleryItem, tier auth.Tier) ([]models.GalleryItem, int) {
	if tier.CanViewPremium() {
		return items, 0
	}
	visible := make([]models.GalleryItem, 0, len(items))
	hidden := 0
	for _, item := range items {
		if item.IsPremium {
			hidden++
			continue
		}
		visible = append(visible, item)
	}
	return visible, hidden
}

// VisibleVideos applies the same premium gate to educational videos.
func VisibleVideos(videos []models.EducationalVideo, tier auth.Tier) ([]models.EducationalVideo, int) {
	if tier.CanViewPremium() {
		return videos, 0
	}
	visible := make([]models.EducationalVideo, 0, len(videos))
	hidden := 0
	for _, video := range videos {
		if video.IsPremium {
			hidden++
			continue
		}
		visible = append(visible, video)
	}
	return visible, hidden
}

// VisibleContact gates the direct contact fields. Guests get no contact
// struct at all, only the locked flag.
func VisibleContact(profile *models.Profile, tier auth.Tier) (*dto.ContactInfo, bool) {
	if !tier.CanViewPremium() {
		return nil, true
	}
	return &dto.ContactInfo{Email: profile.Email, Phone: profile.Phone}, false
}
