package models

type ProfileType string
type ExperienceLevel string
type MediaType string
type NewsIcon string

const (
	ProfileTypeBasic   ProfileType = "basic"
	ProfileTypePremium ProfileType = "premium"

	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
	ExperienceExpert       ExperienceLevel = "expert"

	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"

	NewsIconInfo         NewsIcon = "info"
	NewsIconWarning      NewsIcon = "warning"
	NewsIconSuccess      NewsIcon = "success"
	NewsIconAnnouncement NewsIcon = "announcement"
)
