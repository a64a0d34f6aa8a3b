package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// Profile is a stunt performer's public record. Contact fields are
// visibility-gated at the service layer; the row itself always carries them.
type Profile struct {
	BaseModel
	FullName    string         `gorm:"not null" json:"full_name"`
	StageName   *string        `json:"stage_name,omitempty"`
	Bio         string         `json:"bio,omitempty"`
	Gender      string         `json:"gender,omitempty"`
	Phone       string         `json:"-"`
	Email       string         `json:"-"`
	ProfileType ProfileType    `gorm:"type:varchar(20);default:'basic'" json:"profile_type"`
	AvatarURL   string         `json:"avatar_url,omitempty"`
	IsStuntman  bool           `gorm:"default:true;index" json:"is_stuntman"`
	Languages   datatypes.JSON `gorm:"type:jsonb" json:"languages,omitempty"` // ["español", "inglés"]

	// Relations
	Specialties []ProfileSpecialty `gorm:"foreignKey:ProfileID" json:"-"`
	Stats       *ProfileStats      `gorm:"foreignKey:ProfileID" json:"-"`
}

// DisplayName returns the stage name when set, falling back to the
// legal name. Never empty while FullName is set.
func (p *Profile) DisplayName() string {
	if p.StageName != nil && *p.StageName != "" {
		return *p.StageName
	}
	return p.FullName
}

// GetLanguages returns the languages column as a string slice.
func (p *Profile) GetLanguages() []string {
	var languages []string
	if len(p.Languages) > 0 {
		_ = json.Unmarshal(p.Languages, &languages)
	}
	return languages
}

// SetLanguages stores a string slice into the languages column.
func (p *Profile) SetLanguages(languages []string) {
	data, _ := json.Marshal(languages)
	p.Languages = datatypes.JSON(data)
}

// ProfileStats is the one-to-one metrics row for a profile. Absence of
// a row is not an error: the profile is simply "unknown availability".
type ProfileStats struct {
	BaseModel
	ProfileID         string `gorm:"type:uuid;uniqueIndex;not null" json:"profile_id"`
	YearsExperience   int    `json:"years_experience"`
	TotalProjects     int    `json:"total_projects"`
	HeightCm          int    `json:"height_cm"`
	WeightKg          int    `json:"weight_kg"`
	Available         bool   `gorm:"default:false" json:"available"`
	ResponseTimeHours int    `json:"response_time_hours"`
}

func (ProfileStats) TableName() string {
	return "profile_stats"
}
