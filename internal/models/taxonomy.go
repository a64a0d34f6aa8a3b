package models

// Specialty is reference data: a stunt discipline (driving, fire, falls...).
type Specialty struct {
	BaseModel
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

// ProfileSpecialty links a profile to a specialty with an experience level.
type ProfileSpecialty struct {
	BaseModel
	ProfileID       string          `gorm:"type:uuid;not null;index:idx_profile_specialty,unique" json:"profile_id"`
	SpecialtyID     string          `gorm:"type:uuid;not null;index:idx_profile_specialty,unique" json:"specialty_id"`
	ExperienceLevel ExperienceLevel `gorm:"type:varchar(20);not null" json:"experience_level"`

	Specialty *Specialty `gorm:"foreignKey:SpecialtyID" json:"specialty,omitempty"`
}

// Skill is reference data: a technical ability (wire work, scuba...).
type Skill struct {
	BaseModel
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Description string `json:"description,omitempty"`
}

// ProfileSkill links a profile to a skill with proficiency and certification.
type ProfileSkill struct {
	BaseModel
	ProfileID   string `gorm:"type:uuid;not null;index:idx_profile_skill,unique" json:"profile_id"`
	SkillID     string `gorm:"type:uuid;not null;index:idx_profile_skill,unique" json:"skill_id"`
	Proficiency string `gorm:"type:varchar(20)" json:"proficiency"`
	Certified   bool   `gorm:"default:false" json:"certified"`

	Skill *Skill `gorm:"foreignKey:SkillID" json:"skill,omitempty"`
}
