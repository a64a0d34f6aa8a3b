package models

// Project is a shared production record (film, series, commercial).
type Project struct {
	BaseModel
	Title       string `gorm:"not null" json:"title"`
	Year        int    `json:"year,omitempty"`
	Director    string `json:"director,omitempty"`
	Description string `json:"description,omitempty"`
	PosterURL   string `json:"poster_url,omitempty"`
}

// ProfileProject links a profile to a project; the role description is
// profile-specific and gets merged onto the project for display.
type ProfileProject struct {
	BaseModel
	ProfileID       string `gorm:"type:uuid;not null;index:idx_profile_project,unique" json:"profile_id"`
	ProjectID       string `gorm:"type:uuid;not null;index:idx_profile_project,unique" json:"project_id"`
	RoleDescription string `json:"role_description,omitempty"`

	Project *Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
}

// Testimonial is a reference left for a profile. Only verified
// testimonials are ever served.
type Testimonial struct {
	BaseModel
	ProfileID  string `gorm:"type:uuid;not null;index" json:"profile_id"`
	Author     string `gorm:"not null" json:"author"`
	AuthorRole string `json:"author_role,omitempty"`
	Content    string `gorm:"not null" json:"content"`
	Rating     int    `json:"rating,omitempty"`
	IsVerified bool   `gorm:"default:false;index" json:"is_verified"`
}
