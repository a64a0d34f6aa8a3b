package models

// GalleryItem is a media entry on a profile. IsPremium is the unit the
// visibility filter acts on.
type GalleryItem struct {
	BaseModel
	ProfileID    string    `gorm:"type:uuid;not null;index" json:"profile_id"`
	MediaType    MediaType `gorm:"type:varchar(10);not null" json:"media_type"`
	MediaURL     string    `gorm:"not null" json:"media_url"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	Title        string    `json:"title,omitempty"`
	Description  string    `json:"description,omitempty"`
	IsPremium    bool      `gorm:"default:false" json:"is_premium"`
	OrderIndex   int       `gorm:"default:0" json:"order_index"`
}

// News is a platform announcement shown on the home page.
type News struct {
	BaseModel
	Title       string   `gorm:"not null" json:"title"`
	Content     string   `gorm:"not null" json:"content"`
	IconType    NewsIcon `gorm:"type:varchar(20);default:'info'" json:"icon_type"`
	BorderColor string   `gorm:"type:varchar(20)" json:"border_color"`
}

func (News) TableName() string {
	return "news"
}

// EducationalVideo is a platform-wide video, not tied to any profile.
type EducationalVideo struct {
	BaseModel
	Title        string `gorm:"not null" json:"title"`
	Description  string `json:"description,omitempty"`
	VideoURL     string `gorm:"not null" json:"video_url"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	Category     string `json:"category,omitempty"`
	IsPremium    bool   `gorm:"default:false" json:"is_premium"`
}
