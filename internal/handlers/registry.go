package handlers

import (
	"github.com/Facu14carrizo/StuntProAR/internal/services"
	"github.com/Facu14carrizo/StuntProAR/internal/validator"
)

// AppHandlers groups every HTTP handler for route registration.
type AppHandlers struct {
	Auth      *AuthHandler
	Directory *DirectoryHandler
	Profiles  *ProfileHandler
	Content   *ContentHandler
}

func NewAppHandlers(svc *services.Container) *AppHandlers {
	base := NewBaseHandler(validator.New())
	return &AppHandlers{
		Auth:      NewAuthHandler(base, svc.Auth),
		Directory: NewDirectoryHandler(base, svc.Directory, svc.Searches),
		Profiles:  NewProfileHandler(base, svc.Directory, svc.Profiles),
		Content:   NewContentHandler(base, svc.Directory, svc.Content),
	}
}
