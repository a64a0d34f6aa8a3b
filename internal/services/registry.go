package services

import (
	"github.com/Facu14carrizo/StuntProAR/internal/mailer"
	"github.com/Facu14carrizo/StuntProAR/internal/repositories"
)

// Container wires every service once at startup; handlers pull from it
// instead of constructing their own dependencies.
type Container struct {
	Auth      AuthService
	Directory DirectoryService
	Profiles  ProfileService
	Content   ContentService
	Searches  *SearchTracker
}

func NewContainer(
	profileRepo repositories.ProfileRepository,
	catalogRepo repositories.CatalogRepository,
	userRepo repositories.UserRepository,
	mail mailer.Sender,
) *Container {
	return &Container{
		Auth:      NewAuthService(userRepo, mail),
		Directory: NewDirectoryService(profileRepo, catalogRepo),
		Profiles:  NewProfileService(profileRepo),
		Content:   NewContentService(catalogRepo),
		Searches:  NewSearchTracker(),
	}
}
