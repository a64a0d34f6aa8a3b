package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Facu14carrizo/StuntProAR/internal/middleware"
	"github.com/Facu14carrizo/StuntProAR/internal/services"
)

type ProfileHandler struct {
	*BaseHandler
	directory services.DirectoryService
	profiles  services.ProfileService
}

func NewProfileHandler(base *BaseHandler, directory services.DirectoryService, profiles services.ProfileService) *ProfileHandler {
	return &ProfileHandler{BaseHandler: base, directory: directory, profiles: profiles}
}

func (h *ProfileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/profiles")
	group.Use(middleware.OptionalAuth())
	{
		group.GET("", h.ListProfiles)
		group.GET("/:id", h.GetProfile)
	}
}

// ListProfiles godoc
// @Summary Listar todos los dobles de riesgo
// @Tags profiles
// @Produce json
// @Success 200 {array} dto.ProfileSummary
// @Router /profiles [get]
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	c.JSON(http.StatusOK, h.directory.ListProfiles(c.Request.Context()))
}

// GetProfile godoc
// @Summary Detalle de un doble de riesgo
// @Description Perfil completo con especialidades, habilidades, proyectos, testimonios y galería. La galería y el contacto dependen del nivel de acceso del visitante.
// @Tags profiles
// @Produce json
// @Param id path string true "ID del perfil"
// @Success 200 {object} dto.ProfileDetail
// @Failure 404 {object} apperrors.ErrorResponse "Perfil no encontrado"
// @Router /profiles/{id} [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	detail, err := h.profiles.GetProfileDetail(c.Request.Context(), c.Param("id"), middleware.TierFrom(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}
