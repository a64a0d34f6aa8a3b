package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Facu14carrizo/StuntProAR/internal/config"
	"github.com/Facu14carrizo/StuntProAR/internal/middleware"
	"github.com/Facu14carrizo/StuntProAR/internal/services"
)

type ContentHandler struct {
	*BaseHandler
	directory services.DirectoryService
	content   services.ContentService
}

func NewContentHandler(base *BaseHandler, directory services.DirectoryService, content services.ContentService) *ContentHandler {
	return &ContentHandler{BaseHandler: base, directory: directory, content: content}
}

func (h *ContentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/home", middleware.OptionalAuth(), h.Home)
	rg.GET("/news", h.News)
	rg.GET("/specialties", h.Specialties)
	rg.GET("/videos", middleware.OptionalAuth(), h.Videos)
}

// Home godoc
// @Summary Contenido de la página principal
// @Description Noticias, directorio y catálogo de especialidades en una sola llamada
// @Tags content
// @Produce json
// @Success 200 {object} dto.HomeResponse
// @Router /home [get]
func (h *ContentHandler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, h.directory.Home(c.Request.Context()))
}

// News godoc
// @Summary Últimas noticias
// @Tags content
// @Produce json
// @Param limit query int false "Cantidad máxima de noticias"
// @Success 200 {array} models.News
// @Router /news [get]
func (h *ContentHandler) News(c *gin.Context) {
	limit := config.GetConfig().News.HomeLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	c.JSON(http.StatusOK, h.content.LatestNews(c.Request.Context(), limit))
}

// Specialties godoc
// @Summary Catálogo de especialidades
// @Tags content
// @Produce json
// @Success 200 {array} models.Specialty
// @Router /specialties [get]
func (h *ContentHandler) Specialties(c *gin.Context) {
	c.JSON(http.StatusOK, h.content.ListSpecialties(c.Request.Context()))
}

// Videos godoc
// @Summary Videos educativos
// @Description Los videos premium se reservan para usuarios registrados; hidden_count indica cuántos quedaron ocultos
// @Tags content
// @Produce json
// @Success 200 {object} dto.VideoListing
// @Router /videos [get]
func (h *ContentHandler) Videos(c *gin.Context) {
	c.JSON(http.StatusOK, h.content.ListVideos(c.Request.Context(), middleware.TierFrom(c)))
}
