package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Facu14carrizo/StuntProAR/internal/middleware"
	"github.com/Facu14carrizo/StuntProAR/internal/services"
	"github.com/Facu14carrizo/StuntProAR/internal/services/dto"
)

// Header the client uses to tag each search with its own ordering.
const searchSeqHeader = "X-Search-Seq"

type DirectoryHandler struct {
	*BaseHandler
	directory services.DirectoryService
	searches  *services.SearchTracker
}

func NewDirectoryHandler(base *BaseHandler, directory services.DirectoryService, searches *services.SearchTracker) *DirectoryHandler {
	return &DirectoryHandler{BaseHandler: base, directory: directory, searches: searches}
}

func (h *DirectoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	search := rg.Group("/search")
	search.Use(middleware.OptionalAuth())
	{
		search.POST("/profiles", h.SearchProfiles)
		search.GET("/current", h.CurrentSearch)
	}
}

// SearchProfiles godoc
// @Summary Buscar dobles de riesgo
// @Description Aplica los filtros de búsqueda y guarda el resultado como la búsqueda vigente del cliente. Si llega una respuesta de una búsqueda anterior, se descarta y se devuelve la vigente.
// @Tags search
// @Accept json
// @Produce json
// @Param request body dto.SearchCriteria true "Criterios de búsqueda"
// @Param X-Search-Seq header int false "Número de secuencia de la búsqueda"
// @Param X-Client-ID header string false "Identificador del cliente anónimo"
// @Success 200 {object} dto.SearchResult
// @Router /search/profiles [post]
func (h *DirectoryHandler) SearchProfiles(c *gin.Context) {
	var criteria dto.SearchCriteria
	if !h.BindAndValidateJSON(c, &criteria) {
		return
	}

	clientKey := h.clientKey(c)
	seq, err := strconv.ParseUint(c.GetHeader(searchSeqHeader), 10, 64)
	if err != nil {
		seq = h.searches.NextSeq(clientKey)
	}

	result := h.directory.Search(c.Request.Context(), criteria)
	current, _ := h.searches.Apply(clientKey, seq, result)
	c.JSON(http.StatusOK, current)
}

// CurrentSearch godoc
// @Summary Búsqueda vigente
// @Description Devuelve el último resultado de búsqueda guardado para este cliente
// @Tags search
// @Produce json
// @Param X-Client-ID header string false "Identificador del cliente anónimo"
// @Success 200 {object} dto.SearchResult
// @Failure 404 {object} apperrors.ErrorResponse "Sin búsquedas guardadas"
// @Router /search/current [get]
func (h *DirectoryHandler) CurrentSearch(c *gin.Context) {
	result, ok := h.searches.Current(h.clientKey(c))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No hay búsquedas guardadas"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// clientKey identifies who the stored search belongs to: the signed-in
// user, a client-supplied id for guests, or the peer address as a last
// resort.
func (h *DirectoryHandler) clientKey(c *gin.Context) string {
	if userID := middleware.UserIDFrom(c); userID != "" {
		return "user:" + userID
	}
	if clientID := c.GetHeader("X-Client-ID"); clientID != "" {
		return "client:" + clientID
	}
	return "addr:" + c.ClientIP()
}
