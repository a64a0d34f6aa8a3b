package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Facu14carrizo/StuntProAR/internal/validator"
	"github.com/Facu14carrizo/StuntProAR/pkg/apperrors"
)

// BaseHandler carries what every handler needs. Repositories are wired
// into services at startup, so handlers never see the database.
type BaseHandler struct {
	Validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{Validator: v}
}

// BindAndValidateJSON binds the body and runs struct validation. On
// failure it writes the error response and returns false. Binding
// failures are re-validated through our wrapper so the client gets
// field-level messages with wire names.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		if vErr := h.revalidate(obj); vErr != nil {
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
			return false
		}
		apperrors.HandleError(c, apperrors.NewBadRequestError("El cuerpo de la solicitud no es válido"))
		return false
	}
	return true
}

// BindAndValidateQuery binds query parameters the same way.
func (h *BaseHandler) BindAndValidateQuery(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		if vErr := h.revalidate(obj); vErr != nil {
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
			return false
		}
		apperrors.HandleError(c, apperrors.NewBadRequestError("Los parámetros de búsqueda no son válidos"))
		return false
	}
	return true
}

func (h *BaseHandler) revalidate(obj interface{}) *validator.ValidationError {
	var vErr *validator.ValidationError
	if errors.As(h.Validator.Validate(obj), &vErr) {
		return vErr
	}
	return nil
}

// HandleServiceError maps a service error to the standard wire format.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	apperrors.HandleError(c, err)
}
