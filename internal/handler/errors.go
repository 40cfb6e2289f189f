package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-comments/internal/domain"
	"blog-comments/internal/validator"
)

// ErrorResponse is the body returned for failed requests.
type ErrorResponse struct {
	Error  string                 `json:"error"`
	Fields []validator.FieldError `json:"fields,omitempty"`
}

// respondError maps service errors to HTTP responses. Errors outside the
// domain are attached to the gin context for the access log and reported
// to the client without detail.
func respondError(c *gin.Context, err error) {
	var nf *domain.NotFoundError
	var br *domain.BadRequestError

	switch {
	case errors.As(err, &nf):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: nf.Error()})
	case errors.As(err, &br):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: br.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}
