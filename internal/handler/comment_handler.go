package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blog-comments/internal/domain"
	"blog-comments/internal/service"
	"blog-comments/internal/validator"
)

const (
	publicationIDParam = "publicationId"
	commentIDParam     = "commentId"
)

// CommentHandler handles comment-related HTTP requests.
type CommentHandler struct {
	commentService service.CommentServiceInterface
	validator      *validator.Validator
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(commentService service.CommentServiceInterface, v *validator.Validator) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		validator:      v,
	}
}

// Register mounts the comment routes on rg.
func (h *CommentHandler) Register(rg *gin.RouterGroup) {
	comments := rg.Group("/publications/:" + publicationIDParam + "/comments")
	{
		comments.POST("", h.CreateComment)
		comments.GET("", h.ListComments)
		comments.GET("/:"+commentIDParam, h.GetComment)
		comments.PUT("/:"+commentIDParam, h.UpdateComment)
		comments.DELETE("/:"+commentIDParam, h.DeleteComment)
	}
}

// CreateComment handles POST /api/v1/publications/:publicationId/comments
func (h *CommentHandler) CreateComment(c *gin.Context) {
	publicationID, ok := pathID(c, publicationIDParam)
	if !ok {
		return
	}

	input, ok := h.bindComment(c)
	if !ok {
		return
	}

	dto, err := h.commentService.CreateComment(c.Request.Context(), publicationID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto)
}

// ListComments handles GET /api/v1/publications/:publicationId/comments
func (h *CommentHandler) ListComments(c *gin.Context) {
	publicationID, ok := pathID(c, publicationIDParam)
	if !ok {
		return
	}

	dtos, err := h.commentService.GetCommentsByPublicationID(c.Request.Context(), publicationID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dtos)
}

// GetComment handles GET /api/v1/publications/:publicationId/comments/:commentId
func (h *CommentHandler) GetComment(c *gin.Context) {
	publicationID, commentID, ok := pathIDs(c)
	if !ok {
		return
	}

	dto, err := h.commentService.FindCommentByID(c.Request.Context(), publicationID, commentID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto)
}

// UpdateComment handles PUT /api/v1/publications/:publicationId/comments/:commentId
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	publicationID, commentID, ok := pathIDs(c)
	if !ok {
		return
	}

	input, ok := h.bindComment(c)
	if !ok {
		return
	}

	dto, err := h.commentService.UpdateComment(c.Request.Context(), publicationID, commentID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto)
}

// DeleteComment handles DELETE /api/v1/publications/:publicationId/comments/:commentId
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	publicationID, commentID, ok := pathIDs(c)
	if !ok {
		return
	}

	if err := h.commentService.DeleteComment(c.Request.Context(), publicationID, commentID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}

// bindComment decodes and validates the request body.
func (h *CommentHandler) bindComment(c *gin.Context) (domain.CommentDTO, bool) {
	var input domain.CommentDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return input, false
	}

	if err := h.validator.ValidateComment(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:  "validation failed",
			Fields: validator.ConvertValidationErrors(err),
		})
		return input, false
	}

	return input, true
}

// pathID parses a positive integer path parameter, writing a 400 on failure.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: name + " must be a positive integer"})
		return 0, false
	}
	return id, true
}

func pathIDs(c *gin.Context) (publicationID, commentID int64, ok bool) {
	if publicationID, ok = pathID(c, publicationIDParam); !ok {
		return 0, 0, false
	}
	if commentID, ok = pathID(c, commentIDParam); !ok {
		return 0, 0, false
	}
	return publicationID, commentID, true
}
