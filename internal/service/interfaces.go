package service

import (
	"context"

	"blog-comments/internal/domain"
)

// CommentServiceInterface defines the interface for comment operations.
// Used for dependency injection and mocking in tests.
type CommentServiceInterface interface {
	// CreateComment attaches a new comment to a publication.
	CreateComment(ctx context.Context, publicationID int64, input domain.CommentDTO) (*domain.CommentDTO, error)
	// GetCommentsByPublicationID lists the comments of a publication.
	GetCommentsByPublicationID(ctx context.Context, publicationID int64) ([]domain.CommentDTO, error)
	// FindCommentByID returns a comment of a publication.
	FindCommentByID(ctx context.Context, publicationID, commentID int64) (*domain.CommentDTO, error)
	// UpdateComment overwrites name, mail and body of a comment.
	UpdateComment(ctx context.Context, publicationID, commentID int64, input domain.CommentDTO) (*domain.CommentDTO, error)
	// DeleteComment removes a comment of a publication.
	DeleteComment(ctx context.Context, publicationID, commentID int64) error
}
