package repository

import (
	"context"

	"blog-comments/internal/domain"
)

// PublicationRepository defines read access to publications.
// FindByID returns (nil, nil) when no publication has the given id.
type PublicationRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Publication, error)
}

// CommentRepository defines methods for comment data access.
// FindByID returns (nil, nil) when no comment has the given id.
type CommentRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Comment, error)
	FindByPublicationID(ctx context.Context, publicationID int64) ([]domain.Comment, error)
	Save(ctx context.Context, comment *domain.Comment) error
	Delete(ctx context.Context, comment *domain.Comment) error
}

var (
	_ PublicationRepository = (*GormPublicationRepository)(nil)
	_ CommentRepository     = (*GormCommentRepository)(nil)
)
