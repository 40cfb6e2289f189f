package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"blog-comments/internal/domain"
	"blog-comments/internal/logger"
	"blog-comments/internal/mapper"
	"blog-comments/internal/metrics"
	"blog-comments/internal/repository"
)

// Operation names used for metrics and logs.
const (
	OpCreate = "create"
	OpList   = "list"
	OpFind   = "find"
	OpUpdate = "update"
	OpDelete = "delete"
)

// CommentService manages comments attached to publications.
type CommentService struct {
	publicationRepo repository.PublicationRepository
	commentRepo     repository.CommentRepository
}

// NewCommentService creates a new CommentService.
func NewCommentService(publicationRepo repository.PublicationRepository, commentRepo repository.CommentRepository) *CommentService {
	return &CommentService{
		publicationRepo: publicationRepo,
		commentRepo:     commentRepo,
	}
}

// CreateComment stores input as a new comment of the publication.
// Any id carried by input is ignored.
func (s *CommentService) CreateComment(ctx context.Context, publicationID int64, input domain.CommentDTO) (dto *domain.CommentDTO, err error) {
	defer s.observe(ctx, OpCreate, publicationID, 0)(&err)

	comment := mapper.ToEntity(input)
	comment.ID = 0

	publication, err := s.publication(ctx, publicationID)
	if err != nil {
		return nil, err
	}

	comment.Publication = publication
	comment.PublicationID = publication.ID

	if err := s.commentRepo.Save(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	out := mapper.ToDTO(comment)
	return &out, nil
}

// GetCommentsByPublicationID lists the comments of a publication in store order.
// The publication must exist.
func (s *CommentService) GetCommentsByPublicationID(ctx context.Context, publicationID int64) (dtos []domain.CommentDTO, err error) {
	defer s.observe(ctx, OpList, publicationID, 0)(&err)

	if _, err := s.publication(ctx, publicationID); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.FindByPublicationID(ctx, publicationID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	return mapper.ToDTOs(comments), nil
}

// FindCommentByID returns the comment if it belongs to the publication.
func (s *CommentService) FindCommentByID(ctx context.Context, publicationID, commentID int64) (dto *domain.CommentDTO, err error) {
	defer s.observe(ctx, OpFind, publicationID, commentID)(&err)

	comment, err := s.ownedComment(ctx, publicationID, commentID)
	if err != nil {
		return nil, err
	}

	out := mapper.ToDTO(comment)
	return &out, nil
}

// UpdateComment overwrites name, mail and body of a comment of the publication.
func (s *CommentService) UpdateComment(ctx context.Context, publicationID, commentID int64, input domain.CommentDTO) (dto *domain.CommentDTO, err error) {
	defer s.observe(ctx, OpUpdate, publicationID, commentID)(&err)

	comment, err := s.ownedComment(ctx, publicationID, commentID)
	if err != nil {
		return nil, err
	}

	mapper.ApplyUpdate(comment, input)

	if err := s.commentRepo.Save(ctx, comment); err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}

	out := mapper.ToDTO(comment)
	return &out, nil
}

// DeleteComment permanently removes a comment of the publication.
func (s *CommentService) DeleteComment(ctx context.Context, publicationID, commentID int64) (err error) {
	defer s.observe(ctx, OpDelete, publicationID, commentID)(&err)

	comment, err := s.ownedComment(ctx, publicationID, commentID)
	if err != nil {
		return err
	}

	if err := s.commentRepo.Delete(ctx, comment); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}

	return nil
}

// publication resolves a publication or returns a NotFoundError.
func (s *CommentService) publication(ctx context.Context, id int64) (*domain.Publication, error) {
	p, err := s.publicationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find publication: %w", err)
	}
	if p == nil {
		return nil, domain.NewNotFoundError(domain.ResourcePublication, id)
	}
	return p, nil
}

// ownedComment resolves the publication, then the comment, and checks that
// the comment is attached to that publication.
func (s *CommentService) ownedComment(ctx context.Context, publicationID, commentID int64) (*domain.Comment, error) {
	publication, err := s.publication(ctx, publicationID)
	if err != nil {
		return nil, err
	}

	comment, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		return nil, fmt.Errorf("find comment: %w", err)
	}
	if comment == nil {
		return nil, domain.NewNotFoundError(domain.ResourceComment, commentID)
	}

	if !comment.BelongsTo(publication.ID) {
		return nil, domain.ErrCommentNotInPublication
	}

	return comment, nil
}

// observe starts timing an operation. The returned func records the outcome
// of *errp and logs unexpected failures with the request id of ctx.
func (s *CommentService) observe(ctx context.Context, op string, publicationID, commentID int64) func(errp *error) {
	timer := metrics.NewTimer()
	return func(errp *error) {
		result := classify(*errp)
		metrics.ObserveCommentOperation(op, result, timer)

		if result != metrics.ResultError {
			return
		}
		attrs := []any{
			slog.String("operation", op),
			slog.Int64("publication_id", publicationID),
			slog.String("error", (*errp).Error()),
		}
		if commentID != 0 {
			attrs = append(attrs, slog.Int64("comment_id", commentID))
		}
		logger.FromContext(ctx).ErrorContext(ctx, "Comment operation failed", attrs...)
	}
}

func classify(err error) string {
	var nf *domain.NotFoundError
	var br *domain.BadRequestError
	switch {
	case err == nil:
		return metrics.ResultSuccess
	case errors.As(err, &nf):
		return metrics.ResultNotFound
	case errors.As(err, &br):
		return metrics.ResultBadRequest
	default:
		return metrics.ResultError
	}
}

var _ CommentServiceInterface = (*CommentService)(nil)
