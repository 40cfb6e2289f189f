package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"blog-comments/internal/domain"
)

// GormCommentRepository implements CommentRepository using GORM.
type GormCommentRepository struct {
	db *gorm.DB
}

// NewGormCommentRepository creates a new GormCommentRepository.
func NewGormCommentRepository(db *gorm.DB) *GormCommentRepository {
	return &GormCommentRepository{db: db}
}

// FindByID loads a comment by primary key. The Publication association is
// not preloaded; PublicationID is always populated.
func (r *GormCommentRepository) FindByID(ctx context.Context, id int64) (*domain.Comment, error) {
	var c domain.Comment
	err := r.db.WithContext(ctx).First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query comment %d: %w", id, err)
	}
	return &c, nil
}

// FindByPublicationID returns every comment attached to a publication in the
// order the database yields them.
func (r *GormCommentRepository) FindByPublicationID(ctx context.Context, publicationID int64) ([]domain.Comment, error) {
	comments := make([]domain.Comment, 0)
	err := r.db.WithContext(ctx).
		Where("publication_id = ?", publicationID).
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("query comments for publication %d: %w", publicationID, err)
	}
	return comments, nil
}

// Save inserts the comment when it has no id yet. Otherwise it writes
// name, mail and body back to the existing row and returns a NotFoundError
// when that row no longer exists. Associations are never written.
func (r *GormCommentRepository) Save(ctx context.Context, comment *domain.Comment) error {
	if comment.Publication != nil && comment.PublicationID == 0 {
		comment.PublicationID = comment.Publication.ID
	}

	if comment.ID == 0 {
		if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(comment).Error; err != nil {
			return fmt.Errorf("insert comment: %w", err)
		}
		return nil
	}

	result := r.db.WithContext(ctx).
		Model(comment).
		Select("name", "mail", "body", "updated_at").
		Updates(comment)
	if result.Error != nil {
		return fmt.Errorf("update comment %d: %w", comment.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError(domain.ResourceComment, comment.ID)
	}
	return nil
}

// Delete permanently removes the comment.
func (r *GormCommentRepository) Delete(ctx context.Context, comment *domain.Comment) error {
	result := r.db.WithContext(ctx).Delete(&domain.Comment{}, comment.ID)
	if result.Error != nil {
		return fmt.Errorf("delete comment %d: %w", comment.ID, result.Error)
	}
	return nil
}
