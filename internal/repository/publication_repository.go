package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"blog-comments/internal/domain"
)

// GormPublicationRepository implements PublicationRepository using GORM.
type GormPublicationRepository struct {
	db *gorm.DB
}

// NewGormPublicationRepository creates a new GormPublicationRepository.
func NewGormPublicationRepository(db *gorm.DB) *GormPublicationRepository {
	return &GormPublicationRepository{db: db}
}

// FindByID loads a publication by primary key.
func (r *GormPublicationRepository) FindByID(ctx context.Context, id int64) (*domain.Publication, error) {
	var p domain.Publication
	err := r.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query publication %d: %w", id, err)
	}
	return &p, nil
}
