// Package testsupport provides in-memory repository fakes for tests.
package testsupport

import (
	"context"
	"sort"

	"blog-comments/internal/domain"
)

// PublicationStoreFake is an in-memory PublicationRepository.
type PublicationStoreFake map[int64]*domain.Publication

// Add stores a publication with the given id.
func (f PublicationStoreFake) Add(id int64, title string) *domain.Publication {
	p := &domain.Publication{ID: id, Title: title}
	f[id] = p
	return p
}

func (f PublicationStoreFake) FindByID(_ context.Context, id int64) (*domain.Publication, error) {
	p, found := f[id]
	if !found {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

// CommentStoreFake is an in-memory CommentRepository that assigns
// sequential ids on insert.
type CommentStoreFake struct {
	Comments map[int64]domain.Comment
	nextID   int64
}

// NewCommentStoreFake creates an empty CommentStoreFake.
func NewCommentStoreFake() *CommentStoreFake {
	return &CommentStoreFake{Comments: make(map[int64]domain.Comment)}
}

func (f *CommentStoreFake) FindByID(_ context.Context, id int64) (*domain.Comment, error) {
	c, found := f.Comments[id]
	if !found {
		return nil, nil
	}
	return &c, nil
}

// FindByPublicationID returns matching comments ordered by id.
func (f *CommentStoreFake) FindByPublicationID(_ context.Context, publicationID int64) ([]domain.Comment, error) {
	comments := make([]domain.Comment, 0)
	for _, c := range f.Comments {
		if c.PublicationID == publicationID {
			comments = append(comments, c)
		}
	}
	sort.Slice(comments, func(i, j int) bool { return comments[i].ID < comments[j].ID })
	return comments, nil
}

// Save mirrors GormCommentRepository.Save: inserts get the next id, updates
// only touch name, mail and body of an existing comment.
func (f *CommentStoreFake) Save(_ context.Context, c *domain.Comment) error {
	if c.ID != 0 {
		existing, found := f.Comments[c.ID]
		if !found {
			return domain.NewNotFoundError(domain.ResourceComment, c.ID)
		}
		existing.Name, existing.Mail, existing.Body = c.Name, c.Mail, c.Body
		f.Comments[c.ID] = existing
		return nil
	}

	f.nextID++
	c.ID = f.nextID
	stored := *c
	stored.Publication = nil
	f.Comments[c.ID] = stored
	return nil
}

func (f *CommentStoreFake) Delete(_ context.Context, c *domain.Comment) error {
	delete(f.Comments, c.ID)
	return nil
}
