// Package mapper converts between persisted comments and their boundary form.
package mapper

import "blog-comments/internal/domain"

// ToEntity converts a CommentDTO into a Comment record.
// The publication reference is left unset; callers attach it.
func ToEntity(dto domain.CommentDTO) *domain.Comment {
	return &domain.Comment{
		ID:   dto.ID,
		Name: dto.Name,
		Mail: dto.Mail,
		Body: dto.Body,
	}
}

// ToDTO converts a Comment record into its boundary form.
func ToDTO(c *domain.Comment) domain.CommentDTO {
	return domain.CommentDTO{
		ID:   c.ID,
		Name: c.Name,
		Mail: c.Mail,
		Body: c.Body,
	}
}

// ToDTOs converts comments in order. The result is never nil.
func ToDTOs(comments []domain.Comment) []domain.CommentDTO {
	dtos := make([]domain.CommentDTO, 0, len(comments))
	for i := range comments {
		dtos = append(dtos, ToDTO(&comments[i]))
	}
	return dtos
}

// ApplyUpdate overwrites the mutable fields of c from dto.
// Identity and publication are left untouched.
func ApplyUpdate(c *domain.Comment, dto domain.CommentDTO) {
	c.Name = dto.Name
	c.Mail = dto.Mail
	c.Body = dto.Body
}
