package domain

import "time"

// Comment represents a persisted comment entity attached to a publication.
type Comment struct {
	ID            int64        `gorm:"primaryKey;autoIncrement"`
	Name          string       `gorm:"column:name;not null"`
	Mail          string       `gorm:"column:mail;not null"`
	Body          string       `gorm:"column:body;type:text;not null"`
	PublicationID int64        `gorm:"column:publication_id;not null;index"`
	Publication   *Publication `gorm:"foreignKey:PublicationID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the table name for Comment.
func (Comment) TableName() string {
	return "comments"
}

// BelongsTo reports whether the comment is attached to the given publication.
func (c *Comment) BelongsTo(publicationID int64) bool {
	return c.PublicationID == publicationID
}

// CommentDTO is the boundary representation of a comment.
type CommentDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Mail string `json:"mail"`
	Body string `json:"body"`
}
