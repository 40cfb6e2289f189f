package domain

import "time"

// Publication represents a blog post that owns comments.
// Publications are managed elsewhere; this service only reads them.
type Publication struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string    `json:"title" gorm:"column:title;not null"`
	Description string    `json:"description" gorm:"column:description;not null"`
	Content     string    `json:"content" gorm:"column:content;type:text;not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for Publication.
func (Publication) TableName() string {
	return "publications"
}
