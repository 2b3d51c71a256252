package model

import (
	"time"

	"github.com/Guyuepp/blog-comments/domain"
)

// Blog maps the columns of the blog table the comment module reads.
type Blog struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Title     string    `gorm:"type:varchar(255);not null"`
	UserID    int64     `gorm:"column:user_id;not null"`
	CreatedAt time.Time `gorm:"type:datetime"`
	UpdatedAt time.Time `gorm:"type:datetime"`
}

func (Blog) TableName() string {
	return "blog"
}

func (m *Blog) ToDomain() domain.Blog {
	return domain.Blog{
		ID:        m.ID,
		Title:     m.Title,
		AuthorID:  m.UserID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
