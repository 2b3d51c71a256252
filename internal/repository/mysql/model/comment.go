package model

import (
	"time"

	"github.com/Guyuepp/blog-comments/domain"
)

type Comment struct {
	ID              int64     `gorm:"primaryKey;autoIncrement"`
	BlogID          int64     `gorm:"column:blog_id;not null;index:idx_comment_blog_created,priority:1"`
	UserID          int64     `gorm:"column:user_id;not null"`
	ParentID        *int64    `gorm:"column:parent_id;index"`
	Content         string    `gorm:"type:varchar(500);not null"`
	ReplyToUsername string    `gorm:"column:reply_to_username;type:varchar(64)"`
	Likes           int64     `gorm:"not null;default:0"`
	CreatedAt       time.Time `gorm:"type:datetime;index:idx_comment_blog_created,priority:2"`
	UpdatedAt       time.Time `gorm:"type:datetime"`
}

func (Comment) TableName() string {
	return "comment"
}

func NewCommentFromDomain(c *domain.Comment) *Comment {
	return &Comment{
		ID:              c.ID,
		BlogID:          c.BlogID,
		UserID:          c.AuthorID,
		ParentID:        c.ParentID,
		Content:         c.Content,
		ReplyToUsername: c.ReplyToUsername,
		Likes:           c.Likes,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func (m *Comment) ToDomain() domain.Comment {
	return domain.Comment{
		ID:              m.ID,
		BlogID:          m.BlogID,
		AuthorID:        m.UserID,
		ParentID:        m.ParentID,
		Content:         m.Content,
		ReplyToUsername: m.ReplyToUsername,
		Likes:           max(m.Likes, 0),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
