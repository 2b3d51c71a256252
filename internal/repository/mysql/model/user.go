package model

import (
	"time"

	"github.com/Guyuepp/blog-comments/domain"
)

type User struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(64)"`
	Username  string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	Avatar    string    `gorm:"type:varchar(255)"`
	Token     string    `gorm:"type:varchar(255);index"`
	CreatedAt time.Time `gorm:"type:datetime"`
	UpdatedAt time.Time `gorm:"type:datetime"`
}

func (User) TableName() string {
	return "user"
}

func (m *User) ToDomain() domain.User {
	return domain.User{
		ID:        m.ID,
		Name:      m.Name,
		Username:  m.Username,
		Avatar:    m.Avatar,
		Token:     m.Token,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
