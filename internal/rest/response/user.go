package response

import "github.com/Guyuepp/blog-comments/domain"

// DateTimeFormat 接口统一的时间格式
const DateTimeFormat = "2006-01-02 15:04:05"

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar,omitempty"`
}

func NewUserFromDomain(u *domain.UserSummary) *User {
	if u == nil {
		return nil
	}
	return &User{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		Avatar:   u.Avatar,
	}
}
