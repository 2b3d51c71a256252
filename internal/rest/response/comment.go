package response

import "github.com/Guyuepp/blog-comments/domain"

type Comment struct {
	ID              int64  `json:"id"`
	BlogID          int64  `json:"blog_id"`
	AuthorID        int64  `json:"author_id"`
	ParentID        *int64 `json:"parent_id"`
	Content         string `json:"content"`
	ReplyToUsername string `json:"reply_to_username,omitempty"`
	Likes           int64  `json:"likes"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`

	// Author 评论作者信息
	Author *User `json:"author,omitempty"`
	// ParentAuthor 被回复评论的作者, 仅回复有
	ParentAuthor *User `json:"parent_author,omitempty"`
}

// NewCommentFromDomain: Domain -> Response
func NewCommentFromDomain(c *domain.Comment) Comment {
	return Comment{
		ID:              c.ID,
		BlogID:          c.BlogID,
		AuthorID:        c.AuthorID,
		ParentID:        c.ParentID,
		Content:         c.Content,
		ReplyToUsername: c.ReplyToUsername,
		Likes:           c.Likes,
		CreatedAt:       c.CreatedAt.Format(DateTimeFormat),
		UpdatedAt:       c.UpdatedAt.Format(DateTimeFormat),
		Author:          NewUserFromDomain(c.Author),
		ParentAuthor:    NewUserFromDomain(c.ParentAuthor),
	}
}

type CommentPage struct {
	Items      []Comment `json:"items"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
	Total      int64     `json:"total"`
	TotalPages int64     `json:"total_pages"`
}

func NewCommentPageFromDomain(p *domain.CommentPage) CommentPage {
	items := make([]Comment, len(p.Items))
	for i := range p.Items {
		items[i] = NewCommentFromDomain(&p.Items[i])
	}
	return CommentPage{
		Items:      items,
		Page:       p.Page,
		PageSize:   p.PageSize,
		Total:      p.Total,
		TotalPages: p.TotalPages(),
	}
}
