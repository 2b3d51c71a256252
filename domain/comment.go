package domain

import (
	"context"
	"time"
)

// MaxCommentLength is the longest content a comment may carry.
const MaxCommentLength = 500

// Comment is a node of a blog's comment tree.
// A comment without ParentID is a root comment of its blog.
type Comment struct {
	ID              int64     `json:"id"`
	BlogID          int64     `json:"blog_id"`
	AuthorID        int64     `json:"author_id"`
	ParentID        *int64    `json:"parent_id,omitempty"`
	Content         string    `json:"content"`
	ReplyToUsername string    `json:"reply_to_username,omitempty"`
	Likes           int64     `json:"likes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// Author 评论作者信息
	Author *UserSummary `json:"author,omitempty"`
	// ParentAuthor 被回复评论的作者信息
	ParentAuthor *UserSummary `json:"parent_author,omitempty"`
}

// IsRoot reports whether the comment hangs directly off its blog.
func (c *Comment) IsRoot() bool {
	return c.ParentID == nil
}

// CommentPage is one offset page of comments. Page is zero-based.
type CommentPage struct {
	Items    []Comment `json:"items"`
	Page     int       `json:"page"`
	PageSize int       `json:"page_size"`
	Total    int64     `json:"total"`
}

// TotalPages returns the number of pages needed to hold Total items.
func (p CommentPage) TotalPages() int64 {
	if p.PageSize <= 0 {
		return 0
	}
	return (p.Total + int64(p.PageSize) - 1) / int64(p.PageSize)
}

// CommentDBRepository 数据库存取接口
type CommentDBRepository interface {
	// GetByID returns ErrNotFound if the comment doesn't exist.
	GetByID(ctx context.Context, id int64) (Comment, error)
	GetByIDs(ctx context.Context, ids []int64) ([]Comment, error)

	// Store backfills ID, CreatedAt and UpdatedAt.
	Store(ctx context.Context, c *Comment) error

	// UpdateContent changes content and updated_at and returns the fresh row.
	UpdateContent(ctx context.Context, id int64, content string) (Comment, error)

	// Delete removes only the given row, replies are left untouched.
	Delete(ctx context.Context, id int64) error

	// FetchByBlog returns the comments of a blog newest first, together with
	// the total number of matches.
	FetchByBlog(ctx context.Context, blogID int64, rootOnly bool, offset, limit int) ([]Comment, int64, error)

	// FetchByParent returns every direct child of parentID, oldest first.
	FetchByParent(ctx context.Context, parentID int64) ([]Comment, error)

	// AdjustLikes adds delta to the like counter under a row lock, clamping at 0.
	AdjustLikes(ctx context.Context, id int64, delta int64) (Comment, error)
}

// CommentCache caches the first page of a blog's root comments.
// Every invalidation bumps the blog's version; a page loaded under an older
// version is never written back.
type CommentCache interface {
	// GetRootPage returns ErrCacheMiss when nothing is cached. The bool reports
	// whether the entry is logically expired and should be rebuilt.
	GetRootPage(ctx context.Context, blogID int64, pageSize int) (CommentPage, bool, error)

	// RootPageVersion must be read before loading the page from the database.
	RootPageVersion(ctx context.Context, blogID int64) (int64, error)

	// SetRootPage stores page only if the blog is still at version and
	// reports whether it did.
	SetRootPage(ctx context.Context, blogID int64, version int64, page CommentPage, ttl time.Duration) (bool, error)

	InvalidateBlog(ctx context.Context, blogID int64) error
}

// CommentRepository is the read/write path used by the usecase layer.
// Every comment it returns has Author and ParentAuthor resolved.
type CommentRepository interface {
	GetByID(ctx context.Context, id int64) (Comment, error)
	Store(ctx context.Context, c *Comment) error
	UpdateContent(ctx context.Context, id int64, content string) (Comment, error)
	Delete(ctx context.Context, c *Comment) error
	FetchByBlog(ctx context.Context, blogID int64, rootOnly bool, page, pageSize int) (CommentPage, error)
	FetchByParent(ctx context.Context, parentID int64, page, pageSize int) (CommentPage, error)
	AdjustLikes(ctx context.Context, id int64, delta int64) (Comment, error)
}

// CommentUsecase 业务逻辑接口
type CommentUsecase interface {
	GetByID(ctx context.Context, id int64) (Comment, error)
	CreateComment(ctx context.Context, blogID, authorID int64, content string) (Comment, error)
	CreateReply(ctx context.Context, blogID, authorID int64, content string, parentID int64, replyToUsername string) (Comment, error)
	UpdateComment(ctx context.Context, id, callerID int64, content string) (Comment, error)
	DeleteComment(ctx context.Context, id, callerID int64) error

	FindByBlogID(ctx context.Context, blogID int64, page, pageSize int) (CommentPage, error)
	FindRootCommentsByBlogID(ctx context.Context, blogID int64, page, pageSize int) (CommentPage, error)
	FindByParentID(ctx context.Context, parentID int64, page, pageSize int) (CommentPage, error)

	LikeComment(ctx context.Context, id int64) error
	UnlikeComment(ctx context.Context, id int64) error
}
