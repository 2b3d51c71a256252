package domain

import (
	"context"
	"time"
)

// Blog is the post a comment thread hangs off. Only the fields the comment
// subsystem reads are mapped.
type Blog struct {
	ID        int64
	Title     string
	AuthorID  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BlogRepository looks up blogs owned by the blog module.
type BlogRepository interface {
	// GetByID retrieves a blog by its ID.
	// Returns ErrNotFound if the blog doesn't exist.
	GetByID(ctx context.Context, id int64) (Blog, error)
}
