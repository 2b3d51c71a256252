package request

// Comment is the body of POST /blogs/:id/comments.
// A non-nil ParentID turns the request into a reply.
type Comment struct {
	Content         string `json:"content" binding:"required,max=500"`
	ParentID        *int64 `json:"parent_id"`
	ReplyToUsername string `json:"reply_to_username" binding:"max=64"`
}

// CommentContent is the body of PUT /comments/:id.
type CommentContent struct {
	Content string `json:"content" binding:"required,max=500"`
}
