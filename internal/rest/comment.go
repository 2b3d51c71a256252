package rest

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/blog-comments/domain"
	"github.com/Guyuepp/blog-comments/internal/repository"
	"github.com/Guyuepp/blog-comments/internal/rest/middleware"
	"github.com/Guyuepp/blog-comments/internal/rest/request"
	"github.com/Guyuepp/blog-comments/internal/rest/response"
)

// CommentHandler represent the httphandler for comment
type CommentHandler struct {
	Service domain.CommentUsecase
}

func NewCommentHandler(svc domain.CommentUsecase) *CommentHandler {
	return &CommentHandler{
		Service: svc,
	}
}

// Register mounts the public routes on r and the ones needing a caller on auth.
func (h *CommentHandler) Register(r gin.IRoutes, auth gin.IRoutes) {
	r.GET("/blogs/:id/comments", h.FetchByBlog)
	r.GET("/comments/:id", h.GetByID)
	r.GET("/comments/:id/replies", h.FetchReplies)

	auth.POST("/blogs/:id/comments", h.Store)
	auth.PUT("/comments/:id", h.Update)
	auth.DELETE("/comments/:id", h.Delete)
	auth.POST("/comments/:id/like", h.Like)
	auth.POST("/comments/:id/unlike", h.Unlike)
}

// GetByID will get a single comment by given id
func (h *CommentHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	cm, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewCommentFromDomain(&cm))
}

// FetchByBlog lists the comments of a blog, newest first.
// root_only=true restricts the page to top-level comments.
func (h *CommentHandler) FetchByBlog(c *gin.Context) {
	blogID, ok := pathID(c)
	if !ok {
		return
	}
	page, size := pageParams(c, repository.DefaultPageSize)
	rootOnly, _ := strconv.ParseBool(c.Query("root_only"))

	var (
		res domain.CommentPage
		err error
	)
	ctx := c.Request.Context()
	if rootOnly {
		res, err = h.Service.FindRootCommentsByBlogID(ctx, blogID, page, size)
	} else {
		res, err = h.Service.FindByBlogID(ctx, blogID, page, size)
	}
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewCommentPageFromDomain(&res))
}

// FetchReplies lists the direct replies of a comment, oldest first.
func (h *CommentHandler) FetchReplies(c *gin.Context) {
	parentID, ok := pathID(c)
	if !ok {
		return
	}
	page, size := pageParams(c, repository.DefaultReplyPageSize)

	res, err := h.Service.FindByParentID(c.Request.Context(), parentID, page, size)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewCommentPageFromDomain(&res))
}

// Store creates a root comment, or a reply when parent_id is present.
func (h *CommentHandler) Store(c *gin.Context) {
	blogID, ok := pathID(c)
	if !ok {
		return
	}
	var req request.Comment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}
	uid, ok := callerID(c)
	if !ok {
		return
	}

	var (
		cm  domain.Comment
		err error
	)
	ctx := c.Request.Context()
	if req.ParentID != nil {
		cm, err = h.Service.CreateReply(ctx, blogID, uid, req.Content, *req.ParentID, req.ReplyToUsername)
	} else {
		cm, err = h.Service.CreateComment(ctx, blogID, uid, req.Content)
	}
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, response.NewCommentFromDomain(&cm))
}

// Update replaces the content of a comment owned by the caller.
func (h *CommentHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req request.CommentContent
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}
	uid, ok := callerID(c)
	if !ok {
		return
	}

	cm, err := h.Service.UpdateComment(c.Request.Context(), id, uid, req.Content)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewCommentFromDomain(&cm))
}

// Delete will delete the comment by given param
func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	uid, ok := callerID(c)
	if !ok {
		return
	}

	if err := h.Service.DeleteComment(c.Request.Context(), id, uid); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CommentHandler) Like(c *gin.Context) {
	h.adjustLikes(c, h.Service.LikeComment)
}

func (h *CommentHandler) Unlike(c *gin.Context) {
	h.adjustLikes(c, h.Service.UnlikeComment)
}

func (h *CommentHandler) adjustLikes(c *gin.Context, fn func(ctx context.Context, id int64) error) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if _, ok := callerID(c); !ok {
		return
	}
	if err := fn(c.Request.Context(), id); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// pathID parses the :id parameter, answering 404 itself when it is not a number.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return 0, false
	}
	return id, true
}

// callerID reads the user id put in the context by the auth middleware.
func callerID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(middleware.UserIDKey)
	uid, ok := v.(int64)
	if !exists || !ok {
		c.JSON(http.StatusUnauthorized, ResponseError{Message: domain.ErrUnauthorized.Error()})
		return 0, false
	}
	return uid, true
}

// pageParams 解析分页参数, 无法解析的值交给 PageVerify 归一
func pageParams(c *gin.Context, defaultSize int) (int, int) {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		page = 0
	}
	size, err := strconv.Atoi(c.Query("size"))
	if err != nil {
		size = defaultSize
	}
	repository.PageVerify(&page, &size, defaultSize)
	return page, size
}
