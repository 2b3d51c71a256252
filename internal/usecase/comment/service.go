package comment

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/blog-comments/domain"
	"github.com/Guyuepp/blog-comments/internal/repository"
)

type contentInput struct {
	Content string `validate:"required,max=500"`
}

type service struct {
	commentRepo domain.CommentRepository
	blogRepo    domain.BlogRepository
	userRepo    domain.UserRepository
	validate    *validator.Validate
}

var _ domain.CommentUsecase = (*service)(nil)

func NewService(commentRepo domain.CommentRepository, blogRepo domain.BlogRepository, userRepo domain.UserRepository) *service {
	return &service{
		commentRepo: commentRepo,
		blogRepo:    blogRepo,
		userRepo:    userRepo,
		validate:    validator.New(),
	}
}

func (s *service) GetByID(ctx context.Context, id int64) (domain.Comment, error) {
	return s.commentRepo.GetByID(ctx, id)
}

func (s *service) CreateComment(ctx context.Context, blogID, authorID int64, content string) (domain.Comment, error) {
	if err := s.checkContent(content); err != nil {
		return domain.Comment{}, err
	}
	if err := s.mustExist(ctx, blogID, authorID); err != nil {
		return domain.Comment{}, err
	}

	c := domain.Comment{
		BlogID:   blogID,
		AuthorID: authorID,
		Content:  content,
	}
	if err := s.commentRepo.Store(ctx, &c); err != nil {
		return domain.Comment{}, err
	}
	return c, nil
}

func (s *service) CreateReply(ctx context.Context, blogID, authorID int64, content string, parentID int64, replyToUsername string) (domain.Comment, error) {
	if err := s.checkContent(content); err != nil {
		return domain.Comment{}, err
	}
	if err := s.mustExist(ctx, blogID, authorID); err != nil {
		return domain.Comment{}, err
	}

	parent, err := s.commentRepo.GetByID(ctx, parentID)
	if err != nil {
		return domain.Comment{}, err
	}
	if parent.BlogID != blogID {
		logrus.Warnf("reply to comment %d of blog %d rejected: target blog is %d", parentID, parent.BlogID, blogID)
		return domain.Comment{}, domain.ErrParentBlogMismatch
	}

	c := domain.Comment{
		BlogID:          blogID,
		AuthorID:        authorID,
		ParentID:        &parent.ID,
		Content:         content,
		ReplyToUsername: replyToUsername,
	}
	if err := s.commentRepo.Store(ctx, &c); err != nil {
		return domain.Comment{}, err
	}
	return c, nil
}

func (s *service) UpdateComment(ctx context.Context, id, callerID int64, content string) (domain.Comment, error) {
	if err := s.checkContent(content); err != nil {
		return domain.Comment{}, err
	}
	c, err := s.owned(ctx, id, callerID)
	if err != nil {
		return domain.Comment{}, err
	}
	return s.commentRepo.UpdateContent(ctx, c.ID, content)
}

// DeleteComment removes only the comment itself. Its replies stay in place and
// keep pointing at the removed parent.
func (s *service) DeleteComment(ctx context.Context, id, callerID int64) error {
	c, err := s.owned(ctx, id, callerID)
	if err != nil {
		return err
	}
	return s.commentRepo.Delete(ctx, &c)
}

func (s *service) FindByBlogID(ctx context.Context, blogID int64, page, pageSize int) (domain.CommentPage, error) {
	return s.findByBlog(ctx, blogID, false, page, pageSize)
}

func (s *service) FindRootCommentsByBlogID(ctx context.Context, blogID int64, page, pageSize int) (domain.CommentPage, error) {
	return s.findByBlog(ctx, blogID, true, page, pageSize)
}

func (s *service) FindByParentID(ctx context.Context, parentID int64, page, pageSize int) (domain.CommentPage, error) {
	// 先确认父评论存在
	if _, err := s.commentRepo.GetByID(ctx, parentID); err != nil {
		return domain.CommentPage{}, err
	}
	repository.PageVerify(&page, &pageSize, repository.DefaultReplyPageSize)
	return s.commentRepo.FetchByParent(ctx, parentID, page, pageSize)
}

func (s *service) LikeComment(ctx context.Context, id int64) error {
	_, err := s.commentRepo.AdjustLikes(ctx, id, 1)
	return err
}

func (s *service) UnlikeComment(ctx context.Context, id int64) error {
	_, err := s.commentRepo.AdjustLikes(ctx, id, -1)
	return err
}

func (s *service) findByBlog(ctx context.Context, blogID int64, rootOnly bool, page, pageSize int) (domain.CommentPage, error) {
	if _, err := s.blogRepo.GetByID(ctx, blogID); err != nil {
		return domain.CommentPage{}, err
	}
	repository.PageVerify(&page, &pageSize, repository.DefaultPageSize)
	return s.commentRepo.FetchByBlog(ctx, blogID, rootOnly, page, pageSize)
}

func (s *service) checkContent(content string) error {
	if err := s.validate.Struct(contentInput{Content: strings.TrimSpace(content)}); err != nil {
		return domain.ErrInvalidContent
	}
	return nil
}

func (s *service) mustExist(ctx context.Context, blogID, authorID int64) error {
	if _, err := s.blogRepo.GetByID(ctx, blogID); err != nil {
		return err
	}
	if _, err := s.userRepo.GetByID(ctx, authorID); err != nil {
		return err
	}
	return nil
}

func (s *service) owned(ctx context.Context, id, callerID int64) (domain.Comment, error) {
	c, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return domain.Comment{}, err
	}
	if c.AuthorID != callerID {
		return domain.Comment{}, domain.ErrForbidden
	}
	return c, nil
}
