package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Guyuepp/blog-comments/domain"
	"github.com/Guyuepp/blog-comments/internal/repository/mysql/model"
)

type commentRepository struct {
	DB *gorm.DB
}

// mysql层只负责数据库操作
var _ domain.CommentDBRepository = (*commentRepository)(nil)

func NewCommentRepository(db *gorm.DB) *commentRepository {
	return &commentRepository{
		DB: db,
	}
}

func (c *commentRepository) GetByID(ctx context.Context, id int64) (domain.Comment, error) {
	var comment model.Comment
	err := c.DB.WithContext(ctx).First(&comment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Comment{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Comment{}, err
	}
	return comment.ToDomain(), nil
}

func (c *commentRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Comment, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var comments []model.Comment
	err := c.DB.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return toDomainComments(comments), nil
}

func (c *commentRepository) Store(ctx context.Context, comment *domain.Comment) error {
	m := model.NewCommentFromDomain(comment)
	if err := c.DB.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	comment.ID = m.ID
	comment.CreatedAt = m.CreatedAt
	comment.UpdatedAt = m.UpdatedAt
	return nil
}

func (c *commentRepository) UpdateContent(ctx context.Context, id int64, content string) (domain.Comment, error) {
	result := c.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id = ?", id).
		Update("content", content)
	if result.Error != nil {
		return domain.Comment{}, result.Error
	}
	// unchanged rows report 0 affected on mysql, so existence is decided by the re-read
	return c.GetByID(ctx, id)
}

func (c *commentRepository) Delete(ctx context.Context, id int64) error {
	result := c.DB.WithContext(ctx).Delete(&model.Comment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (c *commentRepository) FetchByBlog(ctx context.Context, blogID int64, rootOnly bool, offset, limit int) ([]domain.Comment, int64, error) {
	var total int64
	err := c.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Scopes(byBlog(blogID, rootOnly)).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}
	if total == 0 || int64(offset) >= total {
		return []domain.Comment{}, total, nil
	}

	var comments []model.Comment
	err = c.DB.WithContext(ctx).
		Scopes(byBlog(blogID, rootOnly)).
		Order("created_at DESC").
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&comments).Error
	if err != nil {
		return nil, 0, err
	}
	return toDomainComments(comments), total, nil
}

func (c *commentRepository) FetchByParent(ctx context.Context, parentID int64) ([]domain.Comment, error) {
	var comments []model.Comment
	err := c.DB.WithContext(ctx).
		Where("parent_id = ?", parentID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return toDomainComments(comments), nil
}

func (c *commentRepository) AdjustLikes(ctx context.Context, id int64, delta int64) (res domain.Comment, err error) {
	err = c.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m model.Comment
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&m, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		if err != nil {
			return err
		}

		m.Likes = nextLikes(m.Likes, delta)
		if err := tx.Model(&model.Comment{}).
			Where("id = ?", id).
			UpdateColumn("likes", m.Likes).Error; err != nil {
			return err
		}
		res = m.ToDomain()
		return nil
	})
	return
}

// nextLikes applies delta to a like counter that must never drop below zero.
func nextLikes(current, delta int64) int64 {
	if current < 0 {
		current = 0
	}
	return max(current+delta, 0)
}

func byBlog(blogID int64, rootOnly bool) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Where("blog_id = ?", blogID)
		if rootOnly {
			db = db.Where("parent_id IS NULL")
		}
		return db
	}
}

func toDomainComments(comments []model.Comment) []domain.Comment {
	res := make([]domain.Comment, len(comments))
	for i := range comments {
		res[i] = comments[i].ToDomain()
	}
	return res
}
