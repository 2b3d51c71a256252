package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Guyuepp/blog-comments/domain"
	"github.com/Guyuepp/blog-comments/internal/repository/mysql/model"
)

type blogRepository struct {
	DB *gorm.DB
}

var _ domain.BlogRepository = (*blogRepository)(nil)

func NewBlogRepository(db *gorm.DB) *blogRepository {
	return &blogRepository{db}
}

func (m *blogRepository) GetByID(ctx context.Context, id int64) (domain.Blog, error) {
	var blog model.Blog
	err := m.DB.WithContext(ctx).
		Select("id, title, user_id, created_at, updated_at").
		First(&blog, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Blog{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Blog{}, err
	}
	return blog.ToDomain(), nil
}
