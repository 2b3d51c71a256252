package mysql

import (
	"context"
	"errors"

	"github.com/Guyuepp/blog-comments/domain"
	"github.com/Guyuepp/blog-comments/internal/repository/mysql/model"
	"gorm.io/gorm"
)

type userRepository struct {
	DB *gorm.DB
}

var _ domain.UserRepository = (*userRepository)(nil)

// NewUserRepository will create an implementation of domain.UserRepository
func NewUserRepository(db *gorm.DB) *userRepository {
	return &userRepository{
		DB: db,
	}
}

func (m *userRepository) GetByID(ctx context.Context, id int64) (domain.User, error) {
	return m.first(ctx, "id = ?", id)
}

func (m *userRepository) GetByToken(ctx context.Context, token string) (domain.User, error) {
	return m.first(ctx, "token = ?", token)
}

func (m *userRepository) GetByIDs(ctx context.Context, uids []int64) ([]domain.User, error) {
	if len(uids) == 0 {
		return nil, nil
	}
	var users []model.User
	err := m.DB.WithContext(ctx).Model(&model.User{}).Where("id in ?", uids).Find(&users).Error
	if err != nil {
		return nil, err
	}
	res := make([]domain.User, len(users))
	for i := range users {
		res[i] = users[i].ToDomain()
	}
	return res, nil
}

func (m *userRepository) first(ctx context.Context, query string, arg any) (domain.User, error) {
	var user model.User
	err := m.DB.WithContext(ctx).First(&user, query, arg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.User{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.User{}, err
	}
	return user.ToDomain(), nil
}
