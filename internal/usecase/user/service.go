package user

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/blog-comments/domain"
)

type Service struct {
	userRepo domain.UserRepository
}

var _ domain.TokenResolver = (*Service)(nil)

func NewService(userRepo domain.UserRepository) *Service {
	return &Service{
		userRepo: userRepo,
	}
}

// ResolveUserID looks the token up in the stored token column.
func (s *Service) ResolveUserID(ctx context.Context, token string) (int64, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, domain.ErrUnauthorized
	}

	u, err := s.userRepo.GetByToken(ctx, token)
	if errors.Is(err, domain.ErrNotFound) {
		logrus.Warn("no user holds the presented token")
		return 0, domain.ErrUnauthorized
	}
	if err != nil {
		return 0, err
	}
	return u.ID, nil
}
