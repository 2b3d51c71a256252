package mysql

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/blog-comments/domain"
)

func TestBlogGetByID(t *testing.T) {
	cols := []string{"id", "title", "user_id", "created_at", "updated_at"}

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		now := time.Now()
		mock.ExpectQuery("SELECT id, title, user_id, created_at, updated_at FROM `blog` WHERE id = \\?").
			WillReturnRows(sqlmock.NewRows(cols).AddRow(1, "hello", 2, now, now))

		b, err := NewBlogRepository(db).GetByID(context.TODO(), 1)
		require.NoError(t, err)
		assert.Equal(t, "hello", b.Title)
		assert.Equal(t, int64(2), b.AuthorID)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("FROM `blog`").WillReturnRows(sqlmock.NewRows(cols))

		_, err := NewBlogRepository(db).GetByID(context.TODO(), 1)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
