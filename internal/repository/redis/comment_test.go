package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/blog-comments/domain"
	"github.com/Guyuepp/blog-comments/internal/repository/cache"
)

func TestGetRootPage(t *testing.T) {
	page := domain.CommentPage{
		Items: []domain.Comment{
			{ID: 2, BlogID: 1, AuthorID: 7, Content: "second", Author: &domain.UserSummary{ID: 7, Username: "u7"}},
			{ID: 1, BlogID: 1, AuthorID: 8, Content: "first"},
		},
		Page:     0,
		PageSize: 10,
		Total:    2,
	}

	t.Run("hit", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		data, err := json.Marshal(cache.NewDataWithLogicalExpire(page, time.Minute))
		require.NoError(t, err)
		mock.ExpectHGet("comment:blog:1:roots", "10").SetVal(string(data))

		got, expired, err := NewCommentCache(client).GetRootPage(context.TODO(), 1, 10)
		require.NoError(t, err)
		assert.False(t, expired)
		assert.Equal(t, int64(2), got.Total)
		require.Len(t, got.Items, 2)
		assert.Equal(t, "u7", got.Items[0].Author.Username)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("logically expired", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		data, err := json.Marshal(cache.NewDataWithLogicalExpire(page, -time.Second))
		require.NoError(t, err)
		mock.ExpectHGet("comment:blog:1:roots", "10").SetVal(string(data))

		got, expired, err := NewCommentCache(client).GetRootPage(context.TODO(), 1, 10)
		require.NoError(t, err)
		assert.True(t, expired)
		assert.Len(t, got.Items, 2)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("miss", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		mock.ExpectHGet("comment:blog:1:roots", "10").RedisNil()

		_, _, err := NewCommentCache(client).GetRootPage(context.TODO(), 1, 10)
		assert.ErrorIs(t, err, domain.ErrCacheMiss)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("redis error", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		mock.ExpectHGet("comment:blog:1:roots", "10").SetErr(errors.New("connection refused"))

		_, _, err := NewCommentCache(client).GetRootPage(context.TODO(), 1, 10)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrCacheMiss)
	})
}

func TestRootPageVersion(t *testing.T) {
	t.Run("never invalidated", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		mock.ExpectGet("comment:blog:1:roots:version").RedisNil()

		v, err := NewCommentCache(client).RootPageVersion(context.TODO(), 1)
		require.NoError(t, err)
		assert.Equal(t, int64(0), v)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("bumped", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		mock.ExpectGet("comment:blog:1:roots:version").SetVal("4")

		v, err := NewCommentCache(client).RootPageVersion(context.TODO(), 1)
		require.NoError(t, err)
		assert.Equal(t, int64(4), v)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSetRootPage(t *testing.T) {
	page := domain.CommentPage{Items: []domain.Comment{{ID: 1, BlogID: 1}}, PageSize: 10, Total: 1}

	// the payload carries a wall-clock expiry, so it is checked apart from the other args
	matchIgnoringPayload := func(expected, actual []interface{}) error {
		if len(expected) != len(actual) {
			return fmt.Errorf("args %v, want %v", actual, expected)
		}
		for i := range expected {
			if i == 7 {
				payload, _ := actual[i].(string)
				if !strings.Contains(payload, `"page_size":10`) {
					return fmt.Errorf("unexpected payload %q", payload)
				}
				continue
			}
			if fmt.Sprint(expected[i]) != fmt.Sprint(actual[i]) {
				return fmt.Errorf("arg %d is %v, want %v", i, actual[i], expected[i])
			}
		}
		return nil
	}
	keys := []string{"comment:blog:1:roots:version", "comment:blog:1:roots"}

	t.Run("version unchanged", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		mock.CustomMatch(matchIgnoringPayload).
			ExpectEvalSha(setRootPageScript.Hash(), keys, "3", "10", "", int64(3600)).
			SetVal(int64(1))

		ok, err := NewCommentCache(client).SetRootPage(context.TODO(), 1, 3, page, time.Minute)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("invalidated while loading", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		mock.CustomMatch(matchIgnoringPayload).
			ExpectEvalSha(setRootPageScript.Hash(), keys, "3", "10", "", int64(3600)).
			SetVal(int64(0))

		ok, err := NewCommentCache(client).SetRootPage(context.TODO(), 1, 3, page, time.Minute)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestInvalidateBlog(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mock.ExpectTxPipeline()
	mock.ExpectIncr("comment:blog:5:roots:version").SetVal(2)
	mock.ExpectExpire("comment:blog:5:roots:version", rootVersionKeyTTL).SetVal(true)
	mock.ExpectDel("comment:blog:5:roots").SetVal(1)
	mock.ExpectTxPipelineExec()

	assert.NoError(t, NewCommentCache(client).InvalidateBlog(context.TODO(), 5))
	assert.NoError(t, mock.ExpectationsWereMet())
}
