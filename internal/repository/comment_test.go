package repository_test

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/blog-comments/domain"
	"github.com/Guyuepp/blog-comments/domain/mocks"
	"github.com/Guyuepp/blog-comments/internal/repository"
)

func ptr(v int64) *int64 { return &v }

func newUser(id int64) domain.User {
	return domain.User{
		ID:       id,
		Name:     faker.Name(),
		Username: faker.Username(),
		Avatar:   faker.URL(),
	}
}

func TestFetchByBlogRootPageFromCache(t *testing.T) {
	db := mocks.NewCommentDBRepository(t)
	cache := mocks.NewCommentCache(t)
	users := mocks.NewUserRepository(t)

	cached := domain.CommentPage{
		Items:    []domain.Comment{{ID: 1, BlogID: 3, AuthorID: 9}},
		PageSize: 10,
		Total:    1,
	}
	cache.On("GetRootPage", mock.Anything, int64(3), 10).Return(cached, false, nil).Once()

	repo := repository.NewCommentRepository(db, cache, users)
	got, err := repo.FetchByBlog(context.TODO(), 3, true, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, cached, got)
	db.AssertNotCalled(t, "FetchByBlog", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestFetchByBlogRootPageCacheMiss(t *testing.T) {
	db := mocks.NewCommentDBRepository(t)
	cache := mocks.NewCommentCache(t)
	users := mocks.NewUserRepository(t)

	u := newUser(9)
	now := time.Now()
	rows := []domain.Comment{
		{ID: 2, BlogID: 3, AuthorID: 9, Content: faker.Sentence(), CreatedAt: now},
		{ID: 1, BlogID: 3, AuthorID: 9, Content: faker.Sentence(), CreatedAt: now.Add(-time.Hour)},
	}
	cache.On("GetRootPage", mock.Anything, int64(3), 10).Return(domain.CommentPage{}, false, domain.ErrCacheMiss).Once()
	cache.On("RootPageVersion", mock.Anything, int64(3)).Return(int64(0), nil).Once()
	cache.On("SetRootPage", mock.Anything, int64(3), int64(0), mock.AnythingOfType("domain.CommentPage"), mock.Anything).Return(true, nil).Maybe()
	db.On("FetchByBlog", mock.Anything, int64(3), true, 0, 10).Return(rows, int64(2), nil).Once()
	users.On("GetByIDs", mock.Anything, []int64{9}).Return([]domain.User{u}, nil).Once()

	repo := repository.NewCommentRepository(db, cache, users)
	got, err := repo.FetchByBlog(context.TODO(), 3, true, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Total)
	require.Len(t, got.Items, 2)
	for _, c := range got.Items {
		require.NotNil(t, c.Author)
		assert.Equal(t, u.Username, c.Author.Username)
		assert.Equal(t, u.Avatar, c.Author.Avatar)
	}
}

// memCache keeps root pages in memory under the same version rules as the redis cache.
type memCache struct {
	mu      sync.Mutex
	version map[int64]int64
	pages   map[string]domain.CommentPage
	filled  chan bool
}

func newMemCache() *memCache {
	return &memCache{
		version: map[int64]int64{},
		pages:   map[string]domain.CommentPage{},
		filled:  make(chan bool, 8),
	}
}

func (m *memCache) GetRootPage(_ context.Context, blogID int64, pageSize int) (domain.CommentPage, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.pages[fmt.Sprintf("%d:%d", blogID, pageSize)]
	if !ok {
		return domain.CommentPage{}, false, domain.ErrCacheMiss
	}
	return p, false, nil
}

func (m *memCache) RootPageVersion(_ context.Context, blogID int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.version[blogID], nil
}

func (m *memCache) SetRootPage(_ context.Context, blogID int64, version int64, page domain.CommentPage, _ time.Duration) (bool, error) {
	m.mu.Lock()
	ok := m.version[blogID] == version
	if ok {
		m.pages[fmt.Sprintf("%d:%d", blogID, page.PageSize)] = page
	}
	m.mu.Unlock()
	m.filled <- ok
	return ok, nil
}

func (m *memCache) InvalidateBlog(_ context.Context, blogID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.version[blogID]++
	for k := range m.pages {
		if strings.HasPrefix(k, fmt.Sprintf("%d:", blogID)) {
			delete(m.pages, k)
		}
	}
	return nil
}

func waitFill(t *testing.T, c *memCache) bool {
	t.Helper()
	select {
	case ok := <-c.filled:
		return ok
	case <-time.After(time.Second):
		t.Fatal("cache fill never happened")
		return false
	}
}

func TestFetchByBlogWriteDuringLoadIsNotHidden(t *testing.T) {
	db := mocks.NewCommentDBRepository(t)
	users := mocks.NewUserRepository(t)
	cache := newMemCache()
	repo := repository.NewCommentRepository(db, cache, users)

	older := domain.Comment{ID: 1, BlogID: 3, AuthorID: 9}
	newer := domain.Comment{ID: 2, BlogID: 3, AuthorID: 9}
	users.On("GetByIDs", mock.Anything, []int64{9}).Return([]domain.User{newUser(9)}, nil)

	// a new root comment commits and invalidates right after the first read
	db.On("FetchByBlog", mock.Anything, int64(3), true, 0, 10).
		Return([]domain.Comment{older}, int64(1), nil).
		Run(func(mock.Arguments) {
			require.NoError(t, cache.InvalidateBlog(context.TODO(), 3))
		}).Once()
	db.On("FetchByBlog", mock.Anything, int64(3), true, 0, 10).
		Return([]domain.Comment{newer, older}, int64(2), nil).Once()

	first, err := repo.FetchByBlog(context.TODO(), 3, true, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.Total)
	assert.False(t, waitFill(t, cache), "page read before the write must not be cached")

	second, err := repo.FetchByBlog(context.TODO(), 3, true, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.Total)
	assert.True(t, waitFill(t, cache))

	third, err := repo.FetchByBlog(context.TODO(), 3, true, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), third.Total)
	assert.ElementsMatch(t, []int64{1, 2}, []int64{third.Items[0].ID, third.Items[1].ID})
}

func TestFetchByBlogVersionUnavailableSkipsFill(t *testing.T) {
	db := mocks.NewCommentDBRepository(t)
	cache := mocks.NewCommentCache(t)
	users := mocks.NewUserRepository(t)

	cache.On("GetRootPage", mock.Anything, int64(3), 10).Return(domain.CommentPage{}, false, domain.ErrCacheMiss).Once()
	cache.On("RootPageVersion", mock.Anything, int64(3)).Return(int64(0), assert.AnError).Once()
	db.On("FetchByBlog", mock.Anything, int64(3), true, 0, 10).Return([]domain.Comment{}, int64(0), nil).Once()

	repo := repository.NewCommentRepository(db, cache, users)
	got, err := repo.FetchByBlog(context.TODO(), 3, true, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, got.Items)
	cache.AssertNotCalled(t, "SetRootPage", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestFetchByBlogSharedLoadOutlivesCaller(t *testing.T) {
	db := mocks.NewCommentDBRepository(t)
	cache := mocks.NewCommentCache(t)
	users := mocks.NewUserRepository(t)

	live := mock.MatchedBy(func(ctx context.Context) bool { return ctx.Err() == nil })
	cache.On("GetRootPage", mock.Anything, int64(3), 10).Return(domain.CommentPage{}, false, domain.ErrCacheMiss).Once()
	cache.On("RootPageVersion", live, int64(3)).Return(int64(1), nil).Once()
	cache.On("SetRootPage", mock.Anything, int64(3), int64(1), mock.Anything, mock.Anything).Return(true, nil).Maybe()
	db.On("FetchByBlog", live, int64(3), true, 0, 10).Return([]domain.Comment{}, int64(0), nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo := repository.NewCommentRepository(db, cache, users)
	got, err := repo.FetchByBlog(ctx, 3, true, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.Total)
}

func TestFetchHugePageIsEmpty(t *testing.T) {
	db := mocks.NewCommentDBRepository(t)
	cache := mocks.NewCommentCache(t)
	users := mocks.NewUserRepository(t)

	db.On("FetchByBlog", mock.Anything, int64(3), false, math.MaxInt, 3).Return([]domain.Comment{}, int64(4), nil).Once()
	db.On("FetchByParent", mock.Anything, int64(1)).Return([]domain.Comment{{ID: 42, BlogID: 3, AuthorID: 9, ParentID: ptr(1)}}, nil).Once()

	repo := repository.NewCommentRepository(db, cache, users)
	const hugePage = 6148914691236517205

	blogPage, err := repo.FetchByBlog(context.TODO(), 3, false, hugePage, 3)
	require.NoError(t, err)
	assert.Empty(t, blogPage.Items)
	assert.Equal(t, int64(4), blogPage.Total)

	replies, err := repo.FetchByParent(context.TODO(), 1, hugePage, 3)
	require.NoError(t, err)
	assert.Empty(t, replies.Items)
	assert.Equal(t, int64(1), replies.Total)
}

func TestFetchByBlogLaterPageSkipsCache(t *testing.T) {
	db := mocks.NewCommentDBRepository(t)
	cache := mocks.NewCommentCache(t)
	users := mocks.NewUserRepository(t)

	db.On("FetchByBlog", mock.Anything, int64(3), false, 20, 10).Return([]domain.Comment{}, int64(12), nil).Once()

	repo := repository.NewCommentRepository(db, cache, users)
	got, err := repo.FetchByBlog(context.TODO(), 3, false, 2, 10)
	require.NoError(t, err)
	assert.Empty(t, got.Items)
	assert.Equal(t, int64(12), got.Total)
	assert.Equal(t, 2, got.Page)
	cache.AssertNotCalled(t, "GetRootPage", mock.Anything, mock.Anything, mock.Anything)
}

func TestFetchByParent(t *testing.T) {
	db := mocks.NewCommentDBRepository(t)
	cache := mocks.NewCommentCache(t)
	users := mocks.NewUserRepository(t)

	children := []domain.Comment{
		{ID: 11, BlogID: 3, AuthorID: 21, ParentID: ptr(1)},
		{ID: 12, BlogID: 3, AuthorID: 22, ParentID: ptr(1)},
		{ID: 13, BlogID: 3, AuthorID: 23, ParentID: ptr(1)},
	}
	db.On("FetchByParent", mock.Anything, int64(1)).Return(children, nil)

	t.Run("second page resolves reply and parent authors", func(t *testing.T) {
		db.On("GetByIDs", mock.Anything, []int64{1}).Return([]domain.Comment{{ID: 1, BlogID: 3, AuthorID: 50}}, nil).Once()
		users.On("GetByIDs", mock.Anything, []int64{23}).Return([]domain.User{newUser(23)}, nil).Once()
		users.On("GetByIDs", mock.Anything, []int64{50}).Return([]domain.User{newUser(50)}, nil).Once()

		repo := repository.NewCommentRepository(db, cache, users)
		got, err := repo.FetchByParent(context.TODO(), 1, 1, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(3), got.Total)
		require.Len(t, got.Items, 1)
		assert.Equal(t, int64(13), got.Items[0].ID)
		require.NotNil(t, got.Items[0].Author)
		assert.Equal(t, int64(23), got.Items[0].Author.ID)
		require.NotNil(t, got.Items[0].ParentAuthor)
		assert.Equal(t, int64(50), got.Items[0].ParentAuthor.ID)
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		repo := repository.NewCommentRepository(db, cache, users)
		got, err := repo.FetchByParent(context.TODO(), 1, 5, 2)
		require.NoError(t, err)
		assert.NotNil(t, got.Items)
		assert.Empty(t, got.Items)
		assert.Equal(t, int64(3), got.Total)
	})
}

func TestStoreResolvesIdentitiesAndInvalidates(t *testing.T) {
	db := mocks.NewCommentDBRepository(t)
	cache := mocks.NewCommentCache(t)
	users := mocks.NewUserRepository(t)

	c := &domain.Comment{BlogID: 3, AuthorID: 9, ParentID: ptr(1), Content: faker.Sentence(), ReplyToUsername: "bob"}
	db.On("Store", mock.Anything, c).Return(nil).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Comment).ID = 77
	}).Once()
	cache.On("InvalidateBlog", mock.Anything, int64(3)).Return(nil).Once()
	db.On("GetByIDs", mock.Anything, []int64{1}).Return([]domain.Comment{{ID: 1, BlogID: 3, AuthorID: 9}}, nil).Once()
	users.On("GetByIDs", mock.Anything, []int64{9}).Return([]domain.User{newUser(9)}, nil).Once()

	repo := repository.NewCommentRepository(db, cache, users)
	require.NoError(t, repo.Store(context.TODO(), c))
	assert.Equal(t, int64(77), c.ID)
	require.NotNil(t, c.Author)
	require.NotNil(t, c.ParentAuthor)
	assert.Equal(t, int64(9), c.ParentAuthor.ID)
	assert.Equal(t, "bob", c.ReplyToUsername)
}

func TestAdjustLikesInvalidatesBlog(t *testing.T) {
	db := mocks.NewCommentDBRepository(t)
	cache := mocks.NewCommentCache(t)
	users := mocks.NewUserRepository(t)

	db.On("AdjustLikes", mock.Anything, int64(5), int64(1)).Return(domain.Comment{ID: 5, BlogID: 8, Likes: 1}, nil).Once()
	cache.On("InvalidateBlog", mock.Anything, int64(8)).Return(assert.AnError).Once()

	repo := repository.NewCommentRepository(db, cache, users)
	c, err := repo.AdjustLikes(context.TODO(), 5, 1)
	require.NoError(t, err, "cache failures must not fail the write")
	assert.Equal(t, int64(1), c.Likes)
}

func TestAdjustLikesNotFound(t *testing.T) {
	db := mocks.NewCommentDBRepository(t)
	cache := mocks.NewCommentCache(t)
	users := mocks.NewUserRepository(t)

	db.On("AdjustLikes", mock.Anything, int64(5), int64(-1)).Return(domain.Comment{}, domain.ErrNotFound).Once()

	repo := repository.NewCommentRepository(db, cache, users)
	_, err := repo.AdjustLikes(context.TODO(), 5, -1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
