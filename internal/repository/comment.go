package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/Guyuepp/blog-comments/domain"
)

// rootPageTTL 根评论首页的逻辑过期时间
const rootPageTTL = 30 * time.Second

// sharedLoadTimeout bounds a singleflight load that no single request owns.
const sharedLoadTimeout = 10 * time.Second

// commentRepository 协调层，协调缓存、数据库和用户信息
type commentRepository struct {
	db        domain.CommentDBRepository
	cache     domain.CommentCache
	userRepo  domain.UserRepository
	loadGroup singleflight.Group
}

var _ domain.CommentRepository = (*commentRepository)(nil)

// NewCommentRepository 创建协调层repository
func NewCommentRepository(db domain.CommentDBRepository, cache domain.CommentCache, userRepo domain.UserRepository) *commentRepository {
	return &commentRepository{
		db:       db,
		cache:    cache,
		userRepo: userRepo,
	}
}

func (r *commentRepository) GetByID(ctx context.Context, id int64) (domain.Comment, error) {
	c, err := r.db.GetByID(ctx, id)
	if err != nil {
		return domain.Comment{}, err
	}
	res := []domain.Comment{c}
	if err := r.fillIdentities(ctx, res); err != nil {
		return domain.Comment{}, err
	}
	return res[0], nil
}

func (r *commentRepository) Store(ctx context.Context, c *domain.Comment) error {
	if err := r.db.Store(ctx, c); err != nil {
		return err
	}
	r.invalidate(ctx, c.BlogID)

	res := []domain.Comment{*c}
	if err := r.fillIdentities(ctx, res); err != nil {
		return err
	}
	*c = res[0]
	return nil
}

func (r *commentRepository) UpdateContent(ctx context.Context, id int64, content string) (domain.Comment, error) {
	c, err := r.db.UpdateContent(ctx, id, content)
	if err != nil {
		return domain.Comment{}, err
	}
	r.invalidate(ctx, c.BlogID)

	res := []domain.Comment{c}
	if err := r.fillIdentities(ctx, res); err != nil {
		return domain.Comment{}, err
	}
	return res[0], nil
}

func (r *commentRepository) Delete(ctx context.Context, c *domain.Comment) error {
	if err := r.db.Delete(ctx, c.ID); err != nil {
		return err
	}
	r.invalidate(ctx, c.BlogID)
	return nil
}

// FetchByBlog 获取博客评论，根评论首页走缓存
func (r *commentRepository) FetchByBlog(ctx context.Context, blogID int64, rootOnly bool, page, pageSize int) (domain.CommentPage, error) {
	if !rootOnly || page != 0 {
		return r.loadBlogPage(ctx, blogID, rootOnly, page, pageSize)
	}

	cached, expired, err := r.cache.GetRootPage(ctx, blogID, pageSize)
	if err == nil {
		if expired {
			go r.rebuildRootPage(context.Background(), blogID, pageSize)
		}
		return cached, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("failed to get root comments of blog %d from cache: %v", blogID, err)
	}

	// 缓存未命中，使用singleflight避免缓存击穿
	key := fmt.Sprintf("roots:%d:%d", blogID, pageSize)
	result, err, _ := r.loadGroup.Do(key, func() (any, error) {
		// 共享加载不受首个请求取消的影响
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedLoadTimeout)
		defer cancel()
		p, version, err := r.loadRootPage(loadCtx, blogID, pageSize)
		if err != nil {
			return nil, err
		}
		if version >= 0 {
			go r.fillRootPage(context.Background(), blogID, version, p)
		}
		return p, nil
	})
	if err != nil {
		return domain.CommentPage{}, err
	}
	return result.(domain.CommentPage), nil
}

// FetchByParent 子评论没有分页查询，全部取出后在内存中分页
func (r *commentRepository) FetchByParent(ctx context.Context, parentID int64, page, pageSize int) (domain.CommentPage, error) {
	children, err := r.db.FetchByParent(ctx, parentID)
	if err != nil {
		return domain.CommentPage{}, err
	}

	items := SlicePage(children, page, pageSize)
	if err := r.fillIdentities(ctx, items); err != nil {
		return domain.CommentPage{}, err
	}
	return domain.CommentPage{
		Items:    items,
		Page:     page,
		PageSize: pageSize,
		Total:    int64(len(children)),
	}, nil
}

func (r *commentRepository) AdjustLikes(ctx context.Context, id int64, delta int64) (domain.Comment, error) {
	c, err := r.db.AdjustLikes(ctx, id, delta)
	if err != nil {
		return domain.Comment{}, err
	}
	r.invalidate(ctx, c.BlogID)
	return c, nil
}

func (r *commentRepository) loadBlogPage(ctx context.Context, blogID int64, rootOnly bool, page, pageSize int) (domain.CommentPage, error) {
	items, total, err := r.db.FetchByBlog(ctx, blogID, rootOnly, Offset(page, pageSize), pageSize)
	if err != nil {
		return domain.CommentPage{}, err
	}
	if err := r.fillIdentities(ctx, items); err != nil {
		return domain.CommentPage{}, err
	}
	return domain.CommentPage{
		Items:    items,
		Page:     page,
		PageSize: pageSize,
		Total:    total,
	}, nil
}

// loadRootPage reads the blog's cache version and then the page from the
// database. version is -1 when it could not be read, and the page must then
// not be cached.
func (r *commentRepository) loadRootPage(ctx context.Context, blogID int64, pageSize int) (domain.CommentPage, int64, error) {
	version, err := r.cache.RootPageVersion(ctx, blogID)
	if err != nil {
		logrus.Warnf("failed to get root comments version of blog %d: %v", blogID, err)
		version = -1
	}
	p, err := r.loadBlogPage(ctx, blogID, true, 0, pageSize)
	if err != nil {
		return domain.CommentPage{}, 0, err
	}
	return p, version, nil
}

func (r *commentRepository) fillRootPage(ctx context.Context, blogID, version int64, p domain.CommentPage) {
	ok, err := r.cache.SetRootPage(ctx, blogID, version, p, rootPageTTL)
	if err != nil {
		logrus.Warnf("failed to set root comments of blog %d to cache: %v", blogID, err)
		return
	}
	if !ok {
		logrus.Debugf("root comments of blog %d changed while loading, cache not filled", blogID)
	}
}

// rebuildRootPage 异步重建根评论首页缓存
func (r *commentRepository) rebuildRootPage(ctx context.Context, blogID int64, pageSize int) {
	key := fmt.Sprintf("rebuild:roots:%d:%d", blogID, pageSize)
	_, err, _ := r.loadGroup.Do(key, func() (any, error) {
		p, version, err := r.loadRootPage(ctx, blogID, pageSize)
		if err != nil {
			return nil, err
		}
		if version >= 0 {
			r.fillRootPage(ctx, blogID, version, p)
		}
		return nil, nil
	})
	if err != nil {
		logrus.Errorf("rebuildRootPage failed for blog %d: %v", blogID, err)
	}
}

func (r *commentRepository) invalidate(ctx context.Context, blogID int64) {
	if err := r.cache.InvalidateBlog(ctx, blogID); err != nil {
		logrus.Warnf("failed to invalidate comment cache of blog %d: %v", blogID, err)
	}
}

// fillIdentities 批量填充评论作者和被回复者的信息
func (r *commentRepository) fillIdentities(ctx context.Context, comments []domain.Comment) error {
	if len(comments) == 0 {
		return nil
	}

	// 父评论如果不在本批次中，需要单独查询
	inBatch := make(map[int64]int64, len(comments)) // comment id -> author id
	authorIDs := make([]int64, 0, len(comments))
	seenUser := make(map[int64]bool)
	for _, c := range comments {
		inBatch[c.ID] = c.AuthorID
		if !seenUser[c.AuthorID] {
			seenUser[c.AuthorID] = true
			authorIDs = append(authorIDs, c.AuthorID)
		}
	}
	parentIDs := make([]int64, 0)
	seenParent := make(map[int64]bool)
	for _, c := range comments {
		if c.ParentID == nil {
			continue
		}
		pid := *c.ParentID
		if _, ok := inBatch[pid]; !ok && !seenParent[pid] {
			seenParent[pid] = true
			parentIDs = append(parentIDs, pid)
		}
	}

	var (
		users   []domain.User
		parents []domain.Comment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		users, err = r.userRepo.GetByIDs(gctx, authorIDs)
		return err
	})
	if len(parentIDs) > 0 {
		g.Go(func() error {
			var err error
			parents, err = r.db.GetByIDs(gctx, parentIDs)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	userMap := make(map[int64]domain.User, len(users))
	for _, u := range users {
		userMap[u.ID] = u
	}

	parentAuthor := inBatch
	var missing []int64
	for _, p := range parents {
		parentAuthor[p.ID] = p.AuthorID
		if _, ok := userMap[p.AuthorID]; !ok && !seenUser[p.AuthorID] {
			seenUser[p.AuthorID] = true
			missing = append(missing, p.AuthorID)
		}
	}
	if len(missing) > 0 {
		more, err := r.userRepo.GetByIDs(ctx, missing)
		if err != nil {
			return err
		}
		for _, u := range more {
			userMap[u.ID] = u
		}
	}

	for i := range comments {
		if u, ok := userMap[comments[i].AuthorID]; ok {
			comments[i].Author = u.Summary()
		} else {
			logrus.Warnf("author %d of comment %d not found", comments[i].AuthorID, comments[i].ID)
		}
		if comments[i].ParentID == nil {
			continue
		}
		if aid, ok := parentAuthor[*comments[i].ParentID]; ok {
			if u, ok := userMap[aid]; ok {
				comments[i].ParentAuthor = u.Summary()
			}
		}
	}
	return nil
}
