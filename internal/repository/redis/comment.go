package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Guyuepp/blog-comments/domain"
	"github.com/Guyuepp/blog-comments/internal/repository/cache"
)

const (
	// KeyBlogRootComments hash: field = page size, value = first page of root comments
	KeyBlogRootComments = "comment:blog:%d:roots"
	// KeyBlogRootVersion 每次失效自增, 回填缓存前比对
	KeyBlogRootVersion = "comment:blog:%d:roots:version"

	// 物理过期时间，远大于逻辑过期时间
	rootPageKeyTTL = time.Hour
	// 版本号必须比页面活得久, 否则过期后重新从 1 计数会放过旧页面
	rootVersionKeyTTL = 24 * time.Hour
)

// KEYS = {版本号, 根评论hash}
// ARGV = {读取时的版本号, page size, 页面数据, 物理过期秒数}
var setRootPageScript = redis.NewScript(`
	local current = redis.call('GET', KEYS[1]) or '0'
	if current ~= ARGV[1] then
		return 0 -- 已被失效, 放弃回填
	end
	redis.call('HSET', KEYS[2], ARGV[2], ARGV[3])
	redis.call('EXPIRE', KEYS[2], ARGV[4])
	return 1
`)

type commentCache struct {
	client *redis.Client
}

var _ domain.CommentCache = (*commentCache)(nil)

func NewCommentCache(client *redis.Client) *commentCache {
	return &commentCache{
		client: client,
	}
}

func (c *commentCache) GetRootPage(ctx context.Context, blogID int64, pageSize int) (domain.CommentPage, bool, error) {
	key := fmt.Sprintf(KeyBlogRootComments, blogID)
	data, err := c.client.HGet(ctx, key, strconv.Itoa(pageSize)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.CommentPage{}, false, domain.ErrCacheMiss
	} else if err != nil {
		return domain.CommentPage{}, false, err
	}

	var entry cache.DataWithLogicalExpire[domain.CommentPage]
	if err := json.Unmarshal(data, &entry); err != nil {
		return domain.CommentPage{}, false, err
	}
	return entry.Data, entry.IsLogicalExpired(), nil
}

func (c *commentCache) RootPageVersion(ctx context.Context, blogID int64) (int64, error) {
	v, err := c.client.Get(ctx, fmt.Sprintf(KeyBlogRootVersion, blogID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}

func (c *commentCache) SetRootPage(ctx context.Context, blogID int64, version int64, page domain.CommentPage, ttl time.Duration) (bool, error) {
	data, err := json.Marshal(cache.NewDataWithLogicalExpire(page, ttl))
	if err != nil {
		return false, err
	}

	keys := []string{
		fmt.Sprintf(KeyBlogRootVersion, blogID),
		fmt.Sprintf(KeyBlogRootComments, blogID),
	}
	args := []any{
		strconv.FormatInt(version, 10),
		strconv.Itoa(page.PageSize),
		string(data),
		int64(rootPageKeyTTL / time.Second),
	}
	res, err := setRootPageScript.Run(ctx, c.client, keys, args...).Int()
	if err != nil {
		return false, err
	}
	return res == 1, nil
}

// InvalidateBlog bumps the version before dropping the pages, so a loader that
// read the old version can no longer write back.
func (c *commentCache) InvalidateBlog(ctx context.Context, blogID int64) error {
	versionKey := fmt.Sprintf(KeyBlogRootVersion, blogID)
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, versionKey)
		pipe.Expire(ctx, versionKey, rootVersionKeyTTL)
		pipe.Del(ctx, fmt.Sprintf(KeyBlogRootComments, blogID))
		return nil
	})
	return err
}
