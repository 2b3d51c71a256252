package cache

import "time"

// DataWithLogicalExpire 支持逻辑过期的数据结构
// The redis key itself lives longer than ExpireAt so a stale value can still be
// served while it is rebuilt in the background.
type DataWithLogicalExpire[T any] struct {
	Data      T         `json:"data"`
	ExpireAt  time.Time `json:"expire_at"`  // 逻辑过期时间
	CreatedAt time.Time `json:"created_at"` // 创建时间，用于调试
}

// IsLogicalExpired 检查是否逻辑过期
func (d *DataWithLogicalExpire[T]) IsLogicalExpired() bool {
	return time.Now().After(d.ExpireAt)
}

// NewDataWithLogicalExpire 创建带逻辑过期的数据
func NewDataWithLogicalExpire[T any](data T, ttl time.Duration) *DataWithLogicalExpire[T] {
	now := time.Now()
	return &DataWithLogicalExpire[T]{
		Data:      data,
		ExpireAt:  now.Add(ttl),
		CreatedAt: now,
	}
}
