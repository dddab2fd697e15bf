package store

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// layoutKeyPrefix Redis中布局键的前缀
const layoutKeyPrefix = "table:layout:"

// RedisLayoutStorage 基于Redis的表格布局存储，不设过期时间
type RedisLayoutStorage struct {
	client *redis.Client
}

// NewRedisLayoutStorage 创建Redis布局存储
func NewRedisLayoutStorage(client *redis.Client) *RedisLayoutStorage {
	return &RedisLayoutStorage{client: client}
}

// Get 读取布局数据，键不存在时返回nil
func (s *RedisLayoutStorage) Get(ctx context.Context, bizKey string) ([]byte, error) {
	data, err := s.client.Get(ctx, layoutKeyPrefix+bizKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Set 写入布局数据
func (s *RedisLayoutStorage) Set(ctx context.Context, bizKey string, data []byte) error {
	return s.client.Set(ctx, layoutKeyPrefix+bizKey, data, 0).Err()
}

// Del 删除布局数据
func (s *RedisLayoutStorage) Del(ctx context.Context, bizKey string) error {
	return s.client.Del(ctx, layoutKeyPrefix+bizKey).Err()
}
