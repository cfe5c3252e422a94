package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStorage 基于 Redis 的持久化后端
// 与 FileStorage 同一契约：单键、整体覆写、无 TTL。
type RedisStorage struct {
	client *redis.Client
	key    string
}

// NewRedisStorage 创建 Redis 持久化后端
func NewRedisStorage(client *redis.Client, prefix string) (*RedisStorage, error) {
	if client == nil {
		return nil, errors.New("redis client is nil")
	}
	key := StorageKey
	if prefix != "" {
		key = fmt.Sprintf("%s:%s", prefix, StorageKey)
	}
	return &RedisStorage{client: client, key: key}, nil
}

// Load 读取存档
func (r *RedisStorage) Load() ([]Item, error) {
	raw, err := r.client.Get(context.Background(), r.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var items []Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("decode cart payload failed: %w", err)
	}
	return items, nil
}

// Save 整体覆写存档
func (r *RedisStorage) Save(items []Item) error {
	if items == nil {
		items = []Item{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return r.client.Set(context.Background(), r.key, raw, 0).Err()
}
