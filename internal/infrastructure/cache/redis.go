package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang/snappy"
	"github.com/redis/go-redis/v9"

	blobstorage "github.com/marcos-nsantos/personal-assistant/internal/adapter/storage"
	"github.com/marcos-nsantos/personal-assistant/internal/infrastructure/config"
)

func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}

	return client, nil
}

// RedisStorage is a BlobStorage over plain redis keys. Values are
// snappy-compressed.
type RedisStorage struct {
	client redis.Cmdable
	prefix string
	now    func() time.Time
}

func NewRedisStorage(client redis.Cmdable, prefix string) *RedisStorage {
	return &RedisStorage{client: client, prefix: prefix, now: time.Now}
}

func (s *RedisStorage) Read(ctx context.Context, key string) ([]byte, error) {
	payload, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, blobstorage.ErrObjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading from redis: %w", err)
	}

	data, err := snappy.Decode(nil, payload)
	if err != nil {
		return nil, fmt.Errorf("snappy decode %s: %w: %v", key, blobstorage.ErrObjectCorrupt, err)
	}
	return data, nil
}

func (s *RedisStorage) Write(ctx context.Context, key string, data []byte) error {
	payload := snappy.Encode(nil, data)
	if err := s.client.Set(ctx, s.prefix+key, payload, 0).Err(); err != nil {
		return fmt.Errorf("writing to redis: %w", err)
	}
	return nil
}

func (s *RedisStorage) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("deleting from redis: %w", err)
	}
	return nil
}

// Quarantine renames key to "<key>.corrupt-<timestamp>" on the server.
func (s *RedisStorage) Quarantine(ctx context.Context, key string) (string, error) {
	moved := fmt.Sprintf("%s.corrupt-%s", key, s.now().UTC().Format("20060102T150405"))
	if err := s.client.Rename(ctx, s.prefix+key, s.prefix+moved).Err(); err != nil {
		return "", fmt.Errorf("quarantining redis key: %w", err)
	}
	return moved, nil
}
