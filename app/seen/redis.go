package seen

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var _ Store = (*RedisStore)(nil)

// RedisStore keeps the record as a Redis list under a single key.
type RedisStore struct {
	client *redis.Client
	key    string
}

func NewRedisStore(ctx context.Context, addr, key string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{client: client, key: key}, nil
}

func (s *RedisStore) location() string {
	return s.client.Options().Addr + "/" + s.key
}

func (s *RedisStore) Load(ctx context.Context) (*Record, error) {
	ids, err := s.client.LRange(ctx, s.key, 0, -1).Result()
	if err == redis.Nil {
		return NewRecord(nil), nil
	}
	if err != nil {
		return NewRecord(nil), &StoreIOError{Location: s.location(), Err: err}
	}
	return NewRecord(ids), nil
}

func (s *RedisStore) Save(ctx context.Context, record *Record) error {
	ids := record.IDs()

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, s.key)
		if len(ids) > 0 {
			values := make([]interface{}, len(ids))
			for i, id := range ids {
				values[i] = id
			}
			pipe.RPush(ctx, s.key, values...)
		}
		return nil
	})
	if err != nil {
		return &StoreWriteError{Location: s.location(), Err: err}
	}

	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
