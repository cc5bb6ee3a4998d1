// README: Draft store backed by Redis with a TTL; drafts are throwaway state.
package tempbooking

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"gari/internal/types"
)

var ErrNotFound = errors.New("temp booking not found")

const keyPrefix = "tempbooking:"

type Store struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{redis: rdb, ttl: ttl}
}

func (s *Store) Put(ctx context.Context, d *Draft) error {
	b, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, keyPrefix+string(d.ID), b, s.ttl).Err()
}

func (s *Store) Get(ctx context.Context, id types.ID) (*Draft, error) {
	val, err := s.redis.Get(ctx, keyPrefix+string(id)).Result()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var d Draft
	if err := json.Unmarshal([]byte(val), &d); err != nil {
		return nil, err
	}
	return &d, nil
}
