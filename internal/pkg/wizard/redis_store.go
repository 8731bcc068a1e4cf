package wizard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/redis/go-redis/v9"
)

const (
	redisKeyPrefix   = "signup:"
	maxUpdateRetries = 5
)

// RedisStore shares wizard states between instances. Updates use optimistic
// locking (WATCH/MULTI) so two requests for the same wizard serialize.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = StateTTL
	}
	return &RedisStore{rdb: rdb, ttl: ttl}
}

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func key(id string) string {
	return redisKeyPrefix + id
}

func (r *RedisStore) Get(ctx context.Context, id string) (State, error) {
	return r.read(ctx, r.rdb, id)
}

func (r *RedisStore) Put(ctx context.Context, s State) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode wizard state: %w", err)
	}
	return r.rdb.Set(ctx, key(s.ID), raw, r.ttl).Err()
}

func (r *RedisStore) Update(ctx context.Context, id string, fn func(State) (State, bool)) (State, error) {
	var next State

	txf := func(tx *redis.Tx) error {
		cur, err := r.read(ctx, tx, id)
		if err != nil {
			return err
		}
		var write bool
		next, write = fn(cur)
		if !write {
			return nil
		}
		raw, err := json.Marshal(next)
		if err != nil {
			return fmt.Errorf("encode wizard state: %w", err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key(id), raw, r.ttl)
			return nil
		})
		return err
	}

	for i := 0; i < maxUpdateRetries; i++ {
		err := r.rdb.Watch(ctx, txf, key(id))
		if err == nil {
			return next, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			log.Debugf("wizard %s: concurrent update, retrying", id)
			continue
		}
		return State{}, err
	}
	return State{}, fmt.Errorf("wizard %s: too many concurrent updates", id)
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	return r.rdb.Del(ctx, key(id)).Err()
}

func (r *RedisStore) read(ctx context.Context, c getter, id string) (State, error) {
	raw, err := c.Get(ctx, key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return State{}, ErrNotFound
	}
	if err != nil {
		return State{}, err
	}
	var s State
	if err := json.Unmarshal(raw, &s); err != nil {
		return State{}, fmt.Errorf("decode wizard state: %w", err)
	}
	return s, nil
}
