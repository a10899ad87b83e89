package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps sessions in Redis with the key TTL matching the session
// TTL, so expiry needs no sweeper.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Create(ctx context.Context, ttl time.Duration) (*Session, error) {
	sess := newSession(ttl)

	data, err := json.Marshal(sess)
	if err != nil {
		return nil, err
	}

	if err := s.client.Set(ctx, sessionKey(sess.ID), data, ttl).Err(); err != nil {
		return nil, err
	}

	return sess, nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	val, err := s.client.Get(ctx, sessionKey(id)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var sess Session
	if err := json.Unmarshal([]byte(val), &sess); err != nil {
		return nil, err
	}
	if sess.Expired() {
		s.Destroy(ctx, id)
		return nil, nil
	}

	return &sess, nil
}

func (s *RedisStore) Destroy(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKey(id)).Err()
}

func sessionKey(id string) string {
	return "session:" + id
}
