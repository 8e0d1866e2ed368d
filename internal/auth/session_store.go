package auth

import (
	"context"
	"errors"
	"time"

	autherrors "coaltools/internal/auth/errors"

	"github.com/redis/go-redis/v9"
)

// SessionStore menyimpan refresh session di store bersama (Redis), bukan di
// memori proses, supaya login tetap valid di instance API manapun.
//
//go:generate mockgen -source=session_store.go -destination=mock/session_store_mock.go -package=mock
type SessionStore interface {
	Save(ctx context.Context, token, userID string, ttl time.Duration) error
	Get(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}

type redisSessionStore struct {
	rdb *redis.Client
}

func NewRedisSessionStore(rdb *redis.Client) SessionStore {
	return &redisSessionStore{rdb: rdb}
}

func sessionKey(token string) string {
	return "session:" + token
}

func (s *redisSessionStore) Save(ctx context.Context, token, userID string, ttl time.Duration) error {
	return s.rdb.Set(ctx, sessionKey(token), userID, ttl).Err()
}

func (s *redisSessionStore) Get(ctx context.Context, token string) (string, error) {
	userID, err := s.rdb.Get(ctx, sessionKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return "", autherrors.ErrSessionNotFound
	}
	if err != nil {
		return "", err
	}
	return userID, nil
}

func (s *redisSessionStore) Delete(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, sessionKey(token)).Err()
}
