package sessions

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/rueidis"
)

const keyPrefix = "session:"

type RedisStore struct {
	client rueidis.Client
}

func NewRedisStore(client rueidis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Issue(ctx context.Context, userID string, ttl time.Duration) (string, error) {
	token := uuid.NewString()

	cmd := s.client.B().Set().
		Key(keyPrefix + token).
		Value(userID).
		Ex(ttl).
		Build()

	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		return "", err
	}

	return token, nil
}

func (s *RedisStore) Lookup(ctx context.Context, token string) (string, error) {
	cmd := s.client.B().Get().Key(keyPrefix + token).Build()
	result := s.client.Do(ctx, cmd)

	if err := result.Error(); err != nil {
		if rueidis.IsRedisNil(err) {
			return "", ErrSessionNotFound
		}
		return "", err
	}

	return result.ToString()
}

func (s *RedisStore) Revoke(ctx context.Context, token string) error {
	cmd := s.client.B().Del().Key(keyPrefix + token).Build()
	return s.client.Do(ctx, cmd).Error()
}
