package settings

import (
	"context"

	"github.com/redis/rueidis"
)

type RedisStore struct {
	client rueidis.Client
	key    string
}

func NewRedisStore(client rueidis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		key:    APIKeyName,
	}
}

// APIKey returns the stored key, or empty string when none has been saved.
func (r *RedisStore) APIKey(ctx context.Context) (string, error) {
	cmd := r.client.B().Get().Key(r.key).Build()
	result := r.client.Do(ctx, cmd)

	if err := result.Error(); err != nil {
		if rueidis.IsRedisNil(err) {
			return "", nil
		}
		return "", err
	}

	return result.ToString()
}

func (r *RedisStore) SetAPIKey(ctx context.Context, key string) error {
	cmd := r.client.B().Set().Key(r.key).Value(key).Build()
	return r.client.Do(ctx, cmd).Error()
}
