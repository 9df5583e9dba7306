package session

import (
	"time"

	"github.com/grocerly/grocerly/pkg/cache"
)

// RedisStore persists sessions through pkg/cache so they survive restarts
// and are shared between instances.
type RedisStore struct{}

func NewRedisStore() *RedisStore { return &RedisStore{} }

func redisKey(id string) string { return "grocerly:session:" + id }

func (RedisStore) Load(id string) (map[string]interface{}, bool) {
	var data map[string]interface{}
	if cache.Get(redisKey(id), &data) {
		return data, true
	}
	return nil, false
}

func (RedisStore) Save(id string, data map[string]interface{}, ttl time.Duration) error {
	return cache.Set(redisKey(id), data, ttl)
}

func (RedisStore) Delete(id string) error {
	return cache.Del(redisKey(id))
}
