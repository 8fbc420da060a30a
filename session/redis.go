package session

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "session:"

// RedisStore keeps tokens in redis so sessions survive restarts.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore verifies connectivity with PING before returning.
func NewRedisStore(addr, password string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Set(token string, userID uint) error {
	return s.client.Set(context.Background(), redisKeyPrefix+token, uint64(userID), 0).Err()
}

func (s *RedisStore) Get(token string) (uint, bool) {
	val, err := s.client.Get(context.Background(), redisKeyPrefix+token).Result()
	if err != nil {
		return 0, false
	}
	id, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func (s *RedisStore) Delete(token string) error {
	return s.client.Del(context.Background(), redisKeyPrefix+token).Err()
}
