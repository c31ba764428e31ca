package mykvstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const redisKeyPrefix = "shopfrontend:"

type redisStore struct {
	client *redis.Client
}

// NewRedisStore accepts either a redis:// url or a plain host:port.
func NewRedisStore(redisAddr string) (KeyValueStore, func(), error) {
	opts, err := redis.ParseURL(redisAddr)
	if err != nil {
		opts = &redis.Options{
			Addr:         redisAddr,
			MinIdleConns: 1,
			MaxRetries:   3,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		}
	}

	client := redis.NewClient(opts)

	return &redisStore{
			client: client,
		}, func() {
			client.Close()
		}, nil
}

func (s *redisStore) Get(c context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(c, redisKeyPrefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("error getting key %s from redis: %w", key, err)
	}
	return value, true, nil
}

func (s *redisStore) Put(c context.Context, key string, value string) error {
	err := s.client.Set(c, redisKeyPrefix+key, value, 0).Err()
	if err != nil {
		return fmt.Errorf("error setting key %s in redis: %w", key, err)
	}
	return nil
}
