package redis

import (
	"StudentPlanner/pkg/kv"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// New returns a kv.Store backed by a Redis instance, for setups where the
// planner data should outlive the local filesystem.
func New() kv.Store {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		logrus.Info("Successfully connected to Redis")
	}

	return &redisStore{client: client}
}

type redisStore struct {
	client *redis.Client
}

func (r *redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		logrus.Debug(fmt.Sprintf("Record not found for key %s", key))
		return nil, kv.ErrKeyNotFound
	} else if err != nil {
		logrus.Error(fmt.Sprintf("Error getting record for key %s: %v", key, err))
		return nil, err
	}

	return val, nil
}

func (r *redisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		logrus.Error(fmt.Sprintf("Error setting record for key %s: %v", key, err))
		return err
	}

	return nil
}

func (r *redisStore) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		logrus.Error(fmt.Sprintf("Error deleting record for key %s: %v", key, err))
		return err
	}

	return nil
}
