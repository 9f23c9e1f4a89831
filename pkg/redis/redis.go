package redis

import (
	"context"
	"errors"
	"fmt"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"os"
	"strconv"
	"time"
)

// ErrNotFound is returned when no snapshot is cached for a session.
var ErrNotFound = errors.New("metrics snapshot not found")

const metricsKeyPrefix = "interview:metrics:"

type IRedis interface {
	SetSessionMetrics(ctx context.Context, sessionID string, payload []byte, expiration time.Duration) error
	GetSessionMetrics(ctx context.Context, sessionID string) ([]byte, error)
	DeleteSessionMetrics(ctx context.Context, sessionID string) error
}

type redisClient struct {
	client *redis.Client
}

func New() IRedis {
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

	return &redisClient{client: client}
}

func (r *redisClient) SetSessionMetrics(ctx context.Context, sessionID string, payload []byte, expiration time.Duration) error {
	err := r.client.Set(ctx, metricsKeyPrefix+sessionID, payload, expiration).Err()
	if err != nil {
		logrus.Error(fmt.Sprintf("Error caching metrics for session %s: %v", sessionID, err))
		return err
	}
	return nil
}

func (r *redisClient) GetSessionMetrics(ctx context.Context, sessionID string) ([]byte, error) {
	val, err := r.client.Get(ctx, metricsKeyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	} else if err != nil {
		logrus.Error(fmt.Sprintf("Error reading metrics for session %s: %v", sessionID, err))
		return nil, err
	}
	return val, nil
}

func (r *redisClient) DeleteSessionMetrics(ctx context.Context, sessionID string) error {
	if _, err := r.client.Del(ctx, metricsKeyPrefix+sessionID).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Error deleting metrics for session %s: %v", sessionID, err))
		return err
	}
	return nil
}
