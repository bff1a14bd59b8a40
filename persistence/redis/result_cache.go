package redis

import (
	"context"
	"errors"
	"strconv"
	"time"

	rd "github.com/go-redis/redis/v9"
	"github.com/mohitkumar/playback/cache"
	"github.com/mohitkumar/playback/logger"
	"github.com/mohitkumar/playback/persistence"
	"go.uber.org/zap"
)

var _ cache.ResultCache = new(redisResultCache)

type redisResultCache struct {
	*baseDao
	ttl time.Duration
}

func NewRedisResultCache(conf Config) *redisResultCache {
	return &redisResultCache{
		baseDao: newBaseDao(conf),
		ttl:     conf.ResultTTL,
	}
}

func (rc *redisResultCache) Set(ctx context.Context, key string, value bool) error {
	redisKey := rc.getNamespaceKey(persistence.RESULT_KEY, key)
	if err := rc.redisClient.Set(ctx, redisKey, strconv.FormatBool(value), rc.ttl).Err(); err != nil {
		logger.Error("error in saving conditional result", zap.String("key", key), zap.Error(err))
		return persistence.StorageLayerError{Message: err.Error()}
	}
	return nil
}

func (rc *redisResultCache) Get(ctx context.Context, key string) (bool, bool) {
	redisKey := rc.getNamespaceKey(persistence.RESULT_KEY, key)
	val, err := rc.redisClient.Get(ctx, redisKey).Result()
	if err != nil {
		if !errors.Is(err, rd.Nil) {
			logger.Warn("error in reading conditional result", zap.String("key", key), zap.Error(err))
		}
		return false, false
	}
	res, err := strconv.ParseBool(val)
	if err != nil {
		logger.Warn("malformed conditional result", zap.String("key", key), zap.String("value", val))
		return false, false
	}
	return res, true
}
