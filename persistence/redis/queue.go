package redis

import (
	"context"
	"errors"
	"strconv"
	"sync"

	rd "github.com/go-redis/redis/v9"
	"github.com/mohitkumar/playback/logger"
	"github.com/mohitkumar/playback/persistence"
	"github.com/spaolacci/murmur3"
	"go.uber.org/zap"
)

var _ persistence.Queue = new(redisQueue)

type redisQueue struct {
	*baseDao
	partitionCount   int
	mu               sync.Mutex
	currentPartition int
}

func NewRedisQueue(conf Config) *redisQueue {
	count := conf.PartitionCount
	if count < 1 {
		count = 1
	}
	return &redisQueue{
		baseDao:        newBaseDao(conf),
		partitionCount: count,
	}
}

func (rq *redisQueue) partitionOf(key string) int {
	return int(murmur3.Sum32([]byte(key)) % uint32(rq.partitionCount))
}

func (rq *redisQueue) Push(queueName string, key string, message []byte) error {
	partition := strconv.Itoa(rq.partitionOf(key))
	queueName = rq.getNamespaceKey(queueName, partition)
	ctx := context.Background()

	err := rq.redisClient.LPush(ctx, queueName, message).Err()
	if err != nil {
		logger.Error("error while push to redis list", zap.String("queue", queueName), zap.Error(err))
		return persistence.StorageLayerError{Message: err.Error()}
	}
	return nil
}

// Pop visits every partition at most once, starting after the partition the
// previous call ended on, until batchSize messages are collected.
func (rq *redisQueue) Pop(queueName string, batchSize int) ([]string, error) {
	result := make([]string, 0, batchSize)
	for i := 0; i < rq.partitionCount && len(result) < batchSize; i++ {
		partition := rq.getNextPartition()
		name := rq.getNamespaceKey(queueName, strconv.Itoa(partition))
		items, err := rq.pop(name, batchSize-len(result))
		if err != nil {
			return nil, err
		}
		result = append(result, items...)
	}
	return result, nil
}

func (rq *redisQueue) pop(queueName string, batchSize int) ([]string, error) {
	ctx := context.Background()
	res, err := rq.redisClient.RPopCount(ctx, queueName, batchSize).Result()
	if err != nil {
		if errors.Is(err, rd.Nil) {
			return []string{}, nil
		}
		logger.Error("error while pop from redis list", zap.String("queue", queueName), zap.Error(err))
		return nil, persistence.StorageLayerError{Message: err.Error()}
	}
	return res, nil
}

func (rq *redisQueue) getNextPartition() int {
	rq.mu.Lock()
	defer rq.mu.Unlock()
	rq.currentPartition = (rq.currentPartition + 1) % rq.partitionCount
	return rq.currentPartition
}
