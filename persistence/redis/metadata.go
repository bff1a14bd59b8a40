package redis

import (
	"context"
	"errors"

	rd "github.com/go-redis/redis/v9"
	"github.com/mohitkumar/playback/logger"
	"github.com/mohitkumar/playback/model"
	"github.com/mohitkumar/playback/persistence"
	"github.com/mohitkumar/playback/util"
	"go.uber.org/zap"
)

var _ persistence.ActionDao = new(redisMetadataStorage)
var _ persistence.TaskDao = new(redisMetadataStorage)

type redisMetadataStorage struct {
	*baseDao
	actionEncoderDecoder util.EncoderDecoder[model.Action]
	taskEncoderDecoder   util.EncoderDecoder[model.Task]
}

func NewRedisMetadataStorage(conf Config) *redisMetadataStorage {
	return &redisMetadataStorage{
		baseDao:              newBaseDao(conf),
		actionEncoderDecoder: util.NewJsonEncoderDecoder[model.Action](),
		taskEncoderDecoder:   util.NewJsonEncoderDecoder[model.Task](),
	}
}

func (rs *redisMetadataStorage) SaveAction(action model.Action) error {
	data, err := rs.actionEncoderDecoder.Encode(action)
	if err != nil {
		return err
	}
	key := rs.getNamespaceKey(persistence.ACTION_KEY)
	ctx := context.Background()
	if err := rs.redisClient.HSet(ctx, key, []string{action.Id, string(data)}).Err(); err != nil {
		logger.Error("error in saving action", zap.String("actionId", action.Id), zap.Error(err))
		return persistence.StorageLayerError{Message: err.Error()}
	}
	return nil
}

func (rs *redisMetadataStorage) DeleteAction(id string) error {
	key := rs.getNamespaceKey(persistence.ACTION_KEY)
	ctx := context.Background()
	if err := rs.redisClient.HDel(ctx, key, id).Err(); err != nil {
		logger.Error("error in deleting action", zap.String("actionId", id), zap.Error(err))
		return persistence.StorageLayerError{Message: err.Error()}
	}
	return nil
}

func (rs *redisMetadataStorage) GetAction(id string) (*model.Action, error) {
	key := rs.getNamespaceKey(persistence.ACTION_KEY)
	ctx := context.Background()
	actionStr, err := rs.redisClient.HGet(ctx, key, id).Result()
	if err != nil {
		if errors.Is(err, rd.Nil) {
			return nil, persistence.ErrNotFound
		}
		logger.Error("error in getting action", zap.String("actionId", id), zap.Error(err))
		return nil, persistence.StorageLayerError{Message: err.Error()}
	}
	return rs.actionEncoderDecoder.Decode([]byte(actionStr))
}

func (rs *redisMetadataStorage) SaveTask(task model.Task) error {
	data, err := rs.taskEncoderDecoder.Encode(task)
	if err != nil {
		return err
	}
	key := rs.getNamespaceKey(persistence.TASK_KEY)
	ctx := context.Background()
	if err := rs.redisClient.HSet(ctx, key, []string{task.Id, string(data)}).Err(); err != nil {
		logger.Error("error in saving task", zap.String("taskId", task.Id), zap.Error(err))
		return persistence.StorageLayerError{Message: err.Error()}
	}
	return nil
}

func (rs *redisMetadataStorage) DeleteTask(id string) error {
	key := rs.getNamespaceKey(persistence.TASK_KEY)
	ctx := context.Background()
	if err := rs.redisClient.HDel(ctx, key, id).Err(); err != nil {
		logger.Error("error in deleting task", zap.String("taskId", id), zap.Error(err))
		return persistence.StorageLayerError{Message: err.Error()}
	}
	return nil
}

func (rs *redisMetadataStorage) GetTask(id string) (*model.Task, error) {
	key := rs.getNamespaceKey(persistence.TASK_KEY)
	ctx := context.Background()
	taskStr, err := rs.redisClient.HGet(ctx, key, id).Result()
	if err != nil {
		if errors.Is(err, rd.Nil) {
			return nil, persistence.ErrNotFound
		}
		logger.Error("error in getting task", zap.String("taskId", id), zap.Error(err))
		return nil, persistence.StorageLayerError{Message: err.Error()}
	}
	return rs.taskEncoderDecoder.Decode([]byte(taskStr))
}
