package persistence

import (
	"fmt"

	"github.com/mohitkumar/playback/model"
	"go.trai.ch/zerr"
)

type StorageLayerError struct {
	Message string
}

func (e StorageLayerError) Error() string {
	return fmt.Sprintf("storage layer error %s", e.Message)
}

var ErrNotFound = zerr.New("entity not found")

const ACTION_KEY string = "ACTION"
const TASK_KEY string = "TASK"
const RESULT_KEY string = "RESULT"
const JOB_QUEUE string = "CONDITIONAL_JOBS"

type ActionDao interface {
	SaveAction(action model.Action) error
	DeleteAction(id string) error
	GetAction(id string) (*model.Action, error)
}

type TaskDao interface {
	SaveTask(task model.Task) error
	DeleteTask(id string) error
	GetTask(id string) (*model.Task, error)
}

// Queue is a partitioned list of messages. key picks the partition a message
// lands in, Pop drains partitions round robin.
type Queue interface {
	Push(queueName string, key string, message []byte) error
	Pop(queueName string, batchSize int) ([]string, error)
}
