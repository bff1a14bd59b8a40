package memory

import (
	"time"

	"github.com/mohitkumar/playback/model"
	"github.com/mohitkumar/playback/persistence"
	c "github.com/patrickmn/go-cache"
)

var _ persistence.ActionDao = new(memoryMetadataStorage)
var _ persistence.TaskDao = new(memoryMetadataStorage)

type memoryMetadataStorage struct {
	actions *c.Cache
	tasks   *c.Cache
}

func NewMemoryMetadataStorage() *memoryMetadataStorage {
	return &memoryMetadataStorage{
		actions: c.New(c.NoExpiration, 10*time.Minute),
		tasks:   c.New(c.NoExpiration, 10*time.Minute),
	}
}

func (ms *memoryMetadataStorage) SaveAction(action model.Action) error {
	ms.actions.Set(action.Id, action, c.NoExpiration)
	return nil
}

func (ms *memoryMetadataStorage) DeleteAction(id string) error {
	ms.actions.Delete(id)
	return nil
}

func (ms *memoryMetadataStorage) GetAction(id string) (*model.Action, error) {
	v, found := ms.actions.Get(id)
	if !found {
		return nil, persistence.ErrNotFound
	}
	action := v.(model.Action)
	return &action, nil
}

// SaveTask stores a copy so later mutations by the caller are not visible.
func (ms *memoryMetadataStorage) SaveTask(task model.Task) error {
	ms.tasks.Set(task.Id, copyTask(task), c.NoExpiration)
	return nil
}

func (ms *memoryMetadataStorage) DeleteTask(id string) error {
	ms.tasks.Delete(id)
	return nil
}

func (ms *memoryMetadataStorage) GetTask(id string) (*model.Task, error) {
	v, found := ms.tasks.Get(id)
	if !found {
		return nil, persistence.ErrNotFound
	}
	task := copyTask(v.(model.Task))
	return &task, nil
}

func copyTask(task model.Task) model.Task {
	task.ActionIdList = append([]string(nil), task.ActionIdList...)
	task.Conditionals = append([]int(nil), task.Conditionals...)
	task.FastestTimeline = append([]float64(nil), task.FastestTimeline...)
	task.TimelineSamples = append([]int(nil), task.TimelineSamples...)
	task.EarlyResultAvailable = append([]bool(nil), task.EarlyResultAvailable...)
	task.LastConditionalResults = append([]bool(nil), task.LastConditionalResults...)
	return task
}
