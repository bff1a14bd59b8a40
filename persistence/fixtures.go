package persistence

import (
	"os"

	"github.com/mohitkumar/playback/model"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var ErrUnknownActionReference = zerr.New("task references unknown action")

// Fixtures is the yaml document used to seed a store with actions and tasks.
type Fixtures struct {
	Actions []model.Action `yaml:"actions"`
	Tasks   []model.Task   `yaml:"tasks"`
}

func LoadFixtures(fileName string, actionDao ActionDao, taskDao TaskDao) error {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return err
	}
	return SeedFixtures(data, actionDao, taskDao)
}

func SeedFixtures(data []byte, actionDao ActionDao, taskDao TaskDao) error {
	var fixtures Fixtures
	if err := yaml.Unmarshal(data, &fixtures); err != nil {
		return err
	}
	known := make(map[string]bool, len(fixtures.Actions))
	for _, action := range fixtures.Actions {
		if err := action.Validate(); err != nil {
			return err
		}
		if err := actionDao.SaveAction(action); err != nil {
			return err
		}
		known[action.Id] = true
	}
	for _, task := range fixtures.Tasks {
		for _, id := range task.ActionIdList {
			if !known[id] {
				if _, err := actionDao.GetAction(id); err != nil {
					return zerr.With(zerr.With(ErrUnknownActionReference, "taskId", task.Id), "actionId", id)
				}
			}
		}
		if err := taskDao.SaveTask(task); err != nil {
			return err
		}
	}
	return nil
}
