package engine

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mohitkumar/playback/container"
	"github.com/mohitkumar/playback/controller"
	"github.com/mohitkumar/playback/logger"
	"github.com/mohitkumar/playback/model"
	"github.com/mohitkumar/playback/scheduler"
	"go.trai.ch/zerr"
	"go.uber.org/zap"
)

const TASK_COMPLETE string = "Task complete"
const TASK_NOT_FOUND string = "Task not found"
const TASK_CANCELLED string = "Task cancelled"
const ACTION_NOT_FOUND string = "Action not found"

var ErrTaskNotFound = zerr.New("task not found")
var ErrActionNotFound = zerr.New("action not found")

type Option func(*Engine)

func WithControllerOptions(opts ...controller.Option) Option {
	return func(e *Engine) {
		e.controllerOpts = append(e.controllerOpts, opts...)
	}
}

func WithSchedulerOptions(opts ...scheduler.Option) Option {
	return func(e *Engine) {
		e.schedulerOpts = append(e.schedulerOpts, opts...)
	}
}

// Engine plays tasks back. Each call to Play walks one task on the calling
// goroutine while prefetch schedulers run in the background.
type Engine struct {
	container      *container.DIContainer
	controller     *controller.ActionController
	controllerOpts []controller.Option
	schedulerOpts  []scheduler.Option
	clock          func() time.Time
}

func NewEngine(container *container.DIContainer, opts ...Option) *Engine {
	conf := container.Config.SchedulerConfig
	e := &Engine{
		container: container,
		clock:     time.Now,
		schedulerOpts: []scheduler.Option{
			scheduler.WithPollInterval(conf.PollInterval),
			scheduler.WithFinalResultTimeout(conf.FinalResultTimeout),
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	e.controller = controller.NewActionController(container.GetExecutor(), e.controllerOpts...)
	return e
}

// Report describes a finished playback.
type Report struct {
	TaskId     string
	RunId      string
	Processed  map[int]int
	Schedulers int
	LastStatus controller.Outcome
	Config     model.TaskConfig
}

// Execute plays the task and answers with the data payload of the API.
func (e *Engine) Execute(ctx context.Context, taskId string) map[string]string {
	_, err := e.Play(ctx, taskId)
	switch {
	case err == nil:
		return map[string]string{"data": TASK_COMPLETE}
	case ctx.Err() != nil:
		return map[string]string{"data": TASK_CANCELLED}
	default:
		logger.Error("task playback failed", zap.String("taskId", taskId), zap.Error(err))
		return map[string]string{"data": TASK_NOT_FOUND}
	}
}

// ExecuteAction runs a single action without prefetching.
func (e *Engine) ExecuteAction(ctx context.Context, actionId string) map[string]string {
	action, err := e.container.GetActionDao().GetAction(actionId)
	if err != nil {
		logger.Error("error loading action", zap.String("actionId", actionId), zap.Error(err))
		return map[string]string{"data": ACTION_NOT_FOUND}
	}
	out := e.controller.Run(ctx, *action, nil)
	return map[string]string{"data": out.Message}
}

// Play walks the task and persists what was learned about it.
func (e *Engine) Play(ctx context.Context, taskId string) (*Report, error) {
	p, err := e.load(taskId)
	if err != nil {
		return nil, err
	}
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	start := e.clock()
	logger.Info("starting playback", zap.String("taskId", taskId), zap.String("runId", p.runId), zap.Int("actions", len(p.actions)))
	p.state = RUNNING
	e.walk(runCtx, p)
	p.state = COMPLETED
	p.cancelSchedulers()

	p.task.TaskConfig = p.config
	if err := e.container.GetTaskDao().SaveTask(*p.task); err != nil {
		logger.Error("error saving task config", zap.String("taskId", taskId), zap.Error(err))
	}
	elapsed := e.clock().Sub(start)
	e.container.GetDataCollector().RecordRunComplete(taskId, p.runId, p.processed, elapsed)
	logger.Info("playback finished", zap.String("taskId", taskId), zap.String("runId", p.runId),
		zap.Stringer("state", p.state), zap.Duration("elapsed", elapsed))

	report := &Report{
		TaskId:     taskId,
		RunId:      p.runId,
		Processed:  p.processed,
		Schedulers: p.built,
		LastStatus: p.status,
		Config:     p.config,
	}
	if err := ctx.Err(); err != nil {
		return report, err
	}
	return report, nil
}

func (e *Engine) load(taskId string) (*playback, error) {
	task, err := e.container.GetTaskDao().GetTask(taskId)
	if err != nil {
		logger.Error("error loading task", zap.String("taskId", taskId), zap.Error(err))
		return nil, ErrTaskNotFound
	}
	if len(task.ActionIdList) == 0 {
		return nil, ErrTaskNotFound
	}
	actions := make([]model.Action, 0, len(task.ActionIdList))
	for _, id := range task.ActionIdList {
		action, err := e.container.GetActionDao().GetAction(id)
		if err != nil {
			return nil, zerr.With(zerr.With(ErrActionNotFound, "actionId", id), "taskId", taskId)
		}
		actions = append(actions, *action)
	}
	conf := task.TaskConfig
	if !conf.Matches(actions) {
		logger.Info("using default task config", zap.String("taskId", taskId))
		conf = model.NewDefaultTaskConfig(actions)
	}
	return newPlayback(uuid.NewString(), task, actions, conf), nil
}

func (e *Engine) jobCreationDeltaTime(task *model.Task) float64 {
	if task.JobCreationDeltaTime > 0 {
		return task.JobCreationDeltaTime
	}
	if d := e.container.Config.SchedulerConfig.JobCreationDeltaTime; d > 0 {
		return d
	}
	return task.GetJobCreationDeltaTime()
}

func (e *Engine) maxNumJobs(task *model.Task) int {
	if task.MaxNumJobs > 0 {
		return task.MaxNumJobs
	}
	if n := e.container.Config.SchedulerConfig.MaxNumJobs; n > 0 {
		return n
	}
	return task.GetMaxNumJobs()
}
