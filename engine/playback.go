package engine

import (
	"context"
	"strconv"
	"time"

	"github.com/mohitkumar/playback/controller"
	"github.com/mohitkumar/playback/logger"
	"github.com/mohitkumar/playback/metrics"
	"github.com/mohitkumar/playback/model"
	"github.com/mohitkumar/playback/scheduler"
	"go.uber.org/zap"
)

type PlaybackState int

const (
	NOT_STARTED PlaybackState = iota
	RUNNING
	COMPLETED
)

func (s PlaybackState) String() string {
	switch s {
	case RUNNING:
		return "running"
	case COMPLETED:
		return "completed"
	}
	return "not_started"
}

// playback is the walk state of one run of a task.
type playback struct {
	runId      string
	task       *model.Task
	actions    []model.Action
	config     model.TaskConfig
	schedulers []*scheduler.PrefetchScheduler
	index      int
	state      PlaybackState
	processed  map[int]int
	status     controller.Outcome
	built      int
}

func newPlayback(runId string, task *model.Task, actions []model.Action, conf model.TaskConfig) *playback {
	processed := make(map[int]int, len(actions))
	for i := range actions {
		processed[i] = 0
	}
	return &playback{
		runId:      runId,
		task:       task,
		actions:    actions,
		config:     conf,
		schedulers: make([]*scheduler.PrefetchScheduler, len(actions)),
		state:      NOT_STARTED,
		processed:  processed,
	}
}

func (p *playback) indexOf(actionId string) int {
	for i, a := range p.actions {
		if a.Id == actionId {
			return i
		}
	}
	return -1
}

func (p *playback) cancelSchedulers() {
	for _, s := range p.schedulers {
		if s != nil {
			s.CancelSchedule()
		}
	}
}

// buildSchedulers creates a scheduler for every conditional action from start
// on. Each one is due after the fastest known time of the unconditional
// actions before it.
func (e *Engine) buildSchedulers(ctx context.Context, p *playback, start int) {
	p.schedulers = make([]*scheduler.PrefetchScheduler, len(p.actions))
	delta := e.jobCreationDeltaTime(p.task)
	maxJobs := e.maxNumJobs(p.task)
	wait := 0.0
	for i := start; i < len(p.actions); i++ {
		action := p.actions[i]
		if !action.HasConditionals() {
			wait += p.config.FastestTimeline[i]
			continue
		}
		due := e.clock().Add(time.Duration(wait * float64(time.Second)))
		s := scheduler.New(ctx, action, due, delta, maxJobs, e.container.GetExecutor(),
			e.container.GetDispatcher(), e.container.GetResultCache(), e.schedulerOpts...)
		s.CreateJobSchedule()
		s.ExecuteJobSchedule()
		p.schedulers[i] = s
		p.built++
		wait = 0
	}
}

func (e *Engine) walk(ctx context.Context, p *playback) {
	e.buildSchedulers(ctx, p, 0)
	for p.index < len(p.actions) {
		if ctx.Err() != nil {
			logger.Warn("playback cancelled", zap.String("taskId", p.task.Id), zap.Int("index", p.index))
			return
		}
		i := p.index
		action := p.actions[i]
		p.index++
		p.processed[i]++

		var prefetched *bool
		if s := p.schedulers[i]; s != nil {
			prefetched = e.consult(ctx, p, i, s)
		}
		start := e.clock()
		out := e.controller.Run(ctx, action, prefetched)
		elapsed := e.clock().Sub(start)
		p.status = out
		e.learn(p, i, action, prefetched, out, elapsed)

		collector := e.container.GetDataCollector()
		if out.Err != nil {
			collector.RecordActionFailure(p.task.Id, p.runId, i, action.Id, out.Err.Error())
		}
		collector.RecordActionOutcome(p.task.Id, p.runId, i, action.Id, string(out.Result), out.Message, elapsed)

		if out.Result == model.RESULT_SKIP_TO_ID {
			target := p.indexOf(action.SkipToId)
			if target < 0 {
				logger.Warn("skip target not found, continuing", zap.String("actionId", action.Id), zap.String("skipToId", action.SkipToId))
				continue
			}
			logger.Debug("skipping", zap.String("actionId", action.Id), zap.Int("from", i), zap.Int("to", target))
			p.cancelSchedulers()
			e.buildSchedulers(ctx, p, target)
			p.index = target
		}
	}
}

// consult picks the prefetched outcome for action i, nil meaning none.
func (e *Engine) consult(ctx context.Context, p *playback, i int, s *scheduler.PrefetchScheduler) *bool {
	if p.config.EarlyResultAvailable[i] {
		if v, ok := s.GetLatestResult(ctx); ok {
			return &v
		}
		if len(s.Keys()) == 0 {
			return nil
		}
		s.ExecuteJobRetry()
		if v, ok := s.GetFinalResult(ctx); ok {
			return &v
		}
		return nil
	}

	latest, latestOk := s.GetLatestResult(ctx)
	final, finalOk := s.GetFinalResult(ctx)
	agree := latestOk && finalOk && latest == final
	p.config.EarlyResultAvailable[i] = agree
	metrics.Count(ctx, metrics.EarlyAgreements, metrics.KeyOutcome, strconv.FormatBool(agree))
	switch {
	case finalOk:
		return &final
	case latestOk:
		return &latest
	}
	return nil
}

func (e *Engine) learn(p *playback, i int, action model.Action, prefetched *bool, out controller.Outcome, elapsed time.Duration) {
	if action.HasConditionals() {
		used := out.Condition
		if prefetched != nil {
			used = *prefetched
		}
		p.config.LastConditionalResults[i] = used
	}
	if out.Err != nil {
		return
	}
	p.config.Observe(i, elapsed.Seconds())
}
