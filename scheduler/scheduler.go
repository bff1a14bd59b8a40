package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mohitkumar/playback/cache"
	"github.com/mohitkumar/playback/executor"
	"github.com/mohitkumar/playback/jobs"
	"github.com/mohitkumar/playback/logger"
	"github.com/mohitkumar/playback/metrics"
	"github.com/mohitkumar/playback/model"
	"go.uber.org/zap"
)

const DEFAULT_POLL_INTERVAL = 10 * time.Millisecond
const DEFAULT_FINAL_RESULT_TIMEOUT = 30 * time.Second

type Option func(*PrefetchScheduler)

// WithClock replaces time.Now, mostly for tests.
func WithClock(clock func() time.Time) Option {
	return func(s *PrefetchScheduler) {
		s.clock = clock
	}
}

func WithPollInterval(interval time.Duration) Option {
	return func(s *PrefetchScheduler) {
		if interval > 0 {
			s.pollInterval = interval
		}
	}
}

// WithFinalResultTimeout bounds GetFinalResult. Zero disables the bound.
func WithFinalResultTimeout(timeout time.Duration) Option {
	return func(s *PrefetchScheduler) {
		s.finalTimeout = timeout
	}
}

// PrefetchScheduler evaluates one action's conditional ahead of time. Jobs are
// spread backwards from the due date, each one writing its outcome to the
// result cache under "{scheduleId}-{index}".
type PrefetchScheduler struct {
	scheduleId   string
	action       model.Action
	started      time.Time
	due          time.Time
	delta        time.Duration
	maxJobs      int
	exec         executor.Executor
	dispatcher   jobs.Dispatcher
	cache        cache.ResultCache
	clock        func() time.Time
	pollInterval time.Duration
	finalTimeout time.Duration

	mu       sync.Mutex
	schedule []time.Time
	keys     []string

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New binds a scheduler to action. delta is job_creation_delta_time in
// seconds. The scheduler is cancelled together with ctx.
func New(ctx context.Context, action model.Action, due time.Time, delta float64, maxJobs int,
	exec executor.Executor, dispatcher jobs.Dispatcher, resultCache cache.ResultCache, opts ...Option) *PrefetchScheduler {
	s := &PrefetchScheduler{
		scheduleId:   uuid.NewString(),
		action:       action,
		due:          due,
		delta:        time.Duration(delta * float64(time.Second)),
		maxJobs:      maxJobs,
		exec:         exec,
		dispatcher:   dispatcher,
		cache:        resultCache,
		clock:        time.Now,
		pollInterval: DEFAULT_POLL_INTERVAL,
		finalTimeout: DEFAULT_FINAL_RESULT_TIMEOUT,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.started = s.clock()
	s.ctx, s.cancel = context.WithCancel(ctx)
	return s
}

func (s *PrefetchScheduler) ScheduleId() string {
	return s.scheduleId
}

func (s *PrefetchScheduler) Due() time.Time {
	return s.due
}

func (s *PrefetchScheduler) key(i int) string {
	return fmt.Sprintf("%s-%d", s.scheduleId, i)
}

// CreateJobSchedule computes due - k*delta for k in [0, maxJobs) and keeps the
// instants still in the future, in ascending order.
func (s *PrefetchScheduler) CreateJobSchedule() []time.Time {
	now := s.clock()
	var reversed []time.Time
	for k := 0; k < s.maxJobs; k++ {
		t := s.due.Add(-time.Duration(k) * s.delta)
		if !t.After(now) {
			break
		}
		reversed = append(reversed, t)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schedule = make([]time.Time, 0, len(reversed))
	s.keys = make([]string, 0, len(reversed))
	for i := len(reversed) - 1; i >= 0; i-- {
		s.keys = append(s.keys, s.key(len(s.schedule)))
		s.schedule = append(s.schedule, reversed[i])
	}
	logger.Debug("job schedule created", zap.String("scheduleId", s.scheduleId), zap.String("actionId", s.action.Id),
		zap.Int("jobs", len(s.schedule)), zap.Time("due", s.due))
	return append([]time.Time(nil), s.schedule...)
}

func (s *PrefetchScheduler) JobSchedule() []time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]time.Time(nil), s.schedule...)
}

func (s *PrefetchScheduler) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.keys...)
}

// ExecuteJobSchedule dispatches the schedule from a single goroutine. It
// returns immediately.
func (s *PrefetchScheduler) ExecuteJobSchedule() {
	s.mu.Lock()
	schedule := append([]time.Time(nil), s.schedule...)
	keys := append([]string(nil), s.keys...)
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for i, at := range schedule {
			if !s.sleepUntil(at) || s.ctx.Err() != nil {
				s.skipped(len(schedule) - i)
				return
			}
			s.dispatch(keys[i])
		}
	}()
}

// ExecuteJobRetry appends one job due now and dispatches it right away.
func (s *PrefetchScheduler) ExecuteJobRetry() {
	s.mu.Lock()
	key := s.key(len(s.keys))
	s.keys = append(s.keys, key)
	s.schedule = append(s.schedule, s.clock())
	s.mu.Unlock()
	s.dispatch(key)
}

// CancelSchedule stops further dispatches. Jobs already handed to the
// dispatcher still complete and write their results.
func (s *PrefetchScheduler) CancelSchedule() {
	s.cancel()
}

// Wait blocks until the dispatch goroutine has exited.
func (s *PrefetchScheduler) Wait() {
	s.wg.Wait()
}

func (s *PrefetchScheduler) sleepUntil(at time.Time) bool {
	d := at.Sub(s.clock())
	if d <= 0 {
		return true
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-s.ctx.Done():
		return false
	}
}

func (s *PrefetchScheduler) dispatch(key string) {
	if s.ctx.Err() != nil {
		s.skipped(1)
		return
	}
	snapshot, err := s.exec.Snapshot(s.ctx)
	if err != nil {
		logger.Warn("snapshot failed, job will capture its own", zap.String("scheduleId", s.scheduleId), zap.Error(err))
		snapshot = ""
	}
	job := model.ConditionalJob{
		ScheduleId:   s.scheduleId,
		CacheKey:     key,
		Snapshot:     snapshot,
		Action:       s.action,
		DispatchedAt: s.clock(),
	}
	if err := s.dispatcher.Submit(s.ctx, job); err != nil {
		logger.Error("error submitting conditional job", zap.String("cacheKey", key), zap.Error(err))
		return
	}
	metrics.Count(s.ctx, metrics.JobsDispatched, metrics.KeyFunction, string(s.action.Function))
}

func (s *PrefetchScheduler) skipped(n int) {
	for i := 0; i < n; i++ {
		metrics.Count(context.Background(), metrics.JobsSkipped, metrics.KeyFunction, string(s.action.Function))
	}
	logger.Debug("schedule cancelled", zap.String("scheduleId", s.scheduleId), zap.Int("skipped", n))
}

// GetLatestResult returns the newest result already in the cache.
func (s *PrefetchScheduler) GetLatestResult(ctx context.Context) (bool, bool) {
	keys := s.Keys()
	for i := len(keys) - 1; i >= 0; i-- {
		if v, ok := s.cache.Get(ctx, keys[i]); ok {
			metrics.Count(ctx, metrics.CacheLookups, metrics.KeyOutcome, "latest_hit")
			return v, true
		}
	}
	metrics.Count(ctx, metrics.CacheLookups, metrics.KeyOutcome, "latest_miss")
	return false, false
}

// GetFinalResult polls until the last job's result is in the cache. It gives
// up with absent when the schedule is empty, the timeout elapses or ctx is
// done.
func (s *PrefetchScheduler) GetFinalResult(ctx context.Context) (bool, bool) {
	keys := s.Keys()
	if len(keys) == 0 {
		return false, false
	}
	last := keys[len(keys)-1]
	if s.finalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.finalTimeout)
		defer cancel()
	}
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()
	for {
		if v, ok := s.cache.Get(ctx, last); ok {
			metrics.Count(ctx, metrics.CacheLookups, metrics.KeyOutcome, "final_hit")
			return v, true
		}
		select {
		case <-ticker.C:
		case <-ctx.Done():
			logger.Warn("final result not available", zap.String("scheduleId", s.scheduleId), zap.String("actionId", s.action.Id))
			metrics.Count(context.Background(), metrics.CacheLookups, metrics.KeyOutcome, "final_miss")
			return false, false
		}
	}
}
