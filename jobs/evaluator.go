package jobs

import (
	"context"
	"strconv"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/mohitkumar/playback/cache"
	"github.com/mohitkumar/playback/conditional"
	"github.com/mohitkumar/playback/executor"
	"github.com/mohitkumar/playback/logger"
	"github.com/mohitkumar/playback/metrics"
	"github.com/mohitkumar/playback/model"
	"go.trai.ch/zerr"
	"go.uber.org/zap"
)

// Evaluator runs one conditional job: it captures the screen data of the job's
// snapshot, evaluates the conditional and stores the outcome.
type Evaluator struct {
	exec          executor.Executor
	cache         cache.ResultCache
	maxRetries    int
	retryInterval time.Duration
}

func NewEvaluator(exec executor.Executor, resultCache cache.ResultCache, maxRetries int, retryInterval time.Duration) *Evaluator {
	return &Evaluator{
		exec:          exec,
		cache:         resultCache,
		maxRetries:    maxRetries,
		retryInterval: retryInterval,
	}
}

// Evaluate leaves the cache key unset when evaluation fails, readers then see
// the job as not finished.
func (e *Evaluator) Evaluate(ctx context.Context, job model.ConditionalJob) error {
	data, err := e.exec.CaptureConditionalData(ctx, job.Action, job.Snapshot)
	if err != nil {
		metrics.Count(ctx, metrics.JobsEvaluated, metrics.KeyOutcome, "error")
		return zerr.With(zerr.Wrap(err, "capture conditional data"), "cacheKey", job.CacheKey)
	}
	outcome, err := conditional.Evaluate(ctx, e.exec, job.Action, data)
	if err != nil {
		metrics.Count(ctx, metrics.JobsEvaluated, metrics.KeyOutcome, "error")
		return zerr.With(err, "cacheKey", job.CacheKey)
	}
	metrics.Count(ctx, metrics.JobsEvaluated, metrics.KeyOutcome, strconv.FormatBool(outcome))

	b := backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(e.retryInterval), uint64(e.maxRetries)), ctx)
	err = backoff.Retry(func() error {
		return e.cache.Set(ctx, job.CacheKey, outcome)
	}, b)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "store conditional result"), "cacheKey", job.CacheKey)
	}
	logger.Debug("conditional job evaluated", zap.String("scheduleId", job.ScheduleId), zap.String("cacheKey", job.CacheKey),
		zap.Bool("outcome", outcome), zap.Duration("lag", time.Since(job.DispatchedAt)))
	return nil
}
