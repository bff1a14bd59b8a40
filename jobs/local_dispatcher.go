package jobs

import (
	"context"
	"fmt"
	"sync"

	"github.com/mohitkumar/playback/logger"
	"github.com/mohitkumar/playback/model"
	"github.com/mohitkumar/playback/util"
)

var _ Dispatcher = new(LocalDispatcher)
var _ Runner = new(LocalDispatcher)

// LocalDispatcher evaluates jobs on an in-process worker pool.
type LocalDispatcher struct {
	evaluator   *Evaluator
	capacity    int
	concurrency int
	worker      *util.Worker
	wg          *sync.WaitGroup
	ctx         context.Context
	cancel      context.CancelFunc
}

func NewLocalDispatcher(evaluator *Evaluator, capacity int, concurrency int, wg *sync.WaitGroup) *LocalDispatcher {
	ctx, cancel := context.WithCancel(context.Background())
	return &LocalDispatcher{
		evaluator:   evaluator,
		capacity:    capacity,
		concurrency: concurrency,
		wg:          wg,
		ctx:         ctx,
		cancel:      cancel,
	}
}

func (d *LocalDispatcher) handler(task util.Task) error {
	job, ok := task.(model.ConditionalJob)
	if !ok {
		return fmt.Errorf("can not handle task of type other than model.ConditionalJob")
	}
	return d.evaluator.Evaluate(d.ctx, job)
}

func (d *LocalDispatcher) Start() error {
	d.worker = util.NewWorker("conditional-evaluator", d.wg, d.handler, d.capacity, d.concurrency)
	d.worker.Start()
	logger.Info("local dispatcher started")
	return nil
}

func (d *LocalDispatcher) Stop() error {
	d.cancel()
	d.worker.Stop()
	return nil
}

func (d *LocalDispatcher) Name() string {
	return "local-dispatcher"
}

func (d *LocalDispatcher) Submit(ctx context.Context, job model.ConditionalJob) error {
	select {
	case d.worker.Sender() <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
