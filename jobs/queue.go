package jobs

import (
	"context"
	"sync"
	"time"

	"github.com/mohitkumar/playback/logger"
	"github.com/mohitkumar/playback/model"
	"github.com/mohitkumar/playback/persistence"
	"github.com/mohitkumar/playback/util"
	"go.trai.ch/zerr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var _ Dispatcher = new(QueueDispatcher)

// QueueDispatcher pushes jobs to a shared queue so that evaluation can run in
// separate worker processes.
type QueueDispatcher struct {
	queue  persistence.Queue
	encDec util.EncoderDecoder[model.ConditionalJob]
}

func NewQueueDispatcher(queue persistence.Queue, encDec util.EncoderDecoder[model.ConditionalJob]) *QueueDispatcher {
	return &QueueDispatcher{
		queue:  queue,
		encDec: encDec,
	}
}

func (d *QueueDispatcher) Submit(ctx context.Context, job model.ConditionalJob) error {
	data, err := d.encDec.Encode(job)
	if err != nil {
		return zerr.Wrap(err, "encode conditional job")
	}
	if err := d.queue.Push(persistence.JOB_QUEUE, job.CacheKey, data); err != nil {
		return zerr.With(err, "cacheKey", job.CacheKey)
	}
	return nil
}

var _ Runner = new(QueueConsumer)

// QueueConsumer polls the job queue and evaluates each popped batch with at
// most concurrency jobs in flight.
type QueueConsumer struct {
	queue        persistence.Queue
	encDec       util.EncoderDecoder[model.ConditionalJob]
	evaluator    *Evaluator
	batchSize    int
	concurrency  int
	pollInterval time.Duration
	wg           *sync.WaitGroup
	stop         chan struct{}
	ctx          context.Context
	cancel       context.CancelFunc
	tw           *util.TickWorker
}

func NewQueueConsumer(queue persistence.Queue, encDec util.EncoderDecoder[model.ConditionalJob], evaluator *Evaluator,
	batchSize int, concurrency int, pollInterval time.Duration, wg *sync.WaitGroup) *QueueConsumer {
	if concurrency < 1 {
		concurrency = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &QueueConsumer{
		queue:        queue,
		encDec:       encDec,
		evaluator:    evaluator,
		batchSize:    batchSize,
		concurrency:  concurrency,
		pollInterval: pollInterval,
		wg:           wg,
		stop:         make(chan struct{}),
		ctx:          ctx,
		cancel:       cancel,
	}
}

func (c *QueueConsumer) poll() {
	res, err := c.queue.Pop(persistence.JOB_QUEUE, c.batchSize)
	if err != nil {
		logger.Error("error while polling job queue", zap.Error(err))
		return
	}
	if len(res) == 0 {
		return
	}
	g, ctx := errgroup.WithContext(c.ctx)
	g.SetLimit(c.concurrency)
	for _, r := range res {
		job, err := c.encDec.Decode([]byte(r))
		if err != nil {
			logger.Error("can not decode conditional job", zap.Error(err))
			continue
		}
		g.Go(func() error {
			if err := c.evaluator.Evaluate(ctx, *job); err != nil {
				logger.Error("conditional job failed", zap.String("cacheKey", job.CacheKey), zap.Error(err))
			}
			return nil
		})
	}
	_ = g.Wait()
}

func (c *QueueConsumer) Start() error {
	c.tw = util.NewTickWorker("queue-consumer", c.pollInterval, c.stop, c.poll, c.wg)
	c.tw.Start()
	logger.Info("queue consumer started", zap.Int("concurrency", c.concurrency))
	return nil
}

func (c *QueueConsumer) Stop() error {
	c.cancel()
	c.tw.Stop()
	return nil
}

func (c *QueueConsumer) Name() string {
	return "queue-consumer"
}
