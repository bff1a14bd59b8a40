package container

import (
	"sync"

	"github.com/mohitkumar/playback/analytics"
	"github.com/mohitkumar/playback/cache"
	"github.com/mohitkumar/playback/config"
	"github.com/mohitkumar/playback/executor"
	"github.com/mohitkumar/playback/jobs"
	"github.com/mohitkumar/playback/model"
	"github.com/mohitkumar/playback/persistence"
	"github.com/mohitkumar/playback/persistence/memory"
	rd "github.com/mohitkumar/playback/persistence/redis"
	"github.com/mohitkumar/playback/util"
)

type Option func(*DIContainer)

// WithExecutor replaces the executor built by Init.
func WithExecutor(exec executor.Executor) Option {
	return func(d *DIContainer) {
		d.executor = exec
	}
}

func WithDataCollector(collector analytics.RunDataCollector) Option {
	return func(d *DIContainer) {
		d.collector = collector
	}
}

// DIContainer owns the collaborators of the engine, chosen by configuration.
type DIContainer struct {
	initialized     bool
	Config          config.Config
	actionDao       persistence.ActionDao
	taskDao         persistence.TaskDao
	resultCache     cache.ResultCache
	queue           persistence.Queue
	executor        executor.Executor
	evaluator       *jobs.Evaluator
	dispatcher      jobs.Dispatcher
	localDispatcher *jobs.LocalDispatcher
	collector       analytics.RunDataCollector
	JobEncDec       util.EncoderDecoder[model.ConditionalJob]
}

func NewDiContainer(opts ...Option) *DIContainer {
	d := &DIContainer{}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *DIContainer) setInitialized() {
	d.initialized = true
}

// Init builds every collaborator. wg tracks the goroutines of the local
// evaluation pool, which still has to be started by the caller.
func (d *DIContainer) Init(conf config.Config, wg *sync.WaitGroup) error {
	defer d.setInitialized()
	d.Config = conf

	switch conf.EncoderDecoderType {
	default:
		d.JobEncDec = util.NewJsonEncoderDecoder[model.ConditionalJob]()
	}

	rdConf := rd.Config{
		Addrs:          conf.RedisConfig.Addrs,
		Namespace:      conf.RedisConfig.Namespace,
		PartitionCount: conf.WorkerConfig.PartitionCount,
		ResultTTL:      conf.RedisConfig.ResultTTL,
	}

	switch conf.StorageType {
	case config.STORAGE_TYPE_REDIS:
		storage := rd.NewRedisMetadataStorage(rdConf)
		d.actionDao = storage
		d.taskDao = storage
	default:
		storage := memory.NewMemoryMetadataStorage()
		d.actionDao = storage
		d.taskDao = storage
	}

	switch conf.CacheType {
	case config.CACHE_TYPE_REDIS:
		d.resultCache = rd.NewRedisResultCache(rdConf)
	default:
		d.resultCache = cache.NewMemoryResultCache(conf.RedisConfig.ResultTTL)
	}

	if d.executor == nil {
		d.executor = executor.NewDefaultExecutor()
	}
	d.evaluator = jobs.NewEvaluator(d.executor, d.resultCache, conf.WorkerConfig.MaxRetries, conf.WorkerConfig.RetryInterval)

	switch conf.QueueType {
	case config.QUEUE_TYPE_REDIS:
		d.queue = rd.NewRedisQueue(rdConf)
		d.dispatcher = jobs.NewQueueDispatcher(d.queue, d.JobEncDec)
	default:
		d.queue = memory.NewMemoryQueue()
		d.localDispatcher = jobs.NewLocalDispatcher(d.evaluator, conf.WorkerConfig.Capacity, conf.WorkerConfig.NumWorkers, wg)
		d.dispatcher = d.localDispatcher
	}

	if d.collector == nil {
		collector, err := analytics.NewDataCollector(conf.AnalyticsConfig)
		if err != nil {
			return err
		}
		d.collector = collector
	}

	if conf.FixturesFile != "" {
		if err := persistence.LoadFixtures(conf.FixturesFile, d.actionDao, d.taskDao); err != nil {
			return err
		}
	}
	return nil
}

func (d *DIContainer) check() {
	if !d.initialized {
		panic("container not initialized")
	}
}

func (d *DIContainer) GetActionDao() persistence.ActionDao {
	d.check()
	return d.actionDao
}

func (d *DIContainer) GetTaskDao() persistence.TaskDao {
	d.check()
	return d.taskDao
}

func (d *DIContainer) GetResultCache() cache.ResultCache {
	d.check()
	return d.resultCache
}

func (d *DIContainer) GetQueue() persistence.Queue {
	d.check()
	return d.queue
}

func (d *DIContainer) GetExecutor() executor.Executor {
	d.check()
	return d.executor
}

func (d *DIContainer) GetEvaluator() *jobs.Evaluator {
	d.check()
	return d.evaluator
}

func (d *DIContainer) GetDispatcher() jobs.Dispatcher {
	d.check()
	return d.dispatcher
}

// GetLocalDispatcher is nil unless jobs are evaluated in process.
func (d *DIContainer) GetLocalDispatcher() *jobs.LocalDispatcher {
	d.check()
	return d.localDispatcher
}

func (d *DIContainer) GetDataCollector() analytics.RunDataCollector {
	d.check()
	return d.collector
}
