package agent

import (
	"context"
	"sync"

	"github.com/mohitkumar/playback/config"
	"github.com/mohitkumar/playback/container"
	"github.com/mohitkumar/playback/engine"
	"github.com/mohitkumar/playback/jobs"
	"github.com/mohitkumar/playback/logger"
	"github.com/mohitkumar/playback/metrics"
	"github.com/mohitkumar/playback/rest"
	"go.uber.org/zap"
)

type Mode string

// MODE_SERVE exposes the HTTP API, MODE_WORKER only consumes the job queue and
// MODE_RUN plays tasks from the command line.
const MODE_SERVE Mode = "serve"
const MODE_WORKER Mode = "worker"
const MODE_RUN Mode = "run"

type Agent struct {
	Config       config.Config
	mode         Mode
	opts         []container.Option
	container    *container.DIContainer
	engine       *engine.Engine
	httpServer   *rest.Server
	runners      []jobs.Runner
	shutdown     bool
	shutdowns    chan struct{}
	shutdownLock sync.Mutex
	wg           sync.WaitGroup
}

func New(config config.Config, mode Mode, opts ...container.Option) (*Agent, error) {
	a := &Agent{
		Config:    config,
		mode:      mode,
		opts:      opts,
		shutdowns: make(chan struct{}),
	}
	setup := []func() error{
		a.setupMetrics,
		a.setupContainer,
		a.setupRunners,
		a.setupEngine,
		a.setupHttpServer,
	}
	for _, fn := range setup {
		if err := fn(); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func (a *Agent) setupMetrics() error {
	return metrics.Register()
}

func (a *Agent) setupContainer() error {
	a.container = container.NewDiContainer(a.opts...)
	return a.container.Init(a.Config, &a.wg)
}

func (a *Agent) setupRunners() error {
	if ld := a.container.GetLocalDispatcher(); ld != nil && a.mode != MODE_WORKER {
		a.runners = append(a.runners, ld)
	}
	if a.mode == MODE_WORKER {
		wc := a.Config.WorkerConfig
		consumer := jobs.NewQueueConsumer(a.container.GetQueue(), a.container.JobEncDec, a.container.GetEvaluator(),
			wc.BatchSize, wc.NumWorkers, wc.PollInterval, &a.wg)
		a.runners = append(a.runners, consumer)
	}
	return nil
}

func (a *Agent) setupEngine() error {
	a.engine = engine.NewEngine(a.container)
	return nil
}

func (a *Agent) setupHttpServer() error {
	if a.mode != MODE_SERVE {
		return nil
	}
	var err error
	a.httpServer, err = rest.NewServer(a.Config.HttpPort, a.Config.AllowedOrigins, a.engine, a.container.GetTaskDao(), a.container.GetActionDao())
	return err
}

func (a *Agent) Start() error {
	for _, r := range a.runners {
		if err := r.Start(); err != nil {
			return err
		}
		logger.Info("started", zap.String("runner", r.Name()))
	}
	if a.httpServer != nil {
		go func() {
			if err := a.httpServer.Start(); err != nil {
				logger.Error("http server failed", zap.Error(err))
				_ = a.Shutdown()
			}
		}()
	}
	return nil
}

// Run plays one task, MODE_RUN only needs this after Start.
func (a *Agent) Run(ctx context.Context, taskId string) map[string]string {
	return a.engine.Execute(ctx, taskId)
}

// Done is closed once Shutdown has begun.
func (a *Agent) Done() <-chan struct{} {
	return a.shutdowns
}

func (a *Agent) Shutdown() error {
	logger.Info("shutting down agent", zap.String("mode", string(a.mode)))
	a.shutdownLock.Lock()
	defer a.shutdownLock.Unlock()
	if a.shutdown {
		return nil
	}
	a.shutdown = true
	close(a.shutdowns)

	var shutdown []func() error
	if a.httpServer != nil {
		shutdown = append(shutdown, a.httpServer.Stop)
	}
	for _, r := range a.runners {
		shutdown = append(shutdown, r.Stop)
	}
	shutdown = append(shutdown, a.container.GetDataCollector().Close)
	for _, fn := range shutdown {
		if err := fn(); err != nil {
			return err
		}
	}
	logger.Info("waiting for all services to shutdown...")
	a.wg.Wait()
	metrics.Unregister()
	_ = logger.Sync()
	return nil
}
