package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mohitkumar/playback/agent"
	"github.com/mohitkumar/playback/analytics"
	"github.com/mohitkumar/playback/config"
	"github.com/mohitkumar/playback/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type cfg struct {
	config.Config
	Development bool
}

type cli struct {
	cfg cfg
}

func setupFlags(cmd *cobra.Command) error {
	d := config.DefaultConfig()
	flags := cmd.PersistentFlags()
	flags.String("config-file", "", "Path to config file.")
	flags.String("redis-addr", strings.Join(d.RedisConfig.Addrs, ","), "comma separated list of redis host:port")
	flags.String("namespace", d.RedisConfig.Namespace, "namespace used in storage")
	flags.Duration("result-ttl", d.RedisConfig.ResultTTL, "expiry of prefetched conditional results, 0 keeps them")
	flags.Int("http-port", d.HttpPort, "http port for rest endpoints")
	flags.String("allowed-origins", strings.Join(d.AllowedOrigins, ","), "comma separated origins allowed by cors")
	flags.String("storage-impl", string(d.StorageType), "implementation of action and task storage (redis|memory)")
	flags.String("cache-impl", string(d.CacheType), "implementation of the result cache (redis|memory)")
	flags.String("queue-impl", string(d.QueueType), "how prefetch jobs reach evaluation workers (redis|memory)")
	flags.String("encoder-decoder", string(d.EncoderDecoderType), "encoder decoder used to serialize jobs")
	flags.Int("workers", d.WorkerConfig.NumWorkers, "number of concurrent conditional evaluations")
	flags.Int("worker-capacity", d.WorkerConfig.Capacity, "pending jobs buffered by the in process pool")
	flags.Int("partitions", d.WorkerConfig.PartitionCount, "partitions of the redis job queue")
	flags.Int("batch-size", d.WorkerConfig.BatchSize, "jobs popped from the queue per poll")
	flags.Duration("worker-poll-interval", d.WorkerConfig.PollInterval, "job queue poll interval")
	flags.Int("max-retries", d.WorkerConfig.MaxRetries, "retries of a failed result write")
	flags.Duration("retry-interval", d.WorkerConfig.RetryInterval, "interval between result write retries")
	flags.Duration("scheduler-poll-interval", d.SchedulerConfig.PollInterval, "poll interval while waiting for a final result")
	flags.Duration("final-result-timeout", d.SchedulerConfig.FinalResultTimeout, "longest wait for a final result, 0 waits forever")
	flags.Float64("job-creation-delta-time", d.SchedulerConfig.JobCreationDeltaTime, "default seconds between prefetch jobs")
	flags.Int("max-num-jobs", d.SchedulerConfig.MaxNumJobs, "default prefetch jobs per conditional action")
	flags.String("fixtures-file", "", "yaml file of actions and tasks loaded at startup")
	flags.String("analytics-file", "", "file receiving per action run records")
	flags.String("log-level", d.LogLevel, "log level")
	flags.Bool("development", false, "human readable logs")
	return viper.BindPFlags(flags)
}

func (c *cli) setupConfig(cmd *cobra.Command, args []string) error {
	viper.SetEnvPrefix("playback")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	configFile := viper.GetString("config-file")
	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return err
			}
		}
	}

	c.cfg.Config = config.DefaultConfig()
	c.cfg.RedisConfig.Addrs = strings.Split(viper.GetString("redis-addr"), ",")
	c.cfg.RedisConfig.Namespace = viper.GetString("namespace")
	c.cfg.RedisConfig.ResultTTL = viper.GetDuration("result-ttl")
	c.cfg.HttpPort = viper.GetInt("http-port")
	c.cfg.AllowedOrigins = strings.Split(viper.GetString("allowed-origins"), ",")
	c.cfg.StorageType = config.StorageType(viper.GetString("storage-impl"))
	c.cfg.CacheType = config.CacheType(viper.GetString("cache-impl"))
	c.cfg.QueueType = config.QueueType(viper.GetString("queue-impl"))
	c.cfg.EncoderDecoderType = config.EncoderDecoderType(viper.GetString("encoder-decoder"))
	c.cfg.WorkerConfig.NumWorkers = viper.GetInt("workers")
	c.cfg.WorkerConfig.Capacity = viper.GetInt("worker-capacity")
	c.cfg.WorkerConfig.PartitionCount = viper.GetInt("partitions")
	c.cfg.WorkerConfig.BatchSize = viper.GetInt("batch-size")
	c.cfg.WorkerConfig.PollInterval = viper.GetDuration("worker-poll-interval")
	c.cfg.WorkerConfig.MaxRetries = viper.GetInt("max-retries")
	c.cfg.WorkerConfig.RetryInterval = viper.GetDuration("retry-interval")
	c.cfg.SchedulerConfig.PollInterval = viper.GetDuration("scheduler-poll-interval")
	c.cfg.SchedulerConfig.FinalResultTimeout = viper.GetDuration("final-result-timeout")
	c.cfg.SchedulerConfig.JobCreationDeltaTime = viper.GetFloat64("job-creation-delta-time")
	c.cfg.SchedulerConfig.MaxNumJobs = viper.GetInt("max-num-jobs")
	c.cfg.FixturesFile = viper.GetString("fixtures-file")
	c.cfg.LogLevel = viper.GetString("log-level")
	c.cfg.Development = viper.GetBool("development")
	if fileName := viper.GetString("analytics-file"); fileName != "" {
		c.cfg.AnalyticsConfig = analytics.DataCollectorConfig{
			FileName:      fileName,
			CollectorType: analytics.LOG_FILE_DATA_COLLECTOR,
		}
	}
	return logger.Init(c.cfg.LogLevel, c.cfg.Development)
}

func (c *cli) serve(mode agent.Mode) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := agent.New(c.cfg.Config, mode)
		if err != nil {
			return err
		}
		if err = a.Start(); err != nil {
			return err
		}
		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
		select {
		case <-sigc:
		case <-a.Done():
		}
		return a.Shutdown()
	}
}

func (c *cli) run(cmd *cobra.Command, args []string) error {
	a, err := agent.New(c.cfg.Config, agent.MODE_RUN)
	if err != nil {
		return err
	}
	if err = a.Start(); err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	res := a.Run(ctx, args[0])
	if err := json.NewEncoder(cmd.OutOrStdout()).Encode(res); err != nil {
		return err
	}
	return a.Shutdown()
}

func main() {
	cli := &cli{}

	cmd := &cobra.Command{
		Use:               "playback",
		Short:             "Plays back UI automation tasks with predictive conditional evaluation",
		PersistentPreRunE: cli.setupConfig,
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Serve the execution API",
			RunE:  cli.serve(agent.MODE_SERVE),
		},
		&cobra.Command{
			Use:   "worker",
			Short: "Evaluate prefetch jobs from the redis queue",
			RunE:  cli.serve(agent.MODE_WORKER),
		},
		&cobra.Command{
			Use:   "run <taskId>",
			Short: "Play one task and print the result",
			Args:  cobra.ExactArgs(1),
			RunE:  cli.run,
		},
	)

	if err := setupFlags(cmd); err != nil {
		log.Fatal(err)
	}

	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
