package config

import (
	"time"

	"github.com/mohitkumar/playback/analytics"
)

type StorageType string

type CacheType string

type QueueType string

const STORAGE_TYPE_REDIS StorageType = "redis"
const STORAGE_TYPE_INMEM StorageType = "memory"

const CACHE_TYPE_REDIS CacheType = "redis"
const CACHE_TYPE_INMEM CacheType = "memory"

// QUEUE_TYPE_INMEM evaluates prefetch jobs on an in-process worker pool,
// QUEUE_TYPE_REDIS hands them to `playback worker` processes through redis.
const QUEUE_TYPE_REDIS QueueType = "redis"
const QUEUE_TYPE_INMEM QueueType = "memory"

type EncoderDecoderType string

const JSON_ENCODER_DECODER EncoderDecoderType = "JSON"

type Config struct {
	RedisConfig        RedisStorageConfig
	HttpPort           int
	AllowedOrigins     []string
	StorageType        StorageType
	CacheType          CacheType
	QueueType          QueueType
	EncoderDecoderType EncoderDecoderType
	WorkerConfig       WorkerConfig
	SchedulerConfig    SchedulerConfig
	FixturesFile       string
	LogLevel           string
	AnalyticsConfig    analytics.DataCollectorConfig
}

type RedisStorageConfig struct {
	Addrs     []string
	Namespace string
	// ResultTTL bounds how long conditional results live in redis, zero keeps them.
	ResultTTL time.Duration
}

type WorkerConfig struct {
	NumWorkers     int
	Capacity       int
	PartitionCount int
	BatchSize      int
	PollInterval   time.Duration
	MaxRetries     int
	RetryInterval  time.Duration
}

// SchedulerConfig tunes prefetching. JobCreationDeltaTime and MaxNumJobs
// apply to tasks that do not set their own.
type SchedulerConfig struct {
	PollInterval         time.Duration
	FinalResultTimeout   time.Duration
	JobCreationDeltaTime float64
	MaxNumJobs           int
}

func DefaultConfig() Config {
	return Config{
		RedisConfig: RedisStorageConfig{
			Addrs:     []string{"localhost:6379"},
			Namespace: "playback",
		},
		HttpPort:           8080,
		AllowedOrigins:     []string{"*"},
		StorageType:        STORAGE_TYPE_INMEM,
		CacheType:          CACHE_TYPE_INMEM,
		QueueType:          QUEUE_TYPE_INMEM,
		EncoderDecoderType: JSON_ENCODER_DECODER,
		WorkerConfig: WorkerConfig{
			NumWorkers:     4,
			Capacity:       128,
			PartitionCount: 4,
			BatchSize:      10,
			PollInterval:   50 * time.Millisecond,
			MaxRetries:     3,
			RetryInterval:  100 * time.Millisecond,
		},
		SchedulerConfig: SchedulerConfig{
			PollInterval:         10 * time.Millisecond,
			FinalResultTimeout:   30 * time.Second,
			JobCreationDeltaTime: 0.5,
			MaxNumJobs:           10,
		},
		LogLevel: "info",
	}
}
