package redis

import "time"

type Config struct {
	Addrs          []string
	Namespace      string
	PoolSize       int
	Password       string
	PartitionCount int
	ResultTTL      time.Duration
}
