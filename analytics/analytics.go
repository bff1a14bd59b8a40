package analytics

import "time"

type DataCollectorConfig struct {
	FileName      string
	CollectorType DataCollectorType
}

type DataCollectorType string

const LOG_FILE_DATA_COLLECTOR DataCollectorType = "LOG_FILE_DATA_COLLECTOR"
const NOOP_DATA_COLLECTOR DataCollectorType = "NOOP_DATA_COLLECTOR"

// RunDataCollector records what happened to each action of a task run.
type RunDataCollector interface {
	RecordActionOutcome(taskId string, runId string, index int, actionId string, result string, message string, elapsed time.Duration)
	RecordActionFailure(taskId string, runId string, index int, actionId string, reason string)
	RecordRunComplete(taskId string, runId string, processed map[int]int, elapsed time.Duration)
	Close() error
}

func NewDataCollector(config DataCollectorConfig) (RunDataCollector, error) {
	switch config.CollectorType {
	case LOG_FILE_DATA_COLLECTOR:
		return NewLogFileDataCollector(config.FileName)
	default:
		return NoopDataCollector{}, nil
	}
}

type NoopDataCollector struct{}

var _ RunDataCollector = NoopDataCollector{}

func (NoopDataCollector) RecordActionOutcome(string, string, int, string, string, string, time.Duration) {
}
func (NoopDataCollector) RecordActionFailure(string, string, int, string, string)     {}
func (NoopDataCollector) RecordRunComplete(string, string, map[int]int, time.Duration) {}
func (NoopDataCollector) Close() error                                                 { return nil }
