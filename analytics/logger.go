package analytics

import (
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LogFileDataCollector struct {
	fileName string
	file     *os.File
	logger   *zap.Logger
}

var _ RunDataCollector = new(LogFileDataCollector)

func NewLogFileDataCollector(fileName string) (*LogFileDataCollector, error) {
	enccoderConfig := zap.NewProductionEncoderConfig()
	enccoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	enccoderConfig.StacktraceKey = "" // to hide stacktrace info
	fileEncoder := zapcore.NewJSONEncoder(enccoderConfig)
	logFile, err := os.OpenFile(fileName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	writer := zapcore.AddSync(logFile)
	core := zapcore.NewCore(fileEncoder, writer, zapcore.InfoLevel)
	return &LogFileDataCollector{
		fileName: fileName,
		file:     logFile,
		logger:   zap.New(core),
	}, nil
}

func (lc *LogFileDataCollector) RecordActionOutcome(taskId string, runId string, index int, actionId string, result string, message string, elapsed time.Duration) {
	lc.logger.Info("outcome", zap.String("taskId", taskId), zap.String("runId", runId), zap.Int("index", index), zap.String("actionId", actionId), zap.String("result", result), zap.String("message", message), zap.Duration("elapsed", elapsed))
}

func (lc *LogFileDataCollector) RecordActionFailure(taskId string, runId string, index int, actionId string, reason string) {
	lc.logger.Info("failure", zap.String("taskId", taskId), zap.String("runId", runId), zap.Int("index", index), zap.String("actionId", actionId), zap.String("reason", reason))
}

func (lc *LogFileDataCollector) RecordRunComplete(taskId string, runId string, processed map[int]int, elapsed time.Duration) {
	counts := make(map[string]int, len(processed))
	for k, v := range processed {
		counts[strconv.Itoa(k)] = v
	}
	lc.logger.Info("complete", zap.String("taskId", taskId), zap.String("runId", runId), zap.Any("processed", counts), zap.Duration("elapsed", elapsed))
}

func (lc *LogFileDataCollector) Close() error {
	_ = lc.logger.Sync()
	return lc.file.Close()
}
