package analytics

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLogFileDataCollector(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "runs.log")
	collector, err := NewDataCollector(DataCollectorConfig{FileName: fileName, CollectorType: LOG_FILE_DATA_COLLECTOR})
	require.NoError(t, err)

	collector.RecordActionOutcome("task-1", "run-1", 0, "a1", "continue", "Mouse clicked: (1, 2)", 10*time.Millisecond)
	collector.RecordActionFailure("task-1", "run-1", 1, "a2", "action has invalid function")
	collector.RecordRunComplete("task-1", "run-1", map[int]int{0: 1, 1: 1}, time.Second)
	require.NoError(t, collector.Close())

	data, err := os.ReadFile(fileName)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.Equal(t, "outcome", first["msg"])
	require.Equal(t, "a1", first["actionId"])

	var last map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[2]), &last))
	require.Equal(t, map[string]any{"0": float64(1), "1": float64(1)}, last["processed"])
}

func TestNoopDataCollector(t *testing.T) {
	collector, err := NewDataCollector(DataCollectorConfig{})
	require.NoError(t, err)
	_, ok := collector.(NoopDataCollector)
	require.True(t, ok)
	require.NoError(t, collector.Close())
}
