package redis

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mohitkumar/playback/model"
	"github.com/mohitkumar/playback/persistence"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) Config {
	conf := Config{
		Addrs:          []string{"localhost:6379"},
		Namespace:      "test-" + uuid.NewString(),
		PartitionCount: 3,
	}
	base := newBaseDao(conf)
	defer base.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	if err := base.redisClient.Ping(ctx).Err(); err != nil {
		t.Skipf("redis not reachable: %v", err)
	}
	return conf
}

func TestRedisStorage(t *testing.T) {
	for scenario, fn := range map[string]func(
		t *testing.T, conf Config,
	){
		"test action save and get": testActionSaveGet,
		"test task save and get":   testTaskSaveGet,
		"test result cache":        testResultCache,
		"test partitioned queue":   testQueuePushPop,
	} {
		t.Run(scenario, func(t *testing.T) {
			fn(t, testConfig(t))
		})
	}
}

func testActionSaveGet(t *testing.T, conf Config) {
	storage := NewRedisMetadataStorage(conf)
	defer storage.Close()

	x1, y1 := 10, 20
	action := model.Action{Id: "a1", Function: model.FUNCTION_CLICK, X1: &x1, Y1: &y1, TrueCase: model.RESULT_SKIP_TO_ID}
	require.NoError(t, storage.SaveAction(action))

	got, err := storage.GetAction("a1")
	require.NoError(t, err)
	require.Equal(t, action, *got)

	_, err = storage.GetAction("missing")
	require.ErrorIs(t, err, persistence.ErrNotFound)

	require.NoError(t, storage.DeleteAction("a1"))
	_, err = storage.GetAction("a1")
	require.ErrorIs(t, err, persistence.ErrNotFound)
}

func testTaskSaveGet(t *testing.T, conf Config) {
	storage := NewRedisMetadataStorage(conf)
	defer storage.Close()

	task := model.Task{Id: "t1", ActionIdList: []string{"a1", "a2"}, JobCreationDeltaTime: 0.5, MaxNumJobs: 10}
	task.FastestTimeline = []float64{0.1, 0.2}
	require.NoError(t, storage.SaveTask(task))

	got, err := storage.GetTask("t1")
	require.NoError(t, err)
	require.Equal(t, task.ActionIdList, got.ActionIdList)
	require.Equal(t, task.FastestTimeline, got.FastestTimeline)
}

func testResultCache(t *testing.T, conf Config) {
	rc := NewRedisResultCache(conf)
	defer rc.Close()
	ctx := context.Background()

	_, ok := rc.Get(ctx, "s-0")
	require.False(t, ok)

	require.NoError(t, rc.Set(ctx, "s-0", true))
	require.NoError(t, rc.Set(ctx, "s-1", false))
	v, ok := rc.Get(ctx, "s-0")
	require.True(t, ok)
	require.True(t, v)
	v, ok = rc.Get(ctx, "s-1")
	require.True(t, ok)
	require.False(t, v)
}

func testQueuePushPop(t *testing.T, conf Config) {
	queue := NewRedisQueue(conf)
	defer queue.Close()

	for i := 0; i < 6; i++ {
		key := fmt.Sprintf("schedule-%d", i)
		require.NoError(t, queue.Push("jobs", key, []byte(key)))
	}
	first, err := queue.Pop("jobs", 4)
	require.NoError(t, err)
	require.LessOrEqual(t, len(first), 4)

	rest, err := queue.Pop("jobs", 10)
	require.NoError(t, err)
	more, err := queue.Pop("jobs", 10)
	require.NoError(t, err)
	require.Len(t, append(append(first, rest...), more...), 6)
}
