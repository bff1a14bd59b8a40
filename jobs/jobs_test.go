package jobs

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/mohitkumar/playback/cache"
	"github.com/mohitkumar/playback/executor/mocks"
	"github.com/mohitkumar/playback/model"
	"github.com/mohitkumar/playback/persistence/memory"
	"github.com/mohitkumar/playback/util"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var ifAction = model.Action{
	Id:           "cond",
	Function:     model.FUNCTION_CAPTURE_SCREEN_DATA,
	Conditionals: []model.Conditional{{Condition: model.CONDITION_IF, Variable: "$.flag"}},
}

type flakyCache struct {
	cache.ResultCache
	failures int
	calls    int
}

func (f *flakyCache) Set(ctx context.Context, key string, value bool) error {
	f.calls++
	if f.calls <= f.failures {
		return errors.New("unavailable")
	}
	return f.ResultCache.Set(ctx, key, value)
}

func expectCapture(exec *mocks.MockExecutor, values map[string]any) {
	exec.EXPECT().CaptureConditionalData(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, action model.Action, snapshot string) (model.ScreenData, error) {
			return model.ScreenData{Snapshot: snapshot, Values: values}, nil
		}).AnyTimes()
	exec.EXPECT().EvaluateConditional(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, condition model.Condition, value string, comparison string) (bool, error) {
			return value != "", nil
		}).AnyTimes()
}

func waitFor(t *testing.T, rc cache.ResultCache, key string) bool {
	var v, ok bool
	require.Eventually(t, func() bool {
		v, ok = rc.Get(context.Background(), key)
		return ok
	}, 2*time.Second, 5*time.Millisecond)
	return v
}

func TestEvaluator(t *testing.T) {
	scenarios := map[string]func(t *testing.T, ctrl *gomock.Controller){
		"stores outcome":           testEvaluatorStoresOutcome,
		"retries cache write":      testEvaluatorRetriesCacheWrite,
		"capture failure no write": testEvaluatorCaptureFailure,
	}
	for scenario, fn := range scenarios {
		t.Run(scenario, func(t *testing.T) {
			fn(t, gomock.NewController(t))
		})
	}
}

func testEvaluatorStoresOutcome(t *testing.T, ctrl *gomock.Controller) {
	exec := mocks.NewMockExecutor(ctrl)
	expectCapture(exec, map[string]any{"flag": "yes"})
	rc := cache.NewMemoryResultCache(0)
	ev := NewEvaluator(exec, rc, 3, time.Millisecond)

	err := ev.Evaluate(context.Background(), model.ConditionalJob{CacheKey: "s-0", Snapshot: "snap", Action: ifAction})
	require.NoError(t, err)
	v, ok := rc.Get(context.Background(), "s-0")
	require.True(t, ok)
	require.True(t, v)
}

func testEvaluatorRetriesCacheWrite(t *testing.T, ctrl *gomock.Controller) {
	exec := mocks.NewMockExecutor(ctrl)
	expectCapture(exec, map[string]any{})
	rc := &flakyCache{ResultCache: cache.NewMemoryResultCache(0), failures: 2}
	ev := NewEvaluator(exec, rc, 3, time.Millisecond)

	err := ev.Evaluate(context.Background(), model.ConditionalJob{CacheKey: "s-1", Action: ifAction})
	require.NoError(t, err)
	require.Equal(t, 3, rc.calls)
	v, ok := rc.Get(context.Background(), "s-1")
	require.True(t, ok)
	require.False(t, v)
}

func testEvaluatorCaptureFailure(t *testing.T, ctrl *gomock.Controller) {
	exec := mocks.NewMockExecutor(ctrl)
	exec.EXPECT().CaptureConditionalData(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.ScreenData{}, errors.New("no display"))
	rc := cache.NewMemoryResultCache(0)
	ev := NewEvaluator(exec, rc, 3, time.Millisecond)

	err := ev.Evaluate(context.Background(), model.ConditionalJob{CacheKey: "s-2", Action: ifAction})
	require.Error(t, err)
	_, ok := rc.Get(context.Background(), "s-2")
	require.False(t, ok)
}

func TestLocalDispatcher(t *testing.T) {
	ctrl := gomock.NewController(t)
	exec := mocks.NewMockExecutor(ctrl)
	expectCapture(exec, map[string]any{"flag": "yes"})
	rc := cache.NewMemoryResultCache(0)
	wg := &sync.WaitGroup{}
	d := NewLocalDispatcher(NewEvaluator(exec, rc, 1, time.Millisecond), 8, 2, wg)
	require.NoError(t, d.Start())

	for _, key := range []string{"s-0", "s-1", "s-2"} {
		require.NoError(t, d.Submit(context.Background(), model.ConditionalJob{CacheKey: key, Action: ifAction}))
	}
	for _, key := range []string{"s-0", "s-1", "s-2"} {
		require.True(t, waitFor(t, rc, key))
	}
	require.NoError(t, d.Stop())
	wg.Wait()
}

func TestQueueDispatchAndConsume(t *testing.T) {
	ctrl := gomock.NewController(t)
	exec := mocks.NewMockExecutor(ctrl)
	expectCapture(exec, map[string]any{"flag": "yes"})
	rc := cache.NewMemoryResultCache(0)
	queue := memory.NewMemoryQueue()
	encDec := util.NewJsonEncoderDecoder[model.ConditionalJob]()

	d := NewQueueDispatcher(queue, encDec)
	for _, key := range []string{"q-0", "q-1"} {
		require.NoError(t, d.Submit(context.Background(), model.ConditionalJob{CacheKey: key, Snapshot: "snap", Action: ifAction}))
	}

	wg := &sync.WaitGroup{}
	consumer := NewQueueConsumer(queue, encDec, NewEvaluator(exec, rc, 1, time.Millisecond), 10, 2, 5*time.Millisecond, wg)
	require.NoError(t, consumer.Start())
	require.True(t, waitFor(t, rc, "q-0"))
	require.True(t, waitFor(t, rc, "q-1"))
	require.NoError(t, consumer.Stop())
	wg.Wait()
}
