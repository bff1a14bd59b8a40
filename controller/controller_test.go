package controller

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/mohitkumar/playback/executor/mocks"
	"github.com/mohitkumar/playback/model"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type sleepRecorder struct {
	mu    sync.Mutex
	slept []time.Duration
}

func (r *sleepRecorder) sleep(ctx context.Context, d time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slept = append(r.slept, d)
	return ctx.Err()
}

func boolPtr(v bool) *bool {
	return &v
}

func conditionalAction() model.Action {
	return model.Action{
		Id:           "cond",
		Function:     model.FUNCTION_CAPTURE_SCREEN_DATA,
		Conditionals: []model.Conditional{{Condition: model.CONDITION_IF, Variable: "$.flag"}},
		TrueCase:     model.RESULT_CONTINUE,
		FalseCase:    model.RESULT_CONTINUE,
	}
}

func TestActionController(t *testing.T) {
	scenarios := map[string]func(t *testing.T, ctrl *gomock.Controller){
		"invalid function":              testInvalidFunction,
		"num repeats":                   testNumRepeats,
		"sleep and repeat once more":    testSleepAndRepeat,
		"prefetched only first time":    testPrefetchedFirstIteration,
		"evaluates without prefetch":    testEvaluatesWithoutPrefetch,
		"error case on evaluation fail": testErrorCase,
		"false case on evaluation fail": testFalseCaseWithoutErrorCase,
		"repeat ends on cancel":         testRepeatEndsOnCancel,
		"executor failure payload":      testExecutorFailure,
	}
	for scenario, fn := range scenarios {
		t.Run(scenario, func(t *testing.T) {
			fn(t, gomock.NewController(t))
		})
	}
}

func testInvalidFunction(t *testing.T, ctrl *gomock.Controller) {
	exec := mocks.NewMockExecutor(ctrl)
	c := NewActionController(exec)
	out := c.Run(context.Background(), model.Action{Id: "x", Function: "teleport"}, nil)
	require.ErrorIs(t, out.Err, model.ErrInvalidFunction)
	require.Equal(t, "Action has invalid function: x", out.Message)
}

func testNumRepeats(t *testing.T, ctrl *gomock.Controller) {
	exec := mocks.NewMockExecutor(ctrl)
	exec.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(model.SideEffect{Message: "Key pressed a"}, nil).Times(3)
	rec := &sleepRecorder{}
	c := NewActionController(exec, WithSleep(rec.sleep))
	out := c.Run(context.Background(), model.Action{Id: "k", Function: model.FUNCTION_KEY_PRESSED, KeyPressed: "a", NumRepeats: 2, TimeDelay: 0.1}, nil)
	require.NoError(t, out.Err)
	require.Equal(t, "Key pressed a", out.Message)
	require.Empty(t, out.Result)
	require.Equal(t, []time.Duration{100 * time.Millisecond, 100 * time.Millisecond, 100 * time.Millisecond}, rec.slept)
}

func testSleepAndRepeat(t *testing.T, ctrl *gomock.Controller) {
	exec := mocks.NewMockExecutor(ctrl)
	exec.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(model.SideEffect{}, nil).Times(2)
	exec.EXPECT().CaptureConditionalData(gomock.Any(), gomock.Any(), "").Return(model.ScreenData{Values: map[string]any{}}, nil).Times(1)
	exec.EXPECT().EvaluateConditional(gomock.Any(), model.CONDITION_IF, "", "").Return(false, nil).Times(1)

	action := conditionalAction()
	action.TrueCase = model.RESULT_SLEEP_AND_REPEAT
	action.SleepDuration = 0.5
	rec := &sleepRecorder{}
	c := NewActionController(exec, WithSleep(rec.sleep))
	out := c.Run(context.Background(), action, boolPtr(true))
	require.NoError(t, out.Err)
	require.Equal(t, model.RESULT_CONTINUE, out.Result)
	require.Equal(t, "continue", out.Message)
	require.True(t, out.Evaluated)
	require.False(t, out.Condition)
	require.Equal(t, []time.Duration{0, 500 * time.Millisecond, 0}, rec.slept)
}

func testPrefetchedFirstIteration(t *testing.T, ctrl *gomock.Controller) {
	exec := mocks.NewMockExecutor(ctrl)
	exec.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(model.SideEffect{}, nil).Times(1)

	action := conditionalAction()
	action.TrueCase = model.RESULT_SKIP_TO_ID
	action.SkipToId = "target"
	c := NewActionController(exec, WithSleep((&sleepRecorder{}).sleep))
	out := c.Run(context.Background(), action, boolPtr(true))
	require.Equal(t, model.RESULT_SKIP_TO_ID, out.Result)
	require.True(t, out.Condition)
}

func testEvaluatesWithoutPrefetch(t *testing.T, ctrl *gomock.Controller) {
	captured := &model.ScreenData{Snapshot: "s.png", Values: map[string]any{"flag": "on"}}
	exec := mocks.NewMockExecutor(ctrl)
	exec.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(model.SideEffect{Message: "captured", Captured: captured}, nil)
	exec.EXPECT().EvaluateConditional(gomock.Any(), model.CONDITION_IF, "on", "").Return(true, nil)

	action := conditionalAction()
	action.TrueCase = model.RESULT_END_TASK
	c := NewActionController(exec, WithSleep((&sleepRecorder{}).sleep))
	out := c.Run(context.Background(), action, nil)
	require.Equal(t, model.RESULT_END_TASK, out.Result)
	require.Equal(t, "end_task", out.Message)
	require.Equal(t, captured, out.Captured)
}

func testErrorCase(t *testing.T, ctrl *gomock.Controller) {
	exec := mocks.NewMockExecutor(ctrl)
	exec.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(model.SideEffect{}, nil)
	exec.EXPECT().CaptureConditionalData(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.ScreenData{}, errors.New("ocr down"))

	action := conditionalAction()
	action.FalseCase = model.RESULT_SLEEP
	action.ErrorCase = model.RESULT_END_TASK
	c := NewActionController(exec, WithSleep((&sleepRecorder{}).sleep))
	out := c.Run(context.Background(), action, nil)
	require.Equal(t, model.RESULT_END_TASK, out.Result)
	require.False(t, out.Evaluated)
}

func testFalseCaseWithoutErrorCase(t *testing.T, ctrl *gomock.Controller) {
	exec := mocks.NewMockExecutor(ctrl)
	exec.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(model.SideEffect{}, nil)
	exec.EXPECT().CaptureConditionalData(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.ScreenData{}, errors.New("ocr down"))

	action := conditionalAction()
	action.FalseCase = model.RESULT_SWITCH_TASK
	c := NewActionController(exec, WithSleep((&sleepRecorder{}).sleep))
	out := c.Run(context.Background(), action, nil)
	require.Equal(t, model.RESULT_SWITCH_TASK, out.Result)
}

func testRepeatEndsOnCancel(t *testing.T, ctrl *gomock.Controller) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	exec := mocks.NewMockExecutor(ctrl)
	exec.EXPECT().Execute(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, action model.Action) (model.SideEffect, error) {
		calls++
		if calls == 3 {
			cancel()
		}
		return model.SideEffect{}, nil
	}).Times(3)

	action := conditionalAction()
	action.TrueCase = model.RESULT_REPEAT
	action.FalseCase = model.RESULT_REPEAT
	exec.EXPECT().CaptureConditionalData(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.ScreenData{}, nil).AnyTimes()
	exec.EXPECT().EvaluateConditional(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil).AnyTimes()
	c := NewActionController(exec, WithSleep((&sleepRecorder{}).sleep))
	out := c.Run(ctx, action, nil)
	require.ErrorIs(t, out.Err, context.Canceled)
	require.Equal(t, model.RESULT_REPEAT, out.Result)
}

func testExecutorFailure(t *testing.T, ctrl *gomock.Controller) {
	exec := mocks.NewMockExecutor(ctrl)
	exec.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(model.SideEffect{}, errors.New("no display"))
	c := NewActionController(exec, WithSleep((&sleepRecorder{}).sleep))
	out := c.Run(context.Background(), model.Action{Id: "m", Function: model.FUNCTION_MOVE_TO}, nil)
	require.NoError(t, out.Err)
	require.Equal(t, "Error with action_id:m", out.Message)
}

func TestSleepResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	exec := mocks.NewMockExecutor(ctrl)
	exec.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(model.SideEffect{}, nil).Times(1)

	action := conditionalAction()
	action.TrueCase = model.RESULT_SLEEP
	action.SleepDuration = 0.2
	action.NumRepeats = 3
	c := NewActionController(exec)
	start := time.Now()
	out := c.Run(context.Background(), action, boolPtr(true))
	require.GreaterOrEqual(t, time.Since(start), 200*time.Millisecond)
	require.NoError(t, out.Err)
	require.Equal(t, model.RESULT_SLEEP, out.Result)
	require.Equal(t, "sleep", out.Message)
}
