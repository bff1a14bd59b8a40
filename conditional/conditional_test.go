package conditional

import (
	"context"
	"errors"
	"testing"

	"github.com/mohitkumar/playback/executor"
	"github.com/mohitkumar/playback/executor/mocks"
	"github.com/mohitkumar/playback/model"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEvaluate(t *testing.T) {
	scenarios := map[string]func(t *testing.T, ctrl *gomock.Controller){
		"short circuit on first false": testShortCircuit,
		"all true":                     testAllTrue,
		"json path variable":           testJsonPathVariable,
		"image present defaults":       testImagePresentDefaults,
		"executor error":               testExecutorError,
	}
	for scenario, fn := range scenarios {
		t.Run(scenario, func(t *testing.T) {
			fn(t, gomock.NewController(t))
		})
	}
}

func testShortCircuit(t *testing.T, ctrl *gomock.Controller) {
	exec := mocks.NewMockExecutor(ctrl)
	exec.EXPECT().EvaluateConditional(gomock.Any(), model.CONDITION_EQUALS, "a", "b").Return(false, nil).Times(1)
	action := model.Action{
		Id: "a1",
		Conditionals: []model.Conditional{
			{Condition: model.CONDITION_EQUALS, Variable: "a", Comparison: "b"},
			{Condition: model.CONDITION_IF, Variable: "x"},
		},
	}
	ok, err := Evaluate(context.Background(), exec, action, model.ScreenData{})
	require.NoError(t, err)
	require.False(t, ok)
}

func testAllTrue(t *testing.T, ctrl *gomock.Controller) {
	exec := mocks.NewMockExecutor(ctrl)
	gomock.InOrder(
		exec.EXPECT().EvaluateConditional(gomock.Any(), model.CONDITION_IF, "x", "").Return(true, nil),
		exec.EXPECT().EvaluateConditional(gomock.Any(), model.CONDITION_GREATER_THAN, "3", "2").Return(true, nil),
	)
	action := model.Action{
		Id: "a1",
		Conditionals: []model.Conditional{
			{Condition: model.CONDITION_IF, Variable: "x"},
			{Condition: model.CONDITION_GREATER_THAN, Variable: "3", Comparison: "2"},
		},
	}
	ok, err := Evaluate(context.Background(), exec, action, model.ScreenData{})
	require.NoError(t, err)
	require.True(t, ok)
}

func testJsonPathVariable(t *testing.T, ctrl *gomock.Controller) {
	exec := executor.NewDryRunExecutor()
	action := model.Action{
		Id:           "a1",
		Conditionals: []model.Conditional{{Condition: model.CONDITION_GREATER_THAN, Variable: "$.score", Comparison: "10"}},
	}
	data := model.ScreenData{Values: map[string]any{"score": 42}}
	ok, err := Evaluate(context.Background(), exec, action, data)
	require.NoError(t, err)
	require.True(t, ok)

	data.Values["score"] = 3
	ok, err = Evaluate(context.Background(), exec, action, data)
	require.NoError(t, err)
	require.False(t, ok)
}

func testImagePresentDefaults(t *testing.T, ctrl *gomock.Controller) {
	exec := mocks.NewMockExecutor(ctrl)
	exec.EXPECT().EvaluateConditional(gomock.Any(), model.CONDITION_IF_IMAGE_PRESENT, "needle.png", "snap.png").Return(true, nil)
	action := model.Action{
		Id:           "a1",
		Images:       []string{"needle.png"},
		Conditionals: []model.Conditional{{Condition: model.CONDITION_IF_IMAGE_PRESENT}},
	}
	ok, err := Evaluate(context.Background(), exec, action, model.ScreenData{Snapshot: "snap.png"})
	require.NoError(t, err)
	require.True(t, ok)
}

func testExecutorError(t *testing.T, ctrl *gomock.Controller) {
	exec := mocks.NewMockExecutor(ctrl)
	exec.EXPECT().EvaluateConditional(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("ocr down"))
	action := model.Action{
		Id:           "a1",
		Conditionals: []model.Conditional{{Condition: model.CONDITION_IF, Variable: "x"}},
	}
	ok, err := Evaluate(context.Background(), exec, action, model.ScreenData{})
	require.Error(t, err)
	require.False(t, ok)
}
