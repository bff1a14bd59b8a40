package executor

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/mohitkumar/playback/logger"
	"github.com/mohitkumar/playback/model"
	"github.com/mohitkumar/playback/util"
	"go.uber.org/zap"
)

var _ Executor = new(LocalExecutor)

// LocalExecutor drives the display it runs on through Input and Vision.
type LocalExecutor struct {
	input  Input
	vision Vision
	mu     sync.Mutex
	rnd    *rand.Rand
}

func NewLocalExecutor(input Input, vision Vision) *LocalExecutor {
	return &LocalExecutor{
		input:  input,
		vision: vision,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func errorPayload(action model.Action) model.SideEffect {
	return model.SideEffect{Message: fmt.Sprintf("Error with action_id:%s", action.Id)}
}

func (e *LocalExecutor) Execute(ctx context.Context, action model.Action) (model.SideEffect, error) {
	if action.Function.IsImageSearch() {
		return e.imagePointer(ctx, action)
	}
	switch action.Function {
	case model.FUNCTION_KEY_PRESSED:
		if err := e.input.KeyPress(ctx, action.KeyPressed); err != nil {
			return errorPayload(action), err
		}
		return model.SideEffect{Message: fmt.Sprintf("Key pressed %s", action.KeyPressed)}, nil
	case model.FUNCTION_CLICK, model.FUNCTION_MOVE_TO:
		e.mu.Lock()
		x, y, ok := TargetPoint(action, e.rnd)
		e.mu.Unlock()
		if !ok {
			return errorPayload(action), nil
		}
		return e.pointer(ctx, action, x, y)
	case model.FUNCTION_CAPTURE_SCREEN_DATA:
		data, err := e.CaptureConditionalData(ctx, action, "")
		if err != nil {
			return errorPayload(action), err
		}
		if len(data.Values) == 0 {
			return model.SideEffect{Message: "No screen objects found", Captured: &data}, nil
		}
		return model.SideEffect{Message: fmt.Sprintf("Screen data captured: %s", data.Snapshot), Captured: &data}, nil
	}
	return model.SideEffect{Message: fmt.Sprintf("Action has invalid function: %s", action.Id)}, model.ErrInvalidFunction
}

func (e *LocalExecutor) pointer(ctx context.Context, action model.Action, x int, y int) (model.SideEffect, error) {
	switch action.Function {
	case model.FUNCTION_MOVE_TO, model.FUNCTION_MOVE_TO_IMAGE:
		if err := e.input.MoveTo(ctx, x, y, action.RandomPath); err != nil {
			return errorPayload(action), err
		}
		return model.SideEffect{Message: fmt.Sprintf("Mouse moved to: (%d, %d)", x, y)}, nil
	default:
		if action.RandomPath {
			if err := e.input.MoveTo(ctx, x, y, true); err != nil {
				return errorPayload(action), err
			}
		}
		if action.RandomDelay > 0 {
			e.mu.Lock()
			delay := time.Duration(e.rnd.Float64() * action.RandomDelay * float64(time.Second))
			e.mu.Unlock()
			if err := util.ContextSleep(ctx, delay); err != nil {
				return errorPayload(action), err
			}
		}
		if err := e.input.Click(ctx, x, y); err != nil {
			return errorPayload(action), err
		}
		return model.SideEffect{Message: fmt.Sprintf("Mouse clicked: (%d, %d)", x, y)}, nil
	}
}

func (e *LocalExecutor) imagePointer(ctx context.Context, action model.Action) (model.SideEffect, error) {
	if len(action.Images) == 0 {
		return errorPayload(action), nil
	}
	haystack := action.HaystackImage
	if action.Function == model.FUNCTION_CLICK_IMAGE_REGION && haystack == "" {
		if action.X1 == nil || action.Y1 == nil || action.X2 == nil || action.Y2 == nil {
			return errorPayload(action), nil
		}
		snip, err := e.vision.Snip(ctx, *action.X1, *action.Y1, *action.X2, *action.Y2)
		if err != nil {
			return errorPayload(action), err
		}
		haystack = snip
	}
	x, y, found, err := e.vision.Locate(ctx, action.Images[0], haystack)
	if err != nil {
		return errorPayload(action), err
	}
	if !found {
		logger.Debug("image not found", zap.String("actionId", action.Id), zap.String("image", action.Images[0]))
		return model.SideEffect{Message: fmt.Sprintf("Image not found: %s", action.Images[0])}, nil
	}
	// region searches match inside the snip or the given region image
	if action.Function == model.FUNCTION_CLICK_IMAGE_REGION && action.X1 != nil && action.Y1 != nil {
		x += *action.X1
		y += *action.Y1
	}
	return e.pointer(ctx, action, x, y)
}

func (e *LocalExecutor) CaptureConditionalData(ctx context.Context, action model.Action, snapshot string) (model.ScreenData, error) {
	if snapshot == "" {
		snap, err := e.vision.Screenshot(ctx)
		if err != nil {
			return model.ScreenData{}, err
		}
		snapshot = snap
	}
	data := model.ScreenData{Snapshot: snapshot, Values: map[string]any{}}
	if action.X1 == nil || action.Y1 == nil || action.X2 == nil || action.Y2 == nil {
		return data, nil
	}
	values, err := e.vision.ReadRegion(ctx, snapshot, *action.X1, *action.Y1, *action.X2, *action.Y2)
	if err != nil {
		return data, err
	}
	if values != nil {
		data.Values = values
	}
	return data, nil
}

func (e *LocalExecutor) EvaluateConditional(ctx context.Context, condition model.Condition, value string, comparison string) (bool, error) {
	if condition == model.CONDITION_IF_IMAGE_PRESENT {
		_, _, found, err := e.vision.Locate(ctx, value, comparison)
		if err != nil {
			return false, err
		}
		return found, nil
	}
	return Compare(condition, value, comparison), nil
}

func (e *LocalExecutor) Snapshot(ctx context.Context) (string, error) {
	return e.vision.Screenshot(ctx)
}
