package controller

import (
	"context"
	"fmt"
	"time"

	"github.com/mohitkumar/playback/conditional"
	"github.com/mohitkumar/playback/executor"
	"github.com/mohitkumar/playback/logger"
	"github.com/mohitkumar/playback/metrics"
	"github.com/mohitkumar/playback/model"
	"github.com/mohitkumar/playback/util"
	"go.uber.org/zap"
)

// Outcome is what running one action produced. Result is empty unless the
// action has a conditional.
type Outcome struct {
	Result    model.Result
	Message   string
	Captured  *model.ScreenData
	Evaluated bool
	Condition bool
	Err       error
}

type SleepFunc func(ctx context.Context, d time.Duration) error

var ContextSleep SleepFunc = util.ContextSleep

type Option func(*ActionController)

func WithSleep(fn SleepFunc) Option {
	return func(c *ActionController) {
		c.sleep = fn
	}
}

type ActionController struct {
	exec  executor.Executor
	sleep SleepFunc
}

func NewActionController(exec executor.Executor, opts ...Option) *ActionController {
	c := &ActionController{
		exec:  exec,
		sleep: ContextSleep,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// Run performs action and resolves its conditional. prefetched, when not nil,
// replaces the evaluation of the first iteration only. A repeat result runs the
// action once more; the loop ends early when ctx is done.
func (c *ActionController) Run(ctx context.Context, action model.Action, prefetched *bool) Outcome {
	if !action.Function.Valid() {
		logger.Warn("action has invalid function", zap.String("actionId", action.Id), zap.String("function", string(action.Function)))
		return Outcome{
			Message: fmt.Sprintf("Action has invalid function: %s", action.Id),
			Err:     model.ErrInvalidFunction,
		}
	}

	repeats := action.NumRepeats
	first := true
	var out Outcome
	for {
		if err := c.sleep(ctx, seconds(action.TimeDelay)); err != nil {
			out.Err = err
			return out
		}
		effect := c.perform(ctx, action)
		out.Message = effect.Message
		out.Captured = effect.Captured

		if !action.HasConditionals() {
			if repeats <= 0 {
				return out
			}
			repeats--
			continue
		}

		var value bool
		var err error
		if first && prefetched != nil {
			value = *prefetched
		} else {
			value, err = c.evaluate(ctx, action, effect)
		}
		first = false

		res := action.CaseFor(value)
		if err != nil {
			logger.Warn("conditional evaluation failed", zap.String("actionId", action.Id), zap.Error(err))
			res = action.CaseFor(false)
			if action.ErrorCase != "" {
				res = action.ErrorCase
			}
		}
		out.Result = res
		out.Evaluated = err == nil
		out.Condition = value

		if res.IsRepeat() {
			if res == model.RESULT_SLEEP_AND_REPEAT {
				if err := c.sleep(ctx, seconds(action.SleepDuration)); err != nil {
					out.Err = err
					return out
				}
			}
			logger.Debug("repeating action", zap.String("actionId", action.Id), zap.String("result", string(res)))
			continue
		}
		if res == model.RESULT_SLEEP {
			if err := c.sleep(ctx, seconds(action.SleepDuration)); err != nil {
				out.Err = err
				return out
			}
		}
		out.Message = string(res)
		return out
	}
}

func (c *ActionController) perform(ctx context.Context, action model.Action) model.SideEffect {
	start := time.Now()
	effect, err := c.exec.Execute(ctx, action)
	metrics.Latency(ctx, string(action.Function), float64(time.Since(start).Microseconds())/1000)
	if err != nil {
		logger.Warn("action execution failed", zap.String("actionId", action.Id), zap.Error(err))
		if effect.Message == "" {
			effect.Message = fmt.Sprintf("Error with action_id:%s", action.Id)
		}
	}
	return effect
}

func (c *ActionController) evaluate(ctx context.Context, action model.Action, effect model.SideEffect) (bool, error) {
	var data model.ScreenData
	if effect.Captured != nil {
		data = *effect.Captured
	} else {
		captured, err := c.exec.CaptureConditionalData(ctx, action, "")
		if err != nil {
			return false, err
		}
		data = captured
	}
	return conditional.Evaluate(ctx, c.exec, action, data)
}
