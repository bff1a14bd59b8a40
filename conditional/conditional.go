package conditional

import (
	"context"

	"github.com/mohitkumar/playback/executor"
	"github.com/mohitkumar/playback/logger"
	"github.com/mohitkumar/playback/model"
	"github.com/mohitkumar/playback/util"
	"go.trai.ch/zerr"
	"go.uber.org/zap"
)

// Evaluate ANDs the clauses of the action's conditional in order and stops at
// the first false one. Clause variables starting with "$" are json paths into
// the captured values.
func Evaluate(ctx context.Context, exec executor.Executor, action model.Action, data model.ScreenData) (bool, error) {
	for i, clause := range action.Conditionals {
		value, comparison := operands(action, clause, data)
		ok, err := exec.EvaluateConditional(ctx, clause.Condition, value, comparison)
		if err != nil {
			err = zerr.With(zerr.Wrap(err, "conditional evaluation failed"), "actionId", action.Id)
			return false, zerr.With(err, "clause", i)
		}
		if !ok {
			logger.Debug("clause false", zap.String("actionId", action.Id), zap.Int("clause", i),
				zap.String("condition", string(clause.Condition)))
			return false, nil
		}
	}
	return true, nil
}

func operands(action model.Action, clause model.Conditional, data model.ScreenData) (string, string) {
	if clause.Condition == model.CONDITION_IF_IMAGE_PRESENT {
		needle := clause.Variable
		if needle == "" && len(action.Images) > 0 {
			needle = action.Images[0]
		}
		haystack := clause.Comparison
		if haystack == "" {
			haystack = action.HaystackImage
		}
		if haystack == "" {
			haystack = data.Snapshot
		}
		return needle, haystack
	}
	value, _ := util.ResolveValue(data.Values, clause.Variable)
	comparison, _ := util.ResolveValue(data.Values, clause.Comparison)
	return value, comparison
}
