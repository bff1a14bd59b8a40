package executor

import (
	"context"

	"github.com/google/uuid"
	"github.com/mohitkumar/playback/logger"
	"go.uber.org/zap"
)

// DryRunInput logs input events instead of injecting them.
type DryRunInput struct{}

var _ Input = DryRunInput{}

func (DryRunInput) Click(ctx context.Context, x int, y int) error {
	logger.Info("dry run click", zap.Int("x", x), zap.Int("y", y))
	return nil
}

func (DryRunInput) MoveTo(ctx context.Context, x int, y int, randomPath bool) error {
	logger.Info("dry run move", zap.Int("x", x), zap.Int("y", y), zap.Bool("randomPath", randomPath))
	return nil
}

func (DryRunInput) KeyPress(ctx context.Context, key string) error {
	logger.Info("dry run key press", zap.String("key", key))
	return nil
}

// DryRunVision has no display: snapshots are fresh names, nothing is ever
// located and regions read empty.
type DryRunVision struct{}

var _ Vision = DryRunVision{}

func (DryRunVision) Screenshot(ctx context.Context) (string, error) {
	return uuid.NewString() + ".png", nil
}

func (DryRunVision) Snip(ctx context.Context, x1, y1, x2, y2 int) (string, error) {
	return uuid.NewString() + ".png", nil
}

func (DryRunVision) Locate(ctx context.Context, needle string, haystack string) (int, int, bool, error) {
	return -1, -1, false, nil
}

func (DryRunVision) ReadRegion(ctx context.Context, snapshot string, x1, y1, x2, y2 int) (map[string]any, error) {
	return map[string]any{}, nil
}

func NewDryRunExecutor() *LocalExecutor {
	return NewLocalExecutor(DryRunInput{}, DryRunVision{})
}
