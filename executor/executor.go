package executor

import (
	"context"

	"github.com/mohitkumar/playback/model"
)

//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks

// Executor performs the UI side of actions. Expected misses such as an image
// not found on screen are reported through the returned values, errors are
// reserved for failures of the underlying driver.
type Executor interface {
	Execute(ctx context.Context, action model.Action) (model.SideEffect, error)
	CaptureConditionalData(ctx context.Context, action model.Action, snapshot string) (model.ScreenData, error)
	EvaluateConditional(ctx context.Context, condition model.Condition, value string, comparison string) (bool, error)
	Snapshot(ctx context.Context) (string, error)
}

// Input injects mouse and keyboard events.
type Input interface {
	Click(ctx context.Context, x int, y int) error
	MoveTo(ctx context.Context, x int, y int, randomPath bool) error
	KeyPress(ctx context.Context, key string) error
}

// Vision reads the screen. Locate returns found=false when the needle is not
// in the haystack; an empty haystack means the current screen. Coordinates
// from Locate are relative to the haystack, so a match inside a Snip is
// relative to the snipped region.
type Vision interface {
	Screenshot(ctx context.Context) (string, error)
	Snip(ctx context.Context, x1, y1, x2, y2 int) (string, error)
	Locate(ctx context.Context, needle string, haystack string) (x int, y int, found bool, err error)
	ReadRegion(ctx context.Context, snapshot string, x1, y1, x2, y2 int) (map[string]any, error)
}
