package jobs

import (
	"context"

	"github.com/mohitkumar/playback/model"
)

// Dispatcher hands conditional jobs to the evaluation pool. Submission is
// fire and forget: the outcome only ever shows up in the result cache.
type Dispatcher interface {
	Submit(ctx context.Context, job model.ConditionalJob) error
}

// Runner is a background component with a start/stop lifecycle.
type Runner interface {
	Start() error
	Stop() error
	Name() string
}
