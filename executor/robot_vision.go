//go:build robotgo

package executor

import (
	"context"
	"os"
	"path/filepath"

	"github.com/go-vgo/robotgo"
	"github.com/google/uuid"
	"go.trai.ch/zerr"
)

// RobotVision captures the local display into png files under Dir. Image
// matching and region reading are not available, so Locate never finds and
// ReadRegion reads empty.
type RobotVision struct {
	DryRunVision
	Dir string
}

var _ Vision = RobotVision{}

func NewRobotVision(dir string) RobotVision {
	if dir == "" {
		dir = os.TempDir()
	}
	return RobotVision{Dir: dir}
}

func (v RobotVision) capture(args ...int) (string, error) {
	path := filepath.Join(v.Dir, "playback-"+uuid.NewString()+".png")
	if err := robotgo.SaveCapture(path, args...); err != nil {
		return "", zerr.With(zerr.Wrap(err, "screen capture"), "path", path)
	}
	return path, nil
}

func (v RobotVision) Screenshot(ctx context.Context) (string, error) {
	return v.capture()
}

func (v RobotVision) Snip(ctx context.Context, x1, y1, x2, y2 int) (string, error) {
	return v.capture(x1, y1, x2-x1, y2-y1)
}
