//go:build robotgo

package executor

import (
	"context"
	"strings"

	"github.com/go-vgo/robotgo"
)

// RobotInput injects events into the local display. Built with -tags robotgo
// since it needs cgo and the X11 headers.
type RobotInput struct{}

var _ Input = RobotInput{}

func (RobotInput) Click(ctx context.Context, x int, y int) error {
	robotgo.Move(x, y)
	robotgo.Click("left", false)
	return nil
}

func (RobotInput) MoveTo(ctx context.Context, x int, y int, randomPath bool) error {
	if randomPath {
		robotgo.MoveSmooth(x, y)
		return nil
	}
	robotgo.Move(x, y)
	return nil
}

// KeyPress accepts single keys and "|" separated combos such as "ctrl|c",
// where the last element is the key and the others are held modifiers.
func (RobotInput) KeyPress(ctx context.Context, key string) error {
	parts := strings.Split(strings.ToLower(key), "|")
	mods := make([]interface{}, 0, len(parts)-1)
	for _, m := range parts[:len(parts)-1] {
		mods = append(mods, m)
	}
	return robotgo.KeyTap(parts[len(parts)-1], mods...)
}

// NewDefaultExecutor drives the real mouse and keyboard and snapshots the
// real screen.
func NewDefaultExecutor() *LocalExecutor {
	return NewLocalExecutor(RobotInput{}, NewRobotVision(""))
}
