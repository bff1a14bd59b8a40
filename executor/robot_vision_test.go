//go:build robotgo

package executor

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRobotVisionCapture(t *testing.T) {
	dir := t.TempDir()
	vision := NewRobotVision(dir)

	snap, err := vision.Screenshot(context.Background())
	require.NoError(t, err)
	require.Equal(t, dir, filepath.Dir(snap))
	_, err = os.Stat(snap)
	require.NoError(t, err)

	snip, err := vision.Snip(context.Background(), 0, 0, 10, 10)
	require.NoError(t, err)
	require.NotEqual(t, snap, snip)
	_, err = os.Stat(snip)
	require.NoError(t, err)

	_, _, found, err := vision.Locate(context.Background(), "needle.png", snap)
	require.NoError(t, err)
	require.False(t, found)
}
