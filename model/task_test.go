package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTaskConfigObserve(t *testing.T) {
	actions := []Action{{Id: "a", TimeDelay: 0.5}, {Id: "b"}}
	conf := NewDefaultTaskConfig(actions)
	require.Equal(t, []float64{0.5, 0}, conf.FastestTimeline)

	conf.Observe(0, 0.7)
	require.Equal(t, 0.7, conf.FastestTimeline[0])
	conf.Observe(0, 0.6)
	require.Equal(t, 0.6, conf.FastestTimeline[0])
	conf.Observe(0, 0.9)
	require.Equal(t, 0.6, conf.FastestTimeline[0])
	require.Equal(t, []int{3, 0}, conf.TimelineSamples)
	require.True(t, conf.Matches(actions))

	conf.TimelineSamples = nil
	require.False(t, conf.Matches(actions))
}
