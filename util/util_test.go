package util

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestResolveValue(t *testing.T) {
	data := map[string]any{
		"variables": []any{"id-1, id-2", "12, 7"},
		"score":     42.5,
		"label":     "ready",
	}
	for scenario, tc := range map[string]struct {
		ref   string
		want  string
		found bool
	}{
		"literal":         {ref: "12", want: "12", found: true},
		"string path":     {ref: "$.label", want: "ready", found: true},
		"number path":     {ref: "$.score", want: "42.5", found: true},
		"list index path": {ref: "$.variables[1]", want: "12, 7", found: true},
		"missing path":    {ref: "$.missing", want: "", found: false},
	} {
		t.Run(scenario, func(t *testing.T) {
			got, found := ResolveValue(data, tc.ref)
			require.Equal(t, tc.found, found)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestWorker(t *testing.T) {
	var wg sync.WaitGroup
	var handled int32
	done := make(chan struct{}, 10)
	w := NewWorker("test", &wg, func(task Task) error {
		atomic.AddInt32(&handled, 1)
		done <- struct{}{}
		return nil
	}, 10, 3)
	w.Start()
	for i := 0; i < 10; i++ {
		w.Sender() <- i
	}
	for i := 0; i < 10; i++ {
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("worker did not handle all tasks")
		}
	}
	w.Stop()
	wg.Wait()
	require.Equal(t, int32(10), atomic.LoadInt32(&handled))
}

func TestTickWorker(t *testing.T) {
	var wg sync.WaitGroup
	var ticks int32
	tw := NewTickWorker("ticker", 5*time.Millisecond, make(chan struct{}), func() {
		atomic.AddInt32(&ticks, 1)
	}, &wg)
	tw.Start()
	require.Eventually(t, func() bool { return atomic.LoadInt32(&ticks) >= 3 }, time.Second, 5*time.Millisecond)
	require.True(t, tw.IsRunning())
	tw.Stop()
	wg.Wait()
	require.False(t, tw.IsRunning())
}

func TestContextSleep(t *testing.T) {
	require.NoError(t, ContextSleep(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	start := time.Now()
	require.ErrorIs(t, ContextSleep(ctx, time.Minute), context.Canceled)
	require.ErrorIs(t, ContextSleep(ctx, 0), context.Canceled)
	require.Less(t, time.Since(start), time.Second)
}
