package latency

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWall_ReturnsAfterDelay(t *testing.T) {
	start := time.Now()
	err := Wall{}.Sleep(context.Background(), 10*time.Millisecond)
	require.NoError(t, err)
	require.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
}

func TestWall_AbortsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := Wall{}.Sleep(ctx, time.Hour)
	require.ErrorIs(t, err, context.Canceled)
	require.Less(t, time.Since(start), time.Second)
}

func TestNone_CompletesImmediately(t *testing.T) {
	require.NoError(t, None{}.Sleep(context.Background(), time.Hour))
}

func TestNone_StillHonorsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, None{}.Sleep(ctx, 0), context.Canceled)
}
