package bootstrap

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func restoreSleep() { sleep = time.Sleep }

func TestRunSucceedsOnNthAttempt(t *testing.T) {
	t.Cleanup(restoreSleep)

	var waits []time.Duration
	sleep = func(d time.Duration) { waits = append(waits, d) }

	const n = 4
	calls := 0
	attempt := func(ctx context.Context) error {
		calls++
		if calls < n {
			return errors.New("connection refused")
		}
		return nil
	}

	var reported []int
	cfg := Config{
		MaxAttempts:   30,
		RetryInterval: 5 * time.Second,
		Report:        func(attempt int, err error) { reported = append(reported, attempt) },
	}
	require.NoError(t, Run(context.Background(), cfg, attempt))
	require.Equal(t, n, calls)

	// (N-1) waits of exactly the configured interval, one per failure.
	require.Len(t, waits, n-1)
	for _, d := range waits {
		require.Equal(t, 5*time.Second, d)
	}
	require.Equal(t, []int{1, 2, 3}, reported)
}

func TestRunFirstAttemptSucceeds(t *testing.T) {
	t.Cleanup(restoreSleep)
	sleep = func(time.Duration) { t.Fatal("should not sleep") }

	calls := 0
	require.NoError(t, Run(context.Background(), Config{MaxAttempts: 3, RetryInterval: time.Second},
		func(ctx context.Context) error { calls++; return nil }))
	require.Equal(t, 1, calls)
}

func TestRunExhaustion(t *testing.T) {
	t.Cleanup(restoreSleep)

	slept := 0
	sleep = func(time.Duration) { slept++ }

	calls := 0
	last := errors.New("still down")
	err := Run(context.Background(), Config{MaxAttempts: 3, RetryInterval: time.Second},
		func(ctx context.Context) error { calls++; return last })
	require.Error(t, err)
	require.ErrorIs(t, err, last)
	require.Equal(t, 3, calls)
	// no sleep after the final attempt
	require.Equal(t, 2, slept)
}

func TestRunZeroInterval(t *testing.T) {
	t.Cleanup(restoreSleep)
	sleep = func(time.Duration) { t.Fatal("zero interval must not sleep") }

	calls := 0
	err := Run(context.Background(), Config{MaxAttempts: 2},
		func(ctx context.Context) error { calls++; return errors.New("x") })
	require.Error(t, err)
	require.Equal(t, 2, calls)
}

func TestRunInvalidConfig(t *testing.T) {
	err := Run(context.Background(), Config{MaxAttempts: 0}, func(ctx context.Context) error { return nil })
	require.Error(t, err)
}

func TestRunContextCanceled(t *testing.T) {
	t.Cleanup(restoreSleep)
	sleep = func(time.Duration) {}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Run(ctx, Config{MaxAttempts: 5, RetryInterval: time.Second},
		func(ctx context.Context) error { t.Fatal("attempt after cancel"); return nil })
	require.ErrorIs(t, err, context.Canceled)
}
