package ratelimit_test

import (
	"context"
	"errors"
	"idverify/pkg/logger"
	"idverify/pkg/ratelimit"
	"idverify/pkg/serrors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	os.Exit(m.Run())
}

func TestLimiter_defaults(t *testing.T) {
	st := ratelimit.New(ratelimit.Options{Name: "test"}).Status()
	require.Equal(t, ratelimit.Status{
		AvailableTokens: 50, MaxTokens: 50, QueueSize: 0, MaxQueueSize: 100, UtilizationPercent: 0,
	}, st)
}

func TestLimiter_burstThenStatus(t *testing.T) {
	l := ratelimit.New(ratelimit.Options{Name: "test", Requests: 4, Window: time.Hour, MaxQueue: 1})
	ctx := context.Background()
	for range 3 {
		require.NoError(t, l.Acquire(ctx))
	}

	st := l.Status()
	require.Equal(t, 1, st.AvailableTokens)
	require.Equal(t, 4, st.MaxTokens)
	require.Equal(t, 75, st.UtilizationPercent)

	l.Reset()
	require.Equal(t, 4, l.Status().AvailableTokens)
	require.Equal(t, 0, l.Status().UtilizationPercent)
}

func TestLimiter_queueFull(t *testing.T) {
	l := ratelimit.New(ratelimit.Options{Name: "test", Requests: 1, Window: time.Hour, MaxQueue: 1})
	require.NoError(t, l.Acquire(context.Background()))

	waitCtx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- l.Acquire(waitCtx) }()

	require.Eventually(t, func() bool { return l.Status().QueueSize == 1 }, time.Second, 5*time.Millisecond)

	err := l.Acquire(context.Background())
	require.ErrorIs(t, err, serrors.ErrRateLimited)
	require.Contains(t, err.Error(), "queue is full")

	cancel()
	select {
	case err := <-done:
		require.ErrorIs(t, err, serrors.ErrRateLimited)
		require.True(t, errors.Is(err, context.Canceled))
	case <-time.After(time.Second):
		t.Fatal("waiter did not return after cancellation")
	}
	require.Eventually(t, func() bool { return l.Status().QueueSize == 0 }, time.Second, 5*time.Millisecond)
}

func TestLimiter_waiterGetsToken(t *testing.T) {
	l := ratelimit.New(ratelimit.Options{Name: "test", Requests: 1, Window: 20 * time.Millisecond, MaxQueue: 5})
	ctx := context.Background()
	require.NoError(t, l.Acquire(ctx))

	start := time.Now()
	require.NoError(t, l.Acquire(ctx))
	require.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
}

type stubAcquirer struct {
	err   error
	calls int
}

func (s *stubAcquirer) Acquire(context.Context) error {
	s.calls++

	return s.err
}

func TestChain(t *testing.T) {
	first := &stubAcquirer{}
	second := &stubAcquirer{err: serrors.KindOnly(serrors.ErrRateLimited)}
	third := &stubAcquirer{}

	err := ratelimit.Chain{first, second, third}.Acquire(context.Background())
	require.ErrorIs(t, err, serrors.ErrRateLimited)
	require.Equal(t, 1, first.calls)
	require.Equal(t, 1, second.calls)
	require.Equal(t, 0, third.calls)

	require.NoError(t, ratelimit.Chain{}.Acquire(context.Background()))
}
