package server

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/dmitrijs2005/qrattend/internal/logging"
	"github.com/dmitrijs2005/qrattend/internal/server/config"
	"github.com/dmitrijs2005/qrattend/internal/server/rotation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

type countingSweeper struct {
	calls atomic.Int32
	err   error
}

func (c *countingSweeper) SweepExpired(context.Context) (int, error) {
	c.calls.Add(1)
	return 1, c.err
}

func TestRunSweeper_TicksUntilCancelled(t *testing.T) {
	s := &countingSweeper{}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		defer close(done)
		runSweeper(ctx, s, 5*time.Millisecond, nopLogger{})
	}()

	require.Eventually(t, func() bool { return s.calls.Load() >= 2 }, time.Second, time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}

func TestRunSweeper_KeepsGoingAfterErrors(t *testing.T) {
	s := &countingSweeper{err: errors.New("db down")}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go runSweeper(ctx, s, 5*time.Millisecond, nopLogger{})

	require.Eventually(t, func() bool { return s.calls.Load() >= 3 }, time.Second, time.Millisecond)
}

func TestNewLeaser(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	app := &App{config: cfg, logger: nopLogger{}}

	l, err := app.newLeaser(context.Background())
	require.NoError(t, err)
	assert.IsType(t, rotation.LocalLeaser{}, l)

	mr := miniredis.RunT(t)
	cfg.RedisAddr = mr.Addr()
	l, err = app.newLeaser(context.Background())
	require.NoError(t, err)
	assert.IsType(t, &rotation.RedisLeaser{}, l)
	require.NotNil(t, app.redis)
	defer app.redis.Close()

	ok, err := l.Acquire(context.Background(), "s1", time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestNewLeaser_RedisUnreachable(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	mr := miniredis.RunT(t)
	cfg.RedisAddr = mr.Addr()
	mr.Close()

	app := &App{config: cfg, logger: nopLogger{}}
	_, err := app.newLeaser(context.Background())
	require.Error(t, err)
	assert.Nil(t, app.redis)
}
