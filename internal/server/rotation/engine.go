// Package rotation runs one timer task per active session that rotates its
// sub-token on a fixed cadence and ends the session when its window closes.
// Tasks are owned by the server, not by any connected viewer.
package rotation

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dmitrijs2005/qrattend/internal/common"
	"github.com/dmitrijs2005/qrattend/internal/logging"
	"github.com/dmitrijs2005/qrattend/internal/server/models"
)

// Sessions is the part of the session service the engine drives.
type Sessions interface {
	RotateToken(ctx context.Context, sessionID string) (*models.Session, error)
	ExpireSession(ctx context.Context, sessionID string) error
	ListActive(ctx context.Context) ([]*models.Session, error)
}

type task struct {
	cancel context.CancelFunc
}

type Engine struct {
	sessions Sessions
	leaser   Leaser
	logger   logging.Logger
	interval time.Duration
	leaseTTL time.Duration
	now      func() time.Time

	base   context.Context
	cancel context.CancelFunc

	mu    sync.Mutex
	tasks map[string]*task
	wg    sync.WaitGroup
}

// NewEngine creates an engine rotating every interval. A nil leaser means
// LocalLeaser.
func NewEngine(sessions Sessions, leaser Leaser, logger logging.Logger, interval time.Duration) *Engine {
	if leaser == nil {
		leaser = LocalLeaser{}
	}
	base, cancel := context.WithCancel(context.Background())
	return &Engine{
		sessions: sessions,
		leaser:   leaser,
		logger:   logger,
		interval: interval,
		leaseTTL: interval * 9 / 10,
		now:      time.Now,
		base:     base,
		cancel:   cancel,
		tasks:    make(map[string]*task),
	}
}

// Run resumes tasks for every active session, then blocks until ctx is done
// and all tasks have exited.
func (e *Engine) Run(ctx context.Context) error {
	if err := e.Resume(ctx); err != nil {
		e.logger.Error(ctx, "resume rotation tasks", "error", err)
	}
	<-ctx.Done()
	e.Shutdown()
	return nil
}

// Resume starts a task for each session returned by ListActive.
func (e *Engine) Resume(ctx context.Context) error {
	active, err := e.sessions.ListActive(ctx)
	if err != nil {
		return err
	}
	for _, s := range active {
		e.Track(s)
	}
	e.logger.Info(ctx, "rotation tasks resumed", "count", len(active))
	return nil
}

// Track starts the task for s unless one is already running.
func (e *Engine) Track(s *models.Session) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.base.Err() != nil {
		return
	}
	if _, ok := e.tasks[s.ID]; ok {
		return
	}

	ctx, cancel := context.WithCancel(e.base)
	t := &task{cancel: cancel}
	e.tasks[s.ID] = t

	e.wg.Add(1)
	go e.loop(ctx, t, s.ID, s.ExpiresAt)
}

// Stop cancels the task of sessionID, if any.
func (e *Engine) Stop(sessionID string) {
	e.mu.Lock()
	t, ok := e.tasks[sessionID]
	delete(e.tasks, sessionID)
	e.mu.Unlock()

	if ok {
		t.cancel()
	}
}

// Tracked reports whether a task runs for sessionID.
func (e *Engine) Tracked(sessionID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.tasks[sessionID]
	return ok
}

// Shutdown cancels every task and waits for them to exit. Holding mu while
// cancelling orders it against Track, so no wg.Add can follow the Wait.
func (e *Engine) Shutdown() {
	e.mu.Lock()
	e.cancel()
	e.mu.Unlock()

	e.wg.Wait()
}

// SessionStarted and SessionEnded let the engine observe the session service.
func (e *Engine) SessionStarted(s *models.Session) { e.Track(s) }

func (e *Engine) SessionEnded(sessionID string) { e.Stop(sessionID) }

func (e *Engine) loop(ctx context.Context, t *task, sessionID string, expiresAt time.Time) {
	defer e.wg.Done()
	defer e.forget(sessionID, t)

	logger := e.logger.With("session_id", sessionID)

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	expiry := time.NewTimer(expiresAt.Sub(e.now()))
	defer expiry.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-expiry.C:
			if err := e.sessions.ExpireSession(ctx, sessionID); err != nil && ctx.Err() == nil {
				logger.Error(ctx, "expire session", "error", err)
			}
			return

		case <-ticker.C:
			if !e.tick(ctx, logger, sessionID) {
				return
			}
		}
	}
}

// tick rotates once if this instance holds the lease. It returns false when
// the session can no longer be rotated.
func (e *Engine) tick(ctx context.Context, logger logging.Logger, sessionID string) bool {
	ok, err := e.leaser.Acquire(ctx, sessionID, e.leaseTTL)
	if err != nil {
		logger.Warn(ctx, "rotation lease", "error", err)
		return true
	}
	if !ok {
		return true
	}

	sess, err := e.sessions.RotateToken(ctx, sessionID)
	switch {
	case errors.Is(err, common.ErrorNotFound):
		logger.Warn(ctx, "rotating unknown session")
		return false
	case err != nil:
		if ctx.Err() == nil {
			logger.Error(ctx, "rotate token", "error", err)
		}
		return true
	case !sess.Active:
		return false
	}
	return true
}

func (e *Engine) forget(sessionID string, t *task) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if cur, ok := e.tasks[sessionID]; ok && cur == t {
		delete(e.tasks, sessionID)
	}
}
