// Package services contains server-side business logic: the session
// credential store, the attendance ledger and redemption validation.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/qrattend/internal/common"
	"github.com/dmitrijs2005/qrattend/internal/dbx"
	"github.com/dmitrijs2005/qrattend/internal/logging"
	"github.com/dmitrijs2005/qrattend/internal/server/broadcast"
	"github.com/dmitrijs2005/qrattend/internal/server/config"
	"github.com/dmitrijs2005/qrattend/internal/server/metrics"
	"github.com/dmitrijs2005/qrattend/internal/server/models"
	"github.com/dmitrijs2005/qrattend/internal/server/repositories/repomanager"
	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
)

// Reasons a session stops being active.
const (
	EndReasonEnded    = "ended"
	EndReasonExpired  = "expired"
	EndReasonReplaced = "replaced"
)

// SessionObserver is told about session lifecycle changes made through
// SessionService. Callbacks run synchronously and must not block.
type SessionObserver interface {
	SessionStarted(s *models.Session)
	SessionEnded(sessionID string)
}

// SessionService owns attendance sessions:
// - StartSession / EndSession: lifecycle, with owner checks
// - RotateToken: sub-token rotation with a one-token grace window
// - SweepExpired: deactivation of sessions past their window
type SessionService struct {
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	publisher     broadcast.Publisher
	logger        logging.Logger
	window        time.Duration
	publicBaseURL string
	now           func() time.Time
	backoff       func() retry.Backoff

	mu        sync.RWMutex
	observers []SessionObserver
}

// NewSessionService constructs a SessionService using repositories and server config.
func NewSessionService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config,
	publisher broadcast.Publisher, logger logging.Logger) *SessionService {
	return &SessionService{
		db:            db,
		repomanager:   m,
		publisher:     publisher,
		logger:        logger,
		window:        cfg.SessionWindow,
		publicBaseURL: cfg.PublicBaseURL,
		now:           time.Now,
		backoff:       defaultBackoff,
	}
}

// AddObserver registers o for lifecycle callbacks.
func (s *SessionService) AddObserver(o SessionObserver) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, o)
}

// StartSession opens a new session for classID on behalf of callerID, who
// must own the class. Any active session of the class is deactivated in the
// same transaction; a concurrent start that wins the one-active-per-class
// index makes this attempt retry.
func (s *SessionService) StartSession(ctx context.Context, classID, callerID string) (*models.Session, error) {
	if err := authorizeClass(ctx, s.repomanager.Roster(s.db), classID, callerID); err != nil {
		return nil, err
	}

	var (
		created  *models.Session
		replaced []string
	)
	err := retry.Do(ctx, s.backoff(), func(ctx context.Context) error {
		sess, err := s.newSession(classID, callerID)
		if err != nil {
			return err
		}

		var ids []string
		err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
			repo := s.repomanager.Sessions(tx)
			var err error
			if ids, err = repo.DeactivateClass(ctx, classID); err != nil {
				return err
			}
			return repo.Create(ctx, sess)
		})
		if errors.Is(err, common.ErrUniqueViolation) {
			return retry.RetryableError(err)
		}
		if err != nil {
			return err
		}

		created, replaced = sess, ids
		return nil
	})
	if err != nil {
		if errors.Is(err, common.ErrUniqueViolation) {
			return nil, common.ErrorInternal
		}
		return nil, fmt.Errorf("start session: %w", err)
	}

	for _, id := range replaced {
		s.ended(ctx, id, EndReasonReplaced)
	}

	metrics.SessionsStarted.Inc()
	s.logger.Info(ctx, "session started", "session_id", created.ID, "class_id", classID, "owner_id", callerID)

	for _, o := range s.snapshotObservers() {
		o.SessionStarted(created)
	}
	return created, nil
}

func (s *SessionService) newSession(classID, ownerID string) (*models.Session, error) {
	master, err := common.NewMasterToken()
	if err != nil {
		return nil, err
	}
	sub, err := common.NewSubToken()
	if err != nil {
		return nil, err
	}
	now := s.now()
	return &models.Session{
		ID:            uuid.NewString(),
		ClassID:       classID,
		OwnerID:       ownerID,
		MasterToken:   master,
		CurrentToken:  sub,
		Active:        true,
		ExpiresAt:     now.Add(s.window),
		LastRotatedAt: now,
		CreatedAt:     now,
	}, nil
}

// AuthorizeSession returns the session if callerID owns it.
func (s *SessionService) AuthorizeSession(ctx context.Context, sessionID, callerID string) (*models.Session, error) {
	sess, err := s.repomanager.Sessions(s.db).GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.OwnerID != callerID {
		return nil, common.ErrorUnauthorized
	}
	return sess, nil
}

// Rotate is RotateToken with an owner check.
func (s *SessionService) Rotate(ctx context.Context, sessionID, callerID string) (*models.Session, error) {
	if _, err := s.AuthorizeSession(ctx, sessionID, callerID); err != nil {
		return nil, err
	}
	return s.RotateToken(ctx, sessionID)
}

// RotateToken shifts the current sub-token into the previous slot and issues
// a fresh one. An unknown session yields common.ErrorNotFound. Rotating an
// inactive session succeeds without writing: the returned copy carries a
// token nobody can redeem and Active is false.
func (s *SessionService) RotateToken(ctx context.Context, sessionID string) (*models.Session, error) {
	token, err := common.NewSubToken()
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	repo := s.repomanager.Sessions(s.db)
	sess, err := repo.Rotate(ctx, sessionID, token, s.now())
	if errors.Is(err, common.ErrorNotFound) {
		existing, err := repo.GetByID(ctx, sessionID)
		if err != nil {
			return nil, err
		}
		noop := *existing
		noop.CurrentToken = token
		return &noop, nil
	}
	if err != nil {
		return nil, fmt.Errorf("rotate token: %w", err)
	}

	metrics.RotationsTotal.Inc()
	s.logger.Debug(ctx, "token rotated", "session_id", sessionID)
	s.publisher.Publish(broadcast.SessionTopic(sess.ID), broadcast.Event{
		Type:      broadcast.EventTokenRotated,
		SessionID: sess.ID,
		Token:     sess.CurrentToken,
		ScanURL:   s.ScanURL(sess),
		ExpiresAt: sess.ExpiresAt,
		Timestamp: s.now(),
	})
	return sess, nil
}

// EndSession deactivates a session owned by callerID. Ending an inactive
// session is a no-op.
func (s *SessionService) EndSession(ctx context.Context, sessionID, callerID string) error {
	sess, err := s.AuthorizeSession(ctx, sessionID, callerID)
	if err != nil {
		return err
	}
	return s.end(ctx, sess, EndReasonEnded)
}

// ExpireSession deactivates a session whose window has passed.
func (s *SessionService) ExpireSession(ctx context.Context, sessionID string) error {
	sess, err := s.repomanager.Sessions(s.db).GetByID(ctx, sessionID)
	if err != nil {
		return err
	}
	return s.end(ctx, sess, EndReasonExpired)
}

func (s *SessionService) end(ctx context.Context, sess *models.Session, reason string) error {
	if !sess.Active {
		return nil
	}
	if err := s.repomanager.Sessions(s.db).Deactivate(ctx, sess.ID); err != nil {
		return fmt.Errorf("end session: %w", err)
	}
	s.ended(ctx, sess.ID, reason)
	return nil
}

// ended runs the side effects of a session leaving the active state.
func (s *SessionService) ended(ctx context.Context, sessionID, reason string) {
	metrics.SessionsEnded.WithLabelValues(reason).Inc()
	s.logger.Info(ctx, "session ended", "session_id", sessionID, "reason", reason)

	topic := broadcast.SessionTopic(sessionID)
	s.publisher.Publish(topic, broadcast.Event{
		Type:      broadcast.EventSessionEnded,
		SessionID: sessionID,
		Timestamp: s.now(),
	})
	// Viewers drain session_ended from their buffer, then see the channel close.
	s.publisher.CloseTopic(topic)
	for _, o := range s.snapshotObservers() {
		o.SessionEnded(sessionID)
	}
}

// GetActiveSession returns the live session of classID for its owner, or
// common.ErrorNotFound. Expiry is evaluated at read time.
func (s *SessionService) GetActiveSession(ctx context.Context, classID, callerID string) (*models.Session, error) {
	if err := authorizeClass(ctx, s.repomanager.Roster(s.db), classID, callerID); err != nil {
		return nil, err
	}
	return s.repomanager.Sessions(s.db).GetActiveByClass(ctx, classID, s.now())
}

// ListActive returns every live session.
func (s *SessionService) ListActive(ctx context.Context) ([]*models.Session, error) {
	return s.repomanager.Sessions(s.db).ListActive(ctx, s.now())
}

// SweepExpired deactivates sessions past their window and returns how many
// were flipped.
func (s *SessionService) SweepExpired(ctx context.Context) (int, error) {
	ids, err := s.repomanager.Sessions(s.db).DeactivateExpired(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("sweep sessions: %w", err)
	}
	for _, id := range ids {
		s.ended(ctx, id, EndReasonExpired)
	}
	return len(ids), nil
}

// ScanURL builds the link a QR code encodes for sess.
func (s *SessionService) ScanURL(sess *models.Session) string {
	u, err := url.Parse(s.publicBaseURL)
	if err != nil {
		u = &url.URL{}
	}
	u.Path = strings.TrimRight(u.Path, "/") + "/scan"
	q := url.Values{}
	q.Set("token", sess.MasterToken)
	q.Set("t", sess.CurrentToken)
	u.RawQuery = q.Encode()
	return u.String()
}

func (s *SessionService) snapshotObservers() []SessionObserver {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]SessionObserver(nil), s.observers...)
}
