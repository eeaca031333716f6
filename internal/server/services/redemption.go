package services

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/qrattend/internal/common"
	"github.com/dmitrijs2005/qrattend/internal/logging"
	"github.com/dmitrijs2005/qrattend/internal/server/broadcast"
	"github.com/dmitrijs2005/qrattend/internal/server/metrics"
	"github.com/dmitrijs2005/qrattend/internal/server/models"
	"github.com/dmitrijs2005/qrattend/internal/server/repositories/repomanager"
)

// Ledger records presence. *LedgerService implements it.
type Ledger interface {
	MarkPresent(ctx context.Context, classID string, date time.Time, studentID, name, rollNumber string) (bool, error)
}

// Redemption is the outcome of an accepted redemption.
type Redemption struct {
	SessionID      string
	ClassID        string
	StudentID      string
	StudentName    string
	RollNumber     string
	Date           time.Time
	AlreadyPresent bool
}

// RedemptionService validates a student's (master token, sub-token, roll
// number) claim and records presence. It only reads sessions.
type RedemptionService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	ledger      Ledger
	publisher   broadcast.Publisher
	logger      logging.Logger
	loc         *time.Location
	now         func() time.Time
}

// NewRedemptionService constructs the validator. loc defines the calendar
// day a redemption counts toward.
func NewRedemptionService(db *sql.DB, m repomanager.RepositoryManager, ledger Ledger,
	publisher broadcast.Publisher, logger logging.Logger, loc *time.Location) *RedemptionService {
	if loc == nil {
		loc = time.UTC
	}
	return &RedemptionService{
		db:          db,
		repomanager: m,
		ledger:      ledger,
		publisher:   publisher,
		logger:      logger,
		loc:         loc,
		now:         time.Now,
	}
}

// Redeem accepts a redemption or fails with common.ErrSessionInvalid,
// common.ErrTokenExpired or common.ErrStudentNotFound. A student already
// Present today gets the same success with AlreadyPresent set, and no event
// is broadcast for it.
func (r *RedemptionService) Redeem(ctx context.Context, masterToken, subToken, rollNumber string) (*Redemption, error) {
	res, err := r.redeem(ctx, masterToken, subToken, rollNumber)
	metrics.RedemptionsTotal.WithLabelValues(outcome(res, err)).Inc()
	return res, err
}

func (r *RedemptionService) redeem(ctx context.Context, masterToken, subToken, rollNumber string) (*Redemption, error) {
	if masterToken == "" {
		return nil, common.ErrSessionInvalid
	}

	now := r.now()

	sess, err := r.repomanager.Sessions(r.db).GetByMasterToken(ctx, masterToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrSessionInvalid
		}
		return nil, fmt.Errorf("session lookup: %w", err)
	}
	if !sess.IsLive(now) {
		return nil, common.ErrSessionInvalid
	}

	if !tokenAccepted(sess, subToken) {
		return nil, common.ErrTokenExpired
	}

	roster := r.repomanager.Roster(r.db)
	student, err := roster.StudentByRoll(ctx, sess.ClassID, rollNumber)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrStudentNotFound
		}
		return nil, fmt.Errorf("student lookup: %w", err)
	}

	today := now.In(r.loc)
	changed, err := r.ledger.MarkPresent(ctx, sess.ClassID, today, student.ID, student.Name, student.RollNumber)
	if err != nil {
		return nil, err
	}

	res := &Redemption{
		SessionID:      sess.ID,
		ClassID:        sess.ClassID,
		StudentID:      student.ID,
		StudentName:    student.Name,
		RollNumber:     student.RollNumber,
		Date:           dateOnly(today),
		AlreadyPresent: !changed,
	}

	if changed {
		r.broadcast(ctx, sess, student, now)
	}
	return res, nil
}

// tokenAccepted compares presented against the current and the single
// retained previous sub-token, read from one session row. A session without
// a current token does not enforce matching.
func tokenAccepted(sess *models.Session, presented string) bool {
	if sess.CurrentToken == "" {
		return true
	}
	if subtle.ConstantTimeCompare([]byte(presented), []byte(sess.CurrentToken)) == 1 {
		return true
	}
	return sess.PreviousToken != "" &&
		subtle.ConstantTimeCompare([]byte(presented), []byte(sess.PreviousToken)) == 1
}

// broadcast fans a check-in out to the session viewer and the owner's
// dashboard. Failures are logged only.
func (r *RedemptionService) broadcast(ctx context.Context, sess *models.Session, student *models.Student, at time.Time) {
	r.publisher.Publish(broadcast.SessionTopic(sess.ID), broadcast.Event{
		Type:        broadcast.EventCheckIn,
		SessionID:   sess.ID,
		StudentName: student.Name,
		RollNumber:  student.RollNumber,
		Timestamp:   at,
	})

	subject := ""
	class, err := r.repomanager.Roster(r.db).GetClass(ctx, sess.ClassID)
	if err != nil {
		r.logger.Warn(ctx, "class lookup for dashboard event failed", "class_id", sess.ClassID, "error", err)
	} else {
		subject = class.SubjectName
	}

	r.publisher.Publish(broadcast.OwnerTopic(sess.OwnerID), broadcast.Event{
		Type:        broadcast.EventDashboardRefresh,
		SessionID:   sess.ID,
		Subject:     subject,
		StudentName: student.Name,
		Timestamp:   at,
	})
}

func outcome(res *Redemption, err error) string {
	switch {
	case err == nil && res.AlreadyPresent:
		return metrics.OutcomeAlreadyPresent
	case err == nil:
		return metrics.OutcomeAccepted
	case errors.Is(err, common.ErrSessionInvalid):
		return metrics.OutcomeSessionInvalid
	case errors.Is(err, common.ErrTokenExpired):
		return metrics.OutcomeTokenExpired
	case errors.Is(err, common.ErrStudentNotFound):
		return metrics.OutcomeStudentNotFound
	default:
		return metrics.OutcomeError
	}
}
