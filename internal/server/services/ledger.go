package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/qrattend/internal/common"
	"github.com/dmitrijs2005/qrattend/internal/server/models"
	"github.com/dmitrijs2005/qrattend/internal/server/repositories/repomanager"
	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
)

// LedgerService writes and reads the per-class, per-day attendance aggregate.
type LedgerService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
	backoff     func() retry.Backoff
}

func NewLedgerService(db *sql.DB, m repomanager.RepositoryManager) *LedgerService {
	return &LedgerService{db: db, repomanager: m, now: time.Now, backoff: defaultBackoff}
}

// MarkPresent records studentID as Present for classID on date. It reports
// changed=false when the student was already Present. The day aggregate is
// created on first use; losing a creation race is retried, and only
// exhausted retries surface, as common.ErrorInternal.
func (l *LedgerService) MarkPresent(ctx context.Context, classID string, date time.Time,
	studentID, name, rollNumber string) (bool, error) {
	repo := l.repomanager.Attendance(l.db)
	day := dateOnly(date)

	var dayID string
	err := retry.Do(ctx, l.backoff(), func(ctx context.Context) error {
		id, err := repo.FindOrCreateDay(ctx, &models.AttendanceDay{
			ID:        uuid.NewString(),
			ClassID:   classID,
			Day:       day,
			CreatedAt: l.now(),
		})
		if errors.Is(err, common.ErrUniqueViolation) || errors.Is(err, common.ErrorNotFound) {
			return retry.RetryableError(err)
		}
		if err != nil {
			return err
		}
		dayID = id
		return nil
	})
	if err != nil {
		if errors.Is(err, common.ErrUniqueViolation) || errors.Is(err, common.ErrorNotFound) {
			return false, common.ErrorInternal
		}
		return false, fmt.Errorf("find or create day: %w", err)
	}

	changed, err := repo.MarkPresent(ctx, &models.AttendanceEntry{
		DayID:      dayID,
		StudentID:  studentID,
		Status:     models.StatusPresent,
		Name:       name,
		RollNumber: rollNumber,
		MarkedAt:   l.now(),
	})
	if err != nil {
		return false, fmt.Errorf("mark present: %w", err)
	}
	return changed, nil
}

// Day returns the aggregate of classID for date. A day nobody redeemed on
// comes back with no entries.
func (l *LedgerService) Day(ctx context.Context, classID, callerID string, date time.Time) (*models.AttendanceDay, error) {
	if err := authorizeClass(ctx, l.repomanager.Roster(l.db), classID, callerID); err != nil {
		return nil, err
	}
	day := dateOnly(date)
	days, err := l.repomanager.Attendance(l.db).ListDays(ctx, classID, day, day)
	if err != nil {
		return nil, fmt.Errorf("list days: %w", err)
	}
	if len(days) == 0 {
		return &models.AttendanceDay{ClassID: classID, Day: day}, nil
	}
	return days[0], nil
}

// Month returns every recorded day of classID in the given month.
func (l *LedgerService) Month(ctx context.Context, classID, callerID string, year int, month time.Month) ([]*models.AttendanceDay, error) {
	if err := authorizeClass(ctx, l.repomanager.Roster(l.db), classID, callerID); err != nil {
		return nil, err
	}
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)
	days, err := l.repomanager.Attendance(l.db).ListDays(ctx, classID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list days: %w", err)
	}
	return days, nil
}

// Query date layouts accepted by Lookup.
const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

// Lookup answers an attendance query for classID: date selects one day,
// otherwise month selects a calendar month, and with neither set the whole
// history is returned. Malformed values yield common.ErrInvalidArgument.
func (l *LedgerService) Lookup(ctx context.Context, classID, callerID, date, month string) ([]*models.AttendanceDay, error) {
	switch {
	case date != "":
		d, err := time.Parse(DateLayout, date)
		if err != nil {
			return nil, fmt.Errorf("%w: date %q", common.ErrInvalidArgument, date)
		}
		day, err := l.Day(ctx, classID, callerID, d)
		if err != nil {
			return nil, err
		}
		return []*models.AttendanceDay{day}, nil
	case month != "":
		m, err := time.Parse(MonthLayout, month)
		if err != nil {
			return nil, fmt.Errorf("%w: month %q", common.ErrInvalidArgument, month)
		}
		return l.Month(ctx, classID, callerID, m.Year(), m.Month())
	}

	if err := authorizeClass(ctx, l.repomanager.Roster(l.db), classID, callerID); err != nil {
		return nil, err
	}
	from := time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)
	days, err := l.repomanager.Attendance(l.db).ListDays(ctx, classID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list days: %w", err)
	}
	return days, nil
}
