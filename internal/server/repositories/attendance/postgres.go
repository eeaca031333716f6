// Package attendance stores the per-class, per-day attendance aggregate.
// The aggregate is a row in attendance_days plus one attendance_entries row
// per student, so concurrent writers for different students never touch the
// same row.
package attendance

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/qrattend/internal/common"
	"github.com/dmitrijs2005/qrattend/internal/dbx"
	"github.com/dmitrijs2005/qrattend/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// FindOrCreateDay returns the id of the (ClassID, Day) row, inserting day
// when none exists. When the insert loses to a concurrent one and the winner
// is not yet visible, common.ErrorNotFound is returned so the caller can retry.
func (r *PostgresRepository) FindOrCreateDay(ctx context.Context, day *models.AttendanceDay) (string, error) {
	insert := `
		INSERT INTO attendance_days (id, class_id, day, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (class_id, day) DO NOTHING
		RETURNING id
	`
	var id string
	err := r.db.QueryRowContext(ctx, insert, day.ID, day.ClassID, day.Day, day.CreatedAt).Scan(&id)
	switch {
	case err == nil:
		return id, nil
	case errors.Is(err, sql.ErrNoRows):
		// conflict: the row already exists
	case dbx.IsUniqueViolation(err):
		return "", fmt.Errorf("insert day: %w", common.ErrUniqueViolation)
	default:
		return "", fmt.Errorf("db error: %w", err)
	}

	sel := `SELECT id FROM attendance_days WHERE class_id = $1 AND day = $2`
	err = r.db.QueryRowContext(ctx, sel, day.ClassID, day.Day).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", common.ErrorNotFound
		}
		return "", fmt.Errorf("db error: %w", err)
	}
	return id, nil
}

// MarkPresent writes entry as Present. It reports true when an entry was
// created or flipped from Absent, and false when the student was already
// Present, in which case nothing is written.
func (r *PostgresRepository) MarkPresent(ctx context.Context, entry *models.AttendanceEntry) (bool, error) {
	query := `
		WITH upsert AS (
			INSERT INTO attendance_entries (day_id, student_id, status, name, roll_number, marked_at)
			VALUES ($1, $2, 'Present', $3, $4, $5)
			ON CONFLICT (day_id, student_id)
			DO UPDATE SET
				status = 'Present',
				name = EXCLUDED.name,
				roll_number = EXCLUDED.roll_number,
				marked_at = EXCLUDED.marked_at
				WHERE attendance_entries.status <> 'Present'
			RETURNING day_id
		)
		UPDATE attendance_days SET updated_at = $5
		WHERE id IN (SELECT day_id FROM upsert)
	`
	res, err := r.db.ExecContext(ctx, query,
		entry.DayID, entry.StudentID, entry.Name, entry.RollNumber, entry.MarkedAt)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return true, nil
	case 0:
		return false, nil
	default:
		return false, fmt.Errorf("unexpected rows affected: %d", n)
	}
}

// ListDays returns the days of classID between from and to inclusive, each
// with its entries ordered by roll number.
func (r *PostgresRepository) ListDays(ctx context.Context, classID string, from, to time.Time) ([]*models.AttendanceDay, error) {
	query := `
		SELECT d.id, d.class_id, d.day, d.created_at, d.updated_at,
			e.student_id, e.status, e.name, e.roll_number, e.marked_at
		FROM attendance_days d
		LEFT JOIN attendance_entries e ON e.day_id = d.id
		WHERE d.class_id = $1 AND d.day BETWEEN $2 AND $3
		ORDER BY d.day, e.roll_number
	`
	rows, err := r.db.QueryContext(ctx, query, classID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to select days: %w", err)
	}
	defer rows.Close()

	var (
		result []*models.AttendanceDay
		cur    *models.AttendanceDay
	)
	for rows.Next() {
		var (
			d                                   models.AttendanceDay
			studentID, status, name, rollNumber sql.NullString
			markedAt                            sql.NullTime
		)
		if err := rows.Scan(&d.ID, &d.ClassID, &d.Day, &d.CreatedAt, &d.UpdatedAt,
			&studentID, &status, &name, &rollNumber, &markedAt); err != nil {
			return nil, err
		}
		if cur == nil || cur.ID != d.ID {
			cur = &d
			result = append(result, cur)
		}
		if studentID.Valid {
			cur.Entries = append(cur.Entries, models.AttendanceEntry{
				DayID:      cur.ID,
				StudentID:  studentID.String,
				Status:     models.AttendanceStatus(status.String),
				Name:       name.String,
				RollNumber: rollNumber.String,
				MarkedAt:   markedAt.Time,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
