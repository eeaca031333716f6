// Package sessions provides the PostgreSQL-backed credential store for
// attendance sessions.
package sessions

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

const sessionColumns = `id, class_id, owner_id, master_token, current_token, previous_token,
	active, expires_at, last_rotated_at, created_at`

// PostgresRepository implements session storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (*models.Session, error) {
	var s models.Session
	err := row.Scan(&s.ID, &s.ClassID, &s.OwnerID, &s.MasterToken, &s.CurrentToken, &s.PreviousToken,
		&s.Active, &s.ExpiresAt, &s.LastRotatedAt, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts a new session. A second active session for the same class
// violates the partial unique index and yields common.ErrUniqueViolation.
func (r *PostgresRepository) Create(ctx context.Context, s *models.Session) error {
	query := `
		INSERT INTO attendance_sessions (` + sessionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.ExecContext(ctx, query,
		s.ID, s.ClassID, s.OwnerID, s.MasterToken, s.CurrentToken, s.PreviousToken,
		s.Active, s.ExpiresAt, s.LastRotatedAt, s.CreatedAt)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return fmt.Errorf("insert session: %w", common.ErrUniqueViolation)
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// DeactivateClass flips every active session of classID to inactive and
// returns their ids.
func (r *PostgresRepository) DeactivateClass(ctx context.Context, classID string) ([]string, error) {
	query := `UPDATE attendance_sessions SET active = FALSE WHERE class_id = $1 AND active RETURNING id`
	return r.updateReturningIDs(ctx, query, classID)
}

// Deactivate marks a session inactive. Already inactive sessions are matched
// too, so repeating the call succeeds; only an unknown id fails.
func (r *PostgresRepository) Deactivate(ctx context.Context, id string) error {
	query := `UPDATE attendance_sessions SET active = FALSE WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

// Rotate shifts current_token into previous_token and stores newToken as
// current in a single statement. The SET expressions read the pre-update row,
// so the shift cannot interleave with another rotation. Returns
// common.ErrorNotFound when no active session has that id.
func (r *PostgresRepository) Rotate(ctx context.Context, id, newToken string, now time.Time) (*models.Session, error) {
	query := `
		UPDATE attendance_sessions
		SET previous_token = current_token, current_token = $2, last_rotated_at = $3
		WHERE id = $1 AND active
		RETURNING ` + sessionColumns

	s, err := scanSession(r.db.QueryRowContext(ctx, query, id, newToken, now))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return s, nil
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, args ...any) (*models.Session, error) {
	s, err := scanSession(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return s, nil
}

// GetByID returns a session regardless of its state.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Session, error) {
	return r.getOne(ctx, `SELECT `+sessionColumns+` FROM attendance_sessions WHERE id = $1`, id)
}

// GetByMasterToken returns the session row for masterToken in one read, so
// current_token and previous_token come from the same row version.
func (r *PostgresRepository) GetByMasterToken(ctx context.Context, masterToken string) (*models.Session, error) {
	return r.getOne(ctx, `SELECT `+sessionColumns+` FROM attendance_sessions WHERE master_token = $1`, masterToken)
}

// GetActiveByClass returns the active, unexpired session of classID.
func (r *PostgresRepository) GetActiveByClass(ctx context.Context, classID string, now time.Time) (*models.Session, error) {
	return r.getOne(ctx,
		`SELECT `+sessionColumns+` FROM attendance_sessions WHERE class_id = $1 AND active AND expires_at > $2`,
		classID, now)
}

// ListActive returns every active, unexpired session.
func (r *PostgresRepository) ListActive(ctx context.Context, now time.Time) ([]*models.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM attendance_sessions WHERE active AND expires_at > $1 ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("failed to select sessions: %w", err)
	}
	defer rows.Close()

	var result []*models.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// DeactivateExpired flips sessions whose window has passed and returns their ids.
func (r *PostgresRepository) DeactivateExpired(ctx context.Context, now time.Time) ([]string, error) {
	query := `UPDATE attendance_sessions SET active = FALSE WHERE active AND expires_at <= $1 RETURNING id`
	return r.updateReturningIDs(ctx, query, now)
}

func (r *PostgresRepository) updateReturningIDs(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}
