// Package roster reads class and student records.
package roster

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

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

// GetClass returns the class or common.ErrorNotFound.
func (r *PostgresRepository) GetClass(ctx context.Context, classID string) (*models.Class, error) {
	query := `SELECT id, subject_name, semester, teacher_id FROM classes WHERE id = $1`

	var c models.Class
	err := r.db.QueryRowContext(ctx, query, classID).Scan(&c.ID, &c.SubjectName, &c.Semester, &c.TeacherID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &c, nil
}

// ClassOwner returns the teacher id owning classID.
func (r *PostgresRepository) ClassOwner(ctx context.Context, classID string) (string, error) {
	c, err := r.GetClass(ctx, classID)
	if err != nil {
		return "", err
	}
	return c.TeacherID, nil
}

// StudentByRoll resolves a roll number within one class. Roll numbers are
// only unique per class.
func (r *PostgresRepository) StudentByRoll(ctx context.Context, classID, rollNumber string) (*models.Student, error) {
	query := `SELECT id, class_id, name, roll_number FROM students WHERE class_id = $1 AND roll_number = $2`

	var s models.Student
	err := r.db.QueryRowContext(ctx, query, classID, rollNumber).Scan(&s.ID, &s.ClassID, &s.Name, &s.RollNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &s, nil
}
