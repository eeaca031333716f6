package attendance

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/qrattend/internal/common"
	"github.com/dmitrijs2005/qrattend/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

var (
	insertDay = `INSERT INTO attendance_days .* ON CONFLICT \(class_id, day\) DO NOTHING\s+RETURNING id`
	selectDay = `SELECT id FROM attendance_days WHERE class_id = \$1 AND day = \$2`
	markEntry = `WITH upsert AS .*INSERT INTO attendance_entries .*ON CONFLICT \(day_id, student_id\).*WHERE attendance_entries\.status <> 'Present'.*UPDATE attendance_days SET updated_at`
)

func newDay() *models.AttendanceDay {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	return &models.AttendanceDay{
		ID:        "d-new",
		ClassID:   "c1",
		Day:       time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		CreatedAt: now,
	}
}

func TestFindOrCreateDay_Inserted(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	d := newDay()
	mock.ExpectQuery(insertDay).WithArgs("d-new", "c1", d.Day, d.CreatedAt).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("d-new"))

	id, err := repo.FindOrCreateDay(context.Background(), d)
	require.NoError(t, err)
	assert.Equal(t, "d-new", id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindOrCreateDay_ExistingRow(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	d := newDay()
	mock.ExpectQuery(insertDay).WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(selectDay).WithArgs("c1", d.Day).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("d-old"))

	id, err := repo.FindOrCreateDay(context.Background(), d)
	require.NoError(t, err)
	assert.Equal(t, "d-old", id)
}

func TestFindOrCreateDay_WinnerNotVisible(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertDay).WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(selectDay).WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindOrCreateDay(context.Background(), newDay())
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestFindOrCreateDay_UniqueViolation(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertDay).WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.FindOrCreateDay(context.Background(), newDay())
	require.ErrorIs(t, err, common.ErrUniqueViolation)
}

func TestFindOrCreateDay_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertDay).WillReturnError(errors.New("db is down"))

	_, err := repo.FindOrCreateDay(context.Background(), newDay())
	require.Error(t, err)
	require.Contains(t, err.Error(), "db is down")
}

func entry() *models.AttendanceEntry {
	return &models.AttendanceEntry{
		DayID: "d1", StudentID: "st1", Name: "Asha", RollNumber: "101",
		MarkedAt: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
	}
}

func TestMarkPresent(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		want     bool
		wantErr  bool
	}{
		{"created or flipped", 1, true, false},
		{"already present", 0, false, false},
		{"unexpected", 2, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newRepoWithMock(t)
			defer db.Close()

			e := entry()
			mock.ExpectExec(markEntry).
				WithArgs("d1", "st1", "Asha", "101", e.MarkedAt).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			changed, err := repo.MarkPresent(context.Background(), e)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, changed)
		})
	}
}

func TestMarkPresent_Errors(t *testing.T) {
	t.Run("exec", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()

		mock.ExpectExec(markEntry).WillReturnError(errors.New("db is down"))

		_, err := repo.MarkPresent(context.Background(), entry())
		require.ErrorContains(t, err, "db error")
	})

	t.Run("rows affected", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()

		mock.ExpectExec(markEntry).WillReturnResult(sqlmock.NewErrorResult(errors.New("rows-err")))

		_, err := repo.MarkPresent(context.Background(), entry())
		require.ErrorContains(t, err, "rows affected error")
	})
}

func TestListDays_GroupsEntries(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	d1 := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
	ts := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	cols := []string{"id", "class_id", "day", "created_at", "updated_at",
		"student_id", "status", "name", "roll_number", "marked_at"}
	rows := sqlmock.NewRows(cols).
		AddRow("d1", "c1", d1, ts, ts, "st1", "Present", "Asha", "101", ts).
		AddRow("d1", "c1", d1, ts, ts, "st2", "Absent", "Ravi", "102", ts).
		AddRow("d2", "c1", d2, ts, ts, nil, nil, nil, nil, nil)

	mock.ExpectQuery(`FROM attendance_days d\s+LEFT JOIN attendance_entries e`).
		WithArgs("c1", d1, d2).
		WillReturnRows(rows)

	days, err := repo.ListDays(context.Background(), "c1", d1, d2)
	require.NoError(t, err)
	require.Len(t, days, 2)

	require.Len(t, days[0].Entries, 2)
	assert.Equal(t, models.StatusPresent, days[0].Entries[0].Status)
	assert.Equal(t, "Ravi", days[0].Entries[1].Name)
	assert.Equal(t, models.StatusAbsent, days[0].Entries[1].Status)
	assert.Empty(t, days[1].Entries)
}

func TestListDays_QueryError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM attendance_days`).WillReturnError(errors.New("boom"))

	_, err := repo.ListDays(context.Background(), "c1", time.Now(), time.Now())
	require.Error(t, err)
}
