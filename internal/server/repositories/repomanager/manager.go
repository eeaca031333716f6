package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/qrattend/internal/dbx"
	"github.com/dmitrijs2005/qrattend/internal/server/repositories/attendance"
	"github.com/dmitrijs2005/qrattend/internal/server/repositories/roster"
	"github.com/dmitrijs2005/qrattend/internal/server/repositories/sessions"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Sessions(db dbx.DBTX) sessions.Repository
	Attendance(db dbx.DBTX) attendance.Repository
	Roster(db dbx.DBTX) roster.Repository
}
