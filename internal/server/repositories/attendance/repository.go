package attendance

import (
	"context"
	"time"

	"github.com/dmitrijs2005/qrattend/internal/server/models"
)

type Repository interface {
	FindOrCreateDay(ctx context.Context, day *models.AttendanceDay) (string, error)
	MarkPresent(ctx context.Context, entry *models.AttendanceEntry) (bool, error)
	ListDays(ctx context.Context, classID string, from, to time.Time) ([]*models.AttendanceDay, error)
}
