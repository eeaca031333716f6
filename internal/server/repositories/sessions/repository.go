package sessions

import (
	"context"
	"time"

	"github.com/dmitrijs2005/qrattend/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, s *models.Session) error
	DeactivateClass(ctx context.Context, classID string) ([]string, error)
	Deactivate(ctx context.Context, id string) error
	Rotate(ctx context.Context, id, newToken string, now time.Time) (*models.Session, error)
	GetByID(ctx context.Context, id string) (*models.Session, error)
	GetByMasterToken(ctx context.Context, masterToken string) (*models.Session, error)
	GetActiveByClass(ctx context.Context, classID string, now time.Time) (*models.Session, error)
	ListActive(ctx context.Context, now time.Time) ([]*models.Session, error)
	DeactivateExpired(ctx context.Context, now time.Time) ([]string, error)
}
