package roster

import (
	"context"

	"github.com/dmitrijs2005/qrattend/internal/server/models"
)

// Repository is the read-only view of classes and students maintained by the
// class management flow.
type Repository interface {
	GetClass(ctx context.Context, classID string) (*models.Class, error)
	ClassOwner(ctx context.Context, classID string) (string, error)
	StudentByRoll(ctx context.Context, classID, rollNumber string) (*models.Student, error)
}
