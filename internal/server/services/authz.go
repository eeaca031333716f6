package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/qrattend/internal/common"
	"github.com/dmitrijs2005/qrattend/internal/server/repositories/roster"
	"github.com/sethvargo/go-retry"
)

// authorizeClass checks that callerID owns classID. An unknown class is
// reported the same way as a foreign one.
func authorizeClass(ctx context.Context, repo roster.Repository, classID, callerID string) error {
	owner, err := repo.ClassOwner(ctx, classID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorUnauthorized
		}
		return fmt.Errorf("class owner lookup: %w", err)
	}
	if owner == "" || owner != callerID {
		return common.ErrorUnauthorized
	}
	return nil
}

// defaultBackoff bounds storage retries on uniqueness races.
func defaultBackoff() retry.Backoff {
	return retry.WithMaxRetries(4, retry.NewExponential(10*time.Millisecond))
}

// dateOnly truncates t to its calendar date in t's location and returns it
// as midnight UTC, which is how DATE columns round-trip.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
