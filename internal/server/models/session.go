// Package models defines server-side data models persisted in the database.
package models

import "time"

// Session is one teacher-initiated, time-bounded attendance window for a class.
type Session struct {
	ID      string
	ClassID string
	OwnerID string

	// MasterToken identifies the session itself and is shared out-of-band.
	MasterToken string
	// CurrentToken is the rotating sub-token a redemption must present.
	CurrentToken string
	// PreviousToken holds what CurrentToken held before the last rotation,
	// empty before the first rotation.
	PreviousToken string

	Active        bool
	ExpiresAt     time.Time
	LastRotatedAt time.Time
	CreatedAt     time.Time
}

// IsLive reports whether the session can accept redemptions at now.
// Expiry is checked independently of the Active flag.
func (s *Session) IsLive(now time.Time) bool {
	return s.Active && now.Before(s.ExpiresAt)
}
