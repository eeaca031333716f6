package broadcast

import "time"

// Kind selects a fan-out channel family.
type Kind string

const (
	// KindSession channels are keyed by session id and feed the live QR/roster display.
	KindSession Kind = "session"
	// KindOwner channels are keyed by teacher id and feed the dashboard.
	KindOwner Kind = "owner"
)

// Topic names one channel.
type Topic struct {
	Kind Kind
	Key  string
}

func SessionTopic(sessionID string) Topic { return Topic{Kind: KindSession, Key: sessionID} }

func OwnerTopic(ownerID string) Topic { return Topic{Kind: KindOwner, Key: ownerID} }

// Event types.
const (
	EventCheckIn          = "check_in"
	EventDashboardRefresh = "dashboard_refresh"
	EventTokenRotated     = "token_rotated"
	EventSessionEnded     = "session_ended"
)

// Event is the payload delivered to subscribers. Fields irrelevant to Type
// are left empty.
type Event struct {
	Type        string    `json:"type"`
	SessionID   string    `json:"sessionId,omitempty"`
	StudentName string    `json:"studentName,omitempty"`
	RollNumber  string    `json:"rollNumber,omitempty"`
	Subject     string    `json:"subject,omitempty"`
	Token       string    `json:"token,omitempty"`
	ScanURL     string    `json:"scanUrl,omitempty"`
	ExpiresAt   time.Time `json:"expiresAt,omitzero"`
	Timestamp   time.Time `json:"timestamp"`
}
