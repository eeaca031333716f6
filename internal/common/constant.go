// Package common contains shared constants and sentinel errors used across
// the attendance service components.
package common

import "time"

// AccessTokenHeaderName is the gRPC/HTTP metadata key used to carry the
// teacher's access token on inbound requests.
const AccessTokenHeaderName = "access_token"

const (
	// MasterTokenSize and SubTokenSize are random byte counts before hex encoding.
	MasterTokenSize = 32
	SubTokenSize    = 16

	DefaultSessionWindow    = 5 * time.Minute
	DefaultRotationInterval = 30 * time.Second
)
