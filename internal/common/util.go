package common

import (
	"crypto/rand"
	"encoding/hex"
)

// MakeRandHexString generates size random bytes and returns them hex-encoded,
// so the resulting string is 2*size characters long.
func MakeRandHexString(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// NewMasterToken returns a fresh long-lived session credential.
func NewMasterToken() (string, error) {
	return MakeRandHexString(MasterTokenSize)
}

// NewSubToken returns a fresh rotating sub-token.
func NewSubToken() (string, error) {
	return MakeRandHexString(SubTokenSize)
}
