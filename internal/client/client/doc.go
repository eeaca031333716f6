// Package client is the gRPC client of the attendance service used by the
// CLI. It attaches the teacher's access token to every call and maps status
// errors back to the shared sentinel errors.
package client
