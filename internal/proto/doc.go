// Package proto holds the AttendanceService gRPC contract. Messages and
// bindings are generated from attendance.proto; run go generate after
// editing it.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative attendance.proto

// Channel names for SubscribeRequest.
const (
	ChannelSession = "session"
	ChannelOwner   = "owner"
)
