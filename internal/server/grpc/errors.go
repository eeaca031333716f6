package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/qrattend/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// statusSentinels maps domain errors to status codes. The status message is
// the sentinel's own text so clients can map it back.
var statusSentinels = []struct {
	err  error
	code codes.Code
}{
	{common.ErrSessionInvalid, codes.FailedPrecondition},
	{common.ErrTokenExpired, codes.FailedPrecondition},
	{common.ErrStudentNotFound, codes.NotFound},
	{common.ErrorNotFound, codes.NotFound},
	{common.ErrorUnauthorized, codes.PermissionDenied},
}

// toStatus converts a service error into a gRPC status error, logging
// anything unexpected.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	for _, m := range statusSentinels {
		if errors.Is(err, m.err) {
			return status.Error(m.code, m.err.Error())
		}
	}

	switch {
	case errors.Is(err, common.ErrInvalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}

	s.logger.Error(ctx, "request failed", "error", err)
	return status.Error(codes.Internal, common.ErrorInternal.Error())
}
