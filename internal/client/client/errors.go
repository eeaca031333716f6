package client

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/qrattend/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
)

// knownSentinels are matched against the status message, which the server
// sets to the sentinel's text.
var knownSentinels = []error{
	common.ErrSessionInvalid,
	common.ErrTokenExpired,
	common.ErrStudentNotFound,
	common.ErrorNotFound,
	common.ErrorUnauthorized,
	common.ErrAccessTokenExpired,
	common.ErrInvalidToken,
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	for _, s := range knownSentinels {
		if st.Message() == s.Error() {
			return s
		}
	}

	switch st.Code() {
	case codes.Unauthenticated:
		return ErrUnauthorized
	case codes.PermissionDenied:
		return common.ErrorUnauthorized
	case codes.NotFound:
		return common.ErrorNotFound
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", common.ErrInvalidArgument, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
