package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/qrattend/internal/common"
	pb "github.com/dmitrijs2005/qrattend/internal/proto"
	"github.com/dmitrijs2005/qrattend/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// publicMethods are reachable without an access token: students redeem
// anonymously.
var publicMethods = map[string]bool{
	pb.AttendanceService_Redeem_FullMethodName: true,
	pb.AttendanceService_Ping_FullMethodName:   true,
}

// authenticate resolves the access token in the incoming metadata and
// returns ctx with the teacher id attached.
func (s *GRPCServer) authenticate(ctx context.Context) (context.Context, error) {
	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AccessTokenHeaderName)
		if len(values) > 0 {
			accessToken = values[0]
		}
	}
	if len(accessToken) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	userID, err := auth.GetUserIDFromToken(accessToken, s.jwtSecret)
	if err != nil {
		if errors.Is(err, common.ErrAccessTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, common.ErrAccessTokenExpired.Error())
		}
		return nil, status.Error(codes.Unauthenticated, common.ErrInvalidToken.Error())
	}

	return auth.WithUserID(ctx, userID), nil
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if !publicMethods[info.FullMethod] {
		var err error
		if ctx, err = s.authenticate(ctx); err != nil {
			return nil, err
		}
	}

	return handler(ctx, req)
}

// authStream overrides the stream context with the authenticated one.
type authStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (a *authStream) Context() context.Context { return a.ctx }

func (s *GRPCServer) accessTokenStreamInterceptor(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {

	if publicMethods[info.FullMethod] {
		return handler(srv, ss)
	}

	ctx, err := s.authenticate(ss.Context())
	if err != nil {
		return err
	}

	return handler(srv, &authStream{ServerStream: ss, ctx: ctx})
}
