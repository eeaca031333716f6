package grpc

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/qrattend/internal/common"
	pb "github.com/dmitrijs2005/qrattend/internal/proto"
	"github.com/dmitrijs2005/qrattend/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// helper to build server
func newTestServer(secret string) *GRPCServer {
	return &GRPCServer{
		logger:    nopLogger{},
		jwtSecret: []byte(secret),
	}
}

func tokenContext(t *testing.T, secret, userID string, ttl time.Duration) context.Context {
	t.Helper()
	token, err := auth.GenerateToken(userID, []byte(secret), ttl)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	md := metadata.New(map[string]string{common.AccessTokenHeaderName: token})
	return metadata.NewIncomingContext(context.Background(), md)
}

func TestInterceptor_PublicMethods_AllowWithoutToken(t *testing.T) {
	s := newTestServer("secret")

	for _, method := range []string{pb.AttendanceService_Redeem_FullMethodName, pb.AttendanceService_Ping_FullMethodName} {
		info := &grpc.UnaryServerInfo{FullMethod: method}
		handlerCalled := false

		h := func(ctx context.Context, req interface{}) (interface{}, error) {
			handlerCalled = true
			return "ok", nil
		}

		resp, err := s.accessTokenInterceptor(context.Background(), nil, info, h)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", method, err)
		}
		if !handlerCalled || resp != "ok" {
			t.Fatalf("%s: handler not called properly", method)
		}
	}
}

func TestInterceptor_MissingToken(t *testing.T) {
	s := newTestServer("secret")

	info := &grpc.UnaryServerInfo{FullMethod: pb.AttendanceService_StartSession_FullMethodName}

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called when token missing")
		return nil, nil
	}

	_, err := s.accessTokenInterceptor(context.Background(), nil, info, h)
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
	if status.Convert(err).Message() != "missing token" {
		t.Fatalf("expected 'missing token', got %q", status.Convert(err).Message())
	}
}

func TestInterceptor_InvalidToken(t *testing.T) {
	s := newTestServer("secret")

	md := metadata.New(map[string]string{
		common.AccessTokenHeaderName: "not-a-valid-jwt",
	})
	ctx := metadata.NewIncomingContext(context.Background(), md)
	info := &grpc.UnaryServerInfo{FullMethod: pb.AttendanceService_GetAttendance_FullMethodName}

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called for invalid token")
		return nil, nil
	}

	_, err := s.accessTokenInterceptor(ctx, nil, info, h)
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
	if status.Convert(err).Message() != common.ErrInvalidToken.Error() {
		t.Fatalf("unexpected message %q", status.Convert(err).Message())
	}
}

func TestInterceptor_ExpiredToken(t *testing.T) {
	s := newTestServer("secret")
	ctx := tokenContext(t, "secret", "t1", -time.Minute)
	info := &grpc.UnaryServerInfo{FullMethod: pb.AttendanceService_EndSession_FullMethodName}

	_, err := s.accessTokenInterceptor(ctx, nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called for expired token")
		return nil, nil
	})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
	if status.Convert(err).Message() != common.ErrAccessTokenExpired.Error() {
		t.Fatalf("unexpected message %q", status.Convert(err).Message())
	}
}

func TestInterceptor_ValidToken_SetsUserID(t *testing.T) {
	secret := "super-secret"
	s := newTestServer(secret)

	ctx := tokenContext(t, secret, "teacher-123", time.Hour)
	info := &grpc.UnaryServerInfo{FullMethod: pb.AttendanceService_StartSession_FullMethodName}

	var got string
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		got, _ = auth.UserIDFromContext(ctx)
		return "ok", nil
	}

	resp, err := s.accessTokenInterceptor(ctx, nil, info, h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp != "ok" {
		t.Fatalf("unexpected handler resp: %v", resp)
	}
	if got != "teacher-123" {
		t.Fatalf("user id not propagated in context: got %q", got)
	}
}

type ctxStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (c *ctxStream) Context() context.Context { return c.ctx }

func TestStreamInterceptor(t *testing.T) {
	s := newTestServer("secret")
	info := &grpc.StreamServerInfo{FullMethod: pb.AttendanceService_Subscribe_FullMethodName, IsServerStream: true}

	err := s.accessTokenStreamInterceptor(nil, &ctxStream{ctx: context.Background()}, info,
		func(srv interface{}, ss grpc.ServerStream) error {
			t.Fatal("handler should not be called without token")
			return nil
		})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}

	var got string
	err = s.accessTokenStreamInterceptor(nil, &ctxStream{ctx: tokenContext(t, "secret", "t1", time.Hour)}, info,
		func(srv interface{}, ss grpc.ServerStream) error {
			got, _ = auth.UserIDFromContext(ss.Context())
			return nil
		})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "t1" {
		t.Fatalf("user id not propagated to stream context: got %q", got)
	}
}
