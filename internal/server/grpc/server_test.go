package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/qrattend/internal/common"
	"github.com/dmitrijs2005/qrattend/internal/logging"
	pb "github.com/dmitrijs2005/qrattend/internal/proto"
	"github.com/dmitrijs2005/qrattend/internal/server/auth"
	"github.com/dmitrijs2005/qrattend/internal/server/broadcast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:0", nopLogger{}, &fakeSessions{}, &fakeRedemption{}, &fakeLedger{}, broadcast.NewHub(1), "secret")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error on graceful stop: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:99999", nopLogger{}, &fakeSessions{}, &fakeRedemption{}, &fakeLedger{}, broadcast.NewHub(1), "secret")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := srv.Run(ctx); err == nil {
		t.Fatal("expected error from Run on bad address, got nil")
	}
}

// startBufconn serves s in-process and returns a connected client.
func startBufconn(t *testing.T, s *GRPCServer) pb.AttendanceServiceClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = s.Serve(ctx, lis)
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		cancel()
		<-done
	})
	return pb.NewAttendanceServiceClient(conn)
}

func withToken(t *testing.T, userID string) context.Context {
	t.Helper()
	tok, err := auth.GenerateToken(userID, []byte("secret"), time.Hour)
	require.NoError(t, err)
	return metadata.AppendToOutgoingContext(context.Background(), common.AccessTokenHeaderName, tok)
}

func TestEndToEnd_Protobuf(t *testing.T) {
	hub := broadcast.NewHub(4)
	ss := &fakeSessions{sess: liveSession()}
	rs := &fakeRedemption{err: common.ErrTokenExpired}
	s := NewGRPCServer("", nopLogger{}, ss, rs, &fakeLedger{}, hub, "secret")
	client := startBufconn(t, s)

	ping, err := client.Ping(context.Background(), &pb.PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, "OK", ping.Status)

	_, err = client.StartSession(context.Background(), &pb.StartSessionRequest{ClassId: "C"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	started, err := client.StartSession(withToken(t, "t1"), &pb.StartSessionRequest{ClassId: "C"})
	require.NoError(t, err)
	assert.Equal(t, "s1", started.Session.Id)
	assert.Equal(t, "http://x/scan?token=M", started.Session.ScanUrl)
	assert.True(t, started.Session.GetExpiresAt().AsTime().Equal(ss.sess.ExpiresAt))

	_, err = client.Redeem(context.Background(), &pb.RedeemRequest{MasterToken: "M", SubToken: "old", RollNumber: "101"})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
	assert.Equal(t, common.ErrTokenExpired.Error(), status.Convert(err).Message())

	ctx, cancel := context.WithCancel(withToken(t, "t1"))
	defer cancel()
	stream, err := client.Subscribe(ctx, &pb.SubscribeRequest{Channel: pb.ChannelOwner})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return hub.Subscribers(broadcast.OwnerTopic("t1")) == 1
	}, 2*time.Second, 5*time.Millisecond)

	hub.Publish(broadcast.OwnerTopic("t1"), broadcast.Event{
		Type:        broadcast.EventDashboardRefresh,
		Subject:     "Physics",
		StudentName: "Asha",
		Timestamp:   time.Now(),
	})

	ev, err := stream.Recv()
	require.NoError(t, err)
	assert.Equal(t, broadcast.EventDashboardRefresh, ev.Type)
	assert.Equal(t, "Physics", ev.Subject)
	assert.Equal(t, "Asha", ev.StudentName)
}

func TestEndToEnd_SubscribeRequiresToken(t *testing.T) {
	s := NewGRPCServer("", nopLogger{}, &fakeSessions{}, &fakeRedemption{}, &fakeLedger{}, broadcast.NewHub(1), "secret")
	client := startBufconn(t, s)

	stream, err := client.Subscribe(context.Background(), &pb.SubscribeRequest{Channel: pb.ChannelOwner})
	if err == nil {
		_, err = stream.Recv()
	}
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}
