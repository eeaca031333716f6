package client

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/dmitrijs2005/qrattend/internal/common"
	pb "github.com/dmitrijs2005/qrattend/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

const defaultCallTimeout = 10 * time.Second

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.AttendanceServiceClient

	mu          sync.RWMutex
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	return invoker(withAccessToken(ctx, s.AccessToken()), method, req, reply, cc, opts...)
}

func (s *GRPCClient) accessTokenStreamInterceptor(
	ctx context.Context,
	desc *grpc.StreamDesc,
	cc *grpc.ClientConn,
	method string,
	streamer grpc.Streamer,
	opts ...grpc.CallOption,
) (grpc.ClientStream, error) {
	return streamer(withAccessToken(ctx, s.AccessToken()), desc, cc, method, opts...)
}

// NewAttendanceClient dials endpointURL. The connection is lazy; the first
// call establishes it.
func NewAttendanceClient(endpointURL, accessToken string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, accessToken: accessToken}

	conn, err := grpc.NewClient(c.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
		grpc.WithStreamInterceptor(c.accessTokenStreamInterceptor),
	)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = pb.NewAttendanceServiceClient(conn)
	return c, nil
}

func (s *GRPCClient) SetAccessToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = token
}

func (s *GRPCClient) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, defaultCallTimeout)
}

func (s *GRPCClient) StartSession(ctx context.Context, classID string) (*pb.Session, error) {
	ctx, cancel := callContext(ctx)
	defer cancel()

	resp, err := s.client.StartSession(ctx, &pb.StartSessionRequest{ClassId: classID})
	if err != nil {
		return nil, mapError(err)
	}
	return resp.Session, nil
}

func (s *GRPCClient) RotateToken(ctx context.Context, sessionID string) (*pb.RotateTokenResponse, error) {
	ctx, cancel := callContext(ctx)
	defer cancel()

	resp, err := s.client.RotateToken(ctx, &pb.RotateTokenRequest{SessionId: sessionID})
	if err != nil {
		return nil, mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) EndSession(ctx context.Context, sessionID string) error {
	ctx, cancel := callContext(ctx)
	defer cancel()

	_, err := s.client.EndSession(ctx, &pb.EndSessionRequest{SessionId: sessionID})
	return mapError(err)
}

func (s *GRPCClient) GetActiveSession(ctx context.Context, classID string) (*pb.Session, error) {
	ctx, cancel := callContext(ctx)
	defer cancel()

	resp, err := s.client.GetActiveSession(ctx, &pb.GetActiveSessionRequest{ClassId: classID})
	if err != nil {
		return nil, mapError(err)
	}
	return resp.Session, nil
}

func (s *GRPCClient) Redeem(ctx context.Context, masterToken, subToken, rollNumber string) (*pb.RedeemResponse, error) {
	ctx, cancel := callContext(ctx)
	defer cancel()

	resp, err := s.client.Redeem(ctx, &pb.RedeemRequest{
		MasterToken: masterToken,
		SubToken:    subToken,
		RollNumber:  rollNumber,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) GetAttendance(ctx context.Context, classID, date, month string) ([]*pb.AttendanceDay, error) {
	ctx, cancel := callContext(ctx)
	defer cancel()

	resp, err := s.client.GetAttendance(ctx, &pb.GetAttendanceRequest{ClassId: classID, Date: date, Month: month})
	if err != nil {
		return nil, mapError(err)
	}
	return resp.Days, nil
}

// Watch subscribes to a realtime channel and calls fn for each event until
// ctx is done or the server ends the stream.
func (s *GRPCClient) Watch(ctx context.Context, channel, sessionID string, fn func(*pb.Event)) error {
	stream, err := s.client.Subscribe(ctx, &pb.SubscribeRequest{Channel: channel, SessionId: sessionID})
	if err != nil {
		return mapError(err)
	}

	for {
		ev, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return mapError(err)
		}
		fn(ev)
	}
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	ctx, cancel := callContext(ctx)
	defer cancel()

	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil
}
