// Package grpc exposes the attendance services over gRPC.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/qrattend/internal/logging"
	pb "github.com/dmitrijs2005/qrattend/internal/proto"
	"github.com/dmitrijs2005/qrattend/internal/server/broadcast"
	"github.com/dmitrijs2005/qrattend/internal/server/models"
	"github.com/dmitrijs2005/qrattend/internal/server/services"
	"google.golang.org/grpc"
)

type sessionService interface {
	StartSession(ctx context.Context, classID, callerID string) (*models.Session, error)
	Rotate(ctx context.Context, sessionID, callerID string) (*models.Session, error)
	EndSession(ctx context.Context, sessionID, callerID string) error
	GetActiveSession(ctx context.Context, classID, callerID string) (*models.Session, error)
	AuthorizeSession(ctx context.Context, sessionID, callerID string) (*models.Session, error)
	ScanURL(s *models.Session) string
}

type redemptionService interface {
	Redeem(ctx context.Context, masterToken, subToken, rollNumber string) (*services.Redemption, error)
}

type ledgerService interface {
	Lookup(ctx context.Context, classID, callerID, date, month string) ([]*models.AttendanceDay, error)
}

type subscriber interface {
	Subscribe(topic broadcast.Topic) *broadcast.Subscription
}

type GRPCServer struct {
	pb.UnimplementedAttendanceServiceServer
	address    string
	sessions   sessionService
	redemption redemptionService
	ledger     ledgerService
	hub        subscriber
	logger     logging.Logger
	jwtSecret  []byte
}

func NewGRPCServer(a string, l logging.Logger, ss sessionService, rs redemptionService,
	ls ledgerService, hub subscriber, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:    a,
		logger:     l.With("module", "grpc_server"),
		sessions:   ss,
		redemption: rs,
		ledger:     ls,
		hub:        hub,
		jwtSecret:  []byte(secretKey),
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(s.accessTokenInterceptor),
		grpc.ChainStreamInterceptor(s.accessTokenStreamInterceptor),
	)
	pb.RegisterAttendanceServiceServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
