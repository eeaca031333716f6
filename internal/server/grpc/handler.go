package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/qrattend/internal/proto"
	"github.com/dmitrijs2005/qrattend/internal/server/auth"
	"github.com/dmitrijs2005/qrattend/internal/server/broadcast"
	"github.com/dmitrijs2005/qrattend/internal/server/pbconv"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func callerID(ctx context.Context) (string, error) {
	id, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "missing user")
	}
	return id, nil
}

func (s *GRPCServer) StartSession(ctx context.Context, req *pb.StartSessionRequest) (*pb.StartSessionResponse, error) {

	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if req.ClassId == "" {
		return nil, status.Error(codes.InvalidArgument, "class id is required")
	}

	sess, err := s.sessions.StartSession(ctx, req.ClassId, userID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Session started", "session_id", sess.ID, "class_id", sess.ClassID)
	return &pb.StartSessionResponse{Session: pbconv.Session(sess, s.sessions.ScanURL(sess))}, nil

}

func (s *GRPCServer) RotateToken(ctx context.Context, req *pb.RotateTokenRequest) (*pb.RotateTokenResponse, error) {

	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	sess, err := s.sessions.Rotate(ctx, req.SessionId, userID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.RotateTokenResponse{Token: sess.CurrentToken, ScanUrl: s.sessions.ScanURL(sess)}, nil

}

func (s *GRPCServer) EndSession(ctx context.Context, req *pb.EndSessionRequest) (*pb.EndSessionResponse, error) {

	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.EndSession(ctx, req.SessionId, userID); err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.EndSessionResponse{}, nil

}

func (s *GRPCServer) GetActiveSession(ctx context.Context, req *pb.GetActiveSessionRequest) (*pb.GetActiveSessionResponse, error) {

	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	sess, err := s.sessions.GetActiveSession(ctx, req.ClassId, userID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.GetActiveSessionResponse{Session: pbconv.Session(sess, s.sessions.ScanURL(sess))}, nil

}

func (s *GRPCServer) Redeem(ctx context.Context, req *pb.RedeemRequest) (*pb.RedeemResponse, error) {

	res, err := s.redemption.Redeem(ctx, req.MasterToken, req.SubToken, req.RollNumber)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return pbconv.Redemption(res), nil

}

func (s *GRPCServer) GetAttendance(ctx context.Context, req *pb.GetAttendanceRequest) (*pb.GetAttendanceResponse, error) {

	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	days, err := s.ledger.Lookup(ctx, req.ClassId, userID, req.Date, req.Month)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return pbconv.Attendance(days), nil

}

// Subscribe streams realtime events of one channel until the client goes
// away or the channel is closed.
func (s *GRPCServer) Subscribe(req *pb.SubscribeRequest, stream pb.AttendanceService_SubscribeServer) error {

	ctx := stream.Context()
	userID, err := callerID(ctx)
	if err != nil {
		return err
	}

	var topic broadcast.Topic
	switch req.Channel {
	case pb.ChannelSession:
		if _, err := s.sessions.AuthorizeSession(ctx, req.SessionId, userID); err != nil {
			return s.toStatus(ctx, err)
		}
		topic = broadcast.SessionTopic(req.SessionId)
	case pb.ChannelOwner, "":
		topic = broadcast.OwnerTopic(userID)
	default:
		return status.Errorf(codes.InvalidArgument, "unknown channel %q", req.Channel)
	}

	sub := s.hub.Subscribe(topic)
	defer sub.Close()

	s.logger.Debug(ctx, "Subscriber attached", "kind", topic.Kind, "key", topic.Key)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-sub.Events():
			if !ok {
				return nil
			}
			if err := stream.Send(pbconv.Event(ev)); err != nil {
				return err
			}
		}
	}

}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil

}
