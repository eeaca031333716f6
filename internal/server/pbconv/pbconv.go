// Package pbconv maps domain models onto the generated protobuf messages.
// Both the gRPC handlers and the HTTP API render through it.
package pbconv

import (
	"time"

	pb "github.com/dmitrijs2005/qrattend/internal/proto"
	"github.com/dmitrijs2005/qrattend/internal/server/broadcast"
	"github.com/dmitrijs2005/qrattend/internal/server/models"
	"github.com/dmitrijs2005/qrattend/internal/server/services"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Timestamp converts t, leaving the zero time unset.
func Timestamp(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

// Session renders sess with the scan URL clients turn into a QR code.
func Session(sess *models.Session, scanURL string) *pb.Session {
	return &pb.Session{
		Id:            sess.ID,
		ClassId:       sess.ClassID,
		OwnerId:       sess.OwnerID,
		MasterToken:   sess.MasterToken,
		CurrentToken:  sess.CurrentToken,
		Active:        sess.Active,
		ExpiresAt:     Timestamp(sess.ExpiresAt),
		LastRotatedAt: Timestamp(sess.LastRotatedAt),
		ScanUrl:       scanURL,
	}
}

func Redemption(r *services.Redemption) *pb.RedeemResponse {
	return &pb.RedeemResponse{
		StudentName:    r.StudentName,
		RollNumber:     r.RollNumber,
		AlreadyPresent: r.AlreadyPresent,
	}
}

func Day(d *models.AttendanceDay) *pb.AttendanceDay {
	out := &pb.AttendanceDay{
		ClassId: d.ClassID,
		Date:    d.Day.Format(services.DateLayout),
		Records: make([]*pb.AttendanceRecord, 0, len(d.Entries)),
	}
	for _, e := range d.Entries {
		out.Records = append(out.Records, &pb.AttendanceRecord{
			StudentId:  e.StudentID,
			Name:       e.Name,
			RollNumber: e.RollNumber,
			Status:     string(e.Status),
		})
	}
	return out
}

// Attendance wraps a ledger lookup result, keeping the days in order.
func Attendance(days []*models.AttendanceDay) *pb.GetAttendanceResponse {
	resp := &pb.GetAttendanceResponse{Days: make([]*pb.AttendanceDay, 0, len(days))}
	for _, d := range days {
		resp.Days = append(resp.Days, Day(d))
	}
	return resp
}

func Event(ev broadcast.Event) *pb.Event {
	return &pb.Event{
		Type:        ev.Type,
		SessionId:   ev.SessionID,
		StudentName: ev.StudentName,
		RollNumber:  ev.RollNumber,
		Subject:     ev.Subject,
		Token:       ev.Token,
		ScanUrl:     ev.ScanURL,
		ExpiresAt:   Timestamp(ev.ExpiresAt),
		Timestamp:   Timestamp(ev.Timestamp),
	}
}
