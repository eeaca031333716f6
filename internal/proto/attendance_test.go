package proto_test

import (
	"testing"
	"time"

	pb "github.com/dmitrijs2005/qrattend/internal/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func TestSession_WireRoundTrip(t *testing.T) {
	exp := time.Date(2026, 3, 2, 9, 5, 0, 0, time.UTC)
	in := &pb.Session{
		Id:           "s1",
		ClassId:      "C",
		OwnerId:      "t1",
		MasterToken:  "M",
		CurrentToken: "cur",
		Active:       true,
		ExpiresAt:    timestamppb.New(exp),
		ScanUrl:      "https://x/scan?token=M",
	}

	b, err := proto.Marshal(&pb.StartSessionResponse{Session: in})
	require.NoError(t, err)

	var out pb.StartSessionResponse
	require.NoError(t, proto.Unmarshal(b, &out))
	assert.True(t, proto.Equal(in, out.GetSession()))
	assert.True(t, out.GetSession().GetExpiresAt().AsTime().Equal(exp))
	assert.Nil(t, out.GetSession().GetLastRotatedAt())
}

func TestEvent_WireRoundTrip(t *testing.T) {
	in := &pb.Event{
		Type:        "check_in",
		SessionId:   "s1",
		StudentName: "Asha",
		RollNumber:  "101",
		Timestamp:   timestamppb.New(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)),
	}

	b, err := proto.Marshal(in)
	require.NoError(t, err)

	out := &pb.Event{}
	require.NoError(t, proto.Unmarshal(b, out))
	assert.True(t, proto.Equal(in, out))
}

func TestFileDescriptor(t *testing.T) {
	fd := pb.File_attendance_proto
	assert.Equal(t, protoreflect.FullName("qrattend"), fd.Package())

	svc := fd.Services().ByName("AttendanceService")
	require.NotNil(t, svc)
	assert.Equal(t, 8, svc.Methods().Len())

	sub := svc.Methods().ByName("Subscribe")
	require.NotNil(t, sub)
	assert.True(t, sub.IsStreamingServer())
	assert.False(t, sub.IsStreamingClient())

	field := (&pb.Session{}).ProtoReflect().Descriptor().Fields().ByName("scan_url")
	require.NotNil(t, field)
	assert.Equal(t, "scanUrl", field.JSONName())
}

func TestServiceDesc(t *testing.T) {
	assert.Equal(t, "qrattend.AttendanceService", pb.AttendanceService_ServiceDesc.ServiceName)
	assert.Len(t, pb.AttendanceService_ServiceDesc.Methods, 7)
	require.Len(t, pb.AttendanceService_ServiceDesc.Streams, 1)
	assert.True(t, pb.AttendanceService_ServiceDesc.Streams[0].ServerStreams)
	assert.Equal(t, "/qrattend.AttendanceService/Subscribe", pb.AttendanceService_Subscribe_FullMethodName)
}
