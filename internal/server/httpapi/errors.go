package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/qrattend/internal/common"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

var httpSentinels = []struct {
	err    error
	status int
	code   string
}{
	{common.ErrSessionInvalid, http.StatusBadRequest, "session_invalid"},
	{common.ErrTokenExpired, http.StatusBadRequest, "token_expired"},
	{common.ErrStudentNotFound, http.StatusNotFound, "student_not_found"},
	{common.ErrorNotFound, http.StatusNotFound, "not_found"},
	{common.ErrorUnauthorized, http.StatusForbidden, "unauthorized"},
}

// writeServiceError renders a service error, hiding internals.
func (s *HTTPServer) writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	for _, m := range httpSentinels {
		if errors.Is(err, m.err) {
			writeError(w, m.status, m.code, m.err.Error())
			return
		}
	}
	if errors.Is(err, common.ErrInvalidArgument) {
		writeError(w, http.StatusBadRequest, "invalid_argument", err.Error())
		return
	}

	s.logger.Error(ctx, "request failed", "error", err)
	writeError(w, http.StatusInternalServerError, "internal", common.ErrorInternal.Error())
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorBody{Code: code, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

var protoJSON = protojson.MarshalOptions{EmitUnpopulated: true}

func (s *HTTPServer) writeProto(ctx context.Context, w http.ResponseWriter, status int, m proto.Message) {
	b, err := protoJSON.Marshal(m)
	if err != nil {
		s.logger.Error(ctx, "marshal response", "error", err)
		writeError(w, http.StatusInternalServerError, "internal", common.ErrorInternal.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(b)
}
