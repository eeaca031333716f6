package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/qrattend/internal/server/auth"
	"github.com/dmitrijs2005/qrattend/internal/server/pbconv"
	"github.com/go-chi/chi/v5"
)

const maxRedeemBody = 4 << 10

type redeemRequest struct {
	MasterToken string `json:"masterToken"`
	SubToken    string `json:"subToken"`
	RollNumber  string `json:"rollNumber"`
}

type redeemResponse struct {
	StudentName    string `json:"studentName"`
	RollNumber     string `json:"rollNumber"`
	AlreadyPresent bool   `json:"alreadyPresent"`
}

func (s *HTTPServer) redeem(w http.ResponseWriter, r *http.Request) {
	var req redeemRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRedeemBody)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_argument", "invalid JSON")
		return
	}

	res, err := s.redemption.Redeem(r.Context(), req.MasterToken, req.SubToken, req.RollNumber)
	if err != nil {
		s.writeServiceError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, redeemResponse{
		StudentName:    res.StudentName,
		RollNumber:     res.RollNumber,
		AlreadyPresent: res.AlreadyPresent,
	})
}

// attendance serves GET /api/attendance/{classID}?date=YYYY-MM-DD|month=YYYY-MM.
// The body is the protojson form of GetAttendanceResponse.
func (s *HTTPServer) attendance(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())
	q := r.URL.Query()

	days, err := s.ledger.Lookup(r.Context(), chi.URLParam(r, "classID"), userID, q.Get("date"), q.Get("month"))
	if err != nil {
		s.writeServiceError(r.Context(), w, err)
		return
	}

	s.writeProto(r.Context(), w, http.StatusOK, pbconv.Attendance(days))
}
