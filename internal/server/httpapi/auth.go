package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/qrattend/internal/common"
	"github.com/dmitrijs2005/qrattend/internal/server/auth"
)

// requireAuth resolves the teacher from an "Authorization: Bearer" header,
// or from the access_token query parameter which browsers must use for
// websocket upgrades.
func (s *HTTPServer) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			writeError(w, http.StatusUnauthorized, "unauthenticated", "missing token")
			return
		}

		userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
		if err != nil {
			msg := common.ErrInvalidToken.Error()
			if errors.Is(err, common.ErrAccessTokenExpired) {
				msg = common.ErrAccessTokenExpired.Error()
			}
			writeError(w, http.StatusUnauthorized, "unauthenticated", msg)
			return
		}

		next.ServeHTTP(w, r.WithContext(auth.WithUserID(r.Context(), userID)))
	})
}

func bearerToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		scheme, token, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
		return ""
	}
	return r.URL.Query().Get(common.AccessTokenHeaderName)
}
