package httpapi

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/qrattend/internal/server/auth"
	"github.com/dmitrijs2005/qrattend/internal/server/broadcast"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

// sameOrigin accepts upgrades without an Origin header or whose origin host
// matches publicBaseURL.
func sameOrigin(publicBaseURL string) func(r *http.Request) bool {
	base, err := url.Parse(publicBaseURL)
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		u, perr := url.Parse(origin)
		if perr != nil {
			return false
		}
		if strings.EqualFold(u.Host, r.Host) {
			return true
		}
		return err == nil && strings.EqualFold(u.Host, base.Host)
	}
}

// sessionSocket streams the session channel to the session's owner.
func (s *HTTPServer) sessionSocket(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())
	sessionID := chi.URLParam(r, "sessionID")

	if _, err := s.sessions.AuthorizeSession(r.Context(), sessionID, userID); err != nil {
		s.writeServiceError(r.Context(), w, err)
		return
	}
	s.stream(w, r, broadcast.SessionTopic(sessionID))
}

// ownerSocket streams the caller's dashboard channel.
func (s *HTTPServer) ownerSocket(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())
	s.stream(w, r, broadcast.OwnerTopic(userID))
}

// stream upgrades the request and forwards topic events as JSON text
// frames until the peer leaves or the topic is closed.
func (s *HTTPServer) stream(w http.ResponseWriter, r *http.Request, topic broadcast.Topic) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied.
		s.logger.Warn(r.Context(), "websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	sub := s.hub.Subscribe(topic)
	defer sub.Close()

	logger := s.logger.With("kind", topic.Kind, "key", topic.Key)
	logger.Debug(r.Context(), "websocket attached")

	// Viewers only listen; the read loop exists to process control frames
	// and notice disconnects.
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		conn.SetReadLimit(512)
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	for {
		select {
		case <-gone:
			logger.Debug(r.Context(), "websocket detached")
			return
		case ev, ok := <-sub.Events():
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "channel closed"))
				return
			}
			if err := conn.WriteJSON(ev); err != nil {
				return
			}
		case <-ping.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}
