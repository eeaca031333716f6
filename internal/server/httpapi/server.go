// Package httpapi serves the browser-facing surface: the public redemption
// endpoint, attendance reads, realtime websockets, health and metrics.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/qrattend/internal/logging"
	"github.com/dmitrijs2005/qrattend/internal/server/broadcast"
	"github.com/dmitrijs2005/qrattend/internal/server/models"
	"github.com/dmitrijs2005/qrattend/internal/server/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type sessionService interface {
	AuthorizeSession(ctx context.Context, sessionID, callerID string) (*models.Session, error)
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

const shutdownTimeout = 5 * time.Second

type HTTPServer struct {
	address    string
	sessions   sessionService
	redemption redemptionService
	ledger     ledgerService
	hub        subscriber
	logger     logging.Logger
	jwtSecret  []byte
	upgrader   websocket.Upgrader
}

// NewHTTPServer wires the handlers. Websocket upgrades are accepted from
// pages served under publicBaseURL and from non-browser clients.
func NewHTTPServer(a string, l logging.Logger, ss sessionService, rs redemptionService,
	ls ledgerService, hub subscriber, secretKey, publicBaseURL string) *HTTPServer {
	return &HTTPServer{
		address:    a,
		logger:     l.With("module", "http_server"),
		sessions:   ss,
		redemption: rs,
		ledger:     ls,
		hub:        hub,
		jwtSecret:  []byte(secretKey),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     sameOrigin(publicBaseURL),
		},
	}
}

// Router builds the route table.
func (s *HTTPServer) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/healthz", s.healthz)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/attendance", func(r chi.Router) {
		r.Post("/redeem", s.redeem)
		r.With(s.requireAuth).Get("/{classID}", s.attendance)
	})

	r.Route("/ws", func(r chi.Router) {
		r.Use(s.requireAuth)
		r.Get("/sessions/{sessionID}", s.sessionSocket)
		r.Get("/owner", s.ownerSocket)
	})

	return r
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, lis)
}

func (s *HTTPServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := &http.Server{
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP shutdown failed", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *HTTPServer) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug(r.Context(), "http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}

func (s *HTTPServer) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}
