// Package server assembles the attendance server: storage, services, the
// rotation engine, the expiry sweeper and the gRPC and HTTP endpoints, and
// runs them until a termination signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/qrattend/internal/logging"
	"github.com/dmitrijs2005/qrattend/internal/server/broadcast"
	"github.com/dmitrijs2005/qrattend/internal/server/config"
	"github.com/dmitrijs2005/qrattend/internal/server/httpapi"
	"github.com/dmitrijs2005/qrattend/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/qrattend/internal/server/rotation"
	"github.com/dmitrijs2005/qrattend/internal/server/services"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	gs "github.com/dmitrijs2005/qrattend/internal/server/grpc"
)

type App struct {
	config            *config.Config
	logger            logging.Logger
	db                *sql.DB
	redis             *redis.Client
	hub               *broadcast.Hub
	sessionService    *services.SessionService
	ledgerService     *services.LedgerService
	redemptionService *services.RedemptionService
	engine            *rotation.Engine
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger, err := logging.New(c.LogBackend, c.LogLevel, os.Stdout)
	if err != nil {
		return nil, err
	}

	loc, err := c.Location()
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	hub := broadcast.NewHub(c.SubscriberBuffer)

	ss := services.NewSessionService(db, rm, c, hub, logger.With("module", "sessions"))
	ls := services.NewLedgerService(db, rm)
	rs := services.NewRedemptionService(db, rm, ls, hub, logger.With("module", "redemption"), loc)

	app := &App{
		config:            c,
		logger:            logger,
		db:                db,
		hub:               hub,
		sessionService:    ss,
		ledgerService:     ls,
		redemptionService: rs,
	}

	leaser, err := app.newLeaser(ctx)
	if err != nil {
		app.close(ctx)
		return nil, err
	}

	app.engine = rotation.NewEngine(ss, leaser, logger.With("module", "rotation"), c.RotationInterval)
	ss.AddObserver(app.engine)

	return app, nil
}

// newLeaser returns a Redis-backed leaser when RedisAddr is set, so several
// instances can share the rotation workload.
func (app *App) newLeaser(ctx context.Context) (rotation.Leaser, error) {
	if app.config.RedisAddr == "" {
		return rotation.LocalLeaser{}, nil
	}

	client := rotation.NewRedisClient(app.config.RedisAddr, app.config.RedisPassword, app.config.RedisDB)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping error: %w", err)
	}
	app.redis = client

	host, _ := os.Hostname()
	owner := host + "/" + uuid.NewString()
	app.logger.Info(ctx, "Using Redis rotation leases", "addr", app.config.RedisAddr, "owner", owner)
	return rotation.NewRedisLeaser(client, owner), nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := gs.NewGRPCServer(app.config.GRPCAddr, app.logger, app.sessionService, app.redemptionService,
		app.ledgerService, app.hub, app.config.SecretKey)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := httpapi.NewHTTPServer(app.config.HTTPAddr, app.logger, app.sessionService, app.redemptionService,
		app.ledgerService, app.hub, app.config.SecretKey, app.config.PublicBaseURL)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

type expirySweeper interface {
	SweepExpired(ctx context.Context) (int, error)
}

// runSweeper deactivates expired sessions every interval until ctx is done.
// It backs up the rotation engine for sessions whose task never ran, e.g.
// after a crash.
func runSweeper(ctx context.Context, s expirySweeper, interval time.Duration, logger logging.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.SweepExpired(ctx)
			if err != nil {
				logger.Error(ctx, "sweep expired sessions", "error", err)
				continue
			}
			if n > 0 {
				logger.Info(ctx, "Expired sessions deactivated", "count", n)
			}
		}
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(4)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		_ = app.engine.Run(ctx)
	}()
	go func() {
		defer wg.Done()
		runSweeper(ctx, app.sessionService, app.config.SweepInterval, app.logger.With("module", "sweeper"))
	}()

	wg.Wait()

	app.close(context.Background())
	app.logger.Info(context.Background(), "App stopped")
}

// close releases what NewApp acquired. Realtime subscribers are detached
// first so open streams end.
func (app *App) close(ctx context.Context) {
	if app.hub != nil {
		app.hub.Close()
	}
	if app.redis != nil {
		if err := app.redis.Close(); err != nil {
			app.logger.Warn(ctx, "redis close", "error", err)
		}
	}
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Warn(ctx, "db close", "error", err)
		}
	}
	if s, ok := app.logger.(interface{ Sync() error }); ok {
		_ = s.Sync()
	}
}
