package cli

import (
	"bufio"
	"context"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/qrattend/internal/client/client"
	"github.com/dmitrijs2005/qrattend/internal/client/config"
	pb "github.com/dmitrijs2005/qrattend/internal/proto"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// attendanceAPI is the part of client.GRPCClient the CLI drives.
type attendanceAPI interface {
	SetAccessToken(token string)
	AccessToken() string
	Close() error
	StartSession(ctx context.Context, classID string) (*pb.Session, error)
	RotateToken(ctx context.Context, sessionID string) (*pb.RotateTokenResponse, error)
	EndSession(ctx context.Context, sessionID string) error
	GetActiveSession(ctx context.Context, classID string) (*pb.Session, error)
	Redeem(ctx context.Context, masterToken, subToken, rollNumber string) (*pb.RedeemResponse, error)
	GetAttendance(ctx context.Context, classID, date, month string) ([]*pb.AttendanceDay, error)
	Watch(ctx context.Context, channel, sessionID string, fn func(*pb.Event)) error
	Ping(ctx context.Context) error
}

type App struct {
	config *config.Config
	api    attendanceAPI
	reader *bufio.Reader
	out    io.Writer

	mu   sync.Mutex
	Mode Mode
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewAttendanceClient(c.ServerEndpointAddr, c.AccessToken)
	if err != nil {
		return nil, err
	}

	return &App{config: c, api: apiClient, reader: bufio.NewReader(os.Stdin), out: os.Stdout}, nil
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.Mode != mode {
		a.Mode = mode
		log.Printf("Switched to %s mode\n", mode)
	}
}

func (a *App) mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.Mode
}

func (a *App) hasToken() bool {
	return a.api.AccessToken() != ""
}

func (a *App) getStatus() string {
	s := "anonymous"
	if a.hasToken() {
		s = "teacher"
	}
	if m := a.mode(); m != "" {
		s += " " + string(m)
	}
	return "(" + s + ")"
}

// Run prompts for an access token when none is configured, starts the
// connectivity watcher and blocks in the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.api.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	log.Println("Welcome to the attendance CLI (type 'help' for commands)")

	if !a.hasToken() {
		_ = a.Login(ctx)
	}

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(a.reader))
}

// StartOnlineStatusWatcher pings the server every interval and flips Mode
// between online and offline until ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := a.api.Ping(ctx); err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}
