package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/dmitrijs2005/qrattend/internal/client/client"
	"github.com/dmitrijs2005/qrattend/internal/common"
	pb "github.com/dmitrijs2005/qrattend/internal/proto"
)

// getSimpleText and getSecret are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getSecret = GetSecret

// notifyContext is swapped in tests so watch does not touch process signals.
var notifyContext = func(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, os.Interrupt)
}

// Login prompts for a teacher access token and installs it on the client.
func (a *App) Login(ctx context.Context) error {
	token, err := getSecret(a.out, "Access token (empty to continue as student)")
	if err != nil {
		return err
	}
	a.api.SetAccessToken(token)
	return nil
}

// Logout forgets the access token.
func (a *App) Logout(ctx context.Context) error {
	a.api.SetAccessToken("")
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// argOrPrompt returns args[0] or asks the user for it.
func (a *App) argOrPrompt(args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	v, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	if v == "" {
		return "", fmt.Errorf("%w: %s is required", common.ErrInvalidArgument, strings.ToLower(prompt))
	}
	return v, nil
}

func (a *App) report(err error) error {
	switch {
	case err == nil:
	case errors.Is(err, client.ErrUnavailable):
		a.setMode(ModeOffline)
		fmt.Fprintln(a.out, "Server is unavailable")
	case errors.Is(err, client.ErrUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrAccessTokenExpired):
		fmt.Fprintln(a.out, "Not authenticated, use 'login'")
	case errors.Is(err, common.ErrorUnauthorized):
		fmt.Fprintln(a.out, "Not allowed for this account")
	default:
		fmt.Fprintln(a.out, "Error:", err)
	}
	return err
}

func (a *App) printSession(s *pb.Session) {
	fmt.Fprintf(a.out, "Session %s (class %s)\n", s.GetId(), s.GetClassId())
	fmt.Fprintf(a.out, "  active:   %t\n", s.GetActive())
	if s.GetExpiresAt() != nil {
		fmt.Fprintf(a.out, "  expires:  %s\n", s.GetExpiresAt().AsTime().Local().Format(time.DateTime))
	}
	fmt.Fprintf(a.out, "  scan url: %s\n", s.GetScanUrl())
}

// StartSession opens a new check-in session for a class.
func (a *App) StartSession(ctx context.Context, args []string) error {
	classID, err := a.argOrPrompt(args, "Class ID")
	if err != nil {
		return a.report(err)
	}
	s, err := a.api.StartSession(ctx, classID)
	if err != nil {
		return a.report(err)
	}
	a.printSession(s)
	return nil
}

// Rotate issues a fresh sub-token for a session.
func (a *App) Rotate(ctx context.Context, args []string) error {
	sessionID, err := a.argOrPrompt(args, "Session ID")
	if err != nil {
		return a.report(err)
	}
	resp, err := a.api.RotateToken(ctx, sessionID)
	if err != nil {
		return a.report(err)
	}
	fmt.Fprintln(a.out, "New scan url:", resp.GetScanUrl())
	return nil
}

// EndSession closes a session.
func (a *App) EndSession(ctx context.Context, args []string) error {
	sessionID, err := a.argOrPrompt(args, "Session ID")
	if err != nil {
		return a.report(err)
	}
	if err := a.api.EndSession(ctx, sessionID); err != nil {
		return a.report(err)
	}
	fmt.Fprintln(a.out, "Session ended")
	return nil
}

// Active shows the class's live session, if any.
func (a *App) Active(ctx context.Context, args []string) error {
	classID, err := a.argOrPrompt(args, "Class ID")
	if err != nil {
		return a.report(err)
	}
	s, err := a.api.GetActiveSession(ctx, classID)
	if errors.Is(err, common.ErrorNotFound) {
		fmt.Fprintln(a.out, "No active session")
		return nil
	}
	if err != nil {
		return a.report(err)
	}
	a.printSession(s)
	return nil
}

// Redeem marks a student present. args: <scan-url> <roll-number>.
func (a *App) Redeem(ctx context.Context, args []string) error {
	raw, err := a.argOrPrompt(args, "Scan URL")
	if err != nil {
		return a.report(err)
	}
	master, sub, err := ParseScanURL(raw)
	if err != nil {
		return a.report(err)
	}
	var rest []string
	if len(args) > 1 {
		rest = args[1:]
	}
	roll, err := a.argOrPrompt(rest, "Roll number")
	if err != nil {
		return a.report(err)
	}

	resp, err := a.api.Redeem(ctx, master, sub, roll)
	switch {
	case errors.Is(err, common.ErrSessionInvalid):
		fmt.Fprintln(a.out, "Session is not active")
		return err
	case errors.Is(err, common.ErrTokenExpired):
		fmt.Fprintln(a.out, "QR code expired, scan again")
		return err
	case errors.Is(err, common.ErrStudentNotFound):
		fmt.Fprintln(a.out, "Roll number not in this class")
		return err
	case err != nil:
		return a.report(err)
	}

	if resp.AlreadyPresent {
		fmt.Fprintf(a.out, "%s (%s) was already marked present\n", resp.StudentName, resp.RollNumber)
	} else {
		fmt.Fprintf(a.out, "%s (%s) marked present\n", resp.StudentName, resp.RollNumber)
	}
	return nil
}

// Attendance prints records. args: <class-id> [YYYY-MM-DD | YYYY-MM].
func (a *App) Attendance(ctx context.Context, args []string) error {
	classID, err := a.argOrPrompt(args, "Class ID")
	if err != nil {
		return a.report(err)
	}
	var date, month string
	if len(args) > 1 {
		if len(args[1]) == len("2006-01") {
			month = args[1]
		} else {
			date = args[1]
		}
	}

	days, err := a.api.GetAttendance(ctx, classID, date, month)
	if err != nil {
		return a.report(err)
	}
	if len(days) == 0 {
		fmt.Fprintln(a.out, "No attendance recorded")
		return nil
	}
	for _, d := range days {
		fmt.Fprintf(a.out, "%s\n", d.Date)
		for _, r := range d.Records {
			fmt.Fprintf(a.out, "  %-10s %-30s %s\n", r.RollNumber, r.Name, r.Status)
		}
	}
	return nil
}

// Watch streams a channel until Ctrl+C. args: session <id> | owner.
func (a *App) Watch(ctx context.Context, args []string) error {
	channel := pb.ChannelOwner
	var sessionID string
	if len(args) > 0 {
		channel = args[0]
	}
	if channel == pb.ChannelSession {
		id, err := a.argOrPrompt(args[1:], "Session ID")
		if err != nil {
			return a.report(err)
		}
		sessionID = id
	}

	ctx, stop := notifyContext(ctx)
	defer stop()

	fmt.Fprintln(a.out, "Watching, press Ctrl+C to stop")
	err := a.api.Watch(ctx, channel, sessionID, a.printEvent)
	if err != nil && !errors.Is(err, context.Canceled) {
		return a.report(err)
	}
	return nil
}

func (a *App) printEvent(e *pb.Event) {
	ts := e.GetTimestamp().AsTime().Local().Format(time.TimeOnly)
	switch e.Type {
	case "check_in":
		fmt.Fprintf(a.out, "[%s] %s (%s) checked in\n", ts, e.StudentName, e.RollNumber)
	case "dashboard_refresh":
		fmt.Fprintf(a.out, "[%s] %s: %s checked in\n", ts, e.Subject, e.StudentName)
	case "token_rotated":
		fmt.Fprintf(a.out, "[%s] new code: %s\n", ts, e.GetScanUrl())
	case "session_ended":
		fmt.Fprintf(a.out, "[%s] session %s ended\n", ts, e.GetSessionId())
	default:
		fmt.Fprintf(a.out, "[%s] %s\n", ts, e.Type)
	}
}

// Ping checks the server once and updates Mode.
func (a *App) Ping(ctx context.Context) error {
	a.checkOnline(ctx)
	fmt.Fprintln(a.out, "Server is", a.mode())
	return nil
}
