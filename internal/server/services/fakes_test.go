package services

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/qrattend/internal/common"
	"github.com/dmitrijs2005/qrattend/internal/dbx"
	"github.com/dmitrijs2005/qrattend/internal/logging"
	"github.com/dmitrijs2005/qrattend/internal/server/broadcast"
	"github.com/dmitrijs2005/qrattend/internal/server/models"
	"github.com/dmitrijs2005/qrattend/internal/server/repositories/attendance"
	"github.com/dmitrijs2005/qrattend/internal/server/repositories/roster"
	"github.com/dmitrijs2005/qrattend/internal/server/repositories/sessions"
	"github.com/sethvargo/go-retry"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func noDelay() retry.Backoff {
	return retry.WithMaxRetries(4, retry.NewConstant(time.Millisecond))
}

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger     { return n }

// --- in-memory repositories ---

type fakeSessions struct {
	mu   sync.Mutex
	rows map[string]*models.Session

	createErrs []error // returned by successive Create calls before normal behaviour
	rotateErr  error
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{rows: map[string]*models.Session{}}
}

func (f *fakeSessions) put(s *models.Session) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *s
	f.rows[s.ID] = &cp
}

func (f *fakeSessions) get(id string) *models.Session {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, ok := f.rows[id]; ok {
		cp := *s
		return &cp
	}
	return nil
}

func (f *fakeSessions) activeCount(classID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, s := range f.rows {
		if s.ClassID == classID && s.Active {
			n++
		}
	}
	return n
}

func (f *fakeSessions) Create(_ context.Context, s *models.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.createErrs) > 0 {
		err := f.createErrs[0]
		f.createErrs = f.createErrs[1:]
		return err
	}
	for _, r := range f.rows {
		if r.ClassID == s.ClassID && r.Active {
			return common.ErrUniqueViolation
		}
	}
	cp := *s
	f.rows[s.ID] = &cp
	return nil
}

func (f *fakeSessions) DeactivateClass(_ context.Context, classID string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var ids []string
	for _, r := range f.rows {
		if r.ClassID == classID && r.Active {
			r.Active = false
			ids = append(ids, r.ID)
		}
	}
	return ids, nil
}

func (f *fakeSessions) Deactivate(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rows[id]
	if !ok {
		return common.ErrorNotFound
	}
	r.Active = false
	return nil
}

func (f *fakeSessions) Rotate(_ context.Context, id, newToken string, now time.Time) (*models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.rotateErr != nil {
		return nil, f.rotateErr
	}
	r, ok := f.rows[id]
	if !ok || !r.Active {
		return nil, common.ErrorNotFound
	}
	r.PreviousToken = r.CurrentToken
	r.CurrentToken = newToken
	r.LastRotatedAt = now
	cp := *r
	return &cp, nil
}

func (f *fakeSessions) GetByID(_ context.Context, id string) (*models.Session, error) {
	if s := f.get(id); s != nil {
		return s, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeSessions) GetByMasterToken(_ context.Context, master string) (*models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.rows {
		if r.MasterToken == master {
			cp := *r
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeSessions) GetActiveByClass(_ context.Context, classID string, now time.Time) (*models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.rows {
		if r.ClassID == classID && r.IsLive(now) {
			cp := *r
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeSessions) ListActive(_ context.Context, now time.Time) ([]*models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Session
	for _, r := range f.rows {
		if r.IsLive(now) {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeSessions) DeactivateExpired(_ context.Context, now time.Time) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var ids []string
	for _, r := range f.rows {
		if r.Active && !now.Before(r.ExpiresAt) {
			r.Active = false
			ids = append(ids, r.ID)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

type dayKey struct {
	classID string
	day     time.Time
}

type fakeAttendance struct {
	mu      sync.Mutex
	days    map[dayKey]*models.AttendanceDay
	entries map[string]map[string]*models.AttendanceEntry // dayID -> studentID

	findErrs []error
	markErr  error
}

func newFakeAttendance() *fakeAttendance {
	return &fakeAttendance{
		days:    map[dayKey]*models.AttendanceDay{},
		entries: map[string]map[string]*models.AttendanceEntry{},
	}
}

func (f *fakeAttendance) FindOrCreateDay(_ context.Context, d *models.AttendanceDay) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.findErrs) > 0 {
		err := f.findErrs[0]
		f.findErrs = f.findErrs[1:]
		return "", err
	}
	k := dayKey{d.ClassID, d.Day}
	if existing, ok := f.days[k]; ok {
		return existing.ID, nil
	}
	cp := *d
	f.days[k] = &cp
	f.entries[d.ID] = map[string]*models.AttendanceEntry{}
	return d.ID, nil
}

func (f *fakeAttendance) MarkPresent(_ context.Context, e *models.AttendanceEntry) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.markErr != nil {
		return false, f.markErr
	}
	set := f.entries[e.DayID]
	if cur, ok := set[e.StudentID]; ok && cur.Status == models.StatusPresent {
		return false, nil
	}
	cp := *e
	cp.Status = models.StatusPresent
	set[e.StudentID] = &cp
	return true, nil
}

func (f *fakeAttendance) ListDays(_ context.Context, classID string, from, to time.Time) ([]*models.AttendanceDay, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.AttendanceDay
	for k, d := range f.days {
		if k.classID != classID || k.day.Before(from) || k.day.After(to) {
			continue
		}
		cp := *d
		for _, e := range f.entries[d.ID] {
			cp.Entries = append(cp.Entries, *e)
		}
		sort.Slice(cp.Entries, func(i, j int) bool { return cp.Entries[i].RollNumber < cp.Entries[j].RollNumber })
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day.Before(out[j].Day) })
	return out, nil
}

// dayEntries returns the entries recorded for (classID, day).
func (f *fakeAttendance) dayEntries(classID string, day time.Time) map[string]models.AttendanceEntry {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := map[string]models.AttendanceEntry{}
	d, ok := f.days[dayKey{classID, day}]
	if !ok {
		return out
	}
	for id, e := range f.entries[d.ID] {
		out[id] = *e
	}
	return out
}

type fakeRoster struct {
	classes  map[string]*models.Class
	students []*models.Student
	err      error
}

func (f *fakeRoster) GetClass(_ context.Context, classID string) (*models.Class, error) {
	if f.err != nil {
		return nil, f.err
	}
	if c, ok := f.classes[classID]; ok {
		return c, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeRoster) ClassOwner(ctx context.Context, classID string) (string, error) {
	c, err := f.GetClass(ctx, classID)
	if err != nil {
		return "", err
	}
	return c.TeacherID, nil
}

func (f *fakeRoster) StudentByRoll(_ context.Context, classID, roll string) (*models.Student, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, s := range f.students {
		if s.ClassID == classID && s.RollNumber == roll {
			return s, nil
		}
	}
	return nil, common.ErrorNotFound
}

// fakeRepoManager hands out the same in-memory repos for db and tx handles.
type fakeRepoManager struct {
	s *fakeSessions
	a *fakeAttendance
	r *fakeRoster
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Sessions(dbx.DBTX) sessions.Repository       { return m.s }
func (m *fakeRepoManager) Attendance(dbx.DBTX) attendance.Repository   { return m.a }
func (m *fakeRepoManager) Roster(dbx.DBTX) roster.Repository           { return m.r }

// classRoster: class C owned by t1 with rolls 101 and 102; class D owned by
// t2 reuses roll 101 for a different student.
func classRoster() *fakeRoster {
	return &fakeRoster{
		classes: map[string]*models.Class{
			"C": {ID: "C", SubjectName: "Physics", TeacherID: "t1"},
			"D": {ID: "D", SubjectName: "Chemistry", TeacherID: "t2"},
		},
		students: []*models.Student{
			{ID: "st101", ClassID: "C", Name: "Asha", RollNumber: "101"},
			{ID: "st102", ClassID: "C", Name: "Ravi", RollNumber: "102"},
			{ID: "stD101", ClassID: "D", Name: "Meera", RollNumber: "101"},
		},
	}
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{s: newFakeSessions(), a: newFakeAttendance(), r: classRoster()}
}

// --- publisher ---

type published struct {
	topic broadcast.Topic
	ev    broadcast.Event
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []published
	closed []broadcast.Topic
}

func (p *recordingPublisher) Publish(topic broadcast.Topic, ev broadcast.Event) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, published{topic, ev})
	return 1
}

func (p *recordingPublisher) CloseTopic(topic broadcast.Topic) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = append(p.closed, topic)
}

func (p *recordingPublisher) closedTopics() []broadcast.Topic {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]broadcast.Topic(nil), p.closed...)
}

func (p *recordingPublisher) ofType(typ string) []published {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []published
	for _, e := range p.events {
		if e.ev.Type == typ {
			out = append(out, e)
		}
	}
	return out
}

// --- observer ---

type recordingObserver struct {
	mu      sync.Mutex
	started []string
	ended   []string
}

func (o *recordingObserver) SessionStarted(s *models.Session) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.started = append(o.started, s.ID)
}

func (o *recordingObserver) SessionEnded(id string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.ended = append(o.ended, id)
}
