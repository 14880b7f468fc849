package server

import (
	"context"
	"sort"
	"sync"
	"time"

	"baladiya/internal/utils"
	"baladiya/pkg/types"
)

// In-memory stand-ins for the Postgres repositories. They mirror the
// store semantics the handlers rely on: generated ids, Pending on
// create, newest-first lists, sentinel not-found errors.

type fakeUserStore struct {
	mu     sync.Mutex
	nextID int
	users  map[int]*types.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{nextID: 1, users: make(map[int]*types.User)}
}

func (f *fakeUserStore) User(_ context.Context, userID int) (*types.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[userID]
	if !ok {
		return nil, types.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserStore) Users(_ context.Context) ([]*types.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]*types.User, 0, len(f.users))
	for _, user := range f.users {
		copied := *user
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *fakeUserStore) UserByCIN(_ context.Context, cin string) (*types.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, user := range f.users {
		if user.CIN == cin {
			copied := *user
			return &copied, nil
		}
	}
	return nil, types.ErrUserNotFound
}

func (f *fakeUserStore) Create(_ context.Context, user *types.User) (*types.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.users {
		if existing.CIN == user.CIN {
			return nil, types.ErrCINExists
		}
	}

	created := *user
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	f.nextID++
	f.users[created.ID] = &created

	copied := created
	return &copied, nil
}

func (f *fakeUserStore) UpdateRole(_ context.Context, userID int, role types.Role) (*types.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[userID]
	if !ok {
		return nil, types.ErrUserNotFound
	}
	user.Role = role

	copied := *user
	return &copied, nil
}

func (f *fakeUserStore) ToggleBan(_ context.Context, userID int) (*types.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[userID]
	if !ok {
		return nil, types.ErrUserNotFound
	}
	user.IsBanned = !user.IsBanned

	copied := *user
	return &copied, nil
}

func (f *fakeUserStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.users)
}

type fakeRequestStore struct {
	mu       sync.Mutex
	nextID   int
	requests map[int]*types.Request
}

func newFakeRequestStore() *fakeRequestStore {
	return &fakeRequestStore{nextID: 1, requests: make(map[int]*types.Request)}
}

func (f *fakeRequestStore) Request(_ context.Context, requestID int) (*types.Request, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	request, ok := f.requests[requestID]
	if !ok {
		return nil, types.ErrRequestNotFound
	}
	copied := *request
	return &copied, nil
}

func (f *fakeRequestStore) Requests(_ context.Context) ([]*types.Request, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return sortedRequests(f.requests, func(*types.Request) bool { return true }), nil
}

func (f *fakeRequestStore) RequestsByUser(_ context.Context, userID int) ([]*types.Request, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return sortedRequests(f.requests, func(r *types.Request) bool { return r.UserID == userID }), nil
}

func (f *fakeRequestStore) Create(_ context.Context, request *types.Request) (*types.Request, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	created := *request
	created.ID = f.nextID
	created.Status = types.RequestStatusPending
	created.CreatedAt = time.Now()
	f.nextID++
	f.requests[created.ID] = &created

	copied := created
	return &copied, nil
}

func (f *fakeRequestStore) UpdateStatus(_ context.Context, requestID int, status types.RequestStatus) (*types.Request, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	request, ok := f.requests[requestID]
	if !ok {
		return nil, types.ErrRequestNotFound
	}
	request.Status = status

	copied := *request
	return &copied, nil
}

func (f *fakeRequestStore) AttachFile(_ context.Context, requestID int, attachmentURL string) (*types.Request, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	request, ok := f.requests[requestID]
	if !ok {
		return nil, types.ErrRequestNotFound
	}
	request.AttachmentURL = utils.StringPtr(attachmentURL)
	request.UploadedAt = utils.TimePtr(time.Now())

	copied := *request
	return &copied, nil
}

func sortedRequests(m map[int]*types.Request, keep func(*types.Request) bool) []*types.Request {
	out := make([]*types.Request, 0, len(m))
	for _, r := range m {
		if keep(r) {
			copied := *r
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

type fakeReportStore struct {
	mu      sync.Mutex
	nextID  int
	reports map[int]*types.Report
}

func newFakeReportStore() *fakeReportStore {
	return &fakeReportStore{nextID: 1, reports: make(map[int]*types.Report)}
}

func (f *fakeReportStore) Report(_ context.Context, reportID int) (*types.Report, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	report, ok := f.reports[reportID]
	if !ok {
		return nil, types.ErrReportNotFound
	}
	copied := *report
	return &copied, nil
}

func (f *fakeReportStore) Reports(_ context.Context) ([]*types.Report, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return sortedReports(f.reports, func(*types.Report) bool { return true }), nil
}

func (f *fakeReportStore) ReportsByUser(_ context.Context, userID int) ([]*types.Report, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return sortedReports(f.reports, func(r *types.Report) bool { return r.UserID == userID }), nil
}

func (f *fakeReportStore) Create(_ context.Context, report *types.Report) (*types.Report, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	created := *report
	created.ID = f.nextID
	created.Status = types.ReportStatusPending
	created.CreatedAt = time.Now()
	f.nextID++
	f.reports[created.ID] = &created

	copied := created
	return &copied, nil
}

func (f *fakeReportStore) UpdateStatus(_ context.Context, reportID int, status types.ReportStatus) (*types.Report, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	report, ok := f.reports[reportID]
	if !ok {
		return nil, types.ErrReportNotFound
	}
	report.Status = status

	copied := *report
	return &copied, nil
}

func sortedReports(m map[int]*types.Report, keep func(*types.Report) bool) []*types.Report {
	out := make([]*types.Report, 0, len(m))
	for _, r := range m {
		if keep(r) {
			copied := *r
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

type fakeAnnouncementStore struct {
	mu            sync.Mutex
	nextID        int
	announcements map[int]*types.Announcement
}

func newFakeAnnouncementStore() *fakeAnnouncementStore {
	return &fakeAnnouncementStore{nextID: 1, announcements: make(map[int]*types.Announcement)}
}

func (f *fakeAnnouncementStore) Announcements(_ context.Context) ([]*types.Announcement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]*types.Announcement, 0, len(f.announcements))
	for _, a := range f.announcements {
		copied := *a
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *fakeAnnouncementStore) Create(_ context.Context, announcement *types.Announcement) (*types.Announcement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	now := time.Now()
	created := *announcement
	created.ID = f.nextID
	created.CreatedAt = now
	created.UpdatedAt = now
	f.nextID++
	f.announcements[created.ID] = &created

	copied := created
	return &copied, nil
}

func (f *fakeAnnouncementStore) Delete(_ context.Context, announcementID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.announcements[announcementID]; !ok {
		return types.ErrAnnouncementNotFound
	}
	delete(f.announcements, announcementID)
	return nil
}

type fakeSessionStore struct {
	mu       sync.Mutex
	sessions map[string]*types.Session
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]*types.Session)}
}

func (f *fakeSessionStore) Create(_ context.Context, userID int, ttl time.Duration) (*types.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	now := time.Now()
	session := &types.Session{
		Token:     utils.NanoID(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	f.sessions[session.Token] = session

	copied := *session
	return &copied, nil
}

func (f *fakeSessionStore) Session(_ context.Context, token string) (*types.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	session, ok := f.sessions[token]
	if !ok {
		return nil, types.ErrSessionNotFound
	}
	if session.Expired(time.Now()) {
		delete(f.sessions, token)
		return nil, types.ErrSessionNotFound
	}

	copied := *session
	return &copied, nil
}

func (f *fakeSessionStore) Delete(_ context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.sessions, token)
	return nil
}

func (f *fakeSessionStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sessions)
}

func (f *fakeSessionStore) expireAll() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, session := range f.sessions {
		session.ExpiresAt = time.Now().Add(-time.Minute)
	}
}
