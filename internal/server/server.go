package server

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	"baladiya/pkg/api"
	"baladiya/pkg/types"

	"github.com/alexedwards/flow"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/securecookie"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Stores consumed by the handlers. The Postgres repositories in
// internal/store satisfy these; tests substitute in-memory fakes.

type UserStore interface {
	User(ctx context.Context, userID int) (*types.User, error)
	Users(ctx context.Context) ([]*types.User, error)
	UserByCIN(ctx context.Context, cin string) (*types.User, error)
	Create(ctx context.Context, user *types.User) (*types.User, error)
	UpdateRole(ctx context.Context, userID int, role types.Role) (*types.User, error)
	ToggleBan(ctx context.Context, userID int) (*types.User, error)
}

type RequestStore interface {
	Request(ctx context.Context, requestID int) (*types.Request, error)
	Requests(ctx context.Context) ([]*types.Request, error)
	RequestsByUser(ctx context.Context, userID int) ([]*types.Request, error)
	Create(ctx context.Context, request *types.Request) (*types.Request, error)
	UpdateStatus(ctx context.Context, requestID int, status types.RequestStatus) (*types.Request, error)
	AttachFile(ctx context.Context, requestID int, attachmentURL string) (*types.Request, error)
}

type ReportStore interface {
	Report(ctx context.Context, reportID int) (*types.Report, error)
	Reports(ctx context.Context) ([]*types.Report, error)
	ReportsByUser(ctx context.Context, userID int) ([]*types.Report, error)
	Create(ctx context.Context, report *types.Report) (*types.Report, error)
	UpdateStatus(ctx context.Context, reportID int, status types.ReportStatus) (*types.Report, error)
}

type AnnouncementStore interface {
	Announcements(ctx context.Context) ([]*types.Announcement, error)
	Create(ctx context.Context, announcement *types.Announcement) (*types.Announcement, error)
	Delete(ctx context.Context, announcementID int) error
}

type SessionStore interface {
	Create(ctx context.Context, userID int, ttl time.Duration) (*types.Session, error)
	Session(ctx context.Context, token string) (*types.Session, error)
	Delete(ctx context.Context, token string) error
}

type Service struct {
	logger   *logrus.Logger
	config   *types.Config
	cookie   *securecookie.SecureCookie
	validate *validator.Validate

	users         UserStore
	requests      RequestStore
	reports       ReportStore
	announcements AnnouncementStore
	sessions      SessionStore

	// nil when REDIS_ADDR is not configured; report rate limiting is
	// then disabled.
	redis *redis.Client

	server *http.Server
}

func New(
	config *types.Config,
	logger *logrus.Logger,
	users UserStore,
	requests RequestStore,
	reports ReportStore,
	announcements AnnouncementStore,
	sessions SessionStore,
	redisClient *redis.Client,
) (*Service, error) {
	mux := flow.New()

	hashKey, err := base64.StdEncoding.DecodeString(config.CookieHashKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode cookie hash key: %w", err)
	}

	blockKey, err := base64.StdEncoding.DecodeString(config.CookieBlockKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode cookie block key: %w", err)
	}

	// securecookie only skips encryption for a nil block key.
	if len(blockKey) == 0 {
		blockKey = nil
	}

	s := &Service{
		logger:   logger,
		config:   config,
		cookie:   securecookie.New(hashKey, blockKey),
		validate: newValidator(),

		users:         users,
		requests:      requests,
		reports:       reports,
		announcements: announcements,
		sessions:      sessions,

		redis: redisClient,

		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", config.ServerPort),
			Handler:           mux,
			ReadTimeout:       time.Duration(config.ReadTimeoutSec) * time.Second,
			ReadHeaderTimeout: time.Duration(config.ReadTimeoutSec) * time.Second,
			WriteTimeout:      time.Duration(config.WriteTimeoutSec) * time.Second,
			MaxHeaderBytes:    1 << 20,
		},
	}

	s.buildRouter(mux)

	return s, nil
}

func (s *Service) Start() error {
	return s.server.ListenAndServe()
}

func (s *Service) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Handler exposes the router for httptest servers.
func (s *Service) Handler() http.Handler {
	return s.server.Handler
}

func (s *Service) buildRouter(r *flow.Mux) {
	r.Use(s.LoggingMiddleware)

	r.HandleFunc("/healthz", s.handleHealth, http.MethodGet)

	r.HandleFunc(api.Register.Path, s.handleRegister, api.Register.Method)
	r.HandleFunc(api.Login.Path, s.handleLogin, api.Login.Method)
	r.HandleFunc(api.Logout.Path, s.handleLogout, api.Logout.Method)

	r.Group(func(r *flow.Mux) {
		r.Use(s.RequireAuth)

		r.HandleFunc(api.CurrentUser.Path, s.handleCurrentUser, api.CurrentUser.Method)

		r.HandleFunc(api.ListRequests.Path, s.handleListRequests, api.ListRequests.Method)
		r.HandleFunc(api.CreateRequest.Path, s.handleCreateRequest, api.CreateRequest.Method)

		r.HandleFunc(api.CreateReport.Path, s.ReportRateLimiter(s.handleCreateReport), api.CreateReport.Method)
		r.HandleFunc(api.ListReports.Path, s.handleListReports, api.ListReports.Method)

		r.HandleFunc(api.ListNews.Path, s.handleListAnnouncements, api.ListNews.Method)

		r.Group(func(r *flow.Mux) {
			r.Use(s.RequireAdmin)

			r.HandleFunc(api.UpdateRequestStatus.Path, s.handleUpdateRequestStatus, api.UpdateRequestStatus.Method)
			r.HandleFunc(api.AttachRequestFile.Path, s.handleAttachRequestFile, api.AttachRequestFile.Method)
			r.HandleFunc(api.UpdateReportStatus.Path, s.handleUpdateReportStatus, api.UpdateReportStatus.Method)

			r.HandleFunc(api.ListUsers.Path, s.handleListUsers, api.ListUsers.Method)
			r.HandleFunc(api.UpdateUserRole.Path, s.handleUpdateUserRole, api.UpdateUserRole.Method)
			r.HandleFunc(api.ToggleUserBan.Path, s.handleToggleUserBan, api.ToggleUserBan.Method)

			r.HandleFunc(api.CreateNews.Path, s.handleCreateAnnouncement, api.CreateNews.Method)
			r.HandleFunc(api.DeleteNews.Path, s.handleDeleteAnnouncement, api.DeleteNews.Method)
		})
	})
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
