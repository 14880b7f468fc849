package server

import (
	"context"
	"net/http"
	"time"

	"baladiya/pkg/types"

	"github.com/sirupsen/logrus"
)

// Context key types to avoid collisions
type contextKey string

const contextKeyUser contextKey = "user"

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (s *Service) LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		s.logger.WithFields(logrus.Fields{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      rw.statusCode,
			"duration_ms": time.Since(started).Milliseconds(),
		}).Info("http request")
	})
}

// RequireAuth resolves the session cookie to a user and stores the user
// in the request context. Anything short of a live session is a 401.
func (s *Service) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(s.config.CookieName)
		if err != nil {
			s.unauthorized(w)
			return
		}

		var token string
		if err := s.cookie.Decode(s.config.CookieName, cookie.Value, &token); err != nil {
			s.logger.WithError(err).Debug("failed to decode session cookie")
			s.unauthorized(w)
			return
		}

		session, err := s.sessions.Session(r.Context(), token)
		if err != nil {
			s.unauthorized(w)
			return
		}

		user, err := s.users.User(r.Context(), session.UserID)
		if err != nil {
			s.logger.WithError(err).WithField("user_id", session.UserID).Warn("session points at missing user")
			s.unauthorized(w)
			return
		}

		// A ban takes effect on the next request, existing session or
		// not.
		if user.IsBanned {
			s.writeError(w, http.StatusForbidden, "account is banned")
			return
		}

		ctx := context.WithValue(r.Context(), contextKeyUser, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin gates status-mutating and publishing routes. Runs inside
// RequireAuth, so the user is always present.
func (s *Service) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := s.currentUser(r)
		if user == nil || !user.IsAdmin() {
			s.writeError(w, http.StatusForbidden, "admin role required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Service) currentUser(r *http.Request) *types.User {
	user, _ := r.Context().Value(contextKeyUser).(*types.User)
	return user
}
