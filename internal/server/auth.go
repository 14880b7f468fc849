package server

import (
	"errors"
	"net/http"
	"time"

	"baladiya/pkg/api"
	"baladiya/pkg/types"

	"golang.org/x/crypto/bcrypt"
)

func (s *Service) handleRegister(w http.ResponseWriter, r *http.Request) {
	var input api.RegisterInput
	if !s.decodeValid(w, r, &input) {
		return
	}

	role := input.Role
	if role == "" {
		role = types.RoleCitizen
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.WithError(err).Error("failed to hash password")
		s.internalServerError(w)
		return
	}

	user, err := s.users.Create(r.Context(), &types.User{
		FullName: input.FullName,
		CIN:      input.CIN,
		Password: string(hash),
		Role:     role,
	})
	if err != nil {
		if errors.Is(err, types.ErrCINExists) {
			s.writeFieldError(w, http.StatusBadRequest, "cin", "CIN already exists")
			return
		}
		s.logger.WithError(err).Error("failed to create user")
		s.internalServerError(w)
		return
	}

	if err := s.establishSession(w, r, user.ID); err != nil {
		s.logger.WithError(err).Error("failed to establish session after register")
		s.writeError(w, http.StatusInternalServerError, "login failed after register")
		return
	}

	s.writeJSON(w, http.StatusCreated, user)
}

func (s *Service) handleLogin(w http.ResponseWriter, r *http.Request) {
	var input api.LoginInput
	if !s.decodeValid(w, r, &input) {
		return
	}

	user, err := s.verifyCredentials(r, input.CIN, input.Password)
	if err != nil {
		if errors.Is(err, types.ErrInvalidCredentials) {
			s.unauthorized(w)
			return
		}
		if errors.Is(err, types.ErrUserBanned) {
			s.writeError(w, http.StatusForbidden, "account is banned")
			return
		}
		s.logger.WithError(err).Error("failed to verify credentials")
		s.internalServerError(w)
		return
	}

	if err := s.establishSession(w, r, user.ID); err != nil {
		s.logger.WithError(err).Error("failed to establish session after login")
		s.internalServerError(w)
		return
	}

	s.writeJSON(w, http.StatusOK, user)
}

func (s *Service) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(s.config.CookieName); err == nil {
		var token string
		if err := s.cookie.Decode(s.config.CookieName, cookie.Value, &token); err == nil {
			if err := s.sessions.Delete(r.Context(), token); err != nil {
				s.logger.WithError(err).Warn("failed to delete session on logout")
			}
		}
	}

	s.clearSessionCookie(w)
	s.writeJSON(w, http.StatusOK, nil)
}

func (s *Service) handleCurrentUser(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.currentUser(r))
}

// verifyCredentials is the local-strategy check: CIN lookup plus bcrypt
// compare. Both failure modes collapse into ErrInvalidCredentials so
// the response does not leak which part was wrong.
func (s *Service) verifyCredentials(r *http.Request, cin, password string) (*types.User, error) {
	user, err := s.users.UserByCIN(r.Context(), cin)
	if err != nil {
		if errors.Is(err, types.ErrUserNotFound) {
			return nil, types.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, types.ErrInvalidCredentials
	}

	if user.IsBanned {
		return nil, types.ErrUserBanned
	}

	return user, nil
}

func (s *Service) establishSession(w http.ResponseWriter, r *http.Request, userID int) error {
	ttl := time.Duration(s.config.SessionMaxAgeSec) * time.Second

	session, err := s.sessions.Create(r.Context(), userID, ttl)
	if err != nil {
		return err
	}

	encoded, err := s.cookie.Encode(s.config.CookieName, session.Token)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.config.CookieName,
		Value:    encoded,
		HttpOnly: true,
		Secure:   s.config.Environment == "production",
		SameSite: http.SameSiteLaxMode,
		MaxAge:   s.config.SessionMaxAgeSec,
		Path:     "/",
	})

	return nil
}

func (s *Service) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.config.CookieName,
		Value:    "",
		HttpOnly: true,
		Secure:   s.config.Environment == "production",
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
		MaxAge:   -1,
	})
}
