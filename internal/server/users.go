package server

import (
	"errors"
	"net/http"

	"baladiya/pkg/api"
	"baladiya/pkg/types"
)

func (s *Service) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.users.Users(r.Context())
	if err != nil {
		s.logger.WithError(err).Error("failed to list users")
		s.internalServerError(w)
		return
	}

	s.writeJSON(w, http.StatusOK, users)
}

func (s *Service) handleUpdateUserRole(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.pathID(w, r)
	if !ok {
		return
	}

	var input api.UpdateUserRoleInput
	if !s.decodeValid(w, r, &input) {
		return
	}

	updated, err := s.users.UpdateRole(r.Context(), userID, input.Role)
	if err != nil {
		if errors.Is(err, types.ErrUserNotFound) {
			s.writeError(w, http.StatusNotFound, "user not found")
			return
		}
		s.logger.WithError(err).Error("failed to update user role")
		s.internalServerError(w)
		return
	}

	s.writeJSON(w, http.StatusOK, updated)
}

// handleToggleUserBan flips the ban flag. No body: the endpoint is a
// toggle, so repeating the call undoes it.
func (s *Service) handleToggleUserBan(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.pathID(w, r)
	if !ok {
		return
	}

	updated, err := s.users.ToggleBan(r.Context(), userID)
	if err != nil {
		if errors.Is(err, types.ErrUserNotFound) {
			s.writeError(w, http.StatusNotFound, "user not found")
			return
		}
		s.logger.WithError(err).Error("failed to toggle user ban")
		s.internalServerError(w)
		return
	}

	s.writeJSON(w, http.StatusOK, updated)
}
