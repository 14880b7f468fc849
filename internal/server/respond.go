package server

import (
	"encoding/json"
	"net/http"

	"baladiya/pkg/api"
)

func (s *Service) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if v == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.WithError(err).Error("failed to encode response body")
	}
}

func (s *Service) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, api.Error{Message: message})
}

func (s *Service) writeFieldError(w http.ResponseWriter, status int, field, message string) {
	s.writeJSON(w, status, api.Error{Message: message, Field: field})
}

func (s *Service) unauthorized(w http.ResponseWriter) {
	s.writeError(w, http.StatusUnauthorized, "unauthorized")
}

func (s *Service) internalServerError(w http.ResponseWriter) {
	s.writeError(w, http.StatusInternalServerError, "internal server error")
}
