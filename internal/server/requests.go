package server

import (
	"errors"
	"net/http"
	"strconv"

	"baladiya/pkg/api"
	"baladiya/pkg/types"
)

func (s *Service) handleListRequests(w http.ResponseWriter, r *http.Request) {
	user := s.currentUser(r)

	var (
		requests []*types.Request
		err      error
	)
	if user.IsAdmin() {
		requests, err = s.requests.Requests(r.Context())
	} else {
		requests, err = s.requests.RequestsByUser(r.Context(), user.ID)
	}
	if err != nil {
		s.logger.WithError(err).Error("failed to list requests")
		s.internalServerError(w)
		return
	}

	s.writeJSON(w, http.StatusOK, requests)
}

func (s *Service) handleCreateRequest(w http.ResponseWriter, r *http.Request) {
	var input api.CreateRequestInput
	if !s.decodeValid(w, r, &input) {
		return
	}

	// Owner comes from the session, never from the body.
	request, err := s.requests.Create(r.Context(), &types.Request{
		UserID: s.currentUser(r).ID,
		Type:   input.Type,
	})
	if err != nil {
		s.logger.WithError(err).Error("failed to create request")
		s.internalServerError(w)
		return
	}

	s.writeJSON(w, http.StatusCreated, request)
}

func (s *Service) handleUpdateRequestStatus(w http.ResponseWriter, r *http.Request) {
	requestID, ok := s.pathID(w, r)
	if !ok {
		return
	}

	var input api.UpdateRequestStatusInput
	if !s.decodeValid(w, r, &input) {
		return
	}

	current, err := s.requests.Request(r.Context(), requestID)
	if err != nil {
		if errors.Is(err, types.ErrRequestNotFound) {
			s.writeError(w, http.StatusNotFound, "request not found")
			return
		}
		s.logger.WithError(err).Error("failed to fetch request")
		s.internalServerError(w)
		return
	}

	if err := current.Status.TransitionTo(input.Status); err != nil {
		s.writeError(w, http.StatusConflict, err.Error())
		return
	}

	updated, err := s.requests.UpdateStatus(r.Context(), requestID, input.Status)
	if err != nil {
		if errors.Is(err, types.ErrRequestNotFound) {
			s.writeError(w, http.StatusNotFound, "request not found")
			return
		}
		s.logger.WithError(err).Error("failed to update request status")
		s.internalServerError(w)
		return
	}

	s.writeJSON(w, http.StatusOK, updated)
}

func (s *Service) handleAttachRequestFile(w http.ResponseWriter, r *http.Request) {
	requestID, ok := s.pathID(w, r)
	if !ok {
		return
	}

	var input api.AttachRequestFileInput
	if !s.decodeValid(w, r, &input) {
		return
	}

	updated, err := s.requests.AttachFile(r.Context(), requestID, input.AttachmentURL)
	if err != nil {
		if errors.Is(err, types.ErrRequestNotFound) {
			s.writeError(w, http.StatusNotFound, "request not found")
			return
		}
		s.logger.WithError(err).Error("failed to attach file to request")
		s.internalServerError(w)
		return
	}

	s.writeJSON(w, http.StatusOK, updated)
}

// pathID parses the :id path parameter. Unparseable ids read as ids
// that do not exist.
func (s *Service) pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		s.writeError(w, http.StatusNotFound, "not found")
		return 0, false
	}
	return id, true
}
