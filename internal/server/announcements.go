package server

import (
	"errors"
	"net/http"

	"baladiya/pkg/api"
	"baladiya/pkg/types"
)

func (s *Service) handleListAnnouncements(w http.ResponseWriter, r *http.Request) {
	announcements, err := s.announcements.Announcements(r.Context())
	if err != nil {
		s.logger.WithError(err).Error("failed to list announcements")
		s.internalServerError(w)
		return
	}

	s.writeJSON(w, http.StatusOK, announcements)
}

func (s *Service) handleCreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	var input api.CreateAnnouncementInput
	if !s.decodeValid(w, r, &input) {
		return
	}

	announcement, err := s.announcements.Create(r.Context(), &types.Announcement{
		Title:    input.Title,
		Content:  input.Content,
		ImageURL: input.ImageURL,
	})
	if err != nil {
		s.logger.WithError(err).Error("failed to create announcement")
		s.internalServerError(w)
		return
	}

	s.writeJSON(w, http.StatusCreated, announcement)
}

func (s *Service) handleDeleteAnnouncement(w http.ResponseWriter, r *http.Request) {
	announcementID, ok := s.pathID(w, r)
	if !ok {
		return
	}

	if err := s.announcements.Delete(r.Context(), announcementID); err != nil {
		if errors.Is(err, types.ErrAnnouncementNotFound) {
			s.writeError(w, http.StatusNotFound, "announcement not found")
			return
		}
		s.logger.WithError(err).Error("failed to delete announcement")
		s.internalServerError(w)
		return
	}

	s.writeJSON(w, http.StatusOK, nil)
}
