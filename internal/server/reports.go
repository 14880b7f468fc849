package server

import (
	"errors"
	"net/http"

	"baladiya/pkg/api"
	"baladiya/pkg/types"
)

func (s *Service) handleListReports(w http.ResponseWriter, r *http.Request) {
	user := s.currentUser(r)

	var (
		reports []*types.Report
		err     error
	)
	if user.IsAdmin() {
		reports, err = s.reports.Reports(r.Context())
	} else {
		reports, err = s.reports.ReportsByUser(r.Context(), user.ID)
	}
	if err != nil {
		s.logger.WithError(err).Error("failed to list reports")
		s.internalServerError(w)
		return
	}

	s.writeJSON(w, http.StatusOK, reports)
}

func (s *Service) handleCreateReport(w http.ResponseWriter, r *http.Request) {
	var input api.CreateReportInput
	if !s.decodeValid(w, r, &input) {
		return
	}

	report, err := s.reports.Create(r.Context(), &types.Report{
		UserID:      s.currentUser(r).ID,
		Category:    input.Category,
		Location:    input.Location,
		Description: input.Description,
		ImageURL:    input.ImageURL,
	})
	if err != nil {
		s.logger.WithError(err).Error("failed to create report")
		s.internalServerError(w)
		return
	}

	s.writeJSON(w, http.StatusCreated, report)
}

func (s *Service) handleUpdateReportStatus(w http.ResponseWriter, r *http.Request) {
	reportID, ok := s.pathID(w, r)
	if !ok {
		return
	}

	var input api.UpdateReportStatusInput
	if !s.decodeValid(w, r, &input) {
		return
	}

	current, err := s.reports.Report(r.Context(), reportID)
	if err != nil {
		if errors.Is(err, types.ErrReportNotFound) {
			s.writeError(w, http.StatusNotFound, "report not found")
			return
		}
		s.logger.WithError(err).Error("failed to fetch report")
		s.internalServerError(w)
		return
	}

	if err := current.Status.TransitionTo(input.Status); err != nil {
		s.writeError(w, http.StatusConflict, err.Error())
		return
	}

	updated, err := s.reports.UpdateStatus(r.Context(), reportID, input.Status)
	if err != nil {
		if errors.Is(err, types.ErrReportNotFound) {
			s.writeError(w, http.StatusNotFound, "report not found")
			return
		}
		s.logger.WithError(err).Error("failed to update report status")
		s.internalServerError(w)
		return
	}

	s.writeJSON(w, http.StatusOK, updated)
}
