package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/4tbox/toolbox/internal/intake"
)

func (s *Server) submitToolRequest(w http.ResponseWriter, r *http.Request) {
	if s.intake == nil {
		writeError(w, http.StatusServiceUnavailable, "intake is disabled")
		return
	}
	var req intake.ToolRequest
	if !decodeBody(w, r, &req) {
		return
	}

	saved, err := s.intake.SubmitToolRequest(r.Context(), req)
	if err != nil {
		s.submissionError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

func (s *Server) submitContact(w http.ResponseWriter, r *http.Request) {
	if s.intake == nil {
		writeError(w, http.StatusServiceUnavailable, "intake is disabled")
		return
	}
	var msg intake.ContactMessage
	if !decodeBody(w, r, &msg) {
		return
	}

	saved, err := s.intake.SubmitContact(r.Context(), msg)
	if err != nil {
		s.submissionError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"id": saved.ID, "created_at": saved.CreatedAt})
}

// listToolRequests handles GET /api/v1/intake/tool-requests?limit=N.
func (s *Server) listToolRequests(w http.ResponseWriter, r *http.Request) {
	if s.intake == nil {
		writeError(w, http.StatusServiceUnavailable, "intake is disabled")
		return
	}
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = n
	}

	reqs, err := s.intake.RecentToolRequests(r.Context(), limit)
	if err != nil {
		s.logger.Error("failed to list tool requests", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list tool requests")
		return
	}
	if reqs == nil {
		reqs = []intake.ToolRequest{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"tool_requests": reqs, "count": len(reqs)})
}

func (s *Server) submissionError(w http.ResponseWriter, err error) {
	var verr *intake.ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "validation failed", Fields: verr.Fields})
		return
	}
	s.logger.Error("submission failed", "error", err)
	writeError(w, http.StatusInternalServerError, "submission failed")
}
