package http

import (
	"net/http"
)

func (s *Server) handleListAssessments(w http.ResponseWriter, r *http.Request) {
	assessments, err := s.services.Assessment.ListAssessments(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, assessments)
}

type resolveAssessmentRequest struct {
	WithFine bool `json:"with_fine"`
}

// handleResolveAssessment closes a pending assessment. With with_fine set,
// the recorded fine amount becomes a ledger entry in the same stroke.
func (s *Server) handleResolveAssessment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid assessment id")
		return
	}
	var req resolveAssessmentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if req.WithFine {
		fine, err := s.services.Assessment.ResolveWithFine(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"resolved": id, "fine": fine})
		return
	}

	if err := s.services.Assessment.Resolve(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"resolved": id})
}
