package http

import (
	"net/http"
)

type requestExtensionRequest struct {
	NewDueDate string `json:"new_due_date"`
}

func (s *Server) handleRequestExtension(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid rental id")
		return
	}
	var req requestExtensionRequest
	if err := decodeJSON(r, &req); err != nil || req.NewDueDate == "" {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "New due date is required")
		return
	}

	ext, err := s.services.Extension.RequestExtension(r.Context(), id, req.NewDueDate)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ext)
}

func (s *Server) handleListExtensions(w http.ResponseWriter, r *http.Request) {
	exts, err := s.services.Extension.ListExtensions(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, exts)
}

func (s *Server) handleApproveExtension(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid extension id")
		return
	}
	ext, err := s.services.Extension.ApproveExtension(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ext)
}

func (s *Server) handleRejectExtension(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid extension id")
		return
	}
	ext, err := s.services.Extension.RejectExtension(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ext)
}
