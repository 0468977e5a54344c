package http

import (
	"fmt"
	"net/http"

	"gadgetlend-backend/internal/logger"
)

// handleDetectOverdues triggers the overdue scan on demand, outside its
// nightly schedule. Runs synchronously and answers in plain text: 200 on
// success or no-op, 500 when the scan failed.
func (s *Server) handleDetectOverdues(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if s.jobs == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		fmt.Fprintln(w, "job runner is not configured")
		return
	}
	if err := s.jobs.RunDetectOverdues(r.Context()); err != nil {
		logger.Error("Overdue scan failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprintln(w, "overdue scan failed")
		return
	}
	fmt.Fprintln(w, "overdue scan completed")
}
