package http

import (
	"net/http"
)

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	txs, err := s.services.Transaction.ListTransactions(r.Context(), q.Get("status"), q.Get("type"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, txs)
}

func (s *Server) handleMarkPaid(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid transaction id")
		return
	}
	tx, err := s.services.Transaction.MarkPaid(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tx)
}
